package validator

import (
	"log"

	"renta_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться, так как это критическая ошибка.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': Проверяет, что роль пользователя валидна
	mustRegister("is-user-role", validateUserRole)

	// 'is-order-status': Проверяет, что статус заказа валиден
	mustRegister("is-order-status", validateOrderStatus)

	// 'is-payment-status': Проверяет, что статус платежа валиден
	mustRegister("is-payment-status", validatePaymentStatus)

	// 'is-product-status': Проверяет, что статус товара валиден
	mustRegister("is-product-status", validateProductStatus)
}

// --- Функции валидации ---

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Не проверяем пустые значения, для этого есть 'required'
	}
	return models.ValidUserRole(models.UserRole(value))
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	return models.ValidOrderStatus(models.OrderStatus(value))
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidPaymentStatus(models.PaymentStatus(value))
}

func validateProductStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProductStatus(value) {
	case models.ProductStatusAvailable, models.ProductStatusLimited,
		models.ProductStatusOutOfStock, models.ProductStatusDiscontinued:
		return true
	default:
		return false
	}
}
