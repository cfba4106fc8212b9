package dto

import (
	"time"

	"renta_backend/internal/models"
)

// OrderItemRequest - позиция создаваемого заказа
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest - запрос создания заказа аренды
type CreateOrderRequest struct {
	Items     []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	StartDate time.Time          `json:"start_date" validate:"required"`
	EndDate   time.Time          `json:"end_date" validate:"required,gtfield=StartDate"`
	Notes     string             `json:"notes" validate:"omitempty,max=1000"`
}

// UpdatePaymentStatusRequest - запрос смены статуса оплаты
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,is-payment-status"`
}

// OrderFilterRequest - фильтрация заказов администратором
type OrderFilterRequest struct {
	UserID        string     `form:"user_id" validate:"omitempty,uuid"`
	Status        string     `form:"status" validate:"omitempty,is-order-status"`
	PaymentStatus string     `form:"payment_status" validate:"omitempty,is-payment-status"`
	DateFrom      *time.Time `form:"date_from"`
	DateTo        *time.Time `form:"date_to" validate:"omitempty,gtefield=DateFrom"`
	Page          int        `form:"page" validate:"omitempty,min=1"`
	PageSize      int        `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// OrderListResponse - страница заказов
type OrderListResponse struct {
	Orders   []models.Order `json:"orders"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
