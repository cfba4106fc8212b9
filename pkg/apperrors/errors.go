package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения.
// MessageKey - стабильный машиночитаемый ключ сообщения, который
// возвращается клиенту и не меняется при правках текста.
type AppError struct {
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	MessageKey string      `json:"message_key"`
	Details    interface{} `json:"details,omitempty"`
	Err        error       `json:"-"`
	HTTPCode   int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is сравнивает по коду, чтобы errors.Is работал для предопределенных
// ошибок, к которым добавили Details/Err через WithDetails/WithError
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !stderrors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Конструктор
func New(code ErrorCode, message, messageKey string, httpCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		MessageKey: messageKey,
		HTTPCode:   httpCode,
	}
}

// Wrap - конструктор с цепочкой ошибок
func Wrap(err error, code ErrorCode, message, messageKey string, httpCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		MessageKey: messageKey,
		Err:        err,
		HTTPCode:   httpCode,
	}
}

// WithDetails возвращает копию ошибки с деталями.
// Копию, а не мутацию - предопределенные ошибки глобальные
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", "auth.login.invalid_credentials", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", "auth.unauthorized", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", "auth.forbidden", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", "auth.token.invalid", http.StatusUnauthorized)
	ErrRefreshDenied      = New(CodeInvalidToken, "Access denied", "auth.token.access_denied", http.StatusUnauthorized)

	// Пользователи
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", "users.not_found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", "users.email_already_exists", http.StatusConflict)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 6 characters", "users.weak_password", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", "users.invalid_role", http.StatusBadRequest)

	// Каталог
	ErrProductNotFound     = New(CodeProductNotFound, "Product not found", "products.not_found", http.StatusNotFound)
	ErrCategoryNotFound    = New(CodeCategoryNotFound, "Category not found", "categories.not_found", http.StatusNotFound)
	ErrSlugAlreadyExists   = New(CodeSlugAlreadyExists, "Slug already exists", "products.slug_already_exists", http.StatusConflict)
	ErrInsufficientStock   = New(CodeInsufficientStock, "Not enough inventory available", "orders.product_not_available", http.StatusBadRequest)
	ErrProductNotAvailable = New(CodeProductNotAvail, "One or more products not found or inactive", "orders.product_not_available", http.StatusBadRequest)

	// Заказы
	ErrOrderNotFound        = New(CodeOrderNotFound, "Order not found", "orders.not_found", http.StatusNotFound)
	ErrInvalidTransition    = New(CodeInvalidTransition, "Invalid order status transition", "orders.invalid_status", http.StatusBadRequest)
	ErrInvalidDateRange     = New(CodeInvalidDateRange, "End date must be after start date", "orders.invalid_date_range", http.StatusBadRequest)
	ErrStartDateInPast      = New(CodeInvalidDateRange, "Start date cannot be in the past", "orders.start_date_in_past", http.StatusBadRequest)
	ErrInvalidPaymentStatus = New(CodeInvalidPayment, "Invalid payment status", "orders.invalid_payment_status", http.StatusBadRequest)

	// Блог
	ErrPostNotFound    = New(CodePostNotFound, "Post not found", "posts.not_found", http.StatusNotFound)
	ErrCommentNotFound = New(CodeCommentNotFound, "Comment not found", "posts.comment_not_found", http.StatusNotFound)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", "common.validation_failed", http.StatusBadRequest)
	ErrTooManyRequests  = New(CodeRateLimited, "Too many requests", "common.rate_limited", http.StatusTooManyRequests)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", "error.internal", http.StatusInternalServerError)
}

func NewConflictError(message string) *AppError {
	return New(CodeConflict, message, "common.conflict", http.StatusConflict)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, "auth.unauthorized", http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, "auth.forbidden", http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, "common.not_found", http.StatusNotFound)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, "common.bad_request", http.StatusBadRequest)
}
