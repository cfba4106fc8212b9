package apperrors

// Коды ошибок приложения. Код - машинное имя, message_key - стабильный
// ключ для локализации на клиенте
const (
	// Аутентификация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Пользователи
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeWeakPassword       ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole    ErrorCode = "INVALID_USER_ROLE"

	// Каталог
	CodeProductNotFound   ErrorCode = "PRODUCT_NOT_FOUND"
	CodeCategoryNotFound  ErrorCode = "CATEGORY_NOT_FOUND"
	CodeSlugAlreadyExists ErrorCode = "SLUG_ALREADY_EXISTS"
	CodeInsufficientStock ErrorCode = "INSUFFICIENT_STOCK"
	CodeProductNotAvail   ErrorCode = "PRODUCT_NOT_AVAILABLE"

	// Заказы
	CodeOrderNotFound     ErrorCode = "ORDER_NOT_FOUND"
	CodeInvalidTransition ErrorCode = "INVALID_ORDER_STATUS"
	CodeInvalidDateRange  ErrorCode = "INVALID_DATE_RANGE"
	CodeInvalidPayment    ErrorCode = "INVALID_PAYMENT_STATUS"

	// Блог
	CodePostNotFound    ErrorCode = "POST_NOT_FOUND"
	CodeCommentNotFound ErrorCode = "COMMENT_NOT_FOUND"

	// Общие
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeRateLimited      ErrorCode = "RATE_LIMITED"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
)
