package apperrors

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке.
// Структура совпадает с успешным ответом: data всегда null,
// плюс path и timestamp для отладки на клиенте
type ErrorResponse struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	MessageKey string      `json:"message_key"`
	Details    interface{} `json:"details,omitempty"`
	Data       interface{} `json:"data"`
	Path       string      `json:"path"`
	Timestamp  string      `json:"timestamp"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError - основная логика обработки ошибок для Gin
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		// Если это не AppError, оборачиваем в InternalError
		appErr = InternalError(err)
	}
	if appErr.HTTPCode >= 500 && !h.Debug {
		// В продакшене скрываем детали внутренних ошибок
		appErr = appErr.WithDetails(nil)
		appErr.Message = "Internal server error"
	}

	// Серверные ошибки логируем вместе с причиной, stack trace клиенту не уходит
	if appErr.HTTPCode >= 500 {
		log.Printf("Server error at %s: %v", c.Request.URL.Path, appErr.Unwrap())
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		StatusCode: appErr.HTTPCode,
		Message:    appErr.Message,
		MessageKey: appErr.MessageKey,
		Details:    appErr.Details,
		Data:       nil,
		Path:       c.Request.URL.Path,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
