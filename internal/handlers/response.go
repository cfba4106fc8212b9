package handlers

import "github.com/gin-gonic/gin"

// SuccessResponse - единый конверт успешного ответа. Формат
// зеркалит конверт ошибок: клиенты разбирают оба одинаково
type SuccessResponse struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	MessageKey string      `json:"message_key,omitempty"`
	Data       interface{} `json:"data"`
}

// Success отправляет ответ в стандартном конверте
func Success(c *gin.Context, status int, message, messageKey string, data interface{}) {
	c.JSON(status, SuccessResponse{
		StatusCode: status,
		Message:    message,
		MessageKey: messageKey,
		Data:       data,
	})
}
