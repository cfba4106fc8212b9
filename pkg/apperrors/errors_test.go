package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_IsMatchesByCode(t *testing.T) {
	t.Parallel()

	// WithDetails возвращает копию, errors.Is все равно находит оригинал
	withDetails := ErrInsufficientStock.WithDetails(map[string]interface{}{"product_id": "p1"})
	assert.ErrorIs(t, withDetails, ErrInsufficientStock)
	assert.NotErrorIs(t, withDetails, ErrOrderNotFound)

	// оригинал деталей не получил
	assert.Nil(t, ErrInsufficientStock.Details)
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	wrapped := InternalError(cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, http.StatusInternalServerError, wrapped.HTTPCode)
}

// TestHandleGinError_Envelope - формат ответа об ошибке
func TestHandleGinError_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/orders/missing", nil)

	HandleError(c, ErrOrderNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.StatusCode)
	assert.Equal(t, "orders.not_found", body.MessageKey)
	assert.Equal(t, "/api/v1/orders/missing", body.Path)
	assert.Nil(t, body.Data)
	assert.NotEmpty(t, body.Timestamp)
}

// TestHandleGinError_WrapsUnknown - не-AppError превращается в 500
func TestHandleGinError_WrapsUnknown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/orders", nil)

	HandleError(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
