package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"renta_backend/internal/services/dto"
	"renta_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBindAndValidateJSON_Valid(t *testing.T) {
	t.Parallel()

	h := NewBaseHandler(validator.New())
	c, _ := newTestContext(t, `{"email":"user@test.com","password":"super_password123"}`)

	var req dto.LoginRequest
	assert.True(t, h.BindAndValidate_JSON(c, &req))
	assert.Equal(t, "user@test.com", req.Email)
}

// TestBindAndValidateJSON_UnknownField - неизвестные поля в теле
// отклоняются: опечатка клиента не должна молча пропадать
func TestBindAndValidateJSON_UnknownField(t *testing.T) {
	t.Parallel()

	h := NewBaseHandler(validator.New())
	c, w := newTestContext(t, `{"email":"user@test.com","password":"super_password123","pasword":"oops"}`)

	var req dto.LoginRequest
	assert.False(t, h.BindAndValidate_JSON(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBindAndValidateJSON_MalformedBody(t *testing.T) {
	t.Parallel()

	h := NewBaseHandler(validator.New())
	c, w := newTestContext(t, `{"email":`)

	var req dto.LoginRequest
	assert.False(t, h.BindAndValidate_JSON(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBindAndValidateJSON_ValidationFailure(t *testing.T) {
	t.Parallel()

	h := NewBaseHandler(validator.New())
	c, w := newTestContext(t, `{"email":"not-an-email","password":""}`)

	var req dto.LoginRequest
	assert.False(t, h.BindAndValidate_JSON(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
