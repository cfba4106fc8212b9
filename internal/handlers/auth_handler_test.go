package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"renta_backend/internal/middleware"
	"renta_backend/internal/services/dto"
	"renta_backend/internal/validator"
	"renta_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	refreshErr error
}

func (s *stubAuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return nil, apperrors.ErrUnauthorized
}

func (s *stubAuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return nil, apperrors.ErrInvalidCredentials
}

func (s *stubAuthService) Refresh(refreshToken string) (*dto.AuthResponse, error) {
	return nil, s.refreshErr
}

func (s *stubAuthService) Logout(userID string) error { return nil }

func (s *stubAuthService) GetUserDetails(userID string) (*dto.UserDTO, error) {
	return nil, apperrors.ErrUserNotFound
}

// TestRefresh_FailureKeepsCookies - отказ в ротации не трогает cookie:
// состояние сбрасывает только явный logout
func TestRefresh_FailureKeepsCookies(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(NewBaseHandler(validator.New()), &stubAuthService{
		refreshErr: apperrors.ErrRefreshDenied,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	c.Request.AddCookie(&http.Cookie{Name: middleware.RefreshTokenCookie, Value: "stale-token"})

	h.Refresh(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Header().Values("Set-Cookie"))
}

// TestRefresh_MissingToken - без cookie и без тела ротация отклоняется
func TestRefresh_MissingToken(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	h := NewAuthHandler(NewBaseHandler(validator.New()), &stubAuthService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)

	h.Refresh(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
