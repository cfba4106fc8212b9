package handlers

import (
	"net/http"

	"renta_backend/internal/auth"
	"renta_backend/internal/config"
	"renta_backend/internal/middleware"
	"renta_backend/internal/services"
	"renta_backend/internal/services/dto"
	"renta_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// refreshCookiePath ограничивает refresh-cookie единственным
// эндпоинтом, который его читает
const refreshCookiePath = "/api/v1/auth/refresh"

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует все маршруты для аутентификации
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
	}

	protected := rg.Group("/auth")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", h.Logout)
		protected.GET("/profile", h.Profile)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setAuthCookies(c, response)
	Success(c, http.StatusCreated, "Registration successful", "auth.register.success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setAuthCookies(c, response)
	Success(c, http.StatusOK, "Login successful", "auth.login.success", response)
}

// Refresh ротирует пару токенов. Токен берется из cookie, поле тела -
// запасной вариант для мобильных клиентов без cookie
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, _ := c.Cookie(middleware.RefreshTokenCookie)
	if refreshToken == "" {
		var req dto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		h.HandleServiceError(c, apperrors.ErrRefreshDenied)
		return
	}

	// Отказ ничего не чистит: сессию сбрасывает только явный logout
	response, err := h.authService.Refresh(refreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setAuthCookies(c, response)
	Success(c, http.StatusOK, "Token refreshed", "auth.token.refreshed", response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.clearAuthCookies(c)
	Success(c, http.StatusOK, "Logged out", "auth.logout.success", nil)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUserDetails(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "OK", "", user)
}

func secureCookies() bool {
	return config.GetConfig().Server.Env != "development"
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, response *dto.AuthResponse) {
	secure := secureCookies()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, response.AccessToken,
		int(auth.AccessTTL().Seconds()), "/", "", secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, response.RefreshToken,
		int(auth.RefreshTTL().Seconds()), refreshCookiePath, "", secure, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	secure := secureCookies()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, refreshCookiePath, "", secure, true)
}
