package middleware

import (
	"strings"

	"renta_backend/internal/auth"
	"renta_backend/internal/logger"
	"renta_backend/internal/models"
	"renta_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	// AccessTokenCookie - имя cookie с access-токеном
	AccessTokenCookie = "access_token"
	// RefreshTokenCookie - имя cookie с refresh-токеном
	RefreshTokenCookie = "refresh_token"
)

// extractToken достает access-токен: сперва cookie, затем Bearer
func extractToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := auth.ParseAccessToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		// Сохраняем claims в контекст
		c.Set("userID", claims.UserID)
		c.Set("role", models.UserRole(claims.Role))
		c.Set("email", claims.Email)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireMinRole пускает только роли не ниже требуемой
func RequireMinRole(required models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: no role"))
			c.Abort()
			return
		}

		if !auth.HasAtLeast(role, required) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: insufficient permissions"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

// GetUserRole извлекает роль пользователя из контекста
func GetUserRole(c *gin.Context) (models.UserRole, bool) {
	roleVal, exists := c.Get("role")
	if !exists {
		return "", false
	}

	role, ok := roleVal.(models.UserRole)
	if !ok {
		// Роль могла попасть в контекст строкой
		roleStr, isString := roleVal.(string)
		if !isString {
			return "", false
		}
		role = models.UserRole(roleStr)
	}

	if !models.ValidUserRole(role) {
		return "", false
	}
	return role, true
}
