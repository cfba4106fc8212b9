package dto

import (
	"time"

	"renta_backend/internal/models"
)

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest - запрос обновления токена.
// Токен обычно приходит в cookie, поле тела - запасной вариант
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"omitempty"`
}

// AuthResponse - ответ с токенами
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

// UserDTO - базовая информация о пользователе без секретных полей
type UserDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	Phone     string          `json:"phone,omitempty"`
	Avatar    string          `json:"avatar,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewUserDTO собирает безопасное представление пользователя.
// PasswordHash и RefreshTokenHash наружу не выходят никогда
func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		Phone:     user.Phone,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}
