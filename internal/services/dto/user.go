package dto

import (
	"time"

	"renta_backend/internal/models"
)

// CreateUserRequest - создание пользователя администратором
type CreateUserRequest struct {
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"omitempty,is-user-role"`
	Phone    string          `json:"phone" validate:"omitempty,max=20"`
}

// UpdateUserRequest - частичное обновление пользователя.
// nil-поля не трогаются
type UpdateUserRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Password *string          `json:"password" validate:"omitempty,min=6"`
	Role     *models.UserRole `json:"role" validate:"omitempty,is-user-role"`
	Phone    *string          `json:"phone" validate:"omitempty,max=20"`
	Avatar   *string          `json:"avatar" validate:"omitempty,url"`
	IsActive *bool            `json:"is_active"`
}

// UserFilterRequest - фильтрация списка пользователей администратором
type UserFilterRequest struct {
	Role     models.UserRole `form:"role" validate:"omitempty,is-user-role"`
	IsActive *bool           `form:"is_active"`
	DateFrom *time.Time      `form:"date_from"`
	DateTo   *time.Time      `form:"date_to" validate:"omitempty,gtefield=DateFrom"`
	Search   string          `form:"search"`
	Page     int             `form:"page" validate:"omitempty,min=1"`
	PageSize int             `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// UserListResponse - страница пользователей
type UserListResponse struct {
	Users    []UserDTO `json:"users"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}
