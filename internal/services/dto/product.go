package dto

import (
	"renta_backend/internal/models"

	"gorm.io/datatypes"
)

// CreateProductRequest - создание товара
type CreateProductRequest struct {
	Name             string         `json:"name" validate:"required,min=2,max=200"`
	Slug             string         `json:"slug" validate:"required,min=2,max=200"`
	Description      string         `json:"description" validate:"omitempty"`
	ShortDescription string         `json:"short_description" validate:"omitempty,max=500"`
	Thumbnail        string         `json:"thumbnail" validate:"omitempty,url"`
	Price            float64        `json:"price" validate:"required,gt=0"`
	InventoryTotal   int            `json:"inventory_total" validate:"required,min=0"`
	CategoryID       *string        `json:"category_id" validate:"omitempty,uuid"`
	Slider           datatypes.JSON `json:"slider" validate:"omitempty"`
	Tags             datatypes.JSON `json:"tags" validate:"omitempty"`
	Status           string         `json:"status" validate:"omitempty,is-product-status"`
}

// UpdateProductRequest - частичное обновление товара.
// Остаток через этот запрос не меняется, только общий фонд
type UpdateProductRequest struct {
	Name             *string         `json:"name" validate:"omitempty,min=2,max=200"`
	Slug             *string         `json:"slug" validate:"omitempty,min=2,max=200"`
	Description      *string         `json:"description"`
	ShortDescription *string         `json:"short_description" validate:"omitempty,max=500"`
	Thumbnail        *string         `json:"thumbnail" validate:"omitempty,url"`
	Price            *float64        `json:"price" validate:"omitempty,gt=0"`
	InventoryTotal   *int            `json:"inventory_total" validate:"omitempty,min=0"`
	CategoryID       *string         `json:"category_id" validate:"omitempty,uuid"`
	Slider           *datatypes.JSON `json:"slider"`
	Tags             *datatypes.JSON `json:"tags"`
	Status           *string         `json:"status" validate:"omitempty,is-product-status"`
	IsActive         *bool           `json:"is_active"`
}

// ProductFilterRequest - фильтрация каталога
type ProductFilterRequest struct {
	CategoryID string   `form:"category_id" validate:"omitempty,uuid"`
	Status     string   `form:"status" validate:"omitempty,is-product-status"`
	Search     string   `form:"search"`
	PriceMin   *float64 `form:"price_min" validate:"omitempty,gte=0"`
	PriceMax   *float64 `form:"price_max" validate:"omitempty,gte=0"`
	Page       int      `form:"page" validate:"omitempty,min=1"`
	PageSize   int      `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// ProductListResponse - страница каталога
type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CreateCategoryRequest - создание категории товаров
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Slug        string `json:"slug" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UpdateCategoryRequest - обновление категории товаров
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Slug        *string `json:"slug" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}
