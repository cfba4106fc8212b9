package dto

import "renta_backend/internal/models"

// CreatePostRequest - создание записи блога
type CreatePostRequest struct {
	Title      string  `json:"title" validate:"required,min=2,max=200"`
	Slug       string  `json:"slug" validate:"required,min=2,max=200"`
	Content    string  `json:"content" validate:"required"`
	Thumbnail  string  `json:"thumbnail" validate:"omitempty,url"`
	CategoryID *string `json:"category_id" validate:"omitempty,uuid"`
	Published  bool    `json:"published"`
}

// UpdatePostRequest - частичное обновление записи блога
type UpdatePostRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=2,max=200"`
	Slug       *string `json:"slug" validate:"omitempty,min=2,max=200"`
	Content    *string `json:"content"`
	Thumbnail  *string `json:"thumbnail" validate:"omitempty,url"`
	CategoryID *string `json:"category_id" validate:"omitempty,uuid"`
	Published  *bool   `json:"published"`
}

// PostFilterRequest - фильтрация записей блога
type PostFilterRequest struct {
	CategoryID string `form:"category_id" validate:"omitempty,uuid"`
	AuthorID   string `form:"author_id" validate:"omitempty,uuid"`
	Search     string `form:"search"`
	Page       int    `form:"page" validate:"omitempty,min=1"`
	PageSize   int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// PostListResponse - страница записей блога
type PostListResponse struct {
	Posts    []models.Post `json:"posts"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// CreateCommentRequest - комментарий к записи
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// CreatePostCategoryRequest - создание категории блога
type CreatePostCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Slug string `json:"slug" validate:"required,min=2,max=100"`
}
