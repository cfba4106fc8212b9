package handlers

import (
	"net/http"

	"renta_backend/internal/middleware"
	"renta_backend/internal/models"
	"renta_backend/internal/services"
	"renta_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	*BaseHandler
	productService services.ProductService
}

func NewProductHandler(base *BaseHandler, productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		BaseHandler:    base,
		productService: productService,
	}
}

// RegisterRoutes регистрирует маршруты каталога.
// Чтение публичное, запись - mod и выше
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:slug", h.GetBySlug)
	}

	staff := rg.Group("/products")
	staff.Use(middleware.AuthMiddleware())
	staff.Use(middleware.RequireMinRole(models.UserRoleMod))
	{
		staff.POST("", h.Create)
		staff.PUT("/:id", h.Update)
		staff.DELETE("/:id", h.Delete)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.ListCategories)
	}

	staffCategories := rg.Group("/categories")
	staffCategories.Use(middleware.AuthMiddleware())
	staffCategories.Use(middleware.RequireMinRole(models.UserRoleMod))
	{
		staffCategories.POST("", h.CreateCategory)
		staffCategories.PUT("/:id", h.UpdateCategory)
		staffCategories.DELETE("/:id", h.DeleteCategory)
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	var req dto.ProductFilterRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	result, err := h.productService.List(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "OK", "", result)
}

func (h *ProductHandler) GetBySlug(c *gin.Context) {
	product, err := h.productService.FindBySlug(c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "OK", "", product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	product, err := h.productService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusCreated, "Product created", "products.created", product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	product, err := h.productService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "Product updated", "products.updated", product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "Product deleted", "products.deleted", nil)
}

// Категории

func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.productService.ListCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "OK", "", categories)
}

func (h *ProductHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.productService.CreateCategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusCreated, "Category created", "categories.created", category)
}

func (h *ProductHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.productService.UpdateCategory(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "Category updated", "categories.updated", category)
}

func (h *ProductHandler) DeleteCategory(c *gin.Context) {
	if err := h.productService.DeleteCategory(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	Success(c, http.StatusOK, "Category deleted", "categories.deleted", nil)
}
