package services

import (
	"errors"

	"renta_backend/internal/models"
	"renta_backend/internal/repositories"
	"renta_backend/internal/services/dto"
	"renta_backend/pkg/apperrors"
)

type ProductService interface {
	Create(req *dto.CreateProductRequest) (*models.Product, error)
	Update(id string, req *dto.UpdateProductRequest) (*models.Product, error)
	Delete(id string) error
	FindByID(id string) (*models.Product, error)
	FindBySlug(slug string) (*models.Product, error)
	List(req *dto.ProductFilterRequest) (*dto.ProductListResponse, error)

	CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(id string, req *dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(id string) error
	ListCategories() ([]models.Category, error)
}

type ProductServiceImpl struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductService {
	return &ProductServiceImpl{productRepo: productRepo}
}

func (s *ProductServiceImpl) Create(req *dto.CreateProductRequest) (*models.Product, error) {
	status := models.ProductStatusAvailable
	if req.Status != "" {
		status = models.ProductStatus(req.Status)
	}

	if req.CategoryID != nil {
		if _, err := s.productRepo.FindCategoryByID(*req.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.InternalError(err)
		}
	}

	product := &models.Product{
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Thumbnail:        req.Thumbnail,
		Price:            req.Price,
		// Новый товар: весь фонд свободен
		InventoryTotal:     req.InventoryTotal,
		InventoryAvailable: req.InventoryTotal,
		CategoryID:         req.CategoryID,
		Slider:             req.Slider,
		Tags:               req.Tags,
		Status:             status,
		IsActive:           true,
	}

	if err := s.productRepo.Create(product); err != nil {
		if errors.Is(err, repositories.ErrSlugAlreadyExists) {
			return nil, apperrors.ErrSlugAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return product, nil
}

func (s *ProductServiceImpl) Update(id string, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ShortDescription != nil {
		product.ShortDescription = *req.ShortDescription
	}
	if req.Thumbnail != nil {
		product.Thumbnail = *req.Thumbnail
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.InventoryTotal != nil {
		// Фонд растет - прирост сразу свободен. Фонд сокращается -
		// остаток срезается не ниже нуля, выданные единицы вернутся
		// через Release с клампом
		delta := *req.InventoryTotal - product.InventoryTotal
		product.InventoryTotal = *req.InventoryTotal
		product.InventoryAvailable += delta
		if product.InventoryAvailable < 0 {
			product.InventoryAvailable = 0
		}
		if product.InventoryAvailable > product.InventoryTotal {
			product.InventoryAvailable = product.InventoryTotal
		}
	}
	if req.CategoryID != nil {
		if _, err := s.productRepo.FindCategoryByID(*req.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		product.CategoryID = req.CategoryID
	}
	if req.Slider != nil {
		product.Slider = *req.Slider
	}
	if req.Tags != nil {
		product.Tags = *req.Tags
	}
	if req.Status != nil {
		product.Status = models.ProductStatus(*req.Status)
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrSlugAlreadyExists) {
			return nil, apperrors.ErrSlugAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return product, nil
}

func (s *ProductServiceImpl) Delete(id string) error {
	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProductServiceImpl) FindByID(id string) (*models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

func (s *ProductServiceImpl) FindBySlug(slug string) (*models.Product, error) {
	product, err := s.productRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

func (s *ProductServiceImpl) List(req *dto.ProductFilterRequest) (*dto.ProductListResponse, error) {
	criteria := repositories.ProductFilter{
		CategoryID: req.CategoryID,
		Status:     models.ProductStatus(req.Status),
		Search:     req.Search,
		PriceMin:   req.PriceMin,
		PriceMax:   req.PriceMax,
		OnlyActive: true,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	products, total, err := s.productRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return &dto.ProductListResponse{
		Products: products,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Категории

func (s *ProductServiceImpl) CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}

	if err := s.productRepo.CreateCategory(category); err != nil {
		if errors.Is(err, repositories.ErrSlugAlreadyExists) {
			return nil, apperrors.ErrSlugAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return category, nil
}

func (s *ProductServiceImpl) UpdateCategory(id string, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.productRepo.FindCategoryByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.productRepo.UpdateCategory(category); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return category, nil
}

func (s *ProductServiceImpl) DeleteCategory(id string) error {
	if err := s.productRepo.DeleteCategory(id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProductServiceImpl) ListCategories() ([]models.Category, error) {
	categories, err := s.productRepo.FindAllCategories()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}
