package repositories

import (
	"errors"
	"strings"

	"renta_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrSlugAlreadyExists = errors.New("slug already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCategoryNotFound  = errors.New("category not found")
)

type ProductRepository interface {
	FindByID(id string) (*models.Product, error)
	FindBySlug(slug string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	FindWithFilter(criteria ProductFilter) ([]models.Product, int64, error)

	// FindInTx читает товар внутри транзакции вызывающего
	FindInTx(db *gorm.DB, id string) (*models.Product, error)

	// Reserve и Release - единственный путь изменения inventory_available.
	// Принимают db, чтобы работать внутри транзакции вызывающего
	Reserve(db *gorm.DB, productID string, qty int) error
	Release(db *gorm.DB, productID string, qty int) error

	// Категории
	FindCategoryByID(id string) (*models.Category, error)
	FindAllCategories() ([]models.Category, error)
	CreateCategory(category *models.Category) error
	UpdateCategory(category *models.Category) error
	DeleteCategory(id string) error
}

type ProductRepositoryImpl struct {
	db *gorm.DB
}

type ProductFilter struct {
	CategoryID string
	Status     models.ProductStatus
	Search     string
	PriceMin   *float64
	PriceMax   *float64
	OnlyActive bool
	Page       int
	PageSize   int
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) FindByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) FindBySlug(slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").First(&product, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) Create(product *models.Product) error {
	var existing models.Product
	if err := r.db.Where("slug = ?", product.Slug).First(&existing).Error; err == nil {
		return ErrSlugAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(product).Error
}

func (r *ProductRepositoryImpl) Update(product *models.Product) error {
	result := r.db.Save(product)
	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "duplicate key") {
			return ErrSlugAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) FindWithFilter(criteria ProductFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})

	if criteria.CategoryID != "" {
		query = query.Where("category_id = ?", criteria.CategoryID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", search, search)
	}
	if criteria.PriceMin != nil {
		query = query.Where("price >= ?", *criteria.PriceMin)
	}
	if criteria.PriceMax != nil {
		query = query.Where("price <= ?", *criteria.PriceMax)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var products []models.Product
	err := query.Preload("Category").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductRepositoryImpl) FindInTx(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := db.First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Reserve атомарно списывает qty единиц. Условие в WHERE защищает от
// ухода остатка в минус при конкурентных заказах: 0 затронутых строк
// означает нехватку остатка (или отсутствие товара)
func (r *ProductRepositoryImpl) Reserve(db *gorm.DB, productID string, qty int) error {
	if qty <= 0 {
		return ErrInsufficientStock
	}

	result := db.Model(&models.Product{}).
		Where("id = ? AND inventory_available >= ?", productID, qty).
		Update("inventory_available", gorm.Expr("inventory_available - ?", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrProductNotFound
		}
		return ErrInsufficientStock
	}
	return nil
}

// Release возвращает qty единиц в остаток. LEAST не дает остатку
// превысить общий фонд, если возврат пришел дважды
func (r *ProductRepositoryImpl) Release(db *gorm.DB, productID string, qty int) error {
	if qty <= 0 {
		return nil
	}

	result := db.Model(&models.Product{}).
		Where("id = ?", productID).
		Update("inventory_available", gorm.Expr("LEAST(inventory_total, inventory_available + ?)", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Категории

func (r *ProductRepositoryImpl) FindCategoryByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *ProductRepositoryImpl) FindAllCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *ProductRepositoryImpl) CreateCategory(category *models.Category) error {
	var existing models.Category
	if err := r.db.Where("slug = ?", category.Slug).First(&existing).Error; err == nil {
		return ErrSlugAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(category).Error
}

func (r *ProductRepositoryImpl) UpdateCategory(category *models.Category) error {
	result := r.db.Save(category)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) DeleteCategory(id string) error {
	result := r.db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
