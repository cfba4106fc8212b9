package services

import (
	"time"

	"renta_backend/internal/models"
	"renta_backend/internal/repositories"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Моки репозиториев для unit-тестов сервисного слоя.
// Transaction выполняет колбэк с nil *gorm.DB: tx внутри моков не нужен

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshTokenHash(userID string, hash *string) error {
	args := m.Called(userID, hash)
	return args.Error(0)
}

func (m *MockUserRepository) FindWithFilter(criteria repositories.UserFilter) ([]models.User, int64, error) {
	args := m.Called(criteria)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySlug(slug string) (*models.Product, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) FindWithFilter(criteria repositories.ProductFilter) ([]models.Product, int64, error) {
	args := m.Called(criteria)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) FindInTx(db *gorm.DB, id string) (*models.Product, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Reserve(db *gorm.DB, productID string, qty int) error {
	args := m.Called(db, productID, qty)
	return args.Error(0)
}

func (m *MockProductRepository) Release(db *gorm.DB, productID string, qty int) error {
	args := m.Called(db, productID, qty)
	return args.Error(0)
}

func (m *MockProductRepository) FindCategoryByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockProductRepository) FindAllCategories() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockProductRepository) CreateCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteCategory(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(db *gorm.DB, order *models.Order) error {
	args := m.Called(db, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDForUser(id, userID string) (*models.Order, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAllForUser(userID string, limit, offset int) ([]models.Order, int64, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]models.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) FindWithFilter(criteria repositories.OrderFilter) ([]models.Order, int64, error) {
	args := m.Called(criteria)
	return args.Get(0).([]models.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(db *gorm.DB, orderID string, status models.OrderStatus) error {
	args := m.Called(db, orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdatePaymentStatus(orderID string, status models.PaymentStatus) error {
	args := m.Called(orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) RecordReturn(db *gorm.DB, orderID string, returnedAt time.Time, lateFee float64, lateFeeReason string) error {
	args := m.Called(db, orderID, returnedAt, lateFee, lateFeeReason)
	return args.Error(0)
}

func (m *MockOrderRepository) FindExpired(now time.Time, limit int) ([]models.Order, error) {
	args := m.Called(now, limit)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	args := m.Called(fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(nil)
}
