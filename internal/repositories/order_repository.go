package repositories

import (
	"errors"
	"time"

	"renta_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	// Create принимает db, чтобы заказ записывался в одной транзакции
	// с резервированием остатков
	Create(db *gorm.DB, order *models.Order) error

	FindByID(id string) (*models.Order, error)
	FindByIDForUser(id, userID string) (*models.Order, error)
	FindAllForUser(userID string, limit, offset int) ([]models.Order, int64, error)
	FindWithFilter(criteria OrderFilter) ([]models.Order, int64, error)

	UpdateStatus(db *gorm.DB, orderID string, status models.OrderStatus) error
	UpdatePaymentStatus(orderID string, status models.PaymentStatus) error

	// RecordReturn фиксирует фактическую дату возврата; пеня пишется
	// только при ненулевой сумме
	RecordReturn(db *gorm.DB, orderID string, returnedAt time.Time, lateFee float64, lateFeeReason string) error

	// FindExpired возвращает активные заказы, у которых дата окончания
	// аренды уже в прошлом
	FindExpired(now time.Time, limit int) ([]models.Order, error)

	// Transaction открывает транзакцию для составных операций
	// (создание заказа вместе с резервированием остатков)
	Transaction(fn func(tx *gorm.DB) error) error
}

type OrderRepositoryImpl struct {
	db *gorm.DB
}

type OrderFilter struct {
	UserID        string
	Status        models.OrderStatus
	PaymentStatus models.PaymentStatus
	DateFrom      *time.Time
	DateTo        *time.Time
	Page          int
	PageSize      int
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) Create(db *gorm.DB, order *models.Order) error {
	return db.Create(order).Error
}

func (r *OrderRepositoryImpl) FindByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("Items.Product").Preload("User").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByIDForUser(id, userID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("Items.Product").
		First(&order, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindAllForUser(userID string, limit, offset int) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("Items").Preload("Items.Product").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *OrderRepositoryImpl) FindWithFilter(criteria OrderFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})

	if criteria.UserID != "" {
		query = query.Where("user_id = ?", criteria.UserID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.PaymentStatus != "" {
		query = query.Where("payment_status = ?", criteria.PaymentStatus)
	}
	if criteria.DateFrom != nil {
		query = query.Where("created_at >= ?", *criteria.DateFrom)
	}
	if criteria.DateTo != nil {
		query = query.Where("created_at <= ?", *criteria.DateTo)
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

	var orders []models.Order
	err := query.Preload("Items").Preload("Items.Product").Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *OrderRepositoryImpl) UpdateStatus(db *gorm.DB, orderID string, status models.OrderStatus) error {
	result := db.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) UpdatePaymentStatus(orderID string, status models.PaymentStatus) error {
	result := r.db.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("payment_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) RecordReturn(db *gorm.DB, orderID string, returnedAt time.Time, lateFee float64, lateFeeReason string) error {
	updates := map[string]interface{}{"actual_return_date": returnedAt}
	if lateFee > 0 {
		updates["late_fee"] = lateFee
		updates["late_fee_reason"] = lateFeeReason
	}
	result := db.Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

func (r *OrderRepositoryImpl) FindExpired(now time.Time, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("end_date < ? AND status IN ?", now,
			[]models.OrderStatus{models.OrderStatusPlaced, models.OrderStatusInProgress}).
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
