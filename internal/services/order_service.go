package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"renta_backend/internal/auth"
	"renta_backend/internal/email"
	"renta_backend/internal/logger"
	"renta_backend/internal/models"
	"renta_backend/internal/queue"
	"renta_backend/internal/repositories"
	"renta_backend/internal/services/dto"
	"renta_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type OrderService interface {
	Create(userID string, req *dto.CreateOrderRequest) (*models.Order, error)
	FindByID(actorID string, actorRole models.UserRole, orderID string) (*models.Order, error)
	FindAllForUser(userID string, page, pageSize int) (*dto.OrderListResponse, error)
	FindWithFilter(req *dto.OrderFilterRequest) (*dto.OrderListResponse, error)
	UpdateStatus(orderID string, newStatus models.OrderStatus) (*models.Order, error)
	UpdatePaymentStatus(orderID string, status models.PaymentStatus) (*models.Order, error)
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}

type OrderServiceImpl struct {
	orderRepo     repositories.OrderRepository
	productRepo   repositories.ProductRepository
	publisher     queue.Publisher
	emailProvider email.Provider
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	publisher queue.Publisher,
	emailProvider email.Provider,
) OrderService {
	return &OrderServiceImpl{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		publisher:     publisher,
		emailProvider: emailProvider,
	}
}

// RentalDays считает число дней аренды: потолок от длительности в
// сутках, минимум один день
func RentalDays(start, end time.Time) int {
	span := end.Sub(start)
	if span <= 0 {
		return 0
	}
	days := int(math.Ceil(float64(span.Milliseconds()) / float64(24*time.Hour/time.Millisecond)))
	if days < 1 {
		days = 1
	}
	return days
}

// Create оформляет заказ аренды. Резервирование остатков и запись
// заказа идут в одной транзакции: либо зарезервированы все позиции
// и заказ создан, либо ничего
func (s *OrderServiceImpl) Create(userID string, req *dto.CreateOrderRequest) (*models.Order, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}
	if req.StartDate.Before(time.Now()) {
		return nil, apperrors.ErrStartDateInPast
	}

	days := RentalDays(req.StartDate, req.EndDate)

	order := &models.Order{
		UserID:        userID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        models.OrderStatusPlaced,
		PaymentStatus: models.PaymentStatusPending,
		Notes:         req.Notes,
	}

	err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		var amount float64
		items := make([]models.OrderItem, 0, len(req.Items))

		for _, item := range req.Items {
			product, err := s.productRepo.FindInTx(tx, item.ProductID)
			if err != nil {
				if errors.Is(err, repositories.ErrProductNotFound) {
					return apperrors.ErrProductNotAvailable
				}
				return err
			}

			if !product.IsActive || product.Status == models.ProductStatusDiscontinued {
				return apperrors.ErrProductNotAvailable
			}

			if err := s.productRepo.Reserve(tx, product.ID, item.Quantity); err != nil {
				if errors.Is(err, repositories.ErrInsufficientStock) {
					return apperrors.ErrInsufficientStock.WithDetails(map[string]interface{}{
						"product_id": product.ID,
						"requested":  item.Quantity,
						"available":  product.InventoryAvailable,
					})
				}
				if errors.Is(err, repositories.ErrProductNotFound) {
					return apperrors.ErrProductNotAvailable
				}
				return err
			}

			amount += product.Price * float64(item.Quantity) * float64(days)
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
			})
		}

		order.Amount = amount
		order.Items = items
		return s.orderRepo.Create(tx, order)
	})
	if err != nil {
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("order placed",
		"order_id", order.ID,
		"user_id", userID,
		"amount", order.Amount,
		"days", days,
	)

	s.notifyOrderPlaced(order, days)

	return s.reload(order.ID)
}

// notifyOrderPlaced шлет событие в брокер и письмо пользователю.
// Заказ уже зафиксирован, сбои уведомлений только логируются
func (s *OrderServiceImpl) notifyOrderPlaced(order *models.Order, days int) {
	full, err := s.orderRepo.FindByID(order.ID)
	if err != nil {
		logger.WithError(err).Error("failed to load order for notifications", "order_id", order.ID)
		return
	}

	event := queue.OrderPlacedEvent{
		OrderID:   full.ID,
		UserID:    full.UserID,
		UserEmail: full.User.Email,
		StartDate: full.StartDate,
		EndDate:   full.EndDate,
		Amount:    full.Amount,
		PlacedAt:  full.CreatedAt,
	}
	confirmation := email.OrderConfirmationData{
		OrderID:   full.ID,
		UserName:  full.User.Name,
		StartDate: full.StartDate,
		EndDate:   full.EndDate,
		Days:      days,
		Amount:    full.Amount,
	}
	for _, item := range full.Items {
		event.Items = append(event.Items, queue.OrderItemPayload{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
		confirmation.Items = append(confirmation.Items, email.OrderConfirmationItem{
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	userEmail := full.User.Email
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.publisher.Publish(ctx, queue.OrderPlacedQueue, event)

		if err := s.emailProvider.SendOrderConfirmation(userEmail, confirmation); err != nil {
			logger.WithError(err).Warn("failed to send order confirmation", "order_id", event.OrderID)
		}
	}()
}

// FindByID возвращает заказ. Пользователь видит только свои заказы,
// mod и выше - любые
func (s *OrderServiceImpl) FindByID(actorID string, actorRole models.UserRole, orderID string) (*models.Order, error) {
	var order *models.Order
	var err error

	if auth.HasAtLeast(actorRole, models.UserRoleMod) {
		order, err = s.orderRepo.FindByID(orderID)
	} else {
		order, err = s.orderRepo.FindByIDForUser(orderID, actorID)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return order, nil
}

func (s *OrderServiceImpl) FindAllForUser(userID string, page, pageSize int) (*dto.OrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	orders, total, err := s.orderRepo.FindAllForUser(userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.OrderListResponse{
		Orders:   orders,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *OrderServiceImpl) FindWithFilter(req *dto.OrderFilterRequest) (*dto.OrderListResponse, error) {
	criteria := repositories.OrderFilter{
		UserID:        req.UserID,
		Status:        models.OrderStatus(req.Status),
		PaymentStatus: models.PaymentStatus(req.PaymentStatus),
		DateFrom:      req.DateFrom,
		DateTo:        req.DateTo,
		Page:          req.Page,
		PageSize:      req.PageSize,
	}

	orders, total, err := s.orderRepo.FindWithFilter(criteria)
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

	return &dto.OrderListResponse{
		Orders:   orders,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateStatus переводит заказ по графу жизненного цикла. При переходе
// в Completed или Cancelled арендованные единицы возвращаются в остаток
// в той же транзакции
func (s *OrderServiceImpl) UpdateStatus(orderID string, newStatus models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(newStatus) {
		return nil, apperrors.ErrInvalidTransition
	}

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !models.CanTransition(order.Status, newStatus) {
		return nil, apperrors.ErrInvalidTransition.WithDetails(map[string]interface{}{
			"from": order.Status,
			"to":   newStatus,
		})
	}

	oldStatus := order.Status

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.UpdateStatus(tx, orderID, newStatus); err != nil {
			return err
		}
		if models.ReleasesInventory(newStatus) {
			if err := s.releaseItems(tx, order.Items); err != nil {
				return err
			}
		}
		if newStatus == models.OrderStatusCompleted {
			return s.recordReturn(tx, order)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("order status changed",
		"order_id", orderID,
		"from", oldStatus,
		"to", newStatus,
	)

	s.publishStatusChange(order.UserID, orderID, oldStatus, newStatus)

	return s.reload(orderID)
}

// recordReturn фиксирует фактическую дату возврата и начисляет пеню
// за просрочку по дневной ставке заказа
func (s *OrderServiceImpl) recordReturn(tx *gorm.DB, order *models.Order) error {
	now := time.Now()

	var lateFee float64
	var lateFeeReason string
	if now.After(order.EndDate) {
		lateDays := RentalDays(order.EndDate, now)
		days := RentalDays(order.StartDate, order.EndDate)
		lateFee = order.Amount / float64(days) * float64(lateDays)
		lateFeeReason = fmt.Sprintf("returned %d day(s) late", lateDays)
	}

	return s.orderRepo.RecordReturn(tx, order.ID, now, lateFee, lateFeeReason)
}

// UpdatePaymentStatus меняет статус оплаты. От жизненного цикла заказа
// он не зависит
func (s *OrderServiceImpl) UpdatePaymentStatus(orderID string, status models.PaymentStatus) (*models.Order, error) {
	if !models.ValidPaymentStatus(status) {
		return nil, apperrors.ErrInvalidPaymentStatus
	}

	if err := s.orderRepo.UpdatePaymentStatus(orderID, status); err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("order payment status changed", "order_id", orderID, "payment_status", status)

	return s.reload(orderID)
}

// SweepExpired принудительно завершает просроченные заказы.
// Переход в Expired идет мимо графа: это единственный способ
// получить этот статус
func (s *OrderServiceImpl) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	const batchSize = 100

	expired, err := s.orderRepo.FindExpired(now, batchSize)
	if err != nil {
		return 0, err
	}

	swept := 0
	for i := range expired {
		if ctx.Err() != nil {
			return swept, ctx.Err()
		}

		order := &expired[i]
		err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
			if err := s.orderRepo.UpdateStatus(tx, order.ID, models.OrderStatusExpired); err != nil {
				return err
			}
			return s.releaseItems(tx, order.Items)
		})
		if err != nil {
			logger.WithError(err).Error("failed to expire order", "order_id", order.ID)
			continue
		}

		logger.Info("order expired", "order_id", order.ID, "end_date", order.EndDate)
		s.publishStatusChange(order.UserID, order.ID, order.Status, models.OrderStatusExpired)
		swept++
	}

	return swept, nil
}

func (s *OrderServiceImpl) releaseItems(tx *gorm.DB, items []models.OrderItem) error {
	for _, item := range items {
		if err := s.productRepo.Release(tx, item.ProductID, item.Quantity); err != nil {
			// Товар могли удалить за время аренды, заказ это не ломает
			if errors.Is(err, repositories.ErrProductNotFound) {
				logger.Warn("release skipped, product missing", "product_id", item.ProductID)
				continue
			}
			return err
		}
	}
	return nil
}

func (s *OrderServiceImpl) publishStatusChange(userID, orderID string, from, to models.OrderStatus) {
	event := queue.OrderStatusChangedEvent{
		OrderID:   orderID,
		UserID:    userID,
		OldStatus: string(from),
		NewStatus: string(to),
		ChangedAt: time.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.publisher.Publish(ctx, queue.OrderStatusChangedQueue, event)
	}()
}

func (s *OrderServiceImpl) reload(orderID string) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return order, nil
}
