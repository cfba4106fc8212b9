// Package queue описывает события заказов, публикуемые в брокер.
package queue

import "time"

const (
	OrderPlacedQueue        = "orders.placed"
	OrderStatusChangedQueue = "orders.status_changed"
)

// OrderItemPayload - позиция заказа в событии
type OrderItemPayload struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderPlacedEvent публикуется после успешного создания заказа.
// Содержит все, что нужно потребителям без похода в БД
type OrderPlacedEvent struct {
	OrderID   string             `json:"order_id"`
	UserID    string             `json:"user_id"`
	UserEmail string             `json:"user_email"`
	Items     []OrderItemPayload `json:"items"`
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
	Amount    float64            `json:"amount"`
	PlacedAt  time.Time          `json:"placed_at"`
}

// OrderStatusChangedEvent публикуется при каждой смене статуса заказа
type OrderStatusChangedEvent struct {
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedAt time.Time `json:"changed_at"`
}
