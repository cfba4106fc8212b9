package email

import "time"

// Email представляет структуру email сообщения
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// OrderConfirmationData - данные письма-подтверждения заказа
type OrderConfirmationData struct {
	OrderID   string
	UserName  string
	StartDate time.Time
	EndDate   time.Time
	Days      int
	Amount    float64
	Items     []OrderConfirmationItem
}

type OrderConfirmationItem struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendOrderConfirmation отправляет подтверждение заказа
	SendOrderConfirmation(to string, data OrderConfirmationData) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	// Close закрывает соединение с провайдером
	Close() error
}
