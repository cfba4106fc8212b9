package models

import "time"

type Order struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;index" json:"userId"`
	User   *User  `gorm:"foreignKey:UserID" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	StartDate time.Time `gorm:"not null;index" json:"startDate"`
	EndDate   time.Time `gorm:"not null;index" json:"endDate"`

	// Итог: sum(цена * количество * дни аренды), фиксируется при создании
	Amount float64 `gorm:"not null" json:"amount"`

	// Статус меняется только через OrderService.UpdateStatus (state machine).
	// Заказы никогда не удаляются: отмена и истечение - статусы
	Status        OrderStatus   `gorm:"type:varchar(20);default:'Order Placed';index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(10);default:'pending'" json:"paymentStatus"`

	Notes string `json:"notes,omitempty"`

	ActualReturnDate *time.Time `json:"actualReturnDate,omitempty"`
	LateFee          float64    `gorm:"default:0" json:"lateFee"`
	LateFeeReason    string     `json:"lateFeeReason,omitempty"`
}

type OrderItem struct {
	BaseModel
	OrderID   string   `gorm:"type:uuid;not null;index" json:"-"`
	ProductID string   `gorm:"type:uuid;not null;index" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`

	// Снимок цены на момент заказа - каталог может меняться
	UnitPrice float64 `gorm:"not null" json:"unitPrice"`
}
