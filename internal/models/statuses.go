package models

type UserRole string
type ProductStatus string
type OrderStatus string
type PaymentStatus string

const (
	UserRoleUser       UserRole = "user"
	UserRoleMod        UserRole = "mod"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "super_admin"

	ProductStatusAvailable    ProductStatus = "available"
	ProductStatusLimited      ProductStatus = "limited"
	ProductStatusOutOfStock   ProductStatus = "out_of_stock"
	ProductStatusDiscontinued ProductStatus = "discontinued"

	// Статусы заказа. Строки с пробелами - исторический формат API,
	// клиенты на него завязаны
	OrderStatusPlaced     OrderStatus = "Order Placed"
	OrderStatusPickedUp   OrderStatus = "Picked Up"
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
	OrderStatusExpired    OrderStatus = "Expired"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusDone    PaymentStatus = "done"
)

// ValidOrderStatus проверяет принадлежность значения к enum
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPlaced, OrderStatusPickedUp, OrderStatusInProgress,
		OrderStatusCompleted, OrderStatusCancelled, OrderStatusExpired:
		return true
	}
	return false
}

// ValidPaymentStatus проверяет принадлежность значения к enum
func ValidPaymentStatus(s PaymentStatus) bool {
	return s == PaymentStatusPending || s == PaymentStatusDone
}

// ValidUserRole проверяет принадлежность значения к enum
func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleUser, UserRoleMod, UserRoleAdmin, UserRoleSuperAdmin:
		return true
	}
	return false
}
