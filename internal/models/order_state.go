package models

// allowedTransitions - граф жизненного цикла заказа. Переходы возможны
// только по ребрам графа; Expired выставляется только фоновой зачисткой
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced:     {OrderStatusPickedUp, OrderStatusCancelled},
	OrderStatusPickedUp:   {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
	OrderStatusExpired:    {},
}

// CanTransition проверяет допустимость перехода статуса заказа
func CanTransition(from, to OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus - из терминального статуса переходов нет
func IsTerminalStatus(s OrderStatus) bool {
	return len(allowedTransitions[s]) == 0 && ValidOrderStatus(s)
}

// ReleasesInventory - статусы, при переходе в которые арендованные
// единицы возвращаются в остаток
func ReleasesInventory(s OrderStatus) bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled || s == OrderStatusExpired
}
