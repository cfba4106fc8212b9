package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCanTransition_Matrix - проверяет весь граф переходов заказа
func TestCanTransition_Matrix(t *testing.T) {
	t.Parallel()

	allowed := []struct{ from, to OrderStatus }{
		{OrderStatusPlaced, OrderStatusPickedUp},
		{OrderStatusPlaced, OrderStatusCancelled},
		{OrderStatusPickedUp, OrderStatusInProgress},
		{OrderStatusPickedUp, OrderStatusCancelled},
		{OrderStatusInProgress, OrderStatusCompleted},
		{OrderStatusInProgress, OrderStatusCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "переход %s -> %s должен быть разрешен", tc.from, tc.to)
	}

	denied := []struct{ from, to OrderStatus }{
		{OrderStatusPlaced, OrderStatusInProgress}, // нельзя перепрыгнуть Picked Up
		{OrderStatusPlaced, OrderStatusCompleted},
		{OrderStatusPickedUp, OrderStatusPlaced}, // назад нельзя
		{OrderStatusPickedUp, OrderStatusCompleted},
		{OrderStatusInProgress, OrderStatusPickedUp},
		{OrderStatusCompleted, OrderStatusCancelled},
		{OrderStatusCancelled, OrderStatusPlaced},
		{OrderStatusExpired, OrderStatusCompleted},
		// Expired выставляет только фоновая зачистка, ребер к нему нет
		{OrderStatusPlaced, OrderStatusExpired},
		{OrderStatusInProgress, OrderStatusExpired},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "переход %s -> %s должен быть запрещен", tc.from, tc.to)
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	t.Parallel()

	assert.False(t, CanTransition("Shipped", OrderStatusCompleted))
	assert.False(t, CanTransition(OrderStatusPlaced, "Shipped"))
}

func TestIsTerminalStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTerminalStatus(OrderStatusCompleted))
	assert.True(t, IsTerminalStatus(OrderStatusCancelled))
	assert.True(t, IsTerminalStatus(OrderStatusExpired))

	assert.False(t, IsTerminalStatus(OrderStatusPlaced))
	assert.False(t, IsTerminalStatus(OrderStatusPickedUp))
	assert.False(t, IsTerminalStatus(OrderStatusInProgress))
	// невалидный статус не считается терминальным
	assert.False(t, IsTerminalStatus("Shipped"))
}

func TestReleasesInventory(t *testing.T) {
	t.Parallel()

	assert.True(t, ReleasesInventory(OrderStatusCompleted))
	assert.True(t, ReleasesInventory(OrderStatusCancelled))
	assert.True(t, ReleasesInventory(OrderStatusExpired))

	assert.False(t, ReleasesInventory(OrderStatusPlaced))
	assert.False(t, ReleasesInventory(OrderStatusPickedUp))
	assert.False(t, ReleasesInventory(OrderStatusInProgress))
}
