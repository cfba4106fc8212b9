package validator

import (
	"testing"
	"time"

	"renta_backend/internal/models"
	"renta_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&dto.RegisterRequest{
		Name:     "A", // короче min=2
		Email:    "not-an-email",
		Password: "super_password123",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	// ключи - имена из json-тегов, не имена полей Go
	assert.Contains(t, vErr.Errors, "name")
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "Name")
}

func TestValidate_CustomRoleRule(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&dto.CreateUserRequest{
		Name:     "New User",
		Email:    "new@test.com",
		Password: "super_password123",
		Role:     "manager",
	})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Equal(t, "Must be a valid user role", vErr.Errors["role"])

	assert.NoError(t, v.Validate(&dto.CreateUserRequest{
		Name:     "New User",
		Email:    "new@test.com",
		Password: "super_password123",
		Role:     models.UserRoleMod,
	}))
}

func TestValidate_OrderDates(t *testing.T) {
	t.Parallel()

	v := New()
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// конец не позже начала - gtfield
	err := v.Validate(&dto.CreateOrderRequest{
		Items:     []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
		StartDate: start,
		EndDate:   start,
	})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "end_date")

	// пустой список позиций
	err = v.Validate(&dto.CreateOrderRequest{
		Items:     []dto.OrderItemRequest{},
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 3),
	})
	require.Error(t, err)
}
