package auth

import (
	"testing"

	"renta_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRoleLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, RoleLevel(models.UserRoleUser))
	assert.Equal(t, 2, RoleLevel(models.UserRoleMod))
	assert.Equal(t, 3, RoleLevel(models.UserRoleAdmin))
	assert.Equal(t, 4, RoleLevel(models.UserRoleSuperAdmin))
	assert.Equal(t, 0, RoleLevel("manager"))
}

func TestHasAtLeast(t *testing.T) {
	t.Parallel()

	assert.True(t, HasAtLeast(models.UserRoleAdmin, models.UserRoleMod))
	assert.True(t, HasAtLeast(models.UserRoleMod, models.UserRoleMod))
	assert.False(t, HasAtLeast(models.UserRoleUser, models.UserRoleMod))
	// неизвестная роль никогда не проходит проверку
	assert.False(t, HasAtLeast("manager", models.UserRoleUser))
}

func TestOutranks(t *testing.T) {
	t.Parallel()

	assert.True(t, Outranks(models.UserRoleSuperAdmin, models.UserRoleAdmin))
	assert.True(t, Outranks(models.UserRoleMod, models.UserRoleUser))
	assert.False(t, Outranks(models.UserRoleAdmin, models.UserRoleAdmin))
	assert.False(t, Outranks(models.UserRoleUser, models.UserRoleMod))
}
