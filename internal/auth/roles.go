package auth

import "renta_backend/internal/models"

// roleLevels - численные уровни ролей для сравнения привилегий
var roleLevels = map[models.UserRole]int{
	models.UserRoleUser:       1,
	models.UserRoleMod:        2,
	models.UserRoleAdmin:      3,
	models.UserRoleSuperAdmin: 4,
}

// RoleLevel возвращает уровень роли (0 для неизвестной)
func RoleLevel(role models.UserRole) int {
	return roleLevels[role]
}

// HasAtLeast проверяет, что роль не ниже требуемой
func HasAtLeast(role, required models.UserRole) bool {
	return RoleLevel(role) >= RoleLevel(required) && RoleLevel(role) > 0
}

// Outranks проверяет строгое превосходство одной роли над другой
func Outranks(role, other models.UserRole) bool {
	return RoleLevel(role) > RoleLevel(other)
}
