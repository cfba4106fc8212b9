package services

import (
	"testing"

	"renta_backend/internal/models"
	"renta_backend/internal/services/dto"
	"renta_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func userWithRole(id string, role models.UserRole) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Name:      "User " + id,
		Email:     id + "@test.com",
		Role:      role,
		IsActive:  true,
	}
}

// TestUserCreate_RoleHierarchy - матрица правил создания аккаунтов
func TestUserCreate_RoleHierarchy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		actorRole models.UserRole
		newRole   models.UserRole
		allowed   bool
	}{
		{"user cannot create anyone", models.UserRoleUser, models.UserRoleUser, false},
		{"mod creates user", models.UserRoleMod, models.UserRoleUser, true},
		{"mod cannot create mod", models.UserRoleMod, models.UserRoleMod, false},
		{"admin creates mod", models.UserRoleAdmin, models.UserRoleMod, true},
		{"admin cannot create admin", models.UserRoleAdmin, models.UserRoleAdmin, false},
		{"super_admin creates admin", models.UserRoleSuperAdmin, models.UserRoleAdmin, true},
		{"super_admin is never created via API", models.UserRoleSuperAdmin, models.UserRoleSuperAdmin, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userRepo := new(MockUserRepository)
			svc := NewUserService(userRepo)
			if tc.allowed {
				userRepo.On("Create", mock.Anything).Return(nil)
			}

			_, err := svc.Create(tc.actorRole, &dto.CreateUserRequest{
				Name:     "New User",
				Email:    "new@test.com",
				Password: "super_password123",
				Role:     tc.newRole,
			})

			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrForbidden)
				userRepo.AssertNotCalled(t, "Create", mock.Anything)
			}
		})
	}
}

func TestUserCreate_InvalidRole(t *testing.T) {
	t.Parallel()

	svc := NewUserService(new(MockUserRepository))

	_, err := svc.Create(models.UserRoleAdmin, &dto.CreateUserRequest{
		Name:     "New User",
		Email:    "new@test.com",
		Password: "super_password123",
		Role:     "manager",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestUserUpdate_SelfProfile(t *testing.T) {
	t.Parallel()

	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo)

	target := userWithRole("user-1", models.UserRoleUser)
	userRepo.On("FindByID", "user-1").Return(target, nil)
	userRepo.On("Update", mock.Anything).Return(nil)

	name := "Renamed"
	updated, err := svc.Update("user-1", models.UserRoleUser, "user-1", &dto.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestUserUpdate_ForbiddenPaths(t *testing.T) {
	t.Parallel()

	adminRole := models.UserRoleAdmin

	cases := []struct {
		name      string
		actorID   string
		actorRole models.UserRole
		target    *models.User
		req       *dto.UpdateUserRequest
	}{
		{
			"user cannot touch others",
			"user-1", models.UserRoleUser,
			userWithRole("user-2", models.UserRoleUser),
			&dto.UpdateUserRequest{Name: strPtr("X")},
		},
		{
			"mod cannot update equal rank",
			"mod-1", models.UserRoleMod,
			userWithRole("mod-2", models.UserRoleMod),
			&dto.UpdateUserRequest{Name: strPtr("X")},
		},
		{
			"nobody changes own role",
			"admin-1", models.UserRoleAdmin,
			userWithRole("admin-1", models.UserRoleAdmin),
			&dto.UpdateUserRequest{Role: &adminRole},
		},
		{
			"admin cannot assign admin role",
			"admin-1", models.UserRoleAdmin,
			userWithRole("user-2", models.UserRoleUser),
			&dto.UpdateUserRequest{Role: &adminRole},
		},
		{
			"super_admin role is immutable",
			"sa-1", models.UserRoleSuperAdmin,
			userWithRole("sa-2", models.UserRoleSuperAdmin),
			&dto.UpdateUserRequest{Role: roleOf(models.UserRoleAdmin)},
		},
		{
			"cannot deactivate self",
			"admin-1", models.UserRoleAdmin,
			userWithRole("admin-1", models.UserRoleAdmin),
			&dto.UpdateUserRequest{IsActive: boolPtr(false)},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userRepo := new(MockUserRepository)
			svc := NewUserService(userRepo)
			userRepo.On("FindByID", tc.target.ID).Return(tc.target, nil)

			_, err := svc.Update(tc.actorID, tc.actorRole, tc.target.ID, tc.req)
			assert.ErrorIs(t, err, apperrors.ErrForbidden)
			userRepo.AssertNotCalled(t, "Update", mock.Anything)
		})
	}
}

func TestUserDelete_Hierarchy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		actorID   string
		actorRole models.UserRole
		target    *models.User
		allowed   bool
	}{
		{"plain user deletes self", "user-1", models.UserRoleUser, userWithRole("user-1", models.UserRoleUser), true},
		{"mod cannot delete self", "mod-1", models.UserRoleMod, userWithRole("mod-1", models.UserRoleMod), false},
		{"user cannot delete others", "user-1", models.UserRoleUser, userWithRole("user-2", models.UserRoleUser), false},
		{"mod cannot delete anyone", "mod-1", models.UserRoleMod, userWithRole("user-2", models.UserRoleUser), false},
		{"admin deletes mod", "admin-1", models.UserRoleAdmin, userWithRole("mod-2", models.UserRoleMod), true},
		{"admin cannot delete admin", "admin-1", models.UserRoleAdmin, userWithRole("admin-2", models.UserRoleAdmin), false},
		{"super_admin is undeletable", "sa-1", models.UserRoleSuperAdmin, userWithRole("sa-2", models.UserRoleSuperAdmin), false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userRepo := new(MockUserRepository)
			svc := NewUserService(userRepo)
			userRepo.On("FindByID", tc.target.ID).Return(tc.target, nil)
			if tc.allowed {
				userRepo.On("Delete", tc.target.ID).Return(nil)
			}

			err := svc.Delete(tc.actorID, tc.actorRole, tc.target.ID)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrForbidden)
				userRepo.AssertNotCalled(t, "Delete", mock.Anything)
			}
		})
	}
}

func TestUserFindByID_Visibility(t *testing.T) {
	t.Parallel()

	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo)

	target := userWithRole("user-2", models.UserRoleUser)
	userRepo.On("FindByID", "user-2").Return(target, nil)

	// чужой профиль закрыт для обычного пользователя
	_, err := svc.FindByID("user-1", models.UserRoleUser, "user-2")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// mod видит чужие профили
	found, err := svc.FindByID("mod-1", models.UserRoleMod, "user-2")
	require.NoError(t, err)
	assert.Equal(t, "user-2", found.ID)
}

// TestUserList_RankVisibility - в списке видны только роли строго ниже
func TestUserList_RankVisibility(t *testing.T) {
	t.Parallel()

	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo)

	all := []models.User{
		*userWithRole("user-2", models.UserRoleUser),
		*userWithRole("mod-2", models.UserRoleMod),
		*userWithRole("admin-2", models.UserRoleAdmin),
	}
	userRepo.On("FindWithFilter", mock.Anything).Return(all, int64(3), nil)

	resp, err := svc.List(models.UserRoleAdmin, &dto.UserFilterRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, "user-2", resp.Users[0].ID)
	assert.Equal(t, "mod-2", resp.Users[1].ID)
}

func TestUserList_Forbidden(t *testing.T) {
	t.Parallel()

	svc := NewUserService(new(MockUserRepository))

	_, err := svc.List(models.UserRoleUser, &dto.UserFilterRequest{})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// явный фильтр по роли не ниже своей тоже запрещен
	_, err = svc.List(models.UserRoleMod, &dto.UserFilterRequest{Role: models.UserRoleMod})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func strPtr(s string) *string                   { return &s }
func boolPtr(b bool) *bool                      { return &b }
func roleOf(r models.UserRole) *models.UserRole { return &r }
