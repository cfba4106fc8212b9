package services

import (
	"errors"

	"renta_backend/internal/auth"
	"renta_backend/internal/models"
	"renta_backend/internal/repositories"
	"renta_backend/internal/services/dto"
	"renta_backend/pkg/apperrors"
)

type UserService interface {
	Create(actorRole models.UserRole, req *dto.CreateUserRequest) (*dto.UserDTO, error)
	Update(actorID string, actorRole models.UserRole, targetID string, req *dto.UpdateUserRequest) (*dto.UserDTO, error)
	Delete(actorID string, actorRole models.UserRole, targetID string) error
	FindByID(actorID string, actorRole models.UserRole, targetID string) (*dto.UserDTO, error)
	List(actorRole models.UserRole, req *dto.UserFilterRequest) (*dto.UserListResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// Create - административное создание пользователя.
// Правила иерархии: super_admin извне не создается никем; admin
// создается только super_admin-ом; mod - admin-ом и выше
func (s *UserServiceImpl) Create(actorRole models.UserRole, req *dto.CreateUserRequest) (*dto.UserDTO, error) {
	role := req.Role
	if role == "" {
		role = models.UserRoleUser
	}
	if !models.ValidUserRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := s.canCreateRole(actorRole, role); err != nil {
		return nil, err
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		Phone:        req.Phone,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

func (s *UserServiceImpl) canCreateRole(actorRole, newRole models.UserRole) error {
	// super_admin не создается через API вообще, только сидом при старте
	if newRole == models.UserRoleSuperAdmin {
		return apperrors.NewForbiddenError("super_admin accounts cannot be created")
	}
	if newRole == models.UserRoleAdmin && actorRole != models.UserRoleSuperAdmin {
		return apperrors.NewForbiddenError("only super_admin can create admin accounts")
	}
	if newRole == models.UserRoleMod && !auth.HasAtLeast(actorRole, models.UserRoleAdmin) {
		return apperrors.NewForbiddenError("only admin can create mod accounts")
	}
	if !auth.HasAtLeast(actorRole, models.UserRoleMod) {
		return apperrors.NewForbiddenError("insufficient permissions")
	}
	return nil
}

// Update - обновление пользователя с проверкой иерархии
func (s *UserServiceImpl) Update(actorID string, actorRole models.UserRole, targetID string, req *dto.UpdateUserRequest) (*dto.UserDTO, error) {
	target, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	isSelf := actorID == targetID

	if !isSelf {
		// Чужой профиль: только mod и выше, и только профили ниже рангом
		if !auth.HasAtLeast(actorRole, models.UserRoleMod) {
			return nil, apperrors.NewForbiddenError("users can only update their own profile")
		}
		if !auth.Outranks(actorRole, target.Role) {
			return nil, apperrors.NewForbiddenError("cannot update a user of equal or higher role")
		}
	}

	if req.Role != nil {
		if err := s.canAssignRole(actorRole, target, *req.Role, isSelf); err != nil {
			return nil, err
		}
		target.Role = *req.Role
	}

	if req.Name != nil {
		target.Name = *req.Name
	}
	if req.Phone != nil {
		target.Phone = *req.Phone
	}
	if req.Avatar != nil {
		target.Avatar = *req.Avatar
	}
	if req.IsActive != nil {
		if isSelf {
			return nil, apperrors.NewForbiddenError("cannot change own active status")
		}
		target.IsActive = *req.IsActive
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, apperrors.ErrWeakPassword
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		target.PasswordHash = hash
	}

	if err := s.userRepo.Update(target); err != nil {
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(target)
	return &userDTO, nil
}

func (s *UserServiceImpl) canAssignRole(actorRole models.UserRole, target *models.User, newRole models.UserRole, isSelf bool) error {
	if !models.ValidUserRole(newRole) {
		return apperrors.ErrInvalidUserRole
	}
	if isSelf {
		return apperrors.NewForbiddenError("cannot change own role")
	}
	// Роль super_admin не выдается никому и не снимается ни с кого
	if newRole == models.UserRoleSuperAdmin || target.Role == models.UserRoleSuperAdmin {
		return apperrors.NewForbiddenError("super_admin role is immutable")
	}
	// mod ролями не управляет вовсе
	if !auth.HasAtLeast(actorRole, models.UserRoleAdmin) {
		return apperrors.NewForbiddenError("only admin can change roles")
	}
	// admin не может назначать роль своего уровня и выше
	if !auth.Outranks(actorRole, newRole) {
		return apperrors.NewForbiddenError("cannot assign a role equal to or above your own")
	}
	return nil
}

// Delete - удаление пользователя.
// super_admin неудаляем; остальных удаляет только роль строго выше
func (s *UserServiceImpl) Delete(actorID string, actorRole models.UserRole, targetID string) error {
	target, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if target.Role == models.UserRoleSuperAdmin {
		return apperrors.NewForbiddenError("super_admin accounts cannot be deleted")
	}

	if actorID == targetID {
		// Самоудаление разрешено обычным пользователям
		if target.Role != models.UserRoleUser {
			return apperrors.NewForbiddenError("staff accounts cannot delete themselves")
		}
	} else {
		if !auth.HasAtLeast(actorRole, models.UserRoleAdmin) {
			return apperrors.NewForbiddenError("insufficient permissions")
		}
		if !auth.Outranks(actorRole, target.Role) {
			return apperrors.NewForbiddenError("cannot delete a user of equal or higher role")
		}
	}

	if err := s.userRepo.Delete(targetID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// FindByID - просмотр профиля. Свой профиль видят все,
// чужие - только mod и выше
func (s *UserServiceImpl) FindByID(actorID string, actorRole models.UserRole, targetID string) (*dto.UserDTO, error) {
	if actorID != targetID && !auth.HasAtLeast(actorRole, models.UserRoleMod) {
		return nil, apperrors.NewForbiddenError("insufficient permissions")
	}

	user, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

// List - список пользователей с фильтрами.
// Видимость по рангу: каждый видит только роли строго ниже своей
func (s *UserServiceImpl) List(actorRole models.UserRole, req *dto.UserFilterRequest) (*dto.UserListResponse, error) {
	if !auth.HasAtLeast(actorRole, models.UserRoleMod) {
		return nil, apperrors.NewForbiddenError("insufficient permissions")
	}

	if req.Role != "" && !auth.Outranks(actorRole, req.Role) {
		return nil, apperrors.NewForbiddenError("cannot list users of equal or higher role")
	}

	criteria := repositories.UserFilter{
		Role:     req.Role,
		IsActive: req.IsActive,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	users, total, err := s.userRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Фильтр видимости по рангу применяется и без явного фильтра роли
	visible := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		if auth.Outranks(actorRole, users[i].Role) {
			visible = append(visible, dto.NewUserDTO(&users[i]))
		}
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return &dto.UserListResponse{
		Users:    visible,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
