package services

import (
	"errors"

	"renta_backend/internal/auth"
	"renta_backend/internal/logger"
	"renta_backend/internal/models"
	"renta_backend/internal/repositories"
	"renta_backend/internal/services/dto"
	"renta_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(refreshToken string) (*dto.AuthResponse, error)
	Logout(userID string) error
	GetUserDetails(userID string) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Register - регистрация нового пользователя.
// Роль всегда user, повышение - только через администратора
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
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
		Role:         models.UserRoleUser,
		IsActive:     true,
		Phone:        req.Phone,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "email", user.Email)

	return s.issueTokens(user)
}

// Login - вход по email и паролю
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Не раскрываем, существует ли email
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh - ротация refresh-токена. Старый токен становится
// недействительным: в БД хранится хеш только последнего выданного
func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.AuthResponse, error) {
	claims, err := auth.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrRefreshDenied
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrRefreshDenied
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.IsActive || user.RefreshTokenHash == nil {
		return nil, apperrors.ErrRefreshDenied
	}

	if !auth.CheckRefreshTokenHash(refreshToken, *user.RefreshTokenHash) {
		// Токен подписан нами, но уже ротирован или выдан для другой сессии
		logger.Warn("refresh token reuse detected", "user_id", user.ID)
		return nil, apperrors.ErrRefreshDenied
	}

	return s.issueTokens(user)
}

// Logout сбрасывает сессию. Повторный вызов безопасен
func (s *AuthServiceImpl) Logout(userID string) error {
	err := s.userRepo.UpdateRefreshTokenHash(userID, nil)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

// GetUserDetails возвращает профиль текущего пользователя
func (s *AuthServiceImpl) GetUserDetails(userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

// issueTokens выпускает пару токенов и фиксирует хеш refresh-токена
// на пользователе. Одна активная сессия: новая пара вытесняет старую
func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, err := auth.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshHash, err := auth.HashRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateRefreshTokenHash(user.ID, &refreshHash); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserDTO(user),
	}, nil
}
