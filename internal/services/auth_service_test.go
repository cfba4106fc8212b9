package services

import (
	"testing"

	"renta_backend/internal/auth"
	"renta_backend/internal/models"
	"renta_backend/internal/repositories"
	"renta_backend/internal/services/dto"
	"renta_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func initTestTokens(t *testing.T) {
	t.Helper()
	auth.Init("test-access-secret", "test-refresh-secret", 1, 7)
}

func activeUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		BaseModel:    models.BaseModel{ID: "user-1"},
		Name:         "Test User",
		Email:        "user@test.com",
		PasswordHash: hash,
		Role:         models.UserRoleUser,
		IsActive:     true,
	}
}

func TestRegister_Success(t *testing.T) {
	initTestTokens(t)

	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	userRepo.On("Create", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.User).ID = "user-1"
		}).Return(nil)
	userRepo.On("UpdateRefreshTokenHash", "user-1", mock.AnythingOfType("*string")).Return(nil)

	resp, err := svc.Register(&dto.RegisterRequest{
		Name:     "Test User",
		Email:    "user@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	// регистрация всегда дает роль user
	assert.Equal(t, models.UserRoleUser, resp.User.Role)
	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	initTestTokens(t)

	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	userRepo.On("Create", mock.Anything).Return(repositories.ErrUserAlreadyExists)

	_, err := svc.Register(&dto.RegisterRequest{
		Name:     "Test User",
		Email:    "user@test.com",
		Password: "super_password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_WeakPassword(t *testing.T) {
	initTestTokens(t)

	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	_, err := svc.Register(&dto.RegisterRequest{
		Name:     "Test User",
		Email:    "user@test.com",
		Password: "123",
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	initTestTokens(t)

	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	// несуществующий email не раскрывается
	userRepo.On("FindByEmail", "ghost@test.com").Return(nil, repositories.ErrUserNotFound)
	_, err := svc.Login(&dto.LoginRequest{Email: "ghost@test.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// неверный пароль
	user := activeUser(t, "super_password123")
	userRepo.On("FindByEmail", "user@test.com").Return(user, nil)
	_, err = svc.Login(&dto.LoginRequest{Email: "user@test.com", Password: "wrong_password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	initTestTokens(t)

	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	user := activeUser(t, "super_password123")
	user.IsActive = false
	userRepo.On("FindByEmail", "user@test.com").Return(user, nil)

	_, err := svc.Login(&dto.LoginRequest{Email: "user@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

// TestRefresh_Rotation - refresh выдает новую пару и перезаписывает
// хеш сессии на пользователе
func TestRefresh_Rotation(t *testing.T) {
	initTestTokens(t)

	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	user := activeUser(t, "super_password123")
	_, refreshToken, err := auth.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)
	storedHash, err := auth.HashRefreshToken(refreshToken)
	require.NoError(t, err)
	user.RefreshTokenHash = &storedHash

	userRepo.On("FindByID", "user-1").Return(user, nil)
	userRepo.On("UpdateRefreshTokenHash", "user-1", mock.AnythingOfType("*string")).
		Run(func(args mock.Arguments) {
			user.RefreshTokenHash = args.Get(1).(*string)
		}).Return(nil)

	resp, err := svc.Refresh(refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	userRepo.AssertCalled(t, "UpdateRefreshTokenHash", "user-1", mock.AnythingOfType("*string"))
}

// TestRefresh_RotatedTokenDenied - предъявление токена, чей хеш уже
// вытеснен новой сессией
func TestRefresh_RotatedTokenDenied(t *testing.T) {
	initTestTokens(t)

	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	user := activeUser(t, "super_password123")
	_, oldToken, err := auth.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)

	// в БД хеш другого (более нового) токена
	_, newerToken, err := auth.GenerateTokenPair(user.ID, "other@test.com", string(user.Role))
	require.NoError(t, err)
	newerHash, err := auth.HashRefreshToken(newerToken)
	require.NoError(t, err)
	user.RefreshTokenHash = &newerHash

	userRepo.On("FindByID", "user-1").Return(user, nil)

	_, err = svc.Refresh(oldToken)
	assert.ErrorIs(t, err, apperrors.ErrRefreshDenied)
	userRepo.AssertNotCalled(t, "UpdateRefreshTokenHash", mock.Anything, mock.Anything)
}

// TestRefresh_AfterLogout - logout сбрасывает сессию, refresh после
// него отклоняется даже с валидным по подписи токеном
func TestRefresh_AfterLogout(t *testing.T) {
	initTestTokens(t)

	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	user := activeUser(t, "super_password123")
	_, refreshToken, err := auth.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)
	storedHash, err := auth.HashRefreshToken(refreshToken)
	require.NoError(t, err)
	user.RefreshTokenHash = &storedHash

	userRepo.On("FindByID", "user-1").Return(user, nil)
	userRepo.On("UpdateRefreshTokenHash", "user-1", (*string)(nil)).
		Run(func(args mock.Arguments) {
			user.RefreshTokenHash = nil
		}).Return(nil)

	require.NoError(t, svc.Logout("user-1"))

	_, err = svc.Refresh(refreshToken)
	assert.ErrorIs(t, err, apperrors.ErrRefreshDenied)
}

func TestRefresh_GarbageToken(t *testing.T) {
	initTestTokens(t)

	svc := NewAuthService(new(MockUserRepository))

	_, err := svc.Refresh("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrRefreshDenied)
}

// TestLogout_Idempotent - повторный и посторонний logout безопасны
func TestLogout_Idempotent(t *testing.T) {
	initTestTokens(t)

	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo)

	userRepo.On("UpdateRefreshTokenHash", "ghost", (*string)(nil)).Return(repositories.ErrUserNotFound)

	assert.NoError(t, svc.Logout("ghost"))
}
