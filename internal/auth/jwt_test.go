package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateTokenPair_RoundTrip - проверяет выпуск и разбор пары токенов
func TestGenerateTokenPair_RoundTrip(t *testing.T) {
	Init("access-secret", "refresh-secret", 1, 7)

	access, refresh, err := GenerateTokenPair("user-1", "user@test.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	accessClaims, err := ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", accessClaims.UserID)
	assert.Equal(t, "user@test.com", accessClaims.Email)
	assert.Equal(t, "user", accessClaims.Role)

	refreshClaims, err := ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshClaims.UserID)
}

// TestParseToken_WrongSecret - токены подписаны разными секретами,
// access-токен не принимается как refresh и наоборот
func TestParseToken_WrongSecret(t *testing.T) {
	Init("access-secret", "refresh-secret", 1, 7)

	access, refresh, err := GenerateTokenPair("user-1", "user@test.com", "user")
	require.NoError(t, err)

	_, err = ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

// TestInit_RefreshSecretFallback - при пустом refresh-секрете
// используется access-секрет и оба парсера принимают оба токена
func TestInit_RefreshSecretFallback(t *testing.T) {
	Init("only-secret", "", 1, 7)

	access, refresh, err := GenerateTokenPair("user-2", "two@test.com", "admin")
	require.NoError(t, err)

	_, err = ParseRefreshToken(access)
	assert.NoError(t, err)
	_, err = ParseAccessToken(refresh)
	assert.NoError(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	Init("access-secret", "refresh-secret", 1, 7)

	_, err := ParseAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ParseAccessToken("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

// TestParseToken_Expired - токен с отрицательным TTL сразу протухает
func TestParseToken_Expired(t *testing.T) {
	Init("access-secret", "refresh-secret", -1, 7)
	access, _, err := GenerateTokenPair("user-3", "three@test.com", "user")
	require.NoError(t, err)

	Init("access-secret", "refresh-secret", 1, 7)
	_, err = ParseAccessToken(access)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
