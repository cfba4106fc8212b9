package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("super_password123")
	require.NoError(t, err)
	assert.NotEqual(t, "super_password123", hash)

	assert.True(t, CheckPasswordHash("super_password123", hash))
	assert.False(t, CheckPasswordHash("wrong_password", hash))
}

// TestHashRefreshToken_LongToken - JWT длиннее 72 байт, bcrypt напрямую
// его не принимает. Проверяем что хеширование через дайджест работает
func TestHashRefreshToken_LongToken(t *testing.T) {
	t.Parallel()

	token := strings.Repeat("eyJhbGciOiJIUzI1NiJ9.", 20) // ~420 байт

	hash, err := HashRefreshToken(token)
	require.NoError(t, err)

	assert.True(t, CheckRefreshTokenHash(token, hash))
	assert.False(t, CheckRefreshTokenHash(token+"x", hash))
	assert.False(t, CheckRefreshTokenHash("", hash))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword("12345"))
	assert.Error(t, ValidatePassword(""))
}
