package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword создает bcrypt хеш пароля
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// HashRefreshToken хеширует refresh-токен перед сохранением.
// Refresh-токены - секреты: в БД и логах только хеш.
// JWT длиннее лимита bcrypt в 72 байта, поэтому токен сначала
// сжимается SHA-256, и уже дайджест хешируется bcrypt-ом
func HashRefreshToken(token string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(refreshDigest(token), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckRefreshTokenHash проверяет предъявленный refresh-токен против хеша
func CheckRefreshTokenHash(token, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), refreshDigest(token)) == nil
}

func refreshDigest(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return []byte(hex.EncodeToString(sum[:]))
}

// ValidatePassword проверяет сложность пароля
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	return nil
}
