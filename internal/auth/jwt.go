package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token is expired")
)

// Claims - полезная нагрузка access и refresh токенов
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var (
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
)

// Init настраивает секреты и сроки жизни токенов.
// Если refresh-секрет пустой, используется access-секрет
func Init(secret, refresh string, accessTTLHours, refreshTTLDays int) {
	accessSecret = []byte(secret)
	if refresh == "" {
		refresh = secret
	}
	refreshSecret = []byte(refresh)
	accessTTL = time.Duration(accessTTLHours) * time.Hour
	refreshTTL = time.Duration(refreshTTLDays) * 24 * time.Hour
}

// RefreshTTL возвращает срок жизни refresh-токена (нужен для cookie)
func RefreshTTL() time.Duration {
	return refreshTTL
}

// AccessTTL возвращает срок жизни access-токена
func AccessTTL() time.Duration {
	return accessTTL
}

// GenerateTokenPair выпускает пару access/refresh токенов для пользователя
func GenerateTokenPair(userID, email, role string) (accessToken string, refreshToken string, err error) {
	now := time.Now()

	accessToken, err = signToken(userID, email, role, now, accessTTL, accessSecret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = signToken(userID, email, role, now, refreshTTL, refreshSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func signToken(userID, email, role string, now time.Time, ttl time.Duration, secret []byte) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseAccessToken проверяет подпись access-токена и возвращает claims
func ParseAccessToken(tokenStr string) (*Claims, error) {
	return parseToken(tokenStr, accessSecret)
}

// ParseRefreshToken проверяет подпись refresh-токена и возвращает claims
func ParseRefreshToken(tokenStr string) (*Claims, error) {
	return parseToken(tokenStr, refreshSecret)
}

func parseToken(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
