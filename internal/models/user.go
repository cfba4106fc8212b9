package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive     bool     `gorm:"default:true" json:"isActive"`

	// Хеш текущего refresh-токена. nil = активной сессии нет.
	// Политика: не больше одной сессии на пользователя, новая
	// выдача перезаписывает предыдущий хеш
	RefreshTokenHash *string `json:"-"`

	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}
