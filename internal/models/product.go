package models

import "gorm.io/datatypes"

type Category struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description,omitempty"`
}

type Product struct {
	BaseModel
	Name             string `gorm:"not null;index" json:"name"`
	Slug             string `gorm:"uniqueIndex;not null" json:"slug"`
	Description      string `gorm:"not null" json:"description"`
	ShortDescription string `json:"shortDescription,omitempty"`
	Thumbnail        string `json:"thumbnail,omitempty"`

	// Цена аренды за единицу за сутки
	Price float64 `gorm:"not null" json:"price"`

	// Инвентарь: available меняется ТОЛЬКО через ProductRepository.Reserve/Release,
	// инвариант 0 <= available <= total
	InventoryTotal     int `gorm:"not null;default:0" json:"inventoryTotal"`
	InventoryAvailable int `gorm:"not null;default:0" json:"inventoryAvailable"`

	CategoryID *string   `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Slider datatypes.JSON `json:"slider,omitempty"`
	Tags   datatypes.JSON `json:"tags,omitempty"`

	// Статус декларативный, витринный. С available транзакционно не связан
	Status   ProductStatus `gorm:"type:varchar(20);default:'available';index" json:"status"`
	IsActive bool          `gorm:"default:true;index" json:"isActive"`
}
