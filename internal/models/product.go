package models

import "time"

// Product is a catalog entry. Variants (per-size price/stock) live in Sizes
// and are cascade-deleted with the product.
type Product struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,min=1,max=255"`
	Image       string        `json:"image,omitempty"`
	Description string        `json:"description,omitempty" validate:"omitempty,max=500"`
	CategoryID  uint          `json:"category_id" gorm:"not null" validate:"required"`
	Category    *Category     `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Sizes       []ProductSize `json:"sizes" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time     `json:"-"`
	UpdatedAt   time.Time     `json:"-"`
}
