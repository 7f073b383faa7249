package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Rating      float32         `json:"rating"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`

	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"categoryId"`
	Category   *Category  `json:"category,omitempty"`

	BrandID *uuid.UUID `gorm:"type:uuid;index" json:"brandId"`
	Brand   *Brand     `json:"brand,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// ProductImage is one uploaded image of a product, stored as the public URL path.
type ProductImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	ProductID uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Path      string    `gorm:"not null" json:"path"`
}
