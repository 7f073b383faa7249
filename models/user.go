package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// SavedProducts is a wishlist of shared product references; removing one
	// never deletes the product itself.
	SavedProducts []Product `gorm:"many2many:user_saved_products" json:"savedProducts"`

	// CartLines are owned exclusively by the user and die with it.
	CartLines []CartLine `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cartLines"`

	// CartTotal is computed on read, never stored.
	CartTotal decimal.Decimal `gorm:"-" json:"cartTotal"`

	CreatedAt time.Time `json:"createdAt"`
}
