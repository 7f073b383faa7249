package models

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is one (user, product, quantity) record pending purchase.
// At most one line exists per (user, product); a line with quantity <= 0 is
// deleted, never stored.
type CartLine struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}
