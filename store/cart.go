package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Strangessssss/QPick-Backend/models"
)

// Cart is the read model returned to callers: resolved lines plus the
// computed total.
type Cart struct {
	Lines     []models.CartLine `json:"lines"`
	CartTotal decimal.Decimal   `json:"cartTotal"`
}

// UpsertCartLine sets the absolute quantity of (userID, productID).
//
// Quantity <= 0 deletes the line if present; either way the caller gets a
// synthetic zero-quantity line so the response shape stays consistent.
// Quantity > 0 inserts or overwrites in a single conflict-clause statement,
// so a line deleted by a racing request degrades to a fresh insert instead
// of an error. The user is provisioned if absent.
func UpsertCartLine(db *gorm.DB, userID, productID uuid.UUID, quantity int) (*models.CartLine, error) {
	product, err := FindProduct(db, productID)
	if err != nil {
		return nil, err
	}

	user, err := GetOrCreateUser(db, userID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		// Zero rows affected means a concurrent request already removed the
		// line; the terminal state is the same, so that is not an error.
		if err := db.
			Where("user_id = ? AND product_id = ?", user.ID, productID).
			Delete(&models.CartLine{}).Error; err != nil {
			return nil, err
		}
		return &models.CartLine{UserID: user.ID, ProductID: productID, Quantity: 0}, nil
	}

	line := models.CartLine{
		ID:        uuid.New(),
		UserID:    user.ID,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": quantity, "added_at": line.AddedAt}),
	}).Create(&line).Error; err != nil {
		return nil, err
	}

	// Return the stored line with its product resolved so the caller can
	// display the price without a second lookup. If a racing delete removed
	// the row between the write and this read, the write still happened;
	// the caller gets the line it just set, not an error.
	var stored models.CartLine
	if err := db.Preload("Product").
		Where("user_id = ? AND product_id = ?", user.ID, productID).
		First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			line.Product = product
			return &line, nil
		}
		return nil, err
	}
	if stored.Product == nil {
		stored.Product = product
	}
	return &stored, nil
}

// GetCart returns the user's cart lines with products resolved and the
// computed total. An unknown user gets provisioned and an empty cart back.
func GetCart(db *gorm.DB, userID uuid.UUID) (*Cart, error) {
	user, err := GetOrCreateUser(db, userID)
	if err != nil {
		return nil, err
	}

	var lines []models.CartLine
	if err := db.Preload("Product").
		Where("user_id = ?", user.ID).
		Order("added_at").
		Find(&lines).Error; err != nil {
		return nil, err
	}

	return &Cart{Lines: lines, CartTotal: cartLinesTotal(lines)}, nil
}
