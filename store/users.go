package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Strangessssss/QPick-Backend/models"
)

// FindUser is a pure read: it returns ErrUserNotFound instead of creating
// anything. Checkout depends on this behaviour.
func FindUser(db *gorm.DB, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetOrCreateUser provisions a user record on first contact. A zero userID
// asks for a brand-new identity. Any non-zero id is accepted as valid.
func GetOrCreateUser(db *gorm.DB, userID uuid.UUID) (*models.User, error) {
	if userID == uuid.Nil {
		user := models.User{ID: uuid.New(), CreatedAt: time.Now()}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}

	var user models.User
	err := db.First(&user, "id = ?", userID).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{ID: userID, CreatedAt: time.Now()}
	if err := db.Create(&user).Error; err != nil {
		// Lost the insert race to a concurrent request; the record exists now.
		if findErr := db.First(&user, "id = ?", userID).Error; findErr == nil {
			return &user, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserProfile loads a user with saved products and cart lines (products
// resolved) and fills in the computed cart total. The user is provisioned if
// absent, so browsing never fails on an unknown id.
func GetUserProfile(db *gorm.DB, userID uuid.UUID) (*models.User, error) {
	if _, err := GetOrCreateUser(db, userID); err != nil {
		return nil, err
	}

	var user models.User
	if err := db.
		Preload("SavedProducts").
		Preload("SavedProducts.Category").
		Preload("SavedProducts.Brand").
		Preload("CartLines").
		Preload("CartLines.Product").
		First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	user.CartTotal = cartLinesTotal(user.CartLines)
	return &user, nil
}

func cartLinesTotal(lines []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		if line.Product == nil {
			continue
		}
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
