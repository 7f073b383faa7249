package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ToggleSaved flips productID's membership in the user's saved set and
// returns the resulting state: true when the product is now saved. The user
// is provisioned if absent.
func ToggleSaved(db *gorm.DB, userID, productID uuid.UUID) (bool, error) {
	product, err := FindProduct(db, productID)
	if err != nil {
		return false, err
	}

	user, err := GetOrCreateUser(db, userID)
	if err != nil {
		return false, err
	}

	var count int64
	if err := db.Table("user_saved_products").
		Where("user_id = ? AND product_id = ?", user.ID, product.ID).
		Count(&count).Error; err != nil {
		return false, err
	}

	assoc := db.Model(user).Association("SavedProducts")
	if count > 0 {
		if err := assoc.Delete(product); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := assoc.Append(product); err != nil {
		return false, err
	}
	return true, nil
}
