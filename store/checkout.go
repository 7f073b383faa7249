package store

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Strangessssss/QPick-Backend/models"
)

const deliveryTypeDelivery = "delivery"

// CheckoutInput carries the raw checkout form fields. Location stays a JSON
// string until validation because it is only required for delivery orders.
type CheckoutInput struct {
	Phone         string
	PaymentMethod string
	DeliveryType  string
	Location      string
}

// latLng matches the location payload; encoding/json field matching is
// case-insensitive, which the ordering clients rely on.
type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Checkout converts the user's cart into an immutable order.
//
// Validation happens before any write. The order insert and the cart clear
// run in one transaction: either both land or neither does. The cart is read
// inside that same transaction so a concurrent upsert cannot produce a
// half-updated snapshot. Cancelling ctx before commit aborts the whole write.
func Checkout(ctx context.Context, db *gorm.DB, userID uuid.UUID, input CheckoutInput) (*models.Order, error) {
	if strings.TrimSpace(input.Phone) == "" ||
		strings.TrimSpace(input.PaymentMethod) == "" ||
		strings.TrimSpace(input.DeliveryType) == "" {
		return nil, ErrInvalidCheckoutInput
	}

	var shipping *latLng
	if input.DeliveryType == deliveryTypeDelivery {
		if strings.TrimSpace(input.Location) == "" {
			return nil, ErrInvalidLocation
		}
		var loc latLng
		if err := json.Unmarshal([]byte(input.Location), &loc); err != nil {
			return nil, ErrInvalidLocation
		}
		if loc.Lat == 0 || loc.Lng == 0 {
			return nil, ErrInvalidLocation
		}
		shipping = &loc
	}

	// Unlike the cart, checkout never provisions: purchasing requires an
	// already-established identity.
	user, err := FindUser(db, userID)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lines []models.CartLine
		if err := tx.Preload("Product").
			Where("user_id = ?", user.ID).
			Find(&lines).Error; err != nil {
			return err
		}
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			// A line whose product was deleted concurrently is already dead;
			// it cannot be priced, so it does not make it into the order.
			if line.Product == nil {
				continue
			}
			total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, models.OrderItem{
				ID:          uuid.New(),
				ProductID:   line.ProductID,
				ProductName: line.Product.Name,
				UnitPrice:   line.Product.Price,
				Quantity:    line.Quantity,
			})
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		order = models.Order{
			ID:            uuid.New(),
			Phone:         input.Phone,
			PaymentMethod: input.PaymentMethod,
			Items:         items,
			TotalPrice:    total,
			Status:        models.OrderStatusPending,
			CreatedAt:     time.Now(),
		}
		if shipping != nil {
			order.ShippingLat = &shipping.Lat
			order.ShippingLng = &shipping.Lng
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", user.ID).Delete(&models.CartLine{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
