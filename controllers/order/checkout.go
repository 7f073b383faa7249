package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Strangessssss/QPick-Backend/middleware"
	"github.com/Strangessssss/QPick-Backend/store"
)

// POST /user/checkout
//
// Form fields: phone, paymentMethod, deliveryType, location (JSON lat/lng,
// required only for deliveryType "delivery").
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		input := store.CheckoutInput{
			Phone:         c.PostForm("phone"),
			PaymentMethod: c.PostForm("paymentMethod"),
			DeliveryType:  c.PostForm("deliveryType"),
			Location:      c.PostForm("location"),
		}

		order, err := store.Checkout(c.Request.Context(), db, userID, input)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrInvalidCheckoutInput),
				errors.Is(err, store.ErrInvalidLocation),
				errors.Is(err, store.ErrEmptyCart),
				errors.Is(err, store.ErrUserNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			}
			return
		}

		// Feed is best effort; the order is already committed.
		broadcastNewOrder(*order)

		c.JSON(http.StatusOK, order.ID)
	}
}
