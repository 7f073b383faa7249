package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Strangessssss/QPick-Backend/controllers/cart"
	orderControllers "github.com/Strangessssss/QPick-Backend/controllers/order"
	userControllers "github.com/Strangessssss/QPick-Backend/controllers/user"
	"github.com/Strangessssss/QPick-Backend/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires the guest JWT.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db)) // GET /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))              // GET /user/cart
			cartGroup.PUT("/:product_id", cartControllers.SetCartLine(db))   // PUT /user/cart/:product_id?quantity=n
		}

		// ──────────────── Saved Products ────────────────
		userGroup.POST("/saved/:product_id", cartControllers.ToggleSavedProduct(db)) // POST /user/saved/:product_id

		// ──────────────── Checkout ────────────────
		userGroup.POST("/checkout", orderControllers.Checkout(db)) // POST /user/checkout
	}
}
