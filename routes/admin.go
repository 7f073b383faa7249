package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	brandControllers "github.com/Strangessssss/QPick-Backend/controllers/brand"
	cartControllers "github.com/Strangessssss/QPick-Backend/controllers/cart"
	categoryControllers "github.com/Strangessssss/QPick-Backend/controllers/category"
	orderControllers "github.com/Strangessssss/QPick-Backend/controllers/order"
	productControllers "github.com/Strangessssss/QPick-Backend/controllers/product"
	userControllers "github.com/Strangessssss/QPick-Backend/controllers/user"
	"github.com/Strangessssss/QPick-Backend/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Catalog Management ────────────────
		adminGroup.POST("/products", productControllers.CreateProduct(db))       // POST /admin/products
		adminGroup.DELETE("/products/:id", productControllers.RemoveProduct(db)) // DELETE /admin/products/:id
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(db))

		adminGroup.POST("/brands", brandControllers.AddBrand(db))          // POST /admin/brands
		adminGroup.DELETE("/brands/:id", brandControllers.RemoveBrand(db)) // DELETE /admin/brands/:id

		adminGroup.POST("/categories", categoryControllers.AddCategory(db))          // POST /admin/categories
		adminGroup.DELETE("/categories/:id", categoryControllers.RemoveCategory(db)) // DELETE /admin/categories/:id

		// ──────────────── Users & Carts ────────────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))                 // GET /admin/users
		adminGroup.GET("/users/:user_id/cart", cartControllers.GetAdminUserCart(db)) // GET /admin/users/:user_id/cart

		// ──────────────── Orders ────────────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))                    // GET /admin/orders
		adminGroup.GET("/orders/ws", orderControllers.OrderWebSocketHandler)                   // GET /admin/orders/ws
		adminGroup.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(db))           // GET /admin/orders/:orderID
		adminGroup.PATCH("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db)) // PATCH /admin/orders/:orderID/status
	}
}
