package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	brandControllers "github.com/Strangessssss/QPick-Backend/controllers/brand"
	categoryControllers "github.com/Strangessssss/QPick-Backend/controllers/category"
	productControllers "github.com/Strangessssss/QPick-Backend/controllers/product"
	uiControllers "github.com/Strangessssss/QPick-Backend/controllers/ui"
)

// SetupPublicRoutes registers unauthenticated catalog browsing.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/products", productControllers.GetProducts(db))        // GET /api/products
		api.GET("/products/:id", productControllers.GetProductByID(db)) // GET /api/products/:id

		api.GET("/brands", brandControllers.GetBrands(db))    // GET /api/brands
		api.GET("/brands/:id", brandControllers.GetBrand(db)) // GET /api/brands/:id

		api.GET("/categories", categoryControllers.GetCategories(db))    // GET /api/categories
		api.GET("/categories/:id", categoryControllers.GetCategory(db)) // GET /api/categories/:id

		api.GET("/ui/accordion", uiControllers.GetAccordion(db)) // GET /api/ui/accordion
	}
}
