package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public catalog,
// auth, user and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog browsing
	SetupPublicRoutes(r, db)

	// User routes (guest-JWT protected)
	SetupUserRoutes(r, db)

	// Admin routes (API-key protected)
	SetupAdminRoutes(r, db)
}
