package uiControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Strangessssss/QPick-Backend/store"
)

// GET /api/ui/accordion
//
// Storefront navigation data: brand name -> categories it sells in.
func GetAccordion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		accordion, err := store.BrandAccordion(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build accordion"})
			return
		}
		c.JSON(http.StatusOK, accordion)
	}
}
