package brandControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Strangessssss/QPick-Backend/store"
)

// GET /api/brands
func GetBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		brands, err := store.ListBrands(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
			return
		}
		c.JSON(http.StatusOK, brands)
	}
}

// GET /api/brands/:id
func GetBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
			return
		}

		brand, err := store.FindBrand(db, id)
		if err != nil {
			if errors.Is(err, store.ErrBrandNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brand"})
			return
		}
		c.JSON(http.StatusOK, brand)
	}
}

// POST /admin/brands
func AddBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		brand, err := store.CreateBrand(db, name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create brand"})
			return
		}
		c.JSON(http.StatusCreated, brand)
	}
}

// DELETE /admin/brands/:id
func RemoveBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
			return
		}

		if err := store.DeleteBrand(db, id); err != nil {
			switch {
			case errors.Is(err, store.ErrBrandNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			case errors.Is(err, store.ErrHasDependents):
				c.JSON(http.StatusConflict, gin.H{"error": "Impossible to delete brand with assigned products"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete brand"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Brand deleted"})
	}
}
