package productControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Strangessssss/QPick-Backend/store"
)

const productPublicPath = "/uploads/products"

// CreateProduct creates a new product with brand, category and image uploads.
// POST /admin/products (multipart form)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		description := c.PostForm("description")
		priceStr := c.PostForm("price")
		if name == "" || description == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, description and price are required"})
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		brandID, err := uuid.Parse(c.PostForm("brand"))
		if err != nil || brandID == uuid.Nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand"})
			return
		}
		categoryID, err := uuid.Parse(c.PostForm("category"))
		if err != nil || categoryID == uuid.Nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one image is required"})
			return
		}

		saveDir := filepath.Join(uploadsDir(), "products")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create upload folder: %v", err)})
			return
		}

		var imagePaths []string
		for _, file := range files {
			filename := uuid.NewString() + "_" + strings.ReplaceAll(file.Filename, " ", "_")
			savePath := filepath.Join(saveDir, filename)
			if err := c.SaveUploadedFile(file, savePath); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
				return
			}
			imagePaths = append(imagePaths, fmt.Sprintf("%s/%s", productPublicPath, filename))
		}

		product, err := store.CreateProduct(db, store.NewProduct{
			Name:        name,
			Description: description,
			Price:       price,
			Rating:      4.5,
			ImagePaths:  imagePaths,
			CategoryID:  categoryID,
			BrandID:     brandID,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

func uploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}
