package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Strangessssss/QPick-Backend/models"
)

// FindProduct resolves a product with its brand and category, or
// ErrProductNotFound.
func FindProduct(db *gorm.DB, productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := db.
		Preload("Images").
		Preload("Category").
		Preload("Brand").
		First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func ProductExists(db *gorm.DB, productID uuid.UUID) (bool, error) {
	var count int64
	if err := db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListProducts returns the catalog, optionally filtered by category and/or
// brand name.
func ListProducts(db *gorm.DB, categoryName, brandName string) ([]models.Product, error) {
	query := db.Preload("Images").Preload("Category").Preload("Brand")

	if categoryName != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.name = ?", categoryName)
	}
	if brandName != "" {
		query = query.Joins("JOIN brands ON brands.id = products.brand_id").
			Where("brands.name = ?", brandName)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

type NewProduct struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Rating      float32
	ImagePaths  []string
	CategoryID  uuid.UUID
	BrandID     uuid.UUID
}

func CreateProduct(db *gorm.DB, input NewProduct) (*models.Product, error) {
	product := models.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Rating:      input.Rating,
		CategoryID:  &input.CategoryID,
		BrandID:     &input.BrandID,
		CreatedAt:   time.Now(),
	}
	for _, path := range input.ImagePaths {
		product.Images = append(product.Images, models.ProductImage{
			ID:        uuid.New(),
			ProductID: product.ID,
			Path:      path,
		})
	}
	if err := db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product together with everything that references
// it: images, cart lines and saved-set rows. A dangling cart line would point
// at a product that no longer resolves, so the references die in the same
// transaction.
func DeleteProduct(db *gorm.DB, productID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Select("Images").Delete(&models.Product{ID: productID})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProductNotFound
		}
		if err := tx.Where("product_id = ?", productID).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM user_saved_products WHERE product_id = ?", productID).Error
	})
}

func CreateBrand(db *gorm.DB, name string) (*models.Brand, error) {
	brand := models.Brand{ID: uuid.New(), Name: name}
	if err := db.Create(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func ListBrands(db *gorm.DB) ([]models.Brand, error) {
	var brands []models.Brand
	if err := db.Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func FindBrand(db *gorm.DB, brandID uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	if err := db.First(&brand, "id = ?", brandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return &brand, nil
}

// DeleteBrand refuses to delete a brand that products still reference. The
// guard is explicit rather than left to a storage cascade.
func DeleteBrand(db *gorm.DB, brandID uuid.UUID) error {
	if _, err := FindBrand(db, brandID); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Product{}).Where("brand_id = ?", brandID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrHasDependents
	}
	return db.Delete(&models.Brand{}, "id = ?", brandID).Error
}

func CreateCategory(db *gorm.DB, name, image string) (*models.Category, error) {
	category := models.Category{ID: uuid.New(), Name: name, Image: image}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func FindCategory(db *gorm.DB, categoryID uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func DeleteCategory(db *gorm.DB, categoryID uuid.UUID) error {
	if _, err := FindCategory(db, categoryID); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrHasDependents
	}
	return db.Delete(&models.Category{}, "id = ?", categoryID).Error
}

// BrandAccordion maps each brand name to the distinct categories of its
// products, for the storefront navigation accordion.
func BrandAccordion(db *gorm.DB) (map[string][]models.Category, error) {
	var brands []models.Brand
	if err := db.Preload("Products").Preload("Products.Category").Find(&brands).Error; err != nil {
		return nil, err
	}

	accordion := make(map[string][]models.Category, len(brands))
	for _, brand := range brands {
		seen := make(map[uuid.UUID]bool)
		categories := []models.Category{}
		for _, product := range brand.Products {
			if product.Category == nil || seen[product.Category.ID] {
				continue
			}
			seen[product.Category.ID] = true
			categories = append(categories, *product.Category)
		}
		accordion[brand.Name] = categories
	}
	return accordion, nil
}
