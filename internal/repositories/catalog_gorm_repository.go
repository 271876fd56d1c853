package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"servermart/internal/models"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database, ordered by ID.
func (r *GORMCatalogRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Images").Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMCatalogRepository) GetByID(id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Images").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// GetByName retrieves all products with an exactly matching name.
func (r *GORMCatalogRepository) GetByName(name string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Images").Where("name = ?", name).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by name %q: %w", name, err)
	}
	return products, nil
}

// GetCategories retrieves all categories with their products.
func (r *GORMCatalogRepository) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Preload("Products").Preload("Products.Images").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a single category with its products.
func (r *GORMCatalogRepository) GetCategoryByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Preload("Products").Preload("Products.Images").First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// Seed inserts the given catalog if the products table is empty. Seeding is
// an owner operation and deliberately not part of CatalogRepository.
func (r *GORMCatalogRepository) Seed(products []models.Product, categories []models.Category) error {
	var count int64
	if err := r.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, c := range categories {
		c.Products = nil
		if err := r.db.Create(&c).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.ID, err)
		}
	}
	for _, p := range products {
		if err := r.db.Create(&p).Error; err != nil {
			return fmt.Errorf("failed to seed product %d: %w", p.ID, err)
		}
	}
	return nil
}
