package repositories

import (
	"errors"

	"servermart/internal/models"
)

// ErrNotFound is wrapped by repository lookups that match nothing.
var ErrNotFound = errors.New("not found")

// CatalogRepository defines read-only access to the product catalog.
// Consumers never mutate catalog data; implementations own how it is
// loaded and seeded.
type CatalogRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	GetByName(name string) ([]models.Product, error)
	GetCategories() ([]models.Category, error)
	GetCategoryByID(id string) (*models.Category, error)
}
