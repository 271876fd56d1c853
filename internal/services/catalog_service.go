package services

import (
	"servermart/internal/models"
	"servermart/internal/repositories"
)

// CatalogService handles read access to the product catalog.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetCategories retrieves all categories in storefront order.
func (s *CatalogService) GetCategories() ([]models.Category, error) {
	return s.repo.GetCategories()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CatalogService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetCategoryByID(id)
}

// CategoryName resolves a category ID to its display name, falling back to
// a generic label for unknown IDs.
func (s *CatalogService) CategoryName(id string) string {
	category, err := s.repo.GetCategoryByID(id)
	if err != nil {
		return "Unknown Category"
	}
	return category.Name
}
