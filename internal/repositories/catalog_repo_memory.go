package repositories

import (
	"fmt"
	"sort"
	"sync"

	"servermart/internal/models"
)

// MemoryCatalogRepository is an in-memory implementation of
// CatalogRepository, built once at startup and read-only afterwards.
type MemoryCatalogRepository struct {
	products   map[int]models.Product
	categories []models.Category
	mu         sync.RWMutex
}

// NewMemoryCatalogRepository creates a catalog holding the given products
// and categories. Category product lists are derived from the products.
func NewMemoryCatalogRepository(products []models.Product, categories []models.Category) *MemoryCatalogRepository {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	cats := make([]models.Category, len(categories))
	copy(cats, categories)
	for i := range cats {
		cats[i].Products = nil
		for _, p := range products {
			if p.CategoryID == cats[i].ID {
				cats[i].Products = append(cats[i].Products, p)
			}
		}
	}

	return &MemoryCatalogRepository{
		products:   byID,
		categories: cats,
	}
}

// GetAll returns all products ordered by ID.
func (r *MemoryCatalogRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// GetByID returns a product by its numeric ID.
func (r *MemoryCatalogRepository) GetByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	return &product, nil
}

// GetByName returns all products whose name matches exactly.
func (r *MemoryCatalogRepository) GetByName(name string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []models.Product
	for _, p := range r.products {
		if p.Name == name {
			matches = append(matches, p)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

// GetCategories returns all categories in storefront order.
func (r *MemoryCatalogRepository) GetCategories() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Category, len(r.categories))
	copy(list, r.categories)
	return list, nil
}

// GetCategoryByID returns a category by its string ID.
func (r *MemoryCatalogRepository) GetCategoryByID(id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			cat := c
			return &cat, nil
		}
	}
	return nil, fmt.Errorf("category with ID %s: %w", id, ErrNotFound)
}
