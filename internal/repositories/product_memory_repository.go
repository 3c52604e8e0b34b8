package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"catalog/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. It mirrors the observable filter/sort/limit semantics
// of the Mongo implementation and preserves insertion order as its natural
// order.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

// List returns products matching the query.
func (r *MemoryProductRepository) List(ctx context.Context, query ListQuery) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.products))
	search := strings.ToLower(query.Search)
	for _, p := range r.products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if query.Category != "" && p.Category != query.Category {
			continue
		}
		matched = append(matched, p)
	}

	switch query.Sort {
	case SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	case SortRatingDesc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Rating > matched[j].Rating })
	}

	if query.Limit > 0 && int64(len(matched)) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(ctx context.Context, id models.ProductID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id.ObjectID() {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", models.ErrProductNotFound, id)
}

// Create adds a new product, assigning an identifier when none is set.
func (r *MemoryProductRepository) Create(ctx context.Context, product *models.Product) (models.ProductID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID.IsZero() {
		product.ID = models.NewProductID().ObjectID()
	}
	r.products = append(r.products, *product)
	return models.ProductIDFromObjectID(product.ID), nil
}

// Categories returns the distinct category values across all products.
func (r *MemoryProductRepository) Categories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range r.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}

// Count returns the number of stored products.
func (r *MemoryProductRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.products)), nil
}
