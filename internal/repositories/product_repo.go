package repositories

import (
	"context"

	"catalog/internal/models"
)

// Sort orders recognized by List. Anything else falls back to the store's
// natural order.
const (
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortRatingDesc = "rating_desc"
)

// ListQuery describes the filter, sort and truncation applied by List.
type ListQuery struct {
	// Search matches case-insensitively against title OR description.
	Search string
	// Category requires exact equality when non-empty.
	Category string
	// Sort is one of the Sort* constants.
	Sort string
	// Limit truncates the result set; zero means no limit.
	Limit int64
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(ctx context.Context, query ListQuery) ([]models.Product, error)
	GetByID(ctx context.Context, id models.ProductID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (models.ProductID, error)
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}
