package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/go-playground/validator/v10"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// EventPublisher publishes catalog events to the message broker. A nil
// publisher disables publishing entirely.
type EventPublisher interface {
	PublishProductCreated(event map[string]interface{}) error
}

// ProductService handles business logic related to products.
//
// The repository may be nil when the store was unreachable at startup; read
// operations then degrade to empty results while create fails loudly.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// ListProducts retrieves products matching the query. It never fails: when
// the store is missing or the query errors, it returns an empty list.
func (s *ProductService) ListProducts(ctx context.Context, query repositories.ListQuery) []models.Product {
	if s.repo == nil {
		return []models.Product{}
	}
	products, err := s.repo.List(ctx, query)
	if err != nil {
		log.Printf("Degrading product list to empty result: %v", err)
		return []models.Product{}
	}
	return products
}

// GetProduct retrieves a single product by the external string form of its
// id. It fails with models.ErrInvalidProductID on malformed input and
// models.ErrProductNotFound when no record matches.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	productID, err := models.ParseProductID(id)
	if err != nil {
		return nil, err
	}
	if s.repo == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrProductNotFound, id)
	}
	return s.repo.GetByID(ctx, productID)
}

// Categories returns the distinct non-empty category values, sorted
// ascending. Like ListProducts it degrades to an empty list on failure.
func (s *ProductService) Categories(ctx context.Context) []string {
	if s.repo == nil {
		return []string{}
	}
	values, err := s.repo.Categories(ctx)
	if err != nil {
		log.Printf("Degrading category list to empty result: %v", err)
		return []string{}
	}

	seen := make(map[string]struct{}, len(values))
	categories := make([]string, 0, len(values))
	for _, c := range values {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// CreateProduct validates and persists a new product, then re-reads the
// persisted record so the caller sees exactly what the store holds.
func (s *ProductService) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	if s.repo == nil {
		return nil, models.ErrStoreUnavailable
	}

	product := input.Product()
	id, err := s.repo.Create(ctx, &product)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	persisted, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"id":       persisted.ID.Hex(),
			"title":    persisted.Title,
			"price":    persisted.Price,
			"category": persisted.Category,
		}
		if err := s.publisher.PublishProductCreated(event); err != nil {
			// Publishing is best effort; the create already succeeded.
			log.Printf("Failed to publish product.created event: %v", err)
		}
	}
	return persisted, nil
}

// SeedIfEmpty inserts the sample catalog when the store holds no products.
// Callers are expected to log and ignore any error.
func (s *ProductService) SeedIfEmpty(ctx context.Context) error {
	if s.repo == nil {
		return models.ErrStoreUnavailable
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products before seeding: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, sample := range SampleProducts() {
		product := sample
		if _, err := s.repo.Create(ctx, &product); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", product.Title, err)
		}
	}
	return nil
}
