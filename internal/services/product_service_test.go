package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, query repositories.ListQuery) ([]models.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id models.ProductID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) (models.ProductID, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(models.ProductID), args.Error(1)
}

func (m *MockProductRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductCreated(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func floatPtr(v float64) *float64 { return &v }

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := []models.Product{
		{Title: "Product A", Price: 10.0, Category: "Electronics"},
		{Title: "Product B", Price: 20.0, Category: "Office"},
	}
	query := repositories.ListQuery{Category: "Electronics", Limit: 50}

	mockRepo.On("List", mock.Anything, query).Return(expected, nil).Once()

	products := service.ListProducts(context.Background(), query)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProductsDegradesOnError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("List", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("connection reset")).Once()

	products := service.ListProducts(context.Background(), repositories.ListQuery{Limit: 50})
	assert.NotNil(t, products)
	assert.Empty(t, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProductsWithoutStore(t *testing.T) {
	service := services.NewProductService(nil, nil)

	products := service.ListProducts(context.Background(), repositories.ListQuery{Limit: 50})
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductService_GetProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	id := models.NewProductID()
	expected := &models.Product{ID: id.ObjectID(), Title: "Product A", Price: 10.0}

	mockRepo.On("GetByID", mock.Anything, id).Return(expected, nil).Once()

	product, err := service.GetProduct(context.Background(), id.String())
	assert.NoError(t, err)
	assert.Equal(t, expected, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductInvalidID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	product, err := service.GetProduct(context.Background(), "not-a-valid-id")
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, models.ErrInvalidProductID))
	// The repository must not be touched for malformed ids.
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestProductService_GetProductNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	id := models.NewProductID()
	mockRepo.On("GetByID", mock.Anything, id).
		Return(nil, fmt.Errorf("%w: %s", models.ErrProductNotFound, id)).Once()

	product, err := service.GetProduct(context.Background(), id.String())
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, models.ErrProductNotFound))
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductWithoutStore(t *testing.T) {
	service := services.NewProductService(nil, nil)

	product, err := service.GetProduct(context.Background(), models.NewProductID().String())
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, models.ErrProductNotFound))
}

func TestProductService_Categories(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Categories", mock.Anything).
		Return([]string{"Office", "", "Electronics", "Office", "Fashion"}, nil).Once()

	categories := service.Categories(context.Background())
	assert.Equal(t, []string{"Electronics", "Fashion", "Office"}, categories,
		"categories must be sorted, deduplicated and free of empty strings")
	mockRepo.AssertExpectations(t)
}

func TestProductService_CategoriesDegradesOnError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Categories", mock.Anything).Return(nil, fmt.Errorf("connection reset")).Once()

	categories := service.Categories(context.Background())
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	id := models.NewProductID()
	persisted := &models.Product{
		ID:       id.ObjectID(),
		Title:    "Desk Lamp",
		Price:    39.99,
		Category: "Office",
		InStock:  true,
		Rating:   models.DefaultRating,
	}

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
		return p.Title == "Desk Lamp" && p.InStock && p.Rating == models.DefaultRating
	})).Return(id, nil).Once()
	mockRepo.On("GetByID", mock.Anything, id).Return(persisted, nil).Once()
	mockPublisher.On("PublishProductCreated", mock.MatchedBy(func(event map[string]interface{}) bool {
		return event["id"] == id.String() && event["title"] == "Desk Lamp"
	})).Return(nil).Once()

	product, err := service.CreateProduct(context.Background(), models.ProductInput{
		Title:    "Desk Lamp",
		Price:    floatPtr(39.99),
		Category: "Office",
	})
	assert.NoError(t, err)
	assert.Equal(t, persisted, product)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_CreateProductPublishFailureIsSwallowed(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	id := models.NewProductID()
	persisted := &models.Product{ID: id.ObjectID(), Title: "Desk Lamp", Price: 39.99, Category: "Office"}

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(id, nil).Once()
	mockRepo.On("GetByID", mock.Anything, id).Return(persisted, nil).Once()
	mockPublisher.On("PublishProductCreated", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	product, err := service.CreateProduct(context.Background(), models.ProductInput{
		Title:    "Desk Lamp",
		Price:    floatPtr(39.99),
		Category: "Office",
	})
	assert.NoError(t, err, "publish failures must not fail the create")
	assert.Equal(t, persisted, product)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_CreateProductValidation(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	cases := []struct {
		name  string
		input models.ProductInput
	}{
		{"negative price", models.ProductInput{Title: "X", Price: floatPtr(-1), Category: "Office"}},
		{"rating above five", models.ProductInput{Title: "X", Price: floatPtr(1), Category: "Office", Rating: floatPtr(5.1)}},
		{"negative rating", models.ProductInput{Title: "X", Price: floatPtr(1), Category: "Office", Rating: floatPtr(-0.1)}},
		{"empty title", models.ProductInput{Price: floatPtr(1), Category: "Office"}},
		{"empty category", models.ProductInput{Title: "X", Price: floatPtr(1)}},
		{"missing price", models.ProductInput{Title: "X", Category: "Office"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product, err := service.CreateProduct(context.Background(), tc.input)
			assert.Nil(t, product)
			assert.True(t, errors.Is(err, models.ErrValidation), "got %v", err)
		})
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_CreateProductWithoutStore(t *testing.T) {
	service := services.NewProductService(nil, nil)

	product, err := service.CreateProduct(context.Background(), models.ProductInput{
		Title:    "Desk Lamp",
		Price:    floatPtr(39.99),
		Category: "Office",
	})
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, models.ErrStoreUnavailable))
}

func TestProductService_SeedIfEmpty(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Count", mock.Anything).Return(int64(0), nil).Once()
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(models.NewProductID(), nil).
		Times(len(services.SampleProducts()))

	err := service.SeedIfEmpty(context.Background())
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_SeedIfEmptySkipsPopulatedStore(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Count", mock.Anything).Return(int64(3), nil).Once()

	err := service.SeedIfEmpty(context.Background())
	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
