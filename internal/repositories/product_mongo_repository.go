package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog/internal/models"
)

// ProductCollection is the collection holding product documents.
const ProductCollection = "product"

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		coll: db.Collection(ProductCollection),
	}
}

// List retrieves products matching the query from the database.
func (r *MongoProductRepository) List(ctx context.Context, query ListQuery) ([]models.Product, error) {
	filter := bson.M{}
	if query.Search != "" {
		pattern := bson.M{"$regex": query.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}
	if query.Category != "" {
		filter["category"] = query.Category
	}

	opts := options.Find()
	switch query.Sort {
	case SortPriceAsc:
		opts.SetSort(bson.D{{Key: "price", Value: 1}})
	case SortPriceDesc:
		opts.SetSort(bson.D{{Key: "price", Value: -1}})
	case SortRatingDesc:
		opts.SetSort(bson.D{{Key: "rating", Value: -1}})
	}
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *MongoProductRepository) GetByID(ctx context.Context, id models.ProductID) (*models.Product, error) {
	var product models.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", models.ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product and returns the identifier the store assigned.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) (models.ProductID, error) {
	result, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return models.ProductID{}, fmt.Errorf("failed to create product: %w", err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.ProductID{}, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	id := models.ProductIDFromObjectID(oid)
	product.ID = oid
	return id, nil
}

// Categories returns the distinct category values across all products.
func (r *MongoProductRepository) Categories(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// Count returns the number of product documents in the collection.
func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
