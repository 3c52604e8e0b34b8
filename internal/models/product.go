package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DefaultRating is applied when a create payload omits the rating field.
const DefaultRating = 4.5

// Product represents a product in the catalog. The ObjectID marshals to its
// hex form in JSON, so callers always see a plain string under "id".
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	InStock     bool               `json:"in_stock" bson:"in_stock"`
	Image       string             `json:"image" bson:"image"`
	Rating      float64            `json:"rating" bson:"rating"`
}

// ProductInput is the create payload: a Product without an id. Optional
// fields are pointers so that "absent" and "zero" stay distinguishable.
type ProductInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	InStock     *bool    `json:"in_stock"`
	Image       string   `json:"image"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// Product converts the input into a Product, applying defaults (in_stock
// true, rating 4.5). The id is left for the store to assign.
func (in ProductInput) Product() Product {
	p := Product{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Image:       in.Image,
		InStock:     true,
		Rating:      DefaultRating,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	return p
}
