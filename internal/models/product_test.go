package models_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog/internal/models"
)

func TestParseProductID(t *testing.T) {
	valid := models.NewProductID()

	parsed, err := models.ParseProductID(valid.String())
	assert.NoError(t, err)
	assert.Equal(t, valid, parsed)
	assert.Equal(t, valid.ObjectID(), parsed.ObjectID())

	for _, input := range []string{"", "not-an-id", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := models.ParseProductID(input)
		assert.Error(t, err, "input %q should be rejected", input)
		assert.True(t, errors.Is(err, models.ErrInvalidProductID))
	}
}

func TestProductIDIsZero(t *testing.T) {
	assert.True(t, models.ProductID{}.IsZero())
	assert.False(t, models.NewProductID().IsZero())
}

func TestProductInputDefaults(t *testing.T) {
	price := 10.0
	product := models.ProductInput{
		Title:    "Desk Lamp",
		Price:    &price,
		Category: "Office",
	}.Product()

	assert.True(t, product.InStock, "in_stock should default to true")
	assert.Equal(t, models.DefaultRating, product.Rating)
	assert.Equal(t, 10.0, product.Price)
	assert.True(t, product.ID.IsZero(), "id assignment belongs to the store")
}

func TestProductInputExplicitValues(t *testing.T) {
	price := 0.0
	inStock := false
	rating := 0.0
	product := models.ProductInput{
		Title:       "Freebie",
		Description: "Costs nothing.",
		Price:       &price,
		Category:    "Promo",
		InStock:     &inStock,
		Rating:      &rating,
	}.Product()

	assert.Equal(t, 0.0, product.Price)
	assert.False(t, product.InStock)
	assert.Equal(t, 0.0, product.Rating, "explicit zero rating must not be replaced by the default")
}
