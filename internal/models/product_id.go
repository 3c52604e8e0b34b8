package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductID is the identifier of a stored product. It wraps the store-native
// ObjectID so that handlers and services never deal with the raw driver type.
type ProductID struct {
	oid primitive.ObjectID
}

// ParseProductID parses the external string form of a product id. Malformed
// input yields an error wrapping ErrInvalidProductID.
func ParseProductID(s string) (ProductID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ProductID{}, fmt.Errorf("%w: %q", ErrInvalidProductID, s)
	}
	return ProductID{oid: oid}, nil
}

// NewProductID returns a freshly generated identifier.
func NewProductID() ProductID {
	return ProductID{oid: primitive.NewObjectID()}
}

// ProductIDFromObjectID wraps a store-native id, e.g. one returned by an
// insert.
func ProductIDFromObjectID(oid primitive.ObjectID) ProductID {
	return ProductID{oid: oid}
}

// ObjectID exposes the store-native form for repository implementations.
func (id ProductID) ObjectID() primitive.ObjectID {
	return id.oid
}

// String returns the external hex form.
func (id ProductID) String() string {
	return id.oid.Hex()
}

// IsZero reports whether the id is the zero identifier.
func (id ProductID) IsZero() bool {
	return id.oid.IsZero()
}
