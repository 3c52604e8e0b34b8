package models

import "errors"

// Error taxonomy shared by services and handlers. Handlers map these to
// HTTP status codes; everything else is treated as an internal error.
var (
	// ErrInvalidProductID marks a malformed product identifier (400).
	ErrInvalidProductID = errors.New("invalid product id")

	// ErrProductNotFound marks a well-formed id with no matching record (404).
	ErrProductNotFound = errors.New("product not found")

	// ErrStoreUnavailable marks an operation that requires the store while
	// no store connection exists (500).
	ErrStoreUnavailable = errors.New("database not available")

	// ErrValidation marks a create payload that fails field validation (400).
	ErrValidation = errors.New("validation failed")
)
