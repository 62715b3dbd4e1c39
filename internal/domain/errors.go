package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("local storage unavailable")
	ErrCatalogUnavailable = errors.New("recipe catalog unavailable")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)
