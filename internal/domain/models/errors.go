package models

import "errors"

var (
	// ErrNotFound indicates a referenced product or alert does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateSKU indicates a catalog uniqueness violation.
	ErrDuplicateSKU = errors.New("sku already exists")
	// ErrInsufficientStock indicates a movement would drive stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrValidation indicates malformed input (non-positive quantity, bad thresholds).
	ErrValidation = errors.New("validation failed")
)
