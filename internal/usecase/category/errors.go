// Package category provides admin use cases for editorial categories.
package category

import "errors"

// Sentinel errors for category operations.
var (
	// ErrCategoryNotFound indicates that the requested category was not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryID indicates that the provided category ID is invalid.
	ErrInvalidCategoryID = errors.New("invalid category ID")

	// ErrDuplicateCategory indicates that a category with the same slug
	// already exists.
	ErrDuplicateCategory = errors.New("category with this slug already exists")
)
