package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the domain layer. Handlers map ErrNotFound
// to 404 and ErrInvalidInput to 400.
var (
	ErrNotFound     = errors.New("entity not found")
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError names the field an article, comment, or category
// submission failed on, so the response can point the author at it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
