// Package user provides admin use cases for user management: listing
// accounts, switching roles between user and author, and blocking.
// Admin roles can never be granted or revoked through this path, and no
// admin can target their own account.
package user

import "errors"

// Sentinel errors for user management operations.
var (
	// ErrUserNotFound indicates that the requested user was not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserID indicates that the provided user ID is invalid.
	ErrInvalidUserID = errors.New("invalid user ID")
)
