// Package comment provides use cases for reader comments: creation by
// any authenticated user, editing by the comment's author only, and
// deletion by the author or an admin.
package comment

import "errors"

// Sentinel errors for comment use case operations.
var (
	// ErrCommentNotFound indicates that the requested comment was not found.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrInvalidCommentID indicates that the provided comment ID is invalid.
	ErrInvalidCommentID = errors.New("invalid comment ID")

	// ErrArticleNotFound indicates that the target article does not exist
	// or is not open for comments.
	ErrArticleNotFound = errors.New("article not found")
)
