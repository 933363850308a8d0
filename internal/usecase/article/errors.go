// Package article provides use cases for the article publication workflow.
// It authorizes the acting user through the access predicate, asks the
// workflow engine to compute transitions, and persists outcomes through
// the repository's conditional-update contract.
package article

import "errors"

// Sentinel errors the handlers translate into 404 and 400 responses.
var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrInvalidArticleID = errors.New("invalid article ID")
)
