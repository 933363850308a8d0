package workflow

import (
	"fmt"

	"news-portal/internal/domain/entity"
)

// IllegalTransitionError indicates that a requested event is not legal
// from the article's current status. The caller should not retry without
// the state changing first.
type IllegalTransitionError struct {
	Status entity.ArticleStatus
	Event  Event
}

// Error returns a message carrying the current status and attempted event.
func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("cannot %s an article in status '%s'", e.Event, e.Status)
}
