package entity

import "time"

// Comment represents a reader comment attached to an article.
// A comment always references an existing article; the persistence layer
// cascades comment removal when an article is deleted.
type Comment struct {
	ID        int64
	ArticleID int64
	AuthorID  int64
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy returns the ID of the user owning this comment.
func (c *Comment) OwnedBy() int64 { return c.AuthorID }
