// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, Comment and User, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// ArticleStatus represents the moderation state of an article.
type ArticleStatus string

// Article statuses. An article starts as draft, moves to pending on
// submission, and is either published or rejected by an admin. Rejected
// articles can be edited and re-submitted.
const (
	StatusDraft     ArticleStatus = "draft"
	StatusPending   ArticleStatus = "pending"
	StatusPublished ArticleStatus = "published"
	StatusRejected  ArticleStatus = "rejected"
)

// Valid reports whether s is one of the defined article statuses.
func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// Article represents a news article in the system.
//
// Invariants maintained by the workflow engine:
//   - RejectionReason is non-empty if and only if Status is rejected.
//   - PublishedAt is set exactly once, at the first pending -> published
//     transition, and is never cleared afterwards.
//   - AuthorID and ID never change. Slug never changes once published.
type Article struct {
	ID              int64
	Slug            string
	AuthorID        int64
	Status          ArticleStatus
	Title           string
	Excerpt         string
	Content         string
	Category        string
	Tags            []string
	RejectionReason string
	Views           int64
	CommentsCount   int64
	CreatedAt       time.Time
	PublishedAt     *time.Time
}

// OwnedBy returns the ID of the user owning this article.
func (a *Article) OwnedBy() int64 { return a.AuthorID }

// ContentEditable reports whether the article is in a state where its
// author may change content fields. Admins may additionally edit pending
// articles; that exception lives in the access package, not here.
func (a *Article) ContentEditable() bool {
	return a.Status == StatusDraft || a.Status == StatusRejected
}

// Clone returns a deep copy of the article. The workflow engine never
// mutates its input; callers apply decisions to a clone.
func (a *Article) Clone() *Article {
	clone := *a
	if a.Tags != nil {
		clone.Tags = append([]string(nil), a.Tags...)
	}
	if a.PublishedAt != nil {
		t := *a.PublishedAt
		clone.PublishedAt = &t
	}
	return &clone
}
