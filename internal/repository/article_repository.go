// Package repository defines the persistence contracts consumed by the
// usecase layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"
	"errors"

	"news-portal/internal/domain/entity"
)

// ErrConflict indicates that a conditional write found the persisted
// status changed since the caller's read. The caller should reload and
// re-decide; one automatic retry is acceptable, silent override is not.
var ErrConflict = errors.New("resource version conflict")

// ArticleFilters contains optional filters for public article listings.
type ArticleFilters struct {
	Category *string // Optional: filter by category slug
	Tag      *string // Optional: filter by tag
}

// ArticleRepository persists articles. Get-style methods return
// (nil, nil) when the article does not exist.
type ArticleRepository interface {
	Get(ctx context.Context, id int64) (*entity.Article, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	// ListPublished retrieves published articles ordered by published_at
	// DESC, with LIMIT/OFFSET pagination and optional filters.
	ListPublished(ctx context.Context, filters ArticleFilters, offset, limit int) ([]*entity.Article, error)
	// CountPublished returns the total matching ListPublished, for
	// pagination metadata.
	CountPublished(ctx context.Context, filters ArticleFilters) (int64, error)
	// ListByAuthor retrieves all of one author's articles in any status,
	// newest first.
	ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Article, error)
	// ListAll retrieves every article regardless of status (admin view).
	ListAll(ctx context.Context) ([]*entity.Article, error)
	// ListPending retrieves the moderation queue, oldest submission first.
	ListPending(ctx context.Context) ([]*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	// Update persists the article conditionally: the row is written only
	// if its stored status still equals expected. Returns ErrConflict
	// when the condition fails, which prevents lost updates between two
	// concurrent transitions.
	Update(ctx context.Context, article *entity.Article, expected entity.ArticleStatus) error
	// Delete removes the article under the same conditional-status
	// contract as Update. Comments cascade at the database level.
	Delete(ctx context.Context, id int64, expected entity.ArticleStatus) error
	// IncrementViews bumps the view counter without touching any other
	// column. Counters are maintained outside the workflow engine.
	IncrementViews(ctx context.Context, id int64) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	// CountByStatus returns article counts per status, used by the stats
	// worker to refresh gauges.
	CountByStatus(ctx context.Context) (map[entity.ArticleStatus]int64, error)
}
