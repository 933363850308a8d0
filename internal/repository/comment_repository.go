package repository

import (
	"context"

	"news-portal/internal/domain/entity"
)

// CommentRepository persists comments. Create and Delete also maintain
// the owning article's comments_count counter in the same transaction.
type CommentRepository interface {
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	// ListByArticle retrieves an article's comments, oldest first.
	ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error)
	// ListByAuthor retrieves one user's comments, newest first.
	ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Comment, error)
	// ListAll retrieves every comment (admin moderation view).
	ListAll(ctx context.Context) ([]*entity.Comment, error)
	Create(ctx context.Context, comment *entity.Comment) error
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id int64) error
	// CountAll returns the total number of comments, for the stats worker.
	CountAll(ctx context.Context) (int64, error)
}
