package repository

import (
	"context"

	"news-portal/internal/domain/entity"
)

// CategoryRepository persists editorial categories.
type CategoryRepository interface {
	Get(ctx context.Context, id int64) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}
