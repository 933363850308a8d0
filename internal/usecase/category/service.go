package category

import (
	"context"
	"fmt"

	"news-portal/internal/domain/access"
	"news-portal/internal/domain/entity"
	"news-portal/internal/observability/metrics"
	"news-portal/internal/repository"
)

// Service provides category management use cases. Reads are public;
// writes are admin only.
type Service struct {
	Repo repository.CategoryRepository
}

// List retrieves all categories for navigation and filtering.
func (s *Service) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Create adds a new category. Admin only. The slug is derived from the
// name when not supplied.
func (s *Service) Create(ctx context.Context, actor entity.Actor, name, slug string) (*entity.Category, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if slug == "" {
		slug = entity.Slugify(name)
	}

	existing, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("check category slug: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateCategory
	}

	c := &entity.Category{Name: name, Slug: slug}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// Update renames a category. Admin only. The slug stays stable so
// existing article references and URLs keep working.
func (s *Service) Update(ctx context.Context, actor entity.Actor, id int64, name string) (*entity.Category, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	c.Name = name
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// Delete removes a category. Admin only.
func (s *Service) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if err := s.authorize(actor); err != nil {
		return err
	}
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (s *Service) authorize(actor entity.Actor) error {
	if !access.CanPerform(actor, access.ActionManageCategory, nil) {
		metrics.RecordAuthzDenial(string(access.ActionManageCategory))
		return access.Denied(access.ActionManageCategory)
	}
	return nil
}

func (s *Service) load(ctx context.Context, id int64) (*entity.Category, error) {
	if id <= 0 {
		return nil, ErrInvalidCategoryID
	}
	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}
