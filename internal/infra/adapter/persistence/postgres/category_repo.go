package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

type CategoryRepo struct {
	db DB
}

func NewCategoryRepo(db DB) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	const query = `SELECT id, slug, name FROM categories WHERE id = $1 LIMIT 1`
	return repo.scanOne(repo.db.QueryRowContext(ctx, query, id), "Get")
}

func (repo *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	const query = `SELECT id, slug, name FROM categories WHERE slug = $1 LIMIT 1`
	return repo.scanOne(repo.db.QueryRowContext(ctx, query, slug), "GetBySlug")
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	const query = `SELECT id, slug, name FROM categories ORDER BY name ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*entity.Category, 0, 20)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (repo *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	const query = `INSERT INTO categories (slug, name) VALUES ($1, $2) RETURNING id`
	err := repo.db.QueryRowContext(ctx, query, category.Slug, category.Name).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	const query = `UPDATE categories SET name = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, category.Name, category.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *CategoryRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM categories WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *CategoryRepo) scanOne(row *sql.Row, op string) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Slug, &c.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
