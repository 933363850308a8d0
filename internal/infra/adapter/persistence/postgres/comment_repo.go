package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

const commentColumns = `id, article_id, author_id, content, created_at, updated_at`

type CommentRepo struct {
	db DB
}

func NewCommentRepo(db DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	const query = `
SELECT ` + commentColumns + `
FROM comments
WHERE id = $1
LIMIT 1`
	var c entity.Comment
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.ArticleID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &c, nil
}

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	const query = `
SELECT ` + commentColumns + `
FROM comments
WHERE article_id = $1
ORDER BY created_at ASC`
	return repo.list(ctx, query, "ListByArticle", articleID)
}

func (repo *CommentRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Comment, error) {
	const query = `
SELECT ` + commentColumns + `
FROM comments
WHERE author_id = $1
ORDER BY created_at DESC`
	return repo.list(ctx, query, "ListByAuthor", authorID)
}

func (repo *CommentRepo) ListAll(ctx context.Context) ([]*entity.Comment, error) {
	const query = `
SELECT ` + commentColumns + `
FROM comments
ORDER BY created_at DESC`
	return repo.list(ctx, query, "ListAll")
}

// Create inserts the comment and bumps the owning article's counter in
// one transaction, so the counter never drifts from the rows it counts.
func (repo *CommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insert = `
INSERT INTO comments (article_id, author_id, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err = tx.QueryRowContext(ctx, insert,
		comment.ArticleID, comment.AuthorID, comment.Content,
		comment.CreatedAt, comment.UpdatedAt,
	).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}

	const bump = `UPDATE articles SET comments_count = comments_count + 1 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, bump, comment.ArticleID); err != nil {
		return fmt.Errorf("Create: bump counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Create: commit: %w", err)
	}
	return nil
}

func (repo *CommentRepo) Update(ctx context.Context, comment *entity.Comment) error {
	const query = `
UPDATE comments
SET content = $1, updated_at = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, comment.Content, comment.UpdatedAt, comment.ID)
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

// Delete removes the comment and decrements the owning article's
// counter in one transaction.
func (repo *CommentRepo) Delete(ctx context.Context, id int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Delete: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const remove = `DELETE FROM comments WHERE id = $1 RETURNING article_id`
	var articleID int64
	err = tx.QueryRowContext(ctx, remove, id).Scan(&articleID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}

	const drop = `UPDATE articles SET comments_count = GREATEST(comments_count - 1, 0) WHERE id = $1`
	if _, err := tx.ExecContext(ctx, drop, articleID); err != nil {
		return fmt.Errorf("Delete: drop counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Delete: commit: %w", err)
	}
	return nil
}

func (repo *CommentRepo) CountAll(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM comments`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountAll: %w", err)
	}
	return count, nil
}

func (repo *CommentRepo) list(ctx context.Context, query, op string, args ...interface{}) ([]*entity.Comment, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 50)
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}
