package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

// articleColumns is the scan list shared by all article queries.
const articleColumns = `id, slug, author_id, status, title, excerpt, content, category, tags, rejection_reason, views, comments_count, created_at, published_at`

type ArticleRepo struct {
	db DB
}

func NewArticleRepo(db DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	return repo.scanOne(repo.db.QueryRowContext(ctx, query, id), "Get")
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE slug = $1
LIMIT 1`
	return repo.scanOne(repo.db.QueryRowContext(ctx, query, slug), "GetBySlug")
}

func (repo *ArticleRepo) ListPublished(ctx context.Context, filters repository.ArticleFilters, offset, limit int) ([]*entity.Article, error) {
	query, args := publishedQuery("SELECT "+articleColumns, filters)
	query += fmt.Sprintf("\nORDER BY published_at DESC\nLIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPublished: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return repo.scanAll(rows, "ListPublished", limit)
}

func (repo *ArticleRepo) CountPublished(ctx context.Context, filters repository.ArticleFilters) (int64, error) {
	query, args := publishedQuery("SELECT COUNT(*)", filters)
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountPublished: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE author_id = $1
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("ListByAuthor: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return repo.scanAll(rows, "ListByAuthor", 0)
}

func (repo *ArticleRepo) ListAll(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
ORDER BY created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return repo.scanAll(rows, "ListAll", 0)
}

// ListPending returns the moderation queue, oldest submission first so
// the longest-waiting authors are handled before newer ones.
func (repo *ArticleRepo) ListPending(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE status = $1
ORDER BY created_at ASC`
	rows, err := repo.db.QueryContext(ctx, query, entity.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("ListPending: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return repo.scanAll(rows, "ListPending", 0)
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (slug, author_id, status, title, excerpt, content, category, tags, rejection_reason, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`
	tags, err := encodeTags(article.Tags)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	err = repo.db.QueryRowContext(ctx, query,
		article.Slug, article.AuthorID, article.Status, article.Title,
		article.Excerpt, article.Content, article.Category, tags,
		article.RejectionReason, article.CreatedAt,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Update writes the article only when the stored status still matches
// expected. Zero affected rows means another transition won the race
// (or the row is gone); either way the caller must reload before
// deciding again, so both report as ErrConflict.
//
// author_id, created_at and the counters are deliberately absent from
// the SET list: ownership and creation time are immutable, and counters
// are maintained through their own operations.
func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article, expected entity.ArticleStatus) error {
	const query = `
UPDATE articles
SET slug = $1, status = $2, title = $3, excerpt = $4, content = $5,
    category = $6, tags = $7, rejection_reason = $8, published_at = $9
WHERE id = $10 AND status = $11`
	tags, err := encodeTags(article.Tags)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	res, err := repo.db.ExecContext(ctx, query,
		article.Slug, article.Status, article.Title, article.Excerpt,
		article.Content, article.Category, tags, article.RejectionReason,
		article.PublishedAt, article.ID, expected,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if affected == 0 {
		return repository.ErrConflict
	}
	return nil
}

// Delete removes the article under the same conditional-status contract
// as Update. Comments cascade via the foreign key.
func (repo *ArticleRepo) Delete(ctx context.Context, id int64, expected entity.ArticleStatus) error {
	const query = `DELETE FROM articles WHERE id = $1 AND status = $2`
	res, err := repo.db.ExecContext(ctx, query, id, expected)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if affected == 0 {
		return repository.ErrConflict
	}
	return nil
}

func (repo *ArticleRepo) IncrementViews(ctx context.Context, id int64) error {
	const query = `UPDATE articles SET views = views + 1 WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("IncrementViews: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsBySlug: %w", err)
	}
	return exists, nil
}

func (repo *ArticleRepo) CountByStatus(ctx context.Context) (map[entity.ArticleStatus]int64, error) {
	const query = `SELECT status, COUNT(*) FROM articles GROUP BY status`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("CountByStatus: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[entity.ArticleStatus]int64, 4)
	for rows.Next() {
		var status entity.ArticleStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("CountByStatus: Scan: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (repo *ArticleRepo) scanOne(row *sql.Row, op string) (*entity.Article, error) {
	var (
		article entity.Article
		tags    []byte
	)
	err := row.Scan(&article.ID, &article.Slug, &article.AuthorID, &article.Status,
		&article.Title, &article.Excerpt, &article.Content, &article.Category,
		&tags, &article.RejectionReason, &article.Views, &article.CommentsCount,
		&article.CreatedAt, &article.PublishedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := decodeTags(tags, &article.Tags); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &article, nil
}

func (repo *ArticleRepo) scanAll(rows *sql.Rows, op string, capacity int) ([]*entity.Article, error) {
	if capacity <= 0 {
		capacity = 50
	}
	articles := make([]*entity.Article, 0, capacity)
	for rows.Next() {
		var (
			article entity.Article
			tags    []byte
		)
		if err := rows.Scan(&article.ID, &article.Slug, &article.AuthorID, &article.Status,
			&article.Title, &article.Excerpt, &article.Content, &article.Category,
			&tags, &article.RejectionReason, &article.Views, &article.CommentsCount,
			&article.CreatedAt, &article.PublishedAt); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		if err := decodeTags(tags, &article.Tags); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

// publishedQuery builds the shared WHERE clause for public listings.
func publishedQuery(selectClause string, filters repository.ArticleFilters) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(selectClause)
	sb.WriteString("\nFROM articles\nWHERE status = $1")
	args := []interface{}{entity.StatusPublished}

	if filters.Category != nil {
		args = append(args, *filters.Category)
		fmt.Fprintf(&sb, "\nAND category = $%d", len(args))
	}
	if filters.Tag != nil {
		args = append(args, *filters.Tag)
		fmt.Fprintf(&sb, "\nAND tags::jsonb ? $%d::text", len(args))
	}
	return sb.String(), args
}

// Tags are stored as a JSONB array.

func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

func decodeTags(raw []byte, out *[]string) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
