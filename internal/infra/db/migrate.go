package db

import (
	"database/sql"
)

func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id         BIGSERIAL PRIMARY KEY,
    email      TEXT NOT NULL UNIQUE,
    name       TEXT NOT NULL,
    role       VARCHAR(20) NOT NULL DEFAULT 'user',
    blocked    BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS categories (
    id   BIGSERIAL PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id               BIGSERIAL PRIMARY KEY,
    slug             TEXT NOT NULL UNIQUE,
    author_id        BIGINT NOT NULL REFERENCES users(id),
    status           VARCHAR(20) NOT NULL DEFAULT 'draft',
    title            TEXT NOT NULL,
    excerpt          TEXT NOT NULL DEFAULT '',
    content          TEXT NOT NULL DEFAULT '',
    category         TEXT NOT NULL DEFAULT '',
    tags             JSONB NOT NULL DEFAULT '[]',
    rejection_reason TEXT NOT NULL DEFAULT '',
    views            BIGINT NOT NULL DEFAULT 0,
    comments_count   BIGINT NOT NULL DEFAULT 0,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    published_at     TIMESTAMPTZ
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS comments (
    id         BIGSERIAL PRIMARY KEY,
    article_id BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    author_id  BIGINT NOT NULL REFERENCES users(id),
    content    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// Public listings filter on status and order by published_at.
		`CREATE INDEX IF NOT EXISTS idx_articles_status_published_at ON articles(status, published_at DESC)`,
		// Per-author article lists.
		`CREATE INDEX IF NOT EXISTS idx_articles_author_id ON articles(author_id)`,
		// Moderation queue: pending only, oldest first.
		`CREATE INDEX IF NOT EXISTS idx_articles_pending ON articles(created_at ASC) WHERE status = 'pending'`,
		// Category filter on public listings.
		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category)`,
		// Comment threads per article.
		`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_author_id ON comments(author_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// Tag filtering uses the jsonb ? operator, which a GIN index serves.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_articles_tags_gin ON articles USING gin(tags)`); err != nil {
		return err
	}

	// Status and role domains, added separately so re-running stays idempotent.
	_, _ = db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint
        WHERE conname = 'chk_article_status'
    ) THEN
        ALTER TABLE articles ADD CONSTRAINT chk_article_status
        CHECK (status IN ('draft', 'pending', 'published', 'rejected'));
    END IF;
END $$;
`)
	_, _ = db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint
        WHERE conname = 'chk_user_role'
    ) THEN
        ALTER TABLE users ADD CONSTRAINT chk_user_role
        CHECK (role IN ('user', 'author', 'admin'));
    END IF;
END $$;
`)

	return nil
}

// MigrateDown rolls back the database schema.
// This function removes tables in reverse order of creation.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS comments CASCADE`,
		`DROP TABLE IF EXISTS articles CASCADE`,
		`DROP TABLE IF EXISTS categories CASCADE`,
		`DROP TABLE IF EXISTS users CASCADE`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
