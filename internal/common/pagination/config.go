// Package pagination provides offset pagination for the public article
// listing: query-param parsing, page math, the response envelope, and
// listing metrics.
package pagination

import "news-portal/pkg/config"

// Config bounds the article listing page size.
type Config struct {
	DefaultPage  int
	DefaultLimit int
	MaxLimit     int
}

// DefaultConfig returns the listing defaults: page 1, 20 articles per
// page, 100 at most.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

// LoadFromEnv reads the listing bounds from ARTICLE_LIST_DEFAULT_PAGE,
// ARTICLE_LIST_DEFAULT_LIMIT and ARTICLE_LIST_MAX_LIMIT, falling back
// to DefaultConfig values for anything unset or unparseable.
func LoadFromEnv() Config {
	return Config{
		DefaultPage:  config.GetEnvInt("ARTICLE_LIST_DEFAULT_PAGE", 1),
		DefaultLimit: config.GetEnvInt("ARTICLE_LIST_DEFAULT_LIMIT", 20),
		MaxLimit:     config.GetEnvInt("ARTICLE_LIST_MAX_LIMIT", 100),
	}
}
