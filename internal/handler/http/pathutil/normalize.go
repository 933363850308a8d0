package pathutil

import (
	"regexp"
	"strings"
)

type route struct {
	pattern  *regexp.Regexp
	template string
}

// routes maps dynamic paths to templates, most specific first. The
// numeric /articles/:id alternatives must precede the slug catch-all or
// "/articles/123" would normalize as a slug.
var routes = []route{
	{regexp.MustCompile(`^/articles/\d+$`), "/articles/:id"},
	{regexp.MustCompile(`^/articles/\d+/submit$`), "/articles/:id/submit"},
	{regexp.MustCompile(`^/articles/\d+/approve$`), "/articles/:id/approve"},
	{regexp.MustCompile(`^/articles/\d+/reject$`), "/articles/:id/reject"},
	{regexp.MustCompile(`^/articles/\d+/comments$`), "/articles/:id/comments"},
	{regexp.MustCompile(`^/my/articles/\d+$`), "/my/articles/:id"},
	{regexp.MustCompile(`^/articles/[a-z0-9-]+$`), "/articles/:slug"},
	{regexp.MustCompile(`^/comments/\d+$`), "/comments/:id"},
	{regexp.MustCompile(`^/categories/\d+$`), "/categories/:id"},
	{regexp.MustCompile(`^/users/\d+$`), "/users/:id"},
	{regexp.MustCompile(`^/users/\d+/role$`), "/users/:id/role"},
	{regexp.MustCompile(`^/users/\d+/block$`), "/users/:id/block"},
}

// NormalizePath collapses dynamic URL paths to their route template so
// per-path metric labels stay bounded: "/articles/123" becomes
// "/articles/:id", "/articles/budget-vote" becomes "/articles/:slug".
// Query strings and trailing slashes are stripped first. Paths that
// match no template, such as "/healthz" or the "/articles" listing,
// pass through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, r := range routes {
		if r.pattern.MatchString(path) {
			return r.template
		}
	}
	return path
}
