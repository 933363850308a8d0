package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		// dynamic routes collapse to templates
		"/articles/123":          "/articles/:id",
		"/articles/123/submit":   "/articles/:id/submit",
		"/articles/456/approve":  "/articles/:id/approve",
		"/articles/456/reject":   "/articles/:id/reject",
		"/articles/789/comments": "/articles/:id/comments",
		"/my/articles/42":        "/my/articles/:id",
		"/comments/7":            "/comments/:id",
		"/categories/3":          "/categories/:id",
		"/users/12":              "/users/:id",
		"/users/12/role":         "/users/:id/role",
		"/users/12/block":        "/users/:id/block",

		// public detail pages are addressed by slug, not numeric ID
		"/articles/budget-vote-delayed": "/articles/:slug",

		// static and unmatched paths pass through
		"/articles":         "/articles",
		"/moderation/queue": "/moderation/queue",
		"/healthz":          "/healthz",
		"/metrics":          "/metrics",
		"/unknown/path/123": "/unknown/path/123",
		"/":                 "/",

		// query strings and trailing slashes are stripped first
		"/articles/123?page=1":  "/articles/:id",
		"/healthz?format=json":  "/healthz",
		"/articles/123/":        "/articles/:id",
		"/users/12/role?x=y":    "/users/:id/role",
		"/articles/12-angry-men": "/articles/:slug",
	}

	for path, want := range tests {
		if got := NormalizePath(path); got != want {
			t.Errorf("NormalizePath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestNormalizePathPrefersNumericID(t *testing.T) {
	// A purely numeric segment must hit the :id template even though it
	// also matches the slug character class.
	if got := NormalizePath("/articles/2026"); got != "/articles/:id" {
		t.Errorf("NormalizePath(/articles/2026) = %q, want /articles/:id", got)
	}
}

func BenchmarkNormalizePath(b *testing.B) {
	paths := []string{
		"/articles/123",
		"/articles/123/submit",
		"/articles/budget-vote-delayed",
		"/my/articles/42",
		"/users/12/role",
		"/healthz",
		"/articles",
	}
	for i := 0; i < b.N; i++ {
		NormalizePath(paths[i%len(paths)])
	}
}
