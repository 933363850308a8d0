package auth

import "strings"

// PublicEndpoints bypass token checks: orchestration probes, the
// Prometheus scrape target, and the swagger UI. Everything else on the
// portal goes through Require.
var PublicEndpoints = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/swagger/",
}

// IsPublicEndpoint reports whether path may be served unauthenticated.
// Entries with a trailing slash match as prefixes (/swagger/index.html);
// the rest match exactly, optionally with a trailing slash or query
// string, so /healthz passes but /healthz/detail and /healthzcheck do
// not.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}
		if path == endpoint || path == endpoint+"/" || strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}
