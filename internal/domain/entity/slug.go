package entity

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// maxSlugLength bounds generated slugs so they stay usable in URLs.
const maxSlugLength = 80

// Slugify derives a URL slug from an article title: lowercase, ASCII
// letters and digits kept, everything else collapsed into single hyphens.
// Returns "article" for titles with no usable characters.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}
	if slug == "" {
		return "article"
	}
	return slug
}

// UniqueSlug appends a short random suffix to a slug that collided with
// an existing one. Slugs are immutable once an article is published.
func UniqueSlug(slug string) string {
	return slug + "-" + uuid.New().String()[:8]
}
