// internal/utils/slug.go
package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphens      = regexp.MustCompile(`-+`)
	slugPattern      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	objectIDPattern  = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

// GenerateSlug normalizes a display name into a URL-safe identifier.
// Non-ASCII letters are dropped, not transliterated. An empty result means
// the name has no usable characters and must be rejected by the caller.
func GenerateSlug(name string) string {
	slug := strings.TrimSpace(strings.ToLower(name))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugHyphens.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// IsValidSlug reports whether s is already in canonical slug form.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// LooksLikeObjectID reports whether s has the shape of a raw storage key.
func LooksLikeObjectID(s string) bool {
	return objectIDPattern.MatchString(s)
}
