package routing

import (
	"strings"

	slug "github.com/goliatone/go-slug"
)

// reservedTopFiles are path segments that must never be treated as a county
// slug, even though some of them satisfy the slug grammar.
var reservedTopFiles = map[string]struct{}{
	"favicon.ico":       {},
	"robots.txt":        {},
	"sitemap.xml":       {},
	"sitemap-index.xml": {},
	"manifest.json":     {},
}

// reservedTopPrefixes are top-level segments owned by the host framework or
// the admin surface.
var reservedTopPrefixes = map[string]struct{}{
	"api":   {},
	"admin": {},
	"_next": {},
}

// IsValidSlug reports whether s matches ^[a-z0-9-]+$. Public URL segments are
// case-sensitive lowercase ASCII; anything else is rejected rather than
// normalized so stored data and inbound paths stay bit-exact.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			continue
		}
		if c >= '0' && c <= '9' {
			continue
		}
		if c == '-' {
			continue
		}
		return false
	}
	return true
}

// IsValidZip reports whether s is exactly five ASCII digits.
func IsValidZip(s string) bool {
	if len(s) != 5 {
		return false
	}
	for i := 0; i < 5; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsReservedTopSegment reports whether the first path segment is claimed by a
// well-known file or a framework prefix and therefore can never be a county.
func IsReservedTopSegment(s string) bool {
	if s == "" {
		return false
	}
	if _, ok := reservedTopFiles[s]; ok {
		return true
	}
	_, ok := reservedTopPrefixes[s]
	return ok
}

// NormalizeSlug converts a display name ("Winnetka", "Roof Repair") into a
// URL slug using the shared go-slug rules. Inbound path segments are never
// normalized; this is for admin and catalog input only.
func NormalizeSlug(value string) (string, error) {
	normalized, err := slug.Normalize(strings.TrimSpace(value))
	if err != nil {
		return "", err
	}
	return normalized, nil
}
