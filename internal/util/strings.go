// Package util provides shared utility functions used across the application.
package util

import (
	"strings"
	"unicode"
)

// CamelToken converts a display name into a camelCase identifier by
// stripping whitespace and hyphens and lowercasing only the first
// character. Internal capitalisation is preserved, so "Bright Azure"
// becomes "brightAzure".
func CamelToken(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}

	s := b.String()
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// StripHash removes the # prefix from a hex colour string.
// This is useful for output that doesn't expect the hash prefix.
func StripHash(hex string) string {
	return strings.TrimPrefix(hex, "#")
}
