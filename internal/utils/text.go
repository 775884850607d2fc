package utils

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName canonicalizes a user-entered name so that visually identical
// spellings hash the same: full-width and half-width forms are unified (NFKC),
// case is folded, and surrounding or repeated whitespace is collapsed.
func NormalizeName(name string) string {
	n := norm.NFKC.String(name)
	// Casers keep state and must not be shared across goroutines
	n = cases.Fold().String(n)
	return strings.Join(strings.Fields(n), " ")
}

// FirstGlyph returns the first visible character of name, upper-cased,
// or the empty string when name has no visible characters.
func FirstGlyph(name string) string {
	n := norm.NFKC.String(strings.TrimSpace(name))
	for _, r := range n {
		if unicode.IsSpace(r) || unicode.IsControl(r) || unicode.Is(unicode.Mn, r) {
			continue
		}
		return cases.Upper(language.Und).String(string(r))
	}
	return ""
}

// Slugify builds a URL-safe identifier from name. Names without any ASCII
// letters or digits (e.g. Japanese) fall back to a hash-derived slug.
func Slugify(name string) string {
	n := NormalizeName(name)
	var b strings.Builder
	lastDash := false
	for _, r := range n {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			lastDash = false
		case b.Len() > 0 && !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return fmt.Sprintf("custom-%08x", StableHash(n))
	}
	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}
	return slug
}
