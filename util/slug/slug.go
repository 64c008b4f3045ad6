package slug

import (
	"regexp"
	"strings"
)

var (
	separatorReplacer = strings.NewReplacer(
		"_", "-",
		" ", "-",
		".", "-",
	)

	// nonSlugRegex matches characters not allowed in a slug
	nonSlugRegex = regexp.MustCompile(`[^a-z0-9-]+`)

	// multiDashRegex matches multiple consecutive dashes
	multiDashRegex = regexp.MustCompile(`-+`)
)

// Normalize sanitizes a string into a URL-safe slug: lowercase letters,
// numbers, and single hyphens.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(s)
	s = separatorReplacer.Replace(s)
	s = nonSlugRegex.ReplaceAllString(s, "-")
	s = multiDashRegex.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > 80 {
		s = strings.Trim(s[:80], "-")
	}
	return s
}

// FromFilename derives a slug from a markdown filename. The extension
// is stripped before normalizing.
func FromFilename(name string) string {
	name = strings.TrimSuffix(name, ".md")
	name = strings.TrimSuffix(name, ".markdown")
	return Normalize(name)
}
