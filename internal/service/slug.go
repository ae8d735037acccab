package service

import (
	"regexp"
	"strings"
)

// slugPattern matches runs of characters that cannot appear in a slug.
// Arabic-script letters (U+0600..U+06FF) are kept so category names like
// "مسكنات الألم" slugify to something readable instead of collapsing to
// hyphens.
var slugPattern = regexp.MustCompile(`[^a-z0-9\x{0600}-\x{06FF}]+`)

// Slugify derives a URL-safe identifier from a display name: lowercase,
// every run of disallowed characters becomes a single hyphen, leading and
// trailing hyphens are stripped. The same name always yields the same slug.
// Distinct names may collide; callers key categories by name, not slug.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
