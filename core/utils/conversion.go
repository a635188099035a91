package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	normPunct    = strings.NewReplacer("'", " ", `"`, " ", "_", " ", ".", " ", "-", " ")
	normCollapse = regexp.MustCompile(`\s+`)
)

// ParseNumber converts a numeric string to a float64.
// Empty or non-numeric input yields 0, never an error.
func ParseNumber(value string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return n
}

// ParseBool interprets boolean-like spreadsheet values.
// Only a trimmed, case-insensitive "TRUE" is true; everything else
// (including empty input) is false.
func ParseBool(value string) bool {
	return strings.ToUpper(strings.TrimSpace(value)) == "TRUE"
}

// Slugify derives a URL-safe identifier from a display name:
// lowercased, punctuation stripped, whitespace runs turned into hyphens.
// Slugify is idempotent.
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = slugStrip.ReplaceAllString(s, "")
	return slugSpaces.ReplaceAllString(s, "-")
}

// NormalizeName prepares a file or object name for loose comparison:
// lowercased, with quotes, underscores, dots and hyphens turned into
// spaces and whitespace runs collapsed. NormalizeName is idempotent.
func NormalizeName(name string) string {
	s := normPunct.Replace(strings.ToLower(name))
	return strings.TrimSpace(normCollapse.ReplaceAllString(s, " "))
}
