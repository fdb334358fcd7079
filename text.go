package codewiki

import (
	"regexp"
	"strings"
)

// starRe matches a star-count fragment such as "star 4.2k" or "Star12K".
// The count is captured without the "star" word.
var starRe = regexp.MustCompile(`(?i)star\s*([\d.]+k?)`)

// fullNameRe captures the first two path segments after "github.com/".
var fullNameRe = regexp.MustCompile(`github\.com/([^/?#]+)/([^/?#]+)`)

// SplitLines splits text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// StarCount returns the first star count found in text (e.g., "12k"),
// or nil if the text has no star fragment.
func StarCount(text string) *string {
	m := starRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	stars := m[1]
	return &stars
}

// StripStars removes every star-count fragment from text and trims the result.
func StripStars(text string) string {
	return strings.TrimSpace(starRe.ReplaceAllString(text, ""))
}

// FullNameFromHref derives "owner/repo" from a link containing a
// github.com path. Returns false if the href has no such path.
func FullNameFromHref(href string) (string, bool) {
	m := fullNameRe.FindStringSubmatch(href)
	if m == nil {
		return "", false
	}
	return m[1] + "/" + m[2], true
}

// isCodePath reports whether href points at a file or directory view.
func isCodePath(href string) bool {
	return strings.Contains(href, "/blob/") || strings.Contains(href, "/tree/")
}
