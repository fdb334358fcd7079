package codewiki

import "strings"

// DefaultBodyLimit is the number of body characters shown by FormatOutline.
const DefaultBodyLimit = 5000

// FormatOutline renders a documentation page as a readable outline: title,
// URL, table of contents and the first limit characters of the body.
// A limit of zero or less shows the whole body.
func FormatOutline(doc *RepoDocument, limit int) string {
	var b strings.Builder
	b.WriteString("# " + doc.Title + "\n\n")
	b.WriteString("URL: " + doc.URL + "\n\n")
	b.WriteString("## Table of Contents\n\n")
	for _, entry := range doc.TOC {
		if entry.Level == HeadingSubsection {
			b.WriteString("  ")
		}
		b.WriteString("- " + entry.Text + "\n")
	}
	b.WriteString("\n## Documentation\n\n")
	b.WriteString(truncate(doc.Body, limit))
	return b.String()
}

// truncate returns at most limit characters of s.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
