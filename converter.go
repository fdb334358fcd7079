package codewiki

import "context"

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor); relative
	// links are made absolute against pageURL.
	Convert(html, pageURL string) (string, error)
}

// ExportWriter writes exported documentation to storage.
type ExportWriter interface {
	WriteExport(ctx context.Context, export *Export) error
}
