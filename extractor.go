package codewiki

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes the rendered HTML of the page at pageURL and
	// returns the main content. Relative links resolve against pageURL.
	Extract(html, pageURL string) (*ExtractResult, error)
}
