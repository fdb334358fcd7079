// Package readability extracts the main content of rendered documentation
// pages with go-readability. It serves as an alternative to trafilatura for
// pages where the latter drops too much.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/codewiki"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements codewiki.Extractor at compile time.
var _ codewiki.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes rendered HTML and returns the main content.
func (e *Extractor) Extract(rawHTML, pageURL string) (*codewiki.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, codewiki.Errorf(codewiki.EINVALID, "empty HTML input")
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, codewiki.Errorf(codewiki.EINVALID, "invalid page URL: %v", err)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, codewiki.Errorf(codewiki.EINVALID, "no main content found at %s", pageURL)
	}

	return &codewiki.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
