// Package trafilatura extracts the main content of rendered documentation
// pages with go-trafilatura.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/codewiki"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements codewiki.Extractor at compile time.
var _ codewiki.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura. Links are kept in the extracted content
// so source code references survive the export.
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

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeLinks:   true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(contentHTML) == "" {
		return nil, codewiki.Errorf(codewiki.EINVALID, "no main content found at %s", pageURL)
	}

	return &codewiki.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
