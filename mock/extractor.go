package mock

import "github.com/fwojciec/codewiki"

var _ codewiki.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of codewiki.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*codewiki.ExtractResult, error)
}

func (e *Extractor) Extract(html, pageURL string) (*codewiki.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}
