package mock

import (
	"context"

	"github.com/fwojciec/codewiki"
)

// Compile-time interface verification.
var (
	_ codewiki.Renderer = (*Renderer)(nil)
	_ codewiki.Document = (*Document)(nil)
)

// Renderer is a mock implementation of codewiki.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string, opts codewiki.RenderOptions, fn func(codewiki.Document) error) error
}

func (r *Renderer) Render(ctx context.Context, url string, opts codewiki.RenderOptions, fn func(codewiki.Document) error) error {
	return r.RenderFn(ctx, url, opts, fn)
}

// Document is a mock implementation of codewiki.Document.
type Document struct {
	QueryFn       func(selector string) ([]*codewiki.Element, error)
	VisibleTextFn func() (string, error)
	HTMLFn        func() (string, error)
}

func (d *Document) Query(selector string) ([]*codewiki.Element, error) {
	return d.QueryFn(selector)
}

func (d *Document) VisibleText() (string, error) {
	return d.VisibleTextFn()
}

func (d *Document) HTML() (string, error) {
	return d.HTMLFn()
}
