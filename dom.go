package codewiki

import (
	"context"
	"time"
)

// Element is a snapshot of one element matched in a rendered document.
type Element struct {
	// Tag is the lowercase tag name (e.g., "a", "h2").
	Tag string

	// Text is the element's full text content, including line breaks.
	Text string

	// ID is the element's id attribute, or empty.
	ID string

	// Href is the absolute link target for anchors, or empty.
	Href string
}

// Document is a queryable model of a rendered page.
// Implementations may be backed by a live browser tab or by static HTML.
type Document interface {
	// Query returns the elements matching a CSS selector in document order.
	Query(selector string) ([]*Element, error)

	// VisibleText returns the rendered visible text of the page body.
	VisibleText() (string, error)

	// HTML returns the serialized markup of the rendered page.
	HTML() (string, error)
}

// RenderOptions controls how long a page may take to reach a settled state.
type RenderOptions struct {
	// Timeout bounds navigation, settling and the document callback.
	Timeout time.Duration

	// Settle is a fixed delay after the network goes idle, to let
	// client-side rendering finish.
	Settle time.Duration
}

// Renderer loads pages in a browser session.
type Renderer interface {
	// Render opens a page for url, waits until it has settled and calls fn
	// with the rendered document. The page is closed before Render returns,
	// on every path. Returns ETIMEOUT if the page does not settle in time.
	Render(ctx context.Context, url string, opts RenderOptions, fn func(Document) error) error
}
