// Package http provides a codewiki.Renderer that fetches server-rendered
// HTML without running JavaScript.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fwojciec/codewiki"
	"github.com/fwojciec/codewiki/goquery"
)

// Ensure Renderer implements codewiki.Renderer at compile time.
var _ codewiki.Renderer = (*Renderer)(nil)

// Renderer retrieves HTML over plain HTTP and exposes it as a static
// document. Unlike rod.Renderer it does not execute JavaScript, so it only
// suits pages that are rendered on the server. The settle delay is ignored.
type Renderer struct {
	client    *http.Client
	userAgent string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClient sets the HTTP client used for requests.
func WithClient(c *http.Client) Option {
	return func(r *Renderer) {
		r.client = c
	}
}

// WithUserAgent sets the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(r *Renderer) {
		r.userAgent = ua
	}
}

// NewRenderer creates a new HTTP-based Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render fetches url within opts.Timeout and calls fn with the parsed page.
func (r *Renderer) Render(ctx context.Context, url string, opts codewiki.RenderOptions, fn func(codewiki.Document) error) error {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	html, err := r.fetch(ctx, url)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return codewiki.Errorf(codewiki.ETIMEOUT, "page %s did not load within %s", url, opts.Timeout)
		}
		return err
	}

	doc, err := goquery.NewDocument(html, url)
	if err != nil {
		return err
	}
	return fn(doc)
}

func (r *Renderer) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", codewiki.Errorf(codewiki.EINVALID, "invalid URL %q: %v", url, err)
	}
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
