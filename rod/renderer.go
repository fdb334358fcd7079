package rod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/codewiki"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultUserAgent is sent with every page request.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"

// DefaultIdleWindow is how long the network must stay quiet before a page
// counts as loaded.
const DefaultIdleWindow = 500 * time.Millisecond

// Ensure Renderer implements codewiki.Renderer at compile time.
var _ codewiki.Renderer = (*Renderer)(nil)

// Renderer opens one tab per call on a shared Session.
type Renderer struct {
	session    *Session
	userAgent  string
	idleWindow time.Duration
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithUserAgent overrides the user agent sent by rendered pages.
func WithUserAgent(ua string) RendererOption {
	return func(r *Renderer) {
		r.userAgent = ua
	}
}

// WithIdleWindow sets the quiet period used to detect network idle.
func WithIdleWindow(d time.Duration) RendererOption {
	return func(r *Renderer) {
		r.idleWindow = d
	}
}

// NewRenderer returns a Renderer that opens pages on session.
func NewRenderer(session *Session, opts ...RendererOption) *Renderer {
	r := &Renderer{
		session:    session,
		userAgent:  DefaultUserAgent,
		idleWindow: DefaultIdleWindow,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render navigates a new tab to url, waits for the load event and network
// idle, sleeps opts.Settle and then calls fn with the live document.
// The tab is closed on every return path.
func (r *Renderer) Render(ctx context.Context, url string, opts codewiki.RenderOptions, fn func(codewiki.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	browser := r.session.Browser()
	if browser == nil {
		return codewiki.Errorf(codewiki.EINVALID, "browser session is closed")
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	// Bind all subsequent operations to the deadline
	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: r.userAgent}); err != nil {
		return renderError(ctx, url, opts, err)
	}

	waitIdle := page.WaitRequestIdle(r.idleWindow, nil, nil, nil)
	if err := page.Navigate(url); err != nil {
		return renderError(ctx, url, opts, err)
	}
	if err := page.WaitLoad(); err != nil {
		return renderError(ctx, url, opts, err)
	}
	waitIdle()

	if err := sleep(ctx, opts.Settle); err != nil {
		return renderError(ctx, url, opts, err)
	}

	if err := fn(&Document{page: page}); err != nil {
		return renderError(ctx, url, opts, err)
	}
	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// renderError reports a missed deadline as ETIMEOUT and wraps anything else.
func renderError(ctx context.Context, url string, opts codewiki.RenderOptions, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return codewiki.Errorf(codewiki.ETIMEOUT, "page %s did not settle within %s", url, opts.Timeout)
	}
	if codewiki.ErrorCode(err) != codewiki.EINTERNAL {
		return err
	}
	return fmt.Errorf("rendering %s: %w", url, err)
}
