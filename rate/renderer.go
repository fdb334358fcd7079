// Package rate limits how often pages are rendered per host.
package rate

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/fwojciec/codewiki"
	"golang.org/x/time/rate"
)

// Ensure Renderer implements codewiki.Renderer at compile time.
var _ codewiki.Renderer = (*Renderer)(nil)

// Renderer delays renders so that each host sees at most rps page loads per
// second. Every host gets its own token bucket with a burst of 1.
type Renderer struct {
	next codewiki.Renderer
	rps  float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRenderer wraps next with a per-host rate limit. A non-positive rps
// disables limiting.
func NewRenderer(next codewiki.Renderer, rps float64) *Renderer {
	return &Renderer{
		next:     next,
		rps:      rps,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Render waits for the host's limiter and delegates to the wrapped renderer.
func (r *Renderer) Render(ctx context.Context, pageURL string, opts codewiki.RenderOptions, fn func(codewiki.Document) error) error {
	if err := r.wait(ctx, host(pageURL)); err != nil {
		return err
	}
	return r.next.Render(ctx, pageURL, opts, fn)
}

func (r *Renderer) wait(ctx context.Context, host string) error {
	r.mu.Lock()
	limiter, ok := r.limiters[host]
	if !ok {
		limit := rate.Inf
		if r.rps > 0 {
			limit = rate.Limit(r.rps)
		}
		limiter = rate.NewLimiter(limit, 1)
		r.limiters[host] = limiter
	}
	r.mu.Unlock()

	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting to render %s: %w", host, err)
	}
	return nil
}

// host returns the host of rawURL, or rawURL itself when it has none.
func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
