package http

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/jobtailor"
	"golang.org/x/time/rate"
)

var _ jobtailor.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter throttles requests per domain using token buckets. Each
// domain gets its own limiter, so a batch run across multiple job boards
// proceeds concurrently while staying polite to each board.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified
// requests-per-second limit. Each domain gets a burst of 1, so requests
// to the same board are strictly spaced.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the URL's domain.
// URLs that fail to parse share a single fallback bucket.
func (d *DomainLimiter) Wait(ctx context.Context, rawURL string) error {
	domain := ""
	if u, err := url.Parse(rawURL); err == nil {
		domain = u.Hostname()
	}

	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
