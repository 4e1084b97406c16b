package mock

import (
	"context"

	"github.com/fwojciec/jobtailor"
)

var _ jobtailor.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of jobtailor.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ jobtailor.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of jobtailor.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, url string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, url string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, url)
}
