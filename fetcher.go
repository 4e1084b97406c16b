package jobtailor

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// job boards.
type Fetcher interface {
	// Fetch retrieves the page at the URL and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter throttles requests per domain so batch commands don't
// hammer a single job board.
type DomainLimiter interface {
	// Wait blocks until a request to the URL's domain is allowed.
	Wait(ctx context.Context, url string) error
}
