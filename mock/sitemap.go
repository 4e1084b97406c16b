package mock

import (
	"context"

	"github.com/fwojciec/jobtailor"
)

var _ jobtailor.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of jobtailor.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *jobtailor.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *jobtailor.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
