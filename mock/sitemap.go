package mock

import (
	"context"

	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of docsmcp.SitemapService.
type SitemapService struct {
	FetchSitemapFn func(ctx context.Context, sitemapURL string) ([]string, error)
}

func (s *SitemapService) FetchSitemap(ctx context.Context, sitemapURL string) ([]string, error) {
	return s.FetchSitemapFn(ctx, sitemapURL)
}
