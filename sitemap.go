package docsmcp

import (
	"context"
	"net/url"
	"strings"
)

// SitemapService retrieves the page locations listed in a sitemap.
type SitemapService interface {
	// FetchSitemap returns every <loc> URL from the sitemap at sitemapURL.
	// Sitemap indexes are resolved recursively.
	FetchSitemap(ctx context.Context, sitemapURL string) ([]string, error)
}

// SitemapEntry is a documentation path and the category derived from it.
type SitemapEntry struct {
	Path     string   `json:"path"`
	Category Category `json:"category"`
}

// SitemapIndex is the ordered, categorized view of a sitemap. It is built
// for a single request and discarded afterwards.
type SitemapIndex []SitemapEntry

// ByCategory returns the entries of a single category in index order.
func (idx SitemapIndex) ByCategory(c Category) []SitemapEntry {
	var out []SitemapEntry
	for _, e := range idx {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Paths returns the path of every entry in index order.
func (idx SitemapIndex) Paths() []string {
	out := make([]string, len(idx))
	for i, e := range idx {
		out[i] = e.Path
	}
	return out
}

// NormalizePath reduces a sitemap location or user supplied path to the
// form used throughout the index: no scheme, no host, no surrounding
// slashes. "https://example.com/tutorial/cors/" becomes "tutorial/cors".
func NormalizePath(raw string) string {
	raw = strings.TrimSpace(raw)
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		raw = u.Path
	}
	return strings.Trim(raw, "/")
}

// LoadCategorizedSitemap builds a SitemapIndex from raw sitemap locations,
// preserving their order. The site root is skipped.
func LoadCategorizedSitemap(rawURLs []string) SitemapIndex {
	idx := make(SitemapIndex, 0, len(rawURLs))
	for _, raw := range rawURLs {
		path := NormalizePath(raw)
		if path == "" {
			continue
		}
		idx = append(idx, SitemapEntry{Path: path, Category: Categorize(path)})
	}
	return idx
}
