// Package lru caches fetched pages in a bounded, expiring LRU.
package lru

import (
	"context"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsmcp"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Default cache bounds.
const (
	DefaultSize = 256
	DefaultTTL  = 5 * time.Minute
)

// Ensure CachingFetcher implements docsmcp.Fetcher at compile time.
var _ docsmcp.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher serves repeated page fetches from memory. Only successful
// fetches are cached. Concurrent fetches of one URL share a single request.
//
// Sitemaps must not go through this fetcher: they are read fresh for every
// request.
type CachingFetcher struct {
	next  docsmcp.Fetcher
	cache *expirable.LRU[uint64, string]
	group singleflight.Group
}

// NewCachingFetcher wraps next with a cache of at most size pages, each
// kept for ttl.
func NewCachingFetcher(next docsmcp.Fetcher, size int, ttl time.Duration) *CachingFetcher {
	if size <= 0 {
		size = DefaultSize
	}
	return &CachingFetcher{
		next:  next,
		cache: expirable.NewLRU[uint64, string](size, nil, ttl),
	}
}

// Fetch returns the cached body for url or fetches it from the wrapped
// fetcher. The shared fetch is detached from any single caller's
// cancellation; a cancelled caller returns ctx.Err() while the others
// still receive the result.
func (f *CachingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	key := xxhash.Sum64String(url)
	if html, ok := f.cache.Get(key); ok {
		return html, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := f.group.DoChan(url, func() (any, error) {
		html, err := f.next.Fetch(shared, url)
		if err != nil {
			return "", err
		}
		f.cache.Add(key, html)
		return html, nil
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Len reports how many pages are cached.
func (f *CachingFetcher) Len() int {
	return f.cache.Len()
}

// Purge drops every cached page.
func (f *CachingFetcher) Purge() {
	f.cache.Purge()
}

// Close purges the cache and closes the wrapped fetcher.
func (f *CachingFetcher) Close() error {
	f.cache.Purge()
	return f.next.Close()
}
