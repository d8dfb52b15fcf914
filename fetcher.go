package docsmcp

import "context"

// Fetcher retrieves page bodies from the documentation site.
type Fetcher interface {
	// Fetch returns the body at url. Transport failures, timeouts and
	// non-200 responses return an error with code EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// Suggester proposes known terms close to a query that matched nothing.
type Suggester interface {
	// Suggest returns up to n candidates ordered by closeness to query.
	Suggest(query string, candidates []string, n int) []string
}
