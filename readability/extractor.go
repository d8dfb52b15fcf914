// Package readability renders the main content of a page with
// github.com/go-shiori/go-readability for the markdown output format.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/docsmcp"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docsmcp.Extractor at compile time.
var _ docsmcp.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithBaseURL resolves relative links in the extracted content against
// baseURL. Invalid URLs are ignored.
func WithBaseURL(baseURL string) Option {
	return func(e *Extractor) {
		if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
			e.pageURL = u
		}
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the readable article in rawHTML. A page without an
// identifiable article returns ENOTFOUND so callers can fall back to
// plain text.
func (e *Extractor) Extract(rawHTML string) (*docsmcp.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, docsmcp.Errorf(docsmcp.EINTERNAL, "readability: %v", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, docsmcp.Errorf(docsmcp.ENOTFOUND, "no article content found")
	}

	return &docsmcp.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
