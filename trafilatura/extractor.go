// Package trafilatura renders the main content of a page with
// github.com/markusmobius/go-trafilatura for the markdown output format.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/docsmcp"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docsmcp.Extractor at compile time.
var _ docsmcp.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithBaseURL sets the URL metadata and links are resolved against.
// Invalid URLs are ignored.
func WithBaseURL(baseURL string) Option {
	return func(e *Extractor) {
		if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
			e.opts.OriginalURL = u
		}
	}
}

// NewExtractor creates a new Extractor. Fallback extractors are enabled
// and comment sections are dropped.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the main content of rawHTML rendered back to HTML. A
// page without main content returns ENOTFOUND.
func (e *Extractor) Extract(rawHTML string) (*docsmcp.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, docsmcp.Errorf(docsmcp.ENOTFOUND, "trafilatura: %v", err)
	}
	if result.ContentNode == nil {
		return nil, docsmcp.Errorf(docsmcp.ENOTFOUND, "no main content found")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, docsmcp.Errorf(docsmcp.EINTERNAL, "rendering content: %v", err)
	}

	return &docsmcp.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
