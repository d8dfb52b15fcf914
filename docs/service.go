// Package docs answers documentation tool calls. It resolves queries
// against a freshly fetched sitemap, fetches pages with retries and rate
// limiting, and extracts text and code from them.
package docs

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/docsmcp"
	"golang.org/x/sync/errgroup"
)

// Output limits.
const (
	DefaultSiteName      = "FastAPI"
	DefaultBaseURL       = "https://fastapi.tiangolo.com"
	MaxRelatedPages      = 4
	MaxPracticePages     = 3
	MaxMorePracticePages = 5
	PracticeLength       = 4000
	SummaryLength        = 300
	MaxSuggestions       = 3
)

// Format selects how page content is rendered.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a user supplied format. An empty string selects
// FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	}
	return "", docsmcp.Errorf(docsmcp.EINVALID, "unknown format %q: use %q or %q", s, FormatText, FormatMarkdown)
}

// Service implements the documentation tools.
//
// Sitemaps, Fetcher, Text, and Code are required. Titles, Extractor,
// Converter, Suggester, and RateLimiter are optional.
type Service struct {
	SiteName   string
	BaseURL    string
	SitemapURL string
	// CodeLanguage labels code fences in formatted output. Empty leaves
	// fences unlabeled.
	CodeLanguage string
	Sitemaps     docsmcp.SitemapService
	Fetcher      docsmcp.Fetcher
	Text         docsmcp.TextExtractor
	Code         docsmcp.CodeExtractor
	Titles       docsmcp.TitleExtractor
	Extractor    docsmcp.Extractor
	Converter    docsmcp.Converter
	Suggester    docsmcp.Suggester
	RateLimiter  docsmcp.DomainLimiter
	RetryDelays  []time.Duration
	Logger       *slog.Logger
}

// Page is a fetched and extracted documentation page.
type Page struct {
	Path      string
	URL       string
	Title     string
	Format    Format
	Content   docsmcp.Content
	Available bool
}

// SearchResult is the outcome of Search.
type SearchResult struct {
	Query              string
	Page               *Page
	Related            []string
	Suggestions        []string
	SitemapUnavailable bool
}

// PageList is the outcome of ListPages.
type PageList struct {
	Index     docsmcp.SitemapIndex
	Total     int
	Available bool
}

// ExampleResult is the outcome of Example.
type ExampleResult struct {
	Topic       string
	Path        string
	URL         string
	FromTable   bool
	Snippets    docsmcp.CodeSnippets
	Available   bool
	Suggestions []string
}

// ComparisonPage is one side of a comparison.
type ComparisonPage struct {
	Path      string
	URL       string
	Title     string
	Code      string
	Summary   string
	Available bool
}

// ComparisonResult is the outcome of Compare.
type ComparisonResult struct {
	Topic       string
	Comparison  docsmcp.Comparison
	Found       bool
	Pages       []ComparisonPage
	Suggestions []string
}

// PracticesResult is the outcome of BestPractices.
type PracticesResult struct {
	Topic              string
	Matches            []docsmcp.SitemapEntry
	Pages              []Page
	Suggestions        []string
	SitemapUnavailable bool
}

// GetPage fetches the page at path, trying "<base>/<path>/" and then
// "<base>/<path>". A fetch failure is not an error: the returned page
// reports Available false.
func (s *Service) GetPage(ctx context.Context, path string, format Format) (*Page, error) {
	path = docsmcp.NormalizePath(path)
	if path == "" {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "path required")
	}
	if format == "" {
		format = FormatText
	}

	html, pageURL, err := s.fetchPage(ctx, path)
	if err != nil {
		return &Page{Path: path, URL: pageURL, Format: format}, ctxErr(ctx)
	}

	page := s.newPage(path, pageURL, html, format, docsmcp.MaxContentLength)
	return &page, nil
}

// Search resolves query against the sitemap and fetches the best match.
// Up to MaxRelatedPages further matches are listed as related pages.
func (s *Service) Search(ctx context.Context, query string) (*SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "query required")
	}

	idx, _, ok := s.loadIndex(ctx)
	result := &SearchResult{Query: query, SitemapUnavailable: !ok}

	hits := docsmcp.ResolveQuery(query, idx)
	if len(hits) == 0 {
		result.Suggestions = s.suggest(query, idx)
		return result, ctxErr(ctx)
	}

	best := hits[0].Path
	for _, h := range hits[1:min(len(hits), MaxRelatedPages+1)] {
		result.Related = append(result.Related, h.Path)
	}

	page, err := s.GetPage(ctx, best, FormatText)
	if err != nil {
		return nil, err
	}
	result.Page = page
	return result, nil
}

// ListPages returns the categorized sitemap.
func (s *Service) ListPages(ctx context.Context) (*PageList, error) {
	idx, total, ok := s.loadIndex(ctx)
	return &PageList{Index: idx, Total: total, Available: ok}, ctxErr(ctx)
}

// Example returns the code blocks of the page that best covers topic.
// Known topics resolve from a fixed table without reading the sitemap.
func (s *Service) Example(ctx context.Context, topic string) (*ExampleResult, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "topic required")
	}

	result := &ExampleResult{Topic: topic}

	var idx docsmcp.SitemapIndex
	load := func() docsmcp.SitemapIndex {
		idx, _, _ = s.loadIndex(ctx)
		return idx
	}

	_, result.FromTable = docsmcp.LookupExample(topic)
	hits := docsmcp.ResolveExample(topic, load)
	if len(hits) == 0 {
		result.Suggestions = s.suggest(topic, idx)
		return result, ctxErr(ctx)
	}

	result.Path = hits[0].Path
	html, pageURL, err := s.fetchPage(ctx, result.Path)
	result.URL = pageURL
	if err != nil {
		return result, ctxErr(ctx)
	}

	result.Available = true
	result.Snippets = s.Code.ExtractCode(html)
	return result, nil
}

// Compare fetches the pages of a comparison in parallel. Topics missing
// from the comparison table fall back to the best scanned pages.
func (s *Service) Compare(ctx context.Context, topic string) (*ComparisonResult, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "topic required")
	}

	result := &ComparisonResult{Topic: topic}

	var idx docsmcp.SitemapIndex
	load := func() docsmcp.SitemapIndex {
		idx, _, _ = s.loadIndex(ctx)
		return idx
	}

	c, ok := docsmcp.ResolveComparison(topic, load)
	if !ok {
		result.Suggestions = s.suggest(topic, idx)
		return result, ctxErr(ctx)
	}
	result.Comparison = c
	result.Found = true

	result.Pages = make([]ComparisonPage, len(c.Pages))
	s.fetchAll(ctx, c.Pages, func(i int, path, pageURL, html string) {
		p := ComparisonPage{Path: path, URL: pageURL, Title: s.title(html, path), Available: true}
		if snippets := s.Code.ExtractCode(html); len(snippets.Blocks) > 0 {
			p.Code = snippets.Blocks[0]
		}
		p.Summary = Summarize(s.Text.ExtractText(html).Text, SummaryLength)
		result.Pages[i] = p
	}, func(i int, path, pageURL string) {
		result.Pages[i] = ComparisonPage{Path: path, URL: pageURL}
	})

	return result, ctxErr(ctx)
}

// BestPractices collects the pages whose path mentions topic, in category
// priority order, and fetches the first MaxPracticePages of them in
// parallel.
func (s *Service) BestPractices(ctx context.Context, topic string) (*PracticesResult, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "topic required")
	}

	idx, _, ok := s.loadIndex(ctx)
	result := &PracticesResult{Topic: topic, SitemapUnavailable: !ok}

	result.Matches = docsmcp.ResolvePractices(topic, idx)
	if len(result.Matches) == 0 {
		result.Suggestions = s.suggest(topic, idx)
		return result, ctxErr(ctx)
	}

	selected := result.Matches[:min(len(result.Matches), MaxPracticePages)]
	paths := make([]string, len(selected))
	for i, e := range selected {
		paths[i] = e.Path
	}

	result.Pages = make([]Page, len(paths))
	s.fetchAll(ctx, paths, func(i int, path, pageURL, html string) {
		result.Pages[i] = s.newPage(path, pageURL, html, FormatText, PracticeLength)
	}, func(i int, path, pageURL string) {
		result.Pages[i] = Page{Path: path, URL: pageURL, Format: FormatText}
	})

	return result, ctxErr(ctx)
}

// fetchAll fetches paths concurrently. A page that cannot be fetched is
// reported to failed and never cancels the others.
func (s *Service) fetchAll(ctx context.Context, paths []string, done func(i int, path, pageURL, html string), failed func(i int, path, pageURL string)) {
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			html, pageURL, err := s.fetchPage(ctx, path)
			if err != nil {
				failed(i, path, pageURL)
				return nil
			}
			done(i, path, pageURL, html)
			return nil
		})
	}
	_ = g.Wait()
}

// newPage extracts a page in the requested format and truncates it to
// maxLen runes. Markdown rendering falls back to plain text on failure.
func (s *Service) newPage(path, pageURL, html string, format Format, maxLen int) Page {
	var content docsmcp.Content
	rendered := false
	if format == FormatMarkdown {
		content, rendered = s.markdown(html)
	}
	if !rendered {
		format = FormatText
		content = s.Text.ExtractText(html)
	}

	content.Text, content.Truncated = docsmcp.Truncate(content.Text, maxLen)

	return Page{
		Path:      path,
		URL:       pageURL,
		Title:     s.title(html, path),
		Format:    format,
		Content:   content,
		Available: true,
	}
}

func (s *Service) markdown(html string) (docsmcp.Content, bool) {
	if s.Extractor == nil || s.Converter == nil {
		return docsmcp.Content{}, false
	}
	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		s.logger().Debug("markdown extraction failed", "err", err)
		return docsmcp.Content{}, false
	}
	md, err := s.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		s.logger().Debug("markdown conversion failed", "err", err)
		return docsmcp.Content{}, false
	}
	return docsmcp.Content{Text: md}, true
}

func (s *Service) title(html, path string) string {
	if s.Titles != nil {
		if t := s.Titles.ExtractTitle(html); t != "" {
			return t
		}
	}
	return path
}

// fetchPage tries the canonical trailing slash URL first. The returned
// URL is the one that succeeded, or the last one tried.
func (s *Service) fetchPage(ctx context.Context, path string) (html, pageURL string, err error) {
	base := strings.TrimRight(s.baseURL(), "/")
	for _, u := range []string{base + "/" + path + "/", base + "/" + path} {
		pageURL = u
		html, err = s.fetch(ctx, u)
		if err == nil {
			return html, pageURL, nil
		}
		if ctx.Err() != nil {
			break
		}
	}
	return "", pageURL, err
}

func (s *Service) fetch(ctx context.Context, rawURL string) (string, error) {
	fetch := s.Fetcher.Fetch
	if s.RateLimiter != nil {
		fetch = func(ctx context.Context, rawURL string) (string, error) {
			if err := s.RateLimiter.Wait(ctx, host(rawURL)); err != nil {
				return "", err
			}
			return s.Fetcher.Fetch(ctx, rawURL)
		}
	}

	logger := s.logger()
	return FetchWithRetryDelays(ctx, rawURL, fetch, func(format string, args ...any) {
		logger.Debug("fetch retry", "detail", strings.TrimSpace(fmt.Sprintf(format, args...)))
	}, s.RetryDelays)
}

// loadIndex fetches and categorizes the sitemap for a single request. A
// failure yields an empty index and ok false.
func (s *Service) loadIndex(ctx context.Context) (idx docsmcp.SitemapIndex, total int, ok bool) {
	urls, err := s.Sitemaps.FetchSitemap(ctx, s.sitemapURL())
	if err != nil {
		s.logger().Warn("sitemap unavailable", "url", s.sitemapURL(), "err", err)
		return nil, 0, false
	}
	return docsmcp.LoadCategorizedSitemap(urls), len(urls), true
}

func (s *Service) suggest(query string, idx docsmcp.SitemapIndex) []string {
	if s.Suggester == nil {
		return nil
	}
	candidates := docsmcp.KnownTerms()
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		seen[c] = true
	}
	for _, e := range idx {
		last := e.Path[strings.LastIndex(e.Path, "/")+1:]
		if !seen[last] {
			seen[last] = true
			candidates = append(candidates, last)
		}
	}
	return s.Suggester.Suggest(strings.ToLower(strings.TrimSpace(query)), candidates, MaxSuggestions)
}

func (s *Service) baseURL() string {
	if s.BaseURL == "" {
		return DefaultBaseURL
	}
	return s.BaseURL
}

func (s *Service) sitemapURL() string {
	if s.SitemapURL == "" {
		return strings.TrimRight(s.baseURL(), "/") + "/sitemap.xml"
	}
	return s.SitemapURL
}

func (s *Service) siteName() string {
	if s.SiteName == "" {
		return DefaultSiteName
	}
	return s.SiteName
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}

// ctxErr surfaces cancellation, the only failure a tool call reports as
// an error once its input is valid.
func ctxErr(ctx context.Context) error {
	return ctx.Err()
}
