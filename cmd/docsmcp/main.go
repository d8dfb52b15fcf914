package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsmcp"
	"github.com/fwojciec/docsmcp/docs"
	"github.com/fwojciec/docsmcp/goquery"
	"github.com/fwojciec/docsmcp/htmltomarkdown"
	docshttp "github.com/fwojciec/docsmcp/http"
	"github.com/fwojciec/docsmcp/levenshtein"
	"github.com/fwojciec/docsmcp/lru"
	"github.com/fwojciec/docsmcp/readability"
	"github.com/fwojciec/docsmcp/regex"
	docsslog "github.com/fwojciec/docsmcp/slog"
	"github.com/fwojciec/docsmcp/trafilatura"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	name    = "docsmcp"
	version = "1.0.0"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service replaces the wired documentation service. Used in tests.
	Service *docs.Service

	// Transport carries the MCP protocol for the serve command. Defaults
	// to stdio.
	Transport mcp.Transport

	fetcher docsmcp.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name(name),
		kong.Description("Serve documentation sites as MCP tools"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	// stdout carries the protocol, so logs always go to stderr.
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Transport = m.Transport
	if deps.Transport == nil {
		deps.Transport = &mcp.StdioTransport{}
	}

	deps.Service = m.Service
	if deps.Service == nil {
		svc, err := m.newService(ctx, cli, deps.Logger)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", docsmcp.ErrorMessage(err))
			return err
		}
		defer m.Close()
		deps.Service = svc
	}

	return kongCtx.Run(deps)
}

// newService wires the documentation service from the parsed flags.
func (m *Main) newService(ctx context.Context, cli *CLI, logger *slog.Logger) (*docs.Service, error) {
	if cli.Retries < 0 {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "retries must not be negative")
	}
	if cli.CacheSize < 0 {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "cache size must not be negative")
	}

	httpFetcher := docshttp.NewFetcher(docshttp.WithTimeout(cli.Timeout))
	sitemaps := docshttp.NewSitemapService(httpFetcher.Client())

	sitemapURL := cli.SitemapURL
	if sitemapURL == "" {
		discovered, err := sitemaps.DiscoverSitemapURL(ctx, cli.BaseURL)
		if err != nil {
			_ = httpFetcher.Close()
			return nil, err
		}
		sitemapURL = discovered
	}

	var fetcher docsmcp.Fetcher = docsslog.NewLoggingFetcher(httpFetcher, logger)
	if cli.CacheTTL > 0 && cli.CacheSize > 0 {
		fetcher = lru.NewCachingFetcher(fetcher, cli.CacheSize, cli.CacheTTL)
	}
	m.fetcher = fetcher

	var extractor docsmcp.Extractor
	switch cli.Extractor {
	case "trafilatura":
		extractor = trafilatura.NewExtractor(trafilatura.WithBaseURL(cli.BaseURL))
	default:
		extractor = readability.NewExtractor(readability.WithBaseURL(cli.BaseURL))
	}

	svc := &docs.Service{
		SiteName:     cli.SiteName,
		BaseURL:      cli.BaseURL,
		SitemapURL:   sitemapURL,
		CodeLanguage: cli.CodeLang,
		Sitemaps:     docsslog.NewLoggingSitemapService(sitemaps, logger),
		Fetcher:      fetcher,
		Text:         docsslog.NewLoggingTextExtractor(regex.NewTextExtractor(), logger),
		Code:         docsslog.NewLoggingCodeExtractor(regex.NewCodeExtractor(), logger),
		Titles:       goquery.NewTitleExtractor(),
		Extractor:    extractor,
		Converter:    htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(cli.BaseURL)),
		Suggester:    levenshtein.NewSuggester(),
		RetryDelays:  retryDelays(cli.Retries),
		Logger:       logger,
	}
	if cli.Rate > 0 {
		svc.RateLimiter = docs.NewDomainLimiter(cli.Rate, 1)
	}
	return svc, nil
}

// retryDelays doubles the default delay for each further retry.
func retryDelays(retries int) []time.Duration {
	base := docs.DefaultRetryDelays()[0]
	delays := make([]time.Duration, retries)
	for i := range delays {
		delays[i] = base << i
	}
	return delays
}
