package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docsmcp/docs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Service   *docs.Service
	Transport mcp.Transport
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL    string        `name:"base-url" env:"DOCSMCP_BASE_URL" default:"https://fastapi.tiangolo.com" help:"Documentation site root"`
	SitemapURL string        `name:"sitemap-url" env:"DOCSMCP_SITEMAP_URL" help:"Sitemap URL (default: from robots.txt, then <base-url>/sitemap.xml)"`
	SiteName   string        `name:"site-name" env:"DOCSMCP_SITE_NAME" default:"FastAPI" help:"Site name used in output headings"`
	Timeout    time.Duration `env:"DOCSMCP_TIMEOUT" default:"30s" help:"Fetch timeout per request"`
	CacheTTL   time.Duration `name:"cache-ttl" env:"DOCSMCP_CACHE_TTL" default:"5m" help:"Page cache TTL (0 disables the cache)"`
	CacheSize  int           `name:"cache-size" env:"DOCSMCP_CACHE_SIZE" default:"256" help:"Maximum number of cached pages"`
	Rate       float64       `env:"DOCSMCP_RATE" default:"5" help:"Requests per second per domain (0 disables limiting)"`
	Retries    int           `env:"DOCSMCP_RETRIES" default:"1" help:"Retries per failed page fetch"`
	CodeLang   string        `name:"code-language" env:"DOCSMCP_CODE_LANGUAGE" default:"python" help:"Language tag for code fences (empty for none)"`
	Extractor  string        `env:"DOCSMCP_EXTRACTOR" enum:"readability,trafilatura" default:"readability" help:"Main content extractor for markdown output (readability, trafilatura)"`
	Verbose    bool          `short:"v" env:"DOCSMCP_VERBOSE" help:"Log debug output to stderr"`

	Serve     ServeCmd     `cmd:"" default:"1" help:"Serve documentation tools over MCP stdio (default)"`
	Get       GetCmd       `cmd:"" help:"Print a documentation page"`
	Search    SearchCmd    `cmd:"" help:"Search the documentation"`
	List      ListCmd      `cmd:"" help:"List documentation pages by section"`
	Example   ExampleCmd   `cmd:"" help:"Print code examples for a topic"`
	Compare   CompareCmd   `cmd:"" help:"Compare alternative approaches"`
	Practices PracticesCmd `cmd:"" help:"Print best practice pages for a topic"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Path   string `arg:"" help:"Documentation path, e.g. tutorial/first-steps"`
	Format string `short:"f" enum:"text,markdown" default:"text" help:"Output format (text, markdown)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Topic or keywords"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ExampleCmd is the "example" subcommand.
type ExampleCmd struct {
	Topic string `arg:"" help:"Example topic, e.g. dependencies"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Topic string `arg:"" help:"Comparison topic, e.g. sync-async"`
}

// PracticesCmd is the "practices" subcommand.
type PracticesCmd struct {
	Topic string `arg:"" help:"Topic, e.g. security"`
}
