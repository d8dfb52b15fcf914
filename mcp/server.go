// Package mcp exposes docs.Service as Model Context Protocol tools.
package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsmcp"
	"github.com/fwojciec/docsmcp/docs"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server identity reported during initialization.
const (
	DefaultName    = "docsmcp"
	DefaultVersion = "1.0.0"
)

// Tool names.
const (
	GetDocsTool           = docs.GetToolName
	SearchDocsTool        = "search_docs"
	ListPagesTool         = docs.ListToolName
	GetExampleTool        = "get_example"
	CompareApproachesTool = "compare_approaches"
	GetBestPracticesTool  = "get_best_practices"
)

// GetDocsInput is the input of get_docs.
type GetDocsInput struct {
	Path   string `json:"path" jsonschema:"Documentation path, e.g. tutorial/first-steps"`
	Format string `json:"format,omitempty" jsonschema:"Output format: text (default) or markdown"`
}

// SearchDocsInput is the input of search_docs.
type SearchDocsInput struct {
	Query string `json:"query" jsonschema:"Topic or keywords to search for"`
}

// ListPagesInput is the input of list_pages.
type ListPagesInput struct{}

// TopicInput is the input of the topic based tools.
type TopicInput struct {
	Topic string `json:"topic" jsonschema:"Topic, e.g. authentication or dependencies"`
}

// Server serves the documentation tools over an MCP transport.
type Server struct {
	service *docs.Service
	logger  *slog.Logger
	server  *mcp.Server
}

// Option configures a Server.
type Option func(*options)

type options struct {
	name    string
	version string
	logger  *slog.Logger
}

// WithLogger sets the logger used for per-call logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithImplementation overrides the reported server name and version.
func WithImplementation(name, version string) Option {
	return func(o *options) {
		o.name = name
		o.version = version
	}
}

// NewServer creates a Server with all documentation tools registered.
func NewServer(service *docs.Service, opts ...Option) *Server {
	o := &options{
		name:    DefaultName,
		version: DefaultVersion,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}

	s := &Server{
		service: service,
		logger:  o.logger,
		server:  mcp.NewServer(&mcp.Implementation{Name: o.name, Version: o.version}, nil),
	}
	s.register()
	return s
}

// Run serves requests on transport until the client disconnects or ctx
// is cancelled.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

// Connect starts a session on transport without blocking.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

func (s *Server) register() {
	site := s.service.SiteName
	if site == "" {
		site = docs.DefaultSiteName
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        GetDocsTool,
		Description: "Fetch a " + site + " documentation page by path. Returns the page content as text or markdown.",
	}, handle(s, GetDocsTool, s.getDocs))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        SearchDocsTool,
		Description: "Search the " + site + " documentation for a topic and return the best matching page with related pages.",
	}, handle(s, SearchDocsTool, s.searchDocs))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ListPagesTool,
		Description: "List the " + site + " documentation pages grouped by section.",
	}, handle(s, ListPagesTool, s.listPages))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        GetExampleTool,
		Description: "Get code examples from the " + site + " documentation for a topic.",
	}, handle(s, GetExampleTool, s.getExample))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        CompareApproachesTool,
		Description: "Compare alternative approaches described in the " + site + " documentation, e.g. sync-async.",
	}, handle(s, CompareApproachesTool, s.compareApproaches))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        GetBestPracticesTool,
		Description: "Collect " + site + " documentation guidance for a topic, tutorial pages first.",
	}, handle(s, GetBestPracticesTool, s.getBestPractices))
}

func (s *Server) getDocs(ctx context.Context, in GetDocsInput) (string, error) {
	format, err := docs.ParseFormat(in.Format)
	if err != nil {
		return "", err
	}
	page, err := s.service.GetPage(ctx, in.Path, format)
	if err != nil {
		return "", err
	}
	return s.service.FormatPage(page), nil
}

func (s *Server) searchDocs(ctx context.Context, in SearchDocsInput) (string, error) {
	r, err := s.service.Search(ctx, in.Query)
	if err != nil {
		return "", err
	}
	return s.service.FormatSearch(r), nil
}

func (s *Server) listPages(ctx context.Context, _ ListPagesInput) (string, error) {
	l, err := s.service.ListPages(ctx)
	if err != nil {
		return "", err
	}
	return s.service.FormatPageList(l), nil
}

func (s *Server) getExample(ctx context.Context, in TopicInput) (string, error) {
	r, err := s.service.Example(ctx, in.Topic)
	if err != nil {
		return "", err
	}
	return s.service.FormatExample(r), nil
}

func (s *Server) compareApproaches(ctx context.Context, in TopicInput) (string, error) {
	r, err := s.service.Compare(ctx, in.Topic)
	if err != nil {
		return "", err
	}
	return s.service.FormatComparison(r), nil
}

func (s *Server) getBestPractices(ctx context.Context, in TopicInput) (string, error) {
	r, err := s.service.BestPractices(ctx, in.Topic)
	if err != nil {
		return "", err
	}
	return s.service.FormatPractices(r), nil
}

// handle adapts fn to a tool handler. Errors become error results so the
// client sees the message instead of a protocol failure.
func handle[In any](s *Server, tool string, fn func(context.Context, In) (string, error)) mcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		begin := time.Now()
		id := uuid.NewString()

		text, err := fn(ctx, in)

		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "tool call",
			"tool", tool,
			"request_id", id,
			"duration", time.Since(begin),
			"err", err,
		)

		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + docsmcp.ErrorMessage(err)}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}
