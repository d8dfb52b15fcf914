package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsmcp"
)

// Ensure LoggingTextExtractor implements docsmcp.TextExtractor.
var _ docsmcp.TextExtractor = (*LoggingTextExtractor)(nil)

// LoggingTextExtractor wraps a TextExtractor and logs extractions.
// Degraded output is logged at warn level.
type LoggingTextExtractor struct {
	next   docsmcp.TextExtractor
	logger *slog.Logger
}

// NewLoggingTextExtractor creates a new LoggingTextExtractor.
func NewLoggingTextExtractor(next docsmcp.TextExtractor, logger *slog.Logger) *LoggingTextExtractor {
	return &LoggingTextExtractor{next: next, logger: logger}
}

// ExtractText delegates to the wrapped extractor and logs the result.
func (e *LoggingTextExtractor) ExtractText(html string) (c docsmcp.Content) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if c.Degraded {
			level = slog.LevelWarn
		}
		e.logger.Log(context.Background(), level, "text extraction",
			"in", len(html),
			"out", len(c.Text),
			"degraded", c.Degraded,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.ExtractText(html)
}

// Ensure LoggingCodeExtractor implements docsmcp.CodeExtractor.
var _ docsmcp.CodeExtractor = (*LoggingCodeExtractor)(nil)

// LoggingCodeExtractor wraps a CodeExtractor and logs extractions.
type LoggingCodeExtractor struct {
	next   docsmcp.CodeExtractor
	logger *slog.Logger
}

// NewLoggingCodeExtractor creates a new LoggingCodeExtractor.
func NewLoggingCodeExtractor(next docsmcp.CodeExtractor, logger *slog.Logger) *LoggingCodeExtractor {
	return &LoggingCodeExtractor{next: next, logger: logger}
}

// ExtractCode delegates to the wrapped extractor and logs the result.
func (e *LoggingCodeExtractor) ExtractCode(html string) (s docsmcp.CodeSnippets) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if s.Degraded {
			level = slog.LevelWarn
		}
		e.logger.Log(context.Background(), level, "code extraction",
			"blocks", len(s.Blocks),
			"omitted", s.Omitted,
			"degraded", s.Degraded,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.ExtractCode(html)
}
