package regex

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docsmcp"
)

// Ensure TextExtractor implements docsmcp.TextExtractor at compile time.
var _ docsmcp.TextExtractor = (*TextExtractor)(nil)

var (
	spaceRunRe     = regexp.MustCompile(`[ \t\f\v]+`)
	blankLineRunRe = regexp.MustCompile(`\n{3,}`)
)

// TextExtractor turns an HTML document into readable paragraphs.
type TextExtractor struct {
	stripper *Stripper
}

// NewTextExtractor creates a TextExtractor with the default Stripper.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{stripper: NewStripper()}
}

// ExtractText strips markup, then decodes character references, then
// normalizes whitespace. Decoding last keeps an escaped "&lt;tag&gt;" in
// the source as literal text instead of feeding it back into stripping.
func (e *TextExtractor) ExtractText(html string) docsmcp.Content {
	stripped, degraded := e.stripper.Strip(html)
	text := docsmcp.DecodeEntities(stripped)
	return docsmcp.Content{
		Text:     normalizeWhitespace(text),
		Degraded: degraded,
	}
}

// normalizeWhitespace collapses horizontal whitespace, trims every line,
// and keeps at most one blank line between paragraphs.
func normalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = spaceRunRe.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	text = blankLineRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
