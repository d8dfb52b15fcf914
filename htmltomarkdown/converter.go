// Package htmltomarkdown renders extracted page content as Markdown with
// github.com/JohannesKaufmann/html-to-markdown/v2.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docsmcp"
)

// Ensure Converter implements docsmcp.Converter at compile time.
var _ docsmcp.Converter = (*Converter)(nil)

// permalinkGlyphs are heading anchors that add noise to Markdown output.
var permalinkGlyphs = strings.NewReplacer("¶", "", "§", "")

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain makes relative links and images absolute against domain.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = strings.TrimRight(domain, "/")
	}
}

// NewConverter creates a new Converter with CommonMark and table support.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docsmcp.Errorf(docsmcp.EINVALID, "empty HTML input")
	}

	var convOpts []converter.ConvertOptionFunc
	if c.domain != "" {
		convOpts = append(convOpts, converter.WithDomain(c.domain))
	}

	result, err := c.conv.ConvertString(html, convOpts...)
	if err != nil {
		return "", docsmcp.Errorf(docsmcp.EINTERNAL, "converting to markdown: %v", err)
	}

	return strings.TrimSpace(permalinkGlyphs.Replace(result)), nil
}
