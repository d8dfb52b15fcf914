// Package goquery extracts page metadata with github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsmcp"
)

// Ensure TitleExtractor implements docsmcp.TitleExtractor at compile time.
var _ docsmcp.TitleExtractor = (*TitleExtractor)(nil)

// permalinkGlyphs are anchors that documentation generators append to headings.
var permalinkGlyphs = strings.NewReplacer("¶", "", "§", "", "#", "")

// TitleExtractor reads the human-readable title of a documentation page.
type TitleExtractor struct{}

// NewTitleExtractor creates a new TitleExtractor.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{}
}

// ExtractTitle returns the text of the first <h1>, falling back to the
// document <title>. It returns "" when neither exists or the HTML cannot
// be parsed.
func (e *TitleExtractor) ExtractTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	if title := cleanTitle(doc.Find("h1").First().Text()); title != "" {
		return title
	}
	return cleanTitle(doc.Find("title").First().Text())
}

func cleanTitle(s string) string {
	s = permalinkGlyphs.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
