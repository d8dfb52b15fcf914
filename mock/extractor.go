package mock

import "github.com/fwojciec/docsmcp"

var _ docsmcp.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docsmcp.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docsmcp.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docsmcp.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ docsmcp.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of docsmcp.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) docsmcp.Content
}

func (e *TextExtractor) ExtractText(html string) docsmcp.Content {
	return e.ExtractTextFn(html)
}

var _ docsmcp.CodeExtractor = (*CodeExtractor)(nil)

// CodeExtractor is a mock implementation of docsmcp.CodeExtractor.
type CodeExtractor struct {
	ExtractCodeFn func(html string) docsmcp.CodeSnippets
}

func (e *CodeExtractor) ExtractCode(html string) docsmcp.CodeSnippets {
	return e.ExtractCodeFn(html)
}

var _ docsmcp.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of docsmcp.TitleExtractor.
type TitleExtractor struct {
	ExtractTitleFn func(html string) string
}

func (e *TitleExtractor) ExtractTitle(html string) string {
	return e.ExtractTitleFn(html)
}
