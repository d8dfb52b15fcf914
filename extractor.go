package docsmcp

// MaxCodeBlocks bounds how many code snippets one page yields.
const MaxCodeBlocks = 5

// Content is readable text extracted from a page.
type Content struct {
	// Text holds prose with markup removed and references decoded.
	// Paragraphs are separated by exactly one blank line.
	Text string

	// Degraded reports that malformed markup was left partially resolved.
	// Text is still the best available rendering of the page.
	Degraded bool

	// Truncated reports that Text was cut to fit a length budget.
	Truncated bool
}

// CodeSnippets is the ordered list of code blocks found on a page.
type CodeSnippets struct {
	// Blocks holds plain-text code in document order, at most MaxCodeBlocks.
	Blocks []string

	// Omitted counts blocks dropped because of the cap.
	Omitted int

	// Degraded reports that some block kept unresolved markup.
	Degraded bool
}

// TextExtractor turns an HTML document into readable text.
type TextExtractor interface {
	// ExtractText never fails; malformed input yields degraded content.
	ExtractText(html string) Content
}

// CodeExtractor pulls code samples out of an HTML document.
type CodeExtractor interface {
	// ExtractCode returns pre-formatted code blocks, or multi-line inline
	// code when the page has no pre-formatted blocks.
	ExtractCode(html string) CodeSnippets
}

// TitleExtractor finds the human-readable title of a page.
type TitleExtractor interface {
	// ExtractTitle returns the page heading or "" when there is none.
	ExtractTitle(html string) string
}

// ExtractResult holds the main content of a page for markdown rendering.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// It feeds the markdown rendering of a page.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
