package regex

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docsmcp"
)

// Ensure CodeExtractor implements docsmcp.CodeExtractor at compile time.
var _ docsmcp.CodeExtractor = (*CodeExtractor)(nil)

var (
	// preCodeRe allows the empty spans highlighters put between pre and code.
	preCodeRe = regexp.MustCompile(`(?is)<pre(?:\s[^>]*)?>(?:\s|<span[^>]*>\s*</span>)*<code(?:\s[^>]*)?>(.*?)</code\s*>\s*</pre\s*>`)
	codeRe    = regexp.MustCompile(`(?is)<code(?:\s[^>]*)?>(.*?)</code\s*>`)
)

// CodeExtractor pulls code samples out of HTML.
type CodeExtractor struct {
	// MaxBlocks caps the number of returned blocks.
	MaxBlocks int

	stripper *Stripper
}

// NewCodeExtractor creates a CodeExtractor capped at docsmcp.MaxCodeBlocks.
func NewCodeExtractor() *CodeExtractor {
	return &CodeExtractor{
		MaxBlocks: docsmcp.MaxCodeBlocks,
		stripper:  NewStripper(),
	}
}

// ExtractCode returns the bodies of pre>code regions in document order.
// Only when there are none does it fall back to inline code regions that
// span more than one line. Each body has its tags stripped before its
// references are decoded.
func (e *CodeExtractor) ExtractCode(html string) docsmcp.CodeSnippets {
	bodies := submatches(preCodeRe, html)
	if len(bodies) == 0 {
		for _, body := range submatches(codeRe, html) {
			if strings.Contains(body, "\n") {
				bodies = append(bodies, body)
			}
		}
	}

	var out docsmcp.CodeSnippets
	for _, body := range bodies {
		code, degraded := e.stripper.StripTags(body)
		code = trimCode(docsmcp.DecodeEntities(code))
		if code == "" {
			continue
		}
		if len(out.Blocks) >= e.MaxBlocks {
			out.Omitted++
			continue
		}
		out.Blocks = append(out.Blocks, code)
		out.Degraded = out.Degraded || degraded
	}
	return out
}

func submatches(re *regexp.Regexp, s string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		out = append(out, m[1])
	}
	return out
}

// trimCode drops surrounding blank lines and trailing spaces but keeps the
// indentation of the first line.
func trimCode(code string) string {
	code = strings.TrimRight(code, " \t\r\n")
	for {
		i := strings.IndexByte(code, '\n')
		if i < 0 || strings.TrimSpace(code[:i]) != "" {
			return code
		}
		code = code[i+1:]
	}
}
