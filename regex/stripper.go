package regex

import (
	"regexp"
	"strings"
)

// chromeElements are removed together with everything they contain.
var chromeElements = []string{
	"script", "style", "noscript", "template", "svg", "iframe",
	"head", "nav", "header", "footer", "aside",
}

// containerElements scope extraction, in order of preference.
var containerElements = []string{"article", "main"}

// element is a removal rule for one element plus a pattern that finds an
// opening tag left behind when the closing tag is missing.
type element struct {
	remove Rule
	open   *regexp.Regexp
}

func newElement(name string) element {
	return element{
		remove: Rule{
			Name:    name,
			Pattern: regexp.MustCompile(`(?is)<` + name + `(?:\s[^>]*)?>.*?</` + name + `\s*>`),
		},
		open: regexp.MustCompile(`(?i)<` + name + `(?:\s[^>]*)?>`),
	}
}

var commentRule = Rule{
	Name:    "comment",
	Pattern: regexp.MustCompile(`(?s)<!--.*?-->`),
}

// textRules turn layout tags into line structure before dropping the rest.
var textRules = []Rule{
	{
		Name:    "break",
		Pattern: regexp.MustCompile(`(?i)<br\s*/?>`),
		Replace: "\n",
	},
	{
		Name:    "block",
		Pattern: regexp.MustCompile(`(?i)</?(?:p|div|h[1-6]|ul|ol|li|pre|table|thead|tbody|tr|section|article|main|blockquote|dl|dt|dd|figure|figcaption|hr|details|summary)(?:\s[^>]*)?/?>`),
		Replace: "\n\n",
	},
	{
		Name:    "cell",
		Pattern: regexp.MustCompile(`(?i)</?t[dh](?:\s[^>]*)?>`),
		Replace: " ",
	},
	tagRule,
}

// residualRules clean up what is left of tags the tag rule could not
// match, typically an opening tag whose ">" is missing. They only run when
// raw brackets survive, so attribute-like text in clean prose is kept.
var residualRules = []Rule{
	{
		Name:    "attribute",
		Pattern: regexp.MustCompile(`[a-zA-Z-]+=(?:"[^"]*"|'[^']*')`),
		Replace: " ",
	},
	{
		Name:    "unterminated tag",
		Pattern: regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9-]*`),
		Replace: " ",
	},
	{
		Name:    "stray bracket",
		Pattern: regexp.MustCompile(`[ \t]*[<>][ \t]*`),
		Replace: " ",
	},
}

// Stripper removes markup from an HTML document in fixed passes:
// chrome elements with their content, scoping to the main content
// container, then tag markers until nothing changes.
type Stripper struct {
	// MaxPasses bounds the tag removal loop.
	MaxPasses int

	chrome     []element
	containers []*regexp.Regexp
}

// NewStripper creates a Stripper with the default rule set.
func NewStripper() *Stripper {
	s := &Stripper{MaxPasses: DefaultMaxPasses}
	for _, name := range chromeElements {
		s.chrome = append(s.chrome, newElement(name))
	}
	for _, name := range containerElements {
		s.containers = append(s.containers,
			regexp.MustCompile(`(?is)<`+name+`(?:\s[^>]*)?>(.*?)</`+name+`\s*>`))
	}
	return s
}

// Strip returns the text left once markup is removed. Character
// references are not decoded. The boolean reports degraded output: an
// unclosed chrome element, a pass limit hit, or tag fragments and stray
// angle brackets that were neutralized to spaces.
func (s *Stripper) Strip(html string) (string, bool) {
	degraded := false

	html = commentRule.Apply(html)
	for _, el := range s.chrome {
		html = el.remove.Apply(html)
		if el.open.MatchString(html) {
			degraded = true
		}
	}

	for _, re := range s.containers {
		if m := re.FindStringSubmatch(html); m != nil {
			html = m[1]
			break
		}
	}

	html, stable := applyUntilStable(html, textRules, s.maxPasses())
	if !stable {
		degraded = true
	}

	if strings.ContainsAny(html, "<>") {
		for _, r := range residualRules {
			html = r.Apply(html)
		}
		degraded = true
	}

	return html, degraded
}

// StripTags removes tag markers from a fragment without touching its line
// structure, as needed for code. The boolean reports a pass limit hit.
func (s *Stripper) StripTags(fragment string) (string, bool) {
	out, stable := applyUntilStable(fragment, []Rule{tagRule}, s.maxPasses())
	return out, !stable
}

func (s *Stripper) maxPasses() int {
	if s.MaxPasses <= 0 {
		return DefaultMaxPasses
	}
	return s.MaxPasses
}
