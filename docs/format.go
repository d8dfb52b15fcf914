package docs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/docsmcp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxListedTutorialPages bounds the tutorial section of the page list.
const MaxListedTutorialPages = 30

// Tool names referenced in hints.
const (
	ListToolName = "list_pages"
	GetToolName  = "get_docs"
)

var categoryLabels = map[docsmcp.Category]string{
	docsmcp.CategoryTutorial:   "Tutorial",
	docsmcp.CategoryAdvanced:   "Advanced",
	docsmcp.CategoryDeployment: "Deployment",
	docsmcp.CategoryHowTo:      "How-To Guides",
	docsmcp.CategoryReference:  "Reference",
	docsmcp.CategoryOther:      "Other",
}

// FormatPage renders a page as Markdown.
func (s *Service) FormatPage(p *Page) string {
	if !p.Available {
		return fmt.Sprintf("Could not find documentation at '%s'.\n\n**Browse the docs**: %s\n\nUse `%s` to see all valid paths.",
			p.URL, s.baseURL(), ListToolName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s Documentation: %s\n\n", s.siteName(), p.Path)
	if p.Title != "" && p.Title != p.Path {
		fmt.Fprintf(&b, "**Title**: %s\n", p.Title)
	}
	fmt.Fprintf(&b, "**URL**: %s\n\n---\n\n", p.URL)
	b.WriteString(p.Content.Text)
	if p.Content.Degraded {
		b.WriteString("\n\n*Some markup on this page could not be fully cleaned.*")
	}
	return b.String()
}

// FormatSearch renders a search result as Markdown.
func (s *Service) FormatSearch(r *SearchResult) string {
	if r.Page == nil {
		var b strings.Builder
		fmt.Fprintf(&b, "No results for '%s'.\n\n", r.Query)
		if r.SitemapUnavailable {
			b.WriteString("The sitemap could not be fetched right now.\n\n")
		}
		writeSuggestions(&b, r.Suggestions)
		fmt.Fprintf(&b, "**Browse**: %s\n\nUse `%s` to see all available pages.", s.baseURL(), ListToolName)
		return b.String()
	}

	if !r.Page.Available {
		return fmt.Sprintf("Found '%s' but could not fetch content.", r.Page.Path)
	}

	out := s.FormatPage(r.Page)
	if len(r.Related) > 0 {
		out += "\n\n**Related pages:** " + quoteList(r.Related)
	}
	return out
}

// FormatPageList renders the categorized sitemap as Markdown. Paths are
// sorted within each category.
func (s *Service) FormatPageList(l *PageList) string {
	if !l.Available {
		return fmt.Sprintf("Could not fetch sitemap. Browse docs at: %s", s.baseURL())
	}

	lines := []string{fmt.Sprintf("## %s Documentation Pages\n", s.siteName())}
	for _, c := range docsmcp.Categories() {
		entries := l.Index.ByCategory(c)
		if len(entries) == 0 {
			continue
		}
		paths := make([]string, len(entries))
		for i, e := range entries {
			paths[i] = e.Path
		}
		sort.Strings(paths)

		lines = append(lines, "### "+categoryLabels[c])
		shown := paths
		if c == docsmcp.CategoryTutorial && len(paths) > MaxListedTutorialPages {
			shown = paths[:MaxListedTutorialPages]
		}
		for _, p := range shown {
			lines = append(lines, "- `"+p+"`")
		}
		if len(shown) < len(paths) {
			lines = append(lines, fmt.Sprintf("- ... and %d more", len(paths)-len(shown)))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		fmt.Sprintf("**Total pages**: %d", l.Total),
		"",
		fmt.Sprintf("Use `%s` with any path to fetch a page.", GetToolName),
	)
	return strings.Join(lines, "\n")
}

// FormatExample renders code examples as Markdown.
func (s *Service) FormatExample(r *ExampleResult) string {
	if r.Path == "" {
		var b strings.Builder
		fmt.Fprintf(&b, "No examples found for '%s'.\n\n", r.Topic)
		writeSuggestions(&b, r.Suggestions)
		fmt.Fprintf(&b, "Try: %s", strings.Join(docsmcp.ExampleTopics(), ", "))
		return b.String()
	}
	if !r.Available {
		return fmt.Sprintf("Could not fetch examples from %s", r.URL)
	}
	if len(r.Snippets.Blocks) == 0 {
		return fmt.Sprintf("No code examples found in %s", r.Path)
	}

	lines := []string{
		fmt.Sprintf("## Code Examples: %s\n", r.Topic),
		fmt.Sprintf("**Source**: %s\n", r.URL),
		"---\n",
	}
	for i, code := range r.Snippets.Blocks {
		lines = append(lines,
			fmt.Sprintf("### Example %d\n", i+1),
			"```"+s.CodeLanguage,
			code,
			"```\n",
		)
	}
	if r.Snippets.Omitted > 0 {
		lines = append(lines, fmt.Sprintf("*... and %d more examples in the docs.*", r.Snippets.Omitted))
	}
	return strings.Join(lines, "\n")
}

// FormatComparison renders a comparison as Markdown. Pages that could not
// be fetched are left out.
func (s *Service) FormatComparison(r *ComparisonResult) string {
	if !r.Found {
		var b strings.Builder
		fmt.Fprintf(&b, "No comparison found for '%s'.\n\n", r.Topic)
		writeSuggestions(&b, r.Suggestions)
		b.WriteString("**Available comparisons:**")
		for _, c := range docsmcp.ComparisonTopics() {
			fmt.Fprintf(&b, "\n- `%s` - %s", c.Key, c.Description)
		}
		return b.String()
	}

	lines := []string{
		fmt.Sprintf("## %s\n", r.Comparison.Title),
		fmt.Sprintf("*%s*\n", r.Comparison.Description),
		"---\n",
	}
	fetched := 0
	for _, p := range r.Pages {
		if !p.Available {
			continue
		}
		fetched++
		lines = append(lines,
			fmt.Sprintf("### %s\n", p.Title),
			fmt.Sprintf("**Docs**: %s\n", p.URL),
		)
		if p.Code != "" {
			lines = append(lines, "```"+s.CodeLanguage, p.Code, "```\n")
		}
		if p.Summary != "" {
			lines = append(lines, fmt.Sprintf("> %s\n", p.Summary))
		}
	}
	if fetched == 0 {
		lines = append(lines, fmt.Sprintf("Could not fetch the compared pages. Browse docs at: %s", s.baseURL()))
	}
	return strings.Join(lines, "\n")
}

// FormatPractices renders best practice pages as Markdown.
func (s *Service) FormatPractices(r *PracticesResult) string {
	if len(r.Matches) == 0 {
		if r.SitemapUnavailable {
			return fmt.Sprintf("Could not fetch documentation. Browse at: %s", s.baseURL())
		}
		var b strings.Builder
		fmt.Fprintf(&b, "No documentation found for '%s'.\n\n", r.Topic)
		writeSuggestions(&b, r.Suggestions)
		fmt.Fprintf(&b, "Use `%s` to see available topics.", ListToolName)
		return b.String()
	}

	lines := []string{
		fmt.Sprintf("## Best Practices: %s\n", cases.Title(language.English).String(strings.TrimSpace(r.Topic))),
		fmt.Sprintf("*Found %d relevant page(s)*\n\n---\n", len(r.Matches)),
	}
	for _, p := range r.Pages {
		if !p.Available {
			continue
		}
		lines = append(lines,
			"### "+p.Title,
			fmt.Sprintf("**URL**: %s\n", p.URL),
			p.Content.Text,
			"\n---\n",
		)
	}
	if len(r.Matches) > MaxPracticePages {
		more := r.Matches[MaxPracticePages:min(len(r.Matches), MaxPracticePages+MaxMorePracticePages)]
		paths := make([]string, len(more))
		for i, e := range more {
			paths[i] = e.Path
		}
		lines = append(lines, "**More pages:** "+quoteList(paths))
	}
	return strings.Join(lines, "\n")
}

// Summarize flattens text to a single line and cuts it to at most n runes
// on a word boundary, marking the cut with "...".
func Summarize(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	cut := string(runes[:n])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

func writeSuggestions(b *strings.Builder, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(b, "Did you mean: %s?\n\n", quoteList(suggestions))
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = "`" + it + "`"
	}
	return strings.Join(quoted, ", ")
}
