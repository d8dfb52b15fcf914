// Package regex implements the text and code extraction pipeline as
// ordered regular expression rules applied in fixed passes. It tolerates
// malformed markup that a tree parser would reshape: unresolved fragments
// are left in place and reported as degraded output.
package regex

import "regexp"

// DefaultMaxPasses bounds the tag removal loop.
const DefaultMaxPasses = 16

// Rule replaces every match of Pattern with Replace.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

// Apply runs the rule once over s.
func (r Rule) Apply(s string) string {
	return r.Pattern.ReplaceAllString(s, r.Replace)
}

// applyUntilStable runs rules in order, pass after pass, until a pass
// changes nothing or maxPasses is reached. The boolean reports whether a
// fixed point was reached.
func applyUntilStable(s string, rules []Rule, maxPasses int) (string, bool) {
	for pass := 0; pass < maxPasses; pass++ {
		prev := s
		for _, r := range rules {
			s = r.Apply(s)
		}
		if s == prev {
			return s, true
		}
	}
	return s, false
}

// tagRule removes any remaining tag marker, comment or doctype.
var tagRule = Rule{
	Name:    "tag",
	Pattern: regexp.MustCompile(`<[a-zA-Z/!][^>]*>`),
}
