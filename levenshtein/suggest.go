// Package levenshtein proposes known terms close to a misspelled query
// using github.com/agext/levenshtein.
package levenshtein

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
	"github.com/fwojciec/docsmcp"
)

// DefaultMinScore is the similarity a candidate needs to be suggested.
const DefaultMinScore = 0.5

// Ensure Suggester implements docsmcp.Suggester at compile time.
var _ docsmcp.Suggester = (*Suggester)(nil)

// Suggester ranks candidates by normalized edit distance.
type Suggester struct {
	// MinScore is the lowest similarity, between 0 and 1, a candidate
	// may have.
	MinScore float64
}

// NewSuggester creates a Suggester with DefaultMinScore.
func NewSuggester() *Suggester {
	return &Suggester{MinScore: DefaultMinScore}
}

// Suggest returns up to n candidates with a similarity of at least
// MinScore, most similar first, ties broken alphabetically.
func (s *Suggester) Suggest(query string, candidates []string, n int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || n <= 0 {
		return nil
	}

	type scored struct {
		term  string
		score float64
	}

	var matches []scored
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		term := strings.ToLower(strings.TrimSpace(c))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true

		if score := similarity(query, term); score >= s.MinScore {
			matches = append(matches, scored{term: term, score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].term < matches[j].term
	})

	out := make([]string, 0, min(n, len(matches)))
	for _, m := range matches[:min(n, len(matches))] {
		out = append(out, m.term)
	}
	return out
}

// similarity is 1 minus the edit distance over the longer length.
func similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(levenshtein.Distance(a, b, nil))/float64(maxLen)
}
