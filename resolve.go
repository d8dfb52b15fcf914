package docsmcp

import (
	"sort"
	"strings"
)

// MaxComparisonPages bounds how many scanned pages stand in for a
// comparison that is not in the comparison table.
const MaxComparisonPages = 3

// ResolveQuery resolves a free-text query to candidate pages, best first.
//
// An alias in the query takes precedence: the index is scanned for the
// alias target before the query itself is tried. An empty result is a
// valid outcome.
func ResolveQuery(query string, idx SitemapIndex) []SitemapEntry {
	q := normalizeQuery(query)
	if q == "" {
		return nil
	}

	if _, target, ok := matchAlias(q); ok {
		if hits := scan(target, idx); len(hits) > 0 {
			return hits
		}
	}

	if hits := scan(q, idx); len(hits) > 0 {
		return hits
	}
	if hyphenated := strings.ReplaceAll(q, " ", "-"); hyphenated != q {
		return scan(hyphenated, idx)
	}
	return nil
}

// ResolveExample resolves an example topic. Known topics come straight
// from the example table and never call load; other topics fall back to
// ResolveQuery over the index returned by load.
func ResolveExample(topic string, load func() SitemapIndex) []SitemapEntry {
	if path, ok := LookupExample(topic); ok {
		return []SitemapEntry{{Path: path, Category: Categorize(path)}}
	}
	return ResolveQuery(topic, load())
}

// ResolveComparison resolves a comparison topic. Known topics come from
// the comparison table and never call load. Otherwise the best scanned
// pages for the topic form an ad hoc comparison; ok is false when the scan
// finds nothing.
func ResolveComparison(topic string, load func() SitemapIndex) (c Comparison, ok bool) {
	if c, ok := LookupComparison(topic); ok {
		return c, true
	}

	hits := ResolveQuery(topic, load())
	if len(hits) == 0 {
		return Comparison{}, false
	}
	if len(hits) > MaxComparisonPages {
		hits = hits[:MaxComparisonPages]
	}

	pages := make([]string, len(hits))
	for i, h := range hits {
		pages[i] = h.Path
	}
	name := normalizeQuery(topic)
	return Comparison{
		Key:         topicKey(topic),
		Title:       "Comparison: " + name,
		Description: "Pages covering " + name,
		Pages:       pages,
	}, true
}

// scan returns the entries whose path contains term, ranked by how
// closely a path segment matches. Index order is kept within a rank.
func scan(term string, idx SitemapIndex) []SitemapEntry {
	type hit struct {
		entry SitemapEntry
		rank  int
	}

	var hits []hit
	for _, e := range idx {
		path := strings.ToLower(e.Path)
		if !strings.Contains(path, term) {
			continue
		}
		hits = append(hits, hit{entry: e, rank: segmentRank(path, term)})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })

	out := make([]SitemapEntry, len(hits))
	for i, h := range hits {
		out[i] = h.entry
	}
	return out
}

// segmentRank is 0 when the last path segment equals term, 1 when any
// other segment does, and 2 for a plain substring match.
func segmentRank(path, term string) int {
	segments := strings.Split(path, "/")
	if segments[len(segments)-1] == term {
		return 0
	}
	for _, s := range segments {
		if s == term {
			return 1
		}
	}
	return 2
}

// ResolvePractices returns every entry whose path contains topic, grouped
// by category in Categories order and kept in index order within a
// category. When nothing matches, the hyphenated topic and then the alias
// target of the topic are tried.
func ResolvePractices(topic string, idx SitemapIndex) []SitemapEntry {
	q := normalizeQuery(topic)
	if q == "" {
		return nil
	}

	terms := []string{q}
	if hyphenated := strings.ReplaceAll(q, " ", "-"); hyphenated != q {
		terms = append(terms, hyphenated)
	}
	if _, target, ok := matchAlias(q); ok {
		terms = append(terms, target)
	}

	for _, term := range terms {
		if hits := byCategory(term, idx); len(hits) > 0 {
			return hits
		}
	}
	return nil
}

func byCategory(term string, idx SitemapIndex) []SitemapEntry {
	var out []SitemapEntry
	for _, c := range Categories() {
		for _, e := range idx.ByCategory(c) {
			if strings.Contains(strings.ToLower(e.Path), term) {
				out = append(out, e)
			}
		}
	}
	return out
}

// KnownTerms returns every alias, example topic and comparison topic,
// sorted and without duplicates. It is the vocabulary for suggestions.
func KnownTerms() []string {
	seen := make(map[string]struct{})
	for _, list := range [][]string{AliasTerms(), ExampleTopics(), ComparisonTerms()} {
		for _, term := range list {
			seen[term] = struct{}{}
		}
	}
	return sortedKeys(seen)
}
