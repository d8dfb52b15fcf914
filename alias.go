package docsmcp

import (
	"sort"
	"strings"
)

// aliases maps vocabulary agents commonly use to the token that appears in
// the site's URLs. It is written once here and only ever read.
var aliases = map[string]string{
	"auth":                 "security",
	"login":                "security",
	"oauth":                "security",
	"jwt":                  "security",
	"token":                "security",
	"password":             "security",
	"db":                   "sql-databases",
	"database":             "sql-databases",
	"sqlalchemy":           "sql-databases",
	"postgres":             "sql-databases",
	"mysql":                "sql-databases",
	"websocket":            "websockets",
	"ws":                   "websockets",
	"realtime":             "websockets",
	"start":                "first-steps",
	"begin":                "first-steps",
	"hello":                "first-steps",
	"getting started":      "first-steps",
	"di":                   "dependencies",
	"dependency":           "dependencies",
	"inject":               "dependencies",
	"dependency injection": "dependencies",
	"background":           "background-tasks",
	"tasks":                "background-tasks",
	"test":                 "testing",
	"exception":            "handling-errors",
	"pydantic":             "body",
	"upload":               "request-files",
}

// aliasTermsByLength lists alias keys longest first, ties broken
// lexically, so phrase aliases win over the single words inside them.
var aliasTermsByLength = func() []string {
	terms := make([]string, 0, len(aliases))
	for term := range aliases {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	return terms
}()

// LookupAlias returns the URL token for an exact alias term.
func LookupAlias(term string) (string, bool) {
	target, ok := aliases[normalizeQuery(term)]
	return target, ok
}

// AliasTerms returns every alias term in sorted order.
func AliasTerms() []string {
	terms := make([]string, 0, len(aliases))
	for term := range aliases {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// minPrefixAliasLen is the shortest alias key allowed to match the start
// of a longer word. Shorter keys such as "di" or "ws" only match whole
// words.
const minPrefixAliasLen = 3

// matchAlias finds the alias for a normalized query: an exact key first,
// otherwise the longest key that starts a word of the query ("auth" in
// "authentication"). Keys shorter than minPrefixAliasLen must occur as
// whole words.
func matchAlias(query string) (term, target string, ok bool) {
	if target, ok := aliases[query]; ok {
		return query, target, true
	}
	padded := " " + query + " "
	for _, term := range aliasTermsByLength {
		needle := " " + term
		if len(term) < minPrefixAliasLen {
			needle += " "
		}
		if strings.Contains(padded, needle) {
			return term, aliases[term], true
		}
	}
	return "", "", false
}

// normalizeQuery lower-cases a query and collapses its whitespace.
func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
