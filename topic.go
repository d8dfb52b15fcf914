package docsmcp

import (
	"sort"
	"strings"
)

// examplePaths points common example topics straight at the page holding
// their canonical code, so the sitemap is only consulted on a miss.
var examplePaths = map[string]string{
	"background-tasks": "tutorial/background-tasks",
	"body":             "tutorial/body",
	"cors":             "tutorial/cors",
	"database":         "tutorial/sql-databases",
	"dependencies":     "tutorial/dependencies",
	"errors":           "tutorial/handling-errors",
	"first-steps":      "tutorial/first-steps",
	"jwt":              "tutorial/security/oauth2-jwt",
	"middleware":       "tutorial/middleware",
	"path-params":      "tutorial/path-params",
	"query-params":     "tutorial/query-params",
	"request-files":    "tutorial/request-files",
	"response-model":   "tutorial/response-model",
	"security":         "tutorial/security/first-steps",
	"testing":          "tutorial/testing",
	"websockets":       "advanced/websockets",
}

// LookupExample returns the page holding code for a known example topic.
func LookupExample(topic string) (string, bool) {
	path, ok := examplePaths[topicKey(topic)]
	return path, ok
}

// ExampleTopics returns every known example topic in sorted order.
func ExampleTopics() []string {
	return sortedKeys(examplePaths)
}

// Comparison describes a side by side look at alternative approaches.
type Comparison struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Pages       []string `json:"pages"`
}

var (
	syncAsync = Comparison{
		Key:         "sync-async",
		Title:       "Sync vs Async Functions",
		Description: "When to use async def vs def in FastAPI",
		Pages:       []string{"async", "tutorial/first-steps"},
	}
	authMethods = Comparison{
		Key:         "auth-methods",
		Title:       "Authentication Methods",
		Description: "Different ways to handle authentication",
		Pages: []string{
			"tutorial/security/oauth2-jwt",
			"advanced/security/http-basic-auth",
			"tutorial/security",
		},
	}
	dependencyPatterns = Comparison{
		Key:         "dependency-patterns",
		Title:       "Dependency Injection Patterns",
		Description: "Different ways to use dependency injection",
		Pages: []string{
			"tutorial/dependencies",
			"tutorial/dependencies/classes-as-dependencies",
			"tutorial/dependencies/dependencies-with-yield",
		},
	}
	responseTypes = Comparison{
		Key:         "response-types",
		Title:       "Response Types",
		Description: "Different ways to return responses",
		Pages: []string{
			"tutorial/response-model",
			"advanced/response-directly",
			"advanced/custom-response",
		},
	}
	testingApproaches = Comparison{
		Key:         "testing",
		Title:       "Testing Approaches",
		Description: "Sync vs async testing patterns",
		Pages:       []string{"tutorial/testing", "advanced/async-tests"},
	}
	databasePatterns = Comparison{
		Key:         "database",
		Title:       "Database Patterns",
		Description: "Sync vs async database access",
		Pages:       []string{"tutorial/sql-databases", "advanced/async-sql-databases"},
	}
)

// comparisons maps comparison topics, including shorthand, to their pages.
var comparisons = map[string]Comparison{
	"sync-async":          syncAsync,
	"sync-vs-async":       syncAsync,
	"async":               syncAsync,
	"auth-methods":        authMethods,
	"auth":                authMethods,
	"security":            authMethods,
	"dependency-patterns": dependencyPatterns,
	"dependencies":        dependencyPatterns,
	"response-types":      responseTypes,
	"response":            responseTypes,
	"testing":             testingApproaches,
	"database":            databasePatterns,
}

// LookupComparison returns the comparison registered for topic. Spaces in
// the topic are treated as hyphens, so "sync async" finds "sync-async".
func LookupComparison(topic string) (Comparison, bool) {
	c, ok := comparisons[topicKey(topic)]
	if !ok {
		return Comparison{}, false
	}
	c.Pages = append([]string(nil), c.Pages...)
	return c, true
}

// ComparisonTopics returns the canonical comparison keys with descriptions,
// in the order they are usually presented.
func ComparisonTopics() []Comparison {
	all := []Comparison{syncAsync, authMethods, dependencyPatterns, responseTypes, testingApproaches, databasePatterns}
	for i := range all {
		all[i].Pages = append([]string(nil), all[i].Pages...)
	}
	return all
}

// ComparisonTerms returns every accepted comparison topic in sorted order.
func ComparisonTerms() []string {
	return sortedKeys(comparisons)
}

func topicKey(topic string) string {
	return strings.ReplaceAll(normalizeQuery(topic), " ", "-")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
