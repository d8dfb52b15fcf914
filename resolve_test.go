package docsmcp_test

import (
	"testing"

	"github.com/fwojciec/docsmcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(entries []docsmcp.SitemapEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func TestResolveQuery(t *testing.T) {
	t.Parallel()

	t.Run("resolves alias to its target pages", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{"/tutorial/security/", "/advanced/security/", "/deployment/docker/"})

		got := docsmcp.ResolveQuery("auth", idx)

		assert.Equal(t, []docsmcp.SitemapEntry{
			{Path: "tutorial/security", Category: docsmcp.CategoryTutorial},
			{Path: "advanced/security", Category: docsmcp.CategoryAdvanced},
		}, got)
	})

	t.Run("alias takes precedence over a direct match", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{"/advanced/test-client/", "/tutorial/testing/"})

		got := docsmcp.ResolveQuery("test", idx)

		assert.Equal(t, []string{"tutorial/testing"}, paths(got))
	})

	t.Run("matches alias phrases inside longer queries", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{"/tutorial/dependencies/", "/tutorial/cors/"})

		got := docsmcp.ResolveQuery("how does Dependency Injection work", idx)

		assert.Equal(t, []string{"tutorial/dependencies"}, paths(got))
	})

	t.Run("matches an alias at the start of a longer word", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{
			"/tutorial/security/",
			"/advanced/security/http-basic-auth/",
			"/async/",
			"/tutorial/first-steps/",
		})

		got := docsmcp.ResolveQuery("authentication", idx)

		assert.Equal(t, []string{"tutorial/security", "advanced/security/http-basic-auth"}, paths(got))
	})

	t.Run("short aliases match whole words only", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{"/tutorial/dependencies/", "/tutorial/direct/"})

		assert.Equal(t, []string{"tutorial/dependencies"}, paths(docsmcp.ResolveQuery("di", idx)))
		assert.Equal(t, []string{"tutorial/direct"}, paths(docsmcp.ResolveQuery("direct", idx)))
	})

	t.Run("does not match aliases inside other words", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{"/advanced/websockets/", "/tutorial/news/"})

		got := docsmcp.ResolveQuery("news", idx)

		assert.Equal(t, []string{"tutorial/news"}, paths(got))
	})

	t.Run("falls back to direct scan when alias target is absent", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{"/how-to/token-refresh/"})

		got := docsmcp.ResolveQuery("token", idx)

		assert.Equal(t, []string{"how-to/token-refresh"}, paths(got))
	})

	t.Run("direct scan is case insensitive", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{"/tutorial/cors/", "/tutorial/body/"})

		got := docsmcp.ResolveQuery("  CORS ", idx)

		assert.Equal(t, []string{"tutorial/cors"}, paths(got))
	})

	t.Run("ranks exact segment matches first", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{
			"/tutorial/middleware-advanced/",
			"/advanced/middleware/extra/",
			"/tutorial/middleware/",
		})

		got := docsmcp.ResolveQuery("middleware", idx)

		assert.Equal(t, []string{
			"tutorial/middleware",
			"advanced/middleware/extra",
			"tutorial/middleware-advanced",
		}, paths(got))
	})

	t.Run("resolves a word starting with an alias", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{
			"/tutorial/security/",
			"/advanced/security/http-basic-auth/",
			"/async/",
			"/tutorial/first-steps/",
		})

		got := docsmcp.ResolvePractices("authentication", idx)

		assert.Equal(t, []string{"tutorial/security", "advanced/security/http-basic-auth"}, paths(got))
	})

	t.Run("tries spaces as hyphens", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{"/tutorial/path-params/"})

		got := docsmcp.ResolveQuery("path params", idx)

		assert.Equal(t, []string{"tutorial/path-params"}, paths(got))
	})

	t.Run("returns empty for no match", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{"/tutorial/cors/"})

		assert.Empty(t, docsmcp.ResolveQuery("graphql", idx))
		assert.Empty(t, docsmcp.ResolveQuery("   ", idx))
		assert.Empty(t, docsmcp.ResolveQuery("cors", nil))
	})
}

func TestResolveExample(t *testing.T) {
	t.Parallel()

	t.Run("uses the example table without loading the index", func(t *testing.T) {
		t.Parallel()

		got := docsmcp.ResolveExample("CORS", func() docsmcp.SitemapIndex {
			t.Fatal("index should not be loaded for a known topic")
			return nil
		})

		assert.Equal(t, []docsmcp.SitemapEntry{{Path: "tutorial/cors", Category: docsmcp.CategoryTutorial}}, got)
	})

	t.Run("falls back to the index on a table miss", func(t *testing.T) {
		t.Parallel()

		loaded := false
		got := docsmcp.ResolveExample("graphql", func() docsmcp.SitemapIndex {
			loaded = true
			return docsmcp.LoadCategorizedSitemap([]string{"/how-to/graphql/"})
		})

		assert.True(t, loaded)
		assert.Equal(t, []string{"how-to/graphql"}, paths(got))
	})
}

func TestResolveComparison(t *testing.T) {
	t.Parallel()

	t.Run("uses the comparison table", func(t *testing.T) {
		t.Parallel()

		c, ok := docsmcp.ResolveComparison("auth", func() docsmcp.SitemapIndex {
			t.Fatal("index should not be loaded for a known comparison")
			return nil
		})

		require.True(t, ok)
		assert.Equal(t, "Authentication Methods", c.Title)
		assert.Contains(t, c.Pages, "tutorial/security/oauth2-jwt")
	})

	t.Run("treats spaces as hyphens", func(t *testing.T) {
		t.Parallel()

		c, ok := docsmcp.ResolveComparison("Sync Async", func() docsmcp.SitemapIndex { return nil })

		require.True(t, ok)
		assert.Equal(t, "sync-async", c.Key)
	})

	t.Run("accepts the vs spelling", func(t *testing.T) {
		t.Parallel()

		c, ok := docsmcp.ResolveComparison("sync-vs-async", func() docsmcp.SitemapIndex {
			t.Fatal("index should not be loaded for a known comparison")
			return nil
		})

		require.True(t, ok)
		assert.Equal(t, "sync-async", c.Key)
	})

	t.Run("builds an ad hoc comparison from the index", func(t *testing.T) {
		t.Parallel()

		c, ok := docsmcp.ResolveComparison("middleware", func() docsmcp.SitemapIndex {
			return docsmcp.LoadCategorizedSitemap([]string{
				"/tutorial/middleware/",
				"/advanced/middleware/",
				"/how-to/middleware/",
				"/reference/middleware/",
			})
		})

		require.True(t, ok)
		assert.Equal(t, "Comparison: middleware", c.Title)
		assert.Len(t, c.Pages, docsmcp.MaxComparisonPages)
		assert.Equal(t, "tutorial/middleware", c.Pages[0])
	})

	t.Run("reports no match", func(t *testing.T) {
		t.Parallel()

		_, ok := docsmcp.ResolveComparison("graphql", func() docsmcp.SitemapIndex { return nil })

		assert.False(t, ok)
	})
}

func TestLookupTables(t *testing.T) {
	t.Parallel()

	t.Run("alias lookup normalizes case", func(t *testing.T) {
		t.Parallel()

		target, ok := docsmcp.LookupAlias("JWT")

		require.True(t, ok)
		assert.Equal(t, "security", target)
	})

	t.Run("returned comparison pages are copies", func(t *testing.T) {
		t.Parallel()

		c, ok := docsmcp.LookupComparison("testing")
		require.True(t, ok)
		c.Pages[0] = "mutated"

		again, _ := docsmcp.LookupComparison("testing")
		assert.Equal(t, "tutorial/testing", again.Pages[0])
	})

	t.Run("lists known terms", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, docsmcp.AliasTerms(), "getting started")
		assert.Contains(t, docsmcp.ExampleTopics(), "cors")
		assert.Contains(t, docsmcp.ComparisonTerms(), "sync-async")
		assert.Len(t, docsmcp.ComparisonTopics(), 6)
	})
}

func TestResolvePractices(t *testing.T) {
	t.Parallel()

	t.Run("groups matches by category priority", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{
			"/reference/security/",
			"/advanced/security/http-basic-auth/",
			"/tutorial/security/",
			"/deployment/https/",
			"/tutorial/security/oauth2-jwt/",
		})

		got := docsmcp.ResolvePractices("security", idx)

		assert.Equal(t, []string{
			"tutorial/security",
			"tutorial/security/oauth2-jwt",
			"advanced/security/http-basic-auth",
			"reference/security",
		}, paths(got))
	})

	t.Run("falls back to the alias target", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{"/tutorial/sql-databases/", "/tutorial/cors/"})

		got := docsmcp.ResolvePractices("DB", idx)

		assert.Equal(t, []string{"tutorial/sql-databases"}, paths(got))
	})

	t.Run("tries spaces as hyphens", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{"/tutorial/background-tasks/"})

		got := docsmcp.ResolvePractices("background tasks", idx)

		assert.Equal(t, []string{"tutorial/background-tasks"}, paths(got))
	})

	t.Run("returns empty for blank or unknown topics", func(t *testing.T) {
		t.Parallel()

		idx := docsmcp.LoadCategorizedSitemap([]string{"/tutorial/cors/"})

		assert.Empty(t, docsmcp.ResolvePractices("  ", idx))
		assert.Empty(t, docsmcp.ResolvePractices("graphql", idx))
	})
}

func TestKnownTerms(t *testing.T) {
	t.Parallel()

	terms := docsmcp.KnownTerms()

	assert.Contains(t, terms, "auth")
	assert.Contains(t, terms, "websockets")
	assert.Contains(t, terms, "sync-async")
	assert.IsIncreasing(t, terms)
}
