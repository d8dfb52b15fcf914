package levenshtein_test

import (
	"testing"

	"github.com/fwojciec/docsmcp"
	"github.com/fwojciec/docsmcp/levenshtein"
	"github.com/stretchr/testify/assert"
)

func TestSuggester_Suggest(t *testing.T) {
	t.Parallel()

	t.Run("ranks the closest terms first", func(t *testing.T) {
		t.Parallel()

		s := levenshtein.NewSuggester()
		got := s.Suggest("websocket", []string{"cors", "websockets", "webhooks"}, 3)

		assert.Equal(t, "websockets", got[0])
		assert.NotContains(t, got, "cors")
	})

	t.Run("suggests known terms for a typo", func(t *testing.T) {
		t.Parallel()

		s := levenshtein.NewSuggester()
		got := s.Suggest("middlewar", docsmcp.KnownTerms(), 3)

		assert.Contains(t, got, "middleware")
	})

	t.Run("limits the number of suggestions", func(t *testing.T) {
		t.Parallel()

		s := levenshtein.NewSuggester()
		got := s.Suggest("ab", []string{"ab", "abc", "abd", "abe"}, 2)

		assert.Equal(t, []string{"ab", "abc"}, got)
	})

	t.Run("ignores case and duplicates", func(t *testing.T) {
		t.Parallel()

		s := levenshtein.NewSuggester()
		got := s.Suggest("CORS", []string{"Cors", "cors"}, 5)

		assert.Equal(t, []string{"cors"}, got)
	})

	t.Run("returns nothing for distant terms", func(t *testing.T) {
		t.Parallel()

		s := levenshtein.NewSuggester()

		assert.Empty(t, s.Suggest("graphql", []string{"cors", "jwt"}, 3))
		assert.Empty(t, s.Suggest("", []string{"cors"}, 3))
		assert.Empty(t, s.Suggest("cors", []string{"cors"}, 0))
	})
}
