package docsmcp_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/docsmcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("returns short content unchanged", func(t *testing.T) {
		t.Parallel()

		content := "Short content."

		got, cut := docsmcp.Truncate(content, 100)

		assert.False(t, cut)
		assert.Equal(t, content, got)
	})

	t.Run("returns content of exactly max length unchanged", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("a", 50)

		got, cut := docsmcp.Truncate(content, 50)

		assert.False(t, cut)
		assert.Equal(t, content, got)
	})

	t.Run("hard cuts when there is no paragraph break", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("x", 500)

		got, cut := docsmcp.Truncate(content, 100)

		require.True(t, cut)
		assert.Equal(t, strings.Repeat("x", 100)+docsmcp.TruncationMarker, got)
		assert.Contains(t, strings.ToLower(got), "truncated")
	})

	t.Run("breaks at the last paragraph within budget", func(t *testing.T) {
		t.Parallel()

		content := "First paragraph.\n\nSecond paragraph.\n\n" + strings.Repeat("y", 200)

		got, cut := docsmcp.Truncate(content, 60)

		require.True(t, cut)
		assert.Equal(t, "First paragraph.\n\nSecond paragraph."+docsmcp.TruncationMarker, got)
	})

	t.Run("uses a paragraph break that starts on the last rune", func(t *testing.T) {
		t.Parallel()

		got, cut := docsmcp.Truncate("aaaa\n\nbbbb", 5)

		require.True(t, cut)
		assert.Equal(t, "aaaa"+docsmcp.TruncationMarker, got)
	})

	t.Run("drops a lone newline before the marker", func(t *testing.T) {
		t.Parallel()

		got, cut := docsmcp.Truncate("aaaa\nbbbb", 5)

		require.True(t, cut)
		assert.Equal(t, "aaaa"+docsmcp.TruncationMarker, got)
		assert.NotContains(t, got, "\n\n\n")
	})

	t.Run("ignores paragraph breaks beyond the budget", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("z", 30) + "\n\n" + strings.Repeat("w", 30)

		got, cut := docsmcp.Truncate(content, 20)

		require.True(t, cut)
		assert.Equal(t, strings.Repeat("z", 20)+docsmcp.TruncationMarker, got)
	})

	t.Run("counts runes rather than bytes", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("é", 10)

		got, cut := docsmcp.Truncate(content, 10)
		assert.False(t, cut)
		assert.Equal(t, content, got)

		got, cut = docsmcp.Truncate(strings.Repeat("日本", 10), 5)
		require.True(t, cut)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, "日本日本日"+docsmcp.TruncationMarker, got)
	})

	t.Run("never exceeds budget plus marker", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("para ü\n\n", 400)
		for _, limit := range []int{0, 1, 7, 8, 99, 1000} {
			got, _ := docsmcp.Truncate(content, limit)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), limit+utf8.RuneCountInString(docsmcp.TruncationMarker))
		}
	})
}
