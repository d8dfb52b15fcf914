package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/docsmcp"
	"github.com/fwojciec/docsmcp/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<h1>Title</h1><h2>Subtitle</h2><p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-python">from fastapi import FastAPI

app = FastAPI()
</code></pre>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```python")
		assert.Contains(t, md, "app = FastAPI()")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Parameter</th><th>Default</th></tr></thead>
<tbody><tr><td>allow_origins</td><td>()</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "allow_origins")
	})

	t.Run("keeps absolute links", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Visit <a href="https://example.com">Example</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("makes relative links absolute with a domain", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://fastapi.tiangolo.com/"))
		md, err := conv.Convert(`<p>See <a href="/tutorial/cors/">CORS</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[CORS](https://fastapi.tiangolo.com/tutorial/cors/)")
	})

	t.Run("drops permalink glyphs and surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("\n<h2>Install¶</h2>\n")

		require.NoError(t, err)
		assert.Equal(t, "## Install", md)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ")

		require.Error(t, err)
		assert.Equal(t, docsmcp.EINVALID, docsmcp.ErrorCode(err))
	})
}
