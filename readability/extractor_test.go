package readability_test

import (
	"testing"

	"github.com/fwojciec/codewiki"
	"github.com/fwojciec/codewiki/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements codewiki.Extractor at compile time.
var _ codewiki.Extractor = (*readability.Extractor)(nil)

const pageURL = "https://codewiki.google/github.com/acme/widget"

const wikiPage = `<!DOCTYPE html>
<html>
<head><title>acme/widget</title></head>
<body>
<nav><a href="/">Code Wiki</a><a href="/about">About</a></nav>
<article>
<h1>Widget</h1>
<h2>Overview</h2>
<p>Widget is a small library that renders configurable widgets for terminal dashboards.
It keeps layout and drawing separate so that each can be tested in isolation, and it
ships with a handful of ready-made widgets for common dashboard panels.</p>
<h2>Rendering pipeline</h2>
<p>Every frame is computed by the layout engine in
<a href="/github.com/acme/widget/blob/main/layout/engine.go">layout/engine.go</a>
and then handed to the drawing backend, which batches terminal writes per frame.</p>
<pre><code>func (e *Engine) Frame() *Frame { return e.compute() }</code></pre>
</article>
<footer>Copyright 2026 Example Corp</footer>
</body>
</html>`

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().Extract("", pageURL)

	require.Error(t, err)
	assert.Equal(t, codewiki.EINVALID, codewiki.ErrorCode(err))
}

func TestExtractor_RejectsInvalidPageURL(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().Extract(wikiPage, "://bad")

	require.Error(t, err)
	assert.Equal(t, codewiki.EINVALID, codewiki.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract(wikiPage, pageURL)

	require.NoError(t, err)
	assert.NotEmpty(t, result.Title)
}

func TestExtractor_KeepsArticleContent(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract(wikiPage, pageURL)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "renders configurable widgets")
	assert.Contains(t, result.ContentHTML, "func (e *Engine) Frame()")
	assert.NotContains(t, result.ContentHTML, "Copyright 2026 Example Corp")
}

func TestExtractor_ResolvesCodeLinks(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract(wikiPage, pageURL)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "https://codewiki.google/github.com/acme/widget/blob/main/layout/engine.go")
}
