package trafilatura_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docsum"
	"github.com/fwojciec/docsum/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	e := trafilatura.NewExtractor()

	t.Run("extracts article content and drops navigation", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Release Notes</title></head><body>
<nav><a href="/">Home</a> <a href="/docs">Docs</a></nav>
<article>
<h1>Release Notes</h1>
<p>This release improves the ranking pipeline substantially. The iteration loop now converges faster on long documents.</p>
<p>Several defects in sentence splitting were corrected. Abbreviations no longer break sentences apart.</p>
</article>
<footer>Copyright 2024</footer>
</body></html>`

		text, err := e.Extract(context.Background(), "notes.html", []byte(html))

		require.NoError(t, err)
		assert.Contains(t, text, "ranking pipeline")
		assert.Contains(t, text, "sentence splitting")
	})

	t.Run("returns invalid for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := e.Extract(context.Background(), "empty.html", nil)

		require.Error(t, err)
		assert.Equal(t, docsum.EINVALID, docsum.ErrorCode(err))
	})

	t.Run("fails on content-free pages", func(t *testing.T) {
		t.Parallel()

		html := "<html><body></body></html>"

		_, err := e.Extract(context.Background(), "blank.html", []byte(html))

		require.Error(t, err)
		// The extractor either fails extraction outright or finds no
		// content; both map to application error codes.
		code := docsum.ErrorCode(err)
		assert.True(t, code == docsum.EINVALID || code == docsum.EINSUFFICIENT,
			"unexpected code %q", code)
	})
}
