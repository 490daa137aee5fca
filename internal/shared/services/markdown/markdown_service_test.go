package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewService()

	t.Run("renders basic markdown", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("# Impact\n\nAttacker can **read** any row.")
		require.NoError(t, err)

		assert.Contains(t, out, "<h1")
		assert.Contains(t, out, "<strong>read</strong>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("hello <script>alert(1)</script> world")
		require.NoError(t, err)

		// The sanitizer drops the element but keeps its text content.
		assert.NotContains(t, out, "<script")
		assert.NotContains(t, out, "</script>")
		assert.Contains(t, out, "hello")
	})

	t.Run("strips inline event handlers", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized(`<img src="x" onerror="alert(1)">`)
		require.NoError(t, err)

		assert.NotContains(t, out, "onerror")
	})
}
