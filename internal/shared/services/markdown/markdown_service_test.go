package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("**Pipe** burst near <script>alert(1)</script> the MRF")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Pipe</strong>")
	assert.NotContains(t, out, "<script>")

	out, err = svc.ToHTMLSanitized("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSanitizeText(t *testing.T) {
	svc := NewMarkdownService()

	assert.Equal(t, "Leaking pipe", svc.SanitizeText("  <b>Leaking</b> pipe "))
	assert.Equal(t, "", svc.SanitizeText("<img src=x onerror=alert(1)>"))
}

func TestSanitizeText_KeepsPlainEntities(t *testing.T) {
	svc := NewMarkdownService()

	assert.Equal(t, "Bins & lids", svc.SanitizeText("Bins & lids"))
	assert.Equal(t, `Purok "3"`, svc.SanitizeText(`Purok "3"`))
}
