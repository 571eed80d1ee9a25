package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPaste_PlainTextPassesThrough(t *testing.T) {
	cleaner := NewPasteCleaner()

	input := "About Acme\nWe build things > fast."
	out, err := cleaner.CleanPaste(input)

	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestCleanPaste_PreservesLineStructure(t *testing.T) {
	cleaner := NewPasteCleaner()

	input := `<div><h2>Responsibilities</h2><ul><li>Design APIs</li><li>Review code</li></ul></div>`
	out, err := cleaner.CleanPaste(input)

	require.NoError(t, err)
	assert.Contains(t, out, "Responsibilities\n")
	assert.Contains(t, out, "Design APIs\n")
	assert.Contains(t, out, "Review code")
}

func TestCleanPaste_RemovesNoiseTags(t *testing.T) {
	cleaner := NewPasteCleaner()

	input := `<html><body><script>alert(1)</script><p>Real content</p><footer>Copyright</footer></body></html>`
	out, err := cleaner.CleanPaste(input)

	require.NoError(t, err)
	assert.Contains(t, out, "Real content")
	assert.NotContains(t, out, "alert(1)")
	assert.NotContains(t, out, "Copyright")
}

func TestCleanPaste_CollapsesWhitespace(t *testing.T) {
	cleaner := NewPasteCleaner()

	input := "<p>many     spaces</p><br><br><br><p>next</p>"
	out, err := cleaner.CleanPaste(input)

	require.NoError(t, err)
	assert.Contains(t, out, "many spaces")
	assert.NotContains(t, out, "\n\n\n")
}

func TestLooksLikeHTML(t *testing.T) {
	cleaner := NewPasteCleaner()

	assert.True(t, cleaner.LooksLikeHTML("<p>hello</p>"))
	assert.True(t, cleaner.LooksLikeHTML("text with <br/> break"))
	assert.False(t, cleaner.LooksLikeHTML("2 < 3 and 4 > 1"))
	assert.False(t, cleaner.LooksLikeHTML("plain posting text"))
}
