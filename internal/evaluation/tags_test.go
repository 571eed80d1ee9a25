package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection(t *testing.T) {
	content := "prefix <strengths>\n1. Clear\n2. Concise\n</strengths> suffix"

	got := Section(content, "strengths")
	require.NotNil(t, got)
	assert.Equal(t, "1. Clear\n2. Concise", *got)

	assert.Nil(t, Section(content, "weaknesses"))
}

func TestSection_CaseInsensitive(t *testing.T) {
	got := Section("<STRENGTHS>body</STRENGTHS>", "strengths")
	require.NotNil(t, got)
	assert.Equal(t, "body", *got)
}

func TestParseScored(t *testing.T) {
	t.Run("justification then score", func(t *testing.T) {
		section := "Good reasoning overall.\nScore: 8"
		got := ParseScored(&section)

		require.NotNil(t, got.Score)
		assert.Equal(t, 8, *got.Score)
		require.NotNil(t, got.Justification)
		assert.Equal(t, "Good reasoning overall.", *got.Justification)
	})

	t.Run("last score wins", func(t *testing.T) {
		section := "Initially I'd say Score: 5, but on reflection.\nScore: 7"
		got := ParseScored(&section)

		require.NotNil(t, got.Score)
		assert.Equal(t, 7, *got.Score)
		require.NotNil(t, got.Justification)
		assert.Contains(t, *got.Justification, "Score: 5")
	})

	t.Run("score without justification", func(t *testing.T) {
		section := "Score: 10"
		got := ParseScored(&section)

		require.NotNil(t, got.Score)
		assert.Equal(t, 10, *got.Score)
		assert.Nil(t, got.Justification)
	})

	t.Run("justification without score", func(t *testing.T) {
		section := "No numeric verdict possible."
		got := ParseScored(&section)

		assert.Nil(t, got.Score)
		require.NotNil(t, got.Justification)
		assert.Equal(t, "No numeric verdict possible.", *got.Justification)
	})

	t.Run("nil section", func(t *testing.T) {
		got := ParseScored(nil)
		assert.Nil(t, got.Score)
		assert.Nil(t, got.Justification)
	})

	t.Run("empty section", func(t *testing.T) {
		section := "   "
		got := ParseScored(&section)
		assert.Nil(t, got.Score)
		assert.Nil(t, got.Justification)
	})
}

func TestParseList(t *testing.T) {
	t.Run("numbered and bulleted items", func(t *testing.T) {
		block := "1. First point\n2. Second point\n- Third point\n• Fourth point"
		assert.Equal(t, []string{"First point", "Second point", "Third point", "Fourth point"}, ParseList(&block))
	})

	t.Run("checkmarks survive", func(t *testing.T) {
		block := "✅ Matches expert phrasing\n❌ Missing concrete numbers"
		assert.Equal(t, []string{"✅ Matches expert phrasing", "❌ Missing concrete numbers"}, ParseList(&block))
	})

	t.Run("missing block", func(t *testing.T) {
		assert.Nil(t, ParseList(nil))
	})

	t.Run("empty block", func(t *testing.T) {
		block := "  \n "
		assert.Nil(t, ParseList(&block))
	})
}

func TestToInt(t *testing.T) {
	s := "Total: 78 points"
	got := ToInt(&s)
	require.NotNil(t, got)
	assert.Equal(t, 78, *got)

	empty := "no digits"
	assert.Nil(t, ToInt(&empty))
	assert.Nil(t, ToInt(nil))
}
