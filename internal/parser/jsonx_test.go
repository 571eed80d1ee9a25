package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_TaggedObject(t *testing.T) {
	raw := `Here is the result:
<structured_json>
{"title": "Backend Engineer", "skills": ["Go"]}
</structured_json>`

	obj, errs := ExtractJSON(raw)

	require.NotNil(t, obj)
	assert.Empty(t, errs)
	assert.Equal(t, "Backend Engineer", obj["title"])
}

func TestExtractJSON_MissingTagsScansFullOutput(t *testing.T) {
	obj, errs := ExtractJSON(`{"title": "Backend Engineer"}`)

	require.NotNil(t, obj)
	assert.Contains(t, errs, "structured_json tags not found, scanning full output")
	assert.Equal(t, "Backend Engineer", obj["title"])
}

func TestExtractJSON_TrailingCommas(t *testing.T) {
	raw := `<structured_json>{"title": "X", "skills": ["Go", "SQL",],}</structured_json>`

	obj, errs := ExtractJSON(raw)

	require.NotNil(t, obj)
	assert.Contains(t, errs, "strict decode failed")
	assert.Equal(t, "X", obj["title"])
	assert.Equal(t, []interface{}{"Go", "SQL"}, obj["skills"])
}

func TestExtractJSON_SingleQuotes(t *testing.T) {
	raw := `<structured_json>{'title': 'X'}</structured_json>`

	obj, errs := ExtractJSON(raw)

	require.NotNil(t, obj)
	assert.Contains(t, errs, "decoded after single-quote repair")
	assert.Equal(t, "X", obj["title"])
}

func TestExtractJSON_SingleQuoteFlipSkippedWhenDoubleQuotesPresent(t *testing.T) {
	// The apostrophe must not be flipped into a double quote.
	raw := `<structured_json>{"title": "O'Brien's role"}</structured_json>`

	obj, errs := ExtractJSON(raw)

	require.NotNil(t, obj)
	assert.Empty(t, errs)
	assert.Equal(t, "O'Brien's role", obj["title"])
}

func TestExtractJSON_EmbeddedObjectInProse(t *testing.T) {
	raw := `Sure! The extracted record is {"title": "X", "note": "a } in a string"} and nothing else.`

	obj, errs := ExtractJSON(raw)

	require.NotNil(t, obj)
	assert.Contains(t, errs, "decoded from embedded object")
	assert.Equal(t, "a } in a string", obj["note"])
}

func TestExtractJSON_SmartQuotes(t *testing.T) {
	raw := "<structured_json>{“title”: “X”}</structured_json>"

	obj, _ := ExtractJSON(raw)

	require.NotNil(t, obj)
	assert.Equal(t, "X", obj["title"])
}

func TestExtractJSON_EmbeddedScanSkippedWhenTagsMatched(t *testing.T) {
	// The first-object scan is a fallback for untagged output only; tagged
	// content that fails every decode stage stays unrecovered.
	raw := `<structured_json>see {"title": "X"} above</structured_json>`

	obj, errs := ExtractJSON(raw)

	assert.Nil(t, obj)
	assert.Contains(t, errs, "no JSON object could be recovered")
}

func TestExtractJSON_TopLevelArrayRejected(t *testing.T) {
	obj, errs := ExtractJSON(`[1, 2, 3]`)

	assert.Nil(t, obj)
	assert.Contains(t, errs, "no JSON object could be recovered")
}

func TestExtractJSON_Unrecoverable(t *testing.T) {
	obj, errs := ExtractJSON("I could not produce any JSON, sorry.")

	assert.Nil(t, obj)
	assert.Contains(t, errs, "no JSON object could be recovered")
}

func TestExtractJSON_ControlCharactersStripped(t *testing.T) {
	raw := "<structured_json>{\"title\": \"X\x07Y\"}</structured_json>"

	obj, errs := ExtractJSON(raw)

	require.NotNil(t, obj)
	assert.Empty(t, errs)
	assert.Equal(t, "XY", obj["title"])
}
