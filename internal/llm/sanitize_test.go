package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  ```json\n{}\n```  ", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(StripMarkdownFences([]byte(tt.in))))
		})
	}
}

func decodeAssignments(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var doc struct {
		Assignments []map[string]any `json:"assignments"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc.Assignments
}

func TestSanitizeRenamesKeySynonyms(t *testing.T) {
	raw := []byte(`{"assignments":[{"name":"Quiz 1","due_date":"2025-03-17"}]}`)

	out, dropped, err := NormalizeAndSanitizeAssignments(raw, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, dropped)

	items := decodeAssignments(t, out)
	require.Len(t, items, 1)
	assert.Equal(t, "Quiz 1", items[0]["title"])
	assert.Equal(t, "2025-03-17", items[0]["dueDate"])
	assert.Equal(t, "pending", items[0]["status"])
}

func TestSanitizeDropsItemsWithoutTitle(t *testing.T) {
	raw := []byte(`{"assignments":[{"title":"  "},{"dueDate":"2025-01-01"},{"title":"Essay 1"}]}`)

	out, _, err := NormalizeAndSanitizeAssignments(raw, nil)
	require.NoError(t, err)

	items := decodeAssignments(t, out)
	require.Len(t, items, 1)
	assert.Equal(t, "Essay 1", items[0]["title"])
}

func TestSanitizeNullsInvalidDueDates(t *testing.T) {
	raw := []byte(`{"assignments":[
		{"title":"A","dueDate":"March 17"},
		{"title":"B","dueDate":"null"},
		{"title":"C","dueDate":20250317},
		{"title":"D","dueDate":"2025-03-17"}
	]}`)

	out, _, err := NormalizeAndSanitizeAssignments(raw, nil)
	require.NoError(t, err)

	items := decodeAssignments(t, out)
	require.Len(t, items, 4)
	assert.Nil(t, items[0]["dueDate"])
	assert.Nil(t, items[1]["dueDate"])
	assert.Nil(t, items[2]["dueDate"])
	assert.Equal(t, "2025-03-17", items[3]["dueDate"])
}

func TestSanitizeForcesPendingStatus(t *testing.T) {
	raw := []byte(`{"assignments":[{"title":"A","status":"submitted"},{"title":"B"}]}`)

	out, _, err := NormalizeAndSanitizeAssignments(raw, nil)
	require.NoError(t, err)

	for _, item := range decodeAssignments(t, out) {
		assert.Equal(t, "pending", item["status"])
	}
}

func TestSanitizeCoercesTags(t *testing.T) {
	raw := []byte(`{"assignments":[
		{"title":"A","tags":["Quiz"," ",42,"Exam"]},
		{"title":"B","tags":"Quiz"}
	]}`)

	out, _, err := NormalizeAndSanitizeAssignments(raw, nil)
	require.NoError(t, err)

	items := decodeAssignments(t, out)
	assert.Equal(t, []any{"Quiz", "Exam"}, items[0]["tags"])
	_, present := items[1]["tags"]
	assert.False(t, present)
}

func TestSanitizeRemovesUnknownKeys(t *testing.T) {
	raw := []byte(`{"assignments":[{"title":"A","points":100,"week":3}]}`)

	out, dropped, err := NormalizeAndSanitizeAssignments(raw, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, dropped)

	items := decodeAssignments(t, out)
	_, hasPoints := items[0]["points"]
	_, hasWeek := items[0]["week"]
	assert.False(t, hasPoints)
	assert.False(t, hasWeek)
}

func TestSanitizeRejectsNonArrayAssignments(t *testing.T) {
	_, _, err := NormalizeAndSanitizeAssignments([]byte(`{"assignments":"nope"}`), nil)
	assert.Error(t, err)

	_, _, err = NormalizeAndSanitizeAssignments([]byte(`not json`), nil)
	assert.Error(t, err)
}

func TestSanitizedOutputPassesSchema(t *testing.T) {
	raw := []byte(`{"assignments":[
		{"name":"Quiz 1","due_date":"bad date","status":"done","tags":[1,2],"points":10}
	]}`)

	out, _, err := NormalizeAndSanitizeAssignments(raw, nil)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(BuildAssignmentsJSONSchema(), out))
}
