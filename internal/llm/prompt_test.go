package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursedeck/syllabus-tracker/internal/parser"
)

func TestBuildUserPromptTruncates(t *testing.T) {
	req := ExtractRequest{
		Text:     strings.Repeat("a", 5000),
		Course:   parser.CourseMetadata{Code: "CS 101", Name: "Intro", Term: "Fall 2025"},
		MaxChars: 0, // default 4000
	}

	prompt := BuildUserPrompt(req)
	assert.Contains(t, prompt, "Course code: CS 101")
	assert.Contains(t, prompt, "Term: Fall 2025")
	assert.Contains(t, prompt, "(truncated)")
	// body carries at most the limit plus the framing text
	assert.Less(t, len(prompt), 4300)
}

func TestBuildUserPromptShortTextUntouched(t *testing.T) {
	prompt := BuildUserPrompt(ExtractRequest{Text: "short syllabus"})
	assert.Contains(t, prompt, "short syllabus")
	assert.NotContains(t, prompt, "(truncated)")
}

func TestSchemaAcceptsWellFormedResponse(t *testing.T) {
	schema := BuildAssignmentsJSONSchema()
	good := []byte(`{"assignments":[
		{"title":"Quiz 1","dueDate":"2025-03-17","status":"pending","tags":["Quiz"]},
		{"title":"Reading response","dueDate":null}
	]}`)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, good))
}

func TestSchemaRejectsMalformedResponses(t *testing.T) {
	schema := BuildAssignmentsJSONSchema()
	bad := [][]byte{
		[]byte(`{"assignments":[{"dueDate":"2025-03-17"}]}`),           // missing title
		[]byte(`{"assignments":[{"title":""}]}`),                      // empty title
		[]byte(`{"assignments":[{"title":"A","dueDate":"3/17/25"}]}`), // non-ISO date
		[]byte(`{"assignments":[{"title":"A","status":"done"}]}`),     // bad status
		[]byte(`{"assignments":[{"title":"A","extra":true}]}`),        // unknown key
		[]byte(`{"assignments":{}}`),                                  // not an array
	}
	for _, b := range bad {
		require.Error(t, ValidateJSONAgainstSchema(schema, b), "payload %s", b)
	}
}

func TestValidateRejectsUnparsableJSON(t *testing.T) {
	assert.Error(t, ValidateJSONAgainstSchema(BuildAssignmentsJSONSchema(), []byte("{")))
}
