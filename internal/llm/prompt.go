package llm

import (
	"strconv"
	"strings"
)

// DefaultMaxPromptChars bounds how much syllabus text is sent to the model.
const DefaultMaxPromptChars = 4000

// BuildSystemPrompt composes the system message: strict JSON-only output,
// no invented assignments, dates in ISO form or null.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a syllabus parser. Return ONLY a JSON object that matches the provided JSON Schema.",
		"The object has a single key 'assignments' holding an array of assignment objects.",
		"Only include assignments that are verifiably present in the supplied syllabus text.",
		"NEVER invent assignments, titles, or due dates that do not appear in the text.",
		"Use ISO-8601 dates (YYYY-MM-DD) for 'dueDate'; use null when the text gives no date for an assignment.",
		"'status' is always the literal string \"pending\".",
		"'tags' is an array of short category labels such as Discussion, Quiz, Exam, Essay, Project, Lab, Worksheet, Homework, Assignment.",
		"For 'description', write one short line summarizing the assignment; do not copy long passages.",
		"Do not wrap the JSON in markdown fences or add commentary.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages course context plus the first MaxChars of the
// syllabus text.
func BuildUserPrompt(req ExtractRequest) string {
	limit := req.MaxChars
	if limit <= 0 {
		limit = DefaultMaxPromptChars
	}

	var b strings.Builder
	b.WriteString("Course code: ")
	b.WriteString(req.Course.Code)
	b.WriteString("\nCourse name: ")
	b.WriteString(req.Course.Name)
	b.WriteString("\nTerm: ")
	b.WriteString(req.Course.Term)
	b.WriteString("\n\nSyllabus text (first ~")
	b.WriteString(strconv.Itoa(limit))
	b.WriteString(" chars):\n")

	text := req.Text
	if len(text) > limit {
		b.WriteString(text[:limit])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(text)
	}
	return b.String()
}

// BuildAssignmentsJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// as a generic map. We pass it to the model as a structured output
// constraint and also use it locally to validate the response.
func BuildAssignmentsJSONSchema() map[string]any {
	assignment := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title":       map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string"},
			"dueDate": map[string]any{
				"type":    []any{"string", "null"},
				"pattern": `^\d{4}-\d{2}-\d{2}$`,
			},
			"status": map[string]any{"type": "string", "enum": []any{"pending"}},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"title"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"assignments": map[string]any{
				"type":  "array",
				"items": assignment,
			},
		},
		"required": []string{"assignments"},
	}
}
