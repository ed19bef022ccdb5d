package llm

import (
	"context"

	"github.com/coursedeck/syllabus-tracker/internal/parser"
)

// AssignmentFields is the normalized per-assignment shape we want from the LLM.
type AssignmentFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     *string  `json:"dueDate"` // YYYY-MM-DD or null
	Status      string   `json:"status,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// AssignmentList is the top-level JSON object the model must return.
type AssignmentList struct {
	Assignments []AssignmentFields `json:"assignments"`
}

// ExtractRequest carries the syllabus text plus known course context into
// the fallback extractor.
type ExtractRequest struct {
	Text   string
	Course parser.CourseMetadata

	// MaxChars bounds how much syllabus text goes into the prompt.
	// Zero means the default (4000).
	MaxChars int
}

// FallbackExtractor is the interface the pipeline depends on. It is
// invoked only when deterministic extraction returns an empty set.
// Implementations return the parsed assignments plus the raw JSON payload
// for audit storage.
type FallbackExtractor interface {
	ExtractAssignments(ctx context.Context, req ExtractRequest) ([]AssignmentFields, []byte, error)
}
