// Package parser implements the deterministic half of the syllabus
// analysis pipeline: course metadata extraction, date-anchored assignment
// scanning, due-date normalization, and keyword tagging. Nothing in this
// package performs I/O; it operates on extracted text only.
package parser

// Sentinel values for course metadata fields that could not be extracted.
// Downstream consumers expect non-empty strings, so absence is a fixed
// placeholder rather than an empty value.
const (
	UnknownCourseCode = "Unknown Course Code"
	UnknownCourseName = "Unknown Course Name"
	UnknownTerm       = "Unknown Term"
	NoDescription     = "No description available"
)

// CourseMetadata is the course header recovered from a syllabus.
// All fields are always populated; unmatched fields hold their sentinel.
type CourseMetadata struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Term        string `json:"term"`
	Description string `json:"description"`
}

// AssignmentRecord is one dated (or undated) piece of graded work
// discovered in a syllabus. DueDate is nil only when no date token could
// be resolved for the entry; such records are kept, not dropped.
type AssignmentRecord struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     *string  `json:"dueDate"` // YYYY-MM-DD
	Status      string   `json:"status"`  // always "pending" at extraction time
	Tags        []string `json:"tags"`
}

// ParsedSyllabusResult is the sole externally visible output of the
// pipeline. Assignments are ordered by discovery position in the text.
type ParsedSyllabusResult struct {
	Course      CourseMetadata     `json:"course"`
	Assignments []AssignmentRecord `json:"assignments"`
}
