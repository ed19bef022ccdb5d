package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAssignmentsInlineDated(t *testing.T) {
	text := "3/10/25 Module 1 Discussion\n3/17 Quiz 1\n"

	recs := ExtractAssignments(text, "Spring 2025")
	require.Len(t, recs, 2)

	assert.Equal(t, "Module 1 Discussion", recs[0].Title)
	require.NotNil(t, recs[0].DueDate)
	assert.Equal(t, "2025-03-10", *recs[0].DueDate)
	assert.Equal(t, []string{"Discussion"}, recs[0].Tags)
	assert.Equal(t, "Discussion activity: Module 1 Discussion", recs[0].Description)
	assert.Equal(t, "pending", recs[0].Status)

	assert.Equal(t, "Quiz 1", recs[1].Title)
	require.NotNil(t, recs[1].DueDate)
	assert.Equal(t, "2025-03-17", *recs[1].DueDate)
	assert.Equal(t, []string{"Quiz"}, recs[1].Tags)
}

func TestExtractAssignmentsStructuredList(t *testing.T) {
	text := `Week of 9/8
- Discussion: Early Renaissance artists
- Worksheet on chapter two
Week of 9/15
- Quiz covering chapters 1-2
`
	recs := ExtractAssignments(text, "Fall 2025")
	require.Len(t, recs, 3)

	require.NotNil(t, recs[0].DueDate)
	assert.Equal(t, "2025-09-08", *recs[0].DueDate)
	assert.Equal(t, "Discussion: Early Renaissance artists", recs[0].Title)

	// The date cursor carries forward to every line under the heading.
	require.NotNil(t, recs[1].DueDate)
	assert.Equal(t, "2025-09-08", *recs[1].DueDate)

	// ...and advances at the next heading.
	require.NotNil(t, recs[2].DueDate)
	assert.Equal(t, "2025-09-15", *recs[2].DueDate)
	assert.Equal(t, []string{"Quiz"}, recs[2].Tags)
}

func TestInlineDatedSuppressesStructuredScan(t *testing.T) {
	// One inline-dated hit means the structured scan never runs, so the
	// keyword bullet underneath is not emitted a second time.
	text := `3/10/25 Module 1 Discussion
Week of 9/8
- Worksheet on chapter two
`
	recs := ExtractAssignments(text, "Spring 2025")
	require.Len(t, recs, 1)
	assert.Equal(t, "Module 1 Discussion", recs[0].Title)
}

func TestExtractAssignmentsEmptyWhenNothingMatches(t *testing.T) {
	recs := ExtractAssignments("Office hours Tuesday\nGrading policy\n", "Fall 2025")
	assert.Empty(t, recs)
}

func TestInlineDatedRequiresKeyword(t *testing.T) {
	// A dated line without an assignment keyword is not an assignment.
	recs := ExtractAssignments("3/10/25 Spring break begins\n", "Spring 2025")
	assert.Empty(t, recs)
}

func TestStructuredListLengthRule(t *testing.T) {
	// Keyword lines of 10 chars or fewer are ignored by the structured scan.
	recs := ExtractAssignments("9/8\nQuiz 1\nQuiz covering chapter one\n", "Fall 2025")
	require.Len(t, recs, 1)
	assert.Equal(t, "Quiz covering chapter one", recs[0].Title)
}

func TestShortTitlesDiscarded(t *testing.T) {
	// After cleanup "Lab" is 3 chars, which does not exceed the minimum.
	recs := ExtractAssignments("3/10/25 - Lab\n", "Spring 2025")
	assert.Empty(t, recs)
}

func TestUndatedStructuredEntriesKept(t *testing.T) {
	// Keyword lines before any date heading produce records with nil due date.
	recs := ExtractAssignments("Discussion participation is graded weekly\n", "Fall 2025")
	require.Len(t, recs, 1)
	assert.Nil(t, recs[0].DueDate)
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"leading date stripped", "3/10/25 Module 1 Discussion", "Module 1 Discussion"},
		{"bullet and dash stripped", "- Quiz 1:", "Quiz 1"},
		{"interior whitespace collapsed", "Module   1\tDiscussion", "Module 1 Discussion"},
		{"asterisk marker", "* Final Exam *", "Final Exam"},
		{"untouched", "Essay Draft", "Essay Draft"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.in))
		})
	}
}

func TestExtractAssignmentsDeterministic(t *testing.T) {
	text := "3/10/25 Module 1 Discussion\n3/17 Quiz 1\n"
	a := ExtractAssignments(text, "Spring 2025")
	b := ExtractAssignments(text, "Spring 2025")
	assert.Equal(t, a, b)
}
