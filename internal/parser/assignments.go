package parser

import (
	"regexp"
	"strings"

	"github.com/coursedeck/syllabus-tracker/constants"
)

const minTitleLen = 3 // titles must exceed this after date-token cleanup

var (
	leadingDateRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2}(?:/\d{2,4})?)\b`)
	bareDateRe    = regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`)
	multiSpaceRe  = regexp.MustCompile(`\s+`)

	assignmentKeywords = []string{
		"module", "assignment", "discussion", "quiz", "exam",
		"essay", "project", "worksheet", "lab", "homework",
	}
)

// ExtractAssignments scans syllabus text line-by-line for assignment
// entries, without calling any external service. Two strategies cover the
// common layouts:
//
//   - Strategy A: every assignment line starts with its own date token
//     ("3/10/25 Module 1 Discussion").
//   - Strategy B: a date heading is followed by keyword-bearing bullet
//     lines underneath it; a single date cursor carries forward.
//
// Strategy A's output takes precedence: B runs only when A finds nothing,
// so the same lines are never emitted twice. Returns records in discovery
// order; may be empty.
func ExtractAssignments(text, courseTerm string) []AssignmentRecord {
	lines := strings.Split(text, "\n")

	if recs := scanInlineDated(lines, courseTerm); len(recs) > 0 {
		return recs
	}
	return scanStructuredList(lines, courseTerm)
}

// scanInlineDated implements Strategy A: a leading date token followed on
// the same line by keyword-bearing text.
func scanInlineDated(lines []string, courseTerm string) []AssignmentRecord {
	var recs []AssignmentRecord
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		m := leadingDateRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rest := strings.TrimSpace(line[len(m[1]):])
		if !containsAnyFold(rest, assignmentKeywords) {
			continue
		}
		if rec, ok := buildRecord(rest, m[1], courseTerm); ok {
			recs = append(recs, rec)
		}
	}
	return recs
}

// scanStructuredList implements Strategy B. The date cursor is local to
// this one scan; it must never outlive an invocation.
func scanStructuredList(lines []string, courseTerm string) []AssignmentRecord {
	var recs []AssignmentRecord
	cursor := ""
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if m := bareDateRe.FindString(line); m != "" {
			cursor = m
		}
		if len(line) <= 10 || !containsAnyFold(line, assignmentKeywords) {
			continue
		}
		if rec, ok := buildRecord(line, cursor, courseTerm); ok {
			recs = append(recs, rec)
		}
	}
	return recs
}

// buildRecord cleans a candidate title, applies the minimum-length rule,
// and assembles a pending AssignmentRecord. Reports false for candidates
// that must be discarded.
func buildRecord(candidate, dateToken, courseTerm string) (AssignmentRecord, bool) {
	title := CleanTitle(candidate)
	if len(title) <= minTitleLen {
		return AssignmentRecord{}, false
	}

	var due *string
	if dateToken != "" {
		if iso := NormalizeDueDate(dateToken, courseTerm); iso != "" {
			due = &iso
		}
	}

	return AssignmentRecord{
		Title:       title,
		Description: DescribeTitle(title),
		DueDate:     due,
		Status:      string(constants.StatusPending),
		Tags:        TagsForTitle(title),
	}, true
}

// CleanTitle strips a leading date token and list markers from a raw
// assignment line and collapses interior whitespace.
func CleanTitle(s string) string {
	s = strings.TrimSpace(s)
	if m := leadingDateRe.FindStringSubmatch(s); m != nil {
		s = s[len(m[1]):]
	}
	s = strings.Trim(s, " \t-–—:.*•")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
