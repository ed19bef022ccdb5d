package parser

import "strings"

// tagRule maps a title keyword to its tag and description template.
// Scan order is fixed; every matching keyword contributes its tag.
type tagRule struct {
	keyword  string
	tag      string
	template string // description prefix, applied for the FIRST match only
}

var tagRules = []tagRule{
	{"discussion", "Discussion", "Discussion activity"},
	{"quiz", "Quiz", "Quiz assessment"},
	{"exam", "Exam", "Exam assessment"},
	{"essay", "Essay", "Essay assignment"},
	{"project", "Project", "Project work"},
	{"lab", "Lab", "Lab exercise"},
	{"worksheet", "Worksheet", "Worksheet activity"},
	{"homework", "Homework", "Homework assignment"},
}

// TagsForTitle derives category tags from an assignment title by
// case-insensitive substring matching. Multiple keywords all contribute,
// in scan order. When nothing matches and the title mentions
// "assignment", a single generic Assignment tag is emitted.
func TagsForTitle(title string) []string {
	lower := strings.ToLower(title)
	var tags []string
	for _, r := range tagRules {
		if strings.Contains(lower, r.keyword) {
			tags = append(tags, r.tag)
		}
	}
	if len(tags) == 0 && strings.Contains(lower, "assignment") {
		tags = append(tags, "Assignment")
	}
	return tags
}

// DescribeTitle produces a one-line description for an assignment,
// following the same keyword priority as tagging:
// "Quiz assessment: {title}", defaulting to "Assignment: {title}".
func DescribeTitle(title string) string {
	lower := strings.ToLower(title)
	for _, r := range tagRules {
		if strings.Contains(lower, r.keyword) {
			return r.template + ": " + title
		}
	}
	return "Assignment: " + title
}
