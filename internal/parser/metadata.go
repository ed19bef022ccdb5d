package parser

import (
	"regexp"
	"strings"
)

const (
	codeScanWindow     = 20 // lines inspected for a course code
	nameScanWindow     = 10 // lines inspected for the fallback name rule
	termScanWindow     = 30 // lines inspected for a term
	descLookahead      = 4  // lines inspected after a description keyword
	minNameResidueLen  = 5
	maxNameResidueLen  = 100
	minFallbackNameLen = 10
	maxFallbackNameLen = 100
	minDescriptionLen  = 20
	maxDescriptionLen  = 500
)

var (
	// 2-4 letters, optional hyphenated extension, 3-4 digit number with
	// optional trailing letter: "CS 101", "WW-HUMN 340", "BIOL2200A".
	courseCodeRe = regexp.MustCompile(`[A-Z]{2,4}(-[A-Z]+)?\s*\d{3,4}[A-Z]?`)

	termRe = regexp.MustCompile(`(?i)\b(spring|summer|fall|autumn|winter|january|february|march|april|may|june|july|august|september|october|november|december)\s+(20\d{2})\b`)

	descriptionKeywords = []string{"description", "overview", "course goals", "learning outcomes"}
)

// ExtractCourseMetadata scans extracted syllabus text for the course code,
// name, term, and description. The four scans are independent; a field
// that cannot be matched receives its sentinel value. This function never
// fails.
func ExtractCourseMetadata(text string) CourseMetadata {
	lines := nonEmptyLines(text)

	meta := CourseMetadata{
		Code:        UnknownCourseCode,
		Name:        UnknownCourseName,
		Term:        UnknownTerm,
		Description: NoDescription,
	}

	meta.Code, meta.Name = extractCodeAndName(lines)
	if term := extractTerm(lines); term != "" {
		meta.Term = term
	}
	if desc := extractDescription(lines); desc != "" {
		meta.Description = desc
	}
	return meta
}

func extractCodeAndName(lines []string) (code, name string) {
	code = UnknownCourseCode
	name = UnknownCourseName

	window := lines
	if len(window) > codeScanWindow {
		window = window[:codeScanWindow]
	}

	var codeLine string
	for _, line := range window {
		if m := courseCodeRe.FindString(line); m != "" {
			code = strings.TrimSpace(m)
			codeLine = line
			break
		}
	}

	// The course name usually shares a line with the code:
	// "WW-HUMN 340 Introduction to Humanities".
	if codeLine != "" {
		residue := strings.Replace(codeLine, code, "", 1)
		residue = strings.Trim(residue, " \t-–:|,.")
		if n := len(residue); n >= minNameResidueLen && n <= maxNameResidueLen {
			return code, residue
		}
	}

	// Fallback: first plausible standalone title line near the top.
	fallbackWindow := lines
	if len(fallbackWindow) > nameScanWindow {
		fallbackWindow = fallbackWindow[:nameScanWindow]
	}
	for _, line := range fallbackWindow {
		n := len(line)
		if n < minFallbackNameLen || n > maxFallbackNameLen {
			continue
		}
		if strings.Contains(line, "University") || strings.Contains(line, "College") {
			continue
		}
		return code, line
	}
	return code, name
}

func extractTerm(lines []string) string {
	window := lines
	if len(window) > termScanWindow {
		window = window[:termScanWindow]
	}
	for _, line := range window {
		if m := termRe.FindStringSubmatch(line); m != nil {
			return titleCase(m[1]) + " " + m[2]
		}
	}
	return ""
}

func extractDescription(lines []string) string {
	for i, line := range lines {
		if !containsAnyFold(line, descriptionKeywords) {
			continue
		}
		end := i + 1 + descLookahead
		if end > len(lines) {
			end = len(lines)
		}
		for _, candidate := range lines[i+1 : end] {
			if n := len(candidate); n >= minDescriptionLen && n <= maxDescriptionLen {
				return candidate
			}
		}
		// First keyword line wins even when no candidate qualifies.
		return ""
	}
	return ""
}

func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

func containsAnyFold(s string, subs []string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
