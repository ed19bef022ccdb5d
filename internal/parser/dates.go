package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var termYearRe = regexp.MustCompile(`\b(20\d{2})\b`)

// NormalizeDueDate converts a raw M/D or M/D/Y token into a YYYY-MM-DD
// string. The courseTerm (e.g. "Spring 2026") supplies the year when the
// token omits one; failing that, the current calendar year is used.
// Returns "" when the token has fewer than two slash-separated parts.
//
// By contract the month and day values are NOT checked for calendar
// validity: "13/40" normalizes to "<year>-13-40". Existing fixtures rely
// on this leniency.
func NormalizeDueDate(rawToken, courseTerm string) string {
	parts := strings.Split(strings.TrimSpace(rawToken), "/")
	if len(parts) < 2 {
		return ""
	}

	month := pad2(strings.TrimSpace(parts[0]))
	day := pad2(strings.TrimSpace(parts[1]))

	var year string
	if len(parts) >= 3 && strings.TrimSpace(parts[2]) != "" {
		year = strings.TrimSpace(parts[2])
		if len(year) == 2 {
			year = "20" + year
		}
	} else if m := termYearRe.FindString(courseTerm); m != "" {
		year = m
	} else {
		year = fmt.Sprintf("%d", time.Now().Year())
	}

	return year + "-" + month + "-" + day
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
