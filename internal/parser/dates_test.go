package parser

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDueDate(t *testing.T) {
	tests := []struct {
		name  string
		token string
		term  string
		want  string
	}{
		{"full two-digit year", "3/10/25", "Spring 2025", "2025-03-10"},
		{"full four-digit year", "12/1/2026", "Fall 2026", "2026-12-01"},
		{"year from term", "3/17", "Spring 2025", "2025-03-17"},
		{"year from term autumn", "10/2", "Autumn 2024", "2024-10-02"},
		{"already padded", "03/07/25", "", "2025-03-07"},
		{"single part rejected", "3", "Spring 2025", ""},
		{"empty rejected", "", "Spring 2025", ""},
		{"whitespace only rejected", "   ", "Spring 2025", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDueDate(tt.token, tt.term))
		})
	}
}

func TestNormalizeDueDateCurrentYearFallback(t *testing.T) {
	year := fmt.Sprintf("%d", time.Now().Year())

	assert.Equal(t, year+"-04-15", NormalizeDueDate("4/15", ""))
	assert.Equal(t, year+"-04-15", NormalizeDueDate("4/15", "Unknown Term"))
}

func TestNormalizeDueDateIsCalendarPermissive(t *testing.T) {
	// Out-of-range month/day values pass through untouched.
	assert.Equal(t, "2025-13-40", NormalizeDueDate("13/40", "Spring 2025"))
	assert.Equal(t, "2025-02-31", NormalizeDueDate("2/31/25", ""))
}

func TestNormalizeDueDateTrailingEmptyYear(t *testing.T) {
	// "3/10/" splits into three parts with an empty year; the term fills it.
	assert.Equal(t, "2025-03-10", NormalizeDueDate("3/10/", "Spring 2025"))
}
