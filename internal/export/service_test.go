package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportFilename(t *testing.T) {
	tests := []struct {
		code string
		term string
		want string
	}{
		{"WW-HUMN 340", "Spring 2025", "WW-HUMN-340_Spring-2025_schedule.xlsx"},
		{"CS 101", "", "CS-101_schedule.xlsx"},
		{"", "Fall 2024", "course_Fall-2024_schedule.xlsx"},
		{"Unknown Course Code", "Unknown Term", "Unknown-Course-Code_Unknown-Term_schedule.xlsx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, exportFilename(tt.code, tt.term))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("a", 20)
	got := truncate(long, 10)
	assert.Len(t, []rune(got), 10)
	assert.True(t, strings.HasSuffix(got, "…"))
}
