package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = `Walden University
WW-HUMN 340 Introduction to the Humanities
Spring 2025

Course Description
This course surveys the visual arts, music, and literature of the modern era.
`

func TestExtractCourseMetadataFullHeader(t *testing.T) {
	meta := ExtractCourseMetadata(sampleHeader)

	assert.Equal(t, "WW-HUMN 340", meta.Code)
	assert.Equal(t, "Introduction to the Humanities", meta.Name)
	assert.Equal(t, "Spring 2025", meta.Term)
	assert.Equal(t, "This course surveys the visual arts, music, and literature of the modern era.", meta.Description)
}

func TestExtractCourseMetadataSentinels(t *testing.T) {
	meta := ExtractCourseMetadata("just some text\nno structure here at all\n")

	assert.Equal(t, UnknownCourseCode, meta.Code)
	assert.Equal(t, UnknownTerm, meta.Term)
	assert.Equal(t, NoDescription, meta.Description)
	// "just some text" is a plausible standalone title (>=10 chars).
	assert.Equal(t, "just some text", meta.Name)
}

func TestExtractCourseMetadataEmptyInput(t *testing.T) {
	meta := ExtractCourseMetadata("")

	assert.Equal(t, UnknownCourseCode, meta.Code)
	assert.Equal(t, UnknownCourseName, meta.Name)
	assert.Equal(t, UnknownTerm, meta.Term)
	assert.Equal(t, NoDescription, meta.Description)
}

func TestExtractCodeVariants(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"space separated", "CS 101 Intro to Computing", "CS 101"},
		{"hyphenated prefix", "WW-HUMN 340 Humanities", "WW-HUMN 340"},
		{"no space", "BIOL2200A Cell Biology", "BIOL2200A"},
		{"four digit", "MATH 1010 College Algebra", "MATH 1010"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := ExtractCourseMetadata(tt.line + "\n")
			assert.Equal(t, tt.want, meta.Code)
		})
	}
}

func TestCourseCodeWindowIsTwentyLines(t *testing.T) {
	padding := strings.Repeat("filler line text here\n", 20)
	meta := ExtractCourseMetadata(padding + "CS 101 Intro to Computing\n")

	assert.Equal(t, UnknownCourseCode, meta.Code)
}

func TestCourseNameResidueRules(t *testing.T) {
	// Residue shorter than 5 chars falls through to the standalone rule.
	meta := ExtractCourseMetadata("CS 101-B\nIntroduction to Programming\n")
	require.Equal(t, "CS 101", meta.Code)
	assert.Equal(t, "Introduction to Programming", meta.Name)

	// Standalone rule skips institution lines.
	meta = ExtractCourseMetadata("CS 101\nState University Online\nIntroduction to Programming\n")
	assert.Equal(t, "Introduction to Programming", meta.Name)
}

func TestExtractTermVariants(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"Fall 2024 Section 002", "Fall 2024"},
		{"sPrInG 2025", "Spring 2025"},
		{"Starts January 2026", "January 2026"},
		{"Term: AUTUMN 2023", "Autumn 2023"},
	}
	for _, tt := range tests {
		meta := ExtractCourseMetadata(tt.line + "\n")
		assert.Equal(t, tt.want, meta.Term, "line %q", tt.line)
	}
}

func TestExtractTermRejectsBareYear(t *testing.T) {
	meta := ExtractCourseMetadata("Copyright 2025\n")
	assert.Equal(t, UnknownTerm, meta.Term)
}

func TestExtractDescriptionFirstKeywordWins(t *testing.T) {
	// The first keyword line has no qualifying follower within 4 lines;
	// a later "Overview" section must NOT be consulted.
	text := `Course Description
short
also
tiny
no
Overview
This longer paragraph would qualify if the scan reached this far down.
`
	meta := ExtractCourseMetadata(text)
	assert.Equal(t, NoDescription, meta.Description)
}

func TestExtractDescriptionLengthBounds(t *testing.T) {
	long := strings.Repeat("x", 501)
	text := "Overview\n" + long + "\nA proper course description of reasonable length sits here.\n"
	meta := ExtractCourseMetadata(text)
	assert.Equal(t, "A proper course description of reasonable length sits here.", meta.Description)
}
