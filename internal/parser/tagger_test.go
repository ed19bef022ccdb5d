package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagsForTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{"single keyword", "Module 1 Discussion", []string{"Discussion"}},
		{"case insensitive", "FINAL EXAM", []string{"Exam"}},
		{"multiple keywords in scan order", "Lab Quiz 3", []string{"Quiz", "Lab"}},
		{"generic fallback", "Reading Assignment 2", []string{"Assignment"}},
		{"no match", "Week 3 Reading", nil},
		{"substring match", "Essays on Modernism", []string{"Essay"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TagsForTitle(tt.title))
		})
	}
}

func TestTagsGenericOnlyWhenNothingElseMatches(t *testing.T) {
	// A specific keyword suppresses the generic Assignment tag even when
	// the word "assignment" is present.
	assert.Equal(t, []string{"Homework"}, TagsForTitle("Homework Assignment 4"))
}

func TestDescribeTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Module 1 Discussion", "Discussion activity: Module 1 Discussion"},
		{"Quiz 1", "Quiz assessment: Quiz 1"},
		{"Midterm Exam", "Exam assessment: Midterm Exam"},
		{"Comparison Essay", "Essay assignment: Comparison Essay"},
		{"Group Project Proposal", "Project work: Group Project Proposal"},
		{"Lab 4", "Lab exercise: Lab 4"},
		{"Chapter 2 Worksheet", "Worksheet activity: Chapter 2 Worksheet"},
		{"Homework 5", "Homework assignment: Homework 5"},
		{"Week 3 Reading", "Assignment: Week 3 Reading"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DescribeTitle(tt.title), "title %q", tt.title)
	}
}

func TestDescribeTitleFirstKeywordWins(t *testing.T) {
	// "discussion" outranks "quiz" in the fixed scan order.
	assert.Equal(t, "Discussion activity: Discussion Quiz", DescribeTitle("Discussion Quiz"))
}
