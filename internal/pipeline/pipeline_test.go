package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursedeck/syllabus-tracker/constants"
	"github.com/coursedeck/syllabus-tracker/internal/common"
	"github.com/coursedeck/syllabus-tracker/internal/extract"
	"github.com/coursedeck/syllabus-tracker/internal/llm"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(_ context.Context, _ extract.RawDocument) (extract.ExtractedText, error) {
	if f.err != nil {
		return extract.ExtractedText{}, f.err
	}
	return extract.ExtractedText{Content: f.text, Format: constants.TXT}, nil
}

type fakeFallback struct {
	fields      []llm.AssignmentFields
	err         error
	calls       int
	hadDeadline bool
}

func (f *fakeFallback) ExtractAssignments(ctx context.Context, _ llm.ExtractRequest) ([]llm.AssignmentFields, []byte, error) {
	f.calls++
	_, f.hadDeadline = ctx.Deadline()
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.fields, nil, nil
}

const sampleSyllabus = `Walden University
WW-HUMN 340 Introduction to the Humanities
Spring 2025

Course Description
This course surveys the visual arts, music, and literature of the modern era.

Schedule
3/10/25 Module 1 Discussion
3/17 Quiz 1
`

func TestRunEndToEnd(t *testing.T) {
	fb := &fakeFallback{}
	p := New(nil, Config{}, &fakeExtractor{text: sampleSyllabus}, fb)

	res, err := p.Run(context.Background(), extract.RawDocument{Filename: "syllabus.txt"})
	require.NoError(t, err)

	assert.Equal(t, "WW-HUMN 340", res.Course.Code)
	assert.Equal(t, "Spring 2025", res.Course.Term)

	require.Len(t, res.Assignments, 2)
	first := res.Assignments[0]
	assert.Equal(t, "Module 1 Discussion", first.Title)
	require.NotNil(t, first.DueDate)
	assert.Equal(t, "2025-03-10", *first.DueDate)
	assert.Equal(t, []string{"Discussion"}, first.Tags)
	assert.Equal(t, "pending", first.Status)

	second := res.Assignments[1]
	assert.Equal(t, "Quiz 1", second.Title)
	require.NotNil(t, second.DueDate)
	assert.Equal(t, "2025-03-17", *second.DueDate)
	assert.Equal(t, []string{"Quiz"}, second.Tags)

	// The deterministic scan found results, so the AI stage never ran.
	assert.Equal(t, 0, fb.calls)
}

func TestRunExtractionErrorPropagates(t *testing.T) {
	wantErr := errors.New("boom")
	p := New(nil, Config{}, &fakeExtractor{err: wantErr}, nil)

	_, err := p.Run(context.Background(), extract.RawDocument{Filename: "x.txt"})
	assert.ErrorIs(t, err, wantErr)
}

func TestRunRejectsTooShortText(t *testing.T) {
	p := New(nil, Config{}, &fakeExtractor{text: "tiny"}, nil)

	_, err := p.Run(context.Background(), extract.RawDocument{Filename: "x.txt"})
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
}

func TestRunTextMinLengthConfigurable(t *testing.T) {
	p := New(nil, Config{MinTextLength: 10}, nil, nil)

	_, err := p.RunText(context.Background(), "short")
	assert.ErrorIs(t, err, common.ErrExtractionFailed)

	res, err := p.RunText(context.Background(), "long enough for the configured threshold")
	require.NoError(t, err)
	assert.NotNil(t, res.Assignments)
}

func TestFallbackRunsOnlyWhenScanEmpty(t *testing.T) {
	due := "2025-04-01"
	fb := &fakeFallback{fields: []llm.AssignmentFields{
		{Title: "Reflection essay on modernism", DueDate: &due, Tags: []string{"Essay"}},
	}}
	text := "Course policies and expectations are described in great detail here, with no schedule at all."
	p := New(nil, Config{MinTextLength: 10}, nil, fb)

	res, err := p.RunText(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, 1, fb.calls)
	assert.True(t, fb.hadDeadline, "fallback call must carry a deadline")

	require.Len(t, res.Assignments, 1)
	got := res.Assignments[0]
	assert.Equal(t, "Reflection essay on modernism", got.Title)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2025-04-01", *got.DueDate)
	assert.Equal(t, "pending", got.Status)
}

func TestFallbackSoftFailsToEmpty(t *testing.T) {
	fb := &fakeFallback{err: errors.New("service unavailable")}
	text := "Course policies and expectations are described in great detail here, with no schedule at all."
	p := New(nil, Config{MinTextLength: 10, AITimeout: time.Second}, nil, fb)

	res, err := p.RunText(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, 1, fb.calls)
	assert.NotNil(t, res.Assignments)
	assert.Empty(t, res.Assignments)
	// Course metadata still comes through.
	assert.NotEmpty(t, res.Course.Code)
}

func TestFallbackDisabledWhenNil(t *testing.T) {
	text := "Course policies and expectations are described in great detail here, with no schedule at all."
	p := New(nil, Config{MinTextLength: 10}, nil, nil)

	res, err := p.RunText(context.Background(), text)
	require.NoError(t, err)
	assert.Empty(t, res.Assignments)
}

func TestFallbackResultValidation(t *testing.T) {
	badDue := "3/17/25"
	fb := &fakeFallback{fields: []llm.AssignmentFields{
		{Title: "ok", DueDate: &badDue},                      // title too short after trim
		{Title: "Weekly reading response", DueDate: &badDue}, // non-ISO date nulled
		{Title: "Weekly quiz attempt"},                       // defaults filled in
	}}
	text := "Course policies and expectations are described in great detail here, with no schedule at all."
	p := New(nil, Config{MinTextLength: 10}, nil, fb)

	res, err := p.RunText(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, res.Assignments, 2)

	assert.Equal(t, "Weekly reading response", res.Assignments[0].Title)
	assert.Nil(t, res.Assignments[0].DueDate)

	quiz := res.Assignments[1]
	assert.Equal(t, "Quiz assessment: Weekly quiz attempt", quiz.Description)
	assert.Equal(t, []string{"Quiz"}, quiz.Tags)
}

func TestRunPreParsedSkipsScanAndFallback(t *testing.T) {
	fb := &fakeFallback{}
	p := New(nil, Config{MinTextLength: 10}, nil, fb)

	text := "WW-HUMN 340 Introduction to the Humanities\nSpring 2025\n"
	res, err := p.RunPreParsed(context.Background(), text, []Candidate{
		{Title: "3/10/25 Module 1 Discussion", DueDate: "3/10/25"},
		{Title: "??", DueDate: "3/17"}, // too short after cleanup
		{Title: "Final Exam", DueDate: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, fb.calls)

	assert.Equal(t, "WW-HUMN 340", res.Course.Code)
	require.Len(t, res.Assignments, 2)

	first := res.Assignments[0]
	assert.Equal(t, "Module 1 Discussion", first.Title)
	require.NotNil(t, first.DueDate)
	assert.Equal(t, "2025-03-10", *first.DueDate)

	second := res.Assignments[1]
	assert.Equal(t, "Final Exam", second.Title)
	assert.Nil(t, second.DueDate)
	assert.Equal(t, []string{"Exam"}, second.Tags)
}

func TestRunIsDeterministicAcrossInvocations(t *testing.T) {
	p := New(nil, Config{}, &fakeExtractor{text: sampleSyllabus}, nil)

	a, err := p.Run(context.Background(), extract.RawDocument{Filename: "s.txt"})
	require.NoError(t, err)
	b, err := p.Run(context.Background(), extract.RawDocument{Filename: "s.txt"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
