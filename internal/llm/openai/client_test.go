package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursedeck/syllabus-tracker/internal/llm"
	"github.com/coursedeck/syllabus-tracker/internal/parser"
)

// completionsStub serves a canned chat/completions payload whose message
// content is the given string.
func completionsStub(t *testing.T, content string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{APIKey: "test-key", BaseURL: baseURL, Model: "gpt-4o-mini"}, nil)
}

func TestExtractAssignmentsHappyPath(t *testing.T) {
	var captured map[string]any
	srv := completionsStub(t,
		`{"assignments":[{"title":"Quiz 1","dueDate":"2025-03-17","status":"pending","tags":["Quiz"]}]}`,
		&captured)
	defer srv.Close()

	c := newTestClient(srv.URL)
	fields, raw, err := c.ExtractAssignments(context.Background(), llm.ExtractRequest{
		Text:   "3/17 Quiz 1",
		Course: parser.CourseMetadata{Code: "CS 101", Term: "Spring 2025"},
	})
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "Quiz 1", fields[0].Title)
	require.NotNil(t, fields[0].DueDate)
	assert.Equal(t, "2025-03-17", *fields[0].DueDate)
	assert.Equal(t, []string{"Quiz"}, fields[0].Tags)
	assert.NotEmpty(t, raw)

	// request shape: json_object response format, system+user messages
	assert.Equal(t, "gpt-4o-mini", captured["model"])
	rf, _ := captured["response_format"].(map[string]any)
	require.NotNil(t, rf)
	assert.Equal(t, "json_object", rf["type"])
	msgs, _ := captured["messages"].([]any)
	assert.GreaterOrEqual(t, len(msgs), 2)
}

func TestExtractAssignmentsStripsFences(t *testing.T) {
	srv := completionsStub(t,
		"```json\n{\"assignments\":[{\"title\":\"Essay 1\"}]}\n```", nil)
	defer srv.Close()

	c := newTestClient(srv.URL)
	fields, _, err := c.ExtractAssignments(context.Background(), llm.ExtractRequest{Text: "x"})
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "Essay 1", fields[0].Title)
	assert.Nil(t, fields[0].DueDate)
}

func TestExtractAssignmentsLenientSanitizePass(t *testing.T) {
	// Key synonyms and a bad date: strict validation fails, the sanitize
	// pass repairs it.
	srv := completionsStub(t,
		`{"assignments":[{"name":"Quiz 1","due_date":"March 17","points":5}]}`, nil)
	defer srv.Close()

	c := newTestClient(srv.URL)
	fields, _, err := c.ExtractAssignments(context.Background(), llm.ExtractRequest{Text: "x"})
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "Quiz 1", fields[0].Title)
	assert.Nil(t, fields[0].DueDate)
	assert.Equal(t, "pending", fields[0].Status)
}

func TestExtractAssignmentsUnrepairableContent(t *testing.T) {
	srv := completionsStub(t, `{"assignments":"not an array"}`, nil)
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, _, err := c.ExtractAssignments(context.Background(), llm.ExtractRequest{Text: "x"})
	assert.Error(t, err)
}

func TestExtractAssignmentsMalformedJSON(t *testing.T) {
	srv := completionsStub(t, `here are the assignments you asked for`, nil)
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, _, err := c.ExtractAssignments(context.Background(), llm.ExtractRequest{Text: "x"})
	assert.Error(t, err)
}

func TestExtractAssignmentsHTTPErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, _, err := c.ExtractAssignments(context.Background(), llm.ExtractRequest{Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestExtractAssignmentsNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, _, err := c.ExtractAssignments(context.Background(), llm.ExtractRequest{Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
