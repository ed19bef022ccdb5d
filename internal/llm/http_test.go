package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendJSON(t *testing.T) {
	var gotAuth, gotCT string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	raw, code, err := SendJSON(context.Background(), nil, srv.URL,
		map[string]any{"model": "m"},
		map[string]string{"Authorization": "Bearer k"}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
	assert.Equal(t, "Bearer k", gotAuth)
	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, "m", gotBody["model"])
}

func TestSendJSONReturnsBodyOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream"}`))
	}))
	defer srv.Close()

	raw, code, err := SendJSON(context.Background(), nil, srv.URL, map[string]any{}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, http.StatusBadGateway, code)
	assert.JSONEq(t, `{"error":"upstream"}`, string(raw))
}

func TestSendJSONUnmarshalableBody(t *testing.T) {
	_, _, err := SendJSON(context.Background(), nil, "http://invalid.test", func() {}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal request body")
}
