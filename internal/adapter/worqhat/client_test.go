package worqhat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaigniq/internal/core/port"
)

func newTestClient(url string) *Client {
	return NewClient("test-key", url, "aicon-v4-large-160824", 5*time.Second)
}

func TestContentReturnsAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "how are sales?", body["question"])
		assert.Equal(t, 0.4, body["randomness"])

		_, _ = w.Write([]byte(`{"content": "X"}`))
	}))
	defer srv.Close()

	answer, err := newTestClient(srv.URL).Content(context.Background(), "how are sales?")
	require.NoError(t, err)
	assert.Equal(t, "X", answer)
}

func TestContentMissingFieldFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"processing_time": 12}`))
	}))
	defer srv.Close()

	answer, err := newTestClient(srv.URL).Content(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, Fallback, answer)
}

func TestContentUpstreamFailureCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Content(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrChatUpstream)
	assert.Contains(t, err.Error(), "invalid api key")
	assert.Contains(t, err.Error(), "401")
}

func TestGeneratedAnswerSendsMultipartForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "which campaign is best?", r.FormValue("question"))
		assert.Equal(t, "aicon-v4-large-160824", r.FormValue("model"))
		assert.Equal(t, "false", r.FormValue("stream_data"))
		assert.Equal(t, "text", r.FormValue("response_type"))
		assert.Contains(t, r.FormValue("training_data"), "942511")

		_, _ = w.Write([]byte(`{"content": "the expansion campaign"}`))
	}))
	defer srv.Close()

	answer, err := newTestClient(srv.URL).GeneratedAnswer(context.Background(),
		"which campaign is best?", `Current Campaign Data: [{"campaign": {"Campaign_ID": 942511}}]`)
	require.NoError(t, err)
	assert.Equal(t, "the expansion campaign", answer)
}

func TestGeneratedAnswerFallsBackOnEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content": ""}`))
	}))
	defer srv.Close()

	answer, err := newTestClient(srv.URL).GeneratedAnswer(context.Background(), "hello", "")
	require.NoError(t, err)
	assert.Equal(t, Fallback, answer)
}
