package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"validity-app-api/core/errors"
	"validity-app-api/infrastructure/http/standard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(standard.NewStandardHTTPClient(5*time.Second), "hf_test", WithEndpoint(server.URL))
	require.NoError(t, err)
	return client
}

func TestNewClient_MissingToken(t *testing.T) {
	_, err := NewClient(standard.NewStandardHTTPClient(time.Second), "  ")
	assert.True(t, errors.IsConfiguration(err))
}

func TestSummarize_SendsParameters(t *testing.T) {
	var got request
	var auth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`[{"summary_text": " Infants may fly after two days. "}]`))
	})

	text, err := client.Summarize(context.Background(), "Most airlines allow infants from two days old.", 5, 9)
	require.NoError(t, err)

	assert.Equal(t, "Infants may fly after two days.", text)
	assert.Equal(t, "Bearer hf_test", auth)
	assert.Equal(t, 5, got.Parameters.MinLength)
	assert.Equal(t, 9, got.Parameters.MaxLength)
	assert.False(t, got.Parameters.DoSample)
	assert.Equal(t, "Most airlines allow infants from two days old.", got.Inputs)
}

func TestSummarize_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "model loading", status: 503, body: `{"error": "Model is loading", "estimated_time": 20}`, message: "Model is loading"},
		{name: "unauthorized", status: 401, body: `{"error": "Invalid token"}`, message: "Invalid token"},
		{name: "plain status", status: 500, body: `oops`, message: "status 500"},
		{name: "malformed body", status: 200, body: `{"summary_text": "not a list"}`, message: "decode response"},
		{name: "empty list", status: 200, body: `[]`, message: "empty summary"},
		{name: "blank summary", status: 200, body: `[{"summary_text": "  "}]`, message: "empty summary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Summarize(context.Background(), "text", 1, 2)
			require.Error(t, err)
			assert.True(t, errors.IsSummarizationFailure(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
