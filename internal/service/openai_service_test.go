package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"interview-forecaster/internal/config"
	"interview-forecaster/internal/forecast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *OpenAIService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewOpenAIService(&config.OpenAIConfig{
		APIKey:      "test-key",
		BaseURL:     server.URL,
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
	})
	require.NoError(t, err)
	return svc
}

func TestNewOpenAIServiceRequiresKey(t *testing.T) {
	_, err := NewOpenAIService(&config.OpenAIConfig{})
	assert.Error(t, err)
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var gotBody []byte
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "the reply"}},
			},
		})
	})

	text, err := svc.Complete(context.Background(), "gpt-4o-mini", "the prompt")
	require.NoError(t, err)
	assert.Equal(t, "the reply", text)

	body := string(gotBody)
	assert.Equal(t, "gpt-4o-mini", gjson.Get(body, "model").String())
	assert.Equal(t, "system", gjson.Get(body, "messages.0.role").String())
	assert.Equal(t, forecast.SystemInstruction, gjson.Get(body, "messages.0.content").String())
	assert.Equal(t, "the prompt", gjson.Get(body, "messages.1.content").String())
}

func TestCompleteAPIError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "quota exceeded"},
		})
	})

	var reqErr *ModelRequestError
	_, err := svc.Complete(context.Background(), "", "p")
	require.ErrorAs(t, err, &reqErr)
	assert.Contains(t, reqErr.Reason, "quota exceeded")
	assert.Contains(t, reqErr.Reason, "429")
}

func TestCompleteNoChoices(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	var reqErr *ModelRequestError
	_, err := svc.Complete(context.Background(), "", "p")
	require.ErrorAs(t, err, &reqErr)
	assert.Contains(t, reqErr.Reason, "no completion choices")
}

func TestCompleteTransportError(t *testing.T) {
	svc, err := NewOpenAIService(&config.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: "http://127.0.0.1:1",
	})
	require.NoError(t, err)

	var reqErr *ModelRequestError
	_, err = svc.Complete(context.Background(), "", "p")
	require.ErrorAs(t, err, &reqErr)
	assert.Error(t, reqErr.Unwrap())
}
