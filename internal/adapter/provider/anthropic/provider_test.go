package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/textscanner/internal/domain"
	"github.com/heartmarshall/textscanner/internal/prompt"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProvider(t *testing.T, url string) *Provider {
	t.Helper()
	p, err := NewProvider(Options{
		APIKey:      "test-key",
		BaseURL:     url,
		Model:       "claude-test",
		MaxTokens:   100,
		Temperature: 0.5,
	}, newTestLogger())
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	return p
}

func TestProvider_Complete_Success(t *testing.T) {
	t.Parallel()

	var got struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		System    []struct {
			Text string `json:"text"`
		} `json:"system"`
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"stop_reason": "end_turn",
			"content": [{"type": "text", "text": "A greeting."}],
			"usage": {"input_tokens": 10, "output_tokens": 3}
		}`))
	}))
	defer srv.Close()

	out, err := newTestProvider(t, srv.URL).Complete(context.Background(), prompt.Build(prompt.WordDefinition, "hullo"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "A greeting." {
		t.Errorf("Complete() = %q", out)
	}
	if got.Model != "claude-test" || got.MaxTokens != 100 {
		t.Errorf("request model/max_tokens = %q/%d", got.Model, got.MaxTokens)
	}
	if len(got.System) != 1 || got.System[0].Text != prompt.Build(prompt.WordDefinition, "hullo").System {
		t.Errorf("system = %+v", got.System)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" {
		t.Errorf("messages = %+v", got.Messages)
	}
}

func TestProvider_Complete_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer srv.Close()

	_, err := newTestProvider(t, srv.URL).Complete(context.Background(), prompt.Build(prompt.Summary, "x"))
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) || upErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %v", err)
	}
}
