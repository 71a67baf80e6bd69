package relay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heartmarshall/textscanner/internal/domain"
	"github.com/heartmarshall/textscanner/internal/prompt"
)

func newTestClient(url string) *Client {
	return NewClient(url, 2*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Explain_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/explain" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req explainRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Text != "break a leg" {
			t.Errorf("text = %q", req.Text)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"explanation":"Good luck."}`))
	}))
	defer srv.Close()

	out, err := newTestClient(srv.URL+"/").Explain(context.Background(), prompt.PhraseExplanation, "break a leg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Good luck." {
		t.Errorf("Explain() = %q", out)
	}
}

func TestClient_Explain_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantLimited bool
	}{
		{name: "server error", status: 500, body: `{"error":"Failed to get explanation"}`, wantMessage: "Failed to get explanation"},
		{name: "bad request", status: 400, body: `{"error":"Text is required"}`, wantMessage: "Text is required"},
		{name: "rate limited", status: 429, body: "Too many requests from this IP, please try again later.", wantMessage: "Too many requests from this IP, please try again later.", wantLimited: true},
		{name: "empty explanation", status: 200, body: `{"explanation":""}`, wantMessage: "No explanation received"},
		{name: "garbage", status: 200, body: `<html>`, wantMessage: "Unable to get explanation. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).Explain(context.Background(), prompt.WordDefinition, "x")
			if !errors.Is(err, domain.ErrUpstream) {
				t.Fatalf("expected ErrUpstream, got %v", err)
			}
			if got := domain.UserMessage(err); got != tt.wantMessage {
				t.Errorf("UserMessage() = %q, want %q", got, tt.wantMessage)
			}
			if errors.Is(err, domain.ErrRateLimited) != tt.wantLimited {
				t.Errorf("ErrRateLimited = %v, want %v", !tt.wantLimited, tt.wantLimited)
			}
		})
	}
}
