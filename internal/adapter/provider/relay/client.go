// Package relay calls the relay server's /explain endpoint so that the
// client side never holds the language-model API key.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/textscanner/internal/domain"
	"github.com/heartmarshall/textscanner/internal/prompt"
)

const (
	serviceName = "relay"

	// maxErrorBody bounds how much of a failed response is read.
	maxErrorBody = 4 << 10
)

// Client posts selections to a relay server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the relay at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "relay"),
	}
}

type explainRequest struct {
	Text string `json:"text"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
	Error       string `json:"error"`
	Details     string `json:"details"`
}

// Explain satisfies the lookup explainer port. The relay applies its own
// fixed summary prompt, so the variant is only logged.
func (c *Client) Explain(ctx context.Context, variant prompt.Variant, text string) (string, error) {
	body, err := json.Marshal(explainRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("relay: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/explain", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("relay: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "relay request", slog.String("variant", variant.String()), slog.Int("length", len(text)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "relay request failed", slog.String("error", err.Error()))
		return "", domain.NewUpstreamError(serviceName, "Unable to get explanation. Please try again.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &domain.UpstreamError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(msg)),
			Err:        domain.ErrRateLimited,
		}
	}

	var out explainResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return "", &domain.UpstreamError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Message:    "Unable to get explanation. Please try again.",
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	if resp.StatusCode != http.StatusOK {
		msg := out.Error
		if msg == "" {
			msg = "Failed to get explanation"
		}
		return "", &domain.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Message: msg}
	}

	if strings.TrimSpace(out.Explanation) == "" {
		return "", domain.NewUpstreamError(serviceName, "No explanation received", nil)
	}

	return out.Explanation, nil
}
