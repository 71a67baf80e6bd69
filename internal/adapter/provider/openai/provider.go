// Package openai adapts OpenAI-compatible chat-completion APIs to the
// explanation port.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/heartmarshall/textscanner/internal/domain"
	"github.com/heartmarshall/textscanner/internal/prompt"
)

const serviceName = "openai"

// Options configures a Provider.
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Provider sends system+user prompt pairs to a chat-completion endpoint.
type Provider struct {
	client      oai.Client
	model       string
	maxTokens   int64
	temperature float64
	log         *slog.Logger
}

// NewProvider creates a Provider. A non-empty BaseURL targets any
// OpenAI-compatible endpoint.
func NewProvider(opts Options, logger *slog.Logger) (*Provider, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("openai: api key is required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("openai: model is required")
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(strings.TrimRight(opts.BaseURL, "/")+"/"))
	}
	if opts.Timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(opts.Timeout))
	}

	return &Provider{
		client:      oai.NewClient(reqOpts...),
		model:       opts.Model,
		maxTokens:   int64(opts.MaxTokens),
		temperature: opts.Temperature,
		log:         logger.With("adapter", "openai"),
	}, nil
}

// Complete returns the first choice's message content. An empty string is
// returned as-is; callers decide whether that is an error.
func (p *Provider) Complete(ctx context.Context, pr prompt.Prompt) (string, error) {
	params := oai.ChatCompletionNewParams{
		Model: oai.ChatModel(p.model),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(pr.System),
			oai.UserMessage(pr.User),
		},
		Temperature: oai.Float(p.temperature),
	}
	if p.maxTokens > 0 {
		params.MaxTokens = oai.Int(p.maxTokens)
	}

	start := time.Now()
	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		p.log.ErrorContext(ctx, "chat completion failed",
			slog.String("model", p.model),
			slog.String("error", err.Error()),
		)
		return "", mapError(err)
	}

	p.log.DebugContext(ctx, "chat completion",
		slog.String("model", p.model),
		slog.Int("choices", len(completion.Choices)),
		slog.Duration("duration", time.Since(start)),
	)

	if len(completion.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// mapError surfaces the API's own error message, as the extension showed it.
func mapError(err error) error {
	var apiErr *oai.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = "Failed to get AI explanation"
		}
		return &domain.UpstreamError{
			Service:    serviceName,
			StatusCode: apiErr.StatusCode,
			Message:    msg,
			Err:        err,
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return domain.NewUpstreamError(serviceName, "Explanation request timed out", err)
	}
	return domain.NewUpstreamError(serviceName, "Failed to get AI explanation", err)
}
