// Package anthropic adapts the Anthropic Messages API to the explanation port.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/textscanner/internal/domain"
	"github.com/heartmarshall/textscanner/internal/prompt"
)

const (
	serviceName      = "anthropic"
	defaultMaxTokens = 256
)

// Options configures a Provider.
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Provider sends the prompt pair as a system block plus one user message.
type Provider struct {
	client      sdk.Client
	model       string
	maxTokens   int64
	temperature float64
	log         *slog.Logger
}

// NewProvider creates a Provider.
func NewProvider(opts Options, logger *slog.Logger) (*Provider, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("anthropic: api key is required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("anthropic: model is required")
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

	maxTokens := int64(opts.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Provider{
		client:      sdk.NewClient(reqOpts...),
		model:       opts.Model,
		maxTokens:   maxTokens,
		temperature: opts.Temperature,
		log:         logger.With("adapter", "anthropic"),
	}, nil
}

// Complete returns the concatenated text blocks of the reply.
func (p *Provider) Complete(ctx context.Context, pr prompt.Prompt) (string, error) {
	start := time.Now()
	msg, err := p.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(p.model),
		MaxTokens:   p.maxTokens,
		Temperature: sdk.Float(p.temperature),
		System:      []sdk.TextBlockParam{{Text: pr.System}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(pr.User)),
		},
	})
	if err != nil {
		p.log.ErrorContext(ctx, "messages call failed",
			slog.String("model", p.model),
			slog.String("error", err.Error()),
		)
		return "", mapError(err)
	}

	p.log.DebugContext(ctx, "messages call",
		slog.String("model", p.model),
		slog.Int("blocks", len(msg.Content)),
		slog.Duration("duration", time.Since(start)),
	)

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func mapError(err error) error {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return &domain.UpstreamError{
			Service:    serviceName,
			StatusCode: apiErr.StatusCode,
			Message:    "Failed to get AI explanation",
			Err:        err,
		}
	}
	return domain.NewUpstreamError(serviceName, "Failed to get AI explanation", err)
}
