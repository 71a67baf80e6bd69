package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/textscanner/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/textscanner/internal/adapter/provider/openai"
	"github.com/heartmarshall/textscanner/internal/config"
	"github.com/heartmarshall/textscanner/internal/prompt"
)

// Completer turns a prompt pair into model output.
type Completer interface {
	Complete(ctx context.Context, p prompt.Prompt) (string, error)
}

// NewCompleter builds the language-model adapter selected by cfg.Provider.
// maxTokens and temperature differ between the relay and direct lookups.
func NewCompleter(cfg config.ExplanationConfig, maxTokens int, temperature float64, logger *slog.Logger) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		p, err := openai.NewProvider(openai.Options{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			MaxTokens:   maxTokens,
			Temperature: temperature,
			Timeout:     cfg.Timeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.ProviderAnthropic:
		p, err := anthropic.NewProvider(anthropic.Options{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			MaxTokens:   maxTokens,
			Temperature: temperature,
			Timeout:     cfg.Timeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("app: unknown explanation provider %q", cfg.Provider)
	}
}
