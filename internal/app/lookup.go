package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/textscanner/internal/adapter/provider/freedict"
	"github.com/heartmarshall/textscanner/internal/adapter/provider/relay"
	"github.com/heartmarshall/textscanner/internal/config"
	"github.com/heartmarshall/textscanner/internal/prompt"
	"github.com/heartmarshall/textscanner/internal/service/lookup"
)

type explainer interface {
	Explain(ctx context.Context, variant prompt.Variant, text string) (string, error)
}

// NewLookupService wires the dictionary and, when withAI is set, the
// explanation backend into a lookup.Service. Explanations go through the
// relay when one is configured, otherwise straight to the language model.
func NewLookupService(cfg *config.Config, logger *slog.Logger, withAI bool) (*lookup.Service, error) {
	baseURL := cfg.Dictionary.BaseURL
	if baseURL == "" {
		baseURL = freedict.DefaultBaseURL
	}
	dict := freedict.NewProviderWithURL(baseURL, cfg.Dictionary.Timeout, logger)

	var exp explainer
	if withAI {
		var err error
		exp, err = newExplainer(cfg, logger)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("lookup service configured",
		slog.Bool("ai", exp != nil),
		slog.Bool("ai_fallback", cfg.Lookup.AIFallback),
		slog.Bool("relay", cfg.Lookup.UsesRelay()),
	)

	return lookup.NewService(logger, dict, exp, lookup.Options{AIFallback: cfg.Lookup.AIFallback}), nil
}

func newExplainer(cfg *config.Config, logger *slog.Logger) (explainer, error) {
	if cfg.Lookup.UsesRelay() {
		return relay.NewClient(cfg.Lookup.RelayURL, cfg.Lookup.RelayTimeout, logger), nil
	}

	if err := cfg.RequireAPIKey(); err != nil {
		return nil, fmt.Errorf("config: %w (or set lookup.relay_url)", err)
	}
	llm, err := NewCompleter(cfg.Explanation, cfg.Lookup.MaxTokens, cfg.Lookup.Temperature, logger)
	if err != nil {
		return nil, err
	}
	return lookup.NewLLMExplainer(llm), nil
}
