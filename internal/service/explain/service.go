package explain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/textscanner/internal/domain"
	"github.com/heartmarshall/textscanner/internal/prompt"
)

// ErrNoExplanation is returned when the upstream completion is empty.
var ErrNoExplanation = errors.New("no explanation received from upstream")

type completer interface {
	Complete(ctx context.Context, p prompt.Prompt) (string, error)
}

// Service forwards text to the explanation service wrapped in the fixed
// one-sentence summary prompt.
type Service struct {
	log *slog.Logger
	llm completer
}

// NewService creates an explain Service.
func NewService(logger *slog.Logger, llm completer) *Service {
	return &Service{
		log: logger.With("service", "explain"),
		llm: llm,
	}
}

// Explain returns a one-sentence explanation of text.
func (s *Service) Explain(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.NewValidationError("text", "Text is required")
	}

	start := time.Now()
	explanation, err := s.llm.Complete(ctx, prompt.Build(prompt.Summary, text))
	if err != nil {
		return "", fmt.Errorf("explain: %w", err)
	}

	explanation = strings.TrimSpace(explanation)
	if explanation == "" {
		return "", ErrNoExplanation
	}

	s.log.InfoContext(ctx, "explanation generated",
		slog.Int("text_length", len(text)),
		slog.Int("explanation_length", len(explanation)),
		slog.Duration("duration", time.Since(start)),
	)

	return explanation, nil
}
