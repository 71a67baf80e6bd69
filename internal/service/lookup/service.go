package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/textscanner/internal/domain"
	"github.com/heartmarshall/textscanner/internal/prompt"
	"github.com/heartmarshall/textscanner/internal/provider"
)

type dictionaryProvider interface {
	FetchDefinition(ctx context.Context, word string) (*provider.Definition, error)
}

type explainer interface {
	Explain(ctx context.Context, variant prompt.Variant, text string) (string, error)
}

// Options toggles optional resolution behaviour.
type Options struct {
	// AIFallback lets single words escalate to an AI explanation when the
	// dictionary has no entry or fails.
	AIFallback bool
}

// Service resolves selections into a stream of LookupState updates.
type Service struct {
	log        *slog.Logger
	strategies []Strategy
}

// NewService builds the strategy chain: dictionary first, then the word
// explanation (only with AI fallback), then the phrase explanation.
// A nil explainer disables both explanation strategies.
func NewService(logger *slog.Logger, dict dictionaryProvider, exp explainer, opts Options) *Service {
	var strategies []Strategy
	if dict != nil {
		strategies = append(strategies, &dictionaryStrategy{dict: dict})
	}
	if exp != nil {
		if opts.AIFallback {
			strategies = append(strategies, &explanationStrategy{exp: exp, variant: prompt.WordDefinition})
		}
		strategies = append(strategies, &explanationStrategy{exp: exp, variant: prompt.PhraseExplanation})
	}
	return NewServiceWithStrategies(logger, strategies...)
}

// NewServiceWithStrategies creates a Service over an explicit, ordered chain.
func NewServiceWithStrategies(logger *slog.Logger, strategies ...Strategy) *Service {
	return &Service{
		log:        logger.With("service", "lookup"),
		strategies: strategies,
	}
}

// Resolve starts a resolution for sel. The returned channel yields one
// Loading state, zero or more escalation states, and exactly one Resolved
// state, then closes. It never blocks on a slow reader.
func (s *Service) Resolve(ctx context.Context, sel domain.Selection) <-chan domain.LookupState {
	applicable := s.applicable(sel)
	out := make(chan domain.LookupState, len(applicable)+2)

	go func() {
		defer close(out)

		if len(applicable) == 0 {
			s.log.WarnContext(ctx, "no strategy applies", slog.Uint64("selection_id", sel.ID))
			out <- domain.Loading(sel.ID, msgLookingUp)
			out <- domain.Resolved(sel.ID, domain.NewErrorResult("No lookup service is configured for this selection"))
			return
		}

		out <- domain.Loading(sel.ID, applicable[0].LoadingMessage(sel))
		out <- s.runChain(ctx, sel, applicable, out)
	}()

	return out
}

// Lookup runs a resolution to completion and returns its terminal result.
func (s *Service) Lookup(ctx context.Context, sel domain.Selection) domain.LookupResult {
	var result domain.LookupResult
	for state := range s.Resolve(ctx, sel) {
		if state.IsTerminal() && state.Result != nil {
			result = *state.Result
		}
	}
	return result
}

func (s *Service) applicable(sel domain.Selection) []Strategy {
	var out []Strategy
	for _, st := range s.strategies {
		if st.Applies(sel) {
			out = append(out, st)
		}
	}
	return out
}

// runChain tries each strategy in turn. A failing strategy with a successor
// escalates; the last failure decides the terminal state.
func (s *Service) runChain(ctx context.Context, sel domain.Selection, chain []Strategy, out chan<- domain.LookupState) (state domain.LookupState) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "lookup panicked",
				slog.Uint64("selection_id", sel.ID),
				slog.Any("panic", r),
			)
			state = domain.Resolved(sel.ID, domain.NewErrorResult(domain.UserMessage(domain.ErrUnexpected)))
		}
	}()

	var lastErr error
	for i, st := range chain {
		if i > 0 {
			s.log.DebugContext(ctx, "escalating lookup",
				slog.Uint64("selection_id", sel.ID),
				slog.String("from", chain[i-1].Name()),
				slog.String("to", st.Name()),
			)
			out <- domain.Escalating(sel.ID, st.LoadingMessage(sel))
		}

		if err := ctx.Err(); err != nil {
			return domain.Resolved(sel.ID, domain.NewErrorResult("Lookup cancelled"))
		}

		result, err := st.Resolve(ctx, sel)
		if err == nil {
			s.log.DebugContext(ctx, "lookup resolved",
				slog.Uint64("selection_id", sel.ID),
				slog.String("strategy", st.Name()),
				slog.String("kind", result.Kind.String()),
			)
			return domain.Resolved(sel.ID, result)
		}

		lastErr = fmt.Errorf("%s: %w", st.Name(), err)
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "lookup strategy failed",
				slog.Uint64("selection_id", sel.ID),
				slog.String("strategy", st.Name()),
				slog.String("error", err.Error()),
			)
		}
	}

	if errors.Is(lastErr, domain.ErrNotFound) {
		return domain.Resolved(sel.ID, domain.NewNotFound())
	}
	return domain.Resolved(sel.ID, domain.NewErrorResult(domain.UserMessage(lastErr)))
}
