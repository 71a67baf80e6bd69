package lookup

import (
	"context"

	"github.com/heartmarshall/textscanner/internal/prompt"
)

type completer interface {
	Complete(ctx context.Context, p prompt.Prompt) (string, error)
}

// LLMExplainer talks to a chat-completion provider directly, building the
// word or phrase prompt itself.
type LLMExplainer struct {
	llm completer
}

// NewLLMExplainer wraps a chat-completion provider.
func NewLLMExplainer(llm completer) *LLMExplainer {
	return &LLMExplainer{llm: llm}
}

// Explain builds the prompt for variant and returns the completion.
func (e *LLMExplainer) Explain(ctx context.Context, variant prompt.Variant, text string) (string, error) {
	return e.llm.Complete(ctx, prompt.Build(variant, text))
}
