package lookup

import (
	"context"
	"strings"

	"github.com/heartmarshall/textscanner/internal/domain"
	"github.com/heartmarshall/textscanner/internal/prompt"
)

const (
	msgLookingUp  = "Looking up meaning..."
	msgExplaining = "Getting AI explanation..."
)

// Strategy is one step of the resolution chain. Resolve returns
// domain.ErrNotFound when it has nothing to say about the selection.
type Strategy interface {
	Name() string
	Applies(sel domain.Selection) bool
	LoadingMessage(sel domain.Selection) string
	Resolve(ctx context.Context, sel domain.Selection) (domain.LookupResult, error)
}

type dictionaryStrategy struct {
	dict dictionaryProvider
}

func (d *dictionaryStrategy) Name() string { return "dictionary" }

func (d *dictionaryStrategy) Applies(sel domain.Selection) bool { return sel.IsSingleWord() }

func (d *dictionaryStrategy) LoadingMessage(domain.Selection) string { return msgLookingUp }

func (d *dictionaryStrategy) Resolve(ctx context.Context, sel domain.Selection) (domain.LookupResult, error) {
	def, err := d.dict.FetchDefinition(ctx, sel.Text)
	if err != nil {
		return domain.LookupResult{}, err
	}
	if def == nil {
		return domain.LookupResult{}, domain.ErrNotFound
	}
	res := domain.NewDefinition(def.Text, def.PartOfSpeech)
	res.Example = def.Example
	return res, nil
}

type explanationStrategy struct {
	exp     explainer
	variant prompt.Variant
}

func (e *explanationStrategy) Name() string { return "ai-" + e.variant.String() }

func (e *explanationStrategy) Applies(sel domain.Selection) bool {
	return prompt.VariantFor(sel) == e.variant
}

func (e *explanationStrategy) LoadingMessage(domain.Selection) string { return msgExplaining }

func (e *explanationStrategy) Resolve(ctx context.Context, sel domain.Selection) (domain.LookupResult, error) {
	text, err := e.exp.Explain(ctx, e.variant, sel.Text)
	if err != nil {
		return domain.LookupResult{}, err
	}
	if strings.TrimSpace(text) == "" {
		return domain.LookupResult{}, domain.NewUpstreamError("explanation", "No explanation received", nil)
	}
	return domain.NewExplanation(text), nil
}
