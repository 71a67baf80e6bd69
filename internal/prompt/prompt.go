// Package prompt holds the fixed system/user prompt pairs sent to the
// explanation service.
package prompt

import "github.com/heartmarshall/textscanner/internal/domain"

// Variant selects one of the fixed prompt templates.
type Variant string

const (
	// WordDefinition is used for single words the dictionary could not resolve.
	WordDefinition Variant = "word"
	// PhraseExplanation is used for any selection with internal whitespace.
	PhraseExplanation Variant = "phrase"
	// Summary is the relay server's one-sentence explanation.
	Summary Variant = "summary"
)

func (v Variant) String() string { return string(v) }

// Prompt is a role-tagged pair for a chat-completion request.
type Prompt struct {
	System string
	User   string
}

const (
	wordSystem    = "You are a helpful dictionary assistant. Provide a brief, clear definition and possible meanings for words that might not be in standard dictionaries."
	phraseSystem  = "You are a helpful language assistant. Provide a clear, concise explanation of the meaning and context of phrases or sentences."
	summarySystem = "You are a helpful assistant that explains text briefly and clearly in one short sentence."
)

// Build renders the prompt pair for text. Unknown variants fall back to Summary.
func Build(v Variant, text string) Prompt {
	switch v {
	case WordDefinition:
		return Prompt{
			System: wordSystem,
			User:   `Define this word that wasn't found in the dictionary: "` + text + `"`,
		}
	case PhraseExplanation:
		return Prompt{
			System: phraseSystem,
			User:   `Explain the meaning of this text: "` + text + `"`,
		}
	default:
		return Prompt{System: summarySystem, User: text}
	}
}

// VariantFor picks the word or phrase variant for a selection.
func VariantFor(sel domain.Selection) Variant {
	if sel.IsSingleWord() {
		return WordDefinition
	}
	return PhraseExplanation
}
