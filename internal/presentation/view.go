package presentation

import (
	"github.com/heartmarshall/textscanner/internal/domain"
)

const (
	phraseTitle       = "Phrase Analysis"
	sourceDictionary  = "Source: Dictionary"
	sourceAIAssistant = "Source: AI Assistant"
)

// DebugInfo is shown under error results when debugging is enabled.
type DebugInfo struct {
	AIConfigured bool
	Model        string
}

// Option configures a renderer.
type Option func(*options)

type options struct {
	debug *DebugInfo
	width int
}

// WithDebug enables the debug block under error results.
func WithDebug(info DebugInfo) Option {
	return func(o *options) { o.debug = &info }
}

// WithWidth sets the card width in columns.
func WithWidth(width int) Option {
	return func(o *options) { o.width = width }
}

func newOptions(opts []Option) options {
	o := options{width: 60}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// view is the renderer-independent content of one state.
type view struct {
	Title   string
	Tag     string
	Body    string
	Example string
	Footer  string
	Loading bool
	Error   bool
}

func titleFor(sel domain.Selection) string {
	if sel.IsSingleWord() {
		return sel.Text
	}
	return phraseTitle
}

func buildView(sel domain.Selection, state domain.LookupState) (view, bool) {
	switch state.Phase {
	case domain.PhaseLoading:
		return view{Title: titleFor(sel), Body: state.Message, Loading: true}, true
	case domain.PhaseResolved:
		if state.Result == nil {
			return view{}, false
		}
		r := state.Result
		v := view{Title: titleFor(sel)}
		switch r.Kind {
		case domain.ResultDefinition:
			v.Tag = r.PartOfSpeech
			v.Body = r.Text
			v.Example = r.Example
			v.Footer = sourceDictionary
		case domain.ResultExplanation:
			v.Body = r.Text
			v.Footer = sourceAIAssistant
		case domain.ResultNotFound:
			v.Body = r.Message
		default:
			v.Body = r.Message
			v.Error = true
		}
		return v, true
	default:
		return view{}, false
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
