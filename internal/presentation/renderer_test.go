package presentation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/textscanner/internal/domain"
)

type rendererCase struct {
	name     string
	sel      domain.Selection
	state    domain.LookupState
	contains []string
	absent   []string
}

func rendererCases() []rendererCase {
	word := domain.Selection{ID: 1, Text: "hello"}
	phrase := domain.Selection{ID: 2, Text: "break a leg"}

	return []rendererCase{
		{
			name:     "loading",
			sel:      word,
			state:    domain.Loading(1, "Looking up meaning..."),
			contains: []string{"hello", "Looking up meaning..."},
			absent:   []string{"Source:"},
		},
		{
			name:     "definition",
			sel:      word,
			state:    domain.Resolved(1, domain.NewDefinition("A greeting.", "noun")),
			contains: []string{"hello", "noun", "A greeting.", "Source: Dictionary"},
		},
		{
			name: "definition with example",
			sel:  word,
			state: func() domain.LookupState {
				r := domain.NewDefinition("A greeting.", "noun")
				r.Example = "She gave a cheerful hello."
				return domain.Resolved(1, r)
			}(),
			contains: []string{"A greeting.", "She gave a cheerful hello.", "Source: Dictionary"},
		},
		{
			name:     "word explanation",
			sel:      word,
			state:    domain.Resolved(1, domain.NewExplanation("Slang greeting.")),
			contains: []string{"hello", "Slang greeting.", "Source: AI Assistant"},
		},
		{
			name:     "phrase explanation",
			sel:      phrase,
			state:    domain.Resolved(2, domain.NewExplanation("Good luck.")),
			contains: []string{"Phrase Analysis", "Good luck.", "Source: AI Assistant"},
			absent:   []string{"break a leg"},
		},
		{
			name:     "not found",
			sel:      word,
			state:    domain.Resolved(1, domain.NewNotFound()),
			contains: []string{"No definition found"},
			absent:   []string{"Source:", "API Key Set"},
		},
		{
			name:     "error",
			sel:      phrase,
			state:    domain.Resolved(2, domain.NewErrorResult("Failed to get explanation")),
			contains: []string{"Phrase Analysis", "Failed to get explanation"},
			absent:   []string{"Source:"},
		},
	}
}

func TestPopupRenderer(t *testing.T) {
	t.Parallel()

	for _, tc := range rendererCases() {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, NewPopupRenderer(&buf).Render(tc.sel, tc.state))

			out := buf.String()
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestPanelRenderer(t *testing.T) {
	t.Parallel()

	for _, tc := range rendererCases() {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, NewPanelRenderer(&buf).Render(tc.sel, tc.state))

			out := buf.String()
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderers_DebugBlockOnErrors(t *testing.T) {
	t.Parallel()

	sel := domain.Selection{ID: 1, Text: "hello"}
	debug := WithDebug(DebugInfo{AIConfigured: true, Model: "gpt-3.5-turbo"})
	renderers := map[string]func(*bytes.Buffer) Renderer{
		"popup": func(b *bytes.Buffer) Renderer { return NewPopupRenderer(b, debug) },
		"panel": func(b *bytes.Buffer) Renderer { return NewPanelRenderer(b, debug) },
	}

	for name, mk := range renderers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, mk(&buf).Render(sel, domain.Resolved(1, domain.NewErrorResult("boom"))))
			assert.Contains(t, buf.String(), "API Key Set: Yes")
			assert.Contains(t, buf.String(), "gpt-3.5-turbo")

			buf.Reset()
			require.NoError(t, mk(&buf).Render(sel, domain.Resolved(1, domain.NewExplanation("fine"))))
			assert.NotContains(t, buf.String(), "API Key Set")
		})
	}
}

func TestRenderers_IdleDrawsNothing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sel := domain.Selection{ID: 1, Text: "hello"}

	require.NoError(t, NewPopupRenderer(&buf).Render(sel, domain.Idle()))
	require.NoError(t, NewPanelRenderer(&buf).Render(sel, domain.Idle()))
	assert.Empty(t, buf.String())
}
