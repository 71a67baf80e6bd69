package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/heartmarshall/textscanner/internal/domain"
)

// PanelRenderer draws each state in a detached titled box.
type PanelRenderer struct {
	w    io.Writer
	opts options
}

// NewPanelRenderer creates a PanelRenderer writing to w.
func NewPanelRenderer(w io.Writer, opts ...Option) *PanelRenderer {
	return &PanelRenderer{w: w, opts: newOptions(opts)}
}

// Render implements Renderer.
func (p *PanelRenderer) Render(sel domain.Selection, state domain.LookupState) error {
	v, ok := buildView(sel, state)
	if !ok {
		return nil
	}

	title := v.Title
	if v.Tag != "" {
		title = fmt.Sprintf("%s (%s)", v.Title, v.Tag)
	}

	var lines []string
	switch {
	case v.Loading:
		lines = append(lines, pterm.FgGray.Sprint(v.Body))
	case v.Error:
		lines = append(lines, pterm.FgRed.Sprint(v.Body))
		if p.opts.debug != nil {
			lines = append(lines,
				"",
				pterm.FgGray.Sprint("API Key Set: "+yesNo(p.opts.debug.AIConfigured)),
				pterm.FgGray.Sprint("Model: "+p.opts.debug.Model),
			)
		}
	default:
		lines = append(lines, v.Body)
		if v.Example != "" {
			lines = append(lines, pterm.Italic.Sprint("Example: "+v.Example))
		}
	}

	if v.Footer != "" {
		lines = append(lines, "", pterm.FgCyan.Sprint(v.Footer))
	}

	box := pterm.DefaultBox.
		WithTitle(pterm.Bold.Sprint(title)).
		WithTitleTopLeft()

	_, err := fmt.Fprintln(p.w, box.Sprint(strings.Join(lines, "\n")))
	return err
}
