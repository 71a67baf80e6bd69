package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/textscanner/internal/domain"
)

var (
	popupCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	popupWord = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	popupType = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#81A1C1"))

	popupExample = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#959595"))

	popupLoading = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	popupError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	popupSource = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// PopupRenderer draws a compact inline card for each state.
type PopupRenderer struct {
	w    io.Writer
	opts options
}

// NewPopupRenderer creates a PopupRenderer writing to w.
func NewPopupRenderer(w io.Writer, opts ...Option) *PopupRenderer {
	return &PopupRenderer{w: w, opts: newOptions(opts)}
}

// Render implements Renderer.
func (p *PopupRenderer) Render(sel domain.Selection, state domain.LookupState) error {
	v, ok := buildView(sel, state)
	if !ok {
		return nil
	}

	header := popupWord.Render(v.Title)
	if v.Tag != "" {
		header += " " + popupType.Render(v.Tag)
	}
	lines := []string{header}

	switch {
	case v.Loading:
		lines = append(lines, popupLoading.Render(v.Body))
	case v.Error:
		lines = append(lines, popupError.Render(v.Body))
		if p.opts.debug != nil {
			lines = append(lines, popupSource.Render(fmt.Sprintf("API Key Set: %s  Model: %s",
				yesNo(p.opts.debug.AIConfigured), p.opts.debug.Model)))
		}
	default:
		lines = append(lines, v.Body)
		if v.Example != "" {
			lines = append(lines, popupExample.Render(`"`+v.Example+`"`))
		}
	}

	if v.Footer != "" {
		lines = append(lines, popupSource.Render(v.Footer))
	}

	card := popupCard.Width(p.opts.width).Render(strings.Join(lines, "\n"))
	_, err := fmt.Fprintln(p.w, card)
	return err
}
