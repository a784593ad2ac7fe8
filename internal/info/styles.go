package info

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the text styles of the info column.
type Styles struct {
	Title  lipgloss.Style
	Album  lipgloss.Style
	Quote  lipgloss.Style
	Detail lipgloss.Style
}

// NewStyles returns styles that always emit SGR sequences, wherever the
// card ends up. It is usually printed from a shell profile, where the
// output is not a terminal lipgloss would detect, so nothing is probed.
func NewStyles() Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)

	base := r.NewStyle().Inline(true).TabWidth(lipgloss.NoTabConversion)
	return Styles{
		Title:  base.Bold(true),
		Album:  base.Faint(true),
		Quote:  base.Italic(true).Faint(true),
		Detail: base.Faint(true),
	}
}
