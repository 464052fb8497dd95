package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles are bound to one writer so color detection follows that writer
// rather than the process stdout.
type styles struct {
	title lipgloss.Style
	date  lipgloss.Style
	muted lipgloss.Style
	err   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorPrimary),
		date:  r.NewStyle().Foreground(colorAccent),
		muted: r.NewStyle().Foreground(colorMuted).Italic(true),
		err:   r.NewStyle().Bold(true).Foreground(colorError),
	}
}
