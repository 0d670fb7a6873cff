package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	box     lipgloss.Style
	hubBox  lipgloss.Style
	label   lipgloss.Style
	bar     lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	failure lipgloss.Style
	help    lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginBottom(1),

		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")),

		box: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1).
			MarginRight(1),

		hubBox: r.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Padding(0, 1),

		label: r.NewStyle().
			Foreground(lipgloss.Color("#888888")),

		bar: r.NewStyle().
			Foreground(lipgloss.Color("#00FFFF")),

		ok: r.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true),

		warn: r.NewStyle().
			Foreground(lipgloss.Color("#FFFF00")),

		failure: r.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true),

		help: r.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1),
	}
}
