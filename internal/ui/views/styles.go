package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Filter      lipgloss.Style
	Prompt      lipgloss.Style
	Category    lipgloss.Style
	EngineName  lipgloss.Style
	URLPrefix   lipgloss.Style
	Checked     lipgloss.Style
	CursorBg    lipgloss.Style
	Submit      lipgloss.Style
	SubmitOff   lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a Styles instance for a dark or light terminal
// background. The palette is the only thing the theme flag controls.
func NewStyles(dark bool) *Styles {
	// dark palette
	title, category, engine, urlc, checked, submit, status, errc, dim, cursorBg := "99", "39", "252", "241", "78", "214", "241", "203", "241", "238"
	if !dark {
		title, category, engine, urlc, checked, submit, status, errc, dim, cursorBg = "55", "26", "235", "245", "28", "130", "243", "160", "245", "254"
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(title)).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Foreground(lipgloss.Color(dim)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(status)).
			MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color(errc)),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color(submit)),
		Prompt:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(category)),
		Category:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(category)),
		EngineName:  lipgloss.NewStyle().Foreground(lipgloss.Color(engine)),
		URLPrefix:   lipgloss.NewStyle().Foreground(lipgloss.Color(urlc)),
		Checked:     lipgloss.NewStyle().Foreground(lipgloss.Color(checked)),
		CursorBg:    lipgloss.NewStyle().Background(lipgloss.Color(cursorBg)),
		Submit:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(submit)),
		SubmitOff:   lipgloss.NewStyle().Faint(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
