package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// renderHelpContent renders the full help text shown in the pager.
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("multisearch Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Query"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("i"), descStyle.Render("Edit the search query")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("enter"), descStyle.Render("Open one browser tab per selected engine")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("esc/tab"), descStyle.Render("Leave the query field")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Engines"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move between engines")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("Space"), descStyle.Render("Toggle engine (or fold a category header)")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("a"), descStyle.Render("Select all engines matching the filter")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("A, esc"), descStyle.Render("Clear the selection")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("z"), descStyle.Render("Fold/unfold the category under the cursor")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("g/G"), descStyle.Render("Go to top/bottom")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Filter"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("/"), descStyle.Render("Filter engines by name (case-insensitive)")))
	help.WriteString(fmt.Sprintf("  %s    %s\n", keyStyle.Render("enter"), descStyle.Render("Keep the filter")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("esc"), descStyle.Render("Drop the filter")))
	help.WriteString("\n")

	// Selections made under one filter survive filter changes
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Filtering never unselects engines; 'a' replaces the selection\n  with exactly the engines currently matching."))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("y"), descStyle.Render("Copy the would-be URLs to the clipboard")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("t"), descStyle.Render("Toggle dark/light theme")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("?"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s        %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// SetProgram sets the program used to release and restore the terminal.
func (h *HelpOps) SetProgram(program *tea.Program) {
	h.program = program
}

// Available reports whether the pager can take over the terminal.
func (h *HelpOps) Available() bool {
	return h.program != nil
}

// ShowHelpInPager shows help content using the ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay so ov has fully exited before restoring
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	reader := strings.NewReader(helpContent)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Don't write on exit, to keep our screen intact
	cfg := oviewer.NewConfig()
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}
