package views

import (
	"fmt"
	"strings"

	"multisearch/internal/domain"
)

// Row is one line of the engine list: either a category header or an
// engine entry.
type Row struct {
	IsHeader bool
	Category string
	Engine   domain.Engine
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Query          string
	QueryInput     string // rendered query text input
	FilterInput    string // rendered filter text input
	FilterQuery    string
	Mode           string // "normal", "query" or "filter"
	Rows           []Row
	Selected       map[string]bool
	Expanded       map[string]bool
	CursorIndex    int
	SelectedCount  int
	CatalogCount   int
	VisibleCount   int
	StatusMessage  string
	StatusIsError  bool
	ViewportOffset int
	ViewportHeight int
	ShortHelp      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer for the given theme.
func NewRenderer(dark bool) *Renderer {
	return &Renderer{styles: NewStyles(dark)}
}

// Styles exposes the renderer's style set.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("multisearch"))
	content.WriteString("\n")

	// Query line
	queryPrompt := r.styles.Prompt.Render("Query:")
	content.WriteString(fmt.Sprintf("%s %s\n", queryPrompt, state.QueryInput))

	// Filter line only while filtering or when a filter is applied
	if state.Mode == "filter" {
		content.WriteString(fmt.Sprintf("%s %s\n", r.styles.Filter.Render("Filter:"), state.FilterInput))
	} else if state.FilterQuery != "" {
		filterInfo := fmt.Sprintf("Filter: %s (%d/%d engines)", state.FilterQuery, state.VisibleCount, state.CatalogCount)
		content.WriteString(r.styles.Filter.Render(filterInfo))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(r.renderRows(state))

	// Submit affordance, dimmed while query or selection is empty
	content.WriteString("\n")
	submit := fmt.Sprintf("enter: open %d tab(s)", state.SelectedCount)
	if state.Query == "" || state.SelectedCount == 0 {
		content.WriteString(r.styles.SubmitOff.Render(submit))
	} else {
		content.WriteString(r.styles.Submit.Render(submit))
	}

	// Status line
	if state.StatusMessage != "" {
		content.WriteString("\n")
		if state.StatusIsError {
			content.WriteString(r.styles.StatusError.Render(state.StatusMessage))
		} else {
			content.WriteString(r.styles.Status.Render(state.StatusMessage))
		}
	}

	if state.ShortHelp != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.ShortHelp))
	}

	return r.styles.Main.Render(content.String())
}

// renderRows renders the visible window of the engine list.
func (r *Renderer) renderRows(state ViewState) string {
	if len(state.Rows) == 0 {
		return r.styles.Dim.Render("  no engines match the filter")
	}

	// A stale offset can point past the end after the row list shrinks;
	// pull the window back so at least one row renders.
	start := state.ViewportOffset
	if start > len(state.Rows)-1 {
		start = len(state.Rows) - 1
	}
	if start < 0 {
		start = 0
	}
	end := len(state.Rows)
	if state.ViewportHeight > 0 && start+state.ViewportHeight < end {
		end = start + state.ViewportHeight
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(state.Rows[i], state, i))
	}

	if start > 0 {
		lines[0] = r.styles.Dim.Render("↑ (more above)")
	}
	if end < len(state.Rows) {
		lines[len(lines)-1] = r.styles.Dim.Render("↓ (more below)")
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderRow(row Row, state ViewState, index int) string {
	underCursor := index == state.CursorIndex

	if row.IsHeader {
		marker := "▾"
		if !state.Expanded[row.Category] {
			marker = "▸"
		}
		line := fmt.Sprintf("%s %s", marker, row.Category)
		style := r.styles.Category
		if underCursor {
			style = style.Background(r.styles.CursorBg.GetBackground())
		}
		return style.Render(line)
	}

	indicator := "[ ]"
	indicatorStyle := r.styles.Dim
	if state.Selected[row.Engine.Name] {
		indicator = "[x]"
		indicatorStyle = r.styles.Checked
	}

	nameStyle := r.styles.EngineName
	if underCursor {
		indicatorStyle = indicatorStyle.Background(r.styles.CursorBg.GetBackground())
		nameStyle = nameStyle.Background(r.styles.CursorBg.GetBackground())
	}

	return fmt.Sprintf("  %s %s  %s",
		indicatorStyle.Render(indicator),
		nameStyle.Render(row.Engine.Name),
		r.styles.URLPrefix.Render(row.Engine.URLPrefix))
}
