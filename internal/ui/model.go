package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"multisearch/internal/catalog"
	"multisearch/internal/config"
	"multisearch/internal/dispatch"
	"multisearch/internal/eventbus"
	"multisearch/internal/ui/services/selection"
	"multisearch/internal/ui/state"
	"multisearch/internal/ui/views"
)

// inputMode is the active input context
type inputMode int

const (
	modeNormal inputMode = iota
	modeQuery
	modeFilter
)

func (m inputMode) String() string {
	switch m {
	case modeQuery:
		return "query"
	case modeFilter:
		return "filter"
	default:
		return "normal"
	}
}

// Model represents the UI state
type Model struct {
	bus        eventbus.EventBus
	config     *config.Config
	catalog    *catalog.Catalog
	selection  *selection.Service
	dispatcher *dispatch.Dispatcher
	state      *state.AppState

	queryInput  textinput.Model
	filterInput textinput.Model
	keys        keyMap
	help        help.Model
	renderer    *views.Renderer
	helpOps     *HelpOps

	mode   inputMode
	width  int
	height int
}

// NewModel creates a new UI model. The initial theme comes from the
// config, falling back to the ambient terminal background for "auto".
func NewModel(cfg *config.Config, cat *catalog.Catalog, sel *selection.Service,
	disp *dispatch.Dispatcher, bus eventbus.EventBus, darkBackground bool, initialQuery string) *Model {

	appState := state.NewAppState()
	appState.ShowCategories = cfg.UISettings.ShowCategories
	switch cfg.Theme {
	case config.ThemeDark:
		appState.DarkTheme = true
	case config.ThemeLight:
		appState.DarkTheme = false
	default:
		appState.DarkTheme = darkBackground
	}

	// All categories start expanded
	for _, c := range cat.Categories() {
		appState.ExpandedCategories[c.Name] = true
	}

	queryInput := textinput.New()
	queryInput.Placeholder = "search the web…"
	queryInput.Prompt = ""
	queryInput.SetValue(initialQuery)
	queryInput.Focus()

	filterInput := textinput.New()
	filterInput.Placeholder = "engine name"
	filterInput.Prompt = ""

	// Startup selection from config; Toggle drops unknown names
	for _, name := range cfg.DefaultSelected {
		sel.Toggle(name)
	}

	return &Model{
		bus:         bus,
		config:      cfg,
		catalog:     cat,
		selection:   sel,
		dispatcher:  disp,
		state:       appState,
		queryInput:  queryInput,
		filterInput: filterInput,
		keys:        newKeyMap(),
		help:        help.New(),
		renderer:    views.NewRenderer(appState.DarkTheme),
		helpOps:     NewHelpOps(nil),
		mode:        modeQuery,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps.SetProgram(p)
}

// State exposes the app state for the entrypoint (theme persistence).
func (m *Model) State() *state.AppState {
	return m.state
}

// Query returns the current query text.
func (m *Model) Query() string {
	return m.queryInput.Value()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeQuery:
			return m.updateQueryMode(msg)
		case modeFilter:
			return m.updateFilterMode(msg)
		default:
			return m.updateNormalMode(msg)
		}

	case dispatchedMsg:
		if msg.opened > 0 {
			m.setStatus(fmt.Sprintf("opened %d tab(s)", msg.opened), false)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("copied %d URL(s)", msg.count), false)
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("help pager: %v", msg.err), true)
		}
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)
	}

	return m, nil
}

func (m *Model) updateQueryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "tab":
		m.queryInput.Blur()
		m.mode = modeNormal
		return m, nil
	case "enter":
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	return m, cmd
}

func (m *Model) updateFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Cancel: drop the filter entirely
		m.filterInput.Blur()
		m.filterInput.Reset()
		m.state.FilterQuery = ""
		m.mode = modeNormal
		m.clampCursor()
		return m, nil
	case "enter":
		m.filterInput.Blur()
		m.state.FilterQuery = m.filterInput.Value()
		m.mode = modeNormal
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	// Filter as you type
	m.state.FilterQuery = m.filterInput.Value()
	m.clampCursor()
	return m, cmd
}

func (m *Model) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Toggle):
		m.toggleAtCursor()

	case key.Matches(msg, m.keys.SelectAll):
		m.selection.SelectAll(m.visibleNames())
		m.setStatus(fmt.Sprintf("selected %d engine(s)", m.selection.Count()), false)

	case key.Matches(msg, m.keys.ClearAll):
		m.selection.ClearAll()
		m.setStatus("selection cleared", false)

	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()

	case key.Matches(msg, m.keys.Query):
		m.mode = modeQuery
		m.queryInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		m.filterInput.SetValue(m.state.FilterQuery)
		m.filterInput.Focus()
		// Expand everything so matches are never hidden behind a fold
		for _, c := range m.catalog.Categories() {
			m.state.ExpandedCategories[c.Name] = true
		}
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyURLs()

	case key.Matches(msg, m.keys.Theme):
		m.state.DarkTheme = !m.state.DarkTheme
		m.renderer = views.NewRenderer(m.state.DarkTheme)

	case key.Matches(msg, m.keys.Collapse):
		m.toggleCategoryAtCursor()

	case key.Matches(msg, m.keys.Help):
		return m, m.showHelp()

	case msg.String() == "g":
		m.state.CursorIndex = 0
		m.ensureCursorVisible()

	case msg.String() == "G":
		m.state.CursorIndex = len(m.rows()) - 1
		m.clampCursor()
	}

	return m, nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.DispatchCompletedEvent:
		if e.Failed > 0 {
			m.setStatus(fmt.Sprintf("opened %d tab(s), %d failed — see multisearch.log", len(e.URLs)-e.Failed, e.Failed), true)
		}
	case eventbus.ConfigSavedEvent:
		m.setStatus("config saved", false)
	case eventbus.ErrorEvent:
		m.setStatus(e.Message, true)
	}
	return m, nil
}

// submit dispatches the query to every selected engine. Empty query or
// empty selection is a no-op; the submit affordance is already dimmed.
func (m *Model) submit() tea.Cmd {
	query := m.queryInput.Value()
	selected := m.selection.Selected()
	if query == "" || len(selected) == 0 {
		return nil
	}

	return func() tea.Msg {
		opened := m.dispatcher.Dispatch(query, selected)
		return dispatchedMsg{opened: opened}
	}
}

// copyURLs puts the would-be dispatch URLs on the clipboard.
func (m *Model) copyURLs() tea.Cmd {
	urls := m.dispatcher.URLs(m.queryInput.Value(), m.selection.Selected())
	if len(urls) == 0 {
		return nil
	}

	return func() tea.Msg {
		err := clipboard.WriteAll(strings.Join(urls, "\n"))
		return copiedMsg{count: len(urls), err: err}
	}
}

func (m *Model) showHelp() tea.Cmd {
	if !m.helpOps.Available() {
		m.setStatus("help: "+m.help.View(m.keys), false)
		return nil
	}
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(renderHelpContent())}
	}
}

// visibleNames returns the names passing the current filter, in catalog
// order. This is the Visible Set select-all operates on; category folds
// have no effect on it.
func (m *Model) visibleNames() []string {
	engines := m.catalog.Visible(m.state.FilterQuery)
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = e.Name
	}
	return names
}

// rows builds the flattened display list for the current filter and fold
// state.
func (m *Model) rows() []views.Row {
	visible := m.catalog.Visible(m.state.FilterQuery)

	if !m.state.ShowCategories {
		rows := make([]views.Row, len(visible))
		for i, e := range visible {
			rows[i] = views.Row{Engine: e}
		}
		return rows
	}

	visibleSet := make(map[string]bool, len(visible))
	for _, e := range visible {
		visibleSet[e.Name] = true
	}

	var rows []views.Row
	for _, c := range m.catalog.Categories() {
		var engines []views.Row
		for _, name := range c.Engines {
			if visibleSet[name] {
				e, _ := m.catalog.Get(name)
				engines = append(engines, views.Row{Engine: e, Category: c.Name})
			}
		}
		if len(engines) == 0 {
			continue // hide categories emptied by the filter
		}
		rows = append(rows, views.Row{IsHeader: true, Category: c.Name})
		if m.state.ExpandedCategories[c.Name] {
			rows = append(rows, engines...)
		}
	}
	return rows
}

func (m *Model) toggleAtCursor() {
	rows := m.rows()
	if m.state.CursorIndex < 0 || m.state.CursorIndex >= len(rows) {
		return
	}
	row := rows[m.state.CursorIndex]
	if row.IsHeader {
		m.state.ExpandedCategories[row.Category] = !m.state.ExpandedCategories[row.Category]
		return
	}
	m.selection.Toggle(row.Engine.Name)
}

func (m *Model) toggleCategoryAtCursor() {
	rows := m.rows()
	if m.state.CursorIndex < 0 || m.state.CursorIndex >= len(rows) {
		return
	}
	cat := rows[m.state.CursorIndex].Category
	if cat == "" {
		return
	}
	m.state.ExpandedCategories[cat] = !m.state.ExpandedCategories[cat]
	m.clampCursor()
}

func (m *Model) moveCursor(delta int) {
	m.state.CursorIndex += delta
	m.clampCursor()
}

// clampCursor keeps the cursor inside the current row list and drags the
// viewport along with it, so a shrinking filter never leaves the window
// scrolled past the end of the list.
func (m *Model) clampCursor() {
	rowCount := len(m.rows())
	if m.state.CursorIndex > rowCount-1 {
		m.state.CursorIndex = rowCount - 1
	}
	if m.state.CursorIndex < 0 {
		m.state.CursorIndex = 0
	}
	m.ensureCursorVisible()

	// Don't leave the window hanging past the end of a shrunk list
	if m.state.ViewportHeight > 0 {
		if maxOffset := rowCount - m.state.ViewportHeight; m.state.ViewportOffset > maxOffset {
			if maxOffset < 0 {
				maxOffset = 0
			}
			m.state.ViewportOffset = maxOffset
		}
	}
}

func (m *Model) updateViewportHeight() {
	// header, inputs, submit line, status and help take up the rest
	h := m.height - 10
	if h < 3 {
		h = 3
	}
	m.state.ViewportHeight = h
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	if m.state.ViewportHeight <= 0 {
		m.state.ViewportOffset = 0
		return
	}
	if m.state.CursorIndex < m.state.ViewportOffset {
		m.state.ViewportOffset = m.state.CursorIndex
	}
	if m.state.CursorIndex >= m.state.ViewportOffset+m.state.ViewportHeight {
		m.state.ViewportOffset = m.state.CursorIndex - m.state.ViewportHeight + 1
	}
	if m.state.ViewportOffset < 0 {
		m.state.ViewportOffset = 0
	}
}

func (m *Model) setStatus(msg string, isError bool) {
	m.state.StatusMessage = msg
	m.state.StatusIsError = isError
}

// View renders the UI
func (m *Model) View() string {
	rows := m.rows()

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Query:          m.queryInput.Value(),
		QueryInput:     m.queryInput.View(),
		FilterInput:    m.filterInput.View(),
		FilterQuery:    m.state.FilterQuery,
		Mode:           m.mode.String(),
		Rows:           rows,
		Selected:       m.selection.Selected(),
		Expanded:       m.state.ExpandedCategories,
		CursorIndex:    m.state.CursorIndex,
		SelectedCount:  m.selection.Count(),
		CatalogCount:   m.catalog.Len(),
		VisibleCount:   len(m.catalog.Visible(m.state.FilterQuery)),
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.state.StatusIsError,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		ShortHelp:      m.help.View(m.keys),
	})
}
