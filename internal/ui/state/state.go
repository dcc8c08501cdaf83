package state

// AppState contains all the application state
type AppState struct {
	// Filter state
	FilterQuery string // current engine filter

	// List state
	CursorIndex        int             // currently highlighted row
	ExpandedCategories map[string]bool // which categories are expanded
	ShowCategories     bool

	// UI state
	ViewportOffset int // offset for scrolling
	ViewportHeight int // available height for the engine list
	DarkTheme      bool
	StatusMessage  string
	StatusIsError  bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ExpandedCategories: make(map[string]bool),
		ShowCategories:     true,
		ViewportHeight:     20, // Default, updated on first WindowSizeMsg
	}
}
