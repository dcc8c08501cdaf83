package domain

// Engine represents a single search engine the user can dispatch to.
type Engine struct {
	Name      string // unique, stable identifier shown in the UI
	URLPrefix string // search URL missing only the percent-encoded query suffix
	Category  string // display grouping ("" means uncategorized)
}

// Category represents a display grouping of engines
type Category struct {
	Name    string
	Engines []string // engine names in catalog order
}
