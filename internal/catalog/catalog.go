// Package catalog holds the fixed list of search engines the user can
// dispatch queries to. The catalog is assembled once at startup from the
// compiled-in defaults plus any custom engines from the config file, and
// is immutable afterwards.
package catalog

import (
	"strings"

	"multisearch/internal/domain"
)

// Default returns the built-in engine list, in display order.
func Default() []domain.Engine {
	return []domain.Engine{
		{Name: "Google", URLPrefix: "https://www.google.com/search?q=", Category: "General"},
		{Name: "DuckDuckGo", URLPrefix: "https://duckduckgo.com/?q=", Category: "General"},
		{Name: "Bing", URLPrefix: "https://www.bing.com/search?q=", Category: "General"},
		{Name: "Brave", URLPrefix: "https://search.brave.com/search?q=", Category: "General"},
		{Name: "Startpage", URLPrefix: "https://www.startpage.com/sp/search?query=", Category: "General"},
		{Name: "Ecosia", URLPrefix: "https://www.ecosia.org/search?q=", Category: "General"},
		{Name: "Qwant", URLPrefix: "https://www.qwant.com/?q=", Category: "General"},
		{Name: "Yahoo", URLPrefix: "https://search.yahoo.com/search?p=", Category: "General"},
		{Name: "Yandex", URLPrefix: "https://yandex.com/search/?text=", Category: "General"},
		{Name: "Wikipedia", URLPrefix: "https://en.wikipedia.org/w/index.php?search=", Category: "Reference"},
		{Name: "GitHub", URLPrefix: "https://github.com/search?q=", Category: "Development"},
		{Name: "Stack Overflow", URLPrefix: "https://stackoverflow.com/search?q=", Category: "Development"},
		{Name: "YouTube", URLPrefix: "https://www.youtube.com/results?search_query=", Category: "Media"},
		{Name: "Reddit", URLPrefix: "https://www.reddit.com/search/?q=", Category: "Media"},
	}
}

// Catalog is an ordered, immutable set of engines with name lookup.
type Catalog struct {
	engines []domain.Engine
	byName  map[string]domain.Engine
}

// New builds a catalog from the given engines. Later entries whose name
// collides with an earlier one are dropped, so names stay unique.
func New(engines []domain.Engine) *Catalog {
	c := &Catalog{
		engines: make([]domain.Engine, 0, len(engines)),
		byName:  make(map[string]domain.Engine, len(engines)),
	}
	for _, e := range engines {
		if _, exists := c.byName[e.Name]; exists {
			continue
		}
		c.engines = append(c.engines, e)
		c.byName[e.Name] = e
	}
	return c
}

// NewDefault builds a catalog from the built-in engines plus any extras,
// typically custom engines from the config file.
func NewDefault(extra ...domain.Engine) *Catalog {
	return New(append(Default(), extra...))
}

// Engines returns all engines in catalog order.
func (c *Catalog) Engines() []domain.Engine {
	return c.engines
}

// Get returns the engine with the given name, if present.
func (c *Catalog) Get(name string) (domain.Engine, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Has reports whether an engine with the given name exists.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Names returns all engine names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.engines))
	for i, e := range c.engines {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of engines in the catalog.
func (c *Catalog) Len() int {
	return len(c.engines)
}

// Matches checks if an engine passes the given filter text
func Matches(e domain.Engine, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), strings.ToLower(filter))
}

// Visible returns the engines whose name contains the filter text,
// case-insensitively, preserving catalog order. An empty filter returns
// the full catalog.
func (c *Catalog) Visible(filter string) []domain.Engine {
	if filter == "" {
		return c.engines
	}
	var visible []domain.Engine
	for _, e := range c.engines {
		if Matches(e, filter) {
			visible = append(visible, e)
		}
	}
	return visible
}

// Categories groups the catalog by category, preserving first-appearance
// order of categories and catalog order within each. Engines with an
// empty category land in "Other".
func (c *Catalog) Categories() []domain.Category {
	var ordered []string
	byName := make(map[string]*domain.Category)
	for _, e := range c.engines {
		cat := e.Category
		if cat == "" {
			cat = "Other"
		}
		g, ok := byName[cat]
		if !ok {
			byName[cat] = &domain.Category{Name: cat, Engines: []string{e.Name}}
			ordered = append(ordered, cat)
			continue
		}
		g.Engines = append(g.Engines, e.Name)
	}
	cats := make([]domain.Category, len(ordered))
	for i, name := range ordered {
		cats[i] = *byName[name]
	}
	return cats
}
