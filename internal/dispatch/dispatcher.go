// Package dispatch builds one search URL per selected engine and hands
// each to the browser launcher.
package dispatch

import (
	"log"
	"net/url"

	"multisearch/internal/browser"
	"multisearch/internal/catalog"
	"multisearch/internal/eventbus"
)

// Dispatcher fans a query out to the selected engines.
type Dispatcher struct {
	catalog  *catalog.Catalog
	launcher browser.Launcher
	bus      eventbus.EventBus
}

// NewDispatcher creates a dispatcher. The bus may be nil, in which case no
// completion events are published.
func NewDispatcher(c *catalog.Catalog, launcher browser.Launcher, bus eventbus.EventBus) *Dispatcher {
	return &Dispatcher{
		catalog:  c,
		launcher: launcher,
		bus:      bus,
	}
}

// BuildURL constructs the full search URL for an engine URL prefix and a
// raw query. Decoding the suffix of the result yields the query exactly.
func BuildURL(urlPrefix, query string) string {
	return urlPrefix + url.QueryEscape(query)
}

// Dispatch opens one browser tab per selected engine with the query
// pre-filled, walking the catalog in order. An empty query or empty
// selection is a defined no-op. Launch failures are logged and counted
// but never abort the burst. Returns the number of tabs that opened
// without error.
func (d *Dispatcher) Dispatch(query string, selected map[string]bool) int {
	if query == "" || len(selected) == 0 {
		return 0
	}

	var urls []string
	failed := 0
	for _, e := range d.catalog.Engines() {
		if !selected[e.Name] {
			continue
		}
		u := BuildURL(e.URLPrefix, query)
		urls = append(urls, u)
		if err := d.launcher.OpenURL(u); err != nil {
			failed++
			log.Printf("Failed to open %s: %v", e.Name, err)
		}
	}

	if d.bus != nil {
		d.bus.Publish(eventbus.DispatchCompletedEvent{
			Query:  query,
			URLs:   urls,
			Failed: failed,
		})
	}

	return len(urls) - failed
}

// URLs returns the URLs Dispatch would open for the given query and
// selection, in catalog order, without side effects.
func (d *Dispatcher) URLs(query string, selected map[string]bool) []string {
	if query == "" || len(selected) == 0 {
		return nil
	}

	var urls []string
	for _, e := range d.catalog.Engines() {
		if selected[e.Name] {
			urls = append(urls, BuildURL(e.URLPrefix, query))
		}
	}
	return urls
}
