package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"multisearch/internal/domain"
)

func testState() ViewState {
	return ViewState{
		Query:      "cats",
		QueryInput: "cats",
		Rows: []Row{
			{IsHeader: true, Category: "General"},
			{Engine: domain.Engine{Name: "Google", URLPrefix: "https://www.google.com/search?q=", Category: "General"}, Category: "General"},
			{Engine: domain.Engine{Name: "Bing", URLPrefix: "https://www.bing.com/search?q=", Category: "General"}, Category: "General"},
		},
		Selected:       map[string]bool{"Google": true},
		Expanded:       map[string]bool{"General": true},
		SelectedCount:  1,
		CatalogCount:   2,
		VisibleCount:   2,
		ViewportHeight: 10,
	}
}

func TestRenderShowsSelectionIndicators(t *testing.T) {
	r := NewRenderer(true)
	out := r.Render(testState())

	assert.Contains(t, out, "[x] Google")
	assert.Contains(t, out, "[ ] Bing")
	assert.Contains(t, out, "▾ General")
	assert.Contains(t, out, "open 1 tab(s)")
}

func TestRenderCollapsedHeaderMarker(t *testing.T) {
	r := NewRenderer(true)
	st := testState()
	st.Expanded["General"] = false
	st.Rows = st.Rows[:1] // only the header remains visible

	out := r.Render(st)
	assert.Contains(t, out, "▸ General")
	assert.NotContains(t, out, "Google")
}

func TestRenderEmptyFilterResult(t *testing.T) {
	r := NewRenderer(true)
	st := testState()
	st.Rows = nil
	st.FilterQuery = "zzz"
	st.VisibleCount = 0

	out := r.Render(st)
	assert.Contains(t, out, "no engines match the filter")
	assert.Contains(t, out, "Filter: zzz (0/2 engines)")
}

func TestRenderViewportScrollMarkers(t *testing.T) {
	r := NewRenderer(true)

	var rows []Row
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		rows = append(rows, Row{Engine: domain.Engine{Name: name, URLPrefix: "https://x/?q="}})
	}
	st := ViewState{
		Rows:           rows,
		Selected:       map[string]bool{},
		Expanded:       map[string]bool{},
		ViewportOffset: 1,
		ViewportHeight: 3,
	}

	out := r.Render(st)
	assert.Contains(t, out, "more above")
	assert.Contains(t, out, "more below")
	assert.Equal(t, 1, strings.Count(out, "[ ] C"), "only the viewport window renders")
	assert.NotContains(t, out, "[ ] F")
}

func TestRenderToleratesStaleViewportOffset(t *testing.T) {
	r := NewRenderer(true)

	// Offset left over from a longer list, before the model re-clamps it
	st := ViewState{
		Rows: []Row{
			{Engine: domain.Engine{Name: "Yahoo", URLPrefix: "https://search.yahoo.com/search?p="}},
		},
		Selected:       map[string]bool{},
		Expanded:       map[string]bool{},
		ViewportOffset: 15,
		ViewportHeight: 3,
	}

	assert.NotPanics(t, func() {
		out := r.Render(st)
		assert.Contains(t, out, "Yahoo")
	})
}

func TestStylesDiffersByTheme(t *testing.T) {
	dark := NewStyles(true)
	light := NewStyles(false)
	assert.NotEqual(t, dark.Title.GetForeground(), light.Title.GetForeground())
}
