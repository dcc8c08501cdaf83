package dispatch

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multisearch/internal/browser"
	"multisearch/internal/catalog"
	"multisearch/internal/domain"
)

// recordingLauncher captures every URL it is asked to open.
type recordingLauncher struct {
	opened []string
	err    error
	failOn string // when set, only URLs containing it fail
}

func (r *recordingLauncher) OpenURL(u string) error {
	r.opened = append(r.opened, u)
	if r.failOn != "" {
		if strings.Contains(u, r.failOn) {
			return errors.New("launch failed")
		}
		return nil
	}
	return r.err
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Engine{
		{Name: "Google", URLPrefix: "https://www.google.com/search?q=", Category: "General"},
		{Name: "Bing", URLPrefix: "https://www.bing.com/search?q=", Category: "General"},
		{Name: "Yandex", URLPrefix: "https://yandex.com/search/?text=", Category: "General"},
	})
}

func TestDispatchOpensOneTabPerSelectedEngine(t *testing.T) {
	launcher := &recordingLauncher{}
	d := NewDispatcher(testCatalog(), launcher, nil)

	n := d.Dispatch("cats", map[string]bool{"Google": true, "Yandex": true})

	assert.Equal(t, 2, n)
	assert.Equal(t, []string{
		"https://www.google.com/search?q=cats",
		"https://yandex.com/search/?text=cats",
	}, launcher.opened, "one URL per selected engine, in catalog order")
}

func TestDispatchSingleEngineScenario(t *testing.T) {
	launcher := &recordingLauncher{}
	c := catalog.New([]domain.Engine{
		{Name: "Google", URLPrefix: "https://www.google.com/search?q="},
	})
	d := NewDispatcher(c, launcher, nil)

	n := d.Dispatch("cats", map[string]bool{"Google": true})

	require.Equal(t, 1, n)
	assert.Equal(t, []string{"https://www.google.com/search?q=cats"}, launcher.opened)
}

func TestDispatchEmptyQueryIsNoOp(t *testing.T) {
	launcher := &recordingLauncher{}
	d := NewDispatcher(testCatalog(), launcher, nil)

	assert.Zero(t, d.Dispatch("", map[string]bool{"Google": true}))
	assert.Empty(t, launcher.opened)
}

func TestDispatchEmptySelectionIsNoOp(t *testing.T) {
	launcher := &recordingLauncher{}
	d := NewDispatcher(testCatalog(), launcher, nil)

	assert.Zero(t, d.Dispatch("cats", nil))
	assert.Zero(t, d.Dispatch("cats", map[string]bool{}))
	assert.Empty(t, launcher.opened)
}

func TestDispatchIgnoresNamesOutsideCatalog(t *testing.T) {
	launcher := &recordingLauncher{}
	d := NewDispatcher(testCatalog(), launcher, nil)

	n := d.Dispatch("cats", map[string]bool{"Google": true, "NotAnEngine": true})

	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"https://www.google.com/search?q=cats"}, launcher.opened)
}

func TestDispatchContinuesPastLaunchFailures(t *testing.T) {
	launcher := &recordingLauncher{err: errors.New("no display")}
	d := NewDispatcher(testCatalog(), launcher, nil)

	n := d.Dispatch("cats", map[string]bool{"Google": true, "Bing": true, "Yandex": true})

	assert.Zero(t, n, "nothing opened successfully")
	assert.Len(t, launcher.opened, 3, "failures must not abort the burst")
}

func TestDispatchReturnsSuccessCount(t *testing.T) {
	launcher := &recordingLauncher{failOn: "bing.com"}
	d := NewDispatcher(testCatalog(), launcher, nil)

	n := d.Dispatch("cats", map[string]bool{"Google": true, "Bing": true, "Yandex": true})

	assert.Equal(t, 2, n, "failed launches are not counted as opened")
	assert.Len(t, launcher.opened, 3)
}

func TestQueryEncodingRoundTrip(t *testing.T) {
	queries := []string{
		"cats",
		"hello world",
		"a&b=c",
		"100% sure?",
		"söka på svenska",
		"検索",
		"c++ templates",
	}

	launcher := &recordingLauncher{}
	c := catalog.New([]domain.Engine{
		{Name: "Google", URLPrefix: "https://www.google.com/search?q="},
	})
	d := NewDispatcher(c, launcher, nil)

	for _, q := range queries {
		launcher.opened = nil
		require.Equal(t, 1, d.Dispatch(q, map[string]bool{"Google": true}), "query %q", q)

		suffix := strings.TrimPrefix(launcher.opened[0], "https://www.google.com/search?q=")
		decoded, err := url.QueryUnescape(suffix)
		require.NoError(t, err, "query %q", q)
		assert.Equal(t, q, decoded, "decoding the URL suffix must yield the original query")
	}
}

func TestURLsPreviewHasNoSideEffects(t *testing.T) {
	launcher := &recordingLauncher{}
	d := NewDispatcher(testCatalog(), launcher, nil)

	urls := d.URLs("cats", map[string]bool{"Bing": true, "Yandex": true})

	assert.Equal(t, []string{
		"https://www.bing.com/search?q=cats",
		"https://yandex.com/search/?text=cats",
	}, urls)
	assert.Empty(t, launcher.opened, "URLs must not open anything")

	assert.Nil(t, d.URLs("", map[string]bool{"Bing": true}))
	assert.Nil(t, d.URLs("cats", nil))
}

func TestLauncherFuncAdapter(t *testing.T) {
	var got string
	l := browser.Func(func(u string) error {
		got = u
		return nil
	})

	require.NoError(t, l.OpenURL("https://example.com"))
	assert.Equal(t, "https://example.com", got)
}
