package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/huh-boost/storefront/collection"
	"github.com/huh-boost/storefront/loader"
	"github.com/huh-boost/storefront/picker"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

var sample = []collection.Collection{
	{ID: "1", Title: "Valorant", Handle: "valorant", Image: &collection.Image{URL: "https://cdn.example/v.png"}},
	{ID: "2", Title: "Apex Legends", Handle: "apex-legends", Description: "Battle royale"},
}

func openView(list []collection.Collection) picker.View {
	return picker.View{
		State:         picker.OpenIdle,
		Label:         "Select Game",
		ActiveOverlay: picker.OverlayDropdown,
		Loader:        loader.Snapshot{Status: loader.Success, Collections: list},
		Collections:   list,
		Featured:      list,
	}
}

func TestPickerRoot_Closed(t *testing.T) {
	html := renderString(t, PickerRoot(picker.View{State: picker.Closed, Label: "Select Game"}))

	assert.Contains(t, html, `id="collection-picker"`)
	assert.Contains(t, html, "Select Game")
	assert.NotContains(t, html, "Featured Collections")
	assert.NotContains(t, html, "pointerdown")
}

func TestPickerRoot_OpenListensForDropdown(t *testing.T) {
	html := renderString(t, PickerRoot(openView(sample)))

	assert.Contains(t, html, "Featured Collections")
	assert.Contains(t, html, "View All Collections")
	assert.Contains(t, html, `hx-post="/picker/dismiss"`)
	assert.Contains(t, html, "[data-overlay=dropdown]")
	assert.Contains(t, html, `hx-vals="{&#34;handle&#34;:&#34;valorant&#34;}"`)
}

func TestFeaturedGrid(t *testing.T) {
	t.Run("loading polls with skeletons", func(t *testing.T) {
		html := renderString(t, FeaturedGrid(picker.View{Loader: loader.Snapshot{Status: loader.Loading}}))
		assert.Contains(t, html, `hx-get="/picker/featured"`)
		assert.Equal(t, 4, strings.Count(html, "animate-pulse"))
	})

	t.Run("failure shows empty state", func(t *testing.T) {
		html := renderString(t, FeaturedGrid(picker.View{Loader: loader.Snapshot{Status: loader.Failure, Err: errors.New("boom")}}))
		assert.Contains(t, html, "No collections found")
		assert.NotContains(t, html, "hx-get")
	})

	t.Run("success renders cards with initial fallback", func(t *testing.T) {
		html := renderString(t, FeaturedGrid(openView(sample)))
		assert.Contains(t, html, `src="https://cdn.example/v.png"`)
		assert.Contains(t, html, "Apex Legends")
		assert.Contains(t, html, ">A<")
	})
}

func TestSearchResults(t *testing.T) {
	hidden := renderString(t, SearchResults(picker.View{Results: sample}))
	assert.Equal(t, `<div id="collection-search-results"></div>`, hidden)

	v := openView(sample)
	v.State = picker.OpenSearching
	v.Results = sample[1:]
	v.ResultsVisible = true
	html := renderString(t, SearchResults(v))
	assert.Contains(t, html, "Apex Legends")
	assert.Contains(t, html, "Battle royale")
	assert.NotContains(t, html, "Valorant")
}

func TestOutsideListener(t *testing.T) {
	inert := renderString(t, OutsideListener(picker.View{ActiveOverlay: picker.OverlayNone}))
	assert.NotContains(t, inert, "hx-trigger")

	v := openView(sample)
	v.ActiveOverlay = picker.OverlaySearchResults
	html := renderString(t, OutsideListenerOOB(v))
	assert.Contains(t, html, "[data-overlay=search-results]")
	assert.Contains(t, html, `hx-swap-oob="true"`)
	assert.Equal(t, 1, strings.Count(html, `id="picker-outside-listener"`))
}

func TestMobileMenu(t *testing.T) {
	closed := renderString(t, MobileMenu(picker.View{}))
	assert.Contains(t, closed, `class="hidden"`)

	v := openView(sample)
	v.MobileOpen = true
	v.Label = "Valorant"
	html := renderString(t, MobileMenu(v))
	assert.Contains(t, html, `<option value="valorant" class="bg-slate-800 text-white" selected>Valorant</option>`)
	assert.Contains(t, html, "Products")
}
