package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverlay(t *testing.T) {
	tests := []struct {
		in      string
		want    Overlay
		wantErr bool
	}{
		{"dropdown", OverlayDropdown, false},
		{"search-results", OverlaySearchResults, false},
		{"none", OverlayNone, false},
		{"", OverlayNone, false},
		{"modal", OverlayNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOverlay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutside_ClosedIsNoop(t *testing.T) {
	p := mounted(t, staticFetcher(games, nil))

	assert.False(t, p.Outside(OverlayNone))
	assert.Equal(t, Closed, p.View().State)
	assert.False(t, p.Listening())
}

func TestOutside_ClosesOpenIdle(t *testing.T) {
	p := mounted(t, staticFetcher(games, nil))
	p.Toggle()
	require.True(t, p.Listening())

	assert.True(t, p.Outside(OverlayNone))
	assert.Equal(t, Closed, p.View().State)
	assert.False(t, p.Listening())
}

func TestOutside_InsideDropdownKeepsItOpen(t *testing.T) {
	p := mounted(t, staticFetcher(games, nil))
	p.Toggle()

	assert.False(t, p.Outside(OverlayDropdown))
	assert.False(t, p.Outside(OverlaySearchResults))
	assert.Equal(t, OpenIdle, p.View().State)
}

func TestOutside_SearchResultsNested(t *testing.T) {
	p := mounted(t, staticFetcher(games, nil))
	p.Toggle()
	p.Search("legends")
	require.Equal(t, OverlaySearchResults, p.ActiveOverlay())

	// inside the result panel: nothing closes
	assert.False(t, p.Outside(OverlaySearchResults))
	assert.True(t, p.View().ResultsVisible)

	// inside the dropdown but outside the search box: only the results hide
	assert.True(t, p.Outside(OverlayDropdown))
	v := p.View()
	assert.Equal(t, OpenSearching, v.State)
	assert.False(t, v.ResultsVisible)
	assert.Equal(t, "legends", v.Query)
	assert.Equal(t, OverlayDropdown, v.ActiveOverlay)

	// then outside everything: the dropdown closes and the listener detaches
	assert.True(t, p.Outside(OverlayNone))
	assert.Equal(t, Closed, p.View().State)
	assert.False(t, p.Listening())
}

func TestOutside_FromResultsOutsideEverythingClosesAll(t *testing.T) {
	p := mounted(t, staticFetcher(games, nil))
	p.Toggle()
	p.Search("val")

	assert.True(t, p.Outside(OverlayNone))
	v := p.View()
	assert.Equal(t, Closed, v.State)
	assert.Empty(t, v.Query)
	assert.False(t, v.ResultsVisible)
}
