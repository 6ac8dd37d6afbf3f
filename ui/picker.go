package ui

import (
	"encoding/json"
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/huh-boost/storefront/collection"
	"github.com/huh-boost/storefront/config"
	"github.com/huh-boost/storefront/loader"
	"github.com/huh-boost/storefront/picker"
)

const (
	pickerID          = "collection-picker"
	searchResultsID   = "collection-search-results"
	outsideListenerID = "picker-outside-listener"
	featuredID        = "featured-collections"
	mobileMenuID      = "mobile-menu"
)

// SearchResultsTarget selects the search results panel.
const SearchResultsTarget = "#" + searchResultsID

func overlayAttr(o picker.Overlay) g.Node {
	return Data("overlay", string(o))
}

// selectAttrs posts the chosen handle; the server answers with HX-Redirect.
func selectAttrs(c collection.Collection) g.Node {
	vals, _ := json.Marshal(map[string]string{"handle": c.Handle})
	return g.Group([]g.Node{
		Type("button"),
		hx.Post("/picker/select"),
		hx.Vals(string(vals)),
		hx.Swap("none"),
	})
}

// PickerRoot renders the desktop collection picker: the toggle, the dropdown
// panel while open, and the outside listener.
func PickerRoot(v picker.View) g.Node {
	chevron := "w-3 h-3 text-gray-400 relative z-10 transition-transform duration-300"
	if v.State.IsOpen() {
		chevron += " rotate-180"
	}
	return Div(
		ID(pickerID),
		Class("relative hidden md:block"),
		overlayAttr(picker.OverlayDropdown),
		Data("state", v.State.String()),
		Button(
			Type("button"),
			Class("group relative flex items-center space-x-2 px-4 py-2 bg-white/5 border border-white/10 rounded-lg text-white hover:bg-white/10 transition-all duration-500 overflow-hidden shadow-lg"),
			Aria("expanded", fmt.Sprint(v.State.IsOpen())),
			hx.Post("/picker/toggle"),
			hx.Target("#"+pickerID),
			hx.Swap("outerHTML"),
			glassLayers(),
			icon("target", "w-5 h-5 text-blue-400 relative z-10"),
			Span(Class("text-sm relative z-10"), g.Text(v.Label)),
			icon("chevron", chevron),
		),
		g.If(v.State.IsOpen(), dropdownPanel(v)),
		OutsideListener(v),
	)
}

func dropdownPanel(v picker.View) g.Node {
	return Div(
		ID("collection-dropdown"),
		Class("absolute top-full left-0 mt-2 w-[420px] bg-slate-800/95 border border-white/10 rounded-lg shadow-2xl overflow-hidden z-50"),
		searchBox(v),
		Div(
			Class("max-h-96 overflow-y-auto"),
			Div(
				Class("p-4"),
				Div(
					Class("flex items-center space-x-2 mb-3"),
					icon("fire", "w-4 h-4 text-red-500"),
					H3(Class("text-white font-semibold text-sm"), g.Text("Featured Collections")),
				),
				FeaturedGrid(v),
			),
			viewAll(),
		),
	)
}

func searchBox(v picker.View) g.Node {
	return Div(
		Class("p-4 border-b border-white/10"),
		overlayAttr(picker.OverlaySearchResults),
		hx.Post("/picker/focus"),
		hx.Trigger("focus from:find input"),
		hx.Target("#"+searchResultsID),
		hx.Swap("outerHTML"),
		Div(
			Class("relative"),
			icon("search", "absolute left-3 top-1/2 transform -translate-y-1/2 w-4 h-4 text-gray-400"),
			Input(
				Type("text"),
				Name("q"),
				Value(v.Query),
				Placeholder("Search Collections..."),
				AutoComplete("off"),
				Class("w-full pl-10 pr-4 py-2 bg-white/5 border border-white/10 rounded-lg text-white text-sm placeholder-gray-400 focus:outline-none focus:ring-2 focus:ring-blue-500"),
				hx.Get("/picker/search"),
				hx.Trigger("input changed delay:200ms, search"),
				hx.Target("#"+searchResultsID),
				hx.Swap("outerHTML"),
			),
			SearchResults(v),
		),
	)
}

// SearchResults renders the results panel. The element is always present so
// it can be swapped; it is empty unless results are visible.
func SearchResults(v picker.View) g.Node {
	if !v.ResultsVisible {
		return Div(ID(searchResultsID))
	}
	return Div(
		ID(searchResultsID),
		Class("absolute top-full left-0 right-0 mt-2 bg-slate-700/95 border border-white/10 rounded-lg shadow-2xl overflow-hidden z-50"),
		Div(
			Class("max-h-64 overflow-y-auto"),
			g.Map(v.Results, searchResult),
		),
	)
}

func searchResult(c collection.Collection) g.Node {
	return Button(
		selectAttrs(c),
		Class("w-full flex items-center gap-3 p-3 hover:bg-white/10 transition-colors border-b border-white/5 text-left"),
		Div(
			Class("w-10 h-10 rounded-lg overflow-hidden bg-gray-800 flex-shrink-0"),
			collectionThumb(c,
				"w-full h-full object-cover",
				"w-full h-full bg-gradient-to-br from-blue-500 to-purple-600 flex items-center justify-center text-white text-sm font-bold"),
		),
		Div(
			Class("flex-1 min-w-0"),
			Div(Class("text-white font-medium text-sm truncate"), g.Text(c.Title)),
			g.If(c.Description != "", Div(Class("text-gray-400 text-xs truncate"), g.Text(c.Description))),
		),
	)
}

// OutsideListener is the single document-level listener for the active
// overlay. Pointer-downs outside it post which overlay, if any, contained the
// target. It renders inert while nothing is open.
func OutsideListener(v picker.View) g.Node {
	return outsideListener(v)
}

// OutsideListenerOOB is the listener as an out-of-band swap, sent along with
// fragments that change the active overlay.
func OutsideListenerOOB(v picker.View) g.Node {
	return outsideListener(v, hx.SwapOOB("true"))
}

func outsideListener(v picker.View, extra ...g.Node) g.Node {
	if !v.Listening() {
		return Div(ID(outsideListenerID), Class("hidden"), g.Group(extra))
	}
	return Div(
		ID(outsideListenerID),
		Class("hidden"),
		Data("active", string(v.ActiveOverlay)),
		hx.Post("/picker/dismiss"),
		hx.Trigger(fmt.Sprintf("pointerdown[!event.target.closest('[data-overlay=%s]')] from:document", v.ActiveOverlay)),
		hx.Vals(`js:{within: (event.target.closest('[data-overlay]') || {dataset: {overlay: 'none'}}).dataset.overlay}`),
		hx.Target("#"+pickerID),
		hx.Swap("outerHTML"),
		g.Group(extra),
	)
}

// FeaturedGrid renders up to four collections, a skeleton while the catalog
// is loading, or the empty state.
func FeaturedGrid(v picker.View) g.Node {
	switch {
	case v.Loader.Status == loader.Loading:
		return Div(
			ID(featuredID),
			Class("grid grid-cols-2 gap-3"),
			hx.Get("/picker/featured"),
			hx.Trigger("load delay:"+config.PickerPollInterval),
			hx.Swap("outerHTML"),
			g.Group(skeletons(config.PickerFeaturedMax)),
		)
	case len(v.Featured) == 0:
		return Div(
			ID(featuredID),
			Class("grid grid-cols-2 gap-3"),
			emptyState("No collections found"),
		)
	default:
		return Div(
			ID(featuredID),
			Class("grid grid-cols-2 gap-3"),
			g.Map(v.Featured, featuredCard),
		)
	}
}

func skeletons(n int) []g.Node {
	nodes := make([]g.Node, n)
	for i := range nodes {
		nodes[i] = Div(
			Class("relative bg-white/5 rounded-lg p-2 min-h-[120px] animate-pulse"),
			Div(Class("w-full h-24 mb-2 rounded-lg bg-gray-700")),
			Div(Class("h-4 bg-gray-700 rounded")),
		)
	}
	return nodes
}

func featuredCard(c collection.Collection) g.Node {
	return Button(
		selectAttrs(c),
		Class("group relative bg-white/5 hover:bg-white/10 rounded-lg p-2 transition-all duration-300 text-left overflow-hidden min-h-[120px]"),
		Div(
			Class("relative w-full h-24 mb-2 rounded-lg overflow-hidden bg-gray-800"),
			collectionThumb(c,
				"w-full h-full object-cover transition-transform duration-300 group-hover:scale-105",
				"absolute inset-0 flex items-center justify-center bg-gray-700 text-lg font-bold"),
			Div(Class("absolute inset-0 bg-gradient-to-t from-black/70 via-black/20 to-transparent")),
		),
		Div(
			Class("flex items-center justify-between"),
			Span(Class("text-white text-xs font-medium truncate"), g.Text(c.Title)),
			Div(
				Class("w-5 h-5 bg-blue-600 rounded-full flex items-center justify-center text-white text-xs font-bold"),
				g.Text(collection.Initial(c)),
			),
		),
	)
}

func viewAll() g.Node {
	return Div(
		Class("p-4 border-t border-white/10 bg-gradient-to-r from-blue-500/10 via-blue-600/10 to-blue-700/10 text-center"),
		Div(
			Class("w-10 h-10 bg-gradient-to-r from-blue-500 via-blue-600 to-blue-700 rounded-full flex items-center justify-center mx-auto mb-3"),
			icon("rocket", "w-4 h-4 text-white"),
		),
		A(
			Href("/collections"),
			Class("text-white font-semibold mb-2 text-sm hover:text-blue-300 transition-colors"),
			hx.Post("/picker/close"),
			hx.Swap("none"),
			g.Text("View All Collections"),
		),
		P(Class("text-gray-300 text-xs"), g.Text("Explore our complete collection of gaming products")),
	)
}

// MobileMenu renders the small-screen menu, or an empty placeholder when closed.
func MobileMenu(v picker.View) g.Node {
	if !v.MobileOpen {
		return Div(ID(mobileMenuID), Class("hidden"))
	}
	return Div(
		ID(mobileMenuID),
		Class("md:hidden bg-white/5 border border-white/10 rounded-lg mt-2 p-4 shadow-xl"),
		Div(
			Class("mb-4"),
			Label(For("mobile-collection"), Class("block text-white text-sm font-medium mb-2"), g.Text("Select Collection")),
			Select(
				ID("mobile-collection"),
				Name("handle"),
				Class("w-full px-3 py-2 bg-white/5 border border-white/10 rounded-lg text-white text-sm focus:outline-none focus:ring-2 focus:ring-blue-500"),
				hx.Post("/picker/select"),
				hx.Trigger("change"),
				hx.Swap("none"),
				Option(Value(""), Class("bg-slate-800 text-white"), g.Text("Select Collection")),
				g.Map(v.Collections, func(c collection.Collection) g.Node {
					return Option(
						Value(c.Handle),
						Class("bg-slate-800 text-white"),
						g.If(c.Title == v.Label, Selected()),
						g.Text(c.Title),
					)
				}),
			),
		),
		Div(
			Class("space-y-2"),
			g.Map(navLinks, func(l NavLink) g.Node {
				return A(Href(l.Href), Class("block text-white hover:bg-white/10 rounded-lg px-3 py-2 transition-colors"), g.Text(l.Label))
			}),
		),
	)
}
