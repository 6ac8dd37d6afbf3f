package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/huh-boost/storefront/picker"
)

// AdminCachePage shows the catalog cache and the live picker count.
func AdminCachePage(v picker.View, stats map[string]any, pickers int) g.Node {
	return Page(
		"Admin",
		v,
		"/admin/cache",
		[]g.Node{
			contentContainer(
				pageHeader("Admin Dashboard"),
				Div(Class("text-gray-400 text-sm mb-6"), g.Text("Catalog cache and picker sessions.")),
				Div(ID("admin-section-content"), AdminCacheSection(stats, pickers)),
			),
		},
	)
}

func AdminCacheSection(stats map[string]any, pickers int) g.Node {
	return Div(
		Class("space-y-4"),
		CacheStatsPanel("Catalog Cache", stats, "/admin/cache/clear", "/admin/cache/section"),
		Div(
			Class("bg-slate-800 p-4 rounded-lg"),
			statCard("Live pickers", "%d", pickers),
		),
	)
}

// CacheStatsPanel renders ristretto metrics with clear and refresh actions.
func CacheStatsPanel(title string, stats map[string]any, clearEndpoint, refreshEndpoint string) g.Node {
	return Div(
		Class("bg-slate-800 p-4 rounded-lg mb-4"),
		H2(Class("text-lg font-semibold mb-2"), g.Text(title)),
		Div(
			Class("grid grid-cols-2 md:grid-cols-4 gap-4 mb-4"),
			statCard("Hits", "%d", stats["hits"]),
			statCard("Misses", "%d", stats["misses"]),
			statCard("Hit Rate", "%.1f%%", stats["hit_rate"]),
			statCard("Sets", "%d", stats["sets"]),
			statCard("Evicted", "%d", stats["evicted"]),
			statCard("Rejected", "%d", stats["sets_rejected"]),
			statCard("Memory Used", "%.0f KB", stats["memory_used_kb"]),
			statCard("Current Items", "%d", stats["current_items"]),
		),
		Div(
			Class("flex gap-4"),
			buttonDanger("Clear Cache",
				withType("button"),
				withAttributes(
					hx.Post(clearEndpoint),
					hx.Target("#admin-section-content"),
					hx.Swap("innerHTML"),
				),
			),
			glassButton("Refresh Stats", nil,
				withType("button"),
				withAttributes(
					hx.Get(refreshEndpoint),
					hx.Target("#admin-section-content"),
					hx.Swap("innerHTML"),
				),
			),
		),
	)
}

func statCard(label, format string, value any) g.Node {
	return Div(
		Class("bg-slate-900 p-3 rounded border border-white/10"),
		Strong(g.Text(label+": ")),
		g.Textf(format, value),
	)
}
