package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Icon Components ----

var iconPaths = map[string]string{
	"gamepad":  `<path d="M6 12h4m-2-2v4m7-1h.01M18 11h.01"/><rect x="2" y="6" width="20" height="12" rx="6"/>`,
	"chevron":  `<path d="m6 9 6 6 6-6"/>`,
	"search":   `<circle cx="11" cy="11" r="8"/><path d="m21 21-4.3-4.3"/>`,
	"target":   `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`,
	"fire":     `<path d="M8.5 14.5A2.5 2.5 0 0 0 11 12c0-1.38-.5-2-1-3-1.07-2.14 0-5.5 3-7.5.5 2.5 2 4.9 4 6.5 2 1.6 3 3.5 3 5.5a7 7 0 1 1-14 0c0-1.15.43-2.29 1-3a2.5 2.5 0 0 0 2.5 2.5z"/>`,
	"rocket":   `<path d="M4.5 16.5c-1.5 1.26-2 5-2 5s3.74-.5 5-2c.71-.84.7-2.13-.09-2.91a2.18 2.18 0 0 0-2.91-.09z"/><path d="M12 15l-3-3a22 22 0 0 1 2-3.95A12.88 12.88 0 0 1 22 2c0 2.72-.78 7.5-6 11a22.35 22.35 0 0 1-4 2z"/>`,
	"menu":     `<path d="M4 6h16M4 12h16M4 18h16"/>`,
	"close":    `<path d="M18 6 6 18M6 6l12 12"/>`,
	"user":     `<circle cx="12" cy="8" r="4"/><path d="M4 21a8 8 0 0 1 16 0"/>`,
	"box":      `<path d="M21 8 12 3 3 8v8l9 5 9-5z"/><path d="m3 8 9 5 9-5M12 13v8"/>`,
	"coins":    `<circle cx="8" cy="8" r="6"/><path d="M18.09 10.37A6 6 0 1 1 10.34 18"/>`,
	"upgrade":  `<path d="m18 15-6-6-6 6"/><path d="M12 9v12"/>`,
	"chat":     `<path d="M21 15a2 2 0 0 1-2 2H7l-4 4V5a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2z"/>`,
	"discord":  `<path d="M9 12h.01M15 12h.01"/><path d="M7.5 7.5c3-1 6-1 9 0M7 16.5c3 1 7 1 10 0"/><path d="M15.5 17c0 1 1.5 3 2 3 1.5 0 2.83-1.67 3.5-3 .67-1.67.5-5.83-1.5-11.5-1.46-1.06-2.99-1.34-4.5-1.5l-1 2.5M8.5 17c0 1-1.36 3-1.83 3-1.4 0-2.64-1.67-3.17-3-.53-1.67-.4-5.83 1.5-11.5 1.39-1.06 2.85-1.34 4.5-1.5l1 2.5"/>`,
	"external": `<path d="M5 12h14M12 5l7 7-7 7"/>`,
}

// icon renders an inline stroke icon. Unknown names render nothing.
func icon(name, class string) g.Node {
	path, ok := iconPaths[name]
	if !ok {
		return nil
	}
	return SVG(
		Class(class),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Raw(path),
	)
}

// iconButton creates an icon-only button with consistent styling
func iconButton(name, title string, attrs ...g.Node) g.Node {
	return Button(
		Type("button"),
		Class("text-white hover:text-blue-400 transition-colors duration-300 focus:outline-none cursor-pointer"),
		Title(title),
		Aria("label", title),
		g.Group(attrs),
		icon(name, "w-5 h-5"),
	)
}

// iconLink creates an icon-only link with consistent styling
func iconLink(name, title, href string, attrs ...g.Node) g.Node {
	return A(
		Href(href),
		Class("text-white hover:text-blue-400 transition-colors duration-300"),
		Title(title),
		Aria("label", title),
		g.Group(attrs),
		icon(name, "w-5 h-5"),
	)
}
