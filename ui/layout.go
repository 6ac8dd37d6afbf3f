package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/huh-boost/storefront/config"
	"github.com/huh-boost/storefront/picker"
)

// ---- Page Layout ----

func Page(title string, v picker.View, currentPath string, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title + " | HUH Boost",
		Language: "en",
		Head: []g.Node{
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
			StyleEl(g.Raw(particleCSS)),
		},
		Body: []g.Node{
			Class("bg-slate-900 text-white min-h-screen flex flex-col"),
			Navbar(v, currentPath),
			Main(
				Class("flex-1"),
				g.Group(content),
			),
			SiteFooter(),
		},
	})
}

const particleCSS = `@keyframes float{0%,100%{transform:translateY(0);opacity:.2}50%{transform:translateY(-12px);opacity:.6}}
.particle{animation-name:float;animation-iteration-count:infinite;animation-timing-function:ease-in-out}`

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}
