package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/huh-boost/storefront/collection"
)

// ---- Layout Components ----

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-12"),
		g.Group(content),
	)
}

func glassLayers() g.Node {
	return g.Group([]g.Node{
		Div(Class("absolute inset-0 bg-gradient-to-br from-white/20 via-transparent to-transparent opacity-0 group-hover:opacity-100 transition-opacity duration-500")),
		Div(Class("absolute inset-0 bg-gradient-to-r from-blue-500/5 to-purple-500/5 opacity-0 group-hover:opacity-100 transition-opacity duration-500")),
	})
}

// ---- Message Components ----

func emptyState(message string) g.Node {
	return Div(
		Class("col-span-2 text-center py-8"),
		P(Class("text-gray-400 text-sm"), g.Text(message)),
	)
}

func ValidationError(message string) g.Node {
	return Div(
		Class("bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"),
		g.Text(message),
	)
}

// ---- Collection Components ----

// collectionThumb renders the collection image, or its initial when it has none.
func collectionThumb(c collection.Collection, imgClass, fallbackClass string) g.Node {
	if c.HasImage() {
		return Img(
			Src(c.Image.URL),
			Alt(c.Title),
			Class(imgClass),
			g.Attr("loading", "lazy"),
		)
	}
	return Div(
		Class(fallbackClass),
		g.Text(collection.Initial(c)),
	)
}

func collectionCard(c collection.Collection) g.Node {
	return A(
		Href(collection.Path(c)),
		Class("group relative block bg-white/5 hover:bg-white/10 rounded-lg p-3 transition-all duration-300 overflow-hidden"),
		Div(
			Class("relative w-full h-40 mb-3 rounded-lg overflow-hidden bg-gray-800"),
			collectionThumb(c,
				"w-full h-full object-cover transition-transform duration-300 group-hover:scale-105",
				"absolute inset-0 flex items-center justify-center bg-gray-700 text-3xl font-bold"),
		),
		H3(Class("text-white font-semibold truncate"), g.Text(c.Title)),
		g.If(c.Description != "", P(Class("text-gray-400 text-sm truncate"), g.Text(c.Description))),
	)
}

func collectionGrid(list []collection.Collection) g.Node {
	if len(list) == 0 {
		return emptyState("No collections found")
	}
	return Div(
		Class("grid grid-cols-2 md:grid-cols-4 gap-6"),
		g.Map(list, collectionCard),
	)
}

func resultCount(n int) g.Node {
	noun := "collections"
	if n == 1 {
		noun = "collection"
	}
	return P(Class("text-gray-400 text-sm mb-6"), g.Text(fmt.Sprintf("%d %s", n, noun)))
}
