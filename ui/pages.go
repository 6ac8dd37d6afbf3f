package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/huh-boost/storefront/collection"
	"github.com/huh-boost/storefront/hero"
	"github.com/huh-boost/storefront/picker"
)

func HomePage(v picker.View, props hero.Props) g.Node {
	return Page(
		"Home",
		v,
		"/",
		[]g.Node{
			HeroSection(props),
		},
	)
}

// CollectionsPage lists the catalog, narrowed by query when one is given.
func CollectionsPage(v picker.View, list []collection.Collection, query string) g.Node {
	title := "All Collections"
	if query != "" {
		title = fmt.Sprintf("Results for %q", query)
	}
	return Page(
		"Collections",
		v,
		"/collections",
		[]g.Node{
			contentContainer(
				pageHeader(title),
				Form(
					Method("get"),
					Action("/collections"),
					Class("mb-6"),
					Input(
						Type("search"),
						Name("q"),
						Value(query),
						Placeholder("Search for games..."),
						Class("w-full md:w-96 px-4 py-2 bg-white/5 border border-white/10 rounded-lg text-white placeholder-gray-400 focus:outline-none focus:ring-2 focus:ring-blue-500"),
					),
				),
				resultCount(len(list)),
				collectionGrid(list),
			),
		},
	)
}

func CollectionPage(v picker.View, c collection.Collection) g.Node {
	return Page(
		c.Title,
		v,
		collection.Path(c),
		[]g.Node{
			contentContainer(
				Div(
					Class("flex flex-col md:flex-row gap-8"),
					Div(
						Class("relative w-full md:w-1/3 h-64 rounded-lg overflow-hidden bg-gray-800"),
						collectionThumb(c,
							"w-full h-full object-cover",
							"absolute inset-0 flex items-center justify-center bg-gray-700 text-6xl font-bold"),
					),
					Div(
						Class("flex-1"),
						pageHeader(c.Title),
						g.If(c.Description != "", P(Class("text-gray-300 mb-6"), g.Text(c.Description))),
						A(Href("/collections"), Class("text-blue-400 hover:underline"), g.Text("← All collections")),
					),
				),
			),
		},
	)
}

func AboutPage(v picker.View) g.Node {
	return Page(
		"About",
		v,
		"/about",
		[]g.Node{
			contentContainer(
				pageHeader("About HUH Boost"),
				P(Class("text-gray-300 mb-4"), g.Text("HUH Boost is the all-in-one platform for gamers: premium accounts, expert boosting and authentic game assets.")),
				P(Class("text-gray-300"), g.Text("Our expert human-support team is at your service 24/7.")),
			),
		},
	)
}

// LegalPage renders one of the footer's legal documents.
func LegalPage(v picker.View, title, path string) g.Node {
	return Page(
		title,
		v,
		path,
		[]g.Node{
			contentContainer(
				pageHeader(title),
				P(Class("text-gray-300"), g.Text("This document is maintained by Global Gaming Services d.o.o. Contact support for the current version.")),
			),
		},
	)
}

func ErrorPage(v picker.View, code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		v,
		"",
		[]g.Node{
			contentContainer(
				pageHeader(fmt.Sprintf("Error %d", code)),
				P(Class("text-gray-300"), g.Text(message)),
			),
		},
	)
}
