package ui

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var companyLinks = []NavLink{
	{"Help Center", "#"},
	{"Work with us", "#"},
	{"Blog", "#"},
	{"Definitions", "#"},
	{"Site Map", "#"},
}

// LegalPages are the footer's legal documents, each served at its Href.
var LegalPages = []NavLink{
	{"Terms of service", "/terms-of-service"},
	{"Privacy policy", "/privacy-policy"},
	{"Cookies policy", "/cookies-policy"},
	{"Code of honor", "/code-of-honor"},
	{"Report Abuse", "/report-abuse"},
}

var socials = []string{"Facebook", "Instagram", "Twitter", "YouTube", "TikTok"}

func footerColumn(title string, links []NavLink) g.Node {
	return Div(
		Class("md:col-span-1"),
		H4(Class("text-lg font-bold mb-4"), g.Text(title)),
		Ul(
			Class("space-y-2 text-gray-400"),
			g.Map(links, func(l NavLink) g.Node {
				return Li(A(Href(l.Href), Class("hover:text-white transition-colors"), g.Text(l.Label)))
			}),
		),
	)
}

func brandColumn() g.Node {
	return Div(
		Class("md:col-span-1"),
		Div(
			Class("flex items-center space-x-2 mb-4"),
			Div(Class("w-8 h-8 bg-blue-500 rounded flex items-center justify-center"), icon("gamepad", "w-6 h-6 text-white")),
			H2(Class("text-xl font-bold"), g.Text("HUH Boost")),
		),
		H3(Class("text-2xl font-bold mb-3"), g.Text("The All-In-One Platform for Gamers")),
		P(Class("text-gray-400 mb-6"), g.Text("Changing the lives of everyday gamers, one game at a time.")),
		Div(
			Class("text-gray-400 text-sm space-y-1"),
			P(g.Text("Headquarters")),
			P(g.Text("Office address")),
			P(g.Text("Global Gaming Services d.o.o.")),
			P(g.Text("Croatia")),
		),
	)
}

func helpColumn() g.Node {
	return Div(
		Class("md:col-span-1"),
		H4(Class("text-lg font-bold mb-4"), g.Text("Need Help?")),
		P(Class("text-gray-400 mb-6"), g.Text("We're here to help. Our expert human-support team is at your service 24/7.")),
		Div(
			Class("space-y-3 mb-6"),
			glassButton("Let's Chat", []g.Node{glassLayers(), icon("chat", "w-4 h-4 text-white relative z-10")},
				withType("button"), withClass("w-full")),
			gradientButton("Join Discord", []g.Node{icon("discord", "w-4 h-4 text-white relative z-10")},
				withType("button"), withClass("w-full")),
		),
		Div(
			Class("flex items-center space-x-2"),
			Div(Class("w-4 h-4 bg-blue-500 rounded-full")),
			Span(Class("text-sm"), g.Text("English / EUR")),
		),
	)
}

func SiteFooter() g.Node {
	return Footer(
		Class("bg-slate-900 text-white border-t border-gray-800"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-12"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-4 gap-8"),
				brandColumn(),
				footerColumn("Company", companyLinks),
				footerColumn("Legal", LegalPages),
				helpColumn(),
			),
		),
		Div(
			Class("border-t border-gray-800"),
			Div(
				Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-6 flex flex-col md:flex-row items-center justify-between space-y-4 md:space-y-0"),
				Div(
					Class("text-gray-400 text-sm"),
					g.Text(fmt.Sprintf("Copyright © %d Global Gaming Services d.o.o. All rights Reserved", time.Now().Year())),
				),
				Div(
					Class("flex items-center space-x-4"),
					g.Map(socials, func(name string) g.Node {
						return A(Href("#"), Class("text-gray-400 hover:text-white transition-colors text-sm"), Aria("label", name), g.Text(name))
					}),
				),
			),
		),
	)
}
