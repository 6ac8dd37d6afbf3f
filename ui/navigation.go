package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/huh-boost/storefront/picker"
)

type NavLink struct {
	Label string
	Href  string
}

var navLinks = []NavLink{
	{"Collections", "/collections"},
	{"Products", "/products"},
	{"About", "/about"},
}

func logo() g.Node {
	return A(
		Href("/"),
		Class("flex items-center space-x-2 hover:scale-105 transition-transform duration-300"),
		icon("gamepad", "w-7 h-7 text-blue-400"),
		H1(Class("text-lg lg:text-xl font-bold text-white"), g.Text("HUH BOOST")),
	)
}

func desktopLinks(currentPath string) g.Node {
	return Div(
		Class("hidden md:flex items-center space-x-6"),
		g.Map(navLinks, func(l NavLink) g.Node {
			class := "text-white hover:text-blue-400 transition-colors duration-300"
			if l.Href == currentPath {
				class = "text-blue-400"
			}
			return A(Href(l.Href), Class(class), g.Text(l.Label))
		}),
	)
}

func mobileToggle(open bool) g.Node {
	name, title := "menu", "Open menu"
	if open {
		name, title = "close", "Close menu"
	}
	return iconButton(name, title,
		ID("mobile-toggle"),
		hx.Post("/picker/mobile"),
		hx.Target("#"+mobileMenuID),
		hx.Swap("outerHTML"),
	)
}

// MobileToggleOOB refreshes the hamburger icon alongside a mobile menu swap.
func MobileToggleOOB(open bool) g.Node {
	return Div(
		ID("mobile-toggle-slot"),
		Class("md:hidden"),
		hx.SwapOOB("true"),
		mobileToggle(open),
	)
}

func Navbar(v picker.View, currentPath string) g.Node {
	return Nav(
		Class("sticky top-0 z-50 bg-slate-900/80 backdrop-blur-md border-b border-gray-800"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("flex items-center justify-between h-16"),
				logo(),
				desktopLinks(currentPath),
				PickerRoot(v),
				Div(
					Class("flex items-center space-x-4"),
					iconLink("search", "Search collections", "/collections"),
					Div(ID("mobile-toggle-slot"), Class("md:hidden"), mobileToggle(v.MobileOpen)),
				),
			),
			MobileMenu(v),
		),
	)
}
