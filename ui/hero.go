package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/huh-boost/storefront/config"
	"github.com/huh-boost/storefront/hero"
)

const heroParticles = 100

// HeroCarousel renders the background slides with slide i visible. The
// element polls for its successor and is replaced on every tick, so removing
// it from the page stops the rotation.
func HeroCarousel(i int) g.Node {
	n := len(hero.Slides)
	i = hero.Clamp(i, n)
	return Div(
		ID("hero-carousel"),
		Class("absolute inset-0 z-0"),
		Data("slide", fmt.Sprint(i)),
		hx.Get(fmt.Sprintf("/hero/slide/%d", hero.Next(i, n))),
		hx.Trigger(fmt.Sprintf("every %ds", int(config.CarouselInterval.Seconds()))),
		hx.Swap("outerHTML"),
		g.Group(slides(i)),
	)
}

func slides(active int) []g.Node {
	nodes := make([]g.Node, len(hero.Slides))
	for idx, url := range hero.Slides {
		opacity := "opacity-0"
		if idx == active {
			opacity = "opacity-100"
		}
		nodes[idx] = Div(
			Class("absolute inset-0 transition-opacity duration-1000 "+opacity),
			Img(
				Src(url),
				Alt(fmt.Sprintf("Background %d", idx+1)),
				Class("w-full h-full object-cover opacity-20"),
			),
			Div(Class("absolute inset-0 bg-black/60")),
		)
	}
	return nodes
}

func particles() g.Node {
	return Div(
		Class("absolute inset-0 overflow-hidden pointer-events-none"),
		g.Map(hero.Particles(heroParticles, 1), func(p hero.Particle) g.Node {
			return Div(Class("particle absolute w-1 h-1 bg-white/20 rounded-full"), Style(p.Style()))
		}),
	)
}

func heroSearch() g.Node {
	return Div(
		Class("mb-12 max-w-2xl mx-auto"),
		Form(
			Method("get"),
			Action("/collections"),
			Class("relative"),
			Input(
				Type("text"),
				Name("q"),
				Placeholder("Search for games..."),
				Class("w-full px-6 py-4 pl-12 pr-6 bg-gray-800/80 border border-gray-700 rounded-xl text-white placeholder-gray-400 focus:outline-none focus:ring-2 focus:ring-blue-500 focus:border-transparent shadow-lg"),
			),
			Div(
				Class("absolute inset-y-0 left-0 pl-4 flex items-center pointer-events-none"),
				icon("search", "h-5 w-5 text-gray-400"),
			),
		),
	)
}

func serviceTile(s hero.Service) g.Node {
	return A(
		Href(s.Path()),
		Class("group relative bg-white/5 rounded-lg p-4 border border-white/10 hover:bg-white/10 transition-all duration-500 transform hover:scale-105 overflow-hidden shadow-lg"),
		glassLayers(),
		Div(
			Class("flex flex-col items-center justify-center text-center relative z-10"),
			Div(Class("text-blue-400 mb-2 group-hover:scale-110 transition-transform duration-300"), icon(s.Icon, "w-6 h-6")),
			Div(Class("text-white text-xs font-medium group-hover:text-blue-300 transition-colors duration-300"), g.Text(s.Title)),
		),
	)
}

// HeroSection renders the home page banner.
func HeroSection(p hero.Props) g.Node {
	return Section(
		Class("relative min-h-[80vh] flex items-center justify-center overflow-hidden"),
		HeroCarousel(0),
		particles(),
		Div(
			Class("relative z-20 text-center px-4 sm:px-6 lg:px-8 max-w-6xl mx-auto"),
			Div(
				Class("mb-8"),
				H1(Class("text-4xl sm:text-5xl lg:text-6xl font-bold text-white mb-4 leading-tight"), g.Text(p.Title)),
				Div(Class("text-lg sm:text-xl text-gray-300 mb-8"), g.Text(p.Subtitle)),
			),
			heroSearch(),
			Div(
				Class("flex justify-center items-center mb-10"),
				Div(
					Class("grid grid-cols-5 gap-4 max-w-2xl"),
					g.Map(hero.Services, serviceTile),
				),
			),
			gradientButton(p.CTAText, []g.Node{icon("external", "w-5 h-5 relative z-10")},
				withHref(p.CTALink),
				withClass("inline-flex w-auto mx-auto"),
			),
		),
	)
}
