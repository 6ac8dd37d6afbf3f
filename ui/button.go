package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

type buttonOption func(*buttonConfig)

type buttonConfig struct {
	href       string
	buttonType string
	class      string
	attributes []g.Node
}

// withHref makes the button a link with the specified href
func withHref(href string) buttonOption {
	return func(c *buttonConfig) {
		c.href = href
	}
}

func withType(buttonType string) buttonOption {
	return func(c *buttonConfig) {
		c.buttonType = buttonType
	}
}

func withClass(class string) buttonOption {
	return func(c *buttonConfig) {
		c.class = class
	}
}

func withAttributes(attrs ...g.Node) buttonOption {
	return func(c *buttonConfig) {
		c.attributes = append(c.attributes, attrs...)
	}
}

// buttonStyled builds a button or link with the given base class. Children
// such as icons go before the label.
func buttonStyled(text, baseClass string, children []g.Node, options ...buttonOption) g.Node {
	config := &buttonConfig{}
	for _, option := range options {
		option(config)
	}

	class := baseClass
	if config.class != "" {
		class += " " + config.class
	}

	attrs := []g.Node{Class(class)}
	if config.buttonType != "" {
		attrs = append(attrs, Type(config.buttonType))
	}
	attrs = append(attrs, config.attributes...)
	attrs = append(attrs, children...)
	attrs = append(attrs, Span(Class("relative z-10"), g.Text(text)))

	if config.href != "" {
		return A(append([]g.Node{Href(config.href)}, attrs...)...)
	}
	return Button(attrs...)
}

// glassButton is the translucent button used across the chrome.
func glassButton(text string, children []g.Node, options ...buttonOption) g.Node {
	return buttonStyled(text, "group relative flex items-center space-x-2 px-4 py-2 bg-white/5 border border-white/10 rounded-lg text-white hover:bg-white/10 transition-all duration-500 shadow-lg", children, options...)
}

// gradientButton is the primary call-to-action button.
func gradientButton(text string, children []g.Node, options ...buttonOption) g.Node {
	return buttonStyled(text, "group relative flex items-center space-x-2 px-4 py-2 bg-gradient-to-r from-blue-500 via-blue-600 to-blue-700 rounded-lg text-white hover:from-blue-600 hover:to-purple-600 transition-all duration-500 shadow-xl border border-white/10", children, options...)
}

// buttonDanger creates a danger button (red background)
func buttonDanger(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "px-4 py-2 rounded inline-block bg-red-500 text-white hover:bg-red-600", nil, options...)
}
