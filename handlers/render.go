package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return component.Render(c.Response().BodyWriter())
}

// renderAll renders fragments back to back, for htmx responses that carry
// out-of-band swaps alongside the main target.
func renderAll(c *fiber.Ctx, components ...g.Node) error {
	return render(c, g.Group(components))
}

// retarget swaps the response into selector instead of the element's target.
func retarget(c *fiber.Ctx, selector string) {
	c.Set("HX-Retarget", selector)
	c.Set("HX-Reswap", "outerHTML")
}

// redirect navigates the browser, through htmx when the request came from it.
func redirect(c *fiber.Ctx, path string) error {
	if c.Get("HX-Request") != "" {
		c.Set("HX-Redirect", path)
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Redirect(path, fiber.StatusSeeOther)
}
