package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/huh-boost/storefront/ui"
)

// HandleLegal displays the legal document linked from the footer at this path
func HandleLegal(title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := pageView(c)
		if err != nil {
			return err
		}
		return render(c, ui.LegalPage(v, title, c.Path()))
	}
}
