package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/huh-boost/storefront/hero"
	"github.com/huh-boost/storefront/ui"
)

func HandleHome(c *fiber.Ctx) error {
	v, err := pageView(c)
	if err != nil {
		return err
	}
	return render(c, ui.HomePage(v, hero.DefaultProps()))
}

// HandleHeroSlide renders the carousel at the requested slide.
func HandleHeroSlide(c *fiber.Ctx) error {
	i, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid slide index")
	}
	return render(c, ui.HeroCarousel(i))
}

// HandleAbout displays the About page
func HandleAbout(c *fiber.Ctx) error {
	v, err := pageView(c)
	if err != nil {
		return err
	}
	return render(c, ui.AboutPage(v))
}
