package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/huh-boost/storefront/catalog"
	"github.com/huh-boost/storefront/picker"
	"github.com/huh-boost/storefront/ui"
)

// Init wires the handlers to the picker registry and catalog service.
func Init(r *picker.Registry, svc *catalog.Service) {
	registry = r
	catalogService = svc
}

func Routes(app *fiber.App) {
	app.Get("/", HandleHome)
	app.Get("/about", HandleAbout)
	app.Get("/health", HandleHealth)
	app.Get("/hero/slide/:index", HandleHeroSlide)

	// Collections
	app.Get("/collections", HandleCollections)
	app.Get("/collections/:handle", HandleCollection)
	app.Get("/api/collections", HandleCollectionsAPI)

	// Picker partials for htmx
	app.Get("/picker", HandlePicker)
	app.Get("/picker/featured", HandleFeatured)
	app.Get("/picker/search", HandleSearch)
	app.Post("/picker/toggle", HandleToggle)
	app.Post("/picker/focus", HandleFocus)
	app.Post("/picker/select", HandleSelect)
	app.Post("/picker/dismiss", HandleDismiss)
	app.Post("/picker/close", HandleClose)
	app.Post("/picker/mobile", HandleMobile)

	// Legal pages
	for _, l := range ui.LegalPages {
		app.Get(l.Href, HandleLegal(l.Label))
	}

	// Admin
	admin := app.Group("/admin", AdminRequired())
	admin.Get("/cache", HandleAdminCache)
	admin.Get("/cache/section", HandleAdminCacheSection)
	admin.Post("/cache/clear", HandleClearCache)
}
