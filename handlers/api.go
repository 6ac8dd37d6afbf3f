package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/huh-boost/storefront/catalog"
	"github.com/huh-boost/storefront/collection"
	"github.com/huh-boost/storefront/ui"
)

var catalogService *catalog.Service

// HandleCollectionsAPI serves {"collections": [...]}, the payload the picker
// loader fetches.
func HandleCollectionsAPI(c *fiber.Ctx) error {
	body, err := catalogService.Payload(c.Context())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(body)
}

// HandleCollections lists every collection, or those matching ?q=.
func HandleCollections(c *fiber.Ctx) error {
	list, err := catalogService.Collections(c.Context())
	if err != nil {
		return err
	}
	query := c.Query("q")
	if query != "" {
		list = collection.Filter(list, query)
	}
	v, err := pageView(c)
	if err != nil {
		return err
	}
	return render(c, ui.CollectionsPage(v, list, query))
}

// HandleCollection renders one collection; "all" is the full list.
func HandleCollection(c *fiber.Ctx) error {
	if c.Params("handle") == "all" {
		return HandleCollections(c)
	}
	list, err := catalogService.Collections(c.Context())
	if err != nil {
		return err
	}
	col, ok := collection.ByHandle(list, c.Params("handle"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Collection not found")
	}
	v, err := pageView(c)
	if err != nil {
		return err
	}
	return render(c, ui.CollectionPage(v, col))
}
