package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/huh-boost/storefront/db"
)

// HandleHealth returns the health status of the application
func HandleHealth(c *fiber.Ctx) error {
	health := map[string]any{
		"status": "ok",
	}

	if err := db.Ping(c.Context()); err != nil {
		health["status"] = "unhealthy"
		health["database"] = "down"
		c.Status(fiber.StatusServiceUnavailable)
	} else {
		health["database"] = "up"
	}

	// The shared cache is optional; the catalog falls back to the database.
	if err := catalogService.Ping(c.Context()); err != nil {
		health["cache"] = "down"
	} else {
		health["cache"] = "up"
	}

	if registry != nil {
		health["pickers"] = registry.Len()
	}

	c.Set("Content-Type", "application/json")
	return json.NewEncoder(c).Encode(health)
}
