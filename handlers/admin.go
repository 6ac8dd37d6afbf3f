package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"

	"github.com/huh-boost/storefront/config"
	"github.com/huh-boost/storefront/ui"
)

// AdminRequired guards the operator pages with basic auth against the
// configured bcrypt hash. With no hash configured every request is refused.
func AdminRequired() fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm: "HUH Boost Admin",
		Authorizer: func(user, pass string) bool {
			if config.AdminPasswordHash == "" || user != config.AdminUser {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(pass)) == nil
		},
	})
}

func HandleAdminCache(c *fiber.Ctx) error {
	v, err := pageView(c)
	if err != nil {
		return err
	}
	return render(c, ui.AdminCachePage(v, catalogService.Stats(), registry.Len()))
}

// HandleAdminCacheSection re-renders the stats panel for htmx refreshes.
func HandleAdminCacheSection(c *fiber.Ctx) error {
	return render(c, ui.AdminCacheSection(catalogService.Stats(), registry.Len()))
}

func HandleClearCache(c *fiber.Ctx) error {
	catalogService.Invalidate(c.Context())
	log.Printf("[admin] Catalog cache cleared from %s", c.IP())
	return render(c, ui.AdminCacheSection(catalogService.Stats(), registry.Len()))
}
