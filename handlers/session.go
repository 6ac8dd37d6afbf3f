package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/huh-boost/storefront/config"
	"github.com/huh-boost/storefront/loader"
	"github.com/huh-boost/storefront/picker"
)

var store = session.New(session.Config{
	KeyLookup:      "cookie:session_id",
	CookieHTTPOnly: true,
	CookieSameSite: "Lax",
})

// sessionID returns the visitor's session id, starting a session on the
// first request so that the cookie is issued.
func sessionID(c *fiber.Ctx) (string, error) {
	sess, err := store.Get(c)
	if err != nil {
		return "", err
	}
	id := sess.ID()
	if sess.Fresh() {
		sess.Set("picker", true)
		if err := sess.Save(); err != nil {
			return "", err
		}
	}
	return id, nil
}

// currentPicker returns the picker mounted for this visitor, mounting one if
// needed.
func currentPicker(c *fiber.Ctx) (*picker.Picker, error) {
	id, err := sessionID(c)
	if err != nil {
		log.Printf("[handlers] session error: %v", err)
		return nil, fiber.ErrInternalServerError
	}
	return registry.Acquire(id), nil
}

// existingPicker looks up the picker without mounting one.
func existingPicker(c *fiber.Ctx) (*picker.Picker, bool) {
	if registry == nil {
		return nil, false
	}
	sess, err := store.Get(c)
	if err != nil || sess.Fresh() {
		return nil, false
	}
	return registry.Get(sess.ID())
}

// pageView prepares the picker for a full page render. Navigating away
// dismisses any open overlay, and a failed catalog fetch is retried.
func pageView(c *fiber.Ctx) (picker.View, error) {
	id, err := sessionID(c)
	if err != nil {
		log.Printf("[handlers] session error: %v", err)
		return picker.View{}, fiber.ErrInternalServerError
	}
	p := registry.Reload(id)
	p.Outside(picker.OverlayNone)
	return p.View(), nil
}

// currentView is the best-effort view used where a picker may not exist.
func currentView(c *fiber.Ctx) picker.View {
	if p, ok := existingPicker(c); ok {
		p.Outside(picker.OverlayNone)
		return p.View()
	}
	return picker.View{
		Label:  config.PickerDefaultLabel,
		Loader: loader.Snapshot{Status: loader.Loading},
	}
}
