package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/huh-boost/storefront/ui"
)

// CustomErrorHandler renders application errors inside the storefront chrome
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if code == fiber.StatusInternalServerError {
		log.Printf("[handlers] %s %s: %v", ctx.Method(), ctx.Path(), err)
		message = "Something went wrong. Please try again."
	}

	ctx.Status(code)
	if ctx.Get("HX-Request") != "" {
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return ctx.SendString(message)
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return ui.ErrorPage(currentView(ctx), code, message).Render(ctx)
}
