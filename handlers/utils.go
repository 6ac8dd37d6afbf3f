package handlers

import "github.com/gofiber/fiber/v2"

// getQueryParam gets a parameter from either query string or form data
func getQueryParam(ctx *fiber.Ctx, key string) string {
	if value := ctx.Query(key); value != "" {
		return value
	}
	return ctx.FormValue(key)
}
