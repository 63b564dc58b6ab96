package handlers

import (
	"employee-admin/internal/flash"
	mw "employee-admin/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// render wraps c.Render, attaching the pending flash message and the
// authenticated user's display name when present.
func render(c *fiber.Ctx, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	if msg, ok := flash.Take(c); ok {
		bind["Flash"] = msg
	}
	if claims := mw.CurrentUser(c); claims != nil {
		bind["UserName"] = claims.Name
	}
	return c.Render(name, bind)
}
