package handlers

import (
	"activity-finder/app"
	"activity-finder/models"

	"github.com/gofiber/fiber/v2"
)

// Categories lists the categories offered when creating an activity
func Categories(c *fiber.Ctx) error {
	out := make([]fiber.Map, 0, len(models.KnownCategories))
	for _, name := range models.KnownCategories {
		out = append(out, fiber.Map{"name": name, "color": models.CategoryColor(name)})
	}
	return c.JSON(fiber.Map{"categories": out})
}

// Health reports whether the store can be opened
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := a.Store.Acquire(c.UserContext()); err != nil {
			a.Logger.Warn("health check failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return success(c, fiber.Map{"status": "ok"})
	}
}
