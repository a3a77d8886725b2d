package handlers

import (
	"activity-finder/app"

	"github.com/gofiber/fiber/v2"
)

// AddFavorite marks an activity as favorite (idempotent)
func AddFavorite(a *app.App) fiber.Handler {
	return setFavorite(a, true)
}

// RemoveFavorite clears the favorite marker (idempotent)
func RemoveFavorite(a *app.App) fiber.Handler {
	return setFavorite(a, false)
}

func setFavorite(a *app.App, favorite bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Activities.SetFavorite(c.UserContext(), c.Params("id"), favorite); err != nil {
			return storeError(c, a.Logger, "Failed to update favorite", err)
		}
		return success(c, fiber.Map{"isFavorite": favorite})
	}
}

// ToggleFavorite flips the marker and reports the new state
func ToggleFavorite(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fav, err := a.Activities.ToggleFavorite(c.UserContext(), c.Params("id"))
		if err != nil {
			return storeError(c, a.Logger, "Failed to toggle favorite", err)
		}
		return success(c, fiber.Map{"isFavorite": fav})
	}
}
