package handlers

import (
	"activity-finder/app"
	"activity-finder/models"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

func ListParticipants(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		names, err := a.Activities.Participants(c.UserContext(), c.Params("id"))
		if err != nil {
			return storeError(c, a.Logger, "Failed to load participants", err)
		}
		return success(c, fiber.Map{"participants": names})
	}
}

// JoinActivity adds a participant by display name
func JoinActivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.JoinRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		names, err := a.Activities.Join(c.UserContext(), c.Params("id"), req)
		if err != nil {
			return storeError(c, a.Logger, "Failed to join activity", err)
		}
		return created(c, fiber.Map{"participants": names})
	}
}

// LeaveActivity removes every participant entry with the given name
func LeaveActivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := url.PathUnescape(c.Params("name"))
		if err != nil {
			return badRequest(c, "Invalid participant name")
		}

		names, err := a.Activities.Leave(c.UserContext(), c.Params("id"), name)
		if err != nil {
			return storeError(c, a.Logger, "Failed to leave activity", err)
		}
		return success(c, fiber.Map{"participants": names})
	}
}
