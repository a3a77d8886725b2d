package handlers

import (
	"activity-finder/app"
	"activity-finder/models"
	"activity-finder/query"

	"github.com/gofiber/fiber/v2"
)

type activityResponse struct {
	models.ListedActivity
	Color string `json:"color"`
}

func toResponse(a models.ListedActivity) activityResponse {
	return activityResponse{ListedActivity: a, Color: models.CategoryColor(a.Category)}
}

// ListActivities returns the filtered and sorted activity list
func ListActivities(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		window, err := query.ParseDateWindow(c.Query("date"))
		if err != nil {
			return badRequest(c, err.Error())
		}
		mode, err := query.ParseSortMode(c.Query("sort"))
		if err != nil {
			return badRequest(c, err.Error())
		}

		list, err := a.Activities.Browse(c.UserContext(), query.Options{
			Search:        c.Query("q"),
			Category:      c.Query("category", query.CategoryAll),
			Date:          window,
			FavoritesOnly: c.QueryBool("favorites", false),
			Sort:          mode,
		})
		if err != nil {
			return storeError(c, a.Logger, "Failed to load activities", err)
		}

		out := make([]activityResponse, len(list))
		for i, item := range list {
			out[i] = toResponse(item)
		}
		return success(c, fiber.Map{"activities": out})
	}
}

// GetActivity returns one activity with participants and favorite flag
func GetActivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		details, err := a.Activities.Details(c.UserContext(), c.Params("id"))
		if err != nil {
			return storeError(c, a.Logger, "Failed to load activity", err)
		}
		if details == nil {
			return notFound(c, "Activity not found")
		}
		return success(c, fiber.Map{"activity": toResponse(*details)})
	}
}

// CreateActivity stores a new activity
func CreateActivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.NewActivity
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		activity, err := a.Activities.Create(c.UserContext(), req)
		if err != nil {
			return storeError(c, a.Logger, "Failed to create activity", err)
		}
		return created(c, fiber.Map{"activity": toResponse(models.ListedActivity{Activity: *activity})})
	}
}

// UpdateActivity replaces the editable fields of an activity
func UpdateActivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ActivityInput
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		activity, err := a.Activities.Update(c.UserContext(), c.Params("id"), req)
		if err != nil {
			return storeError(c, a.Logger, "Failed to update activity", err)
		}
		return success(c, fiber.Map{"activity": toResponse(models.ListedActivity{Activity: *activity})})
	}
}

// DeleteActivity removes an activity; deleting a missing one succeeds
func DeleteActivity(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Activities.Delete(c.UserContext(), c.Params("id")); err != nil {
			return storeError(c, a.Logger, "Failed to delete activity", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetProfile returns the creator's own activities and the favorites
func GetProfile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile, err := a.Activities.Profile(c.UserContext(), c.Query("creator"))
		if err != nil {
			return storeError(c, a.Logger, "Failed to load profile", err)
		}
		return success(c, fiber.Map{"profile": profile})
	}
}
