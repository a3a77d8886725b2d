package setup

import (
	"activity-finder/app"
	"activity-finder/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", handlers.Health(application))
	fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := fiberApp.Group("/api")

	api.Get("/categories", handlers.Categories)
	api.Get("/profile", handlers.GetProfile(application))

	api.Get("/activities", handlers.ListActivities(application))
	api.Post("/activities", handlers.CreateActivity(application))
	api.Get("/activities/:id", handlers.GetActivity(application))
	api.Put("/activities/:id", handlers.UpdateActivity(application))
	api.Delete("/activities/:id", handlers.DeleteActivity(application))

	api.Get("/activities/:id/participants", handlers.ListParticipants(application))
	api.Post("/activities/:id/participants", handlers.JoinActivity(application))
	api.Delete("/activities/:id/participants/:name", handlers.LeaveActivity(application))

	api.Put("/activities/:id/favorite", handlers.AddFavorite(application))
	api.Delete("/activities/:id/favorite", handlers.RemoveFavorite(application))
	api.Post("/activities/:id/favorite/toggle", handlers.ToggleFavorite(application))
}
