package app

import (
	"activity-finder/database"
	"activity-finder/services"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Store      *database.Handle
	Activities *services.ActivityService
	Logger     *slog.Logger
}

// New creates a new App instance with all dependencies
func New(store *database.Handle, activities *services.ActivityService, logger *slog.Logger) *App {
	return &App{
		Store:      store,
		Activities: activities,
		Logger:     logger,
	}
}
