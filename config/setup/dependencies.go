package setup

import (
	"activity-finder/app"
	"activity-finder/config"
	"activity-finder/database"
	"activity-finder/services"
	"context"
	"log/slog"
)

// InitDatabase creates the storage handle and warms it so schema problems
// surface at startup rather than on the first request
func InitDatabase(ctx context.Context, dbPath string, logger *slog.Logger) (*database.Handle, error) {
	handle := database.NewHandle(dbPath)

	if _, err := handle.Acquire(ctx); err != nil {
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return handle, nil
}

// InitApp initializes the application with all dependencies
func InitApp(handle *database.Handle, cfg *config.Config, logger *slog.Logger) *app.App {
	// All repositories share the one handle
	activities := services.NewActivityService(
		database.NewActivityRepository(handle),
		database.NewParticipantRepository(handle),
		database.NewFavoriteRepository(handle),
		cfg.Location(),
		cfg.Language(),
		logger,
	)

	application := app.New(handle, activities, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(handle *database.Handle, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if handle != nil {
		if err := handle.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
