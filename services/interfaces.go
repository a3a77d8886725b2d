package services

import (
	"activity-finder/models"
	"context"
)

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	ListAll(ctx context.Context) ([]models.Activity, error)
	ListByCreator(ctx context.Context, creatorID string) ([]models.Activity, error)
	GetByID(ctx context.Context, id string) (*models.Activity, error)
	Create(ctx context.Context, in models.NewActivity) (string, error)
	Update(ctx context.Context, a models.Activity) error
	Delete(ctx context.Context, id string) error
}

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	List(ctx context.Context, activityID string) ([]string, error)
	Join(ctx context.Context, activityID, name string) error
	Leave(ctx context.Context, activityID, name string) (int64, error)
}

// FavoriteRepository defines the interface for favorite markers
type FavoriteRepository interface {
	IsFavorite(ctx context.Context, activityID string) (bool, error)
	Add(ctx context.Context, activityID string) error
	Remove(ctx context.Context, activityID string) error
	ListFavoriteActivities(ctx context.Context) ([]models.Activity, error)
	FavoriteIDs(ctx context.Context) (map[string]bool, error)
}
