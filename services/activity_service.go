package services

import (
	"activity-finder/models"
	"activity-finder/observability"
	"activity-finder/query"
	"activity-finder/validator"
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// ActivityService combines the repositories into the flows the screens need
type ActivityService struct {
	activities   ActivityRepository
	participants ParticipantRepository
	favorites    FavoriteRepository
	validate     *validator.Validator
	logger       *slog.Logger

	location *time.Location
	language language.Tag
	now      func() time.Time
}

// NewActivityService creates a new activity service. loc decides calendar
// days for the "today" filter and lang the alphabetical order.
func NewActivityService(
	activities ActivityRepository,
	participants ParticipantRepository,
	favorites FavoriteRepository,
	loc *time.Location,
	lang language.Tag,
	logger *slog.Logger,
) *ActivityService {
	if loc == nil {
		loc = time.UTC
	}
	return &ActivityService{
		activities:   activities,
		participants: participants,
		favorites:    favorites,
		validate:     validator.New(),
		logger:       logger,
		location:     loc,
		language:     lang,
		now:          time.Now,
	}
}

// Browse loads every activity, marks favorites and runs the list filters
func (s *ActivityService) Browse(ctx context.Context, opts query.Options) ([]models.ListedActivity, error) {
	all, err := s.activities.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list activities", "error", err)
		return nil, err
	}

	favIDs, err := s.favorites.FavoriteIDs(ctx)
	if err != nil {
		s.logger.Error("failed to load favorites", "error", err)
		return nil, err
	}

	listed := make([]models.ListedActivity, len(all))
	for i, a := range all {
		listed[i] = models.ListedActivity{Activity: a, IsFavorite: favIDs[a.ID]}
	}

	if opts.Now.IsZero() {
		opts.Now = s.now()
	}
	if opts.Location == nil {
		opts.Location = s.location
	}
	if opts.Language == language.Und {
		opts.Language = s.language
	}

	result := query.Apply(listed, opts)
	observability.RecordFilterResult(len(listed), len(result))

	return result, nil
}

// Details returns the activity with its participants and favorite flag.
// A missing activity yields nil without error.
func (s *ActivityService) Details(ctx context.Context, id string) (*models.ListedActivity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load activity", "activity_id", id, "error", err)
		return nil, err
	}
	if a == nil {
		return nil, nil
	}

	participants, err := s.participants.List(ctx, id)
	if err != nil {
		s.logger.Error("failed to load participants", "activity_id", id, "error", err)
		return nil, err
	}
	a.Participants = participants

	fav, err := s.favorites.IsFavorite(ctx, id)
	if err != nil {
		s.logger.Error("failed to load favorite flag", "activity_id", id, "error", err)
		return nil, err
	}

	return &models.ListedActivity{Activity: *a, IsFavorite: fav}, nil
}

// Create stores a new activity and returns it as persisted
func (s *ActivityService) Create(ctx context.Context, in models.NewActivity) (*models.Activity, error) {
	in.ActivityInput = normalize(in.ActivityInput)
	if in.CreatorID != nil && strings.TrimSpace(*in.CreatorID) == "" {
		in.CreatorID = nil
	}

	id, err := s.activities.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	created, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, ErrActivityNotFound
	}

	s.logger.Info("activity created", "activity_id", id, "category", created.Category)
	return created, nil
}

// Update replaces the mutable fields of an activity. The stored creator is kept.
func (s *ActivityService) Update(ctx context.Context, id string, in models.ActivityInput) (*models.Activity, error) {
	in = normalize(in)
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	if err := s.activities.Update(ctx, models.Activity{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Time:        in.Time,
		Location:    *in.Location,
	}); err != nil {
		return nil, err
	}

	updated, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrActivityNotFound
	}

	return updated, nil
}

// Delete removes an activity with its participants and favorite marker
func (s *ActivityService) Delete(ctx context.Context, id string) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete activity", "activity_id", id, "error", err)
		return err
	}
	return nil
}

// Participants lists who joined an activity
func (s *ActivityService) Participants(ctx context.Context, id string) ([]string, error) {
	return s.participants.List(ctx, id)
}

// Join adds name to the activity and returns the updated participant list
func (s *ActivityService) Join(ctx context.Context, id string, req models.JoinRequest) ([]string, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}

	if err := s.participants.Join(ctx, id, req.Name); err != nil {
		return nil, err
	}
	return s.participants.List(ctx, id)
}

// Leave removes name from the activity and returns the updated participant list
func (s *ActivityService) Leave(ctx context.Context, id, name string) ([]string, error) {
	if _, err := s.participants.Leave(ctx, id, name); err != nil {
		return nil, err
	}
	return s.participants.List(ctx, id)
}

// SetFavorite adds or removes the favorite marker
func (s *ActivityService) SetFavorite(ctx context.Context, id string, favorite bool) error {
	if favorite {
		return s.favorites.Add(ctx, id)
	}
	return s.favorites.Remove(ctx, id)
}

// ToggleFavorite flips the marker and returns the new state
func (s *ActivityService) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	fav, err := s.favorites.IsFavorite(ctx, id)
	if err != nil {
		return false, err
	}
	if err := s.SetFavorite(ctx, id, !fav); err != nil {
		return fav, err
	}
	return !fav, nil
}

// Profile returns the caller's own activities and all favorites.
// An empty creatorID means anonymous, which owns nothing.
func (s *ActivityService) Profile(ctx context.Context, creatorID string) (*models.Profile, error) {
	profile := &models.Profile{Own: []models.Activity{}}

	if creatorID != "" {
		own, err := s.activities.ListByCreator(ctx, creatorID)
		if err != nil {
			return nil, err
		}
		profile.Own = own
	}

	favorites, err := s.favorites.ListFavoriteActivities(ctx)
	if err != nil {
		return nil, err
	}
	profile.Favorites = favorites

	return profile, nil
}

func normalize(in models.ActivityInput) models.ActivityInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	return in
}
