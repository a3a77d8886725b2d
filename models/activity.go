package models

import "time"

// Location is the pair of coordinates an activity is pinned to on the map.
type Location struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Activity is a local event. Participants are owned by the participants
// table and are only populated when a caller loads them explicitly.
type Activity struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Time         time.Time `json:"time"`
	Location     Location  `json:"location"`
	CreatorID    *string   `json:"creatorId,omitempty"`
	Participants []string  `json:"participants,omitempty"`
}

// ListedActivity is an activity annotated with the favorite flag of the
// current user, as shown in the browse list.
type ListedActivity struct {
	Activity
	IsFavorite bool `json:"isFavorite"`
}

// ActivityInput holds the mutable fields of an activity.
type ActivityInput struct {
	Name        string    `json:"name" validate:"required,notblank,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	Category    string    `json:"category" validate:"required,notblank,max=50"`
	Time        time.Time `json:"time" validate:"required"`
	Location    *Location `json:"location" validate:"required"`
}

// NewActivity is the payload for creating an activity. CreatorID is
// optional; anonymous authoring is allowed.
type NewActivity struct {
	ActivityInput
	CreatorID *string `json:"creatorId,omitempty" validate:"omitempty,max=128"`
}

type JoinRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

type Profile struct {
	Own       []Activity `json:"own"`
	Favorites []Activity `json:"favorites"`
}
