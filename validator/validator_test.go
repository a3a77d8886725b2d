package validator

import (
	"activity-finder/models"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validActivity() models.NewActivity {
	return models.NewActivity{
		ActivityInput: models.ActivityInput{
			Name:        "Jooga",
			Description: "Aamujooga puistossa",
			Category:    "liikunta",
			Time:        time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC),
			Location:    &models.Location{Latitude: 60.17, Longitude: 24.94},
		},
	}
}

func TestValidator_NewActivity(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		mutate    func(a *models.NewActivity)
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid activity",
			mutate:    func(a *models.NewActivity) {},
			wantError: false,
		},
		{
			name:      "Empty description is valid",
			mutate:    func(a *models.NewActivity) { a.Description = "" },
			wantError: false,
		},
		{
			name:      "Missing name",
			mutate:    func(a *models.NewActivity) { a.Name = "" },
			wantError: true,
			errorMsg:  "name is required",
		},
		{
			name:      "Blank name",
			mutate:    func(a *models.NewActivity) { a.Name = "  \t" },
			wantError: true,
			errorMsg:  "name must not be blank",
		},
		{
			name:      "Missing location",
			mutate:    func(a *models.NewActivity) { a.Location = nil },
			wantError: true,
			errorMsg:  "location must be chosen on the map",
		},
		{
			name:      "Latitude out of range",
			mutate:    func(a *models.NewActivity) { a.Location.Latitude = 91 },
			wantError: true,
			errorMsg:  "latitude must be less than or equal to 90",
		},
		{
			name:      "Longitude out of range",
			mutate:    func(a *models.NewActivity) { a.Location.Longitude = -181 },
			wantError: true,
			errorMsg:  "longitude must be greater than or equal to -180",
		},
		{
			name:      "Missing time",
			mutate:    func(a *models.NewActivity) { a.Time = time.Time{} },
			wantError: true,
			errorMsg:  "time is required",
		},
		{
			name:      "Unknown category word is valid",
			mutate:    func(a *models.NewActivity) { a.Category = "musiikki" },
			wantError: false,
		},
		{
			name:      "Category with punctuation is valid",
			mutate:    func(a *models.NewActivity) { a.Category = "ulkoilu & luonto" },
			wantError: false,
		},
		{
			name:      "Blank category",
			mutate:    func(a *models.NewActivity) { a.Category = "   " },
			wantError: true,
			errorMsg:  "category must not be blank",
		},
		{
			name:      "Category too long",
			mutate:    func(a *models.NewActivity) { a.Category = strings.Repeat("k", 51) },
			wantError: true,
			errorMsg:  "category must be at most 50 characters",
		},
		{
			name:      "Name too long",
			mutate:    func(a *models.NewActivity) { a.Name = strings.Repeat("n", 201) },
			wantError: true,
			errorMsg:  "name must be at most 200 characters",
		},
		{
			name:      "Description too long",
			mutate:    func(a *models.NewActivity) { a.Description = strings.Repeat("d", 2001) },
			wantError: true,
			errorMsg:  "description must be at most 2000 characters",
		},
		{
			name: "Creator too long",
			mutate: func(a *models.NewActivity) {
				long := string(make([]byte, 129))
				a.CreatorID = &long
			},
			wantError: true,
			errorMsg:  "creatorId must be at most 128 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validActivity()
			tt.mutate(&req)

			err := v.Validate(&req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_JoinRequest(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(models.JoinRequest{Name: "Aino"}))

	err := v.Validate(models.JoinRequest{Name: ""})
	require.Error(t, err)

	verrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Equal(t, "name", verrs[0].Field)
	assert.Equal(t, "required", verrs[0].Tag)
}
