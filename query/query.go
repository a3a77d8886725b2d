// Package query narrows and orders the activity list before it is shown.
// Everything here is pure: no store access, no clock unless Options.Now is zero.
package query

import (
	"activity-finder/models"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategoryAll is the category selection that keeps every activity.
const CategoryAll = "all"

type DateWindow int

const (
	DateAll DateWindow = iota
	// DateToday keeps activities on the current calendar day.
	DateToday
	// DateWeek keeps upcoming activities within the next seven days. Past ones are dropped.
	DateWeek
)

type SortMode int

const (
	SortNewest SortMode = iota
	SortOldest
	SortAZ
)

const week = 7 * 24 * time.Hour

// Options configures Apply. The zero value keeps everything and sorts newest first.
type Options struct {
	Search        string
	Category      string
	Date          DateWindow
	FavoritesOnly bool
	Sort          SortMode

	// Now anchors the date windows; zero means time.Now().
	Now time.Time
	// Location decides calendar days for DateToday; nil means Now's location.
	Location *time.Location
	// Language drives the alphabetical collation.
	Language language.Tag
}

// Apply filters activities by every active predicate and sorts the result.
// The input slice is left untouched.
func Apply(activities []models.ListedActivity, opts Options) []models.ListedActivity {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	loc := opts.Location
	if loc == nil {
		loc = now.Location()
	}
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	out := make([]models.ListedActivity, 0, len(activities))
	for _, a := range activities {
		if search != "" && !matchesSearch(a.Activity, search) {
			continue
		}
		if opts.FavoritesOnly && !a.IsFavorite {
			continue
		}
		if opts.Category != "" && opts.Category != CategoryAll && a.Category != opts.Category {
			continue
		}
		if !inWindow(a.Time, opts.Date, now, loc) {
			continue
		}
		out = append(out, a)
	}

	sortActivities(out, opts.Sort, opts.Language)
	return out
}

func matchesSearch(a models.Activity, lowered string) bool {
	return strings.Contains(strings.ToLower(a.Name), lowered) ||
		strings.Contains(strings.ToLower(a.Description), lowered)
}

func inWindow(t time.Time, w DateWindow, now time.Time, loc *time.Location) bool {
	if w == DateAll {
		return true
	}
	if t.IsZero() {
		return false
	}

	switch w {
	case DateToday:
		ty, tm, td := t.In(loc).Date()
		ny, nm, nd := now.In(loc).Date()
		return ty == ny && tm == nm && td == nd
	case DateWeek:
		diff := t.Sub(now)
		return diff >= 0 && diff <= week
	}
	return true
}

func sortActivities(list []models.ListedActivity, mode SortMode, lang language.Tag) {
	switch mode {
	case SortOldest:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Time.Before(list[j].Time)
		})
	case SortAZ:
		// Collators keep internal buffers, so each call gets its own
		c := collate.New(lang, collate.IgnoreCase)
		sort.SliceStable(list, func(i, j int) bool {
			return c.CompareString(list[i].Name, list[j].Name) < 0
		})
	default:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Time.After(list[j].Time)
		})
	}
}

// ParseDateWindow maps the API value to a DateWindow. Empty means "all".
func ParseDateWindow(s string) (DateWindow, error) {
	switch s {
	case "", "all":
		return DateAll, nil
	case "today":
		return DateToday, nil
	case "week":
		return DateWeek, nil
	}
	return DateAll, fmt.Errorf("unknown date window %q", s)
}

// ParseSortMode maps the API value to a SortMode. Empty means "newest".
func ParseSortMode(s string) (SortMode, error) {
	switch s {
	case "", "newest":
		return SortNewest, nil
	case "oldest":
		return SortOldest, nil
	case "az":
		return SortAZ, nil
	}
	return SortNewest, fmt.Errorf("unknown sort mode %q", s)
}

func (w DateWindow) String() string {
	switch w {
	case DateToday:
		return "today"
	case DateWeek:
		return "week"
	}
	return "all"
}

func (m SortMode) String() string {
	switch m {
	case SortOldest:
		return "oldest"
	case SortAZ:
		return "az"
	}
	return "newest"
}
