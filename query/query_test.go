package query

import (
	"activity-finder/models"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func listed(id, name, desc, category string, t time.Time, fav bool) models.ListedActivity {
	return models.ListedActivity{
		Activity: models.Activity{
			ID:          id,
			Name:        name,
			Description: desc,
			Category:    category,
			Time:        t,
		},
		IsFavorite: fav,
	}
}

func ids(list []models.ListedActivity) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}

var now = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func sample() []models.ListedActivity {
	return []models.ListedActivity{
		listed("1", "Jooga", "Aamujooga puistossa", "liikunta", time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC), true),
		listed("2", "Runoilta", "Lukupiiri kirjastossa", "kulttuuri", time.Date(2025, 6, 7, 23, 59, 0, 0, time.UTC), false),
		listed("3", "Talkoot", "Pihan siivous", "yhteisö", time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC), true),
		listed("4", "Sulkapallo", "Iltavuoro", "liikunta", time.Date(2025, 6, 20, 18, 0, 0, 0, time.UTC), false),
		listed("5", "Konsertti", "Ulkoilmakonsertti JOOGA-nurmella", "musiikki", time.Date(2025, 6, 3, 19, 0, 0, 0, time.UTC), false),
	}
}

func TestApply_DateWindow(t *testing.T) {
	tests := []struct {
		name   string
		window DateWindow
		want   []string
	}{
		{"all keeps everything", DateAll, []string{"1", "2", "3", "4", "5"}},
		{"today keeps the current calendar day", DateToday, []string{"1"}},
		{"week keeps upcoming seven days only", DateWeek, []string{"1", "2", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sample(), Options{Date: tt.window, Now: now, Sort: SortOldest})
			assert.ElementsMatch(t, tt.want, ids(got))
		})
	}
}

func TestApply_WeekBoundaries(t *testing.T) {
	list := []models.ListedActivity{
		listed("in", "A", "", "x", time.Date(2025, 6, 7, 23, 59, 0, 0, time.UTC), false),
		listed("past", "B", "", "x", time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC), false),
		listed("edge", "C", "", "x", now.Add(7*24*time.Hour), false),
		listed("beyond", "D", "", "x", now.Add(7*24*time.Hour+time.Second), false),
		listed("now", "E", "", "x", now, false),
	}

	got := Apply(list, Options{Date: DateWeek, Now: now})
	assert.ElementsMatch(t, []string{"in", "edge", "now"}, ids(got))
}

func TestApply_TodayUsesLocation(t *testing.T) {
	helsinki, err := time.LoadLocation("Europe/Helsinki")
	require.NoError(t, err)

	// 22:30 UTC on May 31st is already June 1st in Helsinki
	late := listed("late", "A", "", "x", time.Date(2025, 5, 31, 22, 30, 0, 0, time.UTC), false)
	noon := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got := Apply([]models.ListedActivity{late}, Options{Date: DateToday, Now: noon, Location: helsinki})
	assert.Equal(t, []string{"late"}, ids(got))

	got = Apply([]models.ListedActivity{late}, Options{Date: DateToday, Now: noon, Location: time.UTC})
	assert.Empty(t, got)
}

func TestApply_ZeroTimeNeverMatchesWindow(t *testing.T) {
	list := []models.ListedActivity{listed("z", "A", "", "x", time.Time{}, false)}

	assert.Len(t, Apply(list, Options{Now: now}), 1)
	assert.Empty(t, Apply(list, Options{Now: now, Date: DateToday}))
	assert.Empty(t, Apply(list, Options{Now: now, Date: DateWeek}))
}

func TestApply_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty matches everything", "", []string{"1", "2", "3", "4", "5"}},
		{"whitespace matches everything", "   ", []string{"1", "2", "3", "4", "5"}},
		{"case-insensitive name or description", "jooga", []string{"1", "5"}},
		{"description only", "KIRJASTO", []string{"2"}},
		{"no match", "uinti", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sample(), Options{Search: tt.search, Now: now})
			assert.ElementsMatch(t, tt.want, ids(got))
		})
	}
}

func TestApply_CategoryAndFavorites(t *testing.T) {
	got := Apply(sample(), Options{Category: "liikunta", Now: now})
	assert.ElementsMatch(t, []string{"1", "4"}, ids(got))

	got = Apply(sample(), Options{Category: CategoryAll, Now: now})
	assert.Len(t, got, 5)

	got = Apply(sample(), Options{FavoritesOnly: true, Now: now})
	assert.ElementsMatch(t, []string{"1", "3"}, ids(got))

	got = Apply(sample(), Options{FavoritesOnly: true, Category: "liikunta", Now: now})
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestApply_Sort(t *testing.T) {
	t.Run("newest is the default", func(t *testing.T) {
		got := Apply(sample(), Options{Now: now})
		assert.Equal(t, []string{"4", "2", "5", "1", "3"}, ids(got))
	})

	t.Run("oldest ascending", func(t *testing.T) {
		got := Apply(sample(), Options{Now: now, Sort: SortOldest})
		assert.Equal(t, []string{"3", "1", "5", "2", "4"}, ids(got))
	})

	t.Run("az ignores case", func(t *testing.T) {
		list := []models.ListedActivity{
			listed("b", "Beta", "", "x", now, false),
			listed("a", "alpha", "", "x", now, false),
		}
		got := Apply(list, Options{Now: now, Sort: SortAZ})
		assert.Equal(t, []string{"a", "b"}, ids(got))
	})

	t.Run("az follows the Finnish alphabet", func(t *testing.T) {
		list := []models.ListedActivity{
			listed("ae", "Äijäpiiri", "", "x", now, false),
			listed("z", "Zumba", "", "x", now, false),
			listed("a", "Avanto", "", "x", now, false),
		}
		got := Apply(list, Options{Now: now, Sort: SortAZ, Language: language.Finnish})
		assert.Equal(t, []string{"a", "z", "ae"}, ids(got))
	})
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := sample()
	before := ids(in)

	_ = Apply(in, Options{Now: now, Sort: SortAZ, FavoritesOnly: true})
	assert.Equal(t, before, ids(in))
}

// Every combination of filters yields a subset whose members satisfy all
// active predicates.
func TestApply_FilterComposition(t *testing.T) {
	all := sample()
	searches := []string{"", "jooga", "a"}
	categories := []string{CategoryAll, "liikunta", "kulttuuri", "tuntematon"}
	windows := []DateWindow{DateAll, DateToday, DateWeek}

	for _, search := range searches {
		for _, category := range categories {
			for _, window := range windows {
				for _, favOnly := range []bool{false, true} {
					opts := Options{Search: search, Category: category, Date: window, FavoritesOnly: favOnly, Now: now}
					got := Apply(all, opts)

					assert.Subset(t, ids(all), ids(got))
					for _, a := range got {
						if search != "" {
							q := strings.ToLower(search)
							assert.True(t, strings.Contains(strings.ToLower(a.Name), q) ||
								strings.Contains(strings.ToLower(a.Description), q))
						}
						if category != CategoryAll {
							assert.Equal(t, category, a.Category)
						}
						if favOnly {
							assert.True(t, a.IsFavorite)
						}
						assert.True(t, inWindow(a.Time, window, now, time.UTC))
					}
				}
			}
		}
	}
}

func TestParse(t *testing.T) {
	w, err := ParseDateWindow("")
	require.NoError(t, err)
	assert.Equal(t, DateAll, w)

	w, err = ParseDateWindow("week")
	require.NoError(t, err)
	assert.Equal(t, DateWeek, w)
	assert.Equal(t, "week", w.String())

	_, err = ParseDateWindow("month")
	assert.Error(t, err)

	m, err := ParseSortMode("")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, m)

	m, err = ParseSortMode("az")
	require.NoError(t, err)
	assert.Equal(t, SortAZ, m)
	assert.Equal(t, "az", m.String())

	_, err = ParseSortMode("random")
	assert.Error(t, err)
}
