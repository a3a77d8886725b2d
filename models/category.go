package models

const (
	CategorySports    = "liikunta"
	CategoryCulture   = "kulttuuri"
	CategoryCommunity = "yhteisö"
)

// KnownCategories lists the categories offered by the create form, in
// display order. Stored activities may carry any other value.
var KnownCategories = []string{CategorySports, CategoryCulture, CategoryCommunity}

var categoryColors = map[string]string{
	CategorySports:    "#DCFCE7",
	CategoryCulture:   "#FEF3C7",
	CategoryCommunity: "#DBEAFE",
}

// CategoryColor returns the tag background for a category. Unknown
// categories get the community colour.
func CategoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return categoryColors[CategoryCommunity]
}
