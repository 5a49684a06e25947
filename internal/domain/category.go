package domain

import (
	"fmt"
	"strings"
)

// Category is the fixed set of spending categories.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryGrocery   Category = "Grocery"
	CategoryTravel    Category = "Travel"
	CategoryShopping  Category = "Shopping"
	CategoryBills     Category = "Bills"
	CategoryFun       Category = "Fun"
	CategoryHealth    Category = "Health"
	CategoryEducation Category = "Education"
	CategoryGifts     Category = "Gifts"
	CategoryOther     Category = "Other"
)

// CategoryInfo is the display metadata attached to a category.
type CategoryInfo struct {
	Label string
	Emoji string
	Color string
}

var categoryOrder = []Category{
	CategoryFood,
	CategoryGrocery,
	CategoryTravel,
	CategoryShopping,
	CategoryBills,
	CategoryFun,
	CategoryHealth,
	CategoryEducation,
	CategoryGifts,
	CategoryOther,
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryFood:      {Label: "Street Food", Emoji: "🍔", Color: "orange"},
	CategoryGrocery:   {Label: "Grocery", Emoji: "🥦", Color: "green"},
	CategoryTravel:    {Label: "Travel/Fuel", Emoji: "🚕", Color: "blue"},
	CategoryShopping:  {Label: "Shopping", Emoji: "🛍️", Color: "purple"},
	CategoryBills:     {Label: "Recharge/Bills", Emoji: "🧾", Color: "yellow"},
	CategoryFun:       {Label: "Movies/Fun", Emoji: "🍿", Color: "pink"},
	CategoryHealth:    {Label: "Gym/Meds", Emoji: "💊", Color: "red"},
	CategoryEducation: {Label: "Books/Xerox", Emoji: "📚", Color: "indigo"},
	CategoryGifts:     {Label: "Gifts/Help", Emoji: "🎁", Color: "rose"},
	CategoryOther:     {Label: "Other", Emoji: "💸", Color: "gray"},
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory matches a category by name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categoryOrder {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

// Info returns the display metadata for c. Unknown categories render as Other.
func (c Category) Info() CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return categoryInfo[CategoryOther]
}
