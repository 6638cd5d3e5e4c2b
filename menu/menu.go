// Package menu holds the restaurant menu corpus and the food-domain helpers
// built on it: order totals exposed as a model tool, query classification
// and structured recipe, restaurant and nutrition responses.
package menu

import (
	"fmt"
	"sort"
	"strings"
)

// MenuItem is one orderable item.
type MenuItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Vegan    bool    `json:"vegan"`
}

// Items returns the orderable menu. The map is rebuilt on each call so
// callers can't mutate the shared catalog.
func Items() map[string]MenuItem {
	items := map[string]MenuItem{}
	for _, it := range []MenuItem{
		{"Mini Cheeseburger", 6.99, "Kids Menu", false},
		{"Loaded Potato Skins", 8.99, "Appetizers", false},
		{"Bruschetta", 7.99, "Appetizers", true},
		{"Grilled Chicken Caesar Salad", 12.99, "Main Menu", false},
		{"Classic Cheese Pizza", 10.99, "Main Menu", false},
		{"Spaghetti Bolognese", 14.99, "Main Menu", false},
		{"Veggie Wrap", 9.99, "Vegan Options", true},
		{"Vegan Beyond Burger", 11.99, "Vegan Options", true},
		{"Chocolate Lava Cake", 6.99, "Desserts", false},
		{"Fresh Berry Parfait", 5.99, "Desserts", true},
	} {
		items[it.Name] = it
	}
	return items
}

// FormatForPrompt renders the menu grouped by category for inclusion in a
// system prompt, so the model can map customer wording onto exact item names.
func FormatForPrompt() string {
	items := Items()
	byCategory := map[string][]MenuItem{}
	for _, it := range items {
		byCategory[it.Category] = append(byCategory[it.Category], it)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var sb strings.Builder
	sb.WriteString("MENU ITEMS:\n")
	for _, category := range categories {
		sb.WriteString("\n" + category + ":\n")
		group := byCategory[category]
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		for _, it := range group {
			veganTag := ""
			if it.Vegan {
				veganTag = " (Vegan)"
			}
			fmt.Fprintf(&sb, "- %s: $%.2f%s\n", it.Name, it.Price, veganTag)
		}
	}
	return sb.String()
}
