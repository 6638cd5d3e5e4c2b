package menu

import (
	"math"

	"github.com/marcward/promptsmith/types"
)

// OrderTotal is the result of pricing a list of requested items.
type OrderTotal struct {
	Total         float64             `json:"total"`
	FoundItems    map[string]MenuItem `json:"found_items"`
	NotFoundItems []string            `json:"not_found_items"`
}

// CalculateTotal prices the given item names against the menu. Unknown
// names are reported back rather than dropped so the model can correct them.
func CalculateTotal(names []string) OrderTotal {
	items := Items()
	result := OrderTotal{
		FoundItems:    make(map[string]MenuItem),
		NotFoundItems: []string{},
	}

	for _, name := range names {
		item, ok := items[name]
		if !ok {
			result.NotFoundItems = append(result.NotFoundItems, name)
			continue
		}
		result.Total += item.Price
		result.FoundItems[name] = item
	}

	result.Total = math.Round(result.Total*100) / 100
	return result
}

// CalculateTotalTool is the function-tool definition for CalculateTotal.
func CalculateTotalTool() types.Tool {
	return types.NewFunctionTool(types.Function{
		Name:        "calculate_total",
		Description: "Calculate the total price for a list of menu items",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"items": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "List of exact menu item names to calculate total for",
				},
			},
			"required": []string{"items"},
		},
	})
}
