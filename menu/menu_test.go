package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotal(t *testing.T) {
	t.Run("known items", func(t *testing.T) {
		total := CalculateTotal([]string{"Mini Cheeseburger", "Fresh Berry Parfait"})

		assert.Equal(t, 12.98, total.Total)
		assert.Len(t, total.FoundItems, 2)
		assert.Empty(t, total.NotFoundItems)
	})

	t.Run("unknown items reported", func(t *testing.T) {
		total := CalculateTotal([]string{"Classic Cheese Pizza", "hamburger"})

		assert.Equal(t, 10.99, total.Total)
		assert.Equal(t, []string{"hamburger"}, total.NotFoundItems)
	})

	t.Run("duplicates priced per occurrence", func(t *testing.T) {
		total := CalculateTotal([]string{"Bruschetta", "Bruschetta"})
		assert.Equal(t, 15.98, total.Total)
	})

	t.Run("empty order", func(t *testing.T) {
		total := CalculateTotal(nil)
		assert.Equal(t, 0.0, total.Total)
		assert.Empty(t, total.FoundItems)
	})
}

func TestCalculateTotalTool(t *testing.T) {
	tool := CalculateTotalTool()

	assert.Equal(t, "function", tool.Type)
	assert.Equal(t, "calculate_total", tool.Function.Name)
	properties, ok := tool.Function.Parameters["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, properties, "items")
}

func TestItemsReturnsCopy(t *testing.T) {
	first := Items()
	delete(first, "Bruschetta")

	second := Items()
	assert.Contains(t, second, "Bruschetta")
}

func TestFormatForPrompt(t *testing.T) {
	out := FormatForPrompt()

	assert.Contains(t, out, "MENU ITEMS:")
	assert.Contains(t, out, "Appetizers:")
	assert.Contains(t, out, "- Bruschetta: $7.99 (Vegan)")
	assert.Contains(t, out, "- Mini Cheeseburger: $6.99\n")

	// Categories render in a stable order.
	assert.Equal(t, out, FormatForPrompt())
}
