package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/providers"
	"github.com/marcward/promptsmith/utils"
)

func TestAnswer(t *testing.T) {
	gateway := llm.NewMockLLM()
	gateway.EnqueueUsage(
		`{"reasoning_steps": ["Check vegan options", "Verify prices"], "final_response": "We offer three vegan dishes."}`,
		&providers.Usage{PromptTokens: 1000, CompletionTokens: 50, TotalTokens: 1050, CachedTokens: 900})

	a := NewAssistant(gateway, utils.NewNopLogger())
	answered, err := a.Answer(context.Background(), "What vegan options do you have?")
	require.NoError(t, err)

	assert.Equal(t, "We offer three vegan dishes.", answered.Response.FinalResponse)
	assert.Len(t, answered.Response.ReasoningSteps, 2)
	assert.Equal(t, 0.9, answered.Usage.CacheHitRatio())
	assert.True(t, answered.Usage.IsCacheHit())

	// The menu catalog rides in the system message so the prompt prefix is
	// cacheable across questions.
	require.Len(t, gateway.Calls, 1)
	system := gateway.Calls[0][0]
	assert.Contains(t, system.Content, "<menu_items>")
	assert.Contains(t, system.Content, "Mini Cheeseburger")
	assert.Equal(t, "What vegan options do you have?", gateway.Calls[0][1].Content)
}

func TestSetCacheReporting(t *testing.T) {
	response := `{"reasoning_steps": ["Check the menu"], "final_response": "Yes."}`

	t.Run("enabled logs cache stats", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueResponse(response)

		logger := &utils.MockLogger{}
		logger.On("Info", "menu question answered", mock.Anything)

		a := NewAssistant(gateway, logger)
		_, err := a.Answer(context.Background(), "Any specials?")
		require.NoError(t, err)
		logger.AssertCalled(t, "Info", "menu question answered", mock.Anything)
	})

	t.Run("disabled stays silent", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueResponse(response)

		// No expectations registered: any Info call fails the test.
		logger := &utils.MockLogger{}

		a := NewAssistant(gateway, logger)
		a.SetCacheReporting(false)
		answered, err := a.Answer(context.Background(), "Any specials?")
		require.NoError(t, err)
		assert.Equal(t, "Yes.", answered.Response.FinalResponse)
		logger.AssertNotCalled(t, "Info", mock.Anything, mock.Anything)
	})
}

func TestAnswerRejectsInvalidResponse(t *testing.T) {
	t.Run("missing reasoning steps", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueResponse(`{"reasoning_steps": [], "final_response": "answer"}`)

		a := NewAssistant(gateway, utils.NewNopLogger())
		_, err := a.Answer(context.Background(), "q")
		assert.ErrorContains(t, err, "validation")
	})

	t.Run("malformed json", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueResponse(`not json at all`)

		a := NewAssistant(gateway, utils.NewNopLogger())
		_, err := a.Answer(context.Background(), "q")
		assert.Error(t, err)
	})
}

func TestClassify(t *testing.T) {
	t.Run("recognized intent", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueResponse(`{"query_type": "RECIPE"}`)

		a := NewAssistant(gateway, utils.NewNopLogger())
		assert.Equal(t, QueryTypeRecipe, a.Classify(context.Background(), "how do I make pasta carbonara?"))
	})

	t.Run("invalid intent falls back to OTHER", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueResponse(`{"query_type": "DESSERT"}`)

		a := NewAssistant(gateway, utils.NewNopLogger())
		assert.Equal(t, QueryTypeOther, a.Classify(context.Background(), "?"))
	})

	t.Run("gateway failure falls back to OTHER", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueError(errors.New("down"))

		a := NewAssistant(gateway, utils.NewNopLogger())
		assert.Equal(t, QueryTypeOther, a.Classify(context.Background(), "?"))
	})
}

func TestGetRecipe(t *testing.T) {
	gateway := llm.NewMockLLM()
	gateway.EnqueueResponse(`{
		"name": "Spaghetti Carbonara",
		"cuisine": "Italian",
		"prep_time_minutes": 10,
		"cook_time_minutes": 15,
		"serving_size": 2,
		"ingredients": [{"name": "spaghetti", "quantity": "200g"}],
		"instructions": ["Boil pasta.", "Mix with sauce."],
		"dietary_info": []
	}`)

	a := NewAssistant(gateway, utils.NewNopLogger())
	recipe, err := a.GetRecipe(context.Background(), "carbonara for two")
	require.NoError(t, err)

	assert.Equal(t, "Spaghetti Carbonara", recipe.Name)
	assert.Len(t, recipe.Instructions, 2)
}

func TestGetRestaurantValidatesRating(t *testing.T) {
	gateway := llm.NewMockLLM()
	gateway.EnqueueResponse(`{
		"name": "Luigi's", "cuisine": "Italian", "price_range": "$$",
		"location": "Downtown", "rating": 6.0
	}`)

	a := NewAssistant(gateway, utils.NewNopLogger())
	_, err := a.GetRestaurant(context.Background(), "italian nearby")
	assert.ErrorContains(t, err, "validation")
}

func TestGetNutrition(t *testing.T) {
	gateway := llm.NewMockLLM()
	gateway.EnqueueResponse(`{
		"food_name": "Avocado", "serving_size": "100g", "calories": 160,
		"protein_grams": 2, "carbs_grams": 9, "fat_grams": 15, "fiber_grams": 7,
		"vitamins": ["K", "E"], "minerals": ["Potassium"]
	}`)

	a := NewAssistant(gateway, utils.NewNopLogger())
	info, err := a.GetNutrition(context.Background(), "avocado nutrition")
	require.NoError(t, err)

	assert.Equal(t, 160, info.Calories)
	assert.Equal(t, 15.0, info.FatGrams)
}
