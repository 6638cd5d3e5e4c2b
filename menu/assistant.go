package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/types"
	"github.com/marcward/promptsmith/utils"
)

const (
	menuOpen  = "<menu_items>"
	menuClose = "</menu_items>"
)

// Assistant answers menu questions with structured chain-of-thought
// responses and routes food queries to the matching response schema.
type Assistant struct {
	gateway    llm.LLM
	logger     utils.Logger
	cacheStats bool
}

// NewAssistant creates an Assistant on the given gateway. Cache statistics
// reporting starts enabled; see SetCacheReporting.
func NewAssistant(gateway llm.LLM, logger utils.Logger) *Assistant {
	return &Assistant{gateway: gateway, logger: logger, cacheStats: true}
}

// SetCacheReporting toggles per-answer logging of cached token counts.
// Disable it when the provider runs with prompt caching off, where the
// numbers are always zero.
func (a *Assistant) SetCacheReporting(enabled bool) {
	a.cacheStats = enabled
}

// Answered carries a chain-of-thought response together with the cache
// statistics and latency of the call that produced it.
type Answered struct {
	Response MenuResponse
	Usage    *llm.Usage
	Latency  time.Duration
}

// Answer processes a menu question using explicit reasoning steps. The
// system message embeds the full catalog so repeated questions share a
// cached prompt prefix.
func (a *Assistant) Answer(ctx context.Context, query string) (*Answered, error) {
	start := time.Now()
	result, usage, err := askStructured[MenuResponse](ctx, a, a.answerSystemPrompt(), query)
	if err != nil {
		return nil, err
	}

	latency := time.Since(start)
	if a.cacheStats {
		a.logger.Info("menu question answered",
			"latency", latency,
			"cached_tokens", usage.CachedTokens,
			"cache_hit_ratio", usage.CacheHitRatio())
	}

	return &Answered{Response: *result, Usage: usage, Latency: latency}, nil
}

// Classify determines the intent of a food-related query. On any failure it
// falls back to the OTHER bucket rather than erroring the caller.
func (a *Assistant) Classify(ctx context.Context, query string) string {
	system := `You are a food query analyzer. Classify the user's food-related query into one of these categories:
- RECIPE: Request for a recipe or cooking instructions
- RESTAURANT: Request for restaurant recommendations
- NUTRITION: Request for nutritional information
- OTHER: Any other food-related query

Provide your classification as the query_type field.`

	result, _, err := askStructured[QueryClassification](ctx, a, system, query)
	if err != nil {
		a.logger.Warn("query classification failed", "error", err)
		return QueryTypeOther
	}
	return result.QueryType
}

// GetRecipe returns a structured recipe for a cooking query.
func (a *Assistant) GetRecipe(ctx context.Context, query string) (*Recipe, error) {
	system := `You are a helpful cooking assistant. Provide a detailed recipe based on the user's request. Include the recipe name, cuisine, preparation and cooking times in minutes, serving size, ingredients with quantities and optional substitutes, step-by-step instructions, and dietary information.`
	result, _, err := askStructured[Recipe](ctx, a, system, query)
	return result, err
}

// GetRestaurant returns a structured restaurant recommendation.
func (a *Assistant) GetRestaurant(ctx context.Context, query string) (*Restaurant, error) {
	system := `You are a restaurant recommendation assistant. Provide a restaurant suggestion based on the user's request, with name, cuisine, price range ("$" to "$$$$"), location, rating from 1.0 to 5.0, popular dishes, and available dietary options.`
	result, _, err := askStructured[Restaurant](ctx, a, system, query)
	return result, err
}

// GetNutrition returns a structured nutrition breakdown.
func (a *Assistant) GetNutrition(ctx context.Context, query string) (*NutritionInfo, error) {
	system := `You are a nutrition information assistant. Provide detailed nutritional information for the requested food, including serving size, calories, macronutrients in grams, and notable vitamins and minerals.`
	result, _, err := askStructured[NutritionInfo](ctx, a, system, query)
	return result, err
}

// askStructured runs one schema-constrained call and validates the decoded
// result. Shared by every structured response path.
func askStructured[T any](ctx context.Context, a *Assistant, system, query string) (*T, *llm.Usage, error) {
	var value T
	schema, err := llm.GenerateJSONSchema(&value)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate schema: %w", err)
	}

	messages := []types.Message{
		types.SystemMessage(system),
		types.UserMessage(query),
	}
	resp, err := a.gateway.GenerateWithSchema(ctx, messages, schema)
	if err != nil {
		return nil, nil, fmt.Errorf("structured response failed: %w", err)
	}

	if err := json.Unmarshal([]byte(resp.Content), &value); err != nil {
		return nil, nil, fmt.Errorf("failed to parse structured response: %w", err)
	}
	if err := llm.Validate(value); err != nil {
		return nil, nil, fmt.Errorf("structured response failed validation: %w", err)
	}
	return &value, resp.Usage, nil
}

func (a *Assistant) answerSystemPrompt() string {
	return fmt.Sprintf(`You are an expert culinary consultant and menu (delimited by %s%s) specialist with deep knowledge of menu organization, culinary techniques, customer service, quality standards and dietary considerations.

Here are the menu items:
%s
%s
%s

Your task is to answer questions about our menu using a structured reasoning process:

Step 1: Food Relevance Assessment
- Determine if the query relates to food/menu items
- Identify specific menu categories
- Note any dietary restrictions or allergen concerns

Step 2: Menu Item Verification
- Check item availability
- Verify price accuracy
- Confirm dietary status and included components

Step 3: Response Formulation
- Provide accurate information
- Suggest alternatives if needed
- Maintain professional tone

The final response should be short and concise.`,
		menuOpen, menuClose, menuOpen, Catalog(), menuClose)
}
