package menu

// Query intents recognized by Classify.
const (
	QueryTypeRecipe     = "RECIPE"
	QueryTypeRestaurant = "RESTAURANT"
	QueryTypeNutrition  = "NUTRITION"
	QueryTypeOther      = "OTHER"
)

// QueryClassification is the structured intent of a food-related query.
type QueryClassification struct {
	QueryType string `json:"query_type" validate:"required,oneof=RECIPE RESTAURANT NUTRITION OTHER"`
}

// Ingredient is one recipe ingredient with optional substitutes.
type Ingredient struct {
	Name        string   `json:"name" validate:"required"`
	Quantity    string   `json:"quantity" validate:"required"`
	Substitutes []string `json:"substitutes,omitempty"`
}

// Recipe is a structured cooking recipe.
type Recipe struct {
	Name            string       `json:"name" validate:"required"`
	Cuisine         string       `json:"cuisine" validate:"required"`
	PrepTimeMinutes int          `json:"prep_time_minutes" validate:"min=0"`
	CookTimeMinutes int          `json:"cook_time_minutes" validate:"min=0"`
	ServingSize     int          `json:"serving_size" validate:"min=1"`
	Ingredients     []Ingredient `json:"ingredients" validate:"required,min=1,dive"`
	Instructions    []string     `json:"instructions" validate:"required,min=1"`
	DietaryInfo     []string     `json:"dietary_info"`
}

// Restaurant is a structured restaurant recommendation.
type Restaurant struct {
	Name           string   `json:"name" validate:"required"`
	Cuisine        string   `json:"cuisine" validate:"required"`
	PriceRange     string   `json:"price_range" validate:"required,oneof=$ $$ $$$ $$$$"`
	Location       string   `json:"location" validate:"required"`
	Rating         float64  `json:"rating" validate:"min=1,max=5"`
	PopularDishes  []string `json:"popular_dishes"`
	DietaryOptions []string `json:"dietary_options"`
}

// NutritionInfo is a structured nutrition breakdown for a food item.
type NutritionInfo struct {
	FoodName     string   `json:"food_name" validate:"required"`
	ServingSize  string   `json:"serving_size" validate:"required"`
	Calories     int      `json:"calories" validate:"min=0"`
	ProteinGrams float64  `json:"protein_grams" validate:"min=0"`
	CarbsGrams   float64  `json:"carbs_grams" validate:"min=0"`
	FatGrams     float64  `json:"fat_grams" validate:"min=0"`
	FiberGrams   float64  `json:"fiber_grams" validate:"min=0"`
	Vitamins     []string `json:"vitamins"`
	Minerals     []string `json:"minerals"`
}

// MenuResponse is the chain-of-thought answer to a menu question.
type MenuResponse struct {
	ReasoningSteps []string `json:"reasoning_steps" validate:"required,min=1"`
	FinalResponse  string   `json:"final_response" validate:"required"`
}
