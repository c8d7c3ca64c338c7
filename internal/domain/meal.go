package domain

import "time"

// MealType categorizes a meal within a day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Meal represents a meal definition with its nutritional information.
type Meal struct {
	ID          string   `json:"id"`
	TrainerID   string   `json:"trainer_id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	MealType    MealType `json:"meal_type,omitempty"`

	// Nutritional information, per serving
	CaloriesPerServing float64 `json:"calories_per_serving"`
	ProteinGrams       float64 `json:"protein_grams"`
	CarbsGrams         float64 `json:"carbs_grams"`
	FatGrams           float64 `json:"fat_grams"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MealPlan represents a weekly meal plan assigned to a client.
type MealPlan struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TrainerID string `json:"trainer_id"`
	ClientID  string `json:"client_id"`

	// Daily nutrition targets
	TargetCalories float64 `json:"target_calories"`
	TargetProtein  float64 `json:"target_protein"`
	TargetCarbs    float64 `json:"target_carbs"`
	TargetFat      float64 `json:"target_fat"`

	IsActive  bool           `json:"is_active"` // Is this the currently active plan for the client?
	Meals     []MealPlanMeal `json:"meals"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// MealPlanMeal places a meal within a plan's weekly schedule.
type MealPlanMeal struct {
	ID     string `json:"id"`
	MealID string `json:"meal_id"`
	Meal   Meal   `json:"meal"`

	// DayOfWeek schedules the meal on a weekday, 1 (Monday) - 7 (Sunday).
	DayOfWeek int `json:"day_of_week"`
	// MealOrder orders meals within a single day.
	MealOrder int     `json:"meal_order"`
	Portions  float64 `json:"portions"`

	IsCompleted bool `json:"is_completed"`
}

// NutritionSummary aggregates a client's targets against what was consumed.
type NutritionSummary struct {
	ClientID         string  `json:"client_id"`
	TargetCalories   float64 `json:"target_calories"`
	TargetProtein    float64 `json:"target_protein"`
	TargetCarbs      float64 `json:"target_carbs"`
	TargetFat        float64 `json:"target_fat"`
	ConsumedCalories float64 `json:"consumed_calories"`
	ConsumedProtein  float64 `json:"consumed_protein"`
	ConsumedCarbs    float64 `json:"consumed_carbs"`
	ConsumedFat      float64 `json:"consumed_fat"`
}
