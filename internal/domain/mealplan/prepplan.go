package mealplan

import "github.com/google/uuid"

// BatchCookingGroup is a set of meals sharing one recipe, cooked together.
// Shared ingredients are consolidated across every occurrence.
type BatchCookingGroup struct {
	RecipeName        string       `json:"recipe_name"`
	MealIDs           []uuid.UUID  `json:"meal_ids"`
	BatchServings     int          `json:"batch_servings"`
	SharedIngredients []Ingredient `json:"shared_ingredients"`
	PrepTimeMinutes   int          `json:"prep_time_minutes"`
	CookTimeMinutes   int          `json:"cook_time_minutes"`
	TimeSavedMinutes  int          `json:"time_saved_minutes"`
	CostSavedEUR      float64      `json:"cost_saved_eur"`
}

// PrepTask is one step of a prep session
type PrepTask struct {
	Description string `json:"description"`
	Minutes     int    `json:"minutes"`
	RecipeName  string `json:"recipe_name,omitempty"`
}

// PrepDay is one scheduled batch-cooking session
type PrepDay struct {
	Label         string     `json:"label"`
	Tasks         []PrepTask `json:"tasks"`
	TotalMinutes  int        `json:"total_minutes"`
	MealsPrepared int        `json:"meals_prepared"`
	Tips          []string   `json:"tips"`
}

// StorageRequirements are heuristic capacity buckets, not measured volumes
type StorageRequirements struct {
	ContainersNeeded int    `json:"containers_needed"`
	FridgeSpace      string `json:"fridge_space"`
	FreezerSpace     string `json:"freezer_space"`
}

// MealPrepPlan is the batch-cooking schedule derived from one plan
type MealPrepPlan struct {
	PlanID      uuid.UUID           `json:"plan_id"`
	BatchGroups []BatchCookingGroup `json:"batch_groups"`
	PrepDays    []PrepDay           `json:"prep_days"`
	Storage     StorageRequirements `json:"storage"`
	Tips        []string            `json:"tips"`
}
