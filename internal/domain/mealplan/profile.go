// Package mealplan contains the core domain model for generated meal plans.
// The MealPlan aggregate and its nested entities are plain JSON-serializable
// records; totals are always derived bottom-up from ingredients.
package mealplan

import (
	"math"

	"github.com/google/uuid"
)

// BudgetPeriod defines how the profile budget is interpreted
type BudgetPeriod string

const (
	BudgetPeriodDaily  BudgetPeriod = "daily"
	BudgetPeriodWeekly BudgetPeriod = "weekly"
)

// MealType tags a meal slot within a day
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// DietaryPreference represents a dietary flag on a profile
type DietaryPreference string

const (
	DietVegan      DietaryPreference = "vegan"
	DietVegetarian DietaryPreference = "vegetarian"
	DietGlutenFree DietaryPreference = "gluten_free"
)

// MacroTargets holds optional macro percentage targets. The three
// percentages must sum to roughly 100 when provided.
type MacroTargets struct {
	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatsPct    float64 `json:"fats_pct"`
}

// macroSumTolerance is the accepted deviation from 100% for macro targets.
const macroSumTolerance = 0.5

// Plan length and meal count bounds accepted by the generator.
const (
	MinPlanDays    = 1
	MaxPlanDays    = 14
	MinMealsPerDay = 1
	MaxMealsPerDay = 6
)

// UserProfile is the caller-supplied, read-only input to plan generation.
type UserProfile struct {
	UserID              uuid.UUID           `json:"user_id"`
	BudgetAmount        float64             `json:"budget_amount"`
	BudgetPeriod        BudgetPeriod        `json:"budget_period"`
	PlanDays            int                 `json:"plan_days"`
	MealsPerDay         int                 `json:"meals_per_day"`
	DietaryPreferences  []DietaryPreference `json:"dietary_preferences,omitempty"`
	Allergens           []string            `json:"allergens,omitempty"`
	ExcludedIngredients []string            `json:"excluded_ingredients,omitempty"`
	MacroTargets        *MacroTargets       `json:"macro_targets,omitempty"`
	CalorieTarget       float64             `json:"calorie_target,omitempty"`
}

// HasPreference reports whether the profile carries the given flag
func (p UserProfile) HasPreference(pref DietaryPreference) bool {
	for _, d := range p.DietaryPreferences {
		if d == pref {
			return true
		}
	}
	return false
}

// IsVegan reports whether the profile is vegan
func (p UserProfile) IsVegan() bool {
	return p.HasPreference(DietVegan)
}

// IsVegetarian reports whether the profile is vegetarian. Vegan implies
// vegetarian.
func (p UserProfile) IsVegetarian() bool {
	return p.IsVegan() || p.HasPreference(DietVegetarian)
}

// IsGlutenFree reports whether the profile excludes gluten
func (p UserProfile) IsGlutenFree() bool {
	return p.HasPreference(DietGlutenFree)
}

// TotalBudget returns the budget envelope for the whole plan. A daily
// budget is multiplied by the plan length; a weekly budget covers the plan
// as-is.
func (p UserProfile) TotalBudget() float64 {
	if p.BudgetPeriod == BudgetPeriodDaily {
		return p.BudgetAmount * float64(p.PlanDays)
	}
	return p.BudgetAmount
}

// Validate checks the profile before generation begins. It returns a
// ValidationError naming the offending field; a plan is never partially
// generated from an invalid profile.
func (p UserProfile) Validate() error {
	if p.BudgetAmount <= 0 {
		return &ValidationError{Field: "budget_amount", Message: "budget amount must be greater than 0"}
	}
	if p.BudgetPeriod != BudgetPeriodDaily && p.BudgetPeriod != BudgetPeriodWeekly {
		return &ValidationError{Field: "budget_period", Message: "budget period must be daily or weekly"}
	}
	if p.PlanDays < MinPlanDays || p.PlanDays > MaxPlanDays {
		return &ValidationError{Field: "plan_days", Message: "plan length must be between 1 and 14 days"}
	}
	if p.MealsPerDay < MinMealsPerDay || p.MealsPerDay > MaxMealsPerDay {
		return &ValidationError{Field: "meals_per_day", Message: "meals per day must be between 1 and 6"}
	}
	if p.CalorieTarget < 0 {
		return &ValidationError{Field: "calorie_target", Message: "calorie target cannot be negative"}
	}
	if t := p.MacroTargets; t != nil {
		if t.ProteinPct < 0 || t.CarbsPct < 0 || t.FatsPct < 0 {
			return &ValidationError{Field: "macro_targets", Message: "macro percentages cannot be negative"}
		}
		sum := t.ProteinPct + t.CarbsPct + t.FatsPct
		if math.Abs(sum-100) > macroSumTolerance {
			return &ValidationError{Field: "macro_targets", Message: "macro percentages must sum to 100"}
		}
	}
	return nil
}
