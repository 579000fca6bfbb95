// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/mealplan"
)

// PlannerService defines the plan generation and mutation use cases
// This is the primary port that HTTP handlers and other driving adapters will use
type PlannerService interface {
	// Commands - operations that create or modify plans
	GeneratePlan(ctx context.Context, cmd GeneratePlanCommand) (*mealplan.MealPlan, error)
	SwapMeal(ctx context.Context, cmd SwapMealCommand) (*mealplan.MealPlan, error)
	AdjustPortion(ctx context.Context, cmd AdjustPortionCommand) (*mealplan.MealPlan, error)
	PinPlan(ctx context.Context, planID, userID uuid.UUID) error
	UnpinPlan(ctx context.Context, planID, userID uuid.UUID) error

	// Queries
	GetPlan(ctx context.Context, planID uuid.UUID) (*mealplan.MealPlan, error)
	GetCurrentPlan(ctx context.Context, userID uuid.UUID) (*mealplan.MealPlan, error)
	ListPinnedPlans(ctx context.Context, userID uuid.UUID) ([]*mealplan.MealPlan, error)

	// ComputeSubstitutionEnvelope derives the budget/macro envelope a
	// substitute for the given meal must satisfy. The external substitution
	// collaborator is driven by the caller, never by this service.
	ComputeSubstitutionEnvelope(ctx context.Context, planID, mealID uuid.UUID, profile mealplan.UserProfile) (*mealplan.SubstitutionEnvelope, error)
}

// ShoppingListService derives a consolidated purchase list from a plan
type ShoppingListService interface {
	BuildShoppingList(ctx context.Context, plan *mealplan.MealPlan) (*mealplan.ShoppingList, error)
	BuildShoppingListByPlanID(ctx context.Context, planID uuid.UUID) (*mealplan.ShoppingList, error)
}

// MealPrepService derives a batch-cooking schedule from a plan
type MealPrepService interface {
	BuildPrepPlan(ctx context.Context, plan *mealplan.MealPlan) (*mealplan.MealPrepPlan, error)
	BuildPrepPlanByPlanID(ctx context.Context, planID uuid.UUID) (*mealplan.MealPrepPlan, error)
}

// Command objects for operations

// GeneratePlanCommand contains the inputs of one generation call.
// Seed drives template selection so the same (profile, seed) pair always
// produces the same plan structure.
type GeneratePlanCommand struct {
	Profile mealplan.UserProfile
	Seed    int64
}

// SwapMealCommand replaces one meal of a persisted plan with a candidate.
// The candidate is validated against the profile's hard constraints and the
// slot's substitution envelope before it is accepted.
type SwapMealCommand struct {
	PlanID    uuid.UUID
	MealID    uuid.UUID
	Profile   mealplan.UserProfile
	Candidate mealplan.Meal
}

// AdjustPortionCommand rescales one meal of a persisted plan
type AdjustPortionCommand struct {
	PlanID     uuid.UUID
	MealID     uuid.UUID
	Profile    mealplan.UserProfile
	Multiplier float64
}
