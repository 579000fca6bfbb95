// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/mealplan"
)

// PlanRepository defines the interface for meal plan persistence.
// A user has at most one current plan and at most MaxPinnedPlans pinned
// plans; Pin must refuse to exceed the cap.
type PlanRepository interface {
	// UpsertCurrent stores the plan as the user's current plan, replacing
	// any previous current plan for that user.
	UpsertCurrent(ctx context.Context, plan *mealplan.MealPlan) error
	Update(ctx context.Context, plan *mealplan.MealPlan) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*mealplan.MealPlan, error)
	FindCurrentByUser(ctx context.Context, userID uuid.UUID) (*mealplan.MealPlan, error)

	// Pinned-plan lifecycle
	Pin(ctx context.Context, planID, userID uuid.UUID) error
	Unpin(ctx context.Context, planID, userID uuid.UUID) error
	ListPinned(ctx context.Context, userID uuid.UUID) ([]*mealplan.MealPlan, error)
}

// MaxPinnedPlans is the per-user cap on saved (pinned) plans
const MaxPinnedPlans = 5

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Cache keys for artifacts derived from a plan. Writers of a plan must
// drop both keys so readers never serve stale derivations.

// ShoppingListCacheKey returns the cache key for a plan's shopping list
func ShoppingListCacheKey(planID uuid.UUID) string {
	return "shopping-list:" + planID.String()
}

// PrepPlanCacheKey returns the cache key for a plan's prep schedule
func PrepPlanCacheKey(planID uuid.UUID) string {
	return "prep-plan:" + planID.String()
}

// SubstitutionService defines the interface for the external meal
// substitution collaborator. Given the envelope a substitute must satisfy,
// it eventually returns a candidate meal or fails. The engine never calls
// it directly; it only computes envelopes and validates whatever the
// caller brings back.
type SubstitutionService interface {
	ProposeMeal(ctx context.Context, envelope mealplan.SubstitutionEnvelope, profile mealplan.UserProfile) (*mealplan.Meal, error)
}
