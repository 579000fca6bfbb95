// Package memory provides in-memory repository implementations used by
// tests and the demo wiring.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

// PlanRepository implements outbound.PlanRepository over process memory
type PlanRepository struct {
	mutex   sync.RWMutex
	plans   map[uuid.UUID]*mealplan.MealPlan
	current map[uuid.UUID]uuid.UUID  // user id -> current plan id
	pinned  map[uuid.UUID][]uuid.UUID // user id -> pinned plan ids, insertion order
}

// NewPlanRepository creates a new in-memory plan repository
func NewPlanRepository() outbound.PlanRepository {
	return &PlanRepository{
		plans:   make(map[uuid.UUID]*mealplan.MealPlan),
		current: make(map[uuid.UUID]uuid.UUID),
		pinned:  make(map[uuid.UUID][]uuid.UUID),
	}
}

// UpsertCurrent stores the plan as the user's current plan
func (r *PlanRepository) UpsertCurrent(ctx context.Context, plan *mealplan.MealPlan) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.plans[plan.ID] = clonePlan(plan)
	r.current[plan.UserID] = plan.ID
	return nil
}

// Update overwrites a stored plan
func (r *PlanRepository) Update(ctx context.Context, plan *mealplan.MealPlan) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.plans[plan.ID]; !ok {
		return errors.NewPlanNotFoundError(plan.ID.String())
	}
	r.plans[plan.ID] = clonePlan(plan)
	return nil
}

// Delete removes a plan and any references to it
func (r *PlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	plan, ok := r.plans[id]
	if !ok {
		return errors.NewPlanNotFoundError(id.String())
	}
	delete(r.plans, id)
	if r.current[plan.UserID] == id {
		delete(r.current, plan.UserID)
	}
	r.pinned[plan.UserID] = removeID(r.pinned[plan.UserID], id)
	return nil
}

// FindByID fetches one plan
func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.MealPlan, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	plan, ok := r.plans[id]
	if !ok {
		return nil, errors.NewPlanNotFoundError(id.String())
	}
	return clonePlan(plan), nil
}

// FindCurrentByUser fetches the user's current plan
func (r *PlanRepository) FindCurrentByUser(ctx context.Context, userID uuid.UUID) (*mealplan.MealPlan, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	planID, ok := r.current[userID]
	if !ok {
		return nil, errors.NewPlanNotFoundError("current")
	}
	return clonePlan(r.plans[planID]), nil
}

// Pin adds the plan to the user's pinned set, enforcing the cap
func (r *PlanRepository) Pin(ctx context.Context, planID, userID uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.plans[planID]; !ok {
		return errors.NewPlanNotFoundError(planID.String())
	}
	for _, id := range r.pinned[userID] {
		if id == planID {
			return nil
		}
	}
	if len(r.pinned[userID]) >= outbound.MaxPinnedPlans {
		return errors.NewSavedPlanLimitError(outbound.MaxPinnedPlans)
	}
	r.pinned[userID] = append(r.pinned[userID], planID)
	return nil
}

// Unpin removes the plan from the user's pinned set
func (r *PlanRepository) Unpin(ctx context.Context, planID, userID uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.pinned[userID] = removeID(r.pinned[userID], planID)
	return nil
}

// ListPinned returns the user's pinned plans in pin order
func (r *PlanRepository) ListPinned(ctx context.Context, userID uuid.UUID) ([]*mealplan.MealPlan, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]*mealplan.MealPlan, 0, len(r.pinned[userID]))
	for _, id := range r.pinned[userID] {
		if plan, ok := r.plans[id]; ok {
			out = append(out, clonePlan(plan))
		}
	}
	return out, nil
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

// clonePlan deep-copies a plan so callers cannot mutate stored state
func clonePlan(plan *mealplan.MealPlan) *mealplan.MealPlan {
	out := *plan
	out.Days = make([]mealplan.Day, len(plan.Days))
	for di, day := range plan.Days {
		copied := day
		copied.Meals = make([]mealplan.Meal, len(day.Meals))
		for mi, meal := range day.Meals {
			m := meal
			m.Ingredients = append([]mealplan.Ingredient(nil), meal.Ingredients...)
			m.Instructions = append([]string(nil), meal.Instructions...)
			copied.Meals[mi] = m
		}
		out.Days[di] = copied
	}
	return &out
}
