package planner

import "github.com/platewise/v1/internal/domain/mealplan"

// Reconciler scales a plan's ingredient costs down when the plan exceeds
// its budget. Nutrition values are never touched.
type Reconciler struct {
	safetyFactor float64
}

// NewReconciler creates a reconciler with the given safety factor. The
// factor shaves a margin off the budget/cost ratio so per-ingredient
// rounding cannot push the scaled total back over the ceiling.
func NewReconciler(safetyFactor float64) *Reconciler {
	if safetyFactor <= 0 || safetyFactor > 1 {
		safetyFactor = 0.98
	}
	return &Reconciler{safetyFactor: safetyFactor}
}

// Reconcile scales every ingredient cost by (budget/cost)*safetyFactor
// when the plan is over budget, rounds each scaled cost to 2 decimals and
// re-aggregates all totals bottom-up. Within budget it is the identity.
// Returns true when scaling occurred.
func (r *Reconciler) Reconcile(plan *mealplan.MealPlan, totalBudget float64) bool {
	cost := plan.PlanTotals.CostEUR
	if cost <= totalBudget || cost == 0 {
		return false
	}

	scale := (totalBudget / cost) * r.safetyFactor
	for di := range plan.Days {
		for mi := range plan.Days[di].Meals {
			meal := &plan.Days[di].Meals[mi]
			for ii := range meal.Ingredients {
				ing := &meal.Ingredients[ii]
				ing.CostEUR = mealplan.RoundCost(ing.CostEUR * scale)
			}
		}
	}

	plan.Recalculate()
	return true
}
