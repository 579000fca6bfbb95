package planner

import (
	"testing"

	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/test/testutils"
	"github.com/stretchr/testify/assert"
)

func TestReconciler(t *testing.T) {
	t.Run("within budget is a no-op", func(t *testing.T) {
		plan := testutils.NewPlanBuilder().
			WithDay(testutils.Meal(mealplan.MealTypeLunch, "Soup",
				testutils.Ingredient("Lentils", testutils.WithCost(2.00)),
			)).
			Build()

		scaled := NewReconciler(0.98).Reconcile(plan, 10)

		assert.False(t, scaled)
		assert.Equal(t, 2.00, plan.PlanTotals.CostEUR)
	})

	t.Run("over budget scales costs under the ceiling", func(t *testing.T) {
		plan := testutils.NewPlanBuilder().
			WithDay(testutils.Meal(mealplan.MealTypeLunch, "Stew",
				testutils.Ingredient("Beans", testutils.WithCost(30.00)),
				testutils.Ingredient("Rice", testutils.WithCost(30.00)),
			)).
			Build()

		scaled := NewReconciler(0.98).Reconcile(plan, 49)

		assert.True(t, scaled)
		// scale = (49/60)*0.98, each 30.00 ingredient becomes 24.01
		assert.Equal(t, 24.01, plan.Days[0].Meals[0].Ingredients[0].CostEUR)
		assert.Equal(t, 48.02, plan.PlanTotals.CostEUR)
		assert.LessOrEqual(t, plan.PlanTotals.CostEUR, 49.0)
	})

	t.Run("nutrition is untouched by scaling", func(t *testing.T) {
		plan := testutils.NewPlanBuilder().
			WithDay(testutils.Meal(mealplan.MealTypeLunch, "Stew",
				testutils.Ingredient("Beans", testutils.WithCost(30.00)),
			)).
			Build()
		caloriesBefore := plan.PlanTotals.Calories

		NewReconciler(0.98).Reconcile(plan, 10)

		assert.Equal(t, caloriesBefore, plan.PlanTotals.Calories)
	})

	t.Run("zero cost plan is a no-op", func(t *testing.T) {
		plan := testutils.NewPlanBuilder().
			WithDay(testutils.Meal(mealplan.MealTypeLunch, "Water",
				testutils.Ingredient("Tap Water", testutils.WithCost(0)),
			)).
			Build()

		assert.False(t, NewReconciler(0.98).Reconcile(plan, 0))
	})

	t.Run("invalid safety factor falls back to default", func(t *testing.T) {
		r := NewReconciler(-1)
		assert.Equal(t, 0.98, r.safetyFactor)

		r = NewReconciler(1.5)
		assert.Equal(t, 0.98, r.safetyFactor)
	})
}
