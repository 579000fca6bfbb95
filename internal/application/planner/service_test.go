package planner

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/dietary"
	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/errors"
	"github.com/platewise/v1/pkg/logger"
	"github.com/platewise/v1/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) inbound.PlannerService {
	t.Helper()
	return NewPlannerService(
		memory.NewPlanRepository(),
		memory.NewCacheRepository(),
		catalog.DefaultCatalog(),
		dietary.NewFilter(dietary.DefaultRules()),
		config.Default().Planner,
		logger.NewNop(),
		WithClock(func() time.Time {
			return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
		}),
	)
}

func baseProfile() mealplan.UserProfile {
	return mealplan.UserProfile{
		UserID:       uuid.New(),
		BudgetAmount: 200,
		BudgetPeriod: mealplan.BudgetPeriodWeekly,
		PlanDays:     5,
		MealsPerDay:  3,
	}
}

func recipeNames(plan *mealplan.MealPlan) []string {
	var names []string
	for _, meal := range plan.AllMeals() {
		names = append(names, meal.RecipeName)
	}
	return names
}

func TestGeneratePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the requested structure", func(t *testing.T) {
		svc := newTestService(t)
		profile := baseProfile()

		plan, err := svc.GeneratePlan(ctx, inbound.GeneratePlanCommand{Profile: profile, Seed: 7})

		require.NoError(t, err)
		require.Len(t, plan.Days, 5)
		for i, day := range plan.Days {
			assert.Equal(t, i+1, day.DayNumber)
			require.Len(t, day.Meals, 3)
			assert.Equal(t, mealplan.MealTypeBreakfast, day.Meals[0].MealType)
			assert.Equal(t, mealplan.MealTypeLunch, day.Meals[1].MealType)
			assert.Equal(t, mealplan.MealTypeDinner, day.Meals[2].MealType)
		}
		assert.Equal(t, "2026-03-02", plan.Days[0].Date)
		assert.Equal(t, "2026-03-06", plan.Days[4].Date)
		assert.True(t, plan.TotalsConsistent())
		assert.Equal(t, 5, plan.Metadata.Days)
	})

	t.Run("same seed gives the same recipes", func(t *testing.T) {
		profile := baseProfile()
		cmd := inbound.GeneratePlanCommand{Profile: profile, Seed: 42}

		first, err := newTestService(t).GeneratePlan(ctx, cmd)
		require.NoError(t, err)
		second, err := newTestService(t).GeneratePlan(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, recipeNames(first), recipeNames(second))
	})

	t.Run("stores the plan as current", func(t *testing.T) {
		svc := newTestService(t)
		profile := baseProfile()

		plan, err := svc.GeneratePlan(ctx, inbound.GeneratePlanCommand{Profile: profile, Seed: 1})
		require.NoError(t, err)

		current, err := svc.GetCurrentPlan(ctx, profile.UserID)
		require.NoError(t, err)
		assert.Equal(t, plan.ID, current.ID)
	})

	t.Run("vegan profile only gets admissible ingredients", func(t *testing.T) {
		svc := newTestService(t)
		filter := dietary.NewFilter(dietary.DefaultRules())
		profile := baseProfile()
		profile.BudgetAmount = 50
		profile.DietaryPreferences = []mealplan.DietaryPreference{
			mealplan.DietVegan,
			mealplan.DietGlutenFree,
		}

		plan, err := svc.GeneratePlan(ctx, inbound.GeneratePlanCommand{Profile: profile, Seed: 3})

		require.NoError(t, err)
		for _, ing := range plan.AllIngredients() {
			assert.True(t, filter.IsIngredientAllowed(ing.Name, profile),
				"ingredient %q should be admissible", ing.Name)
		}
		assert.LessOrEqual(t, plan.PlanTotals.CostEUR, profile.TotalBudget())
		assert.False(t, plan.Metadata.IsOverBudget)
	})

	t.Run("tight budget triggers reconciliation", func(t *testing.T) {
		profile := baseProfile()
		cmd := inbound.GeneratePlanCommand{Profile: profile, Seed: 11}

		generous, err := newTestService(t).GeneratePlan(ctx, cmd)
		require.NoError(t, err)

		tightProfile := profile
		tightProfile.BudgetAmount = generous.PlanTotals.CostEUR / 2
		tight, err := newTestService(t).GeneratePlan(ctx, inbound.GeneratePlanCommand{Profile: tightProfile, Seed: 11})
		require.NoError(t, err)

		assert.Less(t, tight.PlanTotals.CostEUR, generous.PlanTotals.CostEUR)
		assert.LessOrEqual(t, tight.PlanTotals.CostEUR, tightProfile.TotalBudget())
		assert.False(t, tight.Metadata.IsOverBudget)
		// Nutrition is identical, only costs were scaled.
		assert.Equal(t, generous.PlanTotals.Calories, tight.PlanTotals.Calories)
	})

	t.Run("daily budget scales with plan length", func(t *testing.T) {
		svc := newTestService(t)
		profile := baseProfile()
		profile.BudgetAmount = 20
		profile.BudgetPeriod = mealplan.BudgetPeriodDaily

		plan, err := svc.GeneratePlan(ctx, inbound.GeneratePlanCommand{Profile: profile, Seed: 2})

		require.NoError(t, err)
		assert.Equal(t, 100.0, plan.Metadata.PeriodBudget)
	})

	t.Run("invalid profile is rejected before generation", func(t *testing.T) {
		svc := newTestService(t)
		profile := baseProfile()
		profile.BudgetAmount = 0

		_, err := svc.GeneratePlan(ctx, inbound.GeneratePlanCommand{Profile: profile})

		require.Error(t, err)
		assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
	})
}

func TestSwapMeal(t *testing.T) {
	ctx := context.Background()

	generate := func(t *testing.T, svc inbound.PlannerService, profile mealplan.UserProfile) *mealplan.MealPlan {
		t.Helper()
		plan, err := svc.GeneratePlan(ctx, inbound.GeneratePlanCommand{Profile: profile, Seed: 9})
		require.NoError(t, err)
		return plan
	}

	t.Run("valid candidate replaces the meal", func(t *testing.T) {
		svc := newTestService(t)
		profile := baseProfile()
		plan := generate(t, svc, profile)
		target := plan.Days[0].Meals[1]

		candidate := testutils.Meal(mealplan.MealTypeLunch, "Garden Salad",
			testutils.Ingredient("Lettuce", testutils.WithCost(0.40)),
			testutils.Ingredient("Cucumber", testutils.WithCost(0.35)),
		)

		updated, err := svc.SwapMeal(ctx, inbound.SwapMealCommand{
			PlanID:    plan.ID,
			MealID:    target.ID,
			Profile:   profile,
			Candidate: candidate,
		})

		require.NoError(t, err)
		swapped := updated.Days[0].Meals[1]
		assert.Equal(t, "Garden Salad", swapped.RecipeName)
		assert.Equal(t, target.ID, swapped.ID)
		assert.True(t, updated.TotalsConsistent())

		stored, err := svc.GetPlan(ctx, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, "Garden Salad", stored.Days[0].Meals[1].RecipeName)
	})

	t.Run("blocked ingredient is a constraint violation", func(t *testing.T) {
		svc := newTestService(t)
		profile := baseProfile()
		profile.DietaryPreferences = []mealplan.DietaryPreference{mealplan.DietVegan}
		plan := generate(t, svc, profile)

		candidate := testutils.Meal(mealplan.MealTypeLunch, "Chicken Wrap",
			testutils.Ingredient("Chicken Breast", testutils.WithCost(1.20)),
		)

		_, err := svc.SwapMeal(ctx, inbound.SwapMealCommand{
			PlanID:    plan.ID,
			MealID:    plan.Days[0].Meals[1].ID,
			Profile:   profile,
			Candidate: candidate,
		})

		require.Error(t, err)
		assert.Equal(t, errors.CodeConstraintViolation, errors.GetCode(err))
	})

	t.Run("candidate over the cost envelope is rejected", func(t *testing.T) {
		svc := newTestService(t)
		profile := baseProfile()
		profile.BudgetAmount = 30
		plan := generate(t, svc, profile)

		candidate := testutils.Meal(mealplan.MealTypeLunch, "Lobster Thermidor",
			testutils.Ingredient("Lobster", testutils.WithCost(95.00)),
		)

		_, err := svc.SwapMeal(ctx, inbound.SwapMealCommand{
			PlanID:    plan.ID,
			MealID:    plan.Days[0].Meals[1].ID,
			Profile:   profile,
			Candidate: candidate,
		})

		require.Error(t, err)
		assert.Equal(t, errors.CodeConstraintViolation, errors.GetCode(err))
	})

	t.Run("unknown meal id", func(t *testing.T) {
		svc := newTestService(t)
		profile := baseProfile()
		plan := generate(t, svc, profile)

		_, err := svc.SwapMeal(ctx, inbound.SwapMealCommand{
			PlanID:    plan.ID,
			MealID:    uuid.New(),
			Profile:   profile,
			Candidate: testutils.Meal(mealplan.MealTypeLunch, "Salad", testutils.Ingredient("Lettuce")),
		})

		require.Error(t, err)
		assert.Equal(t, errors.CodeMealNotFound, errors.GetCode(err))
	})

	t.Run("unknown plan id", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.SwapMeal(ctx, inbound.SwapMealCommand{
			PlanID:    uuid.New(),
			MealID:    uuid.New(),
			Profile:   baseProfile(),
			Candidate: testutils.Meal(mealplan.MealTypeLunch, "Salad", testutils.Ingredient("Lettuce")),
		})

		require.Error(t, err)
		assert.Equal(t, errors.CodePlanNotFound, errors.GetCode(err))
	})
}

func TestAdjustPortion(t *testing.T) {
	ctx := context.Background()

	t.Run("rescales one meal", func(t *testing.T) {
		svc := newTestService(t)
		profile := baseProfile()
		plan, err := svc.GeneratePlan(ctx, inbound.GeneratePlanCommand{Profile: profile, Seed: 4})
		require.NoError(t, err)
		target := plan.Days[0].Meals[0]

		updated, err := svc.AdjustPortion(ctx, inbound.AdjustPortionCommand{
			PlanID:     plan.ID,
			MealID:     target.ID,
			Profile:    profile,
			Multiplier: 2,
		})

		require.NoError(t, err)
		scaled := updated.Days[0].Meals[0]
		assert.Equal(t, target.Ingredients[0].QuantityG*2, scaled.Ingredients[0].QuantityG)
		// Totals re-round from raw sums, so doubling lands within one unit.
		assert.InDelta(t, target.Totals.Calories*2, scaled.Totals.Calories, 1)
		assert.True(t, updated.TotalsConsistent())
	})

	t.Run("non-positive multiplier is rejected", func(t *testing.T) {
		svc := newTestService(t)
		profile := baseProfile()
		plan, err := svc.GeneratePlan(ctx, inbound.GeneratePlanCommand{Profile: profile, Seed: 4})
		require.NoError(t, err)

		_, err = svc.AdjustPortion(ctx, inbound.AdjustPortionCommand{
			PlanID:     plan.ID,
			MealID:     plan.Days[0].Meals[0].ID,
			Profile:    profile,
			Multiplier: 0,
		})

		require.Error(t, err)
		assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
	})
}

func TestComputeSubstitutionEnvelope(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the current meal totals", func(t *testing.T) {
		svc := newTestService(t)
		profile := baseProfile()
		plan, err := svc.GeneratePlan(ctx, inbound.GeneratePlanCommand{Profile: profile, Seed: 6})
		require.NoError(t, err)
		meal := plan.Days[0].Meals[0]

		env, err := svc.ComputeSubstitutionEnvelope(ctx, plan.ID, meal.ID, profile)

		require.NoError(t, err)
		assert.Equal(t, meal.Totals.Calories, env.TargetCalories)
		assert.Equal(t, meal.Totals.ProteinG, env.TargetProteinG)
		assert.Equal(t, mealplan.RoundCost(meal.Totals.CostEUR+plan.Metadata.BudgetRemaining), env.MaxCostEUR)
	})

	t.Run("profile targets override meal totals", func(t *testing.T) {
		svc := newTestService(t)
		profile := baseProfile()
		profile.CalorieTarget = 1800
		profile.MacroTargets = &mealplan.MacroTargets{ProteinPct: 30, CarbsPct: 40, FatsPct: 30}
		plan, err := svc.GeneratePlan(ctx, inbound.GeneratePlanCommand{Profile: profile, Seed: 6})
		require.NoError(t, err)

		env, err := svc.ComputeSubstitutionEnvelope(ctx, plan.ID, plan.Days[0].Meals[0].ID, profile)

		require.NoError(t, err)
		// 1800 kcal over 3 meals, macros at 4/4/9 kcal per gram
		assert.Equal(t, 600.0, env.TargetCalories)
		assert.Equal(t, 45.0, env.TargetProteinG)
		assert.Equal(t, 60.0, env.TargetCarbsG)
		assert.Equal(t, 20.0, env.TargetFatsG)
	})

	t.Run("over-budget plan leaves no headroom", func(t *testing.T) {
		svc := newTestService(t)
		profile := baseProfile()
		plan, err := svc.GeneratePlan(ctx, inbound.GeneratePlanCommand{Profile: profile, Seed: 6})
		require.NoError(t, err)
		meal := plan.Days[0].Meals[0]

		// Force the stored plan over budget through a portion increase.
		bigger, err := svc.AdjustPortion(ctx, inbound.AdjustPortionCommand{
			PlanID:     plan.ID,
			MealID:     meal.ID,
			Profile:    profile,
			Multiplier: 6,
		})
		require.NoError(t, err)

		if bigger.Metadata.BudgetRemaining < 0 {
			env, err := svc.ComputeSubstitutionEnvelope(ctx, plan.ID, meal.ID, profile)
			require.NoError(t, err)
			assert.Equal(t, bigger.Days[0].Meals[0].Totals.CostEUR, env.MaxCostEUR)
		}
	})
}
