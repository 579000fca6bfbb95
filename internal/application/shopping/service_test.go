package shopping

import (
	"context"
	"testing"

	"github.com/google/uuid"
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

func newTestService() inbound.ShoppingListService {
	return NewShoppingService(memory.NewPlanRepository(), memory.NewCacheRepository(), config.Default().Planner, logger.NewNop())
}

func TestBuildShoppingList(t *testing.T) {
	ctx := context.Background()

	t.Run("consolidates across meals and days", func(t *testing.T) {
		plan := testutils.NewPlanBuilder().
			WithDay(
				testutils.Meal(mealplan.MealTypeLunch, "Rice Bowl",
					testutils.Ingredient("Brown Rice", testutils.WithQuantity(150), testutils.WithCost(0.30)),
				),
				testutils.Meal(mealplan.MealTypeDinner, "Stir Fry",
					testutils.Ingredient("brown rice ", testutils.WithQuantity(100), testutils.WithCost(0.20)),
				),
			).
			WithDay(
				testutils.Meal(mealplan.MealTypeLunch, "Rice Salad",
					testutils.Ingredient("Brown Rice", testutils.WithQuantity(120), testutils.WithCost(0.24)),
				),
			).
			Build()

		list, err := newTestService().BuildShoppingList(ctx, plan)

		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		item := list.Items[0]
		assert.Equal(t, 370.0, item.TotalQuantityG)
		assert.Equal(t, 0.74, item.EstimatedPriceEUR)
		assert.Equal(t, "g", item.Unit)
		assert.Equal(t, 1, list.Summary.TotalItems)
	})

	t.Run("short groups are lifted to the package floor", func(t *testing.T) {
		// Default package floor is 100g; 50g at 0.40 becomes 0.80.
		plan := testutils.NewPlanBuilder().
			WithDay(testutils.Meal(mealplan.MealTypeSnack, "Trail Mix",
				testutils.Ingredient("Pumpkin Seeds", testutils.WithQuantity(50), testutils.WithCost(0.40)),
			)).
			Build()

		list, err := newTestService().BuildShoppingList(ctx, plan)

		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		assert.Equal(t, 0.80, list.Items[0].EstimatedPriceEUR)
		assert.Equal(t, 50.0, list.Items[0].TotalQuantityG)
		assert.Equal(t, 100.0, list.Items[0].MinPurchaseQuantityG)
	})

	t.Run("waste is the gap between shopping and plan cost", func(t *testing.T) {
		plan := testutils.NewPlanBuilder().
			WithDay(testutils.Meal(mealplan.MealTypeSnack, "Trail Mix",
				testutils.Ingredient("Pumpkin Seeds", testutils.WithQuantity(50), testutils.WithCost(0.40)),
				testutils.Ingredient("Raisins", testutils.WithQuantity(200), testutils.WithCost(0.50)),
			)).
			Build()

		list, err := newTestService().BuildShoppingList(ctx, plan)

		require.NoError(t, err)
		assert.Equal(t, 1.30, list.Summary.TotalShoppingCostEUR)
		assert.Equal(t, 0.90, list.Summary.PlanCostEUR)
		assert.Equal(t, 0.40, list.Summary.WasteCostEUR)
	})

	t.Run("waste never goes negative", func(t *testing.T) {
		plan := testutils.NewPlanBuilder().
			WithDay(testutils.Meal(mealplan.MealTypeLunch, "Soup",
				testutils.Ingredient("Lentils", testutils.WithQuantity(250), testutils.WithCost(0.75)),
			)).
			Build()

		list, err := newTestService().BuildShoppingList(ctx, plan)

		require.NoError(t, err)
		assert.Equal(t, 0.0, list.Summary.WasteCostEUR)
	})

	t.Run("items are sorted by name", func(t *testing.T) {
		plan := testutils.NewPlanBuilder().
			WithDay(testutils.Meal(mealplan.MealTypeLunch, "Mixed Plate",
				testutils.Ingredient("Zucchini", testutils.WithQuantity(200)),
				testutils.Ingredient("Apple", testutils.WithQuantity(150)),
				testutils.Ingredient("Mushrooms", testutils.WithQuantity(180)),
			)).
			Build()

		list, err := newTestService().BuildShoppingList(ctx, plan)

		require.NoError(t, err)
		require.Len(t, list.Items, 3)
		assert.Equal(t, "Apple", list.Items[0].Name)
		assert.Equal(t, "Mushrooms", list.Items[1].Name)
		assert.Equal(t, "Zucchini", list.Items[2].Name)
	})

	t.Run("empty plan yields empty list", func(t *testing.T) {
		plan := testutils.NewPlanBuilder().Build()

		list, err := newTestService().BuildShoppingList(ctx, plan)

		require.NoError(t, err)
		assert.Empty(t, list.Items)
		assert.Equal(t, mealplan.ShoppingSummary{}, list.Summary)
	})
}

func TestBuildShoppingListByPlanID(t *testing.T) {
	ctx := context.Background()

	t.Run("loads the plan from the repository", func(t *testing.T) {
		repo := memory.NewPlanRepository()
		svc := NewShoppingService(repo, memory.NewCacheRepository(), config.Default().Planner, logger.NewNop())

		plan := testutils.NewPlanBuilder().
			WithDay(testutils.Meal(mealplan.MealTypeLunch, "Soup",
				testutils.Ingredient("Lentils", testutils.WithQuantity(250), testutils.WithCost(0.75)),
			)).
			Build()
		require.NoError(t, repo.UpsertCurrent(ctx, plan))

		list, err := svc.BuildShoppingListByPlanID(ctx, plan.ID)

		require.NoError(t, err)
		assert.Equal(t, plan.ID, list.PlanID)
		assert.Len(t, list.Items, 1)
	})

	t.Run("unknown plan id", func(t *testing.T) {
		_, err := newTestService().BuildShoppingListByPlanID(ctx, uuid.New())

		require.Error(t, err)
		assert.Equal(t, errors.CodePlanNotFound, errors.GetCode(err))
	})
}
