package catalog_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/dietary"
	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allowAll accepts every template
type allowAll struct{}

func (allowAll) IsTemplateEligible(catalog.Template, mealplan.UserProfile) bool { return true }

// allowNone rejects every template
type allowNone struct{}

func (allowNone) IsTemplateEligible(catalog.Template, mealplan.UserProfile) bool { return false }

func testProfile(prefs ...mealplan.DietaryPreference) mealplan.UserProfile {
	return mealplan.UserProfile{
		UserID:             uuid.New(),
		BudgetAmount:       50,
		BudgetPeriod:       mealplan.BudgetPeriodWeekly,
		PlanDays:           5,
		MealsPerDay:        3,
		DietaryPreferences: prefs,
	}
}

func TestSlotLayout(t *testing.T) {
	tests := []struct {
		mealsPerDay int
		want        []mealplan.MealType
	}{
		{1, []mealplan.MealType{mealplan.MealTypeLunch}},
		{2, []mealplan.MealType{mealplan.MealTypeBreakfast, mealplan.MealTypeDinner}},
		{3, []mealplan.MealType{mealplan.MealTypeBreakfast, mealplan.MealTypeLunch, mealplan.MealTypeDinner}},
		{4, []mealplan.MealType{mealplan.MealTypeBreakfast, mealplan.MealTypeLunch, mealplan.MealTypeSnack, mealplan.MealTypeDinner}},
		{5, []mealplan.MealType{mealplan.MealTypeBreakfast, mealplan.MealTypeSnack, mealplan.MealTypeLunch, mealplan.MealTypeSnack, mealplan.MealTypeDinner}},
		{6, []mealplan.MealType{mealplan.MealTypeBreakfast, mealplan.MealTypeSnack, mealplan.MealTypeLunch, mealplan.MealTypeSnack, mealplan.MealTypeDinner, mealplan.MealTypeSnack}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, catalog.SlotLayout(tt.mealsPerDay), "meals per day %d", tt.mealsPerDay)
	}

	t.Run("counts clamp to bounds", func(t *testing.T) {
		assert.Equal(t, catalog.SlotLayout(1), catalog.SlotLayout(0))
		assert.Equal(t, catalog.SlotLayout(6), catalog.SlotLayout(9))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		layout := catalog.SlotLayout(3)
		layout[0] = mealplan.MealTypeSnack
		assert.Equal(t, mealplan.MealTypeBreakfast, catalog.SlotLayout(3)[0])
	})
}

func TestSlotSeed(t *testing.T) {
	base := int64(42)

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, catalog.SlotSeed(base, 2, 1), catalog.SlotSeed(base, 2, 1))
	})

	t.Run("positions differ within a plan", func(t *testing.T) {
		seen := map[uint64]bool{}
		for day := 1; day <= 7; day++ {
			for slot := 0; slot < 3; slot++ {
				seed := catalog.SlotSeed(base, day, slot)
				assert.False(t, seen[seed], "seed collision at day %d slot %d", day, slot)
				seen[seed] = true
			}
		}
	})
}

func TestSelectorSelect(t *testing.T) {
	cat := catalog.DefaultCatalog()

	t.Run("same seed gives same template", func(t *testing.T) {
		sel := catalog.NewSelector(cat, allowAll{})
		profile := testProfile()

		first, err := sel.Select(mealplan.MealTypeDinner, profile, 17)
		require.NoError(t, err)
		second, err := sel.Select(mealplan.MealTypeDinner, profile, 17)
		require.NoError(t, err)

		assert.Equal(t, first.Template.Name, second.Template.Name)
		assert.False(t, first.Fallback)
	})

	t.Run("seed indexes the eligible pool", func(t *testing.T) {
		sel := catalog.NewSelector(cat, allowAll{})
		pool := cat.TemplatesFor(mealplan.MealTypeLunch)
		require.NotEmpty(t, pool)

		selection, err := sel.Select(mealplan.MealTypeLunch, testProfile(), 3)
		require.NoError(t, err)
		assert.Equal(t, pool[3%len(pool)].Name, selection.Template.Name)
	})

	t.Run("empty eligible pool falls back to full pool", func(t *testing.T) {
		sel := catalog.NewSelector(cat, allowNone{})

		selection, err := sel.Select(mealplan.MealTypeBreakfast, testProfile(), 5)
		require.NoError(t, err)
		assert.True(t, selection.Fallback)
		assert.NotEmpty(t, selection.Template.Name)
	})

	t.Run("unknown meal type errors", func(t *testing.T) {
		sel := catalog.NewSelector(cat, allowAll{})

		_, err := sel.Select(mealplan.MealType("brunch"), testProfile(), 1)
		assert.ErrorIs(t, err, catalog.ErrNoTemplates)
	})
}

func TestDefaultCatalogCoverage(t *testing.T) {
	cat := catalog.DefaultCatalog()
	filter := dietary.NewFilter(dietary.DefaultRules())

	mealTypes := []mealplan.MealType{
		mealplan.MealTypeBreakfast,
		mealplan.MealTypeLunch,
		mealplan.MealTypeDinner,
		mealplan.MealTypeSnack,
	}

	t.Run("every meal type has templates", func(t *testing.T) {
		for _, mt := range mealTypes {
			assert.NotEmpty(t, cat.TemplatesFor(mt), "meal type %s", mt)
		}
	})

	t.Run("vegan gluten free profile never needs fallback", func(t *testing.T) {
		profile := testProfile(mealplan.DietVegan, mealplan.DietGlutenFree)
		for _, mt := range mealTypes {
			eligible := 0
			for _, tmpl := range cat.TemplatesFor(mt) {
				if filter.IsTemplateEligible(tmpl, profile) {
					eligible++
				}
			}
			assert.Greater(t, eligible, 0, "meal type %s", mt)
		}
	})

	t.Run("vegan tags are consistent with ingredients", func(t *testing.T) {
		profile := testProfile(mealplan.DietVegan)
		for _, mt := range mealTypes {
			for _, tmpl := range cat.TemplatesFor(mt) {
				if !tmpl.Vegan {
					continue
				}
				for _, ing := range tmpl.Ingredients {
					assert.True(t, filter.IsIngredientAllowed(ing.Name, profile),
						"vegan template %q carries blocked ingredient %q", tmpl.Name, ing.Name)
				}
			}
		}
	})

	t.Run("templates have positive cost and calories", func(t *testing.T) {
		for _, mt := range mealTypes {
			for _, tmpl := range cat.TemplatesFor(mt) {
				require.NotEmpty(t, tmpl.Ingredients, "template %q", tmpl.Name)
				for _, ing := range tmpl.Ingredients {
					assert.Greater(t, ing.CostEUR, 0.0, "template %q ingredient %q", tmpl.Name, ing.Name)
					assert.GreaterOrEqual(t, ing.Calories, 0.0, "template %q ingredient %q", tmpl.Name, ing.Name)
				}
			}
		}
	})
}
