package mealplan

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() UserProfile {
	return UserProfile{
		UserID:       uuid.New(),
		BudgetAmount: 50,
		BudgetPeriod: BudgetPeriodWeekly,
		PlanDays:     5,
		MealsPerDay:  3,
	}
}

func TestUserProfileValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*UserProfile)
		wantField string
	}{
		{
			name:   "valid profile",
			mutate: func(p *UserProfile) {},
		},
		{
			name:      "zero budget",
			mutate:    func(p *UserProfile) { p.BudgetAmount = 0 },
			wantField: "budget_amount",
		},
		{
			name:      "negative budget",
			mutate:    func(p *UserProfile) { p.BudgetAmount = -10 },
			wantField: "budget_amount",
		},
		{
			name:      "unknown budget period",
			mutate:    func(p *UserProfile) { p.BudgetPeriod = "monthly" },
			wantField: "budget_period",
		},
		{
			name:      "zero plan days",
			mutate:    func(p *UserProfile) { p.PlanDays = 0 },
			wantField: "plan_days",
		},
		{
			name:      "too many plan days",
			mutate:    func(p *UserProfile) { p.PlanDays = 15 },
			wantField: "plan_days",
		},
		{
			name:   "fourteen plan days allowed",
			mutate: func(p *UserProfile) { p.PlanDays = 14 },
		},
		{
			name:      "zero meals per day",
			mutate:    func(p *UserProfile) { p.MealsPerDay = 0 },
			wantField: "meals_per_day",
		},
		{
			name:      "seven meals per day",
			mutate:    func(p *UserProfile) { p.MealsPerDay = 7 },
			wantField: "meals_per_day",
		},
		{
			name:      "negative calorie target",
			mutate:    func(p *UserProfile) { p.CalorieTarget = -100 },
			wantField: "calorie_target",
		},
		{
			name: "macro targets must sum to 100",
			mutate: func(p *UserProfile) {
				p.MacroTargets = &MacroTargets{ProteinPct: 40, CarbsPct: 40, FatsPct: 10}
			},
			wantField: "macro_targets",
		},
		{
			name: "negative macro percentage",
			mutate: func(p *UserProfile) {
				p.MacroTargets = &MacroTargets{ProteinPct: -10, CarbsPct: 80, FatsPct: 30}
			},
			wantField: "macro_targets",
		},
		{
			name: "macro targets within tolerance",
			mutate: func(p *UserProfile) {
				p.MacroTargets = &MacroTargets{ProteinPct: 30.2, CarbsPct: 40, FatsPct: 29.9}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			tt.mutate(&profile)

			err := profile.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestUserProfileTotalBudget(t *testing.T) {
	t.Run("daily budget scales with plan length", func(t *testing.T) {
		p := validProfile()
		p.BudgetAmount = 10
		p.BudgetPeriod = BudgetPeriodDaily
		p.PlanDays = 7
		assert.Equal(t, 70.0, p.TotalBudget())
	})

	t.Run("weekly budget covers the whole plan", func(t *testing.T) {
		p := validProfile()
		p.BudgetAmount = 50
		p.BudgetPeriod = BudgetPeriodWeekly
		p.PlanDays = 7
		assert.Equal(t, 50.0, p.TotalBudget())
	})
}

func TestUserProfilePreferences(t *testing.T) {
	t.Run("vegan implies vegetarian", func(t *testing.T) {
		p := validProfile()
		p.DietaryPreferences = []DietaryPreference{DietVegan}

		assert.True(t, p.IsVegan())
		assert.True(t, p.IsVegetarian())
		assert.False(t, p.IsGlutenFree())
	})

	t.Run("vegetarian does not imply vegan", func(t *testing.T) {
		p := validProfile()
		p.DietaryPreferences = []DietaryPreference{DietVegetarian}

		assert.False(t, p.IsVegan())
		assert.True(t, p.IsVegetarian())
	})
}
