// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/mealplan"
)

// ProfileFactory provides methods to create test user profiles
type ProfileFactory struct {
	faker *gofakeit.Faker
}

// NewProfileFactory creates a new profile factory with seeded faker
func NewProfileFactory(seed int64) *ProfileFactory {
	return &ProfileFactory{
		faker: gofakeit.New(seed),
	}
}

// ValidProfile creates a profile that passes validation
func (f *ProfileFactory) ValidProfile() mealplan.UserProfile {
	return mealplan.UserProfile{
		UserID:       uuid.New(),
		BudgetAmount: float64(f.faker.IntRange(40, 120)),
		BudgetPeriod: mealplan.BudgetPeriodWeekly,
		PlanDays:     f.faker.IntRange(3, 7),
		MealsPerDay:  3,
	}
}

// VeganProfile creates a vegan, gluten-free profile
func (f *ProfileFactory) VeganProfile() mealplan.UserProfile {
	p := f.ValidProfile()
	p.DietaryPreferences = []mealplan.DietaryPreference{
		mealplan.DietVegan,
		mealplan.DietGlutenFree,
	}
	return p
}

// PlanBuilder provides a fluent interface for building test meal plans
type PlanBuilder struct {
	userID uuid.UUID
	budget float64
	days   []mealplan.Day
}

// NewPlanBuilder creates a new plan builder with default values
func NewPlanBuilder() *PlanBuilder {
	return &PlanBuilder{
		userID: uuid.New(),
		budget: 60,
	}
}

// WithUser sets the plan owner
func (pb *PlanBuilder) WithUser(userID uuid.UUID) *PlanBuilder {
	pb.userID = userID
	return pb
}

// WithBudget sets the period budget
func (pb *PlanBuilder) WithBudget(budget float64) *PlanBuilder {
	pb.budget = budget
	return pb
}

// WithDay appends a day holding the given meals
func (pb *PlanBuilder) WithDay(meals ...mealplan.Meal) *PlanBuilder {
	dayNumber := len(pb.days) + 1
	pb.days = append(pb.days, mealplan.Day{
		DayNumber: dayNumber,
		Date:      time.Now().AddDate(0, 0, dayNumber-1).Format("2006-01-02"),
		Meals:     meals,
	})
	return pb
}

// Build assembles the plan and derives all totals
func (pb *PlanBuilder) Build() *mealplan.MealPlan {
	plan := &mealplan.MealPlan{
		ID:          uuid.New(),
		UserID:      pb.userID,
		GeneratedAt: time.Now(),
		Days:        pb.days,
	}
	plan.Recalculate()
	plan.RefreshMetadata(pb.budget)
	return plan
}

// Meal creates a meal with the given recipe name and ingredients
func Meal(mealType mealplan.MealType, recipeName string, ingredients ...mealplan.Ingredient) mealplan.Meal {
	return mealplan.Meal{
		ID:           uuid.New(),
		MealType:     mealType,
		RecipeName:   recipeName,
		Ingredients:  ingredients,
		Instructions: []string{fmt.Sprintf("Prepare %s.", recipeName)},
	}
}

// IngredientOpt mutates a generated ingredient
type IngredientOpt func(*mealplan.Ingredient)

// WithCost overrides the ingredient cost
func WithCost(cost float64) IngredientOpt {
	return func(i *mealplan.Ingredient) { i.CostEUR = cost }
}

// WithQuantity overrides the ingredient quantity
func WithQuantity(grams float64) IngredientOpt {
	return func(i *mealplan.Ingredient) { i.QuantityG = grams }
}

// Ingredient creates an ingredient with plausible default nutrition
func Ingredient(name string, opts ...IngredientOpt) mealplan.Ingredient {
	ing := mealplan.Ingredient{
		ID:        uuid.New(),
		Name:      name,
		QuantityG: 100,
		Calories:  150,
		ProteinG:  6,
		CarbsG:    20,
		FatsG:     4,
		CostEUR:   0.50,
	}
	for _, opt := range opts {
		opt(&ing)
	}
	return ing
}
