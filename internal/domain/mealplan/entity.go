package mealplan

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/shared"
)

// Totals holds rolled-up nutrition and cost at a reporting boundary.
// Macro grams and calories are whole numbers, cost carries 2 decimals;
// rounding happens only when a raw sum is stored here, never inside an
// intermediate sum.
type Totals struct {
	Calories float64 `json:"total_calories"`
	ProteinG float64 `json:"total_protein_g"`
	CarbsG   float64 `json:"total_carbs_g"`
	FatsG    float64 `json:"total_fats_g"`
	CostEUR  float64 `json:"total_cost_eur"`
}

// Ingredient is owned by exactly one meal. Nutrition values are for the
// actual quantity used, not per 100g.
type Ingredient struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	QuantityG float64   `json:"quantity_g"`
	Calories  float64   `json:"calories"`
	ProteinG  float64   `json:"protein_g"`
	CarbsG    float64   `json:"carbs_g"`
	FatsG     float64   `json:"fats_g"`
	CostEUR   float64   `json:"cost_eur"`
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return &ValidationError{Field: "name", Message: "ingredient name is required"}
	}
	if i.QuantityG < 0 {
		return &ValidationError{Field: "quantity_g", Message: "ingredient quantity cannot be negative"}
	}
	if i.CostEUR < 0 {
		return &ValidationError{Field: "cost_eur", Message: "ingredient cost cannot be negative"}
	}
	return nil
}

// NormalizedName returns the consolidation key used by the shopping list
// and prep grouping: lower-cased, whitespace-trimmed.
func (i Ingredient) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(i.Name))
}

// Meal is one slot of a day. Totals are derived from the ingredients and
// must always equal their sum.
type Meal struct {
	ID           uuid.UUID    `json:"id"`
	MealType     MealType     `json:"meal_type"`
	RecipeName   string       `json:"recipe_name"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	Totals       Totals       `json:"totals"`
}

// NormalizedRecipeName returns the batch-grouping key for the meal
func (m Meal) NormalizedRecipeName() string {
	return strings.ToLower(strings.TrimSpace(m.RecipeName))
}

// Validate validates the meal and its ingredients
func (m Meal) Validate() error {
	if len(m.Ingredients) == 0 {
		return ErrNoIngredients
	}
	for _, ing := range m.Ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Day holds the ordered meals of one plan day. Day numbers are 1-based
// and contiguous.
type Day struct {
	DayNumber int    `json:"day_number"`
	Date      string `json:"date"`
	Meals     []Meal `json:"meals"`
	Totals    Totals `json:"totals"`
}

// Metadata is the plan-level budget summary. It is recomputed from final
// costs whenever the plan changes.
type Metadata struct {
	PeriodBudget    float64 `json:"period_budget"`
	PeriodCost      float64 `json:"period_cost"`
	BudgetRemaining float64 `json:"budget_remaining"`
	IsOverBudget    bool    `json:"is_over_budget"`
	Days            int     `json:"days"`
}

// MealPlan is the aggregate root produced by one generation call.
type MealPlan struct {
	shared.AggregateRoot `json:"-"`

	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Days        []Day     `json:"days"`
	PlanTotals  Totals    `json:"plan_totals"`
	Metadata    Metadata  `json:"metadata"`
}

// rawTotals accumulates unrounded sums during aggregation
type rawTotals struct {
	calories float64
	protein  float64
	carbs    float64
	fats     float64
	cost     float64
}

func (t *rawTotals) add(i Ingredient) {
	t.calories += i.Calories
	t.protein += i.ProteinG
	t.carbs += i.CarbsG
	t.fats += i.FatsG
	t.cost += i.CostEUR
}

func (t *rawTotals) merge(o rawTotals) {
	t.calories += o.calories
	t.protein += o.protein
	t.carbs += o.carbs
	t.fats += o.fats
	t.cost += o.cost
}

// rounded applies the single reporting-boundary rounding pass
func (t rawTotals) rounded() Totals {
	return Totals{
		Calories: math.Round(t.calories),
		ProteinG: math.Round(t.protein),
		CarbsG:   math.Round(t.carbs),
		FatsG:    math.Round(t.fats),
		CostEUR:  RoundCost(t.cost),
	}
}

// RoundCost rounds a currency amount to 2 decimal places
func RoundCost(v float64) float64 {
	return math.Round(v*100) / 100
}

// Recalculate re-derives all totals bottom-up from ingredient values.
// Each level sums raw ingredient values so rounding error never compounds;
// calling it twice is a no-op.
func (p *MealPlan) Recalculate() {
	var planRaw rawTotals
	for di := range p.Days {
		day := &p.Days[di]
		var dayRaw rawTotals
		for mi := range day.Meals {
			meal := &day.Meals[mi]
			var mealRaw rawTotals
			for _, ing := range meal.Ingredients {
				mealRaw.add(ing)
			}
			meal.Totals = mealRaw.rounded()
			dayRaw.merge(mealRaw)
		}
		day.Totals = dayRaw.rounded()
		planRaw.merge(dayRaw)
	}
	p.PlanTotals = planRaw.rounded()
}

// RefreshMetadata recomputes the budget summary from the current plan
// totals against the given period budget.
func (p *MealPlan) RefreshMetadata(periodBudget float64) {
	cost := p.PlanTotals.CostEUR
	p.Metadata = Metadata{
		PeriodBudget:    RoundCost(periodBudget),
		PeriodCost:      cost,
		BudgetRemaining: RoundCost(periodBudget - cost),
		IsOverBudget:    cost > periodBudget,
		Days:            len(p.Days),
	}
}

// TotalsConsistent reports whether the stored totals match a fresh
// aggregation. A mismatch is a programming-error-class fault; callers
// repair it with Recalculate rather than trusting stale values.
func (p *MealPlan) TotalsConsistent() bool {
	snapshot := *p
	snapshot.Days = make([]Day, len(p.Days))
	copy(snapshot.Days, p.Days)
	for di := range snapshot.Days {
		snapshot.Days[di].Meals = make([]Meal, len(p.Days[di].Meals))
		copy(snapshot.Days[di].Meals, p.Days[di].Meals)
	}
	snapshot.Recalculate()
	if snapshot.PlanTotals != p.PlanTotals {
		return false
	}
	for di := range snapshot.Days {
		if snapshot.Days[di].Totals != p.Days[di].Totals {
			return false
		}
		for mi := range snapshot.Days[di].Meals {
			if snapshot.Days[di].Meals[mi].Totals != p.Days[di].Meals[mi].Totals {
				return false
			}
		}
	}
	return true
}

// FindMeal locates a meal by id, returning the containing day as well
func (p *MealPlan) FindMeal(mealID uuid.UUID) (*Meal, *Day, error) {
	for di := range p.Days {
		for mi := range p.Days[di].Meals {
			if p.Days[di].Meals[mi].ID == mealID {
				return &p.Days[di].Meals[mi], &p.Days[di], nil
			}
		}
	}
	return nil, nil, ErrMealNotFound
}

// AllMeals returns every meal of the plan in day/slot order
func (p *MealPlan) AllMeals() []Meal {
	var meals []Meal
	for _, day := range p.Days {
		meals = append(meals, day.Meals...)
	}
	return meals
}

// AllIngredients returns every ingredient of the plan in day/slot order
func (p *MealPlan) AllIngredients() []Ingredient {
	var out []Ingredient
	for _, day := range p.Days {
		for _, meal := range day.Meals {
			out = append(out, meal.Ingredients...)
		}
	}
	return out
}

// SwapMeal replaces one meal with a validated substitute and re-derives
// all totals bottom-up. The replacement keeps the slot's meal type and id.
func (p *MealPlan) SwapMeal(mealID uuid.UUID, replacement Meal, periodBudget float64) error {
	if err := replacement.Validate(); err != nil {
		return err
	}
	meal, _, err := p.FindMeal(mealID)
	if err != nil {
		return err
	}
	oldRecipe := meal.RecipeName
	replacement.ID = meal.ID
	replacement.MealType = meal.MealType
	*meal = replacement

	p.Recalculate()
	p.RefreshMetadata(periodBudget)

	p.AddEvent(MealSwappedEvent{
		PlanID:    p.ID,
		MealID:    mealID,
		OldRecipe: oldRecipe,
		NewRecipe: replacement.RecipeName,
		SwappedAt: time.Now(),
	})
	return nil
}

// ScaleMealPortion multiplies one meal's ingredient quantities, nutrition
// and cost by the given factor, then re-derives all totals bottom-up.
func (p *MealPlan) ScaleMealPortion(mealID uuid.UUID, multiplier float64, periodBudget float64) error {
	if multiplier <= 0 {
		return ErrInvalidMultiplier
	}
	meal, _, err := p.FindMeal(mealID)
	if err != nil {
		return err
	}
	for i := range meal.Ingredients {
		ing := &meal.Ingredients[i]
		ing.QuantityG *= multiplier
		ing.Calories *= multiplier
		ing.ProteinG *= multiplier
		ing.CarbsG *= multiplier
		ing.FatsG *= multiplier
		ing.CostEUR = RoundCost(ing.CostEUR * multiplier)
	}

	p.Recalculate()
	p.RefreshMetadata(periodBudget)

	p.AddEvent(PortionAdjustedEvent{
		PlanID:     p.ID,
		MealID:     mealID,
		Multiplier: multiplier,
		AdjustedAt: time.Now(),
	})
	return nil
}
