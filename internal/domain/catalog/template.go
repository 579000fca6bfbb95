// Package catalog holds the static recipe template library and the
// deterministic per-slot template selector.
package catalog

import (
	"errors"

	"github.com/platewise/v1/internal/domain/mealplan"
)

// ErrNoTemplates is returned when a meal type has no templates at all
var ErrNoTemplates = errors.New("no templates registered for meal type")

// TemplateIngredient carries nutrition and cost for the declared quantity
// of one template ingredient (not per 100g).
type TemplateIngredient struct {
	Name      string
	QuantityG float64
	Calories  float64
	ProteinG  float64
	CarbsG    float64
	FatsG     float64
	CostEUR   float64
}

// Template is a static recipe definition used as a generation building
// block.
type Template struct {
	Name         string
	MealType     mealplan.MealType
	Vegan        bool
	Vegetarian   bool
	GlutenFree   bool
	Ingredients  []TemplateIngredient
	Instructions []string
}

// Catalog indexes templates by meal type
type Catalog struct {
	byType map[mealplan.MealType][]Template
}

// NewCatalog builds a catalog from the given templates, preserving their
// order within each meal type.
func NewCatalog(templates []Template) *Catalog {
	byType := make(map[mealplan.MealType][]Template)
	for _, t := range templates {
		byType[t.MealType] = append(byType[t.MealType], t)
	}
	return &Catalog{byType: byType}
}

// TemplatesFor returns the full unfiltered pool for a meal type
func (c *Catalog) TemplatesFor(mealType mealplan.MealType) []Template {
	return c.byType[mealType]
}

// slotLayouts maps meals-per-day to the fixed slot sequence of a day.
// Table-driven, not derived.
var slotLayouts = map[int][]mealplan.MealType{
	1: {mealplan.MealTypeLunch},
	2: {mealplan.MealTypeBreakfast, mealplan.MealTypeDinner},
	3: {mealplan.MealTypeBreakfast, mealplan.MealTypeLunch, mealplan.MealTypeDinner},
	4: {mealplan.MealTypeBreakfast, mealplan.MealTypeLunch, mealplan.MealTypeSnack, mealplan.MealTypeDinner},
	5: {mealplan.MealTypeBreakfast, mealplan.MealTypeSnack, mealplan.MealTypeLunch, mealplan.MealTypeSnack, mealplan.MealTypeDinner},
	6: {mealplan.MealTypeBreakfast, mealplan.MealTypeSnack, mealplan.MealTypeLunch, mealplan.MealTypeSnack, mealplan.MealTypeDinner, mealplan.MealTypeSnack},
}

// SlotLayout returns the meal-slot sequence for a day with the given
// number of meals. Counts outside the table clamp to the nearest bound.
func SlotLayout(mealsPerDay int) []mealplan.MealType {
	if mealsPerDay < mealplan.MinMealsPerDay {
		mealsPerDay = mealplan.MinMealsPerDay
	}
	if mealsPerDay > mealplan.MaxMealsPerDay {
		mealsPerDay = mealplan.MaxMealsPerDay
	}
	layout := slotLayouts[mealsPerDay]
	out := make([]mealplan.MealType, len(layout))
	copy(out, layout)
	return out
}

// Per-slot seed strides. Arbitrary fixed constants so different slots in
// the same plan get varied but reproducible selections from one base seed.
const (
	daySeedStride  = 31
	slotSeedStride = 7
)

// SlotSeed derives the deterministic seed for one (day, slot) position
func SlotSeed(base int64, dayNumber, mealIndex int) uint64 {
	return uint64(base) + uint64(dayNumber)*daySeedStride + uint64(mealIndex)*slotSeedStride
}

// TemplateFilter decides template eligibility for a profile. Implemented
// by the dietary filter.
type TemplateFilter interface {
	IsTemplateEligible(t Template, profile mealplan.UserProfile) bool
}

// Selection is the result of one slot selection
type Selection struct {
	Template Template
	// Fallback is true when filtering removed every template for the
	// slot's meal type and the full unfiltered pool was used instead.
	Fallback bool
}

// Selector picks one eligible template per slot, deterministically
type Selector struct {
	catalog *Catalog
	filter  TemplateFilter
}

// NewSelector creates a selector over the catalog and eligibility filter
func NewSelector(c *Catalog, f TemplateFilter) *Selector {
	return &Selector{catalog: c, filter: f}
}

// Select filters the meal type's pool by profile eligibility and indexes
// into it with slotSeed modulo the pool length. When filtering empties the
// pool it falls back to the full unfiltered pool so a slot is never left
// empty; callers may surface that as a soft diagnostic.
func (s *Selector) Select(mealType mealplan.MealType, profile mealplan.UserProfile, slotSeed uint64) (Selection, error) {
	pool := s.catalog.TemplatesFor(mealType)
	if len(pool) == 0 {
		return Selection{}, ErrNoTemplates
	}

	eligible := make([]Template, 0, len(pool))
	for _, t := range pool {
		if s.filter.IsTemplateEligible(t, profile) {
			eligible = append(eligible, t)
		}
	}

	fallback := false
	if len(eligible) == 0 {
		eligible = pool
		fallback = true
	}

	return Selection{
		Template: eligible[slotSeed%uint64(len(eligible))],
		Fallback: fallback,
	}, nil
}
