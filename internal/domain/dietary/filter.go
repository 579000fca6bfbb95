// Package dietary decides whether ingredients and recipe templates are
// admissible for a user profile. Keyword lists are configuration data owned
// by the filter at construction time so tests can substitute fixtures.
package dietary

import (
	"strings"

	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/mealplan"
)

// Rules holds the keyword lists the filter matches against. All matching
// is substring-based on the lower-cased ingredient name.
type Rules struct {
	MeatKeywords          []string
	AnimalProductKeywords []string
	GlutenKeywords        []string

	// PlantExceptions lists names that look like animal products but are
	// plant-based, such as oat milk or peanut butter. They override the
	// animal product keywords only, never allergens or exclusions.
	PlantExceptions []string
}

// DefaultRules returns the built-in keyword lists
func DefaultRules() Rules {
	return Rules{
		MeatKeywords: []string{
			"chicken", "beef", "pork", "lamb", "turkey", "ham", "bacon",
			"sausage", "fish", "salmon", "tuna", "cod", "shrimp", "prawn", "anchovy",
		},
		AnimalProductKeywords: []string{
			"egg", "milk", "cheese", "butter", "honey", "yogurt", "cream",
		},
		GlutenKeywords: []string{
			"bread", "pasta", "wheat", "flour", "barley", "rye", "couscous",
		},
		PlantExceptions: []string{
			"almond milk", "oat milk", "soy milk", "rice milk", "coconut milk",
			"coconut cream", "peanut butter", "almond butter", "cocoa butter",
			"soy yogurt", "coconut yogurt",
		},
	}
}

// Filter is a pure predicate layer over a rule set
type Filter struct {
	rules Rules
}

// NewFilter creates a filter over the given rules
func NewFilter(rules Rules) *Filter {
	return &Filter{rules: rules}
}

// IsIngredientAllowed reports whether the named ingredient is admissible
// for the profile. Vegan implies vegetarian; user-level exclusions and
// allergens block on case-insensitive substring match.
func (f *Filter) IsIngredientAllowed(name string, profile mealplan.UserProfile) bool {
	lower := strings.ToLower(strings.TrimSpace(name))

	if profile.IsVegetarian() && containsAny(lower, f.rules.MeatKeywords) {
		return false
	}
	if profile.IsVegan() &&
		containsAny(lower, f.rules.AnimalProductKeywords) &&
		!containsAny(lower, f.rules.PlantExceptions) {
		return false
	}
	if profile.IsGlutenFree() && containsAny(lower, f.rules.GlutenKeywords) {
		return false
	}
	for _, excluded := range profile.ExcludedIngredients {
		if matchesTerm(lower, excluded) {
			return false
		}
	}
	for _, allergen := range profile.Allergens {
		if matchesTerm(lower, allergen) {
			return false
		}
	}
	return true
}

// IsTemplateEligible reports whether a template is compatible with the
// profile: its dietary tags must satisfy the profile flags and none of its
// ingredients may be individually blocked.
func (f *Filter) IsTemplateEligible(t catalog.Template, profile mealplan.UserProfile) bool {
	if profile.IsVegan() && !t.Vegan {
		return false
	}
	if profile.IsVegetarian() && !t.Vegetarian && !t.Vegan {
		return false
	}
	if profile.IsGlutenFree() && !t.GlutenFree {
		return false
	}
	for _, ing := range t.Ingredients {
		if !f.IsIngredientAllowed(ing.Name, profile) {
			return false
		}
	}
	return true
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// matchesTerm matches a user-supplied term against the ingredient name in
// both directions, so an allergen "nuts" blocks "Peanut Butter" and an
// allergen "nut" blocks "Mixed Nuts".
func matchesTerm(lowerName, term string) bool {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return false
	}
	if strings.Contains(lowerName, t) {
		return true
	}
	// Tolerate simple plural terms: "nuts" should still block "Peanut Butter".
	if strings.HasSuffix(t, "s") && len(t) > 2 && strings.Contains(lowerName, t[:len(t)-1]) {
		return true
	}
	return false
}
