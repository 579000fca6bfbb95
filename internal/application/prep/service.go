// Package prep provides the application layer for meal prep optimization:
// it detects batch-cooking opportunities in a finished plan and emits a
// day-by-day prep schedule with time and cost savings estimates.
package prep

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// cacheTTL bounds how long a derived schedule may outlive its plan
const cacheTTL = time.Hour

// Batch cooking scaling factors: each extra serving adds only a fraction
// of the per-serving time because prep and cooking overlap.
const (
	extraServingPrepFactor = 0.5
	extraServingCookFactor = 0.3
)

// choppableKeywords marks ingredients that feed the synthetic chopping
// task at the start of a prep session.
var choppableKeywords = []string{
	"onion", "carrot", "pepper", "broccoli", "celery", "cucumber",
	"tomato", "potato", "mushroom", "cauliflower", "spinach", "bean",
}

// minutesPerChoppable is the time budgeted per distinct choppable
// ingredient before the session cap applies.
const minutesPerChoppable = 5

// MealPrepService implements the meal prep use cases
type MealPrepService struct {
	planRepo outbound.PlanRepository
	cache    outbound.CacheRepository
	cfg      config.PlannerConfig
	logger   *zap.Logger
}

// NewMealPrepService creates a new meal prep service
func NewMealPrepService(
	planRepo outbound.PlanRepository,
	cache outbound.CacheRepository,
	cfg config.PlannerConfig,
	logger *zap.Logger,
) inbound.MealPrepService {
	return &MealPrepService{
		planRepo: planRepo,
		cache:    cache,
		cfg:      cfg,
		logger:   logger.Named("prep-service"),
	}
}

// occurrence is one appearance of a recipe in the plan
type occurrence struct {
	meal      mealplan.Meal
	dayNumber int
}

// BuildPrepPlan derives the batch-cooking schedule for a plan
func (s *MealPrepService) BuildPrepPlan(ctx context.Context, plan *mealplan.MealPlan) (*mealplan.MealPrepPlan, error) {
	byRecipe := make(map[string][]occurrence)
	var recipeOrder []string
	totalMeals := 0
	for _, day := range plan.Days {
		for _, meal := range day.Meals {
			totalMeals++
			key := meal.NormalizedRecipeName()
			if _, ok := byRecipe[key]; !ok {
				recipeOrder = append(recipeOrder, key)
			}
			byRecipe[key] = append(byRecipe[key], occurrence{meal: meal, dayNumber: day.DayNumber})
		}
	}

	groups := s.buildBatchGroups(byRecipe, recipeOrder)

	prep := &mealplan.MealPrepPlan{
		PlanID:      plan.ID,
		BatchGroups: groups,
		PrepDays:    s.buildSessions(plan, groups, byRecipe, recipeOrder),
		Storage:     storageFor(totalMeals, len(groups)),
		Tips:        buildTips(len(groups), len(plan.Days)),
	}

	s.logger.Debug("Prep plan built",
		zap.String("plan_id", plan.ID.String()),
		zap.Int("batch_groups", len(groups)),
		zap.Int("sessions", len(prep.PrepDays)),
	)
	return prep, nil
}

// BuildPrepPlanByPlanID loads the plan and delegates to BuildPrepPlan,
// with a read-through cache in front.
func (s *MealPrepService) BuildPrepPlanByPlanID(ctx context.Context, planID uuid.UUID) (*mealplan.MealPrepPlan, error) {
	key := outbound.PrepPlanCacheKey(planID)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var cached mealplan.MealPrepPlan
		if json.Unmarshal(data, &cached) == nil {
			return &cached, nil
		}
	}

	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	prep, err := s.BuildPrepPlan(ctx, plan)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(prep); err == nil {
		if err := s.cache.Set(ctx, key, data, cacheTTL); err != nil {
			s.logger.Warn("Failed to cache prep plan", zap.Error(err))
		}
	}
	return prep, nil
}

// buildBatchGroups turns every recipe appearing at least twice into a
// batch cooking group, sorted by descending time saved.
func (s *MealPrepService) buildBatchGroups(byRecipe map[string][]occurrence, recipeOrder []string) []mealplan.BatchCookingGroup {
	groups := make([]mealplan.BatchCookingGroup, 0)
	for _, key := range recipeOrder {
		occ := byRecipe[key]
		n := len(occ)
		if n < 2 {
			continue
		}

		mealIDs := make([]uuid.UUID, 0, n)
		var meals []mealplan.Meal
		for _, o := range occ {
			mealIDs = append(mealIDs, o.meal.ID)
			meals = append(meals, o.meal)
		}
		shared := consolidateIngredients(meals)

		basePrep := float64(s.cfg.BasePrepMinutes)
		baseCook := float64(s.cfg.BaseCookMinutes)
		perServing := float64(s.cfg.MinutesPerServing)

		prepTime := basePrep + perServing*float64(n-1)*extraServingPrepFactor
		cookTime := baseCook + perServing*float64(n-1)*extraServingCookFactor
		timeSaved := float64(n)*(basePrep+baseCook) - (prepTime + cookTime)
		costSaved := float64(len(shared)) * s.cfg.BulkDiscountEUR * float64(n-1)

		groups = append(groups, mealplan.BatchCookingGroup{
			RecipeName:        occ[0].meal.RecipeName,
			MealIDs:           mealIDs,
			BatchServings:     n,
			SharedIngredients: shared,
			PrepTimeMinutes:   int(math.Round(prepTime)),
			CookTimeMinutes:   int(math.Round(cookTime)),
			TimeSavedMinutes:  int(math.Round(timeSaved)),
			CostSavedEUR:      mealplan.RoundCost(costSaved),
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].TimeSavedMinutes != groups[j].TimeSavedMinutes {
			return groups[i].TimeSavedMinutes > groups[j].TimeSavedMinutes
		}
		return groups[i].RecipeName < groups[j].RecipeName
	})
	return groups
}

// consolidateIngredients sums quantity, cost and nutrition per normalized
// ingredient name across all occurrences of a recipe. Same consolidation
// rule as the shopping list.
func consolidateIngredients(meals []mealplan.Meal) []mealplan.Ingredient {
	merged := make(map[string]*mealplan.Ingredient)
	var order []string
	for _, meal := range meals {
		for _, ing := range meal.Ingredients {
			key := ing.NormalizedName()
			m, ok := merged[key]
			if !ok {
				copied := ing
				merged[key] = &copied
				order = append(order, key)
				continue
			}
			m.QuantityG += ing.QuantityG
			m.Calories += ing.Calories
			m.ProteinG += ing.ProteinG
			m.CarbsG += ing.CarbsG
			m.FatsG += ing.FatsG
			m.CostEUR += ing.CostEUR
		}
	}

	out := make([]mealplan.Ingredient, 0, len(order))
	for _, key := range order {
		ing := *merged[key]
		ing.CostEUR = mealplan.RoundCost(ing.CostEUR)
		out = append(out, ing)
	}
	return out
}

// sessionRange is the inclusive day span covered by one prep session
type sessionRange struct {
	label    string
	firstDay int
	lastDay  int
}

// buildSessions schedules the prep work. A 7-day plan splits into two
// sessions so nothing sits in the fridge for a full week; shorter and
// longer plans get a single session.
func (s *MealPrepService) buildSessions(plan *mealplan.MealPlan, groups []mealplan.BatchCookingGroup, byRecipe map[string][]occurrence, recipeOrder []string) []mealplan.PrepDay {
	days := len(plan.Days)
	var ranges []sessionRange
	if days == 7 {
		ranges = []sessionRange{
			{label: "Sunday", firstDay: 1, lastDay: 4},
			{label: "Wednesday", firstDay: 5, lastDay: 7},
		}
	} else {
		ranges = []sessionRange{{label: "Sunday", firstDay: 1, lastDay: days}}
	}

	// A batch group belongs to the session holding its earliest
	// occurrence so its meals are counted exactly once.
	groupSession := make(map[string]int)
	batchedMeals := make(map[uuid.UUID]bool)
	for _, g := range groups {
		key := strings.ToLower(strings.TrimSpace(g.RecipeName))
		first := byRecipe[key][0].dayNumber
		for si, r := range ranges {
			if first >= r.firstDay && first <= r.lastDay {
				groupSession[key] = si
				break
			}
		}
		for _, id := range g.MealIDs {
			batchedMeals[id] = true
		}
	}

	sessions := make([]mealplan.PrepDay, 0, len(ranges))
	for si, r := range ranges {
		var tasks []mealplan.PrepTask
		mealsPrepared := 0

		if minutes := s.choppingMinutes(plan, r); minutes > 0 {
			tasks = append(tasks, mealplan.PrepTask{
				Description: "Wash and chop all vegetables for the coming days",
				Minutes:     minutes,
			})
		}

		for _, g := range groups {
			key := strings.ToLower(strings.TrimSpace(g.RecipeName))
			if groupSession[key] != si {
				continue
			}
			tasks = append(tasks, mealplan.PrepTask{
				Description: fmt.Sprintf("Batch cook %d servings of %s", g.BatchServings, g.RecipeName),
				Minutes:     g.PrepTimeMinutes + g.CookTimeMinutes,
				RecipeName:  g.RecipeName,
			})
			mealsPrepared += g.BatchServings
		}

		for _, key := range recipeOrder {
			for _, o := range byRecipe[key] {
				if batchedMeals[o.meal.ID] {
					continue
				}
				if o.dayNumber < r.firstDay || o.dayNumber > r.lastDay {
					continue
				}
				tasks = append(tasks, mealplan.PrepTask{
					Description: fmt.Sprintf("Prepare and portion %s", o.meal.RecipeName),
					Minutes:     s.cfg.IndividualTaskMinutes,
					RecipeName:  o.meal.RecipeName,
				})
				mealsPrepared++
			}
		}

		total := 0
		for _, t := range tasks {
			total += t.Minutes
		}

		sessions = append(sessions, mealplan.PrepDay{
			Label:         r.label,
			Tasks:         tasks,
			TotalMinutes:  total,
			MealsPrepared: mealsPrepared,
			Tips: []string{
				"Start with the chopping task so everything else moves faster",
				"Label each container with the recipe name and day",
			},
		})
	}
	return sessions
}

// choppingMinutes budgets the synthetic chopping task from the distinct
// choppable ingredients used in the session's day range, capped.
func (s *MealPrepService) choppingMinutes(plan *mealplan.MealPlan, r sessionRange) int {
	seen := make(map[string]bool)
	for _, day := range plan.Days {
		if day.DayNumber < r.firstDay || day.DayNumber > r.lastDay {
			continue
		}
		for _, meal := range day.Meals {
			for _, ing := range meal.Ingredients {
				name := ing.NormalizedName()
				for _, kw := range choppableKeywords {
					if strings.Contains(name, kw) {
						seen[name] = true
						break
					}
				}
			}
		}
	}

	minutes := len(seen) * minutesPerChoppable
	if minutes > s.cfg.ChoppingCapMinutes {
		minutes = s.cfg.ChoppingCapMinutes
	}
	return minutes
}

// storageFor buckets storage needs by meal and group counts. Heuristic
// tiers, not measured capacities.
func storageFor(totalMeals, groupCount int) mealplan.StorageRequirements {
	fridge := "large"
	switch {
	case totalMeals <= 10:
		fridge = "small"
	case totalMeals <= 20:
		fridge = "medium"
	}

	freezer := "large"
	switch {
	case groupCount == 0:
		freezer = "none"
	case groupCount <= 2:
		freezer = "small"
	case groupCount <= 4:
		freezer = "medium"
	}

	return mealplan.StorageRequirements{
		ContainersNeeded: int(math.Ceil(float64(totalMeals) * 0.8)),
		FridgeSpace:      fridge,
		FreezerSpace:     freezer,
	}
}

// buildTips assembles the general guidance list, extended when batching
// or a long plan makes extra advice relevant.
func buildTips(groupCount, days int) []string {
	tips := []string{
		"Cool cooked food completely before sealing containers",
		"Store sauces separately so textures hold up",
		"Reheat to steaming hot, not just warm",
	}
	if groupCount > 0 {
		tips = append(tips, "Batch-cooked portions keep 3-4 days in the fridge")
	}
	if days >= 7 {
		tips = append(tips, "Freeze anything you will not eat within 4 days")
	}
	return tips
}
