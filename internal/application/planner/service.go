// Package planner provides the application layer for meal plan generation
// This implements the use cases defined in the inbound ports
package planner

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/catalog"
	"github.com/platewise/v1/internal/domain/dietary"
	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// Calories contributed by one gram of each macro nutrient
const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFats    = 9.0
)

// PlannerService implements the plan generation and mutation use cases
type PlannerService struct {
	planRepo   outbound.PlanRepository
	cache      outbound.CacheRepository
	catalog    *catalog.Catalog
	selector   *catalog.Selector
	filter     *dietary.Filter
	reconciler *Reconciler
	logger     *zap.Logger

	// Injectable sources so tests get reproducible plans
	now   func() time.Time
	newID func() uuid.UUID
}

// Option customizes a PlannerService
type Option func(*PlannerService)

// WithClock overrides the wall-clock source
func WithClock(now func() time.Time) Option {
	return func(s *PlannerService) { s.now = now }
}

// WithIDSource overrides the id generator
func WithIDSource(newID func() uuid.UUID) Option {
	return func(s *PlannerService) { s.newID = newID }
}

// NewPlannerService creates a new planner service
func NewPlannerService(
	planRepo outbound.PlanRepository,
	cache outbound.CacheRepository,
	cat *catalog.Catalog,
	filter *dietary.Filter,
	cfg config.PlannerConfig,
	logger *zap.Logger,
	opts ...Option,
) inbound.PlannerService {
	s := &PlannerService{
		planRepo:   planRepo,
		cache:      cache,
		catalog:    cat,
		selector:   catalog.NewSelector(cat, filter),
		filter:     filter,
		reconciler: NewReconciler(cfg.BudgetSafetyFactor),
		logger:     logger.Named("planner-service"),
		now:        time.Now,
		newID:      uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GeneratePlan builds a complete plan for the profile. The same
// (profile, seed) pair always produces the same day/meal/ingredient
// structure; only timestamps and ids differ between calls.
func (s *PlannerService) GeneratePlan(ctx context.Context, cmd inbound.GeneratePlanCommand) (*mealplan.MealPlan, error) {
	if err := cmd.Profile.Validate(); err != nil {
		if verr, ok := err.(*mealplan.ValidationError); ok {
			return nil, errors.NewValidationError(verr.Field, verr.Message)
		}
		return nil, errors.Wrap(err, "profile validation failed")
	}

	profile := cmd.Profile
	generatedAt := s.now()
	periodBudget := profile.TotalBudget()

	s.logger.Info("Generating meal plan",
		zap.String("user_id", profile.UserID.String()),
		zap.Int("days", profile.PlanDays),
		zap.Int("meals_per_day", profile.MealsPerDay),
		zap.Float64("period_budget", periodBudget),
	)

	plan := &mealplan.MealPlan{
		ID:          s.newID(),
		UserID:      profile.UserID,
		GeneratedAt: generatedAt,
	}

	layout := catalog.SlotLayout(profile.MealsPerDay)
	for dayNumber := 1; dayNumber <= profile.PlanDays; dayNumber++ {
		day := mealplan.Day{
			DayNumber: dayNumber,
			Date:      generatedAt.AddDate(0, 0, dayNumber-1).Format("2006-01-02"),
		}
		for mealIndex, mealType := range layout {
			seed := catalog.SlotSeed(cmd.Seed, dayNumber, mealIndex)
			selection, err := s.selector.Select(mealType, profile, seed)
			if err != nil {
				return nil, errors.NewInternalError(
					fmt.Sprintf("no templates available for meal type %s", mealType),
				).WithCause(err)
			}
			if selection.Fallback {
				s.logger.Warn("Dietary filtering removed every template for slot, using unfiltered pool",
					zap.String("meal_type", string(mealType)),
					zap.Int("day", dayNumber),
					zap.Int("meal_index", mealIndex),
				)
			}
			day.Meals = append(day.Meals, s.buildMeal(selection.Template, mealType))
		}
		plan.Days = append(plan.Days, day)
	}

	plan.Recalculate()
	if scaled := s.reconciler.Reconcile(plan, periodBudget); scaled {
		s.logger.Info("Plan cost scaled down to fit budget",
			zap.Float64("period_budget", periodBudget),
			zap.Float64("period_cost", plan.PlanTotals.CostEUR),
		)
	}
	plan.RefreshMetadata(periodBudget)

	plan.AddEvent(mealplan.PlanGeneratedEvent{
		PlanID:      plan.ID,
		UserID:      plan.UserID,
		Days:        len(plan.Days),
		GeneratedAt: generatedAt,
	})

	if err := s.planRepo.UpsertCurrent(ctx, plan); err != nil {
		return nil, errors.NewDatabaseError("store generated plan", err)
	}

	return plan, nil
}

// buildMeal instantiates one meal from a template
func (s *PlannerService) buildMeal(t catalog.Template, mealType mealplan.MealType) mealplan.Meal {
	meal := mealplan.Meal{
		ID:           s.newID(),
		MealType:     mealType,
		RecipeName:   t.Name,
		Instructions: append([]string(nil), t.Instructions...),
	}
	for _, ing := range t.Ingredients {
		meal.Ingredients = append(meal.Ingredients, mealplan.Ingredient{
			ID:        s.newID(),
			Name:      ing.Name,
			QuantityG: ing.QuantityG,
			Calories:  ing.Calories,
			ProteinG:  ing.ProteinG,
			CarbsG:    ing.CarbsG,
			FatsG:     ing.FatsG,
			CostEUR:   ing.CostEUR,
		})
	}
	return meal
}

// SwapMeal replaces one meal of a persisted plan with a candidate after
// validating the candidate against the profile's hard constraints and the
// slot's substitution envelope.
func (s *PlannerService) SwapMeal(ctx context.Context, cmd inbound.SwapMealCommand) (*mealplan.MealPlan, error) {
	plan, err := s.loadPlan(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}

	envelope, err := s.envelopeFor(plan, cmd.MealID, cmd.Profile)
	if err != nil {
		return nil, err
	}
	if err := s.ValidateSubstitute(cmd.Candidate, *envelope, cmd.Profile); err != nil {
		return nil, err
	}

	if err := plan.SwapMeal(cmd.MealID, cmd.Candidate, cmd.Profile.TotalBudget()); err != nil {
		return nil, mapDomainError(err, cmd.MealID)
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, errors.NewDatabaseError("store swapped plan", err)
	}
	s.invalidateDerived(ctx, plan.ID)

	s.logger.Info("Meal swapped",
		zap.String("plan_id", plan.ID.String()),
		zap.String("meal_id", cmd.MealID.String()),
		zap.String("recipe", cmd.Candidate.RecipeName),
	)
	return plan, nil
}

// AdjustPortion rescales one meal's ingredient quantities, nutrition and
// cost, then re-derives all totals bottom-up.
func (s *PlannerService) AdjustPortion(ctx context.Context, cmd inbound.AdjustPortionCommand) (*mealplan.MealPlan, error) {
	plan, err := s.loadPlan(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}

	if err := plan.ScaleMealPortion(cmd.MealID, cmd.Multiplier, cmd.Profile.TotalBudget()); err != nil {
		if err == mealplan.ErrInvalidMultiplier {
			return nil, errors.NewValidationError("multiplier", "portion multiplier must be positive")
		}
		return nil, mapDomainError(err, cmd.MealID)
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, errors.NewDatabaseError("store adjusted plan", err)
	}
	s.invalidateDerived(ctx, plan.ID)

	s.logger.Info("Portion adjusted",
		zap.String("plan_id", plan.ID.String()),
		zap.String("meal_id", cmd.MealID.String()),
		zap.Float64("multiplier", cmd.Multiplier),
	)
	return plan, nil
}

// PinPlan saves the plan to the user's pinned set
func (s *PlannerService) PinPlan(ctx context.Context, planID, userID uuid.UUID) error {
	return s.planRepo.Pin(ctx, planID, userID)
}

// UnpinPlan removes the plan from the user's pinned set
func (s *PlannerService) UnpinPlan(ctx context.Context, planID, userID uuid.UUID) error {
	return s.planRepo.Unpin(ctx, planID, userID)
}

// GetPlan fetches one plan by id
func (s *PlannerService) GetPlan(ctx context.Context, planID uuid.UUID) (*mealplan.MealPlan, error) {
	return s.loadPlan(ctx, planID)
}

// GetCurrentPlan fetches the user's current plan
func (s *PlannerService) GetCurrentPlan(ctx context.Context, userID uuid.UUID) (*mealplan.MealPlan, error) {
	return s.planRepo.FindCurrentByUser(ctx, userID)
}

// ListPinnedPlans lists the user's pinned plans
func (s *PlannerService) ListPinnedPlans(ctx context.Context, userID uuid.UUID) ([]*mealplan.MealPlan, error) {
	return s.planRepo.ListPinned(ctx, userID)
}

// ComputeSubstitutionEnvelope derives the budget/macro envelope a
// substitute for the given meal must satisfy.
func (s *PlannerService) ComputeSubstitutionEnvelope(ctx context.Context, planID, mealID uuid.UUID, profile mealplan.UserProfile) (*mealplan.SubstitutionEnvelope, error) {
	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	return s.envelopeFor(plan, mealID, profile)
}

// envelopeFor computes the substitution envelope for one slot. The cost
// ceiling is the meal's own cost plus whatever headroom the plan still has
// under its budget. Targets come from the profile's calorie/macro goals
// when present, otherwise from the current meal.
func (s *PlannerService) envelopeFor(plan *mealplan.MealPlan, mealID uuid.UUID, profile mealplan.UserProfile) (*mealplan.SubstitutionEnvelope, error) {
	meal, _, err := plan.FindMeal(mealID)
	if err != nil {
		return nil, mapDomainError(err, mealID)
	}

	headroom := plan.Metadata.BudgetRemaining
	if headroom < 0 {
		headroom = 0
	}
	env := &mealplan.SubstitutionEnvelope{
		MaxCostEUR:     mealplan.RoundCost(meal.Totals.CostEUR + headroom),
		TargetCalories: meal.Totals.Calories,
		TargetProteinG: meal.Totals.ProteinG,
		TargetCarbsG:   meal.Totals.CarbsG,
		TargetFatsG:    meal.Totals.FatsG,
	}

	if profile.CalorieTarget > 0 && profile.MealsPerDay > 0 {
		env.TargetCalories = math.Round(float64(profile.CalorieTarget) / float64(profile.MealsPerDay))
	}
	if t := profile.MacroTargets; t != nil {
		env.TargetProteinG = math.Round(env.TargetCalories * t.ProteinPct / 100 / kcalPerGramProtein)
		env.TargetCarbsG = math.Round(env.TargetCalories * t.CarbsPct / 100 / kcalPerGramCarbs)
		env.TargetFatsG = math.Round(env.TargetCalories * t.FatsPct / 100 / kcalPerGramFats)
	}
	return env, nil
}

// ValidateSubstitute checks a candidate meal against the profile's hard
// constraints and the envelope's cost ceiling. A constraint-violating
// candidate is never accepted; the caller may retry or keep the original.
func (s *PlannerService) ValidateSubstitute(candidate mealplan.Meal, envelope mealplan.SubstitutionEnvelope, profile mealplan.UserProfile) error {
	if err := candidate.Validate(); err != nil {
		return errors.NewConstraintViolationError(err.Error())
	}

	var cost float64
	for _, ing := range candidate.Ingredients {
		if !s.filter.IsIngredientAllowed(ing.Name, profile) {
			return errors.NewConstraintViolationError(
				fmt.Sprintf("ingredient %q is blocked by the profile's dietary constraints", ing.Name),
			).WithMetadata("ingredient", ing.Name)
		}
		cost += ing.CostEUR
	}

	if cost := mealplan.RoundCost(cost); cost > envelope.MaxCostEUR {
		return errors.NewConstraintViolationError(
			fmt.Sprintf("candidate costs %.2f, envelope allows at most %.2f", cost, envelope.MaxCostEUR),
		).WithMetadata("cost", cost).WithMetadata("max_cost", envelope.MaxCostEUR)
	}
	return nil
}

// invalidateDerived drops cached artifacts derived from the plan
func (s *PlannerService) invalidateDerived(ctx context.Context, planID uuid.UUID) {
	for _, key := range []string{
		outbound.ShoppingListCacheKey(planID),
		outbound.PrepPlanCacheKey(planID),
	} {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to invalidate cache entry",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
}

func (s *PlannerService) loadPlan(ctx context.Context, planID uuid.UUID) (*mealplan.MealPlan, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	// Stored totals disagreeing with a fresh aggregation is a
	// programming-error-class fault; repair rather than trust them.
	if !plan.TotalsConsistent() {
		s.logger.Warn("Stored plan totals inconsistent, recalculating",
			zap.String("plan_id", plan.ID.String()),
		)
		plan.Recalculate()
		plan.RefreshMetadata(plan.Metadata.PeriodBudget)
	}
	return plan, nil
}

func mapDomainError(err error, mealID uuid.UUID) error {
	switch err {
	case mealplan.ErrMealNotFound:
		return errors.NewMealNotFoundError(mealID.String())
	default:
		return errors.Wrap(err, "meal plan operation failed")
	}
}
