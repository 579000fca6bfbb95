// Package shopping provides the application layer for shopping list
// aggregation: it consolidates a finished plan's ingredients into a
// purchase list with a waste estimate.
package shopping

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// Shopping quantities are always reported in grams
const unitGrams = "g"

// cacheTTL bounds how long a derived list may outlive its plan. Plan
// writers drop the key on mutation; the TTL only covers crashes between
// write and invalidation.
const cacheTTL = time.Hour

// ShoppingService implements the shopping list use cases
type ShoppingService struct {
	planRepo       outbound.PlanRepository
	cache          outbound.CacheRepository
	minPurchaseQty float64
	logger         *zap.Logger
}

// NewShoppingService creates a new shopping list service
func NewShoppingService(
	planRepo outbound.PlanRepository,
	cache outbound.CacheRepository,
	cfg config.PlannerConfig,
	logger *zap.Logger,
) inbound.ShoppingListService {
	return &ShoppingService{
		planRepo:       planRepo,
		cache:          cache,
		minPurchaseQty: cfg.MinPurchaseQuantityG,
		logger:         logger.Named("shopping-service"),
	}
}

// BuildShoppingList consolidates all ingredients of the plan by normalized
// name. Each group becomes one item whose quantity and price are summed
// over every occurrence; occurrences already reflect their meal's
// proportions so no re-scaling happens here. Zero-ingredient plans yield
// an empty list with a zeroed summary.
func (s *ShoppingService) BuildShoppingList(ctx context.Context, plan *mealplan.MealPlan) (*mealplan.ShoppingList, error) {
	type group struct {
		first    mealplan.Ingredient
		quantity float64
		cost     float64
	}

	groups := make(map[string]*group)
	var keys []string
	for _, ing := range plan.AllIngredients() {
		key := ing.NormalizedName()
		g, ok := groups[key]
		if !ok {
			g = &group{first: ing}
			groups[key] = g
			keys = append(keys, key)
		}
		g.quantity += ing.QuantityG
		g.cost += ing.CostEUR
	}

	items := make([]mealplan.ShoppingListItem, 0, len(keys))
	var shoppingCost float64
	for _, key := range keys {
		g := groups[key]
		price := g.cost
		// Buying less than a package is not possible; the price of a
		// short group is lifted to the package-size floor and the gap
		// shows up as waste.
		if g.quantity > 0 && g.quantity < s.minPurchaseQty {
			price = g.cost * s.minPurchaseQty / g.quantity
		}
		price = mealplan.RoundCost(price)
		shoppingCost += price

		items = append(items, mealplan.ShoppingListItem{
			IngredientID:         g.first.ID,
			Name:                 g.first.Name,
			TotalQuantityG:       g.quantity,
			Unit:                 unitGrams,
			MinPurchaseQuantityG: s.minPurchaseQty,
			EstimatedPriceEUR:    price,
		})
	}

	// Locale-naive ordinal sort keeps the list reproducible
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})

	planCost := plan.PlanTotals.CostEUR
	waste := mealplan.RoundCost(shoppingCost - planCost)
	if waste < 0 {
		waste = 0
	}

	list := &mealplan.ShoppingList{
		PlanID: plan.ID,
		Items:  items,
		Summary: mealplan.ShoppingSummary{
			TotalItems:           len(items),
			TotalShoppingCostEUR: mealplan.RoundCost(shoppingCost),
			PlanCostEUR:          planCost,
			WasteCostEUR:         waste,
		},
	}

	s.logger.Debug("Shopping list built",
		zap.String("plan_id", plan.ID.String()),
		zap.Int("items", len(items)),
		zap.Float64("waste_cost", list.Summary.WasteCostEUR),
	)
	return list, nil
}

// BuildShoppingListByPlanID loads the plan and delegates to
// BuildShoppingList, with a read-through cache in front.
func (s *ShoppingService) BuildShoppingListByPlanID(ctx context.Context, planID uuid.UUID) (*mealplan.ShoppingList, error) {
	key := outbound.ShoppingListCacheKey(planID)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var cached mealplan.ShoppingList
		if json.Unmarshal(data, &cached) == nil {
			return &cached, nil
		}
	}

	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	list, err := s.BuildShoppingList(ctx, plan)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(list); err == nil {
		if err := s.cache.Set(ctx, key, data, cacheTTL); err != nil {
			s.logger.Warn("Failed to cache shopping list", zap.Error(err))
		}
	}
	return list, nil
}
