package mealplan

import "github.com/google/uuid"

// ShoppingListItem is one consolidated purchase line. Quantity and price
// are summed over every occurrence of the ingredient across the plan.
// Owned and Deleted are mutated by the UI layer only, never by generation.
type ShoppingListItem struct {
	IngredientID         uuid.UUID `json:"ingredient_id"`
	Name                 string    `json:"name"`
	TotalQuantityG       float64   `json:"total_quantity_g"`
	Unit                 string    `json:"unit"`
	MinPurchaseQuantityG float64   `json:"min_purchase_quantity_g"`
	EstimatedPriceEUR    float64   `json:"estimated_price_eur"`
	Owned                bool      `json:"owned"`
	Deleted              bool      `json:"deleted"`
}

// ShoppingSummary compares what the list costs to buy against what the
// plan actually consumes. The gap is the reported waste.
type ShoppingSummary struct {
	TotalItems           int     `json:"total_items"`
	TotalShoppingCostEUR float64 `json:"total_shopping_cost_eur"`
	PlanCostEUR          float64 `json:"plan_cost_eur"`
	WasteCostEUR         float64 `json:"waste_cost_eur"`
}

// ShoppingList is the consolidated purchase list derived from one plan
type ShoppingList struct {
	PlanID  uuid.UUID          `json:"plan_id"`
	Items   []ShoppingListItem `json:"items"`
	Summary ShoppingSummary    `json:"summary"`
}
