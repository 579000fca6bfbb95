package gorm

import (
	"encoding/json"
	"fmt"

	"github.com/platewise/v1/internal/domain/mealplan"
)

// PlanToModel converts a domain meal plan to its GORM model. The full
// plan is serialized into the document column; the summary columns are
// mirrored for querying.
func PlanToModel(plan *mealplan.MealPlan, isCurrent bool) (*MealPlanModel, error) {
	doc, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("serialize meal plan: %w", err)
	}

	return &MealPlanModel{
		ID:           plan.ID,
		UserID:       plan.UserID,
		GeneratedAt:  plan.GeneratedAt,
		PeriodBudget: plan.Metadata.PeriodBudget,
		PeriodCost:   plan.Metadata.PeriodCost,
		IsOverBudget: plan.Metadata.IsOverBudget,
		Days:         plan.Metadata.Days,
		IsCurrent:    isCurrent,
		Document:     JSONDocument(doc),
	}, nil
}

// ModelToPlan converts a GORM model back to the domain meal plan
func ModelToPlan(model *MealPlanModel) (*mealplan.MealPlan, error) {
	var plan mealplan.MealPlan
	if err := json.Unmarshal(model.Document, &plan); err != nil {
		return nil, fmt.Errorf("deserialize meal plan %s: %w", model.ID, err)
	}

	// The document is the source of truth; the columns are derived
	plan.ID = model.ID
	plan.UserID = model.UserID
	return &plan, nil
}
