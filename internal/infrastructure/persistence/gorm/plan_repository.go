// Package gorm provides GORM-based repository implementations
package gorm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/mealplan"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
	"gorm.io/gorm"
)

// PlanRepository implements the plan repository interface using GORM
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB) outbound.PlanRepository {
	return &PlanRepository{db: db}
}

// UpsertCurrent stores the plan as the user's current plan, demoting any
// previous current plan in the same transaction.
func (r *PlanRepository) UpsertCurrent(ctx context.Context, plan *mealplan.MealPlan) error {
	model, err := PlanToModel(plan, true)
	if err != nil {
		return errors.NewDatabaseError("serialize plan", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&MealPlanModel{}).
			Where("user_id = ? AND is_current = ?", plan.UserID, true).
			Update("is_current", false).Error; err != nil {
			return errors.NewDatabaseError("demote current plan", err)
		}
		if err := tx.Save(model).Error; err != nil {
			return errors.NewDatabaseError("store plan", err)
		}
		return nil
	})
}

// Update overwrites a stored plan, keeping its current flag
func (r *PlanRepository) Update(ctx context.Context, plan *mealplan.MealPlan) error {
	var existing MealPlanModel
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", plan.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewPlanNotFoundError(plan.ID.String())
		}
		return errors.NewDatabaseError("load plan", err)
	}

	model, err := PlanToModel(plan, existing.IsCurrent)
	if err != nil {
		return errors.NewDatabaseError("serialize plan", err)
	}
	model.CreatedAt = existing.CreatedAt

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return errors.NewDatabaseError("store plan", err)
	}
	return nil
}

// Delete removes a plan and its pin entries (soft delete for the plan)
func (r *PlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&MealPlanModel{}, "id = ?", id)
		if result.Error != nil {
			return errors.NewDatabaseError("delete plan", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewPlanNotFoundError(id.String())
		}
		if err := tx.Delete(&PinnedPlanModel{}, "plan_id = ?", id).Error; err != nil {
			return errors.NewDatabaseError("delete plan pins", err)
		}
		return nil
	})
}

// FindByID finds a plan by ID
func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.MealPlan, error) {
	var model MealPlanModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewPlanNotFoundError(id.String())
		}
		return nil, errors.NewDatabaseError("load plan", err)
	}

	plan, err := ModelToPlan(&model)
	if err != nil {
		return nil, errors.NewDatabaseError("deserialize plan", err)
	}
	return plan, nil
}

// FindCurrentByUser finds the user's current plan
func (r *PlanRepository) FindCurrentByUser(ctx context.Context, userID uuid.UUID) (*mealplan.MealPlan, error) {
	var model MealPlanModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_current = ?", userID, true).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewPlanNotFoundError("current")
		}
		return nil, errors.NewDatabaseError("load current plan", err)
	}

	plan, err := ModelToPlan(&model)
	if err != nil {
		return nil, errors.NewDatabaseError("deserialize plan", err)
	}
	return plan, nil
}

// Pin adds the plan to the user's pinned set, enforcing the cap
func (r *PlanRepository) Pin(ctx context.Context, planID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&MealPlanModel{}).Where("id = ?", planID).Count(&exists).Error; err != nil {
			return errors.NewDatabaseError("check plan existence", err)
		}
		if exists == 0 {
			return errors.NewPlanNotFoundError(planID.String())
		}

		var pinned int64
		if err := tx.Model(&PinnedPlanModel{}).Where("user_id = ?", userID).Count(&pinned).Error; err != nil {
			return errors.NewDatabaseError("count pinned plans", err)
		}

		var already int64
		if err := tx.Model(&PinnedPlanModel{}).
			Where("user_id = ? AND plan_id = ?", userID, planID).
			Count(&already).Error; err != nil {
			return errors.NewDatabaseError("check pin existence", err)
		}
		if already > 0 {
			return nil
		}
		if pinned >= int64(outbound.MaxPinnedPlans) {
			return errors.NewSavedPlanLimitError(outbound.MaxPinnedPlans)
		}

		pin := PinnedPlanModel{UserID: userID, PlanID: planID, PinnedAt: time.Now()}
		if err := tx.Create(&pin).Error; err != nil {
			return errors.NewDatabaseError("pin plan", err)
		}
		return nil
	})
}

// Unpin removes the plan from the user's pinned set
func (r *PlanRepository) Unpin(ctx context.Context, planID, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Delete(&PinnedPlanModel{}, "user_id = ? AND plan_id = ?", userID, planID).Error
	if err != nil {
		return errors.NewDatabaseError("unpin plan", err)
	}
	return nil
}

// ListPinned returns the user's pinned plans in pin order
func (r *PlanRepository) ListPinned(ctx context.Context, userID uuid.UUID) ([]*mealplan.MealPlan, error) {
	var pins []PinnedPlanModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("pinned_at ASC").
		Find(&pins).Error
	if err != nil {
		return nil, errors.NewDatabaseError("list pinned plans", err)
	}

	plans := make([]*mealplan.MealPlan, 0, len(pins))
	for _, pin := range pins {
		var model MealPlanModel
		if err := r.db.WithContext(ctx).First(&model, "id = ?", pin.PlanID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, errors.NewDatabaseError("load pinned plan", err)
		}
		plan, err := ModelToPlan(&model)
		if err != nil {
			return nil, errors.NewDatabaseError("deserialize plan", err)
		}
		plans = append(plans, plan)
	}
	return plans, nil
}
