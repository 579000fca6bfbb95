package mealplan

import (
	"time"

	"github.com/google/uuid"
)

// Domain events raised by the MealPlan aggregate

// PlanGeneratedEvent is raised when a plan is assembled
type PlanGeneratedEvent struct {
	PlanID      uuid.UUID
	UserID      uuid.UUID
	Days        int
	GeneratedAt time.Time
}

// EventName returns the event name
func (e PlanGeneratedEvent) EventName() string { return "mealplan.generated" }

// OccurredAt returns when the event occurred
func (e PlanGeneratedEvent) OccurredAt() time.Time { return e.GeneratedAt }

// MealSwappedEvent is raised when one meal is replaced by a substitute
type MealSwappedEvent struct {
	PlanID    uuid.UUID
	MealID    uuid.UUID
	OldRecipe string
	NewRecipe string
	SwappedAt time.Time
}

// EventName returns the event name
func (e MealSwappedEvent) EventName() string { return "mealplan.meal_swapped" }

// OccurredAt returns when the event occurred
func (e MealSwappedEvent) OccurredAt() time.Time { return e.SwappedAt }

// PortionAdjustedEvent is raised when one meal's portion is rescaled
type PortionAdjustedEvent struct {
	PlanID     uuid.UUID
	MealID     uuid.UUID
	Multiplier float64
	AdjustedAt time.Time
}

// EventName returns the event name
func (e PortionAdjustedEvent) EventName() string { return "mealplan.portion_adjusted" }

// OccurredAt returns when the event occurred
func (e PortionAdjustedEvent) OccurredAt() time.Time { return e.AdjustedAt }
