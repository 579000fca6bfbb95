package mealplan

import (
	"errors"
	"fmt"
)

// Domain errors for meal plan operations

var (
	ErrMealNotFound      = errors.New("meal not found in plan")
	ErrDayNotFound       = errors.New("day not found in plan")
	ErrEmptyPlan         = errors.New("plan has no days")
	ErrInvalidMultiplier = errors.New("portion multiplier must be greater than 0")
	ErrNoIngredients     = errors.New("meal must have at least one ingredient")
)

// ValidationError reports a rejected input field before generation begins
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
