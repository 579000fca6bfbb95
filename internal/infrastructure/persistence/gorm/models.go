// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealPlanModel represents the GORM model for meal plans. The nested
// day/meal/ingredient structure is stored as one JSON document; the
// columns exist for indexing and listing without deserializing it.
type MealPlanModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID `gorm:"type:char(36);not null;index"`
	GeneratedAt time.Time `gorm:"index"`

	// Budget summary, mirrored from the document
	PeriodBudget float64 `gorm:"default:0"`
	PeriodCost   float64 `gorm:"default:0"`
	IsOverBudget bool    `gorm:"default:false"`
	Days         int     `gorm:"default:0"`

	// IsCurrent marks the user's single active plan
	IsCurrent bool `gorm:"default:false;index"`

	Document JSONDocument `gorm:"type:json"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// PinnedPlanModel represents the GORM model for a user's saved plans
type PinnedPlanModel struct {
	UserID   uuid.UUID `gorm:"type:char(36);primaryKey"`
	PlanID   uuid.UUID `gorm:"type:char(36);primaryKey"`
	PinnedAt time.Time `gorm:"index"`

	// Relationships
	Plan MealPlanModel `gorm:"foreignKey:PlanID"`
}

// JSONDocument custom type for storing a serialized JSON document
type JSONDocument []byte

// Scan implements the sql.Scanner interface
func (d *JSONDocument) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*d = append((*d)[:0], v...)
		return nil
	case string:
		*d = JSONDocument(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into JSONDocument", value)
	}
}

// Value implements the driver.Valuer interface
func (d JSONDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "{}", nil
	}
	if !json.Valid(d) {
		return nil, fmt.Errorf("invalid JSON document")
	}
	return string(d), nil
}

// BeforeCreate hook for MealPlanModel
func (m *MealPlanModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

func (PinnedPlanModel) TableName() string {
	return "pinned_plans"
}
