package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inventory categories. Dairy, Vegetables and Fruits are treated as
// perishable by the waste estimator regardless of the Perishable flag.
const (
	CategoryGrains     = "Grains"
	CategorySpices     = "Spices"
	CategoryDairy      = "Dairy"
	CategoryVegetables = "Vegetables"
	CategoryFruits     = "Fruits"
	CategoryLentils    = "Lentils"
	CategoryOils       = "Oils"
	CategoryOther      = "Other"
)

var InventoryCategories = []string{
	CategoryGrains, CategorySpices, CategoryDairy, CategoryVegetables,
	CategoryFruits, CategoryLentils, CategoryOils, CategoryOther,
}

// MeasurementUnits lists the units accepted on inventory items.
var MeasurementUnits = []string{"g", "kg", "pieces", "ml", "l", "tsp", "tbsp", "cup"}

// ValidationError marks a malformed entity. Handlers map it to a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type InventoryItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Category        string    `gorm:"size:50;not null" json:"category"`
	CurrentQuantity float64   `gorm:"not null" json:"currentQuantity"`
	Unit            string    `gorm:"size:20;not null" json:"unit"`
	Threshold       float64   `gorm:"default:0" json:"threshold"`
	Perishable      bool      `gorm:"default:false" json:"perishable"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (i *InventoryItem) Validate() error {
	if i.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if !contains(InventoryCategories, i.Category) {
		return &ValidationError{Field: "category", Message: fmt.Sprintf("%q is not a valid category", i.Category)}
	}
	if !contains(MeasurementUnits, i.Unit) {
		return &ValidationError{Field: "unit", Message: fmt.Sprintf("%q is not a valid unit", i.Unit)}
	}
	if i.CurrentQuantity < 0 {
		return &ValidationError{Field: "currentQuantity", Message: "must not be negative"}
	}
	if i.Threshold < 0 {
		return &ValidationError{Field: "threshold", Message: "must not be negative"}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
