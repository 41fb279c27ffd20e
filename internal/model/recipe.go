package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}
	return json.Unmarshal(jsonBytes(value), a)
}

// IngredientRequirement is one line of a recipe's ingredient list. The
// list order is the recipe's order and is preserved through storage.
type IngredientRequirement struct {
	IngredientName string  `json:"ingredientName"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
}

type IngredientList []IngredientRequirement

func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}
	return json.Unmarshal(jsonBytes(value), l)
}

// SubstituteOption is a proposed replacement for an ingredient. Ratio
// multiplies the required quantity to obtain the substitute quantity.
type SubstituteOption struct {
	Name  string  `json:"name"`
	Ratio float64 `json:"ratio"`
	Notes string  `json:"notes,omitempty"`
}

// SubstituteGroup maps one original ingredient to its substitutes.
type SubstituteGroup struct {
	Original    string             `json:"original"`
	Substitutes []SubstituteOption `json:"substitutes"`
}

type SubstituteGroups []SubstituteGroup

func (g SubstituteGroups) Value() (driver.Value, error) {
	if len(g) == 0 {
		return "[]", nil
	}
	return json.Marshal(g)
}

func (g *SubstituteGroups) Scan(value interface{}) error {
	if value == nil {
		*g = SubstituteGroups{}
		return nil
	}
	return json.Unmarshal(jsonBytes(value), g)
}

var (
	RecipeCategories = []string{
		"Main Course", "Appetizer", "Dessert", "Bread", "Rice",
		"Curry", "Snack", "Breakfast", "Beverage",
	}
	RecipeDifficulties = []string{"Easy", "Medium", "Hard"}
)

// RequirementUnits extends the inventory units with "pinch", which only
// makes sense as a recipe measure.
var RequirementUnits = append(append([]string{}, MeasurementUnits...), "pinch")

type Recipe struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	Name                string           `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description         string           `gorm:"type:text" json:"description"`
	Category            string           `gorm:"size:50;not null" json:"category"`
	Cuisine             string           `gorm:"size:100;default:Indian" json:"cuisine"`
	Ingredients         IngredientList   `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps               JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Serves              int              `gorm:"not null" json:"serves"`
	PreparationTime     int              `gorm:"not null" json:"preparationTime"`
	Difficulty          string           `gorm:"size:20;default:Medium" json:"difficulty"`
	PossibleSubstitutes SubstituteGroups `gorm:"type:jsonb;not null;default:'[]'" json:"possibleSubstitutes"`
	ImageURL            string           `gorm:"size:255" json:"imageUrl"`
	Tags                JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *Recipe) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if !contains(RecipeCategories, r.Category) {
		return &ValidationError{Field: "category", Message: fmt.Sprintf("%q is not a valid category", r.Category)}
	}
	if len(r.Ingredients) == 0 {
		return &ValidationError{Field: "ingredients", Message: "at least one ingredient is required"}
	}
	for _, ing := range r.Ingredients {
		if ing.IngredientName == "" {
			return &ValidationError{Field: "ingredients", Message: "ingredientName is required"}
		}
		if ing.Quantity < 0 {
			return &ValidationError{Field: "ingredients", Message: "quantity must not be negative"}
		}
		if !contains(RequirementUnits, ing.Unit) {
			return &ValidationError{Field: "ingredients", Message: fmt.Sprintf("%q is not a valid unit", ing.Unit)}
		}
	}
	if len(r.Steps) == 0 {
		return &ValidationError{Field: "steps", Message: "at least one step is required"}
	}
	if r.Serves < 1 {
		return &ValidationError{Field: "serves", Message: "must be at least 1"}
	}
	if r.PreparationTime < 1 {
		return &ValidationError{Field: "preparationTime", Message: "must be at least 1 minute"}
	}
	if r.Difficulty != "" && !contains(RecipeDifficulties, r.Difficulty) {
		return &ValidationError{Field: "difficulty", Message: fmt.Sprintf("%q is not a valid difficulty", r.Difficulty)}
	}
	for _, group := range r.PossibleSubstitutes {
		for _, sub := range group.Substitutes {
			if sub.Ratio <= 0 {
				return &ValidationError{Field: "possibleSubstitutes", Message: "ratio must be positive"}
			}
		}
	}
	return nil
}

func jsonBytes(value interface{}) []byte {
	switch v := value.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return nil
	}
}
