package kitchen

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rasoighar/backend/internal/model"
)

var (
	// ErrNoIngredients is returned for a recipe with an empty
	// ingredient list; there is nothing to compute a serving from.
	ErrNoIngredients = errors.New("recipe has no ingredients")
	// ErrZeroQuantity guards the division by a required quantity of 0.
	ErrZeroQuantity = errors.New("ingredient requires a quantity of zero")
)

// LimitingIngredient describes an ingredient that caps the serving
// count at zero.
type LimitingIngredient struct {
	Ingredient string  `json:"ingredient"`
	Required   float64 `json:"required"`
	Available  float64 `json:"available"`
	Unit       string  `json:"unit"`
	Message    string  `json:"message"`
}

// IngredientServing is the per-ingredient breakdown of a serving
// computation. UnitMismatch is set when the stocked unit differed from
// the required unit and no conversion entry existed, so the stocked
// number was used as-is.
type IngredientServing struct {
	Ingredient     string `json:"ingredient"`
	ServesPossible int    `json:"servesPossible"`
	UnitMismatch   bool   `json:"unitMismatch,omitempty"`
}

// ServingResult reports how many servings a recipe can produce from the
// current inventory. LimitingIngredients is populated only when nothing
// can be made.
type ServingResult struct {
	MaxServing          int                  `json:"maxServing"`
	CanMake             bool                 `json:"canMake"`
	LimitingIngredients []LimitingIngredient `json:"limitingIngredients"`
	Details             []IngredientServing  `json:"details"`
}

// MaxServings computes how many servings of recipe the inventory
// supports and which ingredients limit that number. Neither argument is
// mutated.
func MaxServings(recipe *model.Recipe, inventory []model.InventoryItem) (*ServingResult, error) {
	if len(recipe.Ingredients) == 0 {
		return nil, fmt.Errorf("%s: %w", recipe.Name, ErrNoIngredients)
	}

	byName := make(map[string]*model.InventoryItem, len(inventory))
	for i := range inventory {
		byName[strings.ToLower(inventory[i].Name)] = &inventory[i]
	}

	limiting := []LimitingIngredient{}
	details := make([]IngredientServing, 0, len(recipe.Ingredients))
	maxServing := math.MaxInt

	for _, ingredient := range recipe.Ingredients {
		if ingredient.Quantity <= 0 {
			return nil, fmt.Errorf("%s: %w", ingredient.IngredientName, ErrZeroQuantity)
		}

		item := byName[strings.ToLower(ingredient.IngredientName)]
		if item == nil || item.CurrentQuantity <= 0 {
			limiting = append(limiting, LimitingIngredient{
				Ingredient: ingredient.IngredientName,
				Required:   ingredient.Quantity,
				Available:  0,
				Unit:       ingredient.Unit,
				Message:    "Not available in inventory",
			})
			details = append(details, IngredientServing{Ingredient: ingredient.IngredientName, ServesPossible: 0})
			maxServing = 0
			continue
		}

		available, converted := ConvertQuantity(item.CurrentQuantity, item.Unit, ingredient.Unit)
		serves := int(math.Floor(available / ingredient.Quantity))
		details = append(details, IngredientServing{
			Ingredient:     ingredient.IngredientName,
			ServesPossible: serves,
			UnitMismatch:   !converted,
		})
		if serves == 0 {
			limiting = append(limiting, LimitingIngredient{
				Ingredient: ingredient.IngredientName,
				Required:   ingredient.Quantity,
				Available:  available,
				Unit:       ingredient.Unit,
				Message:    "Insufficient quantity",
			})
		}
		if serves < maxServing {
			maxServing = serves
		}
	}

	result := &ServingResult{
		MaxServing:          maxServing,
		CanMake:             maxServing > 0,
		LimitingIngredients: []LimitingIngredient{},
		Details:             details,
	}
	if maxServing == 0 {
		result.LimitingIngredients = limiting
	}
	return result, nil
}
