package kitchen

import (
	"strings"

	"github.com/rasoighar/backend/internal/model"
)

// genericSubstitutes is the built-in substitution table for common
// ingredients, keyed by lower-case ingredient name. It is consulted
// when a recipe defines no substitutes of its own.
var genericSubstitutes = map[string][]model.SubstituteOption{
	// Dairy
	"paneer":      {{Name: "Tofu", Ratio: 1.0, Notes: "Different texture but works well"}},
	"ghee":        {{Name: "Vegetable Oil", Ratio: 1.0, Notes: "Neutral flavor"}, {Name: "Butter", Ratio: 1.0, Notes: "Similar richness"}},
	"fresh cream": {{Name: "Malai", Ratio: 1.0, Notes: "Similar texture"}, {Name: "Coconut Milk", Ratio: 1.5, Notes: "Dairy-free option"}},
	"yogurt":      {{Name: "Buttermilk", Ratio: 1.0, Notes: "Similar tanginess"}, {Name: "Lemon Juice", Ratio: 0.5, Notes: "Use with milk"}},

	// Lentils
	"toor dal":  {{Name: "Masoor Dal", Ratio: 1.0, Notes: "Similar cooking time"}, {Name: "Moong Dal", Ratio: 1.0, Notes: "Lighter flavor"}},
	"chana dal": {{Name: "Yellow Split Peas", Ratio: 1.0, Notes: "Similar texture"}},

	// Spices
	"garam masala": {{Name: "Curry Powder", Ratio: 1.0, Notes: "Different flavor profile"}},
	"cumin seeds":  {{Name: "Cumin Powder", Ratio: 0.5, Notes: "Use half quantity"}},

	// Vegetables
	"tomato": {{Name: "Tomato Puree", Ratio: 0.5, Notes: "Use half quantity"}, {Name: "Tamarind Paste", Ratio: 0.3, Notes: "For acidity"}},
	"onion":  {{Name: "Onion Powder", Ratio: 0.1, Notes: "Use 1/10th quantity"}, {Name: "Shallots", Ratio: 1.5, Notes: "Similar flavor"}},
	"ginger": {{Name: "Ginger Powder", Ratio: 0.2, Notes: "Use 1/5th quantity"}},
	"garlic": {{Name: "Garlic Powder", Ratio: 0.1, Notes: "Use 1/10th quantity"}},
}

// noKnownSubstitute is the placeholder emitted when neither the recipe
// nor the generic table has a suggestion.
var noKnownSubstitute = []model.SubstituteOption{
	{Name: "No known substitute", Ratio: 1, Notes: "Consider omitting or finding alternative recipe"},
}

// SubstitutionSuggestion proposes replacements for one missing
// ingredient. When no proposed substitute is in stock the full list is
// kept as informational and HasAvailableSubstitute stays false.
type SubstitutionSuggestion struct {
	MissingIngredient      string                   `json:"missingIngredient"`
	RequiredQuantity       float64                  `json:"requiredQuantity"`
	Unit                   string                   `json:"unit"`
	AvailableSubstitutes   []model.SubstituteOption `json:"availableSubstitutes"`
	HasAvailableSubstitute bool                     `json:"hasAvailableSubstitute"`
	IsGeneric              bool                     `json:"isGeneric,omitempty"`
}

// SubstituteResult aggregates the missing ingredients of a recipe and
// their substitution suggestions.
type SubstituteResult struct {
	MissingIngredients      []model.IngredientRequirement `json:"missingIngredients"`
	SubstitutionSuggestions []SubstitutionSuggestion      `json:"substitutionSuggestions"`
	CanMakeWithSubstitutes  bool                          `json:"canMakeWithSubstitutes"`
	TotalMissing            int                           `json:"totalMissing"`
}

// FindSubstitutes determines which required ingredients are absent from
// the inventory and proposes substitutes for each. Presence is a
// name-only check; quantities are the serving calculator's concern.
func FindSubstitutes(recipe *model.Recipe, inventory []model.InventoryItem) *SubstituteResult {
	inStock := make(map[string]bool, len(inventory))
	for _, item := range inventory {
		inStock[strings.ToLower(item.Name)] = true
	}

	result := &SubstituteResult{
		MissingIngredients:      []model.IngredientRequirement{},
		SubstitutionSuggestions: []SubstitutionSuggestion{},
	}

	for _, ingredient := range recipe.Ingredients {
		if inStock[strings.ToLower(ingredient.IngredientName)] {
			continue
		}
		result.MissingIngredients = append(result.MissingIngredients, ingredient)

		suggestion := SubstitutionSuggestion{
			MissingIngredient: ingredient.IngredientName,
			RequiredQuantity:  ingredient.Quantity,
			Unit:              ingredient.Unit,
		}

		if options := recipeSubstitutes(recipe, ingredient.IngredientName); options != nil {
			available := filterAvailable(options, inStock)
			suggestion.HasAvailableSubstitute = len(available) > 0
			if len(available) > 0 {
				suggestion.AvailableSubstitutes = available
			} else {
				suggestion.AvailableSubstitutes = options
			}
		} else {
			options, known := genericSubstitutes[strings.ToLower(ingredient.IngredientName)]
			if !known {
				options = noKnownSubstitute
			}
			available := filterAvailable(options, inStock)
			suggestion.IsGeneric = true
			suggestion.HasAvailableSubstitute = len(available) > 0
			if len(available) > 0 {
				suggestion.AvailableSubstitutes = available
			} else {
				suggestion.AvailableSubstitutes = options
			}
		}

		result.SubstitutionSuggestions = append(result.SubstitutionSuggestions, suggestion)
	}

	result.TotalMissing = len(result.MissingIngredients)
	result.CanMakeWithSubstitutes = true
	for _, s := range result.SubstitutionSuggestions {
		if !s.HasAvailableSubstitute {
			result.CanMakeWithSubstitutes = false
			break
		}
	}
	return result
}

func recipeSubstitutes(recipe *model.Recipe, ingredientName string) []model.SubstituteOption {
	for _, group := range recipe.PossibleSubstitutes {
		if strings.EqualFold(group.Original, ingredientName) {
			return group.Substitutes
		}
	}
	return nil
}

func filterAvailable(options []model.SubstituteOption, inStock map[string]bool) []model.SubstituteOption {
	var available []model.SubstituteOption
	for _, option := range options {
		if inStock[strings.ToLower(option.Name)] {
			available = append(available, option)
		}
	}
	return available
}
