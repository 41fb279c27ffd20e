package kitchen

import (
	"strings"

	"github.com/rasoighar/backend/internal/model"
)

// NeededItem is one shopping list entry: how much of an ingredient must
// be bought on top of what is already stocked.
type NeededItem struct {
	IngredientName string  `json:"ingredientName"`
	Needed         float64 `json:"needed"`
	Unit           string  `json:"unit"`
}

// ShoppingList is the aggregate purchase plan for a set of recipes.
type ShoppingList struct {
	NeededItems      []NeededItem `json:"neededItems"`
	TotalItemsNeeded int          `json:"totalItemsNeeded"`
}

// BuildShoppingList sums the ingredient requirements of the selected
// recipes, subtracts what the inventory already holds (converting units
// where the fixed table allows) and reports what remains to buy.
// Quantities are summed in the unit of the first requirement seen for
// each ingredient.
func BuildShoppingList(recipes []model.Recipe, inventory []model.InventoryItem) *ShoppingList {
	type requirement struct {
		name     string
		unit     string
		quantity float64
	}

	var order []string
	required := map[string]*requirement{}

	for _, recipe := range recipes {
		for _, ing := range recipe.Ingredients {
			key := strings.ToLower(ing.IngredientName)
			req, seen := required[key]
			if !seen {
				req = &requirement{name: ing.IngredientName, unit: ing.Unit}
				required[key] = req
				order = append(order, key)
			}
			quantity, _ := ConvertQuantity(ing.Quantity, ing.Unit, req.unit)
			req.quantity += quantity
		}
	}

	stocked := make(map[string]*model.InventoryItem, len(inventory))
	for i := range inventory {
		stocked[strings.ToLower(inventory[i].Name)] = &inventory[i]
	}

	list := &ShoppingList{NeededItems: []NeededItem{}}
	for _, key := range order {
		req := required[key]
		available := 0.0
		if item := stocked[key]; item != nil {
			available, _ = ConvertQuantity(item.CurrentQuantity, item.Unit, req.unit)
		}
		needed := req.quantity - available
		if needed <= 0 {
			continue
		}
		list.NeededItems = append(list.NeededItems, NeededItem{
			IngredientName: req.name,
			Needed:         needed,
			Unit:           req.unit,
		})
	}
	list.TotalItemsNeeded = len(list.NeededItems)
	return list
}
