package kitchen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasoighar/backend/internal/model"
)

func TestBuildShoppingListAggregatesAcrossRecipes(t *testing.T) {
	recipes := []model.Recipe{
		namedRecipe("Plain Rice", model.IngredientRequirement{IngredientName: "Rice", Quantity: 200, Unit: "g"}),
		namedRecipe("Pulao",
			model.IngredientRequirement{IngredientName: "Rice", Quantity: 300, Unit: "g"},
			model.IngredientRequirement{IngredientName: "Peas", Quantity: 100, Unit: "g"},
		),
	}
	inventory := []model.InventoryItem{
		{Name: "Rice", Category: "Grains", CurrentQuantity: 400, Unit: "g"},
	}

	list := BuildShoppingList(recipes, inventory)

	require.Len(t, list.NeededItems, 2)
	assert.Equal(t, 2, list.TotalItemsNeeded)
	assert.Equal(t, "Rice", list.NeededItems[0].IngredientName)
	assert.Equal(t, 100.0, list.NeededItems[0].Needed)
	assert.Equal(t, "Peas", list.NeededItems[1].IngredientName)
	assert.Equal(t, 100.0, list.NeededItems[1].Needed)
}

func TestBuildShoppingListConvertsStockedUnits(t *testing.T) {
	recipes := []model.Recipe{
		namedRecipe("Kheer", model.IngredientRequirement{IngredientName: "Milk", Quantity: 1500, Unit: "ml"}),
	}
	inventory := []model.InventoryItem{
		{Name: "Milk", Category: "Dairy", CurrentQuantity: 1, Unit: "l"},
	}

	list := BuildShoppingList(recipes, inventory)

	require.Len(t, list.NeededItems, 1)
	assert.Equal(t, 500.0, list.NeededItems[0].Needed)
	assert.Equal(t, "ml", list.NeededItems[0].Unit)
}

func TestBuildShoppingListOmitsCoveredIngredients(t *testing.T) {
	recipes := []model.Recipe{
		namedRecipe("Plain Rice", model.IngredientRequirement{IngredientName: "Rice", Quantity: 200, Unit: "g"}),
	}
	inventory := []model.InventoryItem{
		{Name: "Rice", Category: "Grains", CurrentQuantity: 500, Unit: "g"},
	}

	list := BuildShoppingList(recipes, inventory)

	assert.Empty(t, list.NeededItems)
	assert.Equal(t, 0, list.TotalItemsNeeded)
}
