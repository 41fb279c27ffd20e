package kitchen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasoighar/backend/internal/model"
)

func namedRecipe(name string, ingredients ...model.IngredientRequirement) model.Recipe {
	r := testRecipe(ingredients...)
	r.Name = name
	return *r
}

func TestMatchRecipesPartition(t *testing.T) {
	inventory := []model.InventoryItem{
		{Name: "Rice", Category: "Grains", CurrentQuantity: 1000, Unit: "g"},
		{Name: "Tofu", Category: "Other", CurrentQuantity: 300, Unit: "g"},
	}
	recipes := []model.Recipe{
		// Makeable now.
		namedRecipe("Plain Rice", model.IngredientRequirement{IngredientName: "Rice", Quantity: 100, Unit: "g"}),
		// Paneer missing but its generic substitute (Tofu) is stocked.
		namedRecipe("Paneer Bhurji", model.IngredientRequirement{IngredientName: "Paneer", Quantity: 200, Unit: "g"}),
		// Two missing ingredients without stocked substitutes.
		namedRecipe("Kheer",
			model.IngredientRequirement{IngredientName: "Milk", Quantity: 500, Unit: "ml"},
			model.IngredientRequirement{IngredientName: "Saffron", Quantity: 1, Unit: "pinch"},
		),
		// Three missing ingredients, nothing substitutable.
		namedRecipe("Biryani",
			model.IngredientRequirement{IngredientName: "Chicken", Quantity: 500, Unit: "g"},
			model.IngredientRequirement{IngredientName: "Saffron", Quantity: 1, Unit: "pinch"},
			model.IngredientRequirement{IngredientName: "Mint", Quantity: 10, Unit: "g"},
		),
	}

	result, err := MatchRecipes(recipes, inventory)
	require.NoError(t, err)

	total := len(result.CanMakeNow) + len(result.CanMakeWithSubstitutes) +
		len(result.MissingOneOrTwo) + len(result.CannotMake)
	assert.Equal(t, len(recipes), total, "buckets must partition the input")

	require.Len(t, result.CanMakeNow, 1)
	assert.Equal(t, "Plain Rice", result.CanMakeNow[0].Recipe.Name)
	require.Len(t, result.CanMakeWithSubstitutes, 1)
	assert.Equal(t, "Paneer Bhurji", result.CanMakeWithSubstitutes[0].Recipe.Name)
	require.Len(t, result.MissingOneOrTwo, 1)
	assert.Equal(t, "Kheer", result.MissingOneOrTwo[0].Recipe.Name)
	require.Len(t, result.CannotMake, 1)
	assert.Equal(t, "Biryani", result.CannotMake[0].Recipe.Name)
}

func TestMatchRecipesSortsByServingCapacity(t *testing.T) {
	inventory := []model.InventoryItem{
		{Name: "Rice", Category: "Grains", CurrentQuantity: 1000, Unit: "g"},
		{Name: "Milk", Category: "Dairy", CurrentQuantity: 400, Unit: "ml"},
	}
	recipes := []model.Recipe{
		namedRecipe("Milk Rice",
			model.IngredientRequirement{IngredientName: "Rice", Quantity: 100, Unit: "g"},
			model.IngredientRequirement{IngredientName: "Milk", Quantity: 200, Unit: "ml"},
		),
		namedRecipe("Plain Rice", model.IngredientRequirement{IngredientName: "Rice", Quantity: 100, Unit: "g"}),
	}

	result, err := MatchRecipes(recipes, inventory)
	require.NoError(t, err)

	require.Len(t, result.CanMakeNow, 2)
	for i := 1; i < len(result.CanMakeNow); i++ {
		assert.GreaterOrEqual(t,
			result.CanMakeNow[i-1].ServingInfo.MaxServing,
			result.CanMakeNow[i].ServingInfo.MaxServing,
			"canMakeNow must be non-increasing by maxServing")
	}
	assert.Equal(t, "Plain Rice", result.CanMakeNow[0].Recipe.Name)
}

func TestMatchRecipesSortsMissingAscending(t *testing.T) {
	recipes := []model.Recipe{
		namedRecipe("Two Missing",
			model.IngredientRequirement{IngredientName: "Saffron", Quantity: 1, Unit: "pinch"},
			model.IngredientRequirement{IngredientName: "Mint", Quantity: 10, Unit: "g"},
		),
		namedRecipe("One Missing", model.IngredientRequirement{IngredientName: "Saffron", Quantity: 1, Unit: "pinch"}),
	}

	result, err := MatchRecipes(recipes, nil)
	require.NoError(t, err)

	require.Len(t, result.MissingOneOrTwo, 2)
	assert.Equal(t, "One Missing", result.MissingOneOrTwo[0].Recipe.Name)
	assert.Equal(t, "Two Missing", result.MissingOneOrTwo[1].Recipe.Name)
}

func TestMatchRecipesPropagatesPreconditionError(t *testing.T) {
	recipes := []model.Recipe{namedRecipe("Empty")}

	_, err := MatchRecipes(recipes, nil)
	assert.ErrorIs(t, err, ErrNoIngredients)
}

func TestFindRecipesByIngredients(t *testing.T) {
	recipes := []model.Recipe{
		namedRecipe("Aloo Gobi",
			model.IngredientRequirement{IngredientName: "Potato", Quantity: 3, Unit: "pieces"},
			model.IngredientRequirement{IngredientName: "Cauliflower", Quantity: 1, Unit: "pieces"},
		),
		namedRecipe("Aloo Paratha",
			model.IngredientRequirement{IngredientName: "Potato", Quantity: 2, Unit: "pieces"},
		),
		namedRecipe("Kheer",
			model.IngredientRequirement{IngredientName: "Milk", Quantity: 500, Unit: "ml"},
		),
	}

	matches := FindRecipesByIngredients(recipes, []string{"potato", "Cauliflower"})

	require.Len(t, matches, 2)
	assert.Equal(t, "Aloo Gobi", matches[0].Recipe.Name)
	assert.Equal(t, 2, matches[0].MatchCount)
	assert.Equal(t, "Aloo Paratha", matches[1].Recipe.Name)
	assert.Equal(t, 1, matches[1].MatchCount)
}
