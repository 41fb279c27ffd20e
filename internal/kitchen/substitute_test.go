package kitchen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasoighar/backend/internal/model"
)

func TestFindSubstitutesNothingMissing(t *testing.T) {
	recipe := testRecipe(model.IngredientRequirement{IngredientName: "Rice", Quantity: 200, Unit: "g"})
	inventory := []model.InventoryItem{
		// Presence only; zero stock still counts as present here.
		{Name: "Rice", Category: "Grains", CurrentQuantity: 0, Unit: "g"},
	}

	result := FindSubstitutes(recipe, inventory)

	assert.Equal(t, 0, result.TotalMissing)
	assert.Empty(t, result.MissingIngredients)
	assert.True(t, result.CanMakeWithSubstitutes, "vacuously true with no missing ingredients")
}

func TestFindSubstitutesRecipeDefined(t *testing.T) {
	recipe := testRecipe(model.IngredientRequirement{IngredientName: "Urad Dal", Quantity: 50, Unit: "g"})
	recipe.PossibleSubstitutes = model.SubstituteGroups{
		{Original: "Urad Dal", Substitutes: []model.SubstituteOption{
			{Name: "Chana Dal", Ratio: 1.0, Notes: "Slightly different texture"},
			{Name: "Moong Dal", Ratio: 1.0},
		}},
	}
	inventory := []model.InventoryItem{
		{Name: "Chana Dal", Category: "Lentils", CurrentQuantity: 500, Unit: "g"},
	}

	result := FindSubstitutes(recipe, inventory)

	require.Equal(t, 1, result.TotalMissing)
	require.Len(t, result.SubstitutionSuggestions, 1)
	suggestion := result.SubstitutionSuggestions[0]
	assert.Equal(t, "Urad Dal", suggestion.MissingIngredient)
	assert.False(t, suggestion.IsGeneric)
	assert.True(t, suggestion.HasAvailableSubstitute)
	require.Len(t, suggestion.AvailableSubstitutes, 1)
	assert.Equal(t, "Chana Dal", suggestion.AvailableSubstitutes[0].Name)
	assert.True(t, result.CanMakeWithSubstitutes)
}

func TestFindSubstitutesFallsBackToFullList(t *testing.T) {
	recipe := testRecipe(model.IngredientRequirement{IngredientName: "Urad Dal", Quantity: 50, Unit: "g"})
	recipe.PossibleSubstitutes = model.SubstituteGroups{
		{Original: "Urad Dal", Substitutes: []model.SubstituteOption{
			{Name: "Chana Dal", Ratio: 1.0},
			{Name: "Moong Dal", Ratio: 1.0},
		}},
	}

	result := FindSubstitutes(recipe, nil)

	require.Len(t, result.SubstitutionSuggestions, 1)
	suggestion := result.SubstitutionSuggestions[0]
	assert.False(t, suggestion.HasAvailableSubstitute)
	// Neither substitute is stocked, so the whole list comes back as
	// informational.
	assert.Len(t, suggestion.AvailableSubstitutes, 2)
	assert.False(t, result.CanMakeWithSubstitutes)
}

func TestFindSubstitutesGenericTable(t *testing.T) {
	recipe := testRecipe(model.IngredientRequirement{IngredientName: "Paneer", Quantity: 200, Unit: "g"})
	inventory := []model.InventoryItem{
		{Name: "Tofu", Category: "Other", CurrentQuantity: 300, Unit: "g"},
	}

	result := FindSubstitutes(recipe, inventory)

	require.Len(t, result.SubstitutionSuggestions, 1)
	suggestion := result.SubstitutionSuggestions[0]
	assert.True(t, suggestion.IsGeneric)
	assert.True(t, suggestion.HasAvailableSubstitute)
	require.Len(t, suggestion.AvailableSubstitutes, 1)
	assert.Equal(t, "Tofu", suggestion.AvailableSubstitutes[0].Name)
}

func TestFindSubstitutesUnknownIngredientPlaceholder(t *testing.T) {
	recipe := testRecipe(model.IngredientRequirement{IngredientName: "Saffron", Quantity: 1, Unit: "pinch"})

	result := FindSubstitutes(recipe, nil)

	require.Len(t, result.SubstitutionSuggestions, 1)
	suggestion := result.SubstitutionSuggestions[0]
	assert.True(t, suggestion.IsGeneric)
	assert.False(t, suggestion.HasAvailableSubstitute)
	require.Len(t, suggestion.AvailableSubstitutes, 1)
	assert.Equal(t, "No known substitute", suggestion.AvailableSubstitutes[0].Name)
	assert.Equal(t, 1.0, suggestion.AvailableSubstitutes[0].Ratio)
}

func TestFindSubstitutesTotalMissingMatchesList(t *testing.T) {
	recipe := testRecipe(
		model.IngredientRequirement{IngredientName: "Ghee", Quantity: 2, Unit: "tbsp"},
		model.IngredientRequirement{IngredientName: "Rice", Quantity: 200, Unit: "g"},
		model.IngredientRequirement{IngredientName: "Yogurt", Quantity: 100, Unit: "g"},
	)
	inventory := []model.InventoryItem{
		{Name: "Rice", Category: "Grains", CurrentQuantity: 1000, Unit: "g"},
	}

	result := FindSubstitutes(recipe, inventory)

	assert.Equal(t, len(result.MissingIngredients), result.TotalMissing)
	assert.Equal(t, 2, result.TotalMissing)
	// Missing ingredients keep recipe order.
	assert.Equal(t, "Ghee", result.MissingIngredients[0].IngredientName)
	assert.Equal(t, "Yogurt", result.MissingIngredients[1].IngredientName)
}
