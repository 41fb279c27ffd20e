package kitchen

import (
	"sort"
	"strings"

	"github.com/rasoighar/backend/internal/model"
)

// RecipeMatch pairs a recipe with its computed serving and substitute
// information. The results sit alongside the recipe rather than being
// merged into it.
type RecipeMatch struct {
	Recipe         model.Recipe      `json:"recipe"`
	ServingInfo    *ServingResult    `json:"servingInfo"`
	SubstituteInfo *SubstituteResult `json:"substituteInfo"`
}

// MatchResult partitions recipes into four mutually exclusive buckets
// by how close the inventory comes to supporting them.
type MatchResult struct {
	CanMakeNow             []RecipeMatch `json:"canMakeNow"`
	CanMakeWithSubstitutes []RecipeMatch `json:"canMakeWithSubstitutes"`
	MissingOneOrTwo        []RecipeMatch `json:"missingOneOrTwo"`
	CannotMake             []RecipeMatch `json:"cannotMake"`
}

// MatchRecipes runs the serving and substitute computations for every
// recipe and buckets the results, first match wins:
//  1. can be made now
//  2. every missing ingredient has an in-stock substitute
//  3. missing at most two ingredients
//  4. everything else
func MatchRecipes(recipes []model.Recipe, inventory []model.InventoryItem) (*MatchResult, error) {
	result := &MatchResult{
		CanMakeNow:             []RecipeMatch{},
		CanMakeWithSubstitutes: []RecipeMatch{},
		MissingOneOrTwo:        []RecipeMatch{},
		CannotMake:             []RecipeMatch{},
	}

	for i := range recipes {
		servingInfo, err := MaxServings(&recipes[i], inventory)
		if err != nil {
			return nil, err
		}
		substituteInfo := FindSubstitutes(&recipes[i], inventory)

		match := RecipeMatch{
			Recipe:         recipes[i],
			ServingInfo:    servingInfo,
			SubstituteInfo: substituteInfo,
		}

		switch {
		case servingInfo.CanMake:
			result.CanMakeNow = append(result.CanMakeNow, match)
		case substituteInfo.CanMakeWithSubstitutes:
			result.CanMakeWithSubstitutes = append(result.CanMakeWithSubstitutes, match)
		case substituteInfo.TotalMissing <= 2:
			result.MissingOneOrTwo = append(result.MissingOneOrTwo, match)
		default:
			result.CannotMake = append(result.CannotMake, match)
		}
	}

	sort.SliceStable(result.CanMakeNow, func(i, j int) bool {
		return result.CanMakeNow[i].ServingInfo.MaxServing > result.CanMakeNow[j].ServingInfo.MaxServing
	})
	sort.SliceStable(result.CanMakeWithSubstitutes, func(i, j int) bool {
		return result.CanMakeWithSubstitutes[i].SubstituteInfo.TotalMissing < result.CanMakeWithSubstitutes[j].SubstituteInfo.TotalMissing
	})
	sort.SliceStable(result.MissingOneOrTwo, func(i, j int) bool {
		return result.MissingOneOrTwo[i].SubstituteInfo.TotalMissing < result.MissingOneOrTwo[j].SubstituteInfo.TotalMissing
	})
	// CannotMake keeps the input order.

	return result, nil
}

// IngredientMatch is a recipe that uses some of a requested set of
// ingredients, for cooking down stock before it spoils.
type IngredientMatch struct {
	Recipe              model.Recipe `json:"recipe"`
	MatchingIngredients []string     `json:"matchingIngredients"`
	MatchCount          int          `json:"matchCount"`
}

// FindRecipesByIngredients returns the recipes that use at least one of
// the named ingredients, most matches first.
func FindRecipesByIngredients(recipes []model.Recipe, ingredientNames []string) []IngredientMatch {
	matches := []IngredientMatch{}

	for i := range recipes {
		used := make(map[string]bool, len(recipes[i].Ingredients))
		for _, ing := range recipes[i].Ingredients {
			used[strings.ToLower(ing.IngredientName)] = true
		}

		var matching []string
		for _, name := range ingredientNames {
			if used[strings.ToLower(name)] {
				matching = append(matching, name)
			}
		}
		if len(matching) > 0 {
			matches = append(matches, IngredientMatch{
				Recipe:              recipes[i],
				MatchingIngredients: matching,
				MatchCount:          len(matching),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchCount > matches[j].MatchCount
	})
	return matches
}
