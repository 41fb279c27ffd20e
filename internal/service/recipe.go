package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rasoighar/backend/internal/kitchen"
	"github.com/rasoighar/backend/internal/logger"
	"github.com/rasoighar/backend/internal/model"
)

// RecipeFilter narrows recipe listings. Zero values mean no filtering.
type RecipeFilter struct {
	Category   string
	Cuisine    string
	Difficulty string
	Search     string
}

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes returns recipes matching the filter, newest first. The
// search term matches name, description and tags case-insensitively.
func (s *RecipeService) ListRecipes(ctx context.Context, filter RecipeFilter) ([]model.Recipe, error) {
	query := s.db.WithContext(ctx)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Cuisine != "" {
		query = query.Where("cuisine = ?", filter.Cuisine)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		if s.db.Dialector.Name() == "postgres" {
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags::text) LIKE ?",
				like, like, like,
			)
		} else {
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?",
				like, like, like,
			)
		}
	}

	var recipes []model.Recipe
	if err := query.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe validates and stores a new recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// UpdateRecipe replaces a recipe's content and returns the stored
// state.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *model.Recipe) (*model.Recipe, error) {
	var existing model.Recipe
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		return nil, err
	}

	recipe.ID = id
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&existing).Select(
		"name", "description", "category", "cuisine", "ingredients", "steps",
		"serves", "preparation_time", "difficulty", "possible_substitutes",
		"image_url", "tags",
	).Updates(recipe).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe removes a recipe by ID.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&recipe).Error
}

// SetImageURL stores the uploaded image location on a recipe.
func (s *RecipeService) SetImageURL(ctx context.Context, id uuid.UUID, url string) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&recipe).Update("image_url", url).Error; err != nil {
		return nil, err
	}
	recipe.ImageURL = url
	return &recipe, nil
}

// ServingInfoForAll computes serving capacity for every recipe against
// the current inventory, highest capacity first.
func (s *RecipeService) ServingInfoForAll(ctx context.Context) ([]kitchen.RecipeMatch, error) {
	recipes, inventory, err := s.loadRecipesAndInventory(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]kitchen.RecipeMatch, 0, len(recipes))
	for i := range recipes {
		servingInfo, err := kitchen.MaxServings(&recipes[i], inventory)
		if err != nil {
			return nil, err
		}
		s.warnOnUnitMismatch(recipes[i].Name, servingInfo)
		matches = append(matches, kitchen.RecipeMatch{
			Recipe:      recipes[i],
			ServingInfo: servingInfo,
		})
	}

	// Highest servable count first.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ServingInfo.MaxServing > matches[j].ServingInfo.MaxServing
	})
	return matches, nil
}

// MatchRecipes buckets all recipes by how close the inventory comes to
// supporting them.
func (s *RecipeService) MatchRecipes(ctx context.Context) (*kitchen.MatchResult, error) {
	recipes, inventory, err := s.loadRecipesAndInventory(ctx)
	if err != nil {
		return nil, err
	}
	result, err := kitchen.MatchRecipes(recipes, inventory)
	if err != nil {
		return nil, err
	}
	for _, match := range result.CanMakeNow {
		s.warnOnUnitMismatch(match.Recipe.Name, match.ServingInfo)
	}
	return result, nil
}

// SubstitutesFor resolves substitution suggestions for one recipe.
func (s *RecipeService) SubstitutesFor(ctx context.Context, id uuid.UUID) (*kitchen.SubstituteResult, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	var inventory []model.InventoryItem
	if err := s.db.WithContext(ctx).Find(&inventory).Error; err != nil {
		return nil, err
	}
	return kitchen.FindSubstitutes(recipe, inventory), nil
}

// FindByIngredients returns recipes using any of the named ingredients.
func (s *RecipeService) FindByIngredients(ctx context.Context, names []string) ([]kitchen.IngredientMatch, error) {
	recipes, _, err := s.loadRecipesAndInventory(ctx)
	if err != nil {
		return nil, err
	}
	return kitchen.FindRecipesByIngredients(recipes, names), nil
}

// ShoppingList aggregates the purchase needs of the selected recipes.
func (s *RecipeService) ShoppingList(ctx context.Context, recipeIDs []uuid.UUID) (*kitchen.ShoppingList, error) {
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Where("id IN ?", recipeIDs).Find(&recipes).Error; err != nil {
		return nil, err
	}
	if len(recipes) != len(recipeIDs) {
		return nil, gorm.ErrRecordNotFound
	}
	var inventory []model.InventoryItem
	if err := s.db.WithContext(ctx).Find(&inventory).Error; err != nil {
		return nil, err
	}
	return kitchen.BuildShoppingList(recipes, inventory), nil
}

func (s *RecipeService) loadRecipesAndInventory(ctx context.Context) ([]model.Recipe, []model.InventoryItem, error) {
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, nil, err
	}
	var inventory []model.InventoryItem
	if err := s.db.WithContext(ctx).Find(&inventory).Error; err != nil {
		return nil, nil, err
	}
	return recipes, inventory, nil
}

// warnOnUnitMismatch surfaces the calculator's unit fallback, where a
// stocked quantity was compared against a different unit as-is.
func (s *RecipeService) warnOnUnitMismatch(recipeName string, info *kitchen.ServingResult) {
	for _, detail := range info.Details {
		if detail.UnitMismatch {
			logger.Warn("no unit conversion available, comparing quantities as-is",
				zap.String("recipe", recipeName),
				zap.String("ingredient", detail.Ingredient),
			)
		}
	}
}
