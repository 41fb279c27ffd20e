package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rasoighar/backend/internal/logger"
	"github.com/rasoighar/backend/internal/model"
)

// nonVegKeywords cross-checks the upstream vegetarian flag: a recipe is
// only treated as vegetarian when none of its ingredient names contain
// one of these.
var nonVegKeywords = []string{
	"chicken", "mutton", "fish", "egg", "beef", "pork", "lamb", "shrimp", "prawn", "tuna", "salmon",
}

var htmlTags = regexp.MustCompile(`<[^>]*>`)

const externalCacheTTL = time.Hour

// ImportedRecipe is a recipe reshaped from the external API into our
// structure. It is not persisted; the caller decides what to keep.
type ImportedRecipe struct {
	Name            string                        `json:"name"`
	Description     string                        `json:"description"`
	Cuisine         string                        `json:"cuisine"`
	Serves          int                           `json:"serves"`
	PreparationTime int                           `json:"preparationTime"`
	Difficulty      string                        `json:"difficulty"`
	ImageURL        string                        `json:"imageUrl"`
	FoodType        string                        `json:"foodType"`
	Category        string                        `json:"category"`
	Ingredients     []model.IngredientRequirement `json:"ingredients"`
	Steps           []string                      `json:"steps"`
	Tags            []string                      `json:"tags"`
}

// upstream response shapes (Spoonacular complexSearch).
type upstreamSearchResponse struct {
	Results []upstreamRecipe `json:"results"`
}

type upstreamRecipe struct {
	Title                string               `json:"title"`
	Summary              string               `json:"summary"`
	Cuisines             []string             `json:"cuisines"`
	Servings             int                  `json:"servings"`
	ReadyInMinutes       int                  `json:"readyInMinutes"`
	Image                string               `json:"image"`
	Vegetarian           bool                 `json:"vegetarian"`
	ExtendedIngredients  []upstreamIngredient `json:"extendedIngredients"`
	AnalyzedInstructions []struct {
		Steps []struct {
			Step string `json:"step"`
		} `json:"steps"`
	} `json:"analyzedInstructions"`
}

type upstreamIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// ExternalRecipeService fetches recipes from a third-party API and
// reshapes them. Responses are cached in Redis; the cache is optional
// and a nil client disables it.
type ExternalRecipeService struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   *redis.Client
}

// NewExternalRecipeService creates a new ExternalRecipeService instance
func NewExternalRecipeService(baseURL, apiKey string, cache *redis.Client) *ExternalRecipeService {
	return &ExternalRecipeService{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
		cache:   cache,
	}
}

// FetchRecipes queries the external API by cuisine and diet and
// reshapes the results.
func (s *ExternalRecipeService) FetchRecipes(ctx context.Context, cuisine, diet string) ([]ImportedRecipe, error) {
	cacheKey := fmt.Sprintf("external_recipes:%s:%s", strings.ToLower(cuisine), strings.ToLower(diet))
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var recipes []ImportedRecipe
			if err := json.Unmarshal(cached, &recipes); err == nil {
				logger.Debug("external recipes served from cache", zap.String("key", cacheKey))
				return recipes, nil
			}
		}
	}

	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	params.Set("addRecipeInformation", "true")
	params.Set("number", "20")
	if cuisine != "" {
		params.Set("cuisine", cuisine)
	}
	if diet != "" {
		params.Set("diet", diet)
	}

	endpoint := s.baseURL + "/recipes/complexSearch?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("external recipe API unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("external recipe API returned status %d", resp.StatusCode)
	}

	var upstream upstreamSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, fmt.Errorf("failed to decode external recipe response: %w", err)
	}

	recipes := make([]ImportedRecipe, 0, len(upstream.Results))
	for _, r := range upstream.Results {
		recipes = append(recipes, reshapeUpstreamRecipe(r, cuisine))
	}

	if s.cache != nil {
		if payload, err := json.Marshal(recipes); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, externalCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache external recipes", zap.Error(err))
			}
		}
	}
	return recipes, nil
}

func reshapeUpstreamRecipe(r upstreamRecipe, requestedCuisine string) ImportedRecipe {
	foodType := "Non-Vegetarian"
	if IsVegetarian(r.Vegetarian, ingredientNames(r.ExtendedIngredients)) {
		foodType = "Vegetarian"
	}

	cuisine := requestedCuisine
	if cuisine == "" {
		if len(r.Cuisines) > 0 {
			cuisine = r.Cuisines[0]
		} else {
			cuisine = "General"
		}
	}

	ingredients := make([]model.IngredientRequirement, 0, len(r.ExtendedIngredients))
	for _, ing := range r.ExtendedIngredients {
		quantity := ing.Amount
		if quantity == 0 {
			quantity = 1
		}
		unit := ing.Unit
		if unit == "" {
			unit = "unit"
		}
		ingredients = append(ingredients, model.IngredientRequirement{
			IngredientName: ing.Name,
			Quantity:       quantity,
			Unit:           unit,
		})
	}

	var steps []string
	if len(r.AnalyzedInstructions) > 0 {
		for _, s := range r.AnalyzedInstructions[0].Steps {
			steps = append(steps, s.Step)
		}
	}

	return ImportedRecipe{
		Name:            r.Title,
		Description:     htmlTags.ReplaceAllString(r.Summary, ""),
		Cuisine:         cuisine,
		Serves:          r.Servings,
		PreparationTime: r.ReadyInMinutes,
		Difficulty:      difficultyFromTime(r.ReadyInMinutes),
		ImageURL:        r.Image,
		FoodType:        foodType,
		Category:        "Main Course",
		Ingredients:     ingredients,
		Steps:           steps,
		Tags:            []string{foodType},
	}
}

// IsVegetarian applies the keyword cross-check: the source must mark
// the recipe vegetarian AND no ingredient name may contain a non-veg
// keyword.
func IsVegetarian(markedVegetarian bool, ingredientNames []string) bool {
	if !markedVegetarian {
		return false
	}
	joined := strings.ToLower(strings.Join(ingredientNames, " "))
	for _, keyword := range nonVegKeywords {
		if strings.Contains(joined, keyword) {
			return false
		}
	}
	return true
}

func ingredientNames(ingredients []upstreamIngredient) []string {
	names := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		names = append(names, ing.Name)
	}
	return names
}

func difficultyFromTime(readyInMinutes int) string {
	switch {
	case readyInMinutes > 45:
		return "Hard"
	case readyInMinutes > 25:
		return "Medium"
	default:
		return "Easy"
	}
}
