package main

import (
	"go.uber.org/zap"

	"github.com/rasoighar/backend/config"
	"github.com/rasoighar/backend/internal/database"
	"github.com/rasoighar/backend/internal/logger"
	"github.com/rasoighar/backend/internal/model"
)

// Sample Indian grocery items
var sampleInventory = []model.InventoryItem{
	{Name: "Basmati Rice", Category: "Grains", CurrentQuantity: 2000, Unit: "g", Threshold: 500},
	{Name: "Wheat Flour (Atta)", Category: "Grains", CurrentQuantity: 5000, Unit: "g", Threshold: 1000},
	{Name: "Rice Flour", Category: "Grains", CurrentQuantity: 1000, Unit: "g", Threshold: 300},
	{Name: "Urad Dal", Category: "Lentils", CurrentQuantity: 800, Unit: "g", Threshold: 200},
	{Name: "Chana Dal", Category: "Lentils", CurrentQuantity: 1000, Unit: "g", Threshold: 300},
	{Name: "Toor Dal", Category: "Lentils", CurrentQuantity: 800, Unit: "g", Threshold: 200},
	{Name: "Moong Dal", Category: "Lentils", CurrentQuantity: 600, Unit: "g", Threshold: 200},
	{Name: "Turmeric Powder", Category: "Spices", CurrentQuantity: 100, Unit: "g", Threshold: 20},
	{Name: "Cumin Seeds", Category: "Spices", CurrentQuantity: 50, Unit: "g", Threshold: 10},
	{Name: "Coriander Powder", Category: "Spices", CurrentQuantity: 80, Unit: "g", Threshold: 15},
	{Name: "Red Chili Powder", Category: "Spices", CurrentQuantity: 60, Unit: "g", Threshold: 12},
	{Name: "Garam Masala", Category: "Spices", CurrentQuantity: 40, Unit: "g", Threshold: 8},
	{Name: "Mustard Seeds", Category: "Spices", CurrentQuantity: 30, Unit: "g", Threshold: 5},
	{Name: "Fenugreek Seeds", Category: "Spices", CurrentQuantity: 20, Unit: "g", Threshold: 5},
	{Name: "Onion", Category: "Vegetables", CurrentQuantity: 10, Unit: "pieces", Threshold: 3},
	{Name: "Tomato", Category: "Vegetables", CurrentQuantity: 8, Unit: "pieces", Threshold: 2},
	{Name: "Potato", Category: "Vegetables", CurrentQuantity: 6, Unit: "pieces", Threshold: 2},
	{Name: "Capsicum", Category: "Vegetables", CurrentQuantity: 4, Unit: "pieces", Threshold: 1},
	{Name: "Ginger", Category: "Vegetables", CurrentQuantity: 200, Unit: "g", Threshold: 50},
	{Name: "Garlic", Category: "Vegetables", CurrentQuantity: 150, Unit: "g", Threshold: 40},
	{Name: "Green Chili", Category: "Vegetables", CurrentQuantity: 15, Unit: "pieces", Threshold: 5},
	{Name: "Curry Leaves", Category: "Vegetables", CurrentQuantity: 30, Unit: "pieces", Threshold: 10},
	{Name: "Paneer", Category: "Dairy", CurrentQuantity: 400, Unit: "g", Threshold: 100},
	{Name: "Ghee", Category: "Dairy", CurrentQuantity: 200, Unit: "g", Threshold: 50},
	{Name: "Yogurt (Curd)", Category: "Dairy", CurrentQuantity: 500, Unit: "g", Threshold: 100},
	{Name: "Milk", Category: "Dairy", CurrentQuantity: 1000, Unit: "ml", Threshold: 200},
	{Name: "Fresh Cream", Category: "Dairy", CurrentQuantity: 200, Unit: "ml", Threshold: 50},
	{Name: "Vegetable Oil", Category: "Oils", CurrentQuantity: 500, Unit: "ml", Threshold: 100},
	{Name: "Salt", Category: "Other", CurrentQuantity: 200, Unit: "g", Threshold: 30},
	{Name: "Sugar", Category: "Other", CurrentQuantity: 300, Unit: "g", Threshold: 50},
	{Name: "Cashew Nuts", Category: "Other", CurrentQuantity: 100, Unit: "g", Threshold: 20},
}

// Sample Indian recipes
var sampleRecipes = []model.Recipe{
	{
		Name:            "Masala Dosa",
		Description:     "Crispy fermented crepe filled with spiced potato filling",
		Category:        "Breakfast",
		Cuisine:         "South Indian",
		Serves:          4,
		PreparationTime: 120,
		Difficulty:      "Medium",
		Ingredients: model.IngredientList{
			{IngredientName: "Rice Flour", Quantity: 200, Unit: "g"},
			{IngredientName: "Urad Dal", Quantity: 50, Unit: "g"},
			{IngredientName: "Fenugreek Seeds", Quantity: 0.5, Unit: "tsp"},
			{IngredientName: "Potato", Quantity: 4, Unit: "pieces"},
			{IngredientName: "Onion", Quantity: 2, Unit: "pieces"},
			{IngredientName: "Mustard Seeds", Quantity: 1, Unit: "tsp"},
			{IngredientName: "Turmeric Powder", Quantity: 0.5, Unit: "tsp"},
			{IngredientName: "Green Chili", Quantity: 2, Unit: "pieces"},
			{IngredientName: "Ginger", Quantity: 10, Unit: "g"},
			{IngredientName: "Curry Leaves", Quantity: 10, Unit: "pieces"},
			{IngredientName: "Salt", Quantity: 1, Unit: "tsp"},
			{IngredientName: "Vegetable Oil", Quantity: 3, Unit: "tbsp"},
		},
		Steps: model.JSONBStringArray{
			"Soak rice and urad dal separately for 6 hours",
			"Grind to make smooth batter, add salt and ferment overnight",
			"Boil and mash potatoes for filling",
			"Heat oil, add mustard seeds, curry leaves, and green chilies",
			"Add onions and saute until golden, add turmeric",
			"Add mashed potatoes and mix well, keep filling aside",
			"Heat dosa tawa, pour batter and spread thinly",
			"Cook until crispy, add potato filling and fold",
			"Serve hot with sambar and chutney",
		},
		PossibleSubstitutes: model.SubstituteGroups{
			{
				Original: "Urad Dal",
				Substitutes: []model.SubstituteOption{
					{Name: "Chana Dal", Ratio: 1.0, Notes: "Slightly different texture"},
				},
			},
		},
		Tags: model.JSONBStringArray{"breakfast", "fermented", "crispy", "south indian"},
	},
	{
		Name:            "Kadai Paneer",
		Description:     "Paneer cubes in spicy gravy with capsicum",
		Category:        "Main Course",
		Cuisine:         "North Indian",
		Serves:          4,
		PreparationTime: 45,
		Difficulty:      "Medium",
		Ingredients: model.IngredientList{
			{IngredientName: "Paneer", Quantity: 400, Unit: "g"},
			{IngredientName: "Capsicum", Quantity: 2, Unit: "pieces"},
			{IngredientName: "Onion", Quantity: 2, Unit: "pieces"},
			{IngredientName: "Tomato", Quantity: 4, Unit: "pieces"},
			{IngredientName: "Ginger", Quantity: 10, Unit: "g"},
			{IngredientName: "Garlic", Quantity: 10, Unit: "g"},
			{IngredientName: "Coriander Powder", Quantity: 2, Unit: "tsp"},
			{IngredientName: "Red Chili Powder", Quantity: 1, Unit: "tsp"},
			{IngredientName: "Garam Masala", Quantity: 1, Unit: "tsp"},
			{IngredientName: "Fresh Cream", Quantity: 50, Unit: "ml"},
			{IngredientName: "Salt", Quantity: 1, Unit: "tsp"},
			{IngredientName: "Vegetable Oil", Quantity: 3, Unit: "tbsp"},
		},
		Steps: model.JSONBStringArray{
			"Cut paneer and capsicum into cubes",
			"Saute onions until golden, add ginger garlic paste",
			"Add tomatoes and cook until soft",
			"Add dry spices and cook until oil separates",
			"Add capsicum and cook for a few minutes",
			"Add paneer cubes and fresh cream",
			"Simmer for five minutes and serve hot",
		},
		PossibleSubstitutes: model.SubstituteGroups{
			{
				Original: "Paneer",
				Substitutes: []model.SubstituteOption{
					{Name: "Tofu", Ratio: 1.0, Notes: "Press before use"},
				},
			},
		},
		Tags: model.JSONBStringArray{"vegetarian", "punjabi", "spicy"},
	},
	{
		Name:            "Dal Tadka",
		Description:     "Yellow lentils tempered with cumin, garlic and ghee",
		Category:        "Curry",
		Cuisine:         "North Indian",
		Serves:          4,
		PreparationTime: 40,
		Difficulty:      "Easy",
		Ingredients: model.IngredientList{
			{IngredientName: "Toor Dal", Quantity: 200, Unit: "g"},
			{IngredientName: "Onion", Quantity: 1, Unit: "pieces"},
			{IngredientName: "Tomato", Quantity: 2, Unit: "pieces"},
			{IngredientName: "Cumin Seeds", Quantity: 1, Unit: "tsp"},
			{IngredientName: "Garlic", Quantity: 10, Unit: "g"},
			{IngredientName: "Green Chili", Quantity: 2, Unit: "pieces"},
			{IngredientName: "Turmeric Powder", Quantity: 0.5, Unit: "tsp"},
			{IngredientName: "Red Chili Powder", Quantity: 0.5, Unit: "tsp"},
			{IngredientName: "Ghee", Quantity: 2, Unit: "tbsp"},
			{IngredientName: "Salt", Quantity: 1, Unit: "tsp"},
		},
		Steps: model.JSONBStringArray{
			"Wash and pressure cook dal with turmeric and salt",
			"Mash the cooked dal lightly",
			"Heat ghee, add cumin seeds and let them splutter",
			"Add garlic, green chilies and onions, saute until golden",
			"Add tomatoes and dry spices, cook until soft",
			"Pour the tempering over the dal and simmer",
			"Garnish with coriander leaves and serve with rice",
		},
		PossibleSubstitutes: model.SubstituteGroups{
			{
				Original: "Toor Dal",
				Substitutes: []model.SubstituteOption{
					{Name: "Moong Dal", Ratio: 1.0, Notes: "Cooks faster"},
				},
			},
			{
				Original: "Ghee",
				Substitutes: []model.SubstituteOption{
					{Name: "Vegetable Oil", Ratio: 1.0, Notes: "Less aromatic"},
				},
			},
		},
		Tags: model.JSONBStringArray{"comfort food", "lentils", "everyday"},
	},
	{
		Name:            "Jeera Rice",
		Description:     "Fragrant basmati rice tempered with cumin",
		Category:        "Rice",
		Cuisine:         "North Indian",
		Serves:          4,
		PreparationTime: 25,
		Difficulty:      "Easy",
		Ingredients: model.IngredientList{
			{IngredientName: "Basmati Rice", Quantity: 300, Unit: "g"},
			{IngredientName: "Cumin Seeds", Quantity: 2, Unit: "tsp"},
			{IngredientName: "Ghee", Quantity: 2, Unit: "tbsp"},
			{IngredientName: "Salt", Quantity: 1, Unit: "tsp"},
		},
		Steps: model.JSONBStringArray{
			"Rinse and soak rice for twenty minutes",
			"Heat ghee and splutter cumin seeds",
			"Add drained rice and toast for a minute",
			"Add water and salt, cook covered until fluffy",
		},
		Tags: model.JSONBStringArray{"rice", "quick", "side dish"},
	},
}

func main() {
	logger.Init()
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	for i := range sampleInventory {
		item := sampleInventory[i]
		result := db.Where("name = ?", item.Name).FirstOrCreate(&item)
		if result.Error != nil {
			logger.Fatal("failed to seed inventory item", zap.String("name", item.Name), zap.Error(result.Error))
		}
	}
	logger.Info("seeded inventory", zap.Int("items", len(sampleInventory)))

	for i := range sampleRecipes {
		recipe := sampleRecipes[i]
		result := db.Where("name = ?", recipe.Name).FirstOrCreate(&recipe)
		if result.Error != nil {
			logger.Fatal("failed to seed recipe", zap.String("name", recipe.Name), zap.Error(result.Error))
		}
	}
	logger.Info("seeded recipes", zap.Int("recipes", len(sampleRecipes)))
}
