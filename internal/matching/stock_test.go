// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

package matching

import (
	"testing"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

func recipeWith(id int, name string, links ...models.RecipeIngredientLink) models.Recipe {
	return models.Recipe{
		ID:           id,
		Name:         name,
		ServingCount: 2,
		Published:    true,
		Ingredients:  links,
	}
}

func link(ingredientID int, name string, quantity float64, unit models.CanonicalUnit, staple bool) models.RecipeIngredientLink {
	return models.RecipeIngredientLink{
		IngredientID: ingredientID,
		Name:         name,
		Quantity:     quantity,
		Unit:         unit,
		IsStaple:     staple,
	}
}

func stock(ingredientID int, quantity float64, unit models.CanonicalUnit) models.InventoryItem {
	return models.InventoryItem{
		UserID:       1,
		IngredientID: ingredientID,
		Quantity:     quantity,
		Unit:         unit,
	}
}

func TestMatchByStock(t *testing.T) {
	t.Run("fully held single ingredient scores 100", func(t *testing.T) {
		recipes := []models.Recipe{
			recipeWith(1, "omelette",
				link(10, "egg", 2, models.UnitQty, false),
				link(11, "salt", 1, models.UnitGram, true),
			),
		}
		inventory := []models.InventoryItem{stock(10, 6, models.UnitQty)}

		got := MatchByStock(recipes, inventory, DefaultMinMatchPercent)
		if len(got) != 1 {
			t.Fatalf("MatchByStock() returned %d matches, want 1", len(got))
		}
		if got[0].MatchPercentage != 100 {
			t.Errorf("MatchPercentage = %d, want 100", got[0].MatchPercentage)
		}
		if len(got[0].Missing) != 0 {
			t.Errorf("Missing = %v, want empty", got[0].Missing)
		}
	})

	t.Run("zero held recipe is excluded by threshold", func(t *testing.T) {
		recipes := []models.Recipe{
			recipeWith(1, "omelette", link(10, "egg", 2, models.UnitQty, false)),
		}

		got := MatchByStock(recipes, nil, DefaultMinMatchPercent)
		if len(got) != 0 {
			t.Fatalf("MatchByStock() returned %d matches, want 0", len(got))
		}
	})

	t.Run("partial holding earns proportional credit", func(t *testing.T) {
		recipes := []models.Recipe{
			recipeWith(1, "stew",
				link(10, "beef", 400, models.UnitGram, false),
				link(11, "onion", 2, models.UnitQty, false),
			),
		}
		inventory := []models.InventoryItem{
			stock(10, 200, models.UnitGram), // half of required: 0.5
			stock(11, 2, models.UnitQty),    // full: 1.0
		}

		got := MatchByStock(recipes, inventory, DefaultMinMatchPercent)
		if len(got) != 1 {
			t.Fatalf("MatchByStock() returned %d matches, want 1", len(got))
		}
		if got[0].MatchPercentage != 75 {
			t.Errorf("MatchPercentage = %d, want 75", got[0].MatchPercentage)
		}
		if len(got[0].Missing) != 1 {
			t.Fatalf("Missing = %v, want one entry", got[0].Missing)
		}
		deficit := got[0].Missing[0]
		if deficit.IngredientID != 10 || deficit.Amount != 200 || deficit.Unit != models.UnitGram {
			t.Errorf("Missing[0] = %+v, want 200 gram of ingredient 10", deficit)
		}
	})

	t.Run("staples never counted or reported missing", func(t *testing.T) {
		recipes := []models.Recipe{
			recipeWith(1, "pasta",
				link(10, "pasta", 200, models.UnitGram, false),
				link(11, "salt", 5, models.UnitGram, true),
				link(12, "water", 1000, models.UnitML, true),
			),
		}
		inventory := []models.InventoryItem{stock(10, 500, models.UnitGram)}

		got := MatchByStock(recipes, inventory, DefaultMinMatchPercent)
		if len(got) != 1 {
			t.Fatalf("MatchByStock() returned %d matches, want 1", len(got))
		}
		if got[0].MatchPercentage != 100 {
			t.Errorf("MatchPercentage = %d, want 100", got[0].MatchPercentage)
		}
		for _, m := range got[0].Missing {
			if m.IngredientID == 11 || m.IngredientID == 12 {
				t.Errorf("staple %d reported missing", m.IngredientID)
			}
		}
	})

	t.Run("recipe with only staples is excluded", func(t *testing.T) {
		recipes := []models.Recipe{
			recipeWith(1, "salted water", link(11, "salt", 5, models.UnitGram, true)),
		}

		got := MatchByStock(recipes, nil, 0)
		if len(got) != 0 {
			t.Fatalf("MatchByStock() returned %d matches, want 0 (division guard)", len(got))
		}
	})

	t.Run("results ordered by percentage descending", func(t *testing.T) {
		recipes := []models.Recipe{
			recipeWith(1, "half",
				link(10, "beef", 400, models.UnitGram, false),
				link(11, "onion", 2, models.UnitQty, false),
			),
			recipeWith(2, "full", link(11, "onion", 2, models.UnitQty, false)),
		}
		inventory := []models.InventoryItem{stock(11, 2, models.UnitQty)}

		got := MatchByStock(recipes, inventory, DefaultMinMatchPercent)
		if len(got) != 2 {
			t.Fatalf("MatchByStock() returned %d matches, want 2", len(got))
		}
		if got[0].RecipeID != 2 || got[1].RecipeID != 1 {
			t.Errorf("order = [%d %d], want [2 1]", got[0].RecipeID, got[1].RecipeID)
		}
	})

	t.Run("unit mismatch counts as nothing held", func(t *testing.T) {
		recipes := []models.Recipe{
			recipeWith(1, "soup", link(10, "milk", 500, models.UnitML, false)),
		}
		inventory := []models.InventoryItem{stock(10, 500, models.UnitGram)}

		got := MatchByStock(recipes, inventory, 0)
		if len(got) != 1 {
			t.Fatalf("MatchByStock() returned %d matches, want 1", len(got))
		}
		if got[0].MatchPercentage != 0 {
			t.Errorf("MatchPercentage = %d, want 0", got[0].MatchPercentage)
		}
	})
}
