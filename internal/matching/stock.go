// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

// Package matching scores recipes against what a user has available, either
// from their live inventory (stock mode) or from an explicit ingredient
// selection (manual mode). Both scorers are pure functions over loaded
// collections; they never touch the store.
package matching

import (
	"math"
	"sort"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

// DefaultMinMatchPercent is the stock-mode floor. Recipes below it are
// dropped so the engine never suggests a dish the user is nowhere close to
// being able to cook.
const DefaultMinMatchPercent = 30

// MatchByStock scores every recipe against the user's inventory snapshot
// and returns the entries at or above minPercent, ordered by match
// percentage descending.
//
// Per-ingredient scoring is proportional: a fully held ingredient scores
// 1.0, an absent one 0, and a partial holding held/required. Staples are
// excluded from both numerator and denominator, and a recipe with zero
// non-staple ingredients is excluded outright.
func MatchByStock(recipes []models.Recipe, inventory []models.InventoryItem, minPercent int) []models.StockMatch {
	held := make(map[int]models.InventoryItem, len(inventory))
	for _, item := range inventory {
		held[item.IngredientID] = item
	}

	matches := make([]models.StockMatch, 0, len(recipes))
	for i := range recipes {
		match, ok := scoreStock(&recipes[i], held)
		if ok && match.MatchPercentage >= minPercent {
			matches = append(matches, match)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})

	return matches
}

func scoreStock(recipe *models.Recipe, held map[int]models.InventoryItem) (models.StockMatch, bool) {
	required := recipe.NonStapleIngredients()
	if len(required) == 0 {
		return models.StockMatch{}, false
	}

	var sum float64
	missing := make([]models.MissingIngredient, 0)

	for _, link := range required {
		var have float64
		if item, ok := held[link.IngredientID]; ok && item.Unit == link.Unit {
			have = item.Quantity
		}

		switch {
		case have >= link.Quantity:
			sum++
		case have > 0:
			sum += have / link.Quantity
		}

		if deficit := link.Quantity - have; deficit > 0 {
			missing = append(missing, models.MissingIngredient{
				IngredientID: link.IngredientID,
				Name:         link.Name,
				Amount:       math.Round(deficit*100) / 100,
				Unit:         link.Unit,
			})
		}
	}

	return models.StockMatch{
		RecipeID:        recipe.ID,
		RecipeName:      recipe.Name,
		MatchPercentage: int(math.Round(100 * sum / float64(len(required)))),
		Missing:         missing,
	}, true
}
