// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

package matching

import (
	"math"
	"sort"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

// MatchManual scores every recipe against an explicit set of ingredient IDs
// the user selected. Manual mode is exploratory: there is no percentage
// floor, scoring is presence-only, and the missing list carries the
// recipe's full requirement rather than a deficit.
//
// Ordering favors richer overlap over sparse-recipe inflation: haveCount
// descending first, match percentage descending as the tie-break.
func MatchManual(recipes []models.Recipe, selected []int) []models.ManualMatch {
	chosen := make(map[int]struct{}, len(selected))
	for _, id := range selected {
		chosen[id] = struct{}{}
	}

	matches := make([]models.ManualMatch, 0, len(recipes))
	for i := range recipes {
		if match, ok := scoreManual(&recipes[i], chosen); ok {
			matches = append(matches, match)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].HaveCount != matches[j].HaveCount {
			return matches[i].HaveCount > matches[j].HaveCount
		}
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})

	return matches
}

func scoreManual(recipe *models.Recipe, chosen map[int]struct{}) (models.ManualMatch, bool) {
	required := recipe.NonStapleIngredients()
	if len(required) == 0 {
		return models.ManualMatch{}, false
	}

	have := 0
	missing := make([]models.MissingIngredient, 0)

	for _, link := range required {
		if _, ok := chosen[link.IngredientID]; ok {
			have++
			continue
		}
		missing = append(missing, models.MissingIngredient{
			IngredientID: link.IngredientID,
			Name:         link.Name,
			Amount:       link.Quantity,
			Unit:         link.Unit,
		})
	}

	return models.ManualMatch{
		RecipeID:        recipe.ID,
		RecipeName:      recipe.Name,
		MatchPercentage: int(math.Round(100 * float64(have) / float64(len(required)))),
		HaveCount:       have,
		TotalRequired:   len(required),
		Missing:         missing,
	}, true
}
