// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

package trend

import (
	"sort"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

// SortKey selects the field and direction for SortRecipes.
type SortKey string

const (
	SortRatingHigh   SortKey = "rating_high"
	SortRatingLow    SortKey = "rating_low"
	SortMatchHigh    SortKey = "match_high"
	SortMatchLow     SortKey = "match_low"
	SortCaloriesHigh SortKey = "calories_high"
	SortCaloriesLow  SortKey = "calories_low"
	SortPrepTimeHigh SortKey = "prep_time_high"
	SortPrepTimeLow  SortKey = "prep_time_low"
	SortDateNewest   SortKey = "date_newest"
	SortDateOldest   SortKey = "date_oldest"
)

// SortRecipes stably sorts items in place by the given key. An unknown key
// falls back to the default ordering, newest first. A nil rating sorts as
// zero rather than dropping the recipe.
func SortRecipes(items []models.RecipeListItem, key SortKey) {
	less := lessFunc(key)
	sort.SliceStable(items, func(i, j int) bool {
		return less(&items[i], &items[j])
	})
}

func lessFunc(key SortKey) func(a, b *models.RecipeListItem) bool {
	switch key {
	case SortRatingHigh:
		return func(a, b *models.RecipeListItem) bool { return ratingOrZero(a) > ratingOrZero(b) }
	case SortRatingLow:
		return func(a, b *models.RecipeListItem) bool { return ratingOrZero(a) < ratingOrZero(b) }
	case SortMatchHigh:
		return func(a, b *models.RecipeListItem) bool { return a.MatchPercentage > b.MatchPercentage }
	case SortMatchLow:
		return func(a, b *models.RecipeListItem) bool { return a.MatchPercentage < b.MatchPercentage }
	case SortCaloriesHigh:
		return func(a, b *models.RecipeListItem) bool { return a.Calories > b.Calories }
	case SortCaloriesLow:
		return func(a, b *models.RecipeListItem) bool { return a.Calories < b.Calories }
	case SortPrepTimeHigh:
		return func(a, b *models.RecipeListItem) bool { return a.PrepTimeMinutes > b.PrepTimeMinutes }
	case SortPrepTimeLow:
		return func(a, b *models.RecipeListItem) bool { return a.PrepTimeMinutes < b.PrepTimeMinutes }
	case SortDateOldest:
		return func(a, b *models.RecipeListItem) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return func(a, b *models.RecipeListItem) bool { return a.CreatedAt.After(b.CreatedAt) }
	}
}

func ratingOrZero(item *models.RecipeListItem) float64 {
	if item.Rating == nil {
		return 0
	}
	return *item.Rating
}
