// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

package models

import "time"

// MissingIngredient annotates one ingredient a user lacks for a recipe.
// In stock mode Amount is the deficit (required minus held); in manual mode
// it is the recipe's full requirement, since the user declared no quantities.
type MissingIngredient struct {
	IngredientID int           `json:"ingredient_id"`
	Name         string        `json:"name"`
	Amount       float64       `json:"amount"`
	Unit         CanonicalUnit `json:"unit"`
}

// StockMatch is one ranked entry in an inventory-based match result.
type StockMatch struct {
	RecipeID        int                 `json:"recipe_id"`
	RecipeName      string              `json:"recipe_name"`
	MatchPercentage int                 `json:"match_percentage"`
	Missing         []MissingIngredient `json:"missing_ingredients"`
}

// ManualMatch is one ranked entry in a manual-selection match result.
// HaveCount counts the recipe's non-staple ingredients present in the
// user's selection; TotalRequired counts all of its non-staple ingredients.
type ManualMatch struct {
	RecipeID        int                 `json:"recipe_id"`
	RecipeName      string              `json:"recipe_name"`
	MatchPercentage int                 `json:"match_percentage"`
	HaveCount       int                 `json:"have_count"`
	TotalRequired   int                 `json:"total_required"`
	Missing         []MissingIngredient `json:"missing_ingredients"`
}

// RecommendationMode distinguishes the cold-start path from the
// history-driven warm path.
type RecommendationMode string

const (
	ModeCold RecommendationMode = "cold"
	ModeWarm RecommendationMode = "warm"
)

// Recommendation is one suggested recipe. TotalScore and HitCount are only
// populated in warm mode; cold-start samples carry neither.
type Recommendation struct {
	RecipeID   int    `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	TotalScore int    `json:"total_score,omitempty"`
	HitCount   int    `json:"hit_count,omitempty"`
}

// RecommendationResult is the full output of a recommendation request.
type RecommendationResult struct {
	Mode    RecommendationMode `json:"mode"`
	Recipes []Recommendation   `json:"recipes"`
}

// SkipReason explains why the cook transaction left an ingredient's stock
// untouched. Skips are engine policy, not failures.
type SkipReason string

const (
	SkipStaple       SkipReason = "staple"
	SkipNoStock      SkipReason = "no_stock"
	SkipUnitMismatch SkipReason = "unit_mismatch"
)

// SkippedIngredient reports one ingredient the cook transaction did not
// deduct, so callers can distinguish a fully applied cook from a partially
// applied one.
type SkippedIngredient struct {
	IngredientID int        `json:"ingredient_id"`
	Name         string     `json:"name"`
	Reason       SkipReason `json:"reason"`
}

// CookResult is the outcome of a committed cook transaction.
type CookResult struct {
	HistoryEntryID string              `json:"history_entry_id"`
	Skipped        []SkippedIngredient `json:"skipped_ingredients,omitempty"`
}

// TrendingRecipe is one entry in the Bayesian-weighted trending ranking.
type TrendingRecipe struct {
	RecipeID      int     `json:"recipe_id"`
	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
	WeightedScore float64 `json:"weighted_score"`
}

// RecipeListItem is the flat row shape the generic sorter operates on.
// Rating is a pointer because unrated recipes are sorted as zero, not
// dropped.
type RecipeListItem struct {
	RecipeID        int       `json:"recipe_id"`
	Name            string    `json:"name"`
	Rating          *float64  `json:"rating"`
	MatchPercentage int       `json:"match_percentage"`
	Calories        float64   `json:"calories"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}
