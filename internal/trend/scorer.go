// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

// Package trend ranks recipes by review momentum and provides the generic
// multi-key sorter used by presentation callers.
package trend

import (
	"sort"
	"time"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

// Config holds the Bayesian smoothing parameters for trend scoring.
type Config struct {
	// WindowDays bounds the review window. Default: 14.
	WindowDays int

	// SmoothingCount is m, the smoothing constant. Default: 2.
	SmoothingCount float64

	// PriorMean is C, the prior mean rating. Default: 3.5.
	PriorMean float64
}

// DefaultConfig returns the production trend parameters.
func DefaultConfig() Config {
	return Config{
		WindowDays:     14,
		SmoothingCount: 2,
		PriorMean:      3.5,
	}
}

// Score computes the Bayesian-weighted trending score per recipe over the
// configured window ending at now:
//
//	weighted = (v/(v+m))*R + (m/(v+m))*C
//
// where v is the in-window review count and R the raw in-window average.
// Recipes with no in-window reviews are excluded before ranking. Results
// are ordered by weighted score descending.
func Score(reviews []models.Review, now time.Time, cfg Config) []models.TrendingRecipe {
	cutoff := now.AddDate(0, 0, -cfg.WindowDays)

	counts := make(map[int]int)
	sums := make(map[int]float64)
	for _, review := range reviews {
		if review.CreatedAt.Before(cutoff) || review.CreatedAt.After(now) {
			continue
		}
		counts[review.RecipeID]++
		sums[review.RecipeID] += review.Rating
	}

	out := make([]models.TrendingRecipe, 0, len(counts))
	for recipeID, v := range counts {
		avg := sums[recipeID] / float64(v)
		vf := float64(v)
		weighted := (vf/(vf+cfg.SmoothingCount))*avg + (cfg.SmoothingCount/(vf+cfg.SmoothingCount))*cfg.PriorMean

		out = append(out, models.TrendingRecipe{
			RecipeID:      recipeID,
			ReviewCount:   v,
			AverageRating: avg,
			WeightedScore: weighted,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WeightedScore != out[j].WeightedScore {
			return out[i].WeightedScore > out[j].WeightedScore
		}
		return out[i].RecipeID < out[j].RecipeID
	})

	return out
}
