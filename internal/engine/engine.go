// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

// Package engine ties the algorithm packages to the store and exposes the
// matching engine's operation surface: unit standardization, portion
// scaling, the two match modes, recommendations, the cook transaction and
// trend scoring.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/config"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/matching"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/metrics"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/portion"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/recommend"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/trend"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/units"
)

// Store is the persistence surface the engine needs. *database.DB satisfies
// it; tests substitute a fake.
type Store interface {
	ListRecipes(ctx context.Context, publishedOnly bool) ([]models.Recipe, error)
	GetInventory(ctx context.Context, userID int) ([]models.InventoryItem, error)
	RecentHistory(ctx context.Context, userID, limit int) ([]models.MealHistoryEntry, error)
	ListReviewsSince(ctx context.Context, since time.Time) ([]models.Review, error)
	Cook(ctx context.Context, userID, recipeID int, multiplier float64) (models.CookResult, error)
}

// Engine is the operation facade. Safe for concurrent use.
type Engine struct {
	store       Store
	recommender *recommend.Engine
	cfg         *config.Config
	logger      zerolog.Logger
}

// New wires an engine from its configuration and store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg *config.Config, store Store, logger zerolog.Logger) (*Engine, error) {
	recommender, err := recommend.New(recommend.Config{
		ColdSampleSize: cfg.Recommend.ColdSampleSize,
		HistoryWindow:  cfg.Recommend.HistoryWindow,
		WarmLimit:      cfg.Recommend.WarmLimit,
		Seed:           cfg.Recommend.Seed,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create recommender: %w", err)
	}

	return &Engine{
		store:       store,
		recommender: recommender,
		cfg:         cfg,
		logger:      logger.With().Str("component", "engine").Logger(),
	}, nil
}

// StandardizeIngredient converts a raw quantity string and unit alias into
// the canonical unit system.
func (e *Engine) StandardizeIngredient(rawQuantity, rawUnit string) (quantity float64, unit models.CanonicalUnit, err error) {
	defer func(start time.Time) {
		metrics.ObserveOperation("standardize", start, err)
	}(time.Now())

	return units.Standardize(rawQuantity, rawUnit)
}

// ScalePortion scales a per-recipe ingredient amount from the recipe's
// declared serving count to the requested serving count.
func (e *Engine) ScalePortion(baseAmount, baseServing, targetServing float64, unit models.CanonicalUnit) (scaled float64, err error) {
	defer func(start time.Time) {
		metrics.ObserveOperation("scale", start, err)
	}(time.Now())

	return portion.Scale(baseAmount, baseServing, targetServing, unit)
}

// MatchByStock scores every published recipe against the user's inventory
// and returns those at or above the configured match floor, best first.
func (e *Engine) MatchByStock(ctx context.Context, userID int) (matches []models.StockMatch, err error) {
	defer func(start time.Time) {
		metrics.ObserveOperation("match_stock", start, err)
	}(time.Now())

	recipes, err := e.store.ListRecipes(ctx, true)
	if err != nil {
		return nil, err
	}
	inventory, err := e.store.GetInventory(ctx, userID)
	if err != nil {
		return nil, err
	}

	matches = matching.MatchByStock(recipes, inventory, e.cfg.Matching.MinMatchPercent)
	metrics.RecipesScored.WithLabelValues("stock").Add(float64(len(recipes)))
	e.logger.Debug().
		Int("user_id", userID).
		Int("recipes", len(recipes)).
		Int("matches", len(matches)).
		Msg("Stock match scored")
	return matches, nil
}

// MatchManual scores every published recipe against an explicit ingredient
// selection, ignoring quantities and the match floor.
func (e *Engine) MatchManual(ctx context.Context, selected []int) (matches []models.ManualMatch, err error) {
	defer func(start time.Time) {
		metrics.ObserveOperation("match_manual", start, err)
	}(time.Now())

	recipes, err := e.store.ListRecipes(ctx, true)
	if err != nil {
		return nil, err
	}

	matches = matching.MatchManual(recipes, selected)
	metrics.RecipesScored.WithLabelValues("manual").Add(float64(len(recipes)))
	return matches, nil
}

// Recommend suggests recipes for the user: a random sample for users with
// no history, an ingredient-frequency ranking otherwise.
func (e *Engine) Recommend(ctx context.Context, userID int) (result models.RecommendationResult, err error) {
	defer func(start time.Time) {
		metrics.ObserveOperation("recommend", start, err)
	}(time.Now())

	history, err := e.store.RecentHistory(ctx, userID, e.cfg.Recommend.HistoryWindow)
	if err != nil {
		return result, err
	}
	recipes, err := e.store.ListRecipes(ctx, true)
	if err != nil {
		return result, err
	}

	result = e.recommender.Recommend(history, recipes)
	metrics.RecommendationsServed.WithLabelValues(string(result.Mode)).Inc()
	return result, nil
}

// Cook runs the atomic cook transaction for the user and recipe.
func (e *Engine) Cook(ctx context.Context, userID, recipeID int, multiplier float64) (models.CookResult, error) {
	return e.store.Cook(ctx, userID, recipeID, multiplier)
}

// Trending ranks recipes by Bayesian-weighted recent review scores, best
// first.
func (e *Engine) Trending(ctx context.Context, now time.Time) (ranking []models.TrendingRecipe, err error) {
	defer func(start time.Time) {
		metrics.ObserveOperation("trending", start, err)
	}(time.Now())

	windowDays := e.cfg.Trend.WindowDays
	since := now.AddDate(0, 0, -windowDays)
	reviews, err := e.store.ListReviewsSince(ctx, since)
	if err != nil {
		return nil, err
	}

	ranking = trend.Score(reviews, now, trend.Config{
		WindowDays:     windowDays,
		SmoothingCount: e.cfg.Trend.SmoothingCount,
		PriorMean:      e.cfg.Trend.PriorMean,
	})
	return ranking, nil
}

// SortRecipes orders a recipe list in place by the requested key. Sorting
// is stable and treats a missing rating as zero.
func (e *Engine) SortRecipes(items []models.RecipeListItem, key trend.SortKey) {
	trend.SortRecipes(items, key)
}
