// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

package recommend

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

// Config controls sampling sizes and the deterministic random source.
type Config struct {
	// ColdSampleSize is the maximum number of recipes in a cold-start
	// sample. Default: 10.
	ColdSampleSize int

	// HistoryWindow is how many recent history entries feed the
	// ingredient-frequency table. Default: 20.
	HistoryWindow int

	// WarmLimit caps the warm-mode result. Default: 15.
	WarmLimit int

	// Seed seeds the random source used for cold sampling and warm
	// tie-breaks. Zero selects the default seed.
	Seed int64
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		ColdSampleSize: 10,
		HistoryWindow:  20,
		WarmLimit:      15,
		Seed:           42,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.ColdSampleSize <= 0 {
		return fmt.Errorf("cold sample size must be positive, got %d", c.ColdSampleSize)
	}
	if c.HistoryWindow <= 0 {
		return fmt.Errorf("history window must be positive, got %d", c.HistoryWindow)
	}
	if c.WarmLimit <= 0 {
		return fmt.Errorf("warm limit must be positive, got %d", c.WarmLimit)
	}
	return nil
}

// Engine suggests recipes from cooking history. It is safe for concurrent
// use; the shared random source is guarded by rngMu.
type Engine struct {
	cfg    Config
	logger zerolog.Logger

	rng   *rand.Rand
	rngMu sync.Mutex
}

// New creates a recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}

	return &Engine{
		cfg:    cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		rng:    rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for recommendation shuffling
	}, nil
}

// Recommend picks the cold or warm path based on whether the user has any
// history. The history slice must be ordered newest first; recipes must
// contain every recipe referenced by the history window plus all published
// candidates.
func (e *Engine) Recommend(history []models.MealHistoryEntry, recipes []models.Recipe) models.RecommendationResult {
	if len(history) == 0 {
		return e.coldStart(recipes)
	}
	return e.warm(history, recipes)
}

// coldStart returns an unordered random sample of published recipes.
func (e *Engine) coldStart(recipes []models.Recipe) models.RecommendationResult {
	published := make([]*models.Recipe, 0, len(recipes))
	for i := range recipes {
		if recipes[i].Published {
			published = append(published, &recipes[i])
		}
	}

	e.shuffle(len(published), func(i, j int) {
		published[i], published[j] = published[j], published[i]
	})

	limit := e.cfg.ColdSampleSize
	if limit > len(published) {
		limit = len(published)
	}

	out := make([]models.Recommendation, 0, limit)
	for _, r := range published[:limit] {
		out = append(out, models.Recommendation{RecipeID: r.ID, RecipeName: r.Name})
	}

	e.logger.Debug().Int("sampled", len(out)).Msg("cold-start sample served")

	return models.RecommendationResult{Mode: models.ModeCold, Recipes: out}
}

// warm scores candidates by ingredient co-occurrence with the user's
// recent history.
func (e *Engine) warm(history []models.MealHistoryEntry, recipes []models.Recipe) models.RecommendationResult {
	window := history
	if len(window) > e.cfg.HistoryWindow {
		window = window[:e.cfg.HistoryWindow]
	}

	byID := make(map[int]*models.Recipe, len(recipes))
	for i := range recipes {
		byID[recipes[i].ID] = &recipes[i]
	}

	cooked := make(map[int]struct{}, len(window))
	frequency := make(map[int]int)
	for _, entry := range window {
		if _, seen := cooked[entry.RecipeID]; seen {
			continue
		}
		cooked[entry.RecipeID] = struct{}{}

		recipe, ok := byID[entry.RecipeID]
		if !ok {
			continue
		}
		for _, link := range recipe.NonStapleIngredients() {
			frequency[link.IngredientID]++
		}
	}

	type scored struct {
		recipe     *models.Recipe
		totalScore int
		hitCount   int
	}

	candidates := make([]scored, 0, len(recipes))
	for i := range recipes {
		recipe := &recipes[i]
		if !recipe.Published {
			continue
		}
		if _, inWindow := cooked[recipe.ID]; inWindow {
			continue
		}

		var total, hits int
		for _, link := range recipe.NonStapleIngredients() {
			if f := frequency[link.IngredientID]; f > 0 {
				total += f
				hits++
			}
		}
		candidates = append(candidates, scored{recipe: recipe, totalScore: total, hitCount: hits})
	}

	// Seeded shuffle before the stable sort: equal (score, hits) pairs land
	// in reproducible random order.
	e.shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].totalScore != candidates[j].totalScore {
			return candidates[i].totalScore > candidates[j].totalScore
		}
		return candidates[i].hitCount > candidates[j].hitCount
	})

	limit := e.cfg.WarmLimit
	if limit > len(candidates) {
		limit = len(candidates)
	}

	out := make([]models.Recommendation, 0, limit)
	for _, c := range candidates[:limit] {
		out = append(out, models.Recommendation{
			RecipeID:   c.recipe.ID,
			RecipeName: c.recipe.Name,
			TotalScore: c.totalScore,
			HitCount:   c.hitCount,
		})
	}

	e.logger.Debug().
		Int("window", len(window)).
		Int("candidates", len(candidates)).
		Int("returned", len(out)).
		Msg("warm recommendations served")

	return models.RecommendationResult{Mode: models.ModeWarm, Recipes: out}
}

func (e *Engine) shuffle(n int, swap func(i, j int)) {
	e.rngMu.Lock()
	e.rng.Shuffle(n, swap)
	e.rngMu.Unlock()
}
