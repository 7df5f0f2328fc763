// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

// Package main is the entry point for the matching engine CLI.
//
// The binary runs one engine operation per invocation and prints the result
// as JSON on stdout. Components initialize in order:
//
//  1. Configuration: layered defaults, config.yaml, RECIPE_* environment
//     variables (Koanf v2)
//  2. Logging: global zerolog logger from the logging section
//  3. Database: embedded DuckDB store
//  4. Engine: the operation facade over the store
//
// # Operations
//
//	engine -op standardize -quantity 1,5 -unit kg
//	engine -op scale -amount 100 -base-serving 3 -target-serving 1 -scale-unit gram
//	engine -op stock -user 7
//	engine -op manual -ingredients 1,2,5
//	engine -op recommend -user 7
//	engine -op cook -user 7 -recipe 10 -multiplier 2
//	engine -op trending
//
// # Configuration
//
// Every config key maps to a RECIPE_ environment variable, for example:
//
//	export RECIPE_DATABASE_PATH=/var/lib/smart-recipe/engine.db
//	export RECIPE_LOGGING_LEVEL=debug
//	export RECIPE_MATCHING_MIN_MATCH_PERCENT=30
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/config"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/database"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/engine"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/logging"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

func main() {
	var (
		op            = flag.String("op", "", "operation: standardize, scale, stock, manual, recommend, cook, trending")
		quantity      = flag.String("quantity", "", "raw quantity string for standardize (comma or period decimals)")
		unit          = flag.String("unit", "", "raw unit alias for standardize")
		amount        = flag.Float64("amount", 0, "base ingredient amount for scale")
		baseServing   = flag.Float64("base-serving", 0, "recipe's declared serving count for scale")
		targetServing = flag.Float64("target-serving", 0, "requested serving count for scale")
		scaleUnit     = flag.String("scale-unit", "gram", "canonical unit for scale: gram, ml or qty")
		user          = flag.Int("user", 0, "user ID for stock, recommend and cook")
		recipe        = flag.Int("recipe", 0, "recipe ID for cook")
		multiplier    = flag.Float64("multiplier", 1, "serving multiplier for cook")
		ingredients   = flag.String("ingredients", "", "comma-separated ingredient IDs for manual")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if err := run(cfg, *op, runArgs{
		quantity:      *quantity,
		unit:          *unit,
		amount:        *amount,
		baseServing:   *baseServing,
		targetServing: *targetServing,
		scaleUnit:     *scaleUnit,
		user:          *user,
		recipe:        *recipe,
		multiplier:    *multiplier,
		ingredients:   *ingredients,
	}); err != nil {
		logging.Fatal().Err(err).Str("operation", *op).Msg("Operation failed")
	}
}

type runArgs struct {
	quantity      string
	unit          string
	amount        float64
	baseServing   float64
	targetServing float64
	scaleUnit     string
	user          int
	recipe        int
	multiplier    float64
	ingredients   string
}

func run(cfg *config.Config, op string, args runArgs) error {
	// standardize and scale are pure; skip the store for them.
	switch op {
	case "standardize":
		return runPure(cfg, func(eng *engine.Engine) (any, error) {
			value, canonical, err := eng.StandardizeIngredient(args.quantity, args.unit)
			if err != nil {
				return nil, err
			}
			return map[string]any{"quantity": value, "unit": canonical}, nil
		})
	case "scale":
		return runPure(cfg, func(eng *engine.Engine) (any, error) {
			scaled, err := eng.ScalePortion(args.amount, args.baseServing, args.targetServing,
				canonicalUnit(args.scaleUnit))
			if err != nil {
				return nil, err
			}
			return map[string]any{"amount": scaled, "unit": args.scaleUnit}, nil
		})
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	eng, err := engine.New(cfg, db, logging.Logger())
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.QueryTimeout)
	defer cancel()

	switch op {
	case "stock":
		matches, err := eng.MatchByStock(ctx, args.user)
		if err != nil {
			return err
		}
		return printJSON(matches)
	case "manual":
		ids, err := parseIDs(args.ingredients)
		if err != nil {
			return err
		}
		matches, err := eng.MatchManual(ctx, ids)
		if err != nil {
			return err
		}
		return printJSON(matches)
	case "recommend":
		result, err := eng.Recommend(ctx, args.user)
		if err != nil {
			return err
		}
		return printJSON(result)
	case "cook":
		result, err := eng.Cook(ctx, args.user, args.recipe, args.multiplier)
		if err != nil {
			return err
		}
		return printJSON(result)
	case "trending":
		ranking, err := eng.Trending(ctx, time.Now().UTC())
		if err != nil {
			return err
		}
		return printJSON(ranking)
	case "":
		return fmt.Errorf("missing -op flag")
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}

// runPure runs a storeless operation against an engine wired to a nil
// store. Only standardize and scale take this path; neither touches it.
func runPure(cfg *config.Config, fn func(*engine.Engine) (any, error)) error {
	eng, err := engine.New(cfg, nil, logging.Logger())
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	out, err := fn(eng)
	if err != nil {
		return err
	}
	return printJSON(out)
}

func canonicalUnit(s string) models.CanonicalUnit {
	return models.CanonicalUnit(strings.ToLower(strings.TrimSpace(s)))
}

func parseIDs(list string) ([]int, error) {
	if strings.TrimSpace(list) == "" {
		return nil, fmt.Errorf("manual matching requires -ingredients")
	}
	parts := strings.Split(list, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid ingredient ID %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
