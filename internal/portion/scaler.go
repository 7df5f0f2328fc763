// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

// Package portion scales recipe quantities between serving counts.
package portion

import (
	"errors"
	"math"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

var (
	// ErrInvalidServing is returned when a serving count is not positive.
	ErrInvalidServing = errors.New("portion: serving count must be positive")

	// ErrInvalidAmount is returned when the base amount is negative.
	ErrInvalidAmount = errors.New("portion: base amount must not be negative")
)

// Scale converts baseAmount, declared for baseServing servings, to the
// amount needed for targetServing servings.
//
// Countable (qty) amounts round up to the nearest half unit and a positive
// raw amount never scales to zero: a recipe that needs any amount of a
// countable ingredient still needs at least half a unit when scaled down.
// Weight and volume amounts round to one decimal place.
func Scale(baseAmount, baseServing, targetServing float64, unit models.CanonicalUnit) (float64, error) {
	if baseServing <= 0 || targetServing <= 0 {
		return 0, ErrInvalidServing
	}
	if baseAmount < 0 {
		return 0, ErrInvalidAmount
	}

	raw := baseAmount * (targetServing / baseServing)

	if unit == models.UnitQty {
		scaled := math.Ceil(raw*2) / 2
		if scaled == 0 && raw > 0 {
			scaled = 0.5
		}
		return scaled, nil
	}

	return math.Round(raw*10) / 10, nil
}
