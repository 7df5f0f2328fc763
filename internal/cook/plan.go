// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

// Package cook computes the inventory deductions a cook applies. The plan
// is pure so it can be unit-tested without a database; the store runs it
// inside the cook transaction against rows read under that transaction.
package cook

import (
	"errors"
	"math"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

// ErrInvalidMultiplier is returned when the serving multiplier is not
// positive.
var ErrInvalidMultiplier = errors.New("cook: multiplier must be positive")

// Deduction is one inventory write the cook transaction will apply.
// Delete is set when the ingredient is fully consumed and the row should be
// removed instead of updated.
type Deduction struct {
	IngredientID int
	Unit         models.CanonicalUnit
	Needed       float64
	Held         float64
	NewQuantity  float64
	Delete       bool
}

// Plan walks a recipe's requirements against the inventory rows held for
// those ingredients and produces the deductions plus the skipped list.
//
// Skips are policy, not errors: staples are always skipped, as are
// ingredients with no matching inventory row or a unit differing from the
// requirement. Not every consumed ingredient needs to be tracked in stock.
func Plan(links []models.RecipeIngredientLink, held map[int]models.InventoryItem, multiplier float64) ([]Deduction, []models.SkippedIngredient, error) {
	if multiplier <= 0 {
		return nil, nil, ErrInvalidMultiplier
	}

	deductions := make([]Deduction, 0, len(links))
	skipped := make([]models.SkippedIngredient, 0)

	for _, link := range links {
		if link.IsStaple {
			skipped = append(skipped, skip(link, models.SkipStaple))
			continue
		}

		item, ok := held[link.IngredientID]
		if !ok {
			skipped = append(skipped, skip(link, models.SkipNoStock))
			continue
		}
		if item.Unit != link.Unit {
			skipped = append(skipped, skip(link, models.SkipUnitMismatch))
			continue
		}

		needed := link.Quantity * multiplier
		if link.Unit == models.UnitQty {
			// Countable items cannot be partially consumed in stock terms,
			// even though portion sizing displays half units.
			needed = math.Ceil(needed)
		}

		remaining := item.Quantity - needed
		deductions = append(deductions, Deduction{
			IngredientID: link.IngredientID,
			Unit:         link.Unit,
			Needed:       needed,
			Held:         item.Quantity,
			NewQuantity:  remaining,
			Delete:       remaining <= 0,
		})
	}

	return deductions, skipped, nil
}

func skip(link models.RecipeIngredientLink, reason models.SkipReason) models.SkippedIngredient {
	return models.SkippedIngredient{
		IngredientID: link.IngredientID,
		Name:         link.Name,
		Reason:       reason,
	}
}
