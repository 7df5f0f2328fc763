// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

// Package units converts raw (quantity, unit) input into canonical
// (quantity, unit) pairs. All engine arithmetic happens downstream of this
// package, so every quantity the scorers and the cook transaction see is
// already in gram, ml or qty.
package units

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

var (
	// ErrMissingInput is returned when quantity or unit is absent or empty.
	ErrMissingInput = errors.New("units: quantity and unit are required")

	// ErrInvalidQuantity is returned when the quantity does not parse to a
	// finite number.
	ErrInvalidQuantity = errors.New("units: quantity is not a finite number")

	// ErrUnknownUnit is returned when the raw unit string is not in the
	// conversion table. Unknown units are never silently coerced.
	ErrUnknownUnit = errors.New("units: unknown unit")
)

// Conversion maps a raw unit alias to its canonical unit and multiplier.
type Conversion struct {
	Unit   models.CanonicalUnit
	Factor float64
}

// conversions is the case-insensitive alias table. Keys must be lowercase.
// "adet" is the Turkish word for a countable piece and is kept for catalog
// compatibility.
var conversions = map[string]Conversion{
	"kg":    {models.UnitGram, 1000},
	"g":     {models.UnitGram, 1},
	"gr":    {models.UnitGram, 1},
	"gram":  {models.UnitGram, 1},
	"l":     {models.UnitML, 1000},
	"lt":    {models.UnitML, 1000},
	"litre": {models.UnitML, 1000},
	"liter": {models.UnitML, 1000},
	"ml":    {models.UnitML, 1},
	"adet":  {models.UnitQty, 1},
	"count": {models.UnitQty, 1},
	"piece": {models.UnitQty, 1},
	"qty":   {models.UnitQty, 1},
}

// Resolve looks up the conversion for a raw unit string.
func Resolve(rawUnit string) (Conversion, error) {
	key := strings.ToLower(strings.TrimSpace(rawUnit))
	if key == "" {
		return Conversion{}, ErrMissingInput
	}
	conv, ok := conversions[key]
	if !ok {
		return Conversion{}, ErrUnknownUnit
	}
	return conv, nil
}

// Standardize parses a raw quantity string and converts it into its
// canonical unit. Decimal quantities may use either "." or "," as the
// fractional separator. The result is rounded to 2 decimal places after the
// conversion so the multiplier never compounds rounding error.
func Standardize(rawQuantity, rawUnit string) (float64, models.CanonicalUnit, error) {
	trimmed := strings.TrimSpace(rawQuantity)
	if trimmed == "" || strings.TrimSpace(rawUnit) == "" {
		return 0, "", ErrMissingInput
	}

	normalized := strings.ReplaceAll(trimmed, ",", ".")
	quantity, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, "", ErrInvalidQuantity
	}

	return StandardizeValue(quantity, rawUnit)
}

// StandardizeValue converts an already-numeric quantity into its canonical
// unit. It shares the alias table and rounding rules with Standardize.
func StandardizeValue(quantity float64, rawUnit string) (float64, models.CanonicalUnit, error) {
	if strings.TrimSpace(rawUnit) == "" {
		return 0, "", ErrMissingInput
	}
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return 0, "", ErrInvalidQuantity
	}

	conv, err := Resolve(rawUnit)
	if err != nil {
		return 0, "", err
	}

	return round2(quantity * conv.Factor), conv.Unit, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
