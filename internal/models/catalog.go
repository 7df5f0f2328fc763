// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

package models

import (
	"fmt"
	"time"
)

// CanonicalUnit is the normalized unit family all quantities are converted
// into before comparison or arithmetic.
type CanonicalUnit string

const (
	UnitGram CanonicalUnit = "gram"
	UnitML   CanonicalUnit = "ml"
	UnitQty  CanonicalUnit = "qty"
)

// Valid reports whether u is one of the three canonical units.
func (u CanonicalUnit) Valid() bool {
	switch u {
	case UnitGram, UnitML, UnitQty:
		return true
	}
	return false
}

// UnitCategory classifies an ingredient's canonical unit.
type UnitCategory string

const (
	CategoryCount  UnitCategory = "count"
	CategoryWeight UnitCategory = "weight"
	CategoryVolume UnitCategory = "volume"
)

// CategoryForUnit returns the unit category an ingredient with the given
// canonical unit belongs to.
func CategoryForUnit(u CanonicalUnit) UnitCategory {
	switch u {
	case UnitGram:
		return CategoryWeight
	case UnitML:
		return CategoryVolume
	default:
		return CategoryCount
	}
}

// Ingredient is a catalog entry. Ingredients are created and edited by
// catalog management; the engine only reads them.
//
// Staples (salt, water, ...) are assumed always available and are excluded
// from every matching score and missing-ingredient report.
type Ingredient struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	Unit            CanonicalUnit `json:"unit"`
	Category        UnitCategory  `json:"category"`
	CaloriesPerUnit float64       `json:"calories_per_unit"`
	IsStaple        bool          `json:"is_staple"`
}

// Validate checks catalog invariants before an ingredient is persisted.
func (i *Ingredient) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("ingredient %d: name is required", i.ID)
	}
	if !i.Unit.Valid() {
		return fmt.Errorf("ingredient %q: invalid unit %q", i.Name, i.Unit)
	}
	if i.CaloriesPerUnit < 0 {
		return fmt.Errorf("ingredient %q: negative calories per unit", i.Name)
	}
	return nil
}

// RecipeIngredientLink ties a recipe to one required ingredient. Quantity is
// expressed relative to the owning recipe's declared serving count, in the
// ingredient's canonical unit.
type RecipeIngredientLink struct {
	RecipeID     int           `json:"recipe_id"`
	IngredientID int           `json:"ingredient_id"`
	Name         string        `json:"name"`
	Quantity     float64       `json:"quantity"`
	Unit         CanonicalUnit `json:"unit"`
	IsStaple     bool          `json:"is_staple"`
}

// Recipe is a published dish with its ordered ingredient requirements.
// Lifecycle status (draft, published, archived) is owned by catalog
// management; the engine only ever sees Published as a filter.
type Recipe struct {
	ID              int                    `json:"id"`
	Name            string                 `json:"name"`
	ServingCount    float64                `json:"serving_count"`
	PrepTimeMinutes int                    `json:"prep_time_minutes"`
	Calories        float64                `json:"calories"`
	Published       bool                   `json:"published"`
	CreatedAt       time.Time              `json:"created_at"`
	Ingredients     []RecipeIngredientLink `json:"ingredients"`
}

// Validate checks recipe invariants before a recipe is persisted.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("recipe %d: name is required", r.ID)
	}
	if r.ServingCount <= 0 {
		return fmt.Errorf("recipe %q: serving count must be positive", r.Name)
	}
	for _, link := range r.Ingredients {
		if link.Quantity < 0 {
			return fmt.Errorf("recipe %q: negative quantity for ingredient %d", r.Name, link.IngredientID)
		}
		if !link.Unit.Valid() {
			return fmt.Errorf("recipe %q: invalid unit %q for ingredient %d", r.Name, link.Unit, link.IngredientID)
		}
	}
	return nil
}

// NonStapleIngredients returns the recipe's ingredient links with staples
// filtered out. The result shares backing data with r.Ingredients.
func (r *Recipe) NonStapleIngredients() []RecipeIngredientLink {
	out := make([]RecipeIngredientLink, 0, len(r.Ingredients))
	for _, link := range r.Ingredients {
		if !link.IsStaple {
			out = append(out, link)
		}
	}
	return out
}
