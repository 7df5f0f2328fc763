// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

package models

import "time"

// InventoryItem is one user's stock of one ingredient. The store enforces a
// single row per (user, ingredient) pair: adding an already-present
// ingredient increments Quantity rather than creating a duplicate row.
type InventoryItem struct {
	UserID       int           `json:"user_id"`
	IngredientID int           `json:"ingredient_id"`
	Quantity     float64       `json:"quantity"`
	Unit         CanonicalUnit `json:"unit"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// MealHistoryEntry records one cook of one recipe by one user. Entries are
// append-only and created exclusively by the cook transaction.
type MealHistoryEntry struct {
	ID       string    `json:"id"`
	UserID   int       `json:"user_id"`
	RecipeID int       `json:"recipe_id"`
	CookedAt time.Time `json:"cooked_at"`
}

// Review is a user rating of a recipe, consumed by the trend scorer.
type Review struct {
	RecipeID  int       `json:"recipe_id"`
	UserID    int       `json:"user_id"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
