// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

/*
Package models defines the data structures shared by the matching engine.

This package contains the catalog entities (Ingredient, Recipe,
RecipeIngredientLink), the per-user state (InventoryItem, MealHistoryEntry,
Review) and the plain result structures the engine hands back to its callers
(StockMatch, ManualMatch, RecommendationResult, CookResult, TrendingRecipe).
It is the single source of truth for these definitions; no other package
declares engine-visible types.

Quantities are always expressed in one of the three canonical units (gram,
ml, qty) after passing through the units package. Staple ingredients carry
IsStaple=true and are excluded from every matching denominator because they
are assumed always available.
*/
package models
