// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

package database

import (
	"context"
	"fmt"
)

// createTables creates the engine's schema.
//
// inventory_items carries a PRIMARY KEY on (user_id, ingredient_id): the
// one-row-per-pair invariant is enforced by the store, not by callers.
func (db *DB) createTables(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ingredients (
			id INTEGER PRIMARY KEY,
			name VARCHAR NOT NULL,
			unit VARCHAR NOT NULL,
			category VARCHAR NOT NULL,
			calories_per_unit DOUBLE NOT NULL DEFAULT 0,
			is_staple BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS recipes (
			id INTEGER PRIMARY KEY,
			name VARCHAR NOT NULL,
			serving_count DOUBLE NOT NULL,
			prep_time_minutes INTEGER NOT NULL DEFAULT 0,
			calories DOUBLE NOT NULL DEFAULT 0,
			published BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS recipe_ingredients (
			recipe_id INTEGER NOT NULL,
			ingredient_id INTEGER NOT NULL,
			quantity DOUBLE NOT NULL,
			unit VARCHAR NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (recipe_id, ingredient_id)
		)`,
		`CREATE TABLE IF NOT EXISTS inventory_items (
			user_id INTEGER NOT NULL,
			ingredient_id INTEGER NOT NULL,
			quantity DOUBLE NOT NULL,
			unit VARCHAR NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, ingredient_id)
		)`,
		`CREATE TABLE IF NOT EXISTS meal_history (
			id VARCHAR PRIMARY KEY,
			user_id INTEGER NOT NULL,
			recipe_id INTEGER NOT NULL,
			cooked_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			recipe_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			rating DOUBLE NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// createIndexes creates query indexes. All statements are idempotent.
func (db *DB) createIndexes(ctx context.Context) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_recipe ON recipe_ingredients (recipe_id)`,
		`CREATE INDEX IF NOT EXISTS idx_inventory_user ON inventory_items (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_history_user_cooked ON meal_history (user_id, cooked_at)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_created ON reviews (created_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
