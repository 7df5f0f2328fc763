// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/cook"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/logging"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/metrics"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

// ErrRecipeNotFound is returned by Cook when the recipe does not exist.
var ErrRecipeNotFound = errors.New("database: recipe not found")

// ErrConcurrentModification is returned when an inventory row changed
// between the transaction's read and its write. The deduction statements
// carry an optimistic quantity check; a concurrent writer makes the
// affected-row count zero and the whole cook rolls back.
var ErrConcurrentModification = errors.New("database: inventory modified concurrently")

// Cook atomically consumes a recipe's ingredients from a user's inventory
// and records a meal history entry. Stock deductions and the history insert
// commit together or not at all.
//
// Staple ingredients, ingredients with no inventory row, and ingredients
// whose stock unit differs from the requirement are skipped silently; the
// returned result lists them with their reasons.
func (db *DB) Cook(ctx context.Context, userID, recipeID int, multiplier float64) (result models.CookResult, err error) {
	defer func(start time.Time) {
		metrics.ObserveOperation("cook", start, err)
	}(time.Now())

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin cook transaction: %w", err)
	}
	defer func() {
		if err != nil {
			metrics.CookRollbacks.Inc()
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().Err(rbErr).AnErr("original_error", err).Msg("Cook rollback failed")
			}
		}
	}()

	links, err := db.recipeLinksTx(ctx, tx, recipeID)
	if err != nil {
		return result, err
	}

	held, err := db.inventoryForTx(ctx, tx, userID, links)
	if err != nil {
		return result, err
	}

	deductions, skipped, err := cook.Plan(links, held, multiplier)
	if err != nil {
		return result, err
	}

	for _, d := range deductions {
		if err = db.applyDeduction(ctx, tx, userID, d); err != nil {
			return result, err
		}
	}

	entryID := uuid.NewString()
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO meal_history (id, user_id, recipe_id, cooked_at) VALUES (?, ?, ?, ?)`,
		entryID, userID, recipeID, time.Now().UTC()); err != nil {
		return result, fmt.Errorf("failed to insert meal history entry: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return result, fmt.Errorf("failed to commit cook transaction: %w", err)
	}

	metrics.CookCommits.Inc()
	for _, s := range skipped {
		metrics.CookSkippedIngredients.WithLabelValues(string(s.Reason)).Inc()
	}
	logging.Debug().
		Int("user_id", userID).
		Int("recipe_id", recipeID).
		Float64("multiplier", multiplier).
		Int("deductions", len(deductions)).
		Int("skipped", len(skipped)).
		Msg("Cook committed")

	result.HistoryEntryID = entryID
	result.Skipped = skipped
	return result, nil
}

// recipeLinksTx loads a recipe's ingredient links inside the cook
// transaction, so the plan runs against the same snapshot the writes see.
func (db *DB) recipeLinksTx(ctx context.Context, tx *sql.Tx, recipeID int) ([]models.RecipeIngredientLink, error) {
	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM recipes WHERE id = ?)`, recipeID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check recipe %d: %w", recipeID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %d", ErrRecipeNotFound, recipeID)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT ri.recipe_id, ri.ingredient_id, i.name, ri.quantity, ri.unit, i.is_staple
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = ?
		ORDER BY ri.position`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe %d ingredients: %w", recipeID, err)
	}
	defer closeQuietly(rows)

	var links []models.RecipeIngredientLink
	for rows.Next() {
		var link models.RecipeIngredientLink
		var unit string
		if err := rows.Scan(&link.RecipeID, &link.IngredientID, &link.Name,
			&link.Quantity, &unit, &link.IsStaple); err != nil {
			return nil, fmt.Errorf("failed to scan recipe ingredient: %w", err)
		}
		link.Unit = models.CanonicalUnit(unit)
		links = append(links, link)
	}
	return links, rows.Err()
}

// inventoryForTx reads the user's inventory rows for the linked ingredients
// inside the cook transaction.
func (db *DB) inventoryForTx(ctx context.Context, tx *sql.Tx, userID int, links []models.RecipeIngredientLink) (map[int]models.InventoryItem, error) {
	held := make(map[int]models.InventoryItem, len(links))
	for _, link := range links {
		if link.IsStaple {
			continue
		}
		var item models.InventoryItem
		var unit string
		err := tx.QueryRowContext(ctx,
			`SELECT user_id, ingredient_id, quantity, unit, updated_at
			FROM inventory_items WHERE user_id = ? AND ingredient_id = ?`,
			userID, link.IngredientID).Scan(&item.UserID, &item.IngredientID, &item.Quantity, &unit, &item.UpdatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read inventory for ingredient %d: %w", link.IngredientID, err)
		}
		item.Unit = models.CanonicalUnit(unit)
		held[item.IngredientID] = item
	}
	return held, nil
}

// applyDeduction writes one planned deduction. Both statements carry the
// quantity the plan read; zero affected rows means a concurrent writer got
// there first and the transaction must roll back.
func (db *DB) applyDeduction(ctx context.Context, tx *sql.Tx, userID int, d cook.Deduction) error {
	var res sql.Result
	var err error
	if d.Delete {
		res, err = tx.ExecContext(ctx,
			`DELETE FROM inventory_items
			WHERE user_id = ? AND ingredient_id = ? AND quantity = ?`,
			userID, d.IngredientID, d.Held)
	} else {
		res, err = tx.ExecContext(ctx,
			`UPDATE inventory_items SET quantity = ?, updated_at = ?
			WHERE user_id = ? AND ingredient_id = ? AND quantity = ?`,
			d.NewQuantity, time.Now().UTC(), userID, d.IngredientID, d.Held)
	}
	if err != nil {
		return fmt.Errorf("failed to deduct ingredient %d: %w", d.IngredientID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for ingredient %d: %w", d.IngredientID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: ingredient %d", ErrConcurrentModification, d.IngredientID)
	}
	return nil
}
