// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

// AddInventory adds quantity to a user's stock of an ingredient. The
// (user, ingredient) pair maps to exactly one row: adding an
// already-present ingredient increments the existing quantity instead of
// creating a duplicate.
func (db *DB) AddInventory(ctx context.Context, userID, ingredientID int, quantity float64, unit models.CanonicalUnit) error {
	if quantity < 0 {
		return fmt.Errorf("inventory quantity must not be negative, got %v", quantity)
	}
	if !unit.Valid() {
		return fmt.Errorf("invalid inventory unit %q", unit)
	}

	query := `INSERT INTO inventory_items (user_id, ingredient_id, quantity, unit, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, ingredient_id) DO UPDATE SET
			quantity = inventory_items.quantity + excluded.quantity,
			updated_at = excluded.updated_at`

	if _, err := db.conn.ExecContext(ctx, query, userID, ingredientID, quantity, string(unit), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to add inventory for user %d ingredient %d: %w", userID, ingredientID, err)
	}
	return nil
}

// GetInventory returns a user's full inventory snapshot.
func (db *DB) GetInventory(ctx context.Context, userID int) ([]models.InventoryItem, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT user_id, ingredient_id, quantity, unit, updated_at
		FROM inventory_items WHERE user_id = ? ORDER BY ingredient_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory for user %d: %w", userID, err)
	}
	defer closeQuietly(rows)

	var out []models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		var unit string
		if err := rows.Scan(&item.UserID, &item.IngredientID, &item.Quantity, &unit, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		item.Unit = models.CanonicalUnit(unit)
		out = append(out, item)
	}
	return out, rows.Err()
}
