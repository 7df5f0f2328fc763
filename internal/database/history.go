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

// RecentHistory returns the user's most recent meal history entries,
// newest first, up to limit. A limit of 0 or less returns an empty slice.
func (db *DB) RecentHistory(ctx context.Context, userID, limit int) ([]models.MealHistoryEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, recipe_id, cooked_at
		FROM meal_history WHERE user_id = ?
		ORDER BY cooked_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal history for user %d: %w", userID, err)
	}
	defer closeQuietly(rows)

	var out []models.MealHistoryEntry
	for rows.Next() {
		var entry models.MealHistoryEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.RecipeID, &entry.CookedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal history entry: %w", err)
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// InsertReview records a user's rating of a recipe.
func (db *DB) InsertReview(ctx context.Context, review models.Review) error {
	if review.Rating < 0 || review.Rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5, got %v", review.Rating)
	}
	createdAt := review.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO reviews (recipe_id, user_id, rating, created_at) VALUES (?, ?, ?, ?)`,
		review.RecipeID, review.UserID, review.Rating, createdAt)
	if err != nil {
		return fmt.Errorf("failed to insert review for recipe %d: %w", review.RecipeID, err)
	}
	return nil
}

// ListReviewsSince returns all reviews created at or after since.
func (db *DB) ListReviewsSince(ctx context.Context, since time.Time) ([]models.Review, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT recipe_id, user_id, rating, created_at
		FROM reviews WHERE created_at >= ? ORDER BY created_at`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer closeQuietly(rows)

	var out []models.Review
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(&review.RecipeID, &review.UserID, &review.Rating, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		out = append(out, review)
	}
	return out, rows.Err()
}
