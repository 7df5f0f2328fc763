// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

package database

import (
	"context"
	"fmt"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/logging"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

// UpsertIngredient inserts or replaces a catalog ingredient.
func (db *DB) UpsertIngredient(ctx context.Context, ingredient *models.Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return err
	}

	query := `INSERT INTO ingredients (id, name, unit, category, calories_per_unit, is_staple)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			unit = excluded.unit,
			category = excluded.category,
			calories_per_unit = excluded.calories_per_unit,
			is_staple = excluded.is_staple`

	if _, err := db.conn.ExecContext(ctx, query,
		ingredient.ID, ingredient.Name, string(ingredient.Unit), string(ingredient.Category),
		ingredient.CaloriesPerUnit, ingredient.IsStaple); err != nil {
		return fmt.Errorf("failed to upsert ingredient %d: %w", ingredient.ID, err)
	}
	return nil
}

// ListIngredients returns the full ingredient catalog.
func (db *DB) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, unit, category, calories_per_unit, is_staple FROM ingredients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer closeQuietly(rows)

	var out []models.Ingredient
	for rows.Next() {
		var ing models.Ingredient
		var unit, category string
		if err := rows.Scan(&ing.ID, &ing.Name, &unit, &category, &ing.CaloriesPerUnit, &ing.IsStaple); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ing.Unit = models.CanonicalUnit(unit)
		ing.Category = models.UnitCategory(category)
		out = append(out, ing)
	}
	return out, rows.Err()
}

// InsertRecipe stores a recipe and its ingredient links atomically.
func (db *DB) InsertRecipe(ctx context.Context, recipe *models.Recipe) (err error) {
	if err = recipe.Validate(); err != nil {
		return err
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().Err(rbErr).AnErr("original_error", err).Msg("Recipe insert rollback failed")
			}
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO recipes (id, name, serving_count, prep_time_minutes, calories, published, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		recipe.ID, recipe.Name, recipe.ServingCount, recipe.PrepTimeMinutes,
		recipe.Calories, recipe.Published, recipe.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert recipe %d: %w", recipe.ID, err)
	}

	for position, link := range recipe.Ingredients {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit, position)
			VALUES (?, ?, ?, ?, ?)`,
			recipe.ID, link.IngredientID, link.Quantity, string(link.Unit), position); err != nil {
			return fmt.Errorf("failed to insert recipe ingredient %d/%d: %w", recipe.ID, link.IngredientID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recipe insert: %w", err)
	}
	return nil
}

// ListRecipes loads recipes with their ingredient links. With publishedOnly
// set only published recipes are returned; the engine's scorers always load
// that view.
func (db *DB) ListRecipes(ctx context.Context, publishedOnly bool) ([]models.Recipe, error) {
	query := `SELECT id, name, serving_count, prep_time_minutes, calories, published, created_at FROM recipes`
	if publishedOnly {
		query += ` WHERE published`
	}
	query += ` ORDER BY id`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer closeQuietly(rows)

	var recipes []models.Recipe
	index := make(map[int]int)
	for rows.Next() {
		var r models.Recipe
		if err := rows.Scan(&r.ID, &r.Name, &r.ServingCount, &r.PrepTimeMinutes,
			&r.Calories, &r.Published, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		index[r.ID] = len(recipes)
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.attachIngredientLinks(ctx, recipes, index); err != nil {
		return nil, err
	}
	return recipes, nil
}

// attachIngredientLinks loads every recipe_ingredients row joined with its
// ingredient metadata and distributes them onto the loaded recipes in link
// position order.
func (db *DB) attachIngredientLinks(ctx context.Context, recipes []models.Recipe, index map[int]int) error {
	if len(recipes) == 0 {
		return nil
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT ri.recipe_id, ri.ingredient_id, i.name, ri.quantity, ri.unit, i.is_staple
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		ORDER BY ri.recipe_id, ri.position`)
	if err != nil {
		return fmt.Errorf("failed to query recipe ingredients: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var link models.RecipeIngredientLink
		var unit string
		if err := rows.Scan(&link.RecipeID, &link.IngredientID, &link.Name,
			&link.Quantity, &unit, &link.IsStaple); err != nil {
			return fmt.Errorf("failed to scan recipe ingredient: %w", err)
		}
		link.Unit = models.CanonicalUnit(unit)

		if i, ok := index[link.RecipeID]; ok {
			recipes[i].Ingredients = append(recipes[i].Ingredients, link)
		}
	}
	return rows.Err()
}
