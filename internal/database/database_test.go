// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

package database

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/config"
	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(&config.DatabaseConfig{
		Path:         ":memory:",
		Threads:      1,
		MaxMemory:    "256MB",
		QueryTimeout: 10 * time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return db
}

func seedCatalog(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()

	ingredients := []models.Ingredient{
		{ID: 1, Name: "chicken", Unit: models.UnitGram, Category: models.CategoryWeight, CaloriesPerUnit: 2.39},
		{ID: 2, Name: "milk", Unit: models.UnitML, Category: models.CategoryVolume, CaloriesPerUnit: 0.42},
		{ID: 3, Name: "egg", Unit: models.UnitQty, Category: models.CategoryCount, CaloriesPerUnit: 78},
		{ID: 4, Name: "salt", Unit: models.UnitGram, Category: models.CategoryWeight, IsStaple: true},
	}
	for i := range ingredients {
		if err := db.UpsertIngredient(ctx, &ingredients[i]); err != nil {
			t.Fatalf("Failed to seed ingredient %d: %v", ingredients[i].ID, err)
		}
	}

	recipe := models.Recipe{
		ID:           10,
		Name:         "omelette",
		ServingCount: 2,
		Published:    true,
		CreatedAt:    time.Now().UTC(),
		Ingredients: []models.RecipeIngredientLink{
			{IngredientID: 1, Quantity: 100, Unit: models.UnitGram},
			{IngredientID: 3, Quantity: 1.5, Unit: models.UnitQty},
			{IngredientID: 4, Quantity: 2, Unit: models.UnitGram},
		},
	}
	if err := db.InsertRecipe(ctx, &recipe); err != nil {
		t.Fatalf("Failed to seed recipe: %v", err)
	}
}

func TestAddInventoryIncrementsExistingRow(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()

	if err := db.AddInventory(ctx, 7, 1, 200, models.UnitGram); err != nil {
		t.Fatalf("First add failed: %v", err)
	}
	if err := db.AddInventory(ctx, 7, 1, 300, models.UnitGram); err != nil {
		t.Fatalf("Second add failed: %v", err)
	}

	items, err := db.GetInventory(ctx, 7)
	if err != nil {
		t.Fatalf("GetInventory failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected one inventory row, got %d", len(items))
	}
	if items[0].Quantity != 500 {
		t.Errorf("Expected quantity 500 after increment, got %v", items[0].Quantity)
	}
}

func TestAddInventoryRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.AddInventory(ctx, 7, 1, -5, models.UnitGram); err == nil {
		t.Error("Expected error for negative quantity")
	}
	if err := db.AddInventory(ctx, 7, 1, 5, models.CanonicalUnit("cups")); err == nil {
		t.Error("Expected error for invalid unit")
	}
}

func TestListRecipesAttachesLinks(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	recipes, err := db.ListRecipes(context.Background(), true)
	if err != nil {
		t.Fatalf("ListRecipes failed: %v", err)
	}
	if len(recipes) != 1 {
		t.Fatalf("Expected 1 published recipe, got %d", len(recipes))
	}

	links := recipes[0].Ingredients
	if len(links) != 3 {
		t.Fatalf("Expected 3 ingredient links, got %d", len(links))
	}
	if links[0].Name != "chicken" || links[0].IsStaple {
		t.Errorf("Unexpected first link: %+v", links[0])
	}
	if !links[2].IsStaple {
		t.Error("Expected salt link to carry staple flag from the catalog")
	}
}

func TestCookDeductsStockAndRecordsHistory(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()

	if err := db.AddInventory(ctx, 7, 1, 500, models.UnitGram); err != nil {
		t.Fatalf("Failed to seed inventory: %v", err)
	}
	if err := db.AddInventory(ctx, 7, 3, 6, models.UnitQty); err != nil {
		t.Fatalf("Failed to seed inventory: %v", err)
	}

	result, err := db.Cook(ctx, 7, 10, 2)
	if err != nil {
		t.Fatalf("Cook failed: %v", err)
	}
	if result.HistoryEntryID == "" {
		t.Error("Expected a history entry ID")
	}

	items, err := db.GetInventory(ctx, 7)
	if err != nil {
		t.Fatalf("GetInventory failed: %v", err)
	}
	byIngredient := make(map[int]float64, len(items))
	for _, item := range items {
		byIngredient[item.IngredientID] = item.Quantity
	}
	if got := byIngredient[1]; got != 300 {
		t.Errorf("Expected 300g chicken after cook, got %v", got)
	}
	// 1.5 qty per declared serving, multiplier 2 -> 3.0, ceil stays 3.
	if got := byIngredient[3]; got != 3 {
		t.Errorf("Expected 3 eggs after cook, got %v", got)
	}

	if len(result.Skipped) != 1 || result.Skipped[0].Reason != models.SkipStaple {
		t.Errorf("Expected exactly the staple skip, got %+v", result.Skipped)
	}

	history, err := db.RecentHistory(ctx, 7, 20)
	if err != nil {
		t.Fatalf("RecentHistory failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("Expected exactly one history entry, got %d", len(history))
	}
	if history[0].ID != result.HistoryEntryID || history[0].RecipeID != 10 {
		t.Errorf("History entry mismatch: %+v", history[0])
	}
}

func TestCookCeilsCountableDeduction(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()

	if err := db.AddInventory(ctx, 7, 3, 6, models.UnitQty); err != nil {
		t.Fatalf("Failed to seed inventory: %v", err)
	}

	// Multiplier 1 needs 1.5 eggs; stock deduction rounds up to 2 whole
	// units.
	if _, err := db.Cook(ctx, 7, 10, 1); err != nil {
		t.Fatalf("Cook failed: %v", err)
	}

	items, err := db.GetInventory(ctx, 7)
	if err != nil {
		t.Fatalf("GetInventory failed: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 4 {
		t.Errorf("Expected 4 eggs remaining, got %+v", items)
	}
}

func TestCookDeletesDepletedRows(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()

	if err := db.AddInventory(ctx, 7, 1, 200, models.UnitGram); err != nil {
		t.Fatalf("Failed to seed inventory: %v", err)
	}

	if _, err := db.Cook(ctx, 7, 10, 2); err != nil {
		t.Fatalf("Cook failed: %v", err)
	}

	items, err := db.GetInventory(ctx, 7)
	if err != nil {
		t.Fatalf("GetInventory failed: %v", err)
	}
	for _, item := range items {
		if item.IngredientID == 1 {
			t.Errorf("Expected depleted chicken row to be deleted, found quantity %v", item.Quantity)
		}
	}
}

func TestCookUnknownRecipeLeavesStateUntouched(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()

	if err := db.AddInventory(ctx, 7, 1, 500, models.UnitGram); err != nil {
		t.Fatalf("Failed to seed inventory: %v", err)
	}

	_, err := db.Cook(ctx, 7, 999, 1)
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Fatalf("Expected ErrRecipeNotFound, got %v", err)
	}

	items, err := db.GetInventory(ctx, 7)
	if err != nil {
		t.Fatalf("GetInventory failed: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 500 {
		t.Errorf("Expected stock untouched at 500, got %+v", items)
	}

	history, err := db.RecentHistory(ctx, 7, 20)
	if err != nil {
		t.Fatalf("RecentHistory failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("Expected no history entries after failed cook, got %d", len(history))
	}
}

func TestCookRejectsInvalidMultiplier(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	for _, multiplier := range []float64{0, -1, math.Inf(-1)} {
		if _, err := db.Cook(context.Background(), 7, 10, multiplier); err == nil {
			t.Errorf("Expected error for multiplier %v", multiplier)
		}
	}
}

func TestRecentHistoryOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		if _, err := db.conn.ExecContext(ctx,
			`INSERT INTO meal_history (id, user_id, recipe_id, cooked_at) VALUES (?, ?, ?, ?)`,
			string(rune('a'+i)), 7, 10, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("Failed to seed history: %v", err)
		}
	}

	history, err := db.RecentHistory(ctx, 7, 2)
	if err != nil {
		t.Fatalf("RecentHistory failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected limit of 2 entries, got %d", len(history))
	}
	if history[0].ID != "c" || history[1].ID != "b" {
		t.Errorf("Expected newest-first order c,b, got %s,%s", history[0].ID, history[1].ID)
	}
}

func TestReviewsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()

	now := time.Now().UTC()
	reviews := []models.Review{
		{RecipeID: 10, UserID: 1, Rating: 5, CreatedAt: now.Add(-20 * 24 * time.Hour)},
		{RecipeID: 10, UserID: 2, Rating: 4, CreatedAt: now.Add(-time.Hour)},
	}
	for _, r := range reviews {
		if err := db.InsertReview(ctx, r); err != nil {
			t.Fatalf("InsertReview failed: %v", err)
		}
	}

	recent, err := db.ListReviewsSince(ctx, now.Add(-14*24*time.Hour))
	if err != nil {
		t.Fatalf("ListReviewsSince failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("Expected 1 review inside window, got %d", len(recent))
	}
	if recent[0].UserID != 2 || recent[0].Rating != 4 {
		t.Errorf("Unexpected review: %+v", recent[0])
	}

	if err := db.InsertReview(ctx, models.Review{RecipeID: 10, UserID: 3, Rating: 9}); err == nil {
		t.Error("Expected error for out-of-range rating")
	}
}
