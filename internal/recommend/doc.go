// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

/*
Package recommend produces taste-based recipe suggestions from cooking
history.

Two modes are served:

  - Cold start: a user with no history gets a random sample of up to 10
    published recipes.
  - Warm: the engine builds an ingredient-frequency table over the user's
    most recent 20 cooked recipes and scores every candidate recipe not in
    that window by how often its non-staple ingredients co-occur with the
    user's habits. Candidates rank by total score, then hit count, then a
    seeded random tie-break, and the top 15 are returned.

This is content-based (ingredient co-occurrence) recommendation, not
collaborative filtering; it needs no trained model. The random source is
injected via the Seed config so results are reproducible: two engines with
the same seed and inputs produce identical output.
*/
package recommend
