// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

// Package metrics provides Prometheus instrumentation for the matching
// engine: operation latency, cook transaction outcomes (including the
// silent-skip policy, so partially applied cooks are observable), and
// recommendation mode counts.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationDuration tracks engine operation latency by operation name
	// (standardize, scale, match_stock, match_manual, recommend, cook,
	// trending).
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "engine_operation_duration_seconds",
			Help:    "Duration of engine operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// OperationErrors counts failed engine operations by operation name.
	OperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_operation_errors_total",
			Help: "Total number of failed engine operations",
		},
		[]string{"operation"},
	)

	// CookCommits counts committed cook transactions.
	CookCommits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_cook_commits_total",
			Help: "Total number of committed cook transactions",
		},
	)

	// CookRollbacks counts cook transactions that rolled back.
	CookRollbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engine_cook_rollbacks_total",
			Help: "Total number of rolled-back cook transactions",
		},
	)

	// CookSkippedIngredients counts ingredients the cook transaction left
	// untouched, by skip reason (staple, no_stock, unit_mismatch).
	CookSkippedIngredients = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_cook_skipped_ingredients_total",
			Help: "Total number of ingredients skipped during cook transactions",
		},
		[]string{"reason"},
	)

	// RecommendationsServed counts recommendation responses by mode
	// (cold, warm).
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_recommendations_served_total",
			Help: "Total number of recommendation responses by mode",
		},
		[]string{"mode"},
	)

	// RecipesScored counts recipes evaluated by the match scorers.
	RecipesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_recipes_scored_total",
			Help: "Total number of recipes evaluated by the match scorers",
		},
		[]string{"mode"},
	)
)

// ObserveOperation records one engine operation's duration and outcome.
func ObserveOperation(operation string, start time.Time, err error) {
	OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		OperationErrors.WithLabelValues(operation).Inc()
	}
}
