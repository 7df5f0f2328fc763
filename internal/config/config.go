// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

// Package config loads and validates engine configuration from layered
// sources: built-in defaults, an optional YAML file, then environment
// variables.
package config

import (
	"fmt"
	"time"
)

// Config is the top-level engine configuration.
type Config struct {
	Logging   LoggingConfig   `koanf:"logging"`
	Database  DatabaseConfig  `koanf:"database"`
	Matching  MatchingConfig  `koanf:"matching"`
	Recommend RecommendConfig `koanf:"recommend"`
	Trend     TrendConfig     `koanf:"trend"`
}

// LoggingConfig controls the global zerolog logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DatabaseConfig controls the DuckDB store.
type DatabaseConfig struct {
	// Path is the database file path, or ":memory:" for an in-memory store.
	Path string `koanf:"path"`

	// Threads limits DuckDB worker threads; 0 uses all CPUs.
	Threads int `koanf:"threads"`

	// MaxMemory is DuckDB's memory cap, e.g. "1GB".
	MaxMemory string `koanf:"max_memory"`

	// QueryTimeout bounds individual store operations.
	QueryTimeout time.Duration `koanf:"query_timeout"`
}

// MatchingConfig controls the stock match scorer.
type MatchingConfig struct {
	// MinMatchPercent is the stock-mode result floor. Manual mode ignores
	// it.
	MinMatchPercent int `koanf:"min_match_percent"`
}

// RecommendConfig controls the recommendation engine.
type RecommendConfig struct {
	ColdSampleSize int   `koanf:"cold_sample_size"`
	HistoryWindow  int   `koanf:"history_window"`
	WarmLimit      int   `koanf:"warm_limit"`
	Seed           int64 `koanf:"seed"`
}

// TrendConfig controls the Bayesian trend scorer.
type TrendConfig struct {
	WindowDays     int     `koanf:"window_days"`
	SmoothingCount float64 `koanf:"smoothing_count"`
	PriorMean      float64 `koanf:"prior_mean"`
}

// defaultConfig returns a Config with all production defaults. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Database: DatabaseConfig{
			Path:         "data/recipes.db",
			Threads:      0,
			MaxMemory:    "1GB",
			QueryTimeout: 30 * time.Second,
		},
		Matching: MatchingConfig{
			MinMatchPercent: 30,
		},
		Recommend: RecommendConfig{
			ColdSampleSize: 10,
			HistoryWindow:  20,
			WarmLimit:      15,
			Seed:           42,
		},
		Trend: TrendConfig{
			WindowDays:     14,
			SmoothingCount: 2,
			PriorMean:      3.5,
		},
	}
}

// Validate checks the configuration for contradictions. It runs after all
// layers are merged, so it sees the effective values.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateDatabase,
		c.validateMatching,
		c.validateRecommend,
		c.validateTrend,
	}

	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("database.threads must not be negative, got %d", c.Database.Threads)
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database.query_timeout must be positive, got %s", c.Database.QueryTimeout)
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.MinMatchPercent < 0 || c.Matching.MinMatchPercent > 100 {
		return fmt.Errorf("matching.min_match_percent must be in [0, 100], got %d", c.Matching.MinMatchPercent)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.ColdSampleSize <= 0 {
		return fmt.Errorf("recommend.cold_sample_size must be positive, got %d", c.Recommend.ColdSampleSize)
	}
	if c.Recommend.HistoryWindow <= 0 {
		return fmt.Errorf("recommend.history_window must be positive, got %d", c.Recommend.HistoryWindow)
	}
	if c.Recommend.WarmLimit <= 0 {
		return fmt.Errorf("recommend.warm_limit must be positive, got %d", c.Recommend.WarmLimit)
	}
	return nil
}

func (c *Config) validateTrend() error {
	if c.Trend.WindowDays <= 0 {
		return fmt.Errorf("trend.window_days must be positive, got %d", c.Trend.WindowDays)
	}
	if c.Trend.SmoothingCount < 0 {
		return fmt.Errorf("trend.smoothing_count must not be negative, got %v", c.Trend.SmoothingCount)
	}
	if c.Trend.PriorMean < 0 {
		return fmt.Errorf("trend.prior_mean must not be negative, got %v", c.Trend.PriorMean)
	}
	return nil
}
