// Smart Recipe - Ingredient Inventory Matching & Consumption Engine
// Copyright 2026 Eymen Baglar (eymenbaglar)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/eymenbaglar/smart-recipe-app-sub000

package portion

import (
	"errors"
	"testing"

	"github.com/eymenbaglar/smart-recipe-app-sub000/internal/models"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name          string
		baseAmount    float64
		baseServing   float64
		targetServing float64
		unit          models.CanonicalUnit
		want          float64
		wantErr       error
	}{
		{
			name:          "qty rounds up to nearest half",
			baseAmount:    1,
			baseServing:   4,
			targetServing: 4.4,
			unit:          models.UnitQty,
			want:          1.5,
		},
		{
			name:          "qty exact halves preserved",
			baseAmount:    1.5,
			baseServing:   2,
			targetServing: 2,
			unit:          models.UnitQty,
			want:          1.5,
		},
		{
			name:          "qty never scales to zero",
			baseAmount:    1,
			baseServing:   10,
			targetServing: 1,
			unit:          models.UnitQty,
			want:          0.5,
		},
		{
			name:          "qty zero base stays zero",
			baseAmount:    0,
			baseServing:   4,
			targetServing: 2,
			unit:          models.UnitQty,
			want:          0,
		},
		{
			name:          "gram rounds to one decimal",
			baseAmount:    100,
			baseServing:   3,
			targetServing: 1,
			unit:          models.UnitGram,
			want:          33.3,
		},
		{
			name:          "ml scales up exactly",
			baseAmount:    250,
			baseServing:   2,
			targetServing: 4,
			unit:          models.UnitML,
			want:          500,
		},
		{
			name:          "negative amount rejected",
			baseAmount:    -10,
			baseServing:   4,
			targetServing: 2,
			unit:          models.UnitGram,
			wantErr:       ErrInvalidAmount,
		},
		{
			name:          "zero base serving rejected",
			baseAmount:    10,
			baseServing:   0,
			targetServing: 2,
			unit:          models.UnitGram,
			wantErr:       ErrInvalidServing,
		},
		{
			name:          "negative target serving rejected",
			baseAmount:    10,
			baseServing:   2,
			targetServing: -1,
			unit:          models.UnitGram,
			wantErr:       ErrInvalidServing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scale(tt.baseAmount, tt.baseServing, tt.targetServing, tt.unit)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Scale() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Scale() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Scale() = %v, want %v", got, tt.want)
			}
		})
	}
}
