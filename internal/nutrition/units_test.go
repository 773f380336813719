// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package nutrition

import (
	"math"
	"testing"
)

func TestCanonicalServing(t *testing.T) {
	tests := []struct {
		name     string
		size     float64
		unit     string
		wantSize float64
		wantUnit string
	}{
		{"grams", 100, "g", 100, "g"},
		{"gram word", 30, "grams", 30, "g"},
		{"ounce", 1, "oz", GramsPerOunce, "g"},
		{"ounce word", 2, "Ounces", 2 * GramsPerOunce, "g"},
		{"tablespoon", 2, "tablespoons", 2, "tbsp"},
		{"cookie", 1, "cookie", 1, "piece"},
		{"serving", 1, "serving", 1, "piece"},
		{"pieces", 4, "pieces", 4, "piece"},
		{"cups", 1.5, "cups", 1.5, "cup"},
		{"unknown passes through lowercased", 1, "Slice", 1, "slice"},
		{"empty unit is grams", 50, "", 50, "g"},
		{"zero size", 0, "cup", 100, "g"},
		{"negative size", -3, "g", 100, "g"},
		{"NaN size", math.NaN(), "g", 100, "g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, unit := CanonicalServing(tt.size, tt.unit)
			if math.Abs(size-tt.wantSize) > 1e-9 || unit != tt.wantUnit {
				t.Errorf("CanonicalServing(%v, %q) = %v %q, want %v %q", tt.size, tt.unit, size, unit, tt.wantSize, tt.wantUnit)
			}
		})
	}
}

func TestGramsFor(t *testing.T) {
	if got := GramsFor(1, "oz"); math.Abs(got-28.3495) > 1e-9 {
		t.Errorf("GramsFor(1, oz) = %v, want 28.3495", got)
	}
	if got := GramsFor(50, "g"); got != 50 {
		t.Errorf("GramsFor(50, g) = %v, want 50", got)
	}
	if got := GramsFor(240, "ml"); got != 240 {
		t.Errorf("GramsFor(240, ml) = %v, want 240", got)
	}
}

func TestRoundCalories(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{400, 400},
		{52.5, 53},
		{-5, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := RoundCalories(tt.in); got != tt.want {
			t.Errorf("RoundCalories(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRoundGrams(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{3.09, 3.1},
		{6.18, 6.2},
		{-1.2, 0},
	}
	for _, tt := range tests {
		if got := RoundGrams(tt.in); got != tt.want {
			t.Errorf("RoundGrams(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := ClampNonNegative(-0.1); got != 0 {
		t.Errorf("ClampNonNegative(-0.1) = %v, want 0", got)
	}
	if got := ClampNonNegative(2.5); got != 2.5 {
		t.Errorf("ClampNonNegative(2.5) = %v, want 2.5", got)
	}
}
