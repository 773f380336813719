// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package nutrition

import (
	"math"
	"strings"
)

// GramsPerOunce converts avoirdupois ounces to grams.
const GramsPerOunce = 28.3495

// Canonical serving units.
const (
	UnitGram       = "g"
	UnitCup        = "cup"
	UnitTablespoon = "tbsp"
	UnitPiece      = "piece"
	UnitOunce      = "oz"
)

var unitAliases = map[string]string{
	"g":           UnitGram,
	"gram":        UnitGram,
	"grams":       UnitGram,
	"cup":         UnitCup,
	"cups":        UnitCup,
	"tbsp":        UnitTablespoon,
	"tablespoon":  UnitTablespoon,
	"tablespoons": UnitTablespoon,
	"piece":       UnitPiece,
	"pieces":      UnitPiece,
	"cookie":      UnitPiece,
	"cookies":     UnitPiece,
	"serving":     UnitPiece,
	"servings":    UnitPiece,
	"oz":          UnitOunce,
	"ounce":       UnitOunce,
	"ounces":      UnitOunce,
}

// NormalizeUnit maps a unit token to its canonical spelling. Unknown units
// pass through lower-cased.
func NormalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if canonical, ok := unitAliases[u]; ok {
		return canonical
	}
	return u
}

// CanonicalServing converts size and unit to the canonical representation.
// Ounces become grams; a non-positive or non-finite size falls back to 100 g.
func CanonicalServing(size float64, unit string) (float64, string) {
	if !(size > 0) || math.IsInf(size, 0) {
		return DefaultServingSize, UnitGram
	}
	u := NormalizeUnit(unit)
	if u == UnitOunce {
		return size * GramsPerOunce, UnitGram
	}
	if u == "" {
		u = UnitGram
	}
	return size, u
}

// GramsFor converts a metric amount to grams. Only ounces are converted;
// any other unit is taken as already being in grams.
func GramsFor(amount float64, unit string) float64 {
	if NormalizeUnit(unit) == UnitOunce {
		return amount * GramsPerOunce
	}
	return amount
}

// RoundCalories rounds to the nearest whole calorie, never below zero.
func RoundCalories(v float64) int {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// RoundGrams rounds to one decimal place, never below zero.
func RoundGrams(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}

// ClampNonNegative returns v, or 0 when v is negative or NaN.
func ClampNonNegative(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return v
}
