// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package nutrition

import (
	"math"
	"regexp"
	"strconv"
)

// Nutrient identifies a macronutrient reported in a vendor description.
type Nutrient string

const (
	Protein Nutrient = "protein"
	Carbs   Nutrient = "carbs"
	Fat     Nutrient = "fat"
)

const number = `(\d+(?:\.\d+)?)`

// labelStart anchors a label to the start of the text or to a "|" or "-"
// separator, so "Saturated Fat:" is never read as "Fat:".
const labelStart = `(?i)(?:^|[|\-])\s*`

var (
	caloriesPattern = regexp.MustCompile(labelStart + `calories:\s*` + number)

	nutrientPatterns = map[Nutrient]*regexp.Regexp{
		Protein: regexp.MustCompile(labelStart + `protein:\s*` + number + `\s*g`),
		Carbs:   regexp.MustCompile(labelStart + `(?:carbs|carbohydrates?):\s*` + number + `\s*g`),
		Fat:     regexp.MustCompile(labelStart + `fat:\s*` + number + `\s*g`),
	}
)

// ExtractCalories returns the energy value following "Calories:" in text,
// rounded to the nearest integer. It returns 0 when no value is present.
//
//	ExtractCalories("Per 100g - Calories: 22kcal | Fat: 0.34g") == 22
func ExtractCalories(text string) int {
	v, ok := firstNumber(caloriesPattern, text)
	if !ok {
		return 0
	}
	return RoundCalories(v)
}

// ExtractNutrient returns the gram amount reported for kind, exactly as
// written. Unknown kinds and missing values yield 0.
func ExtractNutrient(text string, kind Nutrient) float64 {
	re, ok := nutrientPatterns[kind]
	if !ok {
		return 0
	}
	v, _ := firstNumber(re, text)
	return v
}

// Macros holds every value the parser can read from a description.
type Macros struct {
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
}

// ExtractMacros runs every extractor over text.
func ExtractMacros(text string) Macros {
	return Macros{
		Calories: ExtractCalories(text),
		Protein:  ExtractNutrient(text, Protein),
		Carbs:    ExtractNutrient(text, Carbs),
		Fat:      ExtractNutrient(text, Fat),
	}
}

func firstNumber(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
