// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package nutrition

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultServingSize is used when a description names no serving.
const DefaultServingSize = 100.0

// ServingInfo is the serving a description's nutrient values refer to.
type ServingInfo struct {
	Size float64
	Unit string
	Text string
}

// DefaultServing returns the 100 g fallback serving.
func DefaultServing() ServingInfo {
	return ServingInfo{Size: DefaultServingSize, Unit: UnitGram, Text: "100 g"}
}

var (
	perGramsPattern  = regexp.MustCompile(`(?i)\bper\s+` + number + `\s*g\b`)
	perUnitPattern   = regexp.MustCompile(`(?i)\bper\s+` + number + `\s*([a-z]+)`)
	perPhrasePattern = regexp.MustCompile(`(?i)\bper\s+([^-]+)`)

	mixedFractionPattern = regexp.MustCompile(`(\d+)\s+(\d+)/(\d+)`)
	fractionPattern      = regexp.MustCompile(`(\d+)/(\d+)`)
	leadingNumberPattern = regexp.MustCompile(`^` + number)
)

// servingRule recognises one serving phrase shape. Rules are tried in order
// and the first match wins.
type servingRule struct {
	name  string
	match func(text string) (ServingInfo, bool)
}

var servingRules = []servingRule{
	{name: "per-grams", match: matchPerGrams},
	{name: "per-unit", match: matchPerUnit},
	{name: "per-phrase", match: matchPerPhrase},
}

// phraseKind classifies a free-form serving phrase by keyword. Order matters:
// "1 cup (8 oz)" is a cup.
var phraseKinds = []struct {
	unit     string
	keywords []string
}{
	{UnitCup, []string{"cup"}},
	{UnitOunce, []string{"oz", "ounce"}},
	{UnitTablespoon, []string{"tbsp", "tablespoon"}},
	{UnitPiece, []string{"piece", "cookie", "serving"}},
}

// ExtractServingInfo finds the serving a vendor description refers to, e.g.
// "Per 100g - Calories: 22kcal" or "Per 1/4 cup - Calories: 60kcal". When no
// rule matches, the 100 g default is returned.
func ExtractServingInfo(text string) ServingInfo {
	for _, rule := range servingRules {
		if info, ok := rule.match(text); ok {
			return info
		}
	}
	return DefaultServing()
}

func matchPerGrams(text string) (ServingInfo, bool) {
	m := perGramsPattern.FindStringSubmatch(text)
	if m == nil {
		return ServingInfo{}, false
	}
	size, err := strconv.ParseFloat(m[1], 64)
	if err != nil || size <= 0 {
		return ServingInfo{}, false
	}
	return ServingInfo{Size: size, Unit: UnitGram, Text: m[1] + " " + UnitGram}, true
}

func matchPerUnit(text string) (ServingInfo, bool) {
	m := perUnitPattern.FindStringSubmatch(text)
	if m == nil {
		return ServingInfo{}, false
	}
	size, err := strconv.ParseFloat(m[1], 64)
	if err != nil || size <= 0 {
		return ServingInfo{}, false
	}
	unit := strings.ToLower(m[2])
	return ServingInfo{Size: size, Unit: unit, Text: m[1] + " " + unit}, true
}

func matchPerPhrase(text string) (ServingInfo, bool) {
	m := perPhrasePattern.FindStringSubmatch(text)
	if m == nil {
		return ServingInfo{}, false
	}
	phrase := strings.TrimSpace(m[1])
	lower := strings.ToLower(phrase)

	for _, kind := range phraseKinds {
		for _, kw := range kind.keywords {
			if strings.Contains(lower, kw) {
				return ServingInfo{Size: phraseQuantity(lower), Unit: kind.unit, Text: phrase}, true
			}
		}
	}
	return ServingInfo{}, false
}

// phraseQuantity reads the amount from a serving phrase: a mixed number
// ("1 1/2"), a fraction ("1/4"), a leading decimal, or 1.
func phraseQuantity(phrase string) float64 {
	if m := mixedFractionPattern.FindStringSubmatch(phrase); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		if frac, ok := fraction(m[2], m[3]); ok {
			return whole + frac
		}
	}
	if m := fractionPattern.FindStringSubmatch(phrase); m != nil {
		if frac, ok := fraction(m[1], m[2]); ok {
			return frac
		}
	}
	if m := leadingNumberPattern.FindStringSubmatch(phrase); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
			return v
		}
	}
	return 1
}

func fraction(num, den string) (float64, bool) {
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, false
	}
	v := n / d
	if v <= 0 {
		return 0, false
	}
	return v, true
}
