// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

/*
Package nutrition extracts structured nutrition values from the free-text
descriptions returned by the food search API.

A typical description looks like:

	Per 100g - Calories: 22kcal | Fat: 0.34g | Carbs: 3.28g | Protein: 3.09g

ExtractCalories and ExtractNutrient read single values; ExtractServingInfo
finds the serving the values refer to using an ordered list of rules. None of
the functions fail: a missing value is 0 and a missing serving is 100 g.

CanonicalServing, RoundCalories and RoundGrams implement the unit and rounding
conventions shared by every normalized record.
*/
package nutrition
