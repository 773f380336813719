// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package transform

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tomtom215/nutriproxy/internal/models"
	"github.com/tomtom215/nutriproxy/internal/models/fatsecret"
	"github.com/tomtom215/nutriproxy/internal/nutrition"
)

var (
	// ErrNoServingData is returned when a food detail has no servings.
	ErrNoServingData = errors.New("food has no serving data")

	// ErrUnexpectedShape is returned when a vendor response carries neither
	// a result nor an error envelope.
	ErrUnexpectedShape = errors.New("unexpected vendor response shape")
)

// FromSearchItem normalizes one search hit. Nutrient values and the serving
// are parsed from the free-text description and reported per that serving.
func FromSearchItem(item fatsecret.SearchItem) models.Food {
	macros := nutrition.ExtractMacros(item.FoodDescription)
	serving := nutrition.ExtractServingInfo(item.FoodDescription)
	size, unit := nutrition.CanonicalServing(serving.Size, serving.Unit)

	return models.Food{
		ID:          item.FoodID.String(),
		Name:        item.FoodName,
		Description: item.FoodDescription,
		FoodType:    models.ClassifyFoodType(item.BrandName),
		BrandName:   models.Brand(item.BrandName),
		Calories:    macros.Calories,
		Protein:     nutrition.ClampNonNegative(macros.Protein),
		Carbs:       nutrition.ClampNonNegative(macros.Carbs),
		Fat:         nutrition.ClampNonNegative(macros.Fat),
		ServingSize: size,
		ServingUnit: unit,
		ServingText: serving.Text,
	}
}

// FromSearchResponse normalizes every hit of a search page. The result is
// never nil so it encodes as [] when nothing matched.
func FromSearchResponse(resp *fatsecret.SearchResponse) []models.Food {
	if resp == nil {
		return []models.Food{}
	}
	foods := make([]models.Food, 0, len(resp.Foods.Food))
	for _, item := range resp.Foods.Food {
		foods = append(foods, FromSearchItem(item))
	}
	return foods
}

// FromDetail normalizes a food detail using its first serving, scaled to a
// 100 g basis. Calories are rounded to whole numbers and macros to one
// decimal.
func FromDetail(food *fatsecret.FoodDetail) (models.Food, error) {
	if food == nil {
		return models.Food{}, ErrUnexpectedShape
	}
	if food.Servings == nil || len(food.Servings.Serving) == 0 {
		return models.Food{}, ErrNoServingData
	}

	first := food.Servings.Serving[0]
	amount, unit := metricServing(first)
	grams := nutrition.GramsFor(amount, unit)
	scale := 100 / grams

	servingSize, servingUnit := amount, nutrition.NormalizeUnit(unit)
	if servingUnit == nutrition.UnitOunce {
		servingSize, servingUnit = grams, nutrition.UnitGram
	}

	text := servingText(first, amount, unit)

	out := models.Food{
		ID:          food.FoodID.String(),
		Name:        food.FoodName,
		Description: text,
		FoodType:    models.ClassifyFoodType(food.BrandName),
		BrandName:   models.Brand(food.BrandName),
		Calories:    nutrition.RoundCalories(first.Calories.Float64() * scale),
		Protein:     nutrition.RoundGrams(first.Protein.Float64() * scale),
		Carbs:       nutrition.RoundGrams(first.Carbohydrate.Float64() * scale),
		Fat:         nutrition.RoundGrams(first.Fat.Float64() * scale),
		ServingSize: servingSize,
		ServingUnit: servingUnit,
		ServingText: text,
	}

	if len(food.Servings.Serving) > 1 {
		out.Servings = make([]models.Serving, 0, len(food.Servings.Serving))
		for _, s := range food.Servings.Serving {
			a, u := metricServing(s)
			out.Servings = append(out.Servings, models.Serving{
				Description:     servingText(s, a, u),
				GramsEquivalent: nutrition.RoundGrams(nutrition.GramsFor(a, u)),
			})
		}
	}

	return out, nil
}

// metricServing returns the serving's metric amount and unit, defaulting to
// 100 g when the amount is missing or not positive.
func metricServing(s fatsecret.Serving) (float64, string) {
	amount := s.MetricServingAmount.Float64()
	if !(amount > 0) {
		amount = nutrition.DefaultServingSize
	}
	unit := strings.TrimSpace(s.MetricServingUnit)
	if unit == "" {
		unit = nutrition.UnitGram
	}
	return amount, unit
}

func servingText(s fatsecret.Serving, amount float64, unit string) string {
	if d := strings.TrimSpace(s.ServingDescription); d != "" {
		return d
	}
	return strconv.FormatFloat(amount, 'f', -1, 64) + " " + unit
}
