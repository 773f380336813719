// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package models

import "strings"

// FoodType distinguishes branded products from generic foods.
type FoodType string

const (
	FoodTypeGeneric FoodType = "Generic"
	FoodTypeBrand   FoodType = "Brand"
)

// ClassifyFoodType returns FoodTypeBrand when brand is non-blank.
func ClassifyFoodType(brand string) FoodType {
	if strings.TrimSpace(brand) != "" {
		return FoodTypeBrand
	}
	return FoodTypeGeneric
}

// Food is the normalized food record returned by every endpoint, independent
// of the vendor's response shape.
//
// Example:
//
//	{
//	  "id": "33691",
//	  "name": "Broccoli",
//	  "description": "Per 100g - Calories: 34kcal | Fat: 0.37g | Carbs: 6.64g | Protein: 2.82g",
//	  "food_type": "Generic",
//	  "brand_name": null,
//	  "calories": 34,
//	  "protein": 2.82,
//	  "carbs": 6.64,
//	  "fat": 0.37,
//	  "servingSize": 100,
//	  "servingUnit": "g",
//	  "servingText": "100 g"
//	}
type Food struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	FoodType    FoodType  `json:"food_type"`
	BrandName   *string   `json:"brand_name"`
	Calories    int       `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	ServingSize float64   `json:"servingSize"`
	ServingUnit string    `json:"servingUnit"`
	ServingText string    `json:"servingText"`
	Servings    []Serving `json:"servings,omitempty"`
}

// Serving is one of the alternative servings a food detail offers.
type Serving struct {
	Description     string  `json:"description"`
	GramsEquivalent float64 `json:"gramsEquivalent"`
}

// Brand returns a pointer to the trimmed brand, or nil for a blank brand.
func Brand(brand string) *string {
	b := strings.TrimSpace(brand)
	if b == "" {
		return nil
	}
	return &b
}
