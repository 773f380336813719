// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package fatsecret

import "fmt"

// Vendor error codes that carry meaning for the proxy.
const (
	ErrorCodeInvalidToken   = 13
	ErrorCodeExpiredToken   = 14
	ErrorCodeInvalidID      = 106
	ErrorCodeNoBarcodeMatch = 211
)

// APIError is the error envelope the vendor may return even with HTTP 200:
//
//	{"error": {"code": 106, "message": "Invalid ID: food_id '0' does not exist"}}
type APIError struct {
	Code    FlexInt `json:"code"`
	Message string  `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fatsecret error %d: %s", int(e.Code), e.Message)
}

// TokenResponse is the body of a successful client-credentials grant.
type TokenResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	ExpiresIn   FlexInt `json:"expires_in"`
	Scope       string  `json:"scope"`
}

// SearchResponse is the body of foods.search.
type SearchResponse struct {
	Foods SearchFoods `json:"foods"`
	Error *APIError   `json:"error,omitempty"`
}

// SearchFoods is the result page of foods.search. Food is a bare object when
// exactly one food matches.
type SearchFoods struct {
	Food         OneOrMany[SearchItem] `json:"food"`
	MaxResults   FlexInt               `json:"max_results"`
	PageNumber   FlexInt               `json:"page_number"`
	TotalResults FlexInt               `json:"total_results"`
}

// SearchItem is one search hit. Nutrition values exist only inside
// FoodDescription, e.g. "Per 100g - Calories: 22kcal | Fat: 0.34g | ...".
type SearchItem struct {
	FoodID          FlexString `json:"food_id"`
	FoodName        string     `json:"food_name"`
	FoodType        string     `json:"food_type"`
	BrandName       string     `json:"brand_name,omitempty"`
	FoodDescription string     `json:"food_description"`
	FoodURL         string     `json:"food_url,omitempty"`
}

// FoodResponse is the body of food.get.v2.
type FoodResponse struct {
	Food  *FoodDetail `json:"food"`
	Error *APIError   `json:"error,omitempty"`
}

// FoodDetail is a food with its servings.
type FoodDetail struct {
	FoodID    FlexString `json:"food_id"`
	FoodName  string     `json:"food_name"`
	FoodType  string     `json:"food_type"`
	BrandName string     `json:"brand_name,omitempty"`
	FoodURL   string     `json:"food_url,omitempty"`
	Servings  *Servings  `json:"servings,omitempty"`
}

// Servings wraps the serving list, which is a bare object when the food has
// a single serving.
type Servings struct {
	Serving OneOrMany[Serving] `json:"serving"`
}

// Serving carries the nutrient values for one serving of a food. The vendor
// sends every number as a string.
type Serving struct {
	ServingID              FlexString `json:"serving_id"`
	ServingDescription     string     `json:"serving_description"`
	MeasurementDescription string     `json:"measurement_description,omitempty"`
	MetricServingAmount    FlexFloat  `json:"metric_serving_amount"`
	MetricServingUnit      string     `json:"metric_serving_unit"`
	NumberOfUnits          FlexFloat  `json:"number_of_units"`
	Calories               FlexFloat  `json:"calories"`
	Carbohydrate           FlexFloat  `json:"carbohydrate"`
	Protein                FlexFloat  `json:"protein"`
	Fat                    FlexFloat  `json:"fat"`
	IsDefault              FlexInt    `json:"is_default,omitempty"`
}

// BarcodeResponse is the body of food.find_id_for_barcode.
type BarcodeResponse struct {
	FoodID FoodIDValue `json:"food_id"`
	Error  *APIError   `json:"error,omitempty"`
}
