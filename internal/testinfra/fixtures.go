// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package testinfra

// Vendor payload fixtures in the shapes the live API returns, including its
// habit of sending numbers as strings and single items as bare objects.
const (
	// ChickenBreastJSON has one serving of 50 g at 200 kcal.
	ChickenBreastJSON = `{
		"food_id": "1641",
		"food_name": "Chicken Breast",
		"food_type": "Generic",
		"servings": {
			"serving": {
				"serving_id": "4881",
				"serving_description": "1 piece",
				"metric_serving_amount": "50.000",
				"metric_serving_unit": "g",
				"number_of_units": "1.000",
				"calories": "200",
				"carbohydrate": "0",
				"protein": "15.5",
				"fat": "7.25"
			}
		}
	}`

	// GreekYogurtJSON is a branded food with two servings.
	GreekYogurtJSON = `{
		"food_id": "4521",
		"food_name": "Greek Yogurt",
		"food_type": "Brand",
		"brand_name": "Fage",
		"servings": {
			"serving": [
				{
					"serving_id": "1",
					"serving_description": "1 container",
					"metric_serving_amount": "170.000",
					"metric_serving_unit": "g",
					"number_of_units": "1",
					"calories": "100",
					"carbohydrate": "6",
					"protein": "18",
					"fat": "0"
				},
				{
					"serving_id": "2",
					"serving_description": "100 g",
					"metric_serving_amount": "100.000",
					"metric_serving_unit": "g",
					"number_of_units": "100",
					"calories": "59",
					"carbohydrate": "3.5",
					"protein": "10.6",
					"fat": "0"
				}
			]
		}
	}`

	// BroccoliSearchJSON is a foods.search "foods" object with a single bare item.
	BroccoliSearchJSON = `{
		"max_results": "25",
		"page_number": "0",
		"total_results": "1",
		"food": {
			"food_id": "33691",
			"food_name": "Broccoli",
			"food_type": "Generic",
			"food_description": "Per 100g - Calories: 34kcal | Fat: 0.37g | Carbs: 6.64g | Protein: 2.82g"
		}
	}`
)
