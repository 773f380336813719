// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package nutrition

import (
	"reflect"
	"testing"
)

func TestExtractServingInfo(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ServingInfo
	}{
		{
			name: "grams",
			text: "Per 100g - Calories: 22kcal | Fat: 0.34g",
			want: ServingInfo{Size: 100, Unit: "g", Text: "100 g"},
		},
		{
			name: "grams with decimal",
			text: "Per 28.5g - Calories: 150kcal",
			want: ServingInfo{Size: 28.5, Unit: "g", Text: "28.5 g"},
		},
		{
			name: "number and word unit",
			text: "Per 1 cup - Calories: 250kcal",
			want: ServingInfo{Size: 1, Unit: "cup", Text: "1 cup"},
		},
		{
			name: "word unit lowercased",
			text: "Per 2 Tbsp - Calories: 190kcal",
			want: ServingInfo{Size: 2, Unit: "tbsp", Text: "2 tbsp"},
		},
		{
			name: "fractional cup",
			text: "Per 1/4 cup - Calories: 60kcal | Fat: 1.00g",
			want: ServingInfo{Size: 0.25, Unit: "cup", Text: "1/4 cup"},
		},
		{
			name: "mixed number cup",
			text: "Per 1 1/2 cups - Calories: 300kcal",
			want: ServingInfo{Size: 1.5, Unit: "cup", Text: "1 1/2 cups"},
		},
		{
			name: "cup wins over ounce",
			text: "Per (8 fl oz) cup - Calories: 100kcal",
			want: ServingInfo{Size: 1, Unit: "cup", Text: "(8 fl oz) cup"},
		},
		{
			name: "ounce phrase",
			text: "Per (1 ounce) - Calories: 80kcal",
			want: ServingInfo{Size: 1, Unit: "oz", Text: "(1 ounce)"},
		},
		{
			name: "cookie phrase",
			text: "Per (1 large) cookie - Calories: 210kcal",
			want: ServingInfo{Size: 1, Unit: "piece", Text: "(1 large) cookie"},
		},
		{
			name: "no serving",
			text: "no serving info here",
			want: ServingInfo{Size: 100, Unit: "g", Text: "100 g"},
		},
		{
			name: "unclassified phrase",
			text: "Per (medium) - Calories: 95kcal",
			want: ServingInfo{Size: 100, Unit: "g", Text: "100 g"},
		},
		{
			name: "zero grams falls back",
			text: "Per 0g - Calories: 0kcal",
			want: ServingInfo{Size: 100, Unit: "g", Text: "100 g"},
		},
		{
			name: "empty",
			text: "",
			want: DefaultServing(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractServingInfo(tt.text); got != tt.want {
				t.Errorf("ExtractServingInfo(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestServingRuleOrder(t *testing.T) {
	names := make([]string, 0, len(servingRules))
	for _, r := range servingRules {
		names = append(names, r.name)
	}
	want := []string{"per-grams", "per-unit", "per-phrase"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("rule order = %v, want %v", names, want)
	}
}

func TestPhraseQuantity(t *testing.T) {
	tests := []struct {
		phrase string
		want   float64
	}{
		{"1/2 cup", 0.5},
		{"2 1/4 cups", 2.25},
		{"3 pieces", 3},
		{"cup", 1},
		{"1/0 cup", 1},
	}
	for _, tt := range tests {
		if got := phraseQuantity(tt.phrase); got != tt.want {
			t.Errorf("phraseQuantity(%q) = %v, want %v", tt.phrase, got, tt.want)
		}
	}
}
