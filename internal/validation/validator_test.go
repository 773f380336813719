// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/nutriproxy/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestSearchRequest_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input SearchRequest
	}{
		{"query only", SearchRequest{Query: "broccoli"}},
		{"with paging", SearchRequest{Query: "chicken breast", Page: 3, MaxResults: 50}},
		{"max length", SearchRequest{Query: strings.Repeat("a", 200)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() unexpected error: %v", err)
			}
		})
	}
}

func TestSearchRequest_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     SearchRequest
		wantField string
		wantTag   string
	}{
		{"missing query", SearchRequest{}, "query", "notblank"},
		{"blank query", SearchRequest{Query: "   "}, "query", "notblank"},
		{"query too long", SearchRequest{Query: strings.Repeat("a", 201)}, "query", "max"},
		{"negative page", SearchRequest{Query: "egg", Page: -1}, "page", "gte"},
		{"too many results", SearchRequest{Query: "egg", MaxResults: 51}, "max_results", "lte"},
		{"negative results", SearchRequest{Query: "egg", MaxResults: -5}, "max_results", "gte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

func TestPathRequests(t *testing.T) {
	if err := ValidateStruct(&FoodRequest{ID: "33691"}); err != nil {
		t.Errorf("FoodRequest unexpected error: %v", err)
	}
	if err := ValidateStruct(&FoodRequest{ID: " "}); err == nil {
		t.Error("FoodRequest with blank id should fail")
	}
	if err := ValidateStruct(&BarcodeRequest{Code: "0041570054161"}); err != nil {
		t.Errorf("BarcodeRequest unexpected error: %v", err)
	}
	if err := ValidateStruct(&BarcodeRequest{Code: strings.Repeat("1", 65)}); err == nil {
		t.Error("BarcodeRequest over 64 characters should fail")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name  string
		input SearchRequest
		want  string
	}{
		{"missing query", SearchRequest{}, "query parameter is required"},
		{"query too long", SearchRequest{Query: strings.Repeat("a", 201)}, "query must be at most 200 characters"},
		{"negative page", SearchRequest{Query: "egg", Page: -1}, "page must be greater than or equal to 0"},
		{"too many results", SearchRequest{Query: "egg", MaxResults: 51}, "max_results must be less than or equal to 50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestToErrorResponse_SingleError(t *testing.T) {
	err := ValidateStruct(&SearchRequest{})
	if err == nil {
		t.Fatal("expected error")
	}

	resp := err.ToErrorResponse()
	if resp.Code != models.ErrCodeValidation {
		t.Errorf("Code = %q, want %q", resp.Code, models.ErrCodeValidation)
	}
	if resp.Error != "query parameter is required" {
		t.Errorf("Error = %q", resp.Error)
	}
	if resp.Details["field"] != "query" {
		t.Errorf("Details[field] = %v, want query", resp.Details["field"])
	}
}

func TestToErrorResponse_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&SearchRequest{Page: -1, MaxResults: 99})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(err.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(err.Errors()))
	}

	resp := err.ToErrorResponse()
	fields, ok := resp.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has type %T", resp.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("expected 3 field entries, got %d", len(fields))
	}
	if !strings.Contains(resp.Error, "query parameter is required") {
		t.Errorf("combined message missing query error: %q", resp.Error)
	}
}

func TestNewFieldError(t *testing.T) {
	err := NewFieldError("page", "integer", "abc", "page must be an integer")

	if err.Error() != "page must be an integer" {
		t.Errorf("Error() = %q", err.Error())
	}
	resp := err.ToErrorResponse()
	if resp.Details["value"] != "abc" {
		t.Errorf("Details[value] = %v, want abc", resp.Details["value"])
	}
}

func TestEmptyRequestValidationError(t *testing.T) {
	err := &RequestValidationError{}
	if err.Error() != "validation failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if resp := err.ToErrorResponse(); resp.Error != "Validation failed" {
		t.Errorf("ToErrorResponse().Error = %q", resp.Error)
	}
}
