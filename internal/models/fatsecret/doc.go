// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

// Package fatsecret contains the wire models of the FatSecret Platform API.
//
// The vendor is loose with JSON types: lists with one element arrive as a bare
// object, numbers arrive as strings, and identifiers may be either. OneOrMany,
// FlexFloat, FlexInt, FlexString and FoodIDValue absorb those differences at
// decode time so the rest of the code works with plain slices and values.
package fatsecret
