// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

// Package testinfra provides test infrastructure for end-to-end tests.
//
// # FatSecret Server
//
// MockFatSecretServer runs an in-process stand-in for the vendor: an OAuth2
// token endpoint at /connect/token and the method-dispatched data endpoint at
// /rest/server.api. It records every request so tests can assert how many
// vendor calls a scenario made.
//
//	func TestLookup(t *testing.T) {
//	    vendor := testinfra.NewMockFatSecretServer(t)
//	    vendor.AddFood(testinfra.ChickenBreastJSON)
//
//	    cfg := vendor.Config()
//	    tokens := fatsecret.NewTokenManager(cfg, store, vendor.Client())
//	    ...
//	    assert.Equal(t, 1, vendor.Calls(fatsecret.MethodFoodGet))
//	}
package testinfra
