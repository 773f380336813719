// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

// Package transform converts FatSecret wire models into models.Food.
//
// Search hits carry their nutrition only as text and are parsed with the
// nutrition package; values are reported per the serving named in the text.
// Food details carry numeric servings; the first serving is scaled to 100 g.
package transform
