// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package foods

import (
	"errors"
	"strings"
)

// GTIN13Length is the length barcodes are padded to before lookup.
const GTIN13Length = 13

// ErrInvalidBarcode is returned when a barcode contains no digits.
var ErrInvalidBarcode = errors.New("barcode must contain at least one digit")

// NormalizeBarcode strips every non-digit and left-pads the result with zeros
// to 13 digits, so UPC-A "041570054161" becomes "0041570054161". Longer codes
// (GTIN-14) pass through unpadded.
func NormalizeBarcode(raw string) (string, error) {
	var b strings.Builder
	b.Grow(GTIN13Length)
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if digits == "" {
		return "", ErrInvalidBarcode
	}
	if len(digits) < GTIN13Length {
		digits = strings.Repeat("0", GTIN13Length-len(digits)) + digits
	}
	return digits, nil
}
