// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package fatsecret

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var null = []byte("null")

// OneOrMany decodes a JSON value that is either a single object or an array of
// objects into a slice. The vendor encodes one-element lists as a bare object.
// null, an empty string and a missing field all decode to an empty slice.
type OneOrMany[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (o *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) || bytes.Equal(data, []byte(`""`)) {
		*o = nil
		return nil
	}

	if data[0] == '[' {
		var many []T
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*o = many
		return nil
	}

	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*o = OneOrMany[T]{one}
	return nil
}

// First returns the first element, if any.
func (o OneOrMany[T]) First() (T, bool) {
	if len(o) == 0 {
		var zero T
		return zero, false
	}
	return o[0], true
}

// FlexFloat decodes a number that the vendor may send as a JSON number or as
// a numeric string. Empty strings, null and unparsable text decode to 0.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		*f = 0
		return nil
	}

	s := string(data)
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	if s == "" {
		*f = 0
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// Float64 returns f as a float64.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexInt decodes an integer sent as a number or numeric string.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = FlexInt(int(f))
	return nil
}

// FlexString decodes an identifier the vendor may send as a string or a number.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		*s = ""
		return nil
	}

	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
	case '{', '[':
		return fmt.Errorf("fatsecret: expected string or number, got %s", truncate(data, 32))
	default:
		// Numbers are kept as their literal text so large ids keep every digit.
		*s = FlexString(data)
	}
	return nil
}

// String returns s as a string.
func (s FlexString) String() string {
	return string(s)
}

// FoodIDValue is the food_id returned by barcode lookups. It is either
// {"value": "123"} or a bare string or number.
type FoodIDValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *FoodIDValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var wrapped struct {
			Value FlexString `json:"value"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return err
		}
		*v = FoodIDValue(wrapped.Value)
		return nil
	}

	var s FlexString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	*v = FoodIDValue(s)
	return nil
}

// Found reports whether the lookup resolved to a food. The vendor answers
// "0" for barcodes it does not know.
func (v FoodIDValue) Found() bool {
	s := strings.TrimSpace(string(v))
	return s != "" && s != "0"
}

func truncate(data []byte, n int) string {
	if len(data) <= n {
		return string(data)
	}
	return string(data[:n]) + "..."
}
