/*
Copyright 2024 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package decimal

import (
	"fmt"

	"vitess.io/fixeddecimal/go/decimal/internal/arith"
)

// Parsing covers plain literals only: sign, digits, one optional point.
// Exponent forms belong to the query engine's literal handling, and
// ToString never emits them.

// Parse16 parses s at the given precision and scale. Surplus fractional
// digits are rounded half away from zero when round is set and dropped
// otherwise. overflow reports a syntactically valid number that does not
// fit; err reports a malformed literal.
func Parse16(s string, precision, scale int, round bool) (result Decimal16, overflow bool, err error) {
	if len(s) == 0 {
		return Decimal16{}, false, fmt.Errorf("cannot parse decimal from empty string")
	}
	i := 0
	negative := false
	switch s[0] {
	case '-':
		negative = true
		i++
	case '+':
		i++
	}

	var value arith.Int128
	digits := 0
	seenDigit := false
	fracDigits := -1
	var roundUp bool
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
			if fracDigits >= 0 {
				fracDigits++
				if fracDigits > scale {
					// Only the first dropped digit decides the
					// half-away rounding.
					if fracDigits == scale+1 && round && c >= '5' {
						roundUp = true
					}
					continue
				}
			}
			if digits > 0 || c != '0' || fracDigits > 0 {
				digits++
			}
			if digits > MaxPrecision {
				overflow = true
				continue
			}
			value = value.MulPow10(1).Add(arith.From64(int64(c - '0')))
		case c == '.':
			if fracDigits >= 0 {
				return Decimal16{}, false, fmt.Errorf("cannot parse decimal from %q", s)
			}
			fracDigits = 0
		default:
			return Decimal16{}, false, fmt.Errorf("cannot parse decimal from %q", s)
		}
	}
	if !seenDigit {
		return Decimal16{}, false, fmt.Errorf("cannot parse decimal from %q", s)
	}
	if overflow {
		return Decimal16{}, true, nil
	}

	// Pad the fraction out to the target scale.
	if fracDigits < 0 {
		fracDigits = 0
	}
	if pad := scale - fracDigits; pad > 0 {
		value = value.MulPow10(pad)
	}
	if roundUp {
		value = value.Add(arith.From64(1))
	}
	if value.Cmp(arith.Pow10Int128[precision]) >= 0 {
		return Decimal16{}, true, nil
	}
	if negative {
		value = value.Neg()
	}
	return dec16(value), false, nil
}

// Parse8 parses s at the given precision and scale; precision must be at
// most 18.
func Parse8(s string, precision, scale int, round bool) (Decimal8, bool, error) {
	v, overflow, err := Parse16(s, precision, scale, round)
	if overflow || err != nil {
		return 0, overflow, err
	}
	return Decimal8(v.i128().Int64()), false, nil
}

// Parse4 parses s at the given precision and scale; precision must be at
// most 9.
func Parse4(s string, precision, scale int, round bool) (Decimal4, bool, error) {
	v, overflow, err := Parse16(s, precision, scale, round)
	if overflow || err != nil {
		return 0, overflow, err
	}
	return Decimal4(int32(v.i128().Int64())), false, nil
}
