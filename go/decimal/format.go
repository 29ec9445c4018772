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

import "vitess.io/fixeddecimal/go/decimal/internal/arith"

// ToString renders the exact value with all scale digits and no
// exponent: full zero padding on the right, a single leading zero when
// the whole part is empty, no other left padding.
func (x Decimal4) ToString(precision, scale int) string {
	return format64(int64(x), precision, scale)
}

// ToString renders the exact value with all scale digits and no
// exponent.
func (x Decimal8) ToString(precision, scale int) string {
	return format64(int64(x), precision, scale)
}

// ToString renders the exact value with all scale digits and no
// exponent.
func (x Decimal16) ToString(precision, scale int) string {
	v := x.i128()
	if v.IsInt64() {
		return format64(v.Int64(), precision, scale)
	}

	buf, idx, firstDigit := formatBuf(precision, scale, v.Sign() < 0)
	remaining := v.Abs()
	ten := arith.From64(10)
	writeDigit := func() {
		var digit arith.Int128
		remaining, digit = remaining.QuoRem(ten)
		idx--
		buf[idx] = byte(digit.Lo) + '0'
	}
	for s := scale; s > 0; s-- {
		writeDigit()
	}
	if scale > 0 {
		idx--
		buf[idx] = '.'
	}
	for {
		writeDigit()
		if remaining.IsZero() {
			if idx > firstDigit {
				buf = buf[idx-firstDigit:]
			}
			break
		}
		if idx <= firstDigit {
			break
		}
	}
	if v.Sign() < 0 {
		buf[0] = '-'
	}
	return string(buf)
}

// format64 fills a fixed buffer from the right, one digit at a time.
func format64(v int64, precision, scale int) string {
	buf, idx, firstDigit := formatBuf(precision, scale, v < 0)
	remaining := abs64(v)
	for s := scale; s > 0; s-- {
		idx--
		buf[idx] = byte(remaining%10) + '0'
		remaining /= 10
	}
	if scale > 0 {
		idx--
		buf[idx] = '.'
	}
	for {
		idx--
		buf[idx] = byte(remaining%10) + '0'
		remaining /= 10
		if remaining == 0 {
			// Trim surplus leading zeros, keeping one slot for the
			// sign.
			if idx > firstDigit {
				buf = buf[idx-firstDigit:]
			}
			break
		}
		if idx <= firstDigit {
			break
		}
	}
	if v < 0 {
		buf[0] = '-'
	}
	return string(buf)
}

// formatBuf sizes the zero-filled output buffer: one byte per precision
// digit, plus the decimal point, plus a leading zero when every digit is
// fractional, plus the sign.
func formatBuf(precision, scale int, negative bool) (buf []byte, idx, firstDigit int) {
	n := precision
	if scale > 0 {
		n++
	}
	if scale == precision {
		n++
	}
	if negative {
		n++
		firstDigit = 1
	}
	buf = make([]byte, n)
	for i := range buf {
		buf[i] = '0'
	}
	return buf, n, firstDigit
}
