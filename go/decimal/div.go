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

// modFastMinLeadingZeros is the threshold for computing a 16-byte modulo
// without 256-bit intermediates: scaling one operand up must leave the
// values addable.
const modFastMinLeadingZeros = 2

// Div returns x / y truncated (or rounded half away from zero) to the
// result scale. Division by zero reports isNaN. The dividend is scaled
// up by resultScale + yScale - xScale in 128 bits, which the caller's
// type rules keep in range at this width.
func (x Decimal4) Div(xScale int, y Decimal4, yScale int, resultPrecision, resultScale int, round bool) (result Decimal4, isNaN, overflow bool) {
	r, isNaN := div64(int64(x), xScale, int64(y), yScale, resultScale, round)
	return Decimal4(r), isNaN, false
}

// Div returns x / y truncated (or rounded half away from zero) to the
// result scale. Division by zero reports isNaN.
func (x Decimal8) Div(xScale int, y Decimal8, yScale int, resultPrecision, resultScale int, round bool) (result Decimal8, isNaN, overflow bool) {
	r, isNaN := div64(int64(x), xScale, int64(y), yScale, resultScale, round)
	return Decimal8(r), isNaN, false
}

// div64 divides narrow operands with 128-bit intermediates. Scaling the
// dividend up by 10^scaleBy truncates the quotient to the result scale.
func div64(x int64, xScale int, y int64, yScale int, resultScale int, round bool) (int64, bool) {
	if y == 0 {
		return 0, true
	}
	scaleBy := resultScale + yScale - xScale
	if scaleBy < 0 || scaleBy > MaxPrecision8 {
		// The caller's type rules keep the scale-up inside the result
		// width's domain, which also keeps the product under 2^127.
		panic("decimal: divide scale-up out of range")
	}
	xw := arith.From64(x).MulPow10(scaleBy)
	yw := arith.From64(y)
	q, rem := xw.QuoRem(yw)
	if round {
		if rem.Abs().Add(rem.Abs()).Cmp(yw.Abs()) >= 0 {
			// No bias at zero: the result scale was chosen so the
			// smallest nonzero dividend over the largest divisor is
			// still nonzero, and the remainder proves the dividend
			// is nonzero, so q carries the right sign already.
			q = q.Add(arith.From64(int64(q.Sign())))
		}
	}
	return q.Int64(), false
}

// Div returns x / y truncated (or rounded half away from zero) to the
// result scale, reporting isNaN on division by zero and overflow when
// the quotient cannot be represented at resultPrecision.
//
// The dividend widens to 256 bits before the scale-up: 10^scaleBy alone
// can exceed 128 bits. Rounding afterwards can push the quotient past
// the cap, so the overflow check runs again at precision 38.
func (x Decimal16) Div(xScale int, y Decimal16, yScale int, resultPrecision, resultScale int, round bool) (result Decimal16, isNaN, overflow bool) {
	yv := y.i128()
	if yv.IsZero() {
		return Decimal16{}, true, false
	}
	xv := x.i128()
	scaleBy := resultScale + yScale - xScale
	if scaleBy < 0 {
		panic("decimal: result scale too small for divide")
	}

	xw := arith.Int256From128(xv).MulPow10(scaleBy)
	yw := arith.Int256From128(yv)
	q, rem := xw.QuoRem(yw)
	r, overflow := q.Int128(arith.MaxUnscaled128)
	if round {
		// The divisor lives in 256 bits, so doubling the remainder
		// cannot wrap.
		if rem.Abs().Lsh1().Cmp(yw.Abs()) >= 0 {
			// Bias at zero is corrected by the sign of the quotient:
			// +1 when the operand signs agree, -1 when they differ.
			inc := int64(1)
			if (xv.Sign() < 0) != (yv.Sign() < 0) {
				inc = -1
			}
			r = r.Add(arith.From64(inc))
		}
	}
	if resultPrecision == MaxPrecision &&
		r.Abs().Cmp(arith.MaxUnscaled128) > 0 {
		overflow = true
	}
	return dec16(r), false, overflow
}

// Mod returns the remainder of x / y with the sign of x, at scale
// max(xScale, yScale). Division by zero reports isNaN. The remainder is
// always representable at the result scale, so there is no overflow
// return; an internal failure to narrow indicates a planner bug.
func (x Decimal4) Mod(xScale int, y Decimal4, yScale int, resultPrecision, resultScale int) (result Decimal4, isNaN bool) {
	if y == 0 {
		return 0, true
	}
	xs, ys := adjustToSameScale4(x, xScale, y, yScale)
	return Decimal4(xs % ys), false
}

// Mod returns the remainder of x / y with the sign of x, at scale
// max(xScale, yScale). Division by zero reports isNaN.
func (x Decimal8) Mod(xScale int, y Decimal8, yScale int, resultPrecision, resultScale int) (result Decimal8, isNaN bool) {
	if y == 0 {
		return 0, true
	}
	xs, ys := adjustToSameScale8(x, xScale, y, yScale)
	_, rem := xs.QuoRem(ys)
	return Decimal8(rem.Int64()), false
}

// Mod returns the remainder of x / y with the sign of x, at scale
// max(xScale, yScale). Division by zero reports isNaN.
//
// Aligning the scales in 128 bits is safe below precision 38, when the
// scales already match, or when the leading-zero estimate clears the
// scale-up; otherwise both operands widen to 256 bits.
func (x Decimal16) Mod(xScale int, y Decimal16, yScale int, resultPrecision, resultScale int) (result Decimal16, isNaN bool) {
	yv := y.i128()
	if yv.IsZero() {
		return Decimal16{}, true
	}
	xv := x.i128()
	if resultScale != max(xScale, yScale) {
		panic("decimal: modulo result scale must be the larger operand scale")
	}

	if resultPrecision < MaxPrecision ||
		xScale == yScale ||
		minLeadingZeros(xv, xScale, yv, yScale) >= modFastMinLeadingZeros {
		xs, ys, overflow := adjustToSameScale16(xv, xScale, yv, yScale, resultPrecision)
		if overflow {
			panic("decimal: modulo scale-up overflow")
		}
		_, rem := xs.QuoRem(ys)
		return dec16(rem), false
	}

	xw := arith.Int256From128(xv)
	yw := arith.Int256From128(yv)
	if xScale < yScale {
		xw = xw.MulPow10(yScale - xScale)
	} else {
		yw = yw.MulPow10(xScale - yScale)
	}
	_, rem := xw.QuoRem(yw)
	r, overflow := rem.Int128(arith.MaxUnscaled128)
	if overflow {
		panic("decimal: modulo overflow")
	}
	return dec16(r), false
}
