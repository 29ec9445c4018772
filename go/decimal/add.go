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

// addFastMinLeadingZeros is the threshold for adding two 16-byte values
// directly: with at least 3 leading zeros on both operands after scale
// alignment, the sum has at least 2, and 2^126 - 1 < 10^38 - 1.
const addFastMinLeadingZeros = 3

// Add returns x + y at the result scale. The caller's type rules pin
// resultScale to max(xScale, yScale) and guarantee the sum fits, so
// overflow is impossible at this width.
func (x Decimal4) Add(xScale int, y Decimal4, yScale int, resultPrecision, resultScale int, round bool) (Decimal4, bool) {
	xs, ys := adjustToSameScale4(x, xScale, y, yScale)
	return Decimal4(xs + ys), false
}

// Sub returns x - y at the result scale.
func (x Decimal4) Sub(xScale int, y Decimal4, yScale int, resultPrecision, resultScale int, round bool) (Decimal4, bool) {
	return x.Add(xScale, -y, yScale, resultPrecision, resultScale, round)
}

// Add returns x + y at the result scale. Overflow is impossible at this
// width by the caller's type rules.
func (x Decimal8) Add(xScale int, y Decimal8, yScale int, resultPrecision, resultScale int, round bool) (Decimal8, bool) {
	xs, ys := adjustToSameScale8(x, xScale, y, yScale)
	return Decimal8(xs.Add(ys).Int64()), false
}

// Sub returns x - y at the result scale.
func (x Decimal8) Sub(xScale int, y Decimal8, yScale int, resultPrecision, resultScale int, round bool) (Decimal8, bool) {
	return x.Add(xScale, -y, yScale, resultPrecision, resultScale, round)
}

// Add returns x + y at the result scale, reporting overflow when the
// sum cannot be represented at resultPrecision.
//
// Below the maximum precision the operands and the sum are small enough
// to add after scale alignment. At precision 38 a cheap leading-zero
// estimate decides whether the aligned add can be trusted; when it
// cannot, the operands are split into whole and fractional parts and
// recombined with explicit carries.
func (x Decimal16) Add(xScale int, y Decimal16, yScale int, resultPrecision, resultScale int, round bool) (Decimal16, bool) {
	xv, yv := x.i128(), y.i128()

	if resultPrecision < MaxPrecision {
		// resultScale == max(xScale, yScale) here, so no rescale of
		// the sum is needed.
		xs, ys, _ := adjustToSameScale16(xv, xScale, yv, yScale, resultPrecision)
		return dec16(xs.Add(ys)), false
	}

	resultScaleDecrease := max(xScale-resultScale, yScale-resultScale)
	if minLeadingZeros(xv, xScale, yv, yScale) >= addFastMinLeadingZeros {
		xs, ys, _ := adjustToSameScale16(xv, xScale, yv, yScale, resultPrecision)
		sum := xs.Add(ys)
		if resultScaleDecrease > 0 {
			sum = scaleDownAndRound128(sum, resultScaleDecrease, round)
		}
		return dec16(sum), false
	}

	var result arith.Int128
	var overflow bool
	switch {
	case xv.Sign() >= 0 && yv.Sign() >= 0:
		result, overflow = addLarge(xv, xScale, yv, yScale, resultScale, round)
	case xv.Sign() <= 0 && yv.Sign() <= 0:
		result, overflow = addLarge(xv.Neg(), xScale, yv.Neg(), yScale, resultScale, round)
		result = result.Neg()
	default:
		result, overflow = subtractLarge(xv, xScale, yv, yScale, resultScale, round)
	}
	return dec16(result), overflow
}

// Sub returns x - y at the result scale.
func (x Decimal16) Sub(xScale int, y Decimal16, yScale int, resultPrecision, resultScale int, round bool) (Decimal16, bool) {
	return x.Add(xScale, y.Neg(), yScale, resultPrecision, resultScale, round)
}

// separateFractional splits x and y into whole and fractional parts at
// their own scales and scales the fractional part of the lower-scaled
// operand up so both fractionals share scale max(xScale, yScale).
func separateFractional(x arith.Int128, xScale int, y arith.Int128, yScale int) (xLeft, xRight, yLeft, yRight arith.Int128) {
	xLeft, xRight = x.QuoRem(arith.Pow10Int128[xScale])
	yLeft, yRight = y.QuoRem(arith.Pow10Int128[yScale])
	if xScale < yScale {
		xRight = xRight.MulPow10(yScale - xScale)
	} else {
		yRight = yRight.MulPow10(xScale - yScale)
	}
	return xLeft, xRight, yLeft, yRight
}

// addLarge adds operands too large for the direct path. Both inputs are
// nonnegative.
func addLarge(x arith.Int128, xScale int, y arith.Int128, yScale int, resultScale int, round bool) (arith.Int128, bool) {
	xLeft, xRight, yLeft, yRight := separateFractional(x, xScale, y, yScale)

	maxScale := max(xScale, yScale)
	resultScaleDecrease := maxScale - resultScale

	// carry is 1 when the fractional parts overflow their radix.
	var right arith.Int128
	var carry int64
	multiplier := arith.Pow10Int128[maxScale]
	if xRight.Cmp(multiplier.Sub(yRight)) >= 0 {
		carry = 1
		right = xRight.Sub(multiplier).Add(yRight)
	} else {
		right = xRight.Add(yRight)
	}
	if resultScaleDecrease > 0 {
		right = scaleDownAndRound128(right, resultScaleDecrease, round)
	}
	// right may now equal 10^resultScale if rounding carried all the
	// way up; reconstruction below absorbs that without special
	// handling.

	var overflow bool
	if xLeft.Cmp(arith.MaxUnscaled128.Sub(yLeft).Sub(arith.From64(carry))) > 0 {
		overflow = true
	}
	left := xLeft.Add(yLeft).Add(arith.From64(carry))

	resultMultiplier := arith.Pow10Int128[resultScale]
	if !overflow {
		limit, _ := arith.MaxUnscaled128.Sub(right).QuoRem(resultMultiplier)
		if left.Cmp(limit) > 0 {
			overflow = true
		}
	}
	return left.Mul(resultMultiplier).Add(right), overflow
}

// subtractLarge handles the mixed-sign case: one operand positive, one
// negative, neither zero.
func subtractLarge(x arith.Int128, xScale int, y arith.Int128, yScale int, resultScale int, round bool) (arith.Int128, bool) {
	xLeft, xRight, yLeft, yRight := separateFractional(x, xScale, y, yScale)

	maxScale := max(xScale, yScale)
	resultScaleDecrease := maxScale - resultScale

	right := xRight.Add(yRight)
	left := xLeft.Add(yLeft)

	// Make the fractional part carry the sign of the whole part by
	// borrowing one whole unit; the adjustment moves left toward zero.
	multiplier := arith.Pow10Int128[maxScale]
	if left.Sign() < 0 && right.Sign() > 0 {
		left = left.Add(arith.From64(1))
		right = right.Sub(multiplier)
	} else if left.Sign() > 0 && right.Sign() < 0 {
		left = left.Sub(arith.From64(1))
		right = right.Add(multiplier)
	}
	if resultScaleDecrease > 0 {
		right = scaleDownAndRound128(right, resultScaleDecrease, round)
	}

	var overflow bool
	resultMultiplier := arith.Pow10Int128[resultScale]
	limit, _ := arith.MaxUnscaled128.Sub(right.Abs()).QuoRem(resultMultiplier)
	if left.Abs().Cmp(limit) > 0 {
		overflow = true
	}
	return left.Mul(resultMultiplier).Add(right), overflow
}
