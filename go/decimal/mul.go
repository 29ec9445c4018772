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

// Mul returns x * y rescaled from xScale + yScale down to resultScale.
// The caller's type rules guarantee the product fits at this width.
func (x Decimal4) Mul(xScale int, y Decimal4, yScale int, resultPrecision, resultScale int, round bool) (Decimal4, bool) {
	deltaScale := xScale + yScale - resultScale
	result := int64(x) * int64(y)
	if deltaScale > 0 {
		result = scaleDownAndRound64(result, deltaScale, round)
	}
	return Decimal4(result), false
}

// Mul returns x * y rescaled from xScale + yScale down to resultScale.
// The product is formed in 128 bits; the caller's type rules guarantee
// the rescaled result fits.
func (x Decimal8) Mul(xScale int, y Decimal8, yScale int, resultPrecision, resultScale int, round bool) (Decimal8, bool) {
	deltaScale := xScale + yScale - resultScale
	result := arith.Mul64(int64(x), int64(y))
	if deltaScale > 0 {
		result = scaleDownAndRound128(result, deltaScale, round)
	}
	return Decimal8(result.Int64()), false
}

// Mul returns x * y rescaled from xScale + yScale down to resultScale,
// reporting overflow when the result cannot be represented at
// resultPrecision.
//
// The unscaled values multiply directly; the frontend already folded the
// scales into the result type, so the only rescale is the scale-down by
// deltaScale. At precision 38 the product may need 256 bits; the
// leading-zero sum decides that conservatively, and a division-based
// pre-check resolves the deltaScale == 0 case without widening.
func (x Decimal16) Mul(xScale int, y Decimal16, yScale int, resultPrecision, resultScale int, round bool) (Decimal16, bool) {
	xv, yv := x.i128(), y.i128()
	if xv.IsZero() || yv.IsZero() {
		// Also keeps the overflow pre-check below free of a divide
		// by zero.
		return Decimal16{}, false
	}
	deltaScale := xScale + yScale - resultScale
	if deltaScale < 0 {
		panic("decimal: result scale exceeds the sum of the operand scales")
	}

	var overflow bool
	needs256 := false
	if resultPrecision == MaxPrecision {
		totalLeadingZeros := xv.Abs().LeadingZeros() + yv.Abs().LeadingZeros()
		// Conservative: a 256-bit intermediate is truly needed only
		// below 128, the equal case is a false positive.
		needs256 = totalLeadingZeros <= 128
		if needs256 && deltaScale == 0 {
			limit, _ := arith.MaxUnscaled128.QuoRem(yv.Abs())
			if xv.Abs().Cmp(limit) > 0 {
				// The intermediate would not fit in 128 bits and
				// there is no scale-down to shrink it.
				overflow = true
			} else {
				needs256 = false
			}
		}
	}

	var result arith.Int128
	switch {
	case needs256:
		if deltaScale != 0 {
			intermediate := arith.Mul128(xv, yv)
			intermediate = scaleDownAndRound256(intermediate, deltaScale, round)
			result, overflow = intermediate.Int128(arith.MaxUnscaled128)
		}
		// deltaScale == 0 was already resolved to overflow above.
	case deltaScale == 0:
		result = xv.Mul(yv)
		if resultPrecision == MaxPrecision &&
			result.Abs().Cmp(arith.MaxUnscaled128) > 0 {
			overflow = true
		}
	case deltaScale <= MaxPrecision:
		// The product stays under 2^127 because the leading-zero sum
		// exceeded 128, and the scale-down by at least one digit
		// brings it under the cap.
		result = xv.Mul(yv)
		result = scaleDownAndRound128(result, deltaScale, round)
	default:
		// deltaScale == 39: decimal(38,38) * decimal(38,38) into
		// decimal(38,37). Even 38 nines scaled down 39 digits rounds
		// to zero, and 10^39 does not fit the 128-bit table, so the
		// case is pinned here. It only arises with rounding enabled.
		if deltaScale != MaxPrecision+1 || !round {
			panic("decimal: unexpected multiply rescale")
		}
	}
	return dec16(result), overflow
}
