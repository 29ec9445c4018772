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

// scaleDownAndRound64 divides v by 10^k, truncating when round is false
// and rounding half away from zero otherwise. k must be in [1, 18].
func scaleDownAndRound64(v int64, k int, round bool) int64 {
	multiplier := arith.Pow10Int64[k]
	result := v / multiplier
	if round {
		remainder := v % multiplier
		// The multiplier is even, so halving it by shift is exact.
		// Truncation biases toward zero; the correction carries the
		// sign of the dividend.
		if abs64(remainder) >= multiplier>>1 {
			result += int64(sign64(v))
		}
	}
	return result
}

// scaleDownAndRound128 is scaleDownAndRound64 over 128 bits; k must be
// in [1, 38].
func scaleDownAndRound128(v arith.Int128, k int, round bool) arith.Int128 {
	multiplier := arith.Pow10Int128[k]
	result, remainder := v.QuoRem(multiplier)
	if round {
		if remainder.Abs().Cmp(multiplier.Rsh1()) >= 0 {
			result = result.Add(arith.From64(int64(v.Sign())))
		}
	}
	return result
}

// scaleDownAndRound256 is scaleDownAndRound64 over 256 bits; k must be
// in [1, 76].
func scaleDownAndRound256(v arith.Int256, k int, round bool) arith.Int256 {
	multiplier := arith.Pow10Int256[k]
	result, remainder := v.QuoRem(multiplier)
	if round {
		if remainder.Abs().Cmp(multiplier.Rsh1()) >= 0 {
			result = result.Add(arith.Int256From64(int64(v.Sign())))
		}
	}
	return result
}

// adjustToSameScale4 brings two 4-byte values to a common scale in 64
// bits. The precision bounds make overflow impossible: the scaled
// operand stays below 10^18.
func adjustToSameScale4(x Decimal4, xScale int, y Decimal4, yScale int) (xs, ys int64) {
	xs, ys = int64(x), int64(y)
	if delta := xScale - yScale; delta > 0 {
		ys *= arith.Pow10Int64[delta]
	} else if delta < 0 {
		xs *= arith.Pow10Int64[-delta]
	}
	return xs, ys
}

// adjustToSameScale8 brings two 8-byte values to a common scale in 128
// bits; overflow is impossible below 10^36.
func adjustToSameScale8(x Decimal8, xScale int, y Decimal8, yScale int) (xs, ys arith.Int128) {
	if delta := xScale - yScale; delta > 0 {
		return arith.From64(int64(x)), arith.Mul64(int64(y), arith.Pow10Int64[delta])
	} else if delta < 0 {
		return arith.Mul64(int64(x), arith.Pow10Int64[-delta]), arith.From64(int64(y))
	}
	return arith.From64(int64(x)), arith.From64(int64(y))
}

// adjustToSameScale16 brings two 16-byte values to a common scale. At
// result precision 38 the scale-up can overflow; the precomputed
// quotient MaxUnscaled128 / 10^delta detects that case before any
// wrapping multiplication happens. At lower precisions the caller's
// type rules guarantee the product fits.
func adjustToSameScale16(x arith.Int128, xScale int, y arith.Int128, yScale int,
	resultPrecision int) (xs, ys arith.Int128, overflow bool) {
	delta := xScale - yScale
	switch {
	case delta == 0:
		return x, y, false
	case delta > 0:
		if resultPrecision == MaxPrecision &&
			arith.ScaleQuotient128[delta].Cmp(y.Abs()) < 0 {
			return xs, ys, true
		}
		return x, y.MulPow10(delta), false
	default:
		if resultPrecision == MaxPrecision &&
			arith.ScaleQuotient128[-delta].Cmp(x.Abs()) < 0 {
			return xs, ys, true
		}
		return x.MulPow10(-delta), y, false
	}
}

// minLeadingZerosAfterScaling is a lower bound on the leading-zero count
// of a magnitude with numLZ leading zeros after multiplication by
// 10^scaleDiff, using lz(a*b) >= lz(a) - floor(log2(b)) - 1.
func minLeadingZerosAfterScaling(numLZ, scaleDiff int) int {
	return numLZ - arith.FloorLog2Pow10[scaleDiff] - 1
}

// minLeadingZeros returns the minimum number of leading zeros x or y
// would have after the lower-scaled one gets scaled up to match the
// other. A conservative bound, used only for fast-path selection.
func minLeadingZeros(x arith.Int128, xScale int, y arith.Int128, yScale int) int {
	xLZ := x.Abs().LeadingZeros()
	yLZ := y.Abs().LeadingZeros()
	if xScale < yScale {
		xLZ = minLeadingZerosAfterScaling(xLZ, yScale-xScale)
	} else if xScale > yScale {
		yLZ = minLeadingZerosAfterScaling(yLZ, xScale-yScale)
	}
	if xLZ < yLZ {
		return xLZ
	}
	return yLZ
}
