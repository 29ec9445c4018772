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
	"math"

	"vitess.io/fixeddecimal/go/decimal/internal/arith"
)

// The double conversions are inherently lossy: the error of the scale
// multiplication starts around 1e23 and can land on either side, so a
// value near the precision cap may overflow after scaling even though
// the unscaled double looked fine. Callers that need exact literals
// should parse strings instead.

// NewDecimal4FromFloat64 converts d at the given precision and scale,
// truncating toward zero unless round is set. NaN and out-of-range
// values report overflow.
func NewDecimal4FromFloat64(precision, scale int, d float64, round bool) (Decimal4, bool) {
	d *= math.Pow10(scale)
	if round {
		d = math.Round(d)
	}
	if math.IsNaN(d) || math.Abs(d) >= math.Pow10(precision) {
		return 0, true
	}
	return Decimal4(int32(d)), false
}

// NewDecimal8FromFloat64 converts d at the given precision and scale,
// truncating toward zero unless round is set. NaN and out-of-range
// values report overflow.
func NewDecimal8FromFloat64(precision, scale int, d float64, round bool) (Decimal8, bool) {
	d *= math.Pow10(scale)
	if round {
		d = math.Round(d)
	}
	if math.IsNaN(d) || math.Abs(d) >= math.Pow10(precision) {
		return 0, true
	}
	return Decimal8(int64(d)), false
}

// NewDecimal16FromFloat64 converts d at the given precision and scale,
// truncating toward zero unless round is set. NaN and out-of-range
// values report overflow.
func NewDecimal16FromFloat64(precision, scale int, d float64, round bool) (Decimal16, bool) {
	d *= math.Pow10(scale)
	if round {
		d = math.Round(d)
	}
	if math.IsNaN(d) || math.Abs(d) >= math.Pow10(precision) {
		return Decimal16{}, true
	}
	return dec16(arith.Int128FromFloat64(d)), false
}

// NewDecimal4FromInt64 converts v, reporting overflow when it has more
// than precision - scale digits.
func NewDecimal4FromInt64(precision, scale int, v int64) (Decimal4, bool) {
	if abs64(v) >= arith.Pow10Int64[precision-scale] {
		return 0, true
	}
	return Decimal4(v * arith.Pow10Int64[scale]), false
}

// NewDecimal8FromInt64 converts v, reporting overflow when it has more
// than precision - scale digits.
func NewDecimal8FromInt64(precision, scale int, v int64) (Decimal8, bool) {
	if abs64(v) >= arith.Pow10Int64[precision-scale] {
		return 0, true
	}
	return Decimal8(v * arith.Pow10Int64[scale]), false
}

// NewDecimal16FromInt64 converts v, reporting overflow when it has
// more than precision - scale digits.
func NewDecimal16FromInt64(precision, scale int, v int64) (Decimal16, bool) {
	vw := arith.From64(v)
	if vw.Abs().Cmp(arith.Pow10Int128[precision-scale]) >= 0 {
		return Decimal16{}, true
	}
	return dec16(vw.MulPow10(scale)), false
}

// ToInt64 returns the whole value, rounding half away from zero, and
// reports overflow when it does not fit an int64.
func (x Decimal4) ToInt64(scale int) (int64, bool) {
	return roundedWhole64(int64(x), scale), false
}

// ToInt64 returns the whole value, rounding half away from zero, and
// reports overflow when it does not fit an int64.
func (x Decimal8) ToInt64(scale int) (int64, bool) {
	return roundedWhole64(int64(x), scale), false
}

// ToInt64 returns the whole value, rounding half away from zero, and
// reports overflow when it does not fit an int64.
func (x Decimal16) ToInt64(scale int) (int64, bool) {
	result := x.i128()
	if scale > 0 {
		divisor := arith.Pow10Int128[scale]
		q, rem := result.QuoRem(divisor)
		if rem.Abs().Cmp(divisor.Rsh1()) >= 0 {
			q = q.Add(arith.From64(int64(result.Sign())))
		}
		result = q
	}
	if !result.IsInt64() {
		return 0, true
	}
	return result.Int64(), false
}

// ToInt32 returns the whole value, rounding half away from zero, and
// reports overflow when it does not fit an int32.
func (x Decimal4) ToInt32(scale int) (int32, bool) {
	return narrow32(roundedWhole64(int64(x), scale))
}

// ToInt32 returns the whole value, rounding half away from zero, and
// reports overflow when it does not fit an int32.
func (x Decimal8) ToInt32(scale int) (int32, bool) {
	return narrow32(roundedWhole64(int64(x), scale))
}

// ToInt32 returns the whole value, rounding half away from zero, and
// reports overflow when it does not fit an int32.
func (x Decimal16) ToInt32(scale int) (int32, bool) {
	v, overflow := x.ToInt64(scale)
	if overflow {
		return 0, true
	}
	return narrow32(v)
}

func roundedWhole64(v int64, scale int) int64 {
	if scale == 0 {
		return v
	}
	divisor := arith.Pow10Int64[scale]
	result := v / divisor
	remainder := v % divisor
	// The divisor is even, so the halving shift is exact. Truncation
	// biases toward zero; the correction carries the dividend's sign.
	if abs64(remainder) >= divisor>>1 {
		result += int64(sign64(v))
	}
	return result
}

func narrow32(v int64) (int32, bool) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, true
	}
	return int32(v), false
}

// ToFloat64 returns the value as a double. Lossy beyond 15 significant
// digits.
func (x Decimal4) ToFloat64(scale int) float64 {
	return float64(x) / math.Pow10(scale)
}

// ToFloat64 returns the value as a double. Lossy beyond 15 significant
// digits.
func (x Decimal8) ToFloat64(scale int) float64 {
	return float64(x) / math.Pow10(scale)
}

// ToFloat64 returns the value as a double. Lossy beyond 15 significant
// digits.
func (x Decimal16) ToFloat64(scale int) float64 {
	return x.i128().Float64() / math.Pow10(scale)
}

// ScaleTo rescales x from srcScale to dstScale and reports overflow
// against dstPrecision. Scaling down truncates; even then the result can
// overflow a smaller destination precision, e.g. 100 as decimal(3,0)
// into decimal(2,0). Scaling up is pre-checked before multiplying.
func (x Decimal4) ScaleTo(srcScale, dstScale, dstPrecision int) (Decimal4, bool) {
	r, overflow := scaleTo64(int64(x), srcScale, dstScale, dstPrecision)
	return Decimal4(r), overflow
}

// ScaleTo rescales x from srcScale to dstScale and reports overflow
// against dstPrecision.
func (x Decimal8) ScaleTo(srcScale, dstScale, dstPrecision int) (Decimal8, bool) {
	r, overflow := scaleTo64(int64(x), srcScale, dstScale, dstPrecision)
	return Decimal8(r), overflow
}

// ScaleTo rescales x from srcScale to dstScale and reports overflow
// against dstPrecision.
func (x Decimal16) ScaleTo(srcScale, dstScale, dstPrecision int) (Decimal16, bool) {
	result := x.i128()
	maxValue := arith.Pow10Int128[dstPrecision]
	deltaScale := srcScale - dstScale
	var overflow bool
	if deltaScale >= 0 {
		if deltaScale != 0 {
			result, _ = result.QuoRem(arith.Pow10Int128[deltaScale])
		}
		overflow = result.Abs().Cmp(maxValue) >= 0
	} else {
		multiplier := arith.Pow10Int128[-deltaScale]
		limit, _ := maxValue.QuoRem(multiplier)
		overflow = result.Abs().Cmp(limit) >= 0
		if !overflow {
			result = result.Mul(multiplier)
		}
	}
	return dec16(result), overflow
}

func scaleTo64(v int64, srcScale, dstScale, dstPrecision int) (int64, bool) {
	result := v
	maxValue := arith.Pow10Int64[dstPrecision]
	deltaScale := srcScale - dstScale
	var overflow bool
	if deltaScale >= 0 {
		if deltaScale != 0 {
			result /= arith.Pow10Int64[deltaScale]
		}
		overflow = abs64(result) >= maxValue
	} else {
		multiplier := arith.Pow10Int64[-deltaScale]
		overflow = abs64(result) >= maxValue/multiplier
		if !overflow {
			result *= multiplier
		}
	}
	return result, overflow
}

// Width conversions preserve the scale and flag overflow when the value
// exceeds the destination's storage range. Widening is exact.

// ToDecimal8 widens x.
func (x Decimal4) ToDecimal8() Decimal8 { return Decimal8(x) }

// ToDecimal16 widens x.
func (x Decimal4) ToDecimal16() Decimal16 { return NewDecimal16FromRawInt64(int64(x)) }

// ToDecimal4 narrows x, reporting overflow when |x| exceeds
// math.MaxInt32 (math.MinInt32 included).
func (x Decimal8) ToDecimal4() (Decimal4, bool) {
	if abs64(int64(x)) > math.MaxInt32 {
		return 0, true
	}
	return Decimal4(x), false
}

// ToDecimal16 widens x.
func (x Decimal8) ToDecimal16() Decimal16 { return NewDecimal16FromRawInt64(int64(x)) }

// ToDecimal4 narrows x, reporting overflow when |x| exceeds
// math.MaxInt32 (math.MinInt32 included).
func (x Decimal16) ToDecimal4() (Decimal4, bool) {
	v := x.i128()
	if v.Abs().Cmp(arith.From64(math.MaxInt32)) > 0 {
		return 0, true
	}
	return Decimal4(int32(v.Int64())), false
}

// ToDecimal8 narrows x, reporting overflow when |x| exceeds
// math.MaxInt64 (math.MinInt64 included).
func (x Decimal16) ToDecimal8() (Decimal8, bool) {
	v := x.i128()
	if v.Abs().Cmp(arith.From64(math.MaxInt64)) > 0 {
		return 0, true
	}
	return Decimal8(v.Int64()), false
}
