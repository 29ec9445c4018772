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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulDecimal4(t *testing.T) {
	// 1.23 * 0.2 = 0.246: unscaled multiply, scales fold into the type.
	r, overflow := Decimal4(123).Mul(2, Decimal4(2), 1, 4, 3, false)
	require.False(t, overflow)
	require.Equal(t, Decimal4(246), r)

	// 1.23 * 2.5 at scale 2 rounds 3.075 up.
	r, _ = Decimal4(123).Mul(2, Decimal4(25), 1, 4, 2, true)
	require.Equal(t, Decimal4(308), r)
	r, _ = Decimal4(123).Mul(2, Decimal4(25), 1, 4, 2, false)
	require.Equal(t, Decimal4(307), r)

	// The negative product rounds away from zero.
	r, _ = Decimal4(-123).Mul(2, Decimal4(25), 1, 4, 2, true)
	require.Equal(t, Decimal4(-308), r)
}

func TestMulDecimal8(t *testing.T) {
	// The intermediate exceeds 64 bits: 123456 * 654321 scaled down.
	r, overflow := Decimal8(123456000000).Mul(6, Decimal8(654321000000), 6, MaxPrecision8, 6, false)
	require.False(t, overflow)
	require.Equal(t, Decimal8(80779853376000000), r)

	zero, _ := Decimal8(123456).Mul(3, Decimal8(0), 0, MaxPrecision8, 3, false)
	require.Equal(t, Decimal8(0), zero)
}

func TestMulDecimal16ByOne(t *testing.T) {
	one := d16(t, "1000") // 1.000
	for _, s := range []string{"0", "1", "-1", "123456789", "99999999999999999999999999999999999"} {
		x := d16(t, s)
		r, overflow := x.Mul(2, one, 3, MaxPrecision, 2, true)
		require.False(t, overflow)
		require.Equal(t, x, r, "%s * 1", s)
	}
}

func TestMulDecimal16Overflow(t *testing.T) {
	// 9999999999999999999999999999999999999.9 * 10.0 as decimal(38,1).
	x := MaxUnscaledDecimal16()
	y := d16(t, "100")
	_, overflow := x.Mul(1, y, 1, MaxPrecision, 1, true)
	require.True(t, overflow)

	// The conservative 256-bit estimate with no scale-down to save it.
	big := d16(t, "10000000000000000000")
	_, overflow = big.Mul(0, big, 0, MaxPrecision, 0, true)
	require.True(t, overflow)
}

func TestMulDecimal16Int256Path(t *testing.T) {
	// 64 leading zeros each: the product needs the wide intermediate,
	// and the scale-down brings it back under the cap.
	big := d16(t, "10000000000000000000")
	r, overflow := big.Mul(1, big, 1, MaxPrecision, 1, true)
	require.False(t, overflow)
	require.Equal(t, d16(t, "10000000000000000000000000000000000000"), r)

	neg, overflow := big.Neg().Mul(1, big, 1, MaxPrecision, 1, true)
	require.False(t, overflow)
	require.Equal(t, d16(t, "-10000000000000000000000000000000000000"), neg)
}

func TestMulDecimal16DirectWithScaleDown(t *testing.T) {
	// Fits 128 bits (plenty of leading zeros), still rescales.
	x := d16(t, "12345")
	y := d16(t, "6789")
	r, overflow := x.Mul(3, y, 3, MaxPrecision, 4, true)
	require.False(t, overflow)
	// 12345 * 6789 = 83810205, scaled down two digits.
	require.Equal(t, d16(t, "838102"), r)
}

func TestMulDecimal16DeltaScale39(t *testing.T) {
	// decimal(38,38) * decimal(38,38) as decimal(38,37): every product
	// of tiny operands rounds to zero.
	x := d16(t, "1")
	r, overflow := x.Mul(38, x, 38, MaxPrecision, 37, true)
	require.False(t, overflow)
	require.True(t, r.IsZero())

	require.Panics(t, func() {
		x.Mul(38, x, 38, MaxPrecision, 37, false)
	})
}

func TestMulDecimal16NearCapByTiny(t *testing.T) {
	// cap * 0.99... at scale 38 exercises the wide path with a large
	// scale-down.
	x := MaxUnscaledDecimal16()
	y := d16(t, "99999999999999999999999999999999999999") // 0.99... at scale 38
	r, overflow := x.Mul(0, y, 38, MaxPrecision, 0, true)
	require.False(t, overflow)
	require.Equal(t, d16(t, "99999999999999999999999999999999999998"), r)
}

func TestMulZero(t *testing.T) {
	zero, overflow := MaxUnscaledDecimal16().Mul(0, Decimal16{}, 0, MaxPrecision, 0, false)
	require.False(t, overflow)
	require.True(t, zero.IsZero())
}
