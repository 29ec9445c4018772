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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 999, -999, 123456789} {
		d4, overflow := NewDecimal4FromInt64(9, 0, v)
		require.False(t, overflow)
		got, overflow := d4.ToInt64(0)
		require.False(t, overflow)
		require.Equal(t, v, got)
	}
	for _, v := range []int64{0, -42, 999999999999999999, math.MinInt64 + 1} {
		d16v, overflow := NewDecimal16FromInt64(38, 0, v)
		require.False(t, overflow)
		got, overflow := d16v.ToInt64(0)
		require.False(t, overflow)
		require.Equal(t, v, got)
	}
}

func TestFromInt64Scaled(t *testing.T) {
	d8, overflow := NewDecimal8FromInt64(10, 3, 1234567)
	require.False(t, overflow)
	require.Equal(t, Decimal8(1234567000), d8)

	// One digit too many for the whole part.
	_, overflow = NewDecimal4FromInt64(9, 2, 10000000)
	require.True(t, overflow)
	_, overflow = NewDecimal4FromInt64(9, 2, -10000000)
	require.True(t, overflow)

	d16v, overflow := NewDecimal16FromInt64(38, 20, 7)
	require.False(t, overflow)
	require.Equal(t, d16(t, "700000000000000000000"), d16v)
}

func TestFromFloat64(t *testing.T) {
	// The nearest double below 1.005 keeps the scaled value under
	// 100.5, so the rounded conversion lands on 100.
	d, overflow := NewDecimal16FromFloat64(5, 2, 1.005, true)
	require.False(t, overflow)
	require.Equal(t, d16(t, "100"), d)

	d8v, overflow := NewDecimal8FromFloat64(5, 2, -1.005, true)
	require.False(t, overflow)
	require.Equal(t, Decimal8(-100), d8v)

	d4v, overflow := NewDecimal4FromFloat64(4, 1, 2.5, true)
	require.False(t, overflow)
	require.Equal(t, Decimal4(25), d4v)

	_, overflow = NewDecimal16FromFloat64(5, 2, math.NaN(), true)
	require.True(t, overflow)
	_, overflow = NewDecimal8FromFloat64(5, 2, math.NaN(), false)
	require.True(t, overflow)
}

func TestFromFloat64Boundary(t *testing.T) {
	// Truncation keeps the value in range; rounding pushes it out.
	d, overflow := NewDecimal8FromFloat64(5, 0, 99999.999, false)
	require.False(t, overflow)
	require.Equal(t, Decimal8(99999), d)

	_, overflow = NewDecimal8FromFloat64(5, 0, 99999.999, true)
	require.True(t, overflow)

	_, overflow = NewDecimal8FromFloat64(5, 0, 100000, false)
	require.True(t, overflow)
	_, overflow = NewDecimal8FromFloat64(5, 0, -100000, false)
	require.True(t, overflow)

	d16v, overflow := NewDecimal16FromFloat64(38, 0, 1e30, false)
	require.False(t, overflow)
	require.Equal(t, d16(t, "1000000000000000019884624838656"), d16v)
}

func TestToIntRounding(t *testing.T) {
	testcases := []struct {
		v     Decimal8
		scale int
		want  int64
	}{
		{1050, 2, 11},
		{1049, 2, 10},
		{-1050, 2, -11},
		{-1049, 2, -10},
		{5, 1, 1},
		{4, 1, 0},
		{-5, 1, -1},
		{0, 3, 0},
	}
	for _, tc := range testcases {
		got, overflow := tc.v.ToInt64(tc.scale)
		require.False(t, overflow)
		require.Equal(t, tc.want, got, "%d at scale %d", tc.v, tc.scale)

		// Half-away-from-zero is odd-symmetric.
		neg, _ := (-tc.v).ToInt64(tc.scale)
		require.Equal(t, int64(0), got+neg)
	}
}

func TestToIntDecimal16(t *testing.T) {
	v := d16(t, "123456789012345678901234567890")
	got, overflow := v.ToInt64(11)
	require.False(t, overflow)
	require.Equal(t, int64(1234567890123456789), got)

	// Rounds the dropped half up.
	v = d16(t, "15")
	got, overflow = v.ToInt64(1)
	require.False(t, overflow)
	require.Equal(t, int64(2), got)

	_, overflow = MaxUnscaledDecimal16().ToInt64(0)
	require.True(t, overflow)
}

func TestToInt32(t *testing.T) {
	got, overflow := Decimal8(3000000000).ToInt32(0)
	require.True(t, overflow)
	require.Equal(t, int32(0), got)

	got, overflow = Decimal8(123450).ToInt32(1)
	require.False(t, overflow)
	require.Equal(t, int32(12345), got)

	got16, overflow := d16(t, "3000000000").ToInt32(0)
	require.True(t, overflow)
	require.Equal(t, int32(0), got16)
}

func TestToFloat64(t *testing.T) {
	require.Equal(t, 1.23, Decimal4(123).ToFloat64(2))
	require.Equal(t, -0.5, Decimal8(-5).ToFloat64(1))
	require.InEpsilon(t, 1e19, d16(t, "10000000000000000000").ToFloat64(0), 1e-12)
}

func TestScaleTo(t *testing.T) {
	// Scaling down can still overflow a smaller destination precision:
	// 100 as decimal(3,0) does not fit decimal(2,0).
	_, overflow := Decimal4(100).ScaleTo(0, 0, 2)
	require.True(t, overflow)

	r, overflow := Decimal8(123456).ScaleTo(3, 1, 5)
	require.False(t, overflow)
	require.Equal(t, Decimal8(1234), r)

	// Scale-up boundary: two more digits fit in precision 5 only for
	// values below 1000.
	r, overflow = Decimal8(999).ScaleTo(0, 2, 5)
	require.False(t, overflow)
	require.Equal(t, Decimal8(99900), r)
	_, overflow = Decimal8(1000).ScaleTo(0, 2, 5)
	require.True(t, overflow)

	// The 128-bit scale-up is pre-checked, not performed.
	_, overflow = MaxUnscaledDecimal16().ScaleTo(0, 1, 38)
	require.True(t, overflow)

	r16, overflow := d16(t, "-12345").ScaleTo(0, 3, 10)
	require.False(t, overflow)
	require.Equal(t, d16(t, "-12345000"), r16)
}

func TestWidthConversions(t *testing.T) {
	require.Equal(t, Decimal8(-123), Decimal4(-123).ToDecimal8())
	require.Equal(t, d16(t, "-123"), Decimal4(-123).ToDecimal16())
	require.Equal(t, d16(t, "999999999999999999"), MaxUnscaledDecimal8.ToDecimal16())

	d4, overflow := Decimal8(123).ToDecimal4()
	require.False(t, overflow)
	require.Equal(t, Decimal4(123), d4)
	_, overflow = Decimal8(math.MaxInt32 + 1).ToDecimal4()
	require.True(t, overflow)
	_, overflow = Decimal8(math.MinInt32).ToDecimal4()
	require.True(t, overflow)

	d8, overflow := d16(t, "-999999999999999999").ToDecimal8()
	require.False(t, overflow)
	require.Equal(t, Decimal8(-999999999999999999), d8)
	_, overflow = MaxUnscaledDecimal16().ToDecimal8()
	require.True(t, overflow)

	d4, overflow = d16(t, "999999999").ToDecimal4()
	require.False(t, overflow)
	require.Equal(t, MaxUnscaledDecimal4, d4)
	_, overflow = d16(t, "99999999999").ToDecimal4()
	require.True(t, overflow)
}
