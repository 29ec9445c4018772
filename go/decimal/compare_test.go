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

func TestCmpAligned(t *testing.T) {
	require.Equal(t, 0, Decimal4(5).CmpAligned(5))
	require.Equal(t, -1, Decimal4(-5).CmpAligned(5))
	require.Equal(t, 1, Decimal8(5).CmpAligned(-5))
	require.Equal(t, 0, d16(t, "123").CmpAligned(d16(t, "123")))
	require.Equal(t, -1, d16(t, "-99999999999999999999999999999999999999").
		CmpAligned(d16(t, "99999999999999999999999999999999999999")))
}

func TestCmpScaled4(t *testing.T) {
	// 1.23 vs 1.230 vs 1.3.
	require.Equal(t, 0, Decimal4(123).Cmp(2, Decimal4(1230), 3))
	require.Equal(t, -1, Decimal4(123).Cmp(2, Decimal4(13), 1))
	require.Equal(t, 1, Decimal4(13).Cmp(1, Decimal4(123), 2))

	// The full 9-digit range widens without overflow.
	require.Equal(t, 1, MaxUnscaledDecimal4.Cmp(0, Decimal4(1), 9))
}

func TestCmpScaled8(t *testing.T) {
	require.Equal(t, 0, Decimal8(4500).Cmp(3, Decimal8(45), 1))
	require.Equal(t, -1, Decimal8(-45).Cmp(1, Decimal8(1), 5))
	require.Equal(t, 1, MaxUnscaledDecimal8.Cmp(0, MaxUnscaledDecimal8, 18))
}

func TestCmpScaled16(t *testing.T) {
	cap16 := MaxUnscaledDecimal16()

	// Scaling the full-precision value would overflow 128 bits; the
	// comparison must still be exact.
	require.Equal(t, -1, cap16.Cmp(2, cap16, 0))
	require.Equal(t, 1, cap16.Cmp(0, cap16, 2))
	require.Equal(t, 0, cap16.Cmp(1, cap16, 1))
	require.Equal(t, 1, cap16.Cmp(0, cap16.Neg(), 38))
	require.Equal(t, -1, cap16.Neg().Cmp(38, d16(t, "1"), 38))
}

func TestCmpAntisymmetry(t *testing.T) {
	values := []struct {
		v     string
		scale int
	}{
		{"0", 0},
		{"1", 3},
		{"-1", 3},
		{"123456", 2},
		{"99999999999999999999999999999999999999", 10},
		{"-99999999999999999999999999999999999999", 38},
	}
	for _, a := range values {
		for _, b := range values {
			x, y := d16(t, a.v), d16(t, b.v)
			c := x.Cmp(a.scale, y, b.scale)
			require.Equal(t, -c, y.Cmp(b.scale, x, a.scale),
				"cmp(%s@%d, %s@%d)", a.v, a.scale, b.v, b.scale)
			require.Contains(t, []int{-1, 0, 1}, c)
		}
	}
}
