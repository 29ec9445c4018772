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

// d16 parses an integer literal into a raw Decimal16.
func d16(t *testing.T, s string) Decimal16 {
	t.Helper()
	v, overflow, err := Parse16(s, MaxPrecision, 0, false)
	require.NoError(t, err)
	require.False(t, overflow, "literal %q does not fit", s)
	return v
}

func TestStorageSize(t *testing.T) {
	require.Equal(t, 4, StorageSize(1))
	require.Equal(t, 4, StorageSize(9))
	require.Equal(t, 8, StorageSize(10))
	require.Equal(t, 8, StorageSize(18))
	require.Equal(t, 16, StorageSize(19))
	require.Equal(t, 16, StorageSize(38))
}

func TestSignAbsNeg(t *testing.T) {
	require.Equal(t, 0, Decimal4(0).Sign())
	require.Equal(t, 1, Decimal4(7).Sign())
	require.Equal(t, -1, Decimal4(-7).Sign())
	require.Equal(t, Decimal4(7), Decimal4(-7).Abs())
	require.Equal(t, Decimal8(7), Decimal8(-7).Neg())

	x := d16(t, "-12345678901234567890123456789")
	require.Equal(t, -1, x.Sign())
	require.Equal(t, d16(t, "12345678901234567890123456789"), x.Abs())
	require.Equal(t, x, x.Abs().Neg())
	require.True(t, Decimal16{}.IsZero())
	require.False(t, x.IsZero())
}

func TestMaxUnscaledConstants(t *testing.T) {
	require.Equal(t, Decimal4(999999999), MaxUnscaledDecimal4)
	require.Equal(t, Decimal8(999999999999999999), MaxUnscaledDecimal8)
	require.Equal(t, d16(t, "99999999999999999999999999999999999999"), MaxUnscaledDecimal16())
}

func TestDecimal16Bits(t *testing.T) {
	x := NewDecimal16FromRawInt64(-1)
	require.Equal(t, int64(-1), x.HighBits())
	require.Equal(t, ^uint64(0), x.LowBits())
	require.Equal(t, x, NewDecimal16(-1, ^uint64(0)))
}
