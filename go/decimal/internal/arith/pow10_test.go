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

package arith

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPow10Tables(t *testing.T) {
	ten := big.NewInt(10)
	for k := 0; k <= 76; k++ {
		want := new(big.Int).Exp(ten, big.NewInt(int64(k)), nil)
		if k <= 18 {
			require.Equal(t, want.Int64(), Pow10Int64[k], "10^%d as int64", k)
		}
		if k <= 38 {
			require.Equal(t, want.String(), Pow10Int128[k].BigInt().String(), "10^%d as Int128", k)
		}
		require.Equal(t, want.String(), Pow10Int256[k].BigInt().String(), "10^%d as Int256", k)
	}
}

func TestMaxUnscaled128(t *testing.T) {
	want := new(big.Int).Exp(big.NewInt(10), big.NewInt(38), nil)
	want.Sub(want, big.NewInt(1))
	require.Equal(t, want.String(), MaxUnscaled128.BigInt().String())
}

// The scale quotients must be exact integer truncations of
// MaxUnscaled128 / 10^k; a rounded table would let scaled values slip
// past the overflow pre-check.
func TestScaleQuotient128(t *testing.T) {
	maxUnscaled := MaxUnscaled128.BigInt()
	ten := big.NewInt(10)
	for k := 0; k <= 38; k++ {
		pow := new(big.Int).Exp(ten, big.NewInt(int64(k)), nil)
		want := new(big.Int).Quo(maxUnscaled, pow)
		require.Equal(t, want.String(), ScaleQuotient128[k].BigInt().String(), "quotient at 10^%d", k)
	}
}

func TestFloorLog2Pow10(t *testing.T) {
	ten := big.NewInt(10)
	for k := 0; k <= 39; k++ {
		pow := new(big.Int).Exp(ten, big.NewInt(int64(k)), nil)
		require.Equal(t, pow.BitLen()-1, FloorLog2Pow10[k], "floor(log2(10^%d))", k)
	}
}
