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

// Package decimal implements exact fixed-precision decimal arithmetic
// over three storage widths: Decimal4 (int32, up to 9 digits), Decimal8
// (int64, up to 18 digits) and Decimal16 (128 bits, up to 38 digits).
//
// A value is a raw signed integer v; precision and scale are metadata the
// caller supplies with every operation, and the number represented is
// v / 10^scale. The caller (the type checker of the query engine) owns
// the choice of result precision and scale; the kernels here trust those
// choices and report overflow and division-by-zero out of band. On
// overflow the returned value is unspecified.
//
// All operations are pure functions over read-only tables and are safe
// for concurrent use.
package decimal

import "vitess.io/fixeddecimal/go/decimal/internal/arith"

// Width caps. A precision in (0, 9] is stored in a Decimal4, (9, 18] in
// a Decimal8 and (18, 38] in a Decimal16.
const (
	MaxPrecision4 = 9
	MaxPrecision8 = 18
	MaxPrecision  = 38
)

// Largest unscaled values per width: 10^P - 1 at the width's maximum
// precision.
const (
	MaxUnscaledDecimal4 Decimal4 = 1e9 - 1
	MaxUnscaledDecimal8 Decimal8 = 1e18 - 1
)

// MaxUnscaledDecimal16 returns 10^38 - 1.
func MaxUnscaledDecimal16() Decimal16 {
	return dec16(arith.MaxUnscaled128)
}

// Decimal4 is a decimal value stored in 4 bytes.
type Decimal4 int32

// Decimal8 is a decimal value stored in 8 bytes.
type Decimal8 int64

// Decimal16 is a decimal value stored in 16 bytes, two's complement.
type Decimal16 struct {
	hi int64
	lo uint64
}

// NewDecimal16 builds a Decimal16 from the two's-complement halves.
func NewDecimal16(hi int64, lo uint64) Decimal16 {
	return Decimal16{hi: hi, lo: lo}
}

// NewDecimal16FromRawInt64 sign-extends a raw unscaled v to 16 bytes.
func NewDecimal16FromRawInt64(v int64) Decimal16 {
	return dec16(arith.From64(v))
}

// HighBits returns the high half of the two's-complement representation.
func (x Decimal16) HighBits() int64 { return x.hi }

// LowBits returns the low half of the two's-complement representation.
func (x Decimal16) LowBits() uint64 { return x.lo }

func (x Decimal16) i128() arith.Int128 {
	return arith.Int128{Hi: uint64(x.hi), Lo: x.lo}
}

func dec16(v arith.Int128) Decimal16 {
	return Decimal16{hi: int64(v.Hi), lo: v.Lo}
}

// IsZero reports whether x == 0.
func (x Decimal16) IsZero() bool { return x.hi == 0 && x.lo == 0 }

// Sign returns -1, 0 or +1.
func (x Decimal4) Sign() int { return sign64(int64(x)) }

// Sign returns -1, 0 or +1.
func (x Decimal8) Sign() int { return sign64(int64(x)) }

// Sign returns -1, 0 or +1.
func (x Decimal16) Sign() int { return x.i128().Sign() }

// Abs returns the magnitude of x.
func (x Decimal4) Abs() Decimal4 {
	if x < 0 {
		return -x
	}
	return x
}

// Abs returns the magnitude of x.
func (x Decimal8) Abs() Decimal8 {
	if x < 0 {
		return -x
	}
	return x
}

// Abs returns the magnitude of x.
func (x Decimal16) Abs() Decimal16 { return dec16(x.i128().Abs()) }

// Neg returns -x.
func (x Decimal4) Neg() Decimal4 { return -x }

// Neg returns -x.
func (x Decimal8) Neg() Decimal8 { return -x }

// Neg returns -x.
func (x Decimal16) Neg() Decimal16 { return dec16(x.i128().Neg()) }

// StorageSize returns the number of bytes backing a decimal of the given
// precision: 4, 8 or 16.
func StorageSize(precision int) int {
	switch {
	case precision <= MaxPrecision4:
		return 4
	case precision <= MaxPrecision8:
		return 8
	default:
		return 16
	}
}

func sign64(v int64) int {
	if v == 0 {
		return 0
	}
	return int(1 | v>>63)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
