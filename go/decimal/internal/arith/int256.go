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
	"math/bits"
)

// Int256 is a signed 256-bit integer in two's complement, stored as four
// little-endian 64-bit words. It exists only as an intermediate for the
// 128-bit divide, modulo and multiply slow paths.
type Int256 [4]uint64

// Int256From128 sign-extends x to 256 bits.
func Int256From128(x Int128) Int256 {
	ext := uint64(int64(x.Hi) >> 63)
	return Int256{x.Lo, x.Hi, ext, ext}
}

// Int256From64 sign-extends v to 256 bits.
func Int256From64(v int64) Int256 {
	return Int256From128(From64(v))
}

// IsZero reports whether x == 0.
func (x Int256) IsZero() bool {
	return x[0]|x[1]|x[2]|x[3] == 0
}

// Sign returns -1, 0 or +1.
func (x Int256) Sign() int {
	if x.IsZero() {
		return 0
	}
	return int(1 | int64(x[3])>>63)
}

// Neg returns -x.
func (x Int256) Neg() Int256 {
	var z Int256
	var borrow uint64
	z[0], borrow = bits.Sub64(0, x[0], 0)
	z[1], borrow = bits.Sub64(0, x[1], borrow)
	z[2], borrow = bits.Sub64(0, x[2], borrow)
	z[3], _ = bits.Sub64(0, x[3], borrow)
	return z
}

// Abs returns the magnitude of x.
func (x Int256) Abs() Int256 {
	if int64(x[3]) < 0 {
		return x.Neg()
	}
	return x
}

// Add returns x + y.
func (x Int256) Add(y Int256) Int256 {
	var z Int256
	var carry uint64
	z[0], carry = bits.Add64(x[0], y[0], 0)
	z[1], carry = bits.Add64(x[1], y[1], carry)
	z[2], carry = bits.Add64(x[2], y[2], carry)
	z[3], _ = bits.Add64(x[3], y[3], carry)
	return z
}

// Sub returns x - y.
func (x Int256) Sub(y Int256) Int256 {
	var z Int256
	var borrow uint64
	z[0], borrow = bits.Sub64(x[0], y[0], 0)
	z[1], borrow = bits.Sub64(x[1], y[1], borrow)
	z[2], borrow = bits.Sub64(x[2], y[2], borrow)
	z[3], _ = bits.Sub64(x[3], y[3], borrow)
	return z
}

// Cmp compares x and y as signed integers and returns -1, 0 or +1.
func (x Int256) Cmp(y Int256) int {
	if x == y {
		return 0
	}
	if xneg, yneg := int64(x[3]) < 0, int64(y[3]) < 0; xneg != yneg {
		if xneg {
			return -1
		}
		return 1
	}
	for i := 3; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Lsh1 doubles x.
func (x Int256) Lsh1() Int256 {
	return Int256{
		x[0] << 1,
		x[1]<<1 | x[0]>>63,
		x[2]<<1 | x[1]>>63,
		x[3]<<1 | x[2]>>63,
	}
}

// Rsh1 halves a nonnegative x.
func (x Int256) Rsh1() Int256 {
	return Int256{
		x[0]>>1 | x[1]<<63,
		x[1]>>1 | x[2]<<63,
		x[2]>>1 | x[3]<<63,
		x[3] >> 1,
	}
}

// Mul returns x * y truncated to 256 bits.
func (x Int256) Mul(y Int256) Int256 {
	var (
		z     Int256
		carry uint64
		r1    uint64
		r2    uint64
		r3    uint64
	)
	carry, z[0] = bits.Mul64(x[0], y[0])
	carry, r1 = umulHop(carry, x[1], y[0])
	carry, r2 = umulHop(carry, x[2], y[0])
	r3 = x[3]*y[0] + carry

	carry, z[1] = umulHop(r1, x[0], y[1])
	carry, r2 = umulStep(r2, x[1], y[1], carry)
	r3 += x[2]*y[1] + carry

	carry, z[2] = umulHop(r2, x[0], y[2])
	r3 += x[1]*y[2] + carry

	z[3] = r3 + x[0]*y[3]
	return z
}

// MulPow10 returns x * 10^k truncated to 256 bits. k must be in [0, 76].
func (x Int256) MulPow10(k int) Int256 {
	if k == 0 {
		return x
	}
	return x.Mul(Pow10Int256[k])
}

// Mul128 returns the exact 256-bit product of two 128-bit values.
func Mul128(x, y Int128) Int256 {
	neg := (int64(x.Hi) < 0) != (int64(y.Hi) < 0)
	mx, my := x.Abs(), y.Abs()

	c0hi, c0lo := bits.Mul64(mx.Lo, my.Lo)
	c1hi, c1lo := bits.Mul64(mx.Lo, my.Hi)
	c2hi, c2lo := bits.Mul64(mx.Hi, my.Lo)
	c3hi, c3lo := bits.Mul64(mx.Hi, my.Hi)

	var z Int256
	z[0] = c0lo
	s, c1 := bits.Add64(c0hi, c1lo, 0)
	s, c2 := bits.Add64(s, c2lo, 0)
	z[1] = s
	s, c3 := bits.Add64(c1hi, c2hi, 0)
	s, c4 := bits.Add64(s, c3lo, 0)
	s, c5 := bits.Add64(s, c1+c2, 0)
	z[2] = s
	z[3] = c3hi + c3 + c4 + c5

	if neg {
		return z.Neg()
	}
	return z
}

// QuoRem returns the quotient truncated toward zero and a remainder
// carrying the sign of the dividend. Division by zero panics.
func (x Int256) QuoRem(y Int256) (q, r Int256) {
	if y.IsZero() {
		panic("arith: division by zero")
	}
	xneg := int64(x[3]) < 0
	yneg := int64(y[3]) < 0
	ux, uy := x.Abs(), y.Abs()

	var uq Int256
	var ur Int256
	if cmpWords(ux, uy) < 0 {
		ur = ux
	} else if uy[1]|uy[2]|uy[3] == 0 && ux[1]|ux[2]|ux[3] == 0 {
		uq[0] = ux[0] / uy[0]
		ur[0] = ux[0] % uy[0]
	} else {
		rem := udivrem(uq[:], ux[:], uy[:])
		ur = Int256(rem)
	}

	q, r = uq, ur
	if xneg != yneg {
		q = q.Neg()
	}
	if xneg {
		r = r.Neg()
	}
	return q, r
}

func cmpWords(x, y Int256) int {
	for i := 3; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Int128 narrows x, reporting overflow when the magnitude exceeds
// limit. The returned value is the truncated low 128 bits either way.
func (x Int256) Int128(limit Int128) (Int128, bool) {
	m := x.Abs()
	overflow := m[2]|m[3] != 0 ||
		m[1] > limit.Hi || (m[1] == limit.Hi && m[0] > limit.Lo)
	return Int128{Hi: x[1], Lo: x[0]}, overflow
}

// BigInt returns x as a big.Int. Used by tests and diagnostics only.
func (x Int256) BigInt() *big.Int {
	m := x.Abs()
	b := new(big.Int)
	for i := 3; i >= 0; i-- {
		b.Lsh(b, 64).Add(b, new(big.Int).SetUint64(m[i]))
	}
	if int64(x[3]) < 0 {
		b.Neg(b)
	}
	return b
}
