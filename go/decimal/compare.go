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

// Comparisons widen to the next step so the scale alignment cannot
// overflow: one step suffices for 4- and 8-byte values, and 16-byte
// values go through 256 bits to dodge the precision-38 scale-up hazard.

// CmpAligned compares the raw values; both operands must share the same
// scale.
func (x Decimal4) CmpAligned(y Decimal4) int {
	return sign64(int64(x) - int64(y))
}

// CmpAligned compares the raw values; both operands must share the same
// scale.
func (x Decimal8) CmpAligned(y Decimal8) int {
	switch {
	case x == y:
		return 0
	case x < y:
		return -1
	}
	return 1
}

// CmpAligned compares the raw values; both operands must share the same
// scale.
func (x Decimal16) CmpAligned(y Decimal16) int {
	return x.i128().Cmp(y.i128())
}

// Cmp compares x and y as rational values and returns -1, 0 or +1.
func (x Decimal4) Cmp(xScale int, y Decimal4, yScale int) int {
	xs, ys := adjustToSameScale4(x, xScale, y, yScale)
	switch {
	case xs == ys:
		return 0
	case xs < ys:
		return -1
	}
	return 1
}

// Cmp compares x and y as rational values and returns -1, 0 or +1.
func (x Decimal8) Cmp(xScale int, y Decimal8, yScale int) int {
	xs, ys := adjustToSameScale8(x, xScale, y, yScale)
	return xs.Cmp(ys)
}

// Cmp compares x and y as rational values and returns -1, 0 or +1.
func (x Decimal16) Cmp(xScale int, y Decimal16, yScale int) int {
	xw := arith.Int256From128(x.i128())
	yw := arith.Int256From128(y.i128())
	if delta := xScale - yScale; delta > 0 {
		yw = yw.MulPow10(delta)
	} else if delta < 0 {
		xw = xw.MulPow10(-delta)
	}
	return xw.Cmp(yw)
}
