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
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hashes cover the raw little-endian value bytes, so two values hash
// equal exactly when their unscaled integers match at the same width.
// Query-engine hash tables key on (value, scale) at a common scale.

// Hash returns a 32-bit hash of the raw value bytes.
func (x Decimal4) Hash(seed uint32) uint32 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(x))
	return hashBytes(b[:], seed)
}

// Hash returns a 32-bit hash of the raw value bytes.
func (x Decimal8) Hash(seed uint32) uint32 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(x))
	return hashBytes(b[:], seed)
}

// Hash returns a 32-bit hash of the raw value bytes.
func (x Decimal16) Hash(seed uint32) uint32 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], x.lo)
	binary.LittleEndian.PutUint64(b[8:], uint64(x.hi))
	return hashBytes(b[:], seed)
}

func hashBytes(b []byte, seed uint32) uint32 {
	var d xxhash.Digest
	d.ResetWithSeed(uint64(seed))
	d.Write(b)
	return uint32(d.Sum64())
}
