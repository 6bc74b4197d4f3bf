// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package dualcrc

import (
	"math/bits"

	"github.com/dualcrc/dualcrc/internal/crc32c"
	"github.com/dualcrc/dualcrc/internal/crc64xz"
)

// Zeros represents "append n zero bytes" as a pair of Galois-field
// elements, one per CRC width. Applying a Zeros to a running checksum
// advances it by n zero bytes in O(1), regardless of how large n is.
//
// A Zeros is an immutable value; it's cheap to copy and safe to share.
type Zeros struct {
	f32 uint32
	f64 uint64
}

// NewZeros builds the Zeros factor for n zero bytes in O(popcount(n)) GF
// multiplies, via exponentiation by squaring over the precomputed
// power-of-256 tables.
func NewZeros(n uint64) Zeros {
	if n == 0 {
		return Zeros{f32: 1, f64: 1}
	}
	p32, p64 := crc32c.Powers(), crc64xz.Powers()

	t := bits.TrailingZeros64(n)
	f32, f64 := p32[t], p64[t]

	pos := t + 1
	power := n >> uint(t+1)
	for power > 0 {
		if power&1 != 0 {
			f32 = crc32c.Mul(f32, p32[pos&63])
			f64 = crc64xz.Mul(f64, p64[pos&63])
		}
		pos++
		power >>= 1
	}
	return Zeros{f32: f32, f64: f64}
}

func (z Zeros) apply(inv32 uint32, inv64 uint64) (uint32, uint64) {
	return crc32c.Apply(inv32, z.f32), crc64xz.Apply(inv64, z.f64)
}
