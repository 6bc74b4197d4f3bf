// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package dualcrc

import (
	"errors"
	"fmt"

	"github.com/dualcrc/dualcrc/internal/crc32c"
	"github.com/dualcrc/dualcrc/internal/crc64xz"
)

// ErrEmptySeed is returned by NewRollingDualCrc when given a zero-length
// seed; a rolling window must cover at least one byte.
var ErrEmptySeed = errors.New("dualcrc: rolling window seed must not be empty")

// RollingDualCrc maintains the CRC-32C and CRC-64/XZ of a fixed-length
// suffix of a byte stream. Each Roll call removes the byte currently at
// the logical start of the window and appends a new one, in O(1)
// regardless of the window length.
type RollingDualCrc struct {
	inv32 uint32
	inv64 uint64
	buf   []byte
	head  int

	r32 [256]uint32
	r64 [256]uint64
}

// NewRollingDualCrc builds a rolling window seeded with the given bytes.
// The window's length is fixed at len(seed) for the lifetime of the
// returned value. It returns ErrEmptySeed if seed is empty.
func NewRollingDualCrc(seed []byte) (*RollingDualCrc, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w", ErrEmptySeed)
	}

	w := &RollingDualCrc{
		inv32: crc32c.Update(crc32c.Init, seed),
		inv64: crc64xz.Update(crc64xz.Init, seed),
		buf:   append([]byte(nil), seed...),
	}
	w.buildRemovalTables(len(seed))
	return w, nil
}

// buildRemovalTables computes, for every possible departing byte value,
// the additive (XOR) correction for its contribution once it sits exactly
// windowLen bytes before the end of the stream. By linearity,
// CRC(b·X^(8*windowLen) ++ rest) = CRC(b·X^(8*windowLen)) XOR CRC(rest),
// and the first term, measured relative to the all-zero baseline, is
// exactly that correction.
func (w *RollingDualCrc) buildRemovalTables(windowLen int) {
	z := NewZeros(uint64(windowLen))

	zero32, zero64 := z.apply(crc32c.Init, crc64xz.Init)
	for b := 0; b < 256; b++ {
		inv32 := crc32c.UpdateByte(crc32c.Init, byte(b))
		inv64 := crc64xz.UpdateByte(crc64xz.Init, byte(b))
		byte32, byte64 := z.apply(inv32, inv64)
		w.r32[b] = byte32 ^ zero32
		w.r64[b] = byte64 ^ zero64
	}
}

// Roll removes the byte at the logical start of the window and appends b,
// updating the checksums in O(1).
func (w *RollingDualCrc) Roll(b byte) {
	leaving := w.buf[w.head]
	w.inv32 = crc32c.UpdateByte(w.inv32, b) ^ w.r32[leaving]
	w.inv64 = crc64xz.UpdateByte(w.inv64, b) ^ w.r64[leaving]
	w.buf[w.head] = b
	w.head++
	if w.head == len(w.buf) {
		w.head = 0
	}
}

// RollSlice calls Roll once for each byte in data, in order.
func (w *RollingDualCrc) RollSlice(data []byte) {
	for _, b := range data {
		w.Roll(b)
	}
}

// Get returns the CRC-32C and CRC-64/XZ of the current window contents.
func (w *RollingDualCrc) Get() (crc32 uint32, crc64 uint64) {
	return ^w.inv32, ^w.inv64
}

// Get32 returns the CRC-32C of the current window contents.
func (w *RollingDualCrc) Get32() uint32 {
	return ^w.inv32
}

// Get64 returns the CRC-64/XZ of the current window contents.
func (w *RollingDualCrc) Get64() uint64 {
	return ^w.inv64
}

// Len returns the fixed length of the window.
func (w *RollingDualCrc) Len() int {
	return len(w.buf)
}
