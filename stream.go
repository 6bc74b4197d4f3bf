// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

// Package dualcrc computes two checksums in lockstep over the same byte
// stream: CRC-32C (Castagnoli) and CRC-64/XZ (ECMA-182). It supports
// one-shot computation, incremental (streaming) computation, and a
// fixed-length rolling window, plus constant-time incorporation of long
// runs of zero bytes via Zeros.
//
// Internally, running CRC state is stored bit-reflected and inverted (the
// bitwise complement of the conventional value): Init is all-ones and every
// accessor inverts once on the way out. That removes an XOR at every
// streaming chunk boundary; see internal/crc32c and internal/crc64xz.
package dualcrc

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dualcrc/dualcrc/internal/crc32c"
	"github.com/dualcrc/dualcrc/internal/crc64xz"
	"github.com/dualcrc/dualcrc/internal/hwcrc32"
)

// StreamAcc accumulates the CRC-32C and CRC-64/XZ of a byte stream
// incrementally. The zero value is not usable; construct one with New.
type StreamAcc struct {
	inv32 uint32
	inv64 uint64
}

// New returns a StreamAcc ready to accumulate an empty stream.
func New() *StreamAcc {
	return &StreamAcc{inv32: crc32c.Init, inv64: crc64xz.Init}
}

// Update folds data into the running checksums. Calling Update repeatedly
// is equivalent to calling it once on the concatenation of the arguments:
// for any split S = A ++ B, s.Update(A); s.Update(B) leaves s identical to
// a fresh accumulator that called s.Update(S) once.
func (s *StreamAcc) Update(data []byte) {
	if len(data) == 0 {
		return
	}
	if result, ok := hwcrc32.Update(s.inv32, data); ok {
		s.inv32 = result
		s.inv64 = crc64xz.Update(s.inv64, data)
		return
	}
	for len(data) >= 8 {
		s.inv32 = crc32c.UpdateChunk(s.inv32, data[:8])
		s.inv64 = crc64xz.UpdateChunk(s.inv64, data[:8])
		data = data[8:]
	}
	for _, b := range data {
		s.inv32 = crc32c.UpdateByte(s.inv32, b)
		s.inv64 = crc64xz.UpdateByte(s.inv64, b)
	}
}

// UpdateWithZeros folds n zero bytes into the running checksums in O(1),
// where n is the byte count the Zeros was built from. It's equivalent to,
// but vastly cheaper than, s.Update(make([]byte, n)).
func (s *StreamAcc) UpdateWithZeros(z Zeros) {
	s.inv32, s.inv64 = z.apply(s.inv32, s.inv64)
}

// Write implements io.Writer by calling Update. It never returns an error.
func (s *StreamAcc) Write(p []byte) (int, error) {
	s.Update(p)
	return len(p), nil
}

// Get returns the current CRC-32C and CRC-64/XZ checksums. It does not
// reset or otherwise mutate the accumulator.
func (s *StreamAcc) Get() (crc32 uint32, crc64 uint64) {
	return ^s.inv32, ^s.inv64
}

// Get32 returns the current CRC-32C checksum.
func (s *StreamAcc) Get32() uint32 {
	return ^s.inv32
}

// Get64 returns the current CRC-64/XZ checksum.
func (s *StreamAcc) Get64() uint64 {
	return ^s.inv64
}

const marshaledMagic = "dcrc"
const marshaledSize = len(marshaledMagic) + 4 + 8

var errInvalidState = errors.New("dualcrc: invalid hash state")

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *StreamAcc) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize)
	b = append(b, marshaledMagic...)
	b = binary.BigEndian.AppendUint32(b, s.inv32)
	b = binary.BigEndian.AppendUint64(b, s.inv64)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *StreamAcc) UnmarshalBinary(b []byte) error {
	if len(b) != marshaledSize || string(b[:len(marshaledMagic)]) != marshaledMagic {
		return fmt.Errorf("%w: bad magic or length", errInvalidState)
	}
	b = b[len(marshaledMagic):]
	s.inv32 = binary.BigEndian.Uint32(b)
	s.inv64 = binary.BigEndian.Uint64(b[4:])
	return nil
}
