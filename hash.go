// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package dualcrc

import (
	"encoding"
	"hash"
)

// Hash32 is a hash.Hash32 view of a StreamAcc that also implements
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler, so it can be
// handed to any stdlib io.Writer-consuming code path. Its marshaled state
// captures both CRC-32C and CRC-64/XZ, since the two share one
// accumulator underneath; round-tripping the bytes through a Hash64's
// UnmarshalBinary recovers the same dual state.
type Hash32 interface {
	hash.Hash32
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// Hash64 is the CRC-64/XZ counterpart of Hash32.
type Hash64 interface {
	hash.Hash64
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

type hash32View struct {
	s *StreamAcc
}

// NewHash32 returns a Hash32 backed by a fresh StreamAcc.
func NewHash32() Hash32 { return hash32View{s: New()} }

func (h hash32View) Write(p []byte) (int, error) { return h.s.Write(p) }
func (h hash32View) Sum32() uint32               { return h.s.Get32() }
func (h hash32View) Size() int                   { return 4 }
func (h hash32View) BlockSize() int              { return 1 }
func (h hash32View) Reset()                      { *h.s = *New() }

// Sum appends the current CRC-32C checksum to b in big-endian byte order.
func (h hash32View) Sum(b []byte) []byte {
	s := h.Sum32()
	return append(b, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (h hash32View) MarshalBinary() ([]byte, error) { return h.s.MarshalBinary() }
func (h hash32View) UnmarshalBinary(b []byte) error  { return h.s.UnmarshalBinary(b) }

type hash64View struct {
	s *StreamAcc
}

// NewHash64 returns a Hash64 backed by a fresh StreamAcc.
func NewHash64() Hash64 { return hash64View{s: New()} }

func (h hash64View) Write(p []byte) (int, error) { return h.s.Write(p) }
func (h hash64View) Sum64() uint64               { return h.s.Get64() }
func (h hash64View) Size() int                   { return 8 }
func (h hash64View) BlockSize() int               { return 1 }
func (h hash64View) Reset()                       { *h.s = *New() }

// Sum appends the current CRC-64/XZ checksum to b in big-endian byte order.
func (h hash64View) Sum(b []byte) []byte {
	s := h.Sum64()
	return append(b,
		byte(s>>56), byte(s>>48), byte(s>>40), byte(s>>32),
		byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (h hash64View) MarshalBinary() ([]byte, error) { return h.s.MarshalBinary() }
func (h hash64View) UnmarshalBinary(b []byte) error  { return h.s.UnmarshalBinary(b) }
