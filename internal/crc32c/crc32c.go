// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

// Package crc32c implements the slicing-by-8 CRC-32C (Castagnoli) kernel,
// its GF(2^32) multiply, and the power-of-256 table used to fold arbitrarily
// long zero runs into the checksum in constant time.
//
// All state is carried bit-reflected (LSB-first): the running value is the
// bitwise complement of the conventional CRC, so Init is all-ones and a
// caller inverts once at the end to read the result.
package crc32c

import (
	"math/bits"

	"github.com/dualcrc/dualcrc/internal/lazy"
)

// Poly is the CRC-32C (Castagnoli) polynomial in LSB-first (reflected) form,
// the same representation hash/crc32.Castagnoli uses.
const Poly uint32 = 0x82F63B78

// ForwardPoly is the CRC-32C polynomial in its natural, non-reflected,
// MSB-first form. Mul operates in this convention; see Apply.
const ForwardPoly uint32 = 0x1EDC6F41

// Bits is the width of the CRC in bits.
const Bits = 32

// Init is the initial value of the inverted running state.
const Init uint32 = ^uint32(0)

// slices holds the eight 256-entry slicing-by-8 tables, built once from Poly.
type slices = [8][256]uint32

var tables = lazy.Value[*slices]{Init: buildTables}

func buildTables() *slices {
	var t slices
	for b := 0; b < 256; b++ {
		crc := uint32(b)
		for k := 0; k < 8; k++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ Poly
			} else {
				crc >>= 1
			}
		}
		t[0][b] = crc
	}
	for k := 0; k < 7; k++ {
		for b := 0; b < 256; b++ {
			t[k+1][b] = (t[k][b] >> 8) ^ t[0][t[k][b]&0xFF]
		}
	}
	return &t
}

// Tables returns the eight slicing-by-8 tables, computing them on first use.
func Tables() *[8][256]uint32 {
	return tables.Get()
}

// powers holds P[k] = 256^(2^k) mod ForwardPoly, for k in [0, 64).
var powers = lazy.Value[*[64]uint32]{Init: buildPowers}

func buildPowers() *[64]uint32 {
	var p [64]uint32
	v := uint32(256)
	p[0] = v
	for k := 1; k < 64; k++ {
		v = Mul(v, v)
		p[k] = v
	}
	return &p
}

// Powers returns P[k] = 256^(2^k) mod ForwardPoly, computing it on first use.
func Powers() *[64]uint32 {
	return powers.Get()
}

// UpdateByte folds a single byte into an inverted running CRC.
func UpdateByte(inv uint32, b byte) uint32 {
	t := Tables()
	return t[0][byte(inv)^b] ^ (inv >> 8)
}

// UpdateChunk folds an 8-byte little-endian chunk into an inverted running
// CRC using all eight slicing-by-8 tables in one pass.
func UpdateChunk(inv uint32, d []byte) uint32 {
	_ = d[7] // bounds check hint
	t := Tables()
	inv ^= uint32(d[0]) | uint32(d[1])<<8 | uint32(d[2])<<16 | uint32(d[3])<<24
	return t[0][d[7]] ^ t[1][d[6]] ^ t[2][d[5]] ^ t[3][d[4]] ^
		t[4][byte(inv>>24)] ^ t[5][byte(inv>>16)] ^ t[6][byte(inv>>8)] ^ t[7][byte(inv)]
}

// Update folds an arbitrary byte slice into an inverted running CRC,
// consuming it 8 bytes at a time and handling the tail byte by byte.
func Update(inv uint32, data []byte) uint32 {
	for len(data) >= 8 {
		inv = UpdateChunk(inv, data[:8])
		data = data[8:]
	}
	for _, b := range data {
		inv = UpdateByte(inv, b)
	}
	return inv
}

// Mul returns (a(x) * b(x)) mod ForwardPoly, in the non-reflected,
// MSB-first convention, using a branch-free mask-based shift-and-add loop.
func Mul(a, b uint32) uint32 {
	var product uint32
	for i := 0; i < Bits; i++ {
		highMask := uint32(int32(product) >> (Bits - 1))
		product = (product << 1) ^ (highMask & ForwardPoly)
		bHighMask := uint32(int32(b) >> (Bits - 1))
		product ^= bHighMask & a
		b <<= 1
	}
	return product
}

// Apply advances an inverted running CRC by the zero run represented by f,
// bridging the reflected kernel state into the forward-mode multiply and
// back by bit-reversal.
func Apply(inv, f uint32) uint32 {
	return bits.Reverse32(Mul(bits.Reverse32(inv), f))
}
