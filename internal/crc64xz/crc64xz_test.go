// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package crc64xz

import (
	"hash/crc64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable0MatchesStdlib(t *testing.T) {
	want := crc64.MakeTable(crc64.ECMA)
	got := Tables()
	for b := 0; b < 256; b++ {
		require.Equalf(t, want[b], got[0][b], "byte %d", b)
	}
}

func TestTableRecurrence(t *testing.T) {
	got := Tables()
	for k := 0; k < 7; k++ {
		for b := 0; b < 256; b++ {
			want := (got[k][b] >> 8) ^ got[0][got[k][b]&0xFF]
			require.Equalf(t, want, got[k+1][b], "k=%d b=%d", k, b)
		}
	}
}

func TestUpdateMatchesStdlib(t *testing.T) {
	tab := crc64.MakeTable(crc64.ECMA)
	data := []byte("The quick brown fox jumps over the lazy dog, 0123456789!")

	want := crc64.Update(0, tab, data)
	got := ^Update(Init, data)
	require.Equal(t, want, got)
}

func TestUpdateChunkMatchesUpdateByte(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}

	byBytes := Init
	for _, b := range data {
		byBytes = UpdateByte(byBytes, b)
	}

	byChunks := Update(Init, data)
	require.Equal(t, byBytes, byChunks)
}

func TestPowersAreSquarings(t *testing.T) {
	p := Powers()
	require.Equal(t, uint64(256), p[0])
	for k := 1; k < 64; k++ {
		require.Equal(t, Mul(p[k-1], p[k-1]), p[k], "k=%d", k)
	}
}

func TestApplyZeroFactorIsIdentity(t *testing.T) {
	require.Equal(t, Init, Apply(Init, 1))
}
