// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package dualcrc

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	itests "github.com/dualcrc/dualcrc/internal/tests"
)

// FuzzAppendLinearity checks that Checksum(A++B) equals streaming A then B.
func FuzzAppendLinearity(f *testing.F) {
	itests.FuzzSplit(f, testAppendLinearity)
}

func TestAppendLinearity(t *testing.T) {
	itests.TestSplit(t, testAppendLinearity)
}

func testAppendLinearity(t *testing.T, a, b []byte) {
	want32, want64 := Checksum(append(append([]byte(nil), a...), b...))

	s := New()
	s.Update(a)
	s.Update(b)
	got32, got64 := s.Get()

	require.Equal(t, want32, got32, "crc32 append linearity")
	require.Equal(t, want64, got64, "crc64 append linearity")
}

// TestZerosEquivalence checks that UpdateWithZeros(n) matches streaming n
// literal zero bytes, for a range of prior states and run lengths.
func TestZerosEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	priors := [][]byte{nil, []byte("x"), randBytes(r, 257), randBytes(r, 4095)}
	lengths := []uint64{0, 1, 2, 7, 8, 9, 255, 256, 257, 4096, 1 << 20}

	for _, prior := range priors {
		for _, n := range lengths {
			sa := New()
			sa.Update(prior)
			sa.UpdateWithZeros(NewZeros(n))

			sb := New()
			sb.Update(prior)
			sb.Update(bytes.Repeat([]byte{0}, int(n)))

			gotA32, gotA64 := sa.Get()
			gotB32, gotB64 := sb.Get()
			require.Equal(t, gotB32, gotA32, "n=%d", n)
			require.Equal(t, gotB64, gotA64, "n=%d", n)
		}
	}
}

// TestZerosIdentity checks that Zeros(0) is a no-op.
func TestZerosIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	data := randBytes(r, 512)

	s := New()
	s.Update(data)
	want32, want64 := s.Get()

	s.UpdateWithZeros(NewZeros(0))
	got32, got64 := s.Get()

	require.Equal(t, want32, got32)
	require.Equal(t, want64, got64)
}

// TestZerosAdditiveComposition checks Zeros(m) then Zeros(n) equals Zeros(m+n).
func TestZerosAdditiveComposition(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	data := randBytes(r, 123)

	for _, pair := range [][2]uint64{{0, 0}, {1, 1}, {3, 5}, {255, 1}, {1 << 20, 1 << 20}} {
		m, n := pair[0], pair[1]

		s1 := New()
		s1.Update(data)
		s1.UpdateWithZeros(NewZeros(m))
		s1.UpdateWithZeros(NewZeros(n))

		s2 := New()
		s2.Update(data)
		s2.UpdateWithZeros(NewZeros(m + n))

		got1a, got1b := s1.Get()
		got2a, got2b := s2.Get()
		require.Equal(t, got2a, got1a, "m=%d n=%d", m, n)
		require.Equal(t, got2b, got1b, "m=%d n=%d", m, n)
	}
}

// TestRollingEquivalence checks that after seeding with S0 and rolling
// through b1..bk, the window equals the checksum of the trailing W bytes
// of the concatenated stream.
func TestRollingEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for _, windowLen := range []int{1, 2, 8, 37, 256} {
		seed := randBytes(r, windowLen)
		tail := randBytes(r, 500)

		w, err := NewRollingDualCrc(append([]byte(nil), seed...))
		require.NoError(t, err)
		w.RollSlice(tail)

		stream := append(append([]byte(nil), seed...), tail...)
		want := stream[len(stream)-windowLen:]
		want32, want64 := Checksum(want)

		got32, got64 := w.Get()
		require.Equal(t, want32, got32, "windowLen=%d", windowLen)
		require.Equal(t, want64, got64, "windowLen=%d", windowLen)
	}
}

func randBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	_, _ = r.Read(b)
	return b
}
