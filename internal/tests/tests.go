// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

// Package tests provides a shared corpus of byte-slice-pair cases used by
// both the table and fuzz tests across this module.
package tests

import (
	"math/rand"
	"testing"
)

type splitCase struct{ a, b []byte }

var splitCases []splitCase

func init() {
	zeroes := make([]byte, 8)
	splitCases = []splitCase{
		{nil, nil},
		{nil, zeroes},
		{zeroes, nil},
		{zeroes, zeroes},
	}
	r := rand.New(rand.NewSource(42))
	for range 128 {
		splitCases = append(splitCases, splitCase{randBuf(r, 256), randBuf(r, 256)})
	}
}

func randBuf(r *rand.Rand, max int) []byte {
	b := make([]byte, r.Intn(max))
	_, _ = r.Read(b)
	return b
}

// SplitFunc receives two byte slices, A and B, to be tested both
// independently and as the concatenation A ++ B.
type SplitFunc func(t *testing.T, a, b []byte)

// FuzzSplit seeds f with the shared corpus and fuzzes with fn.
func FuzzSplit(f *testing.F, fn SplitFunc) {
	for _, c := range splitCases {
		f.Add(c.a, c.b)
	}
	f.Fuzz(fn)
}

// TestSplit runs fn over the shared corpus as parallel subtests.
func TestSplit(t *testing.T, fn SplitFunc) {
	for _, c := range splitCases {
		c := c
		t.Run("", func(t *testing.T) {
			t.Parallel()
			fn(t, c.a, c.b)
		})
	}
}
