// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

// Package hwcrc32 offers an optional hardware-accelerated fast path for
// CRC-32C, dispatching to the standard library's assembly-backed
// hash/crc32 implementation on platforms that carry a CRC32C instruction.
// It is purely an optimization: callers fall back to software slicing-by-8
// whenever Available is false or the input is too small to amortize the
// call overhead, the same threshold-gated shape miretskiy-simba/pkg/algo
// uses to pick between its scalar and SIMD CRC32 paths.
package hwcrc32

import (
	"hash/crc32"

	"golang.org/x/sys/cpu"
)

// Threshold is the minimum buffer length, in bytes, below which the
// software slicing-by-8 kernel outperforms dispatching into hash/crc32.
const Threshold = 1024

// Available reports whether the host CPU exposes a CRC32C instruction that
// hash/crc32 will use for its Castagnoli table.
var Available = cpu.X86.HasSSE42 || cpu.ARM64.HasCRC32 || cpu.ARM.HasCRC32

var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// Update advances an inverted CRC-32C running state by data using the
// hardware path, returning ok=false when the hardware path isn't available
// or isn't worth the dispatch overhead for this input size. The result,
// when ok is true, is bit-for-bit identical to the software kernel's.
func Update(inv uint32, data []byte) (result uint32, ok bool) {
	if !Available || len(data) < Threshold {
		return inv, false
	}
	// hash/crc32.Update operates on the conventional (non-inverted) CRC
	// and performs its own invert-compute-invert internally, so bridge
	// once on each side of the call.
	crc := crc32.Update(^inv, castagnoliTable, data)
	return ^crc, true
}
