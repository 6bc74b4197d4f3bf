// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package dualcrc

import (
	"github.com/dualcrc/dualcrc/internal/crc32c"
	"github.com/dualcrc/dualcrc/internal/crc64xz"
	"github.com/dualcrc/dualcrc/internal/hwcrc32"
)

// Checksum returns the CRC-32C and CRC-64/XZ checksums of data.
// It's equivalent to calling Update(data) on a New accumulator and then
// Get, computed without materializing a persistent accumulator.
func Checksum(data []byte) (crc32 uint32, crc64 uint64) {
	return Checksum32(data), Checksum64(data)
}

// Checksum32 returns the CRC-32C checksum of data.
func Checksum32(data []byte) uint32 {
	inv := crc32c.Init
	if result, ok := hwcrc32.Update(inv, data); ok {
		return ^result
	}
	return ^crc32c.Update(inv, data)
}

// Checksum64 returns the CRC-64/XZ checksum of data.
func Checksum64(data []byte) uint64 {
	return ^crc64xz.Update(crc64xz.Init, data)
}
