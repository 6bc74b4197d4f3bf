// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

package hwcrc32

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dualcrc/dualcrc/internal/crc32c"
)

func TestUpdateBelowThresholdDeclines(t *testing.T) {
	data := make([]byte, Threshold-1)
	_, ok := Update(crc32c.Init, data)
	require.False(t, ok)
}

func TestUpdateMatchesSoftwareKernel(t *testing.T) {
	if !Available {
		t.Skip("no hardware CRC32C instruction on this platform")
	}
	data := make([]byte, Threshold*3)
	for i := range data {
		data[i] = byte(i * 7)
	}

	want := crc32c.Update(crc32c.Init, data)

	got, ok := Update(crc32c.Init, data)
	require.True(t, ok)
	require.Equal(t, want, got)
}
