// SPDX-License-Identifier: Zlib
//
// Copyright 2024 Andrew Bursavich. All rights reserved.
// Use of this source code is governed by the zlib license
// which can be found in the LICENSE file.

// Package lazy provides one-time initialization of process-global values.
package lazy

import "sync"

// Value holds a value that's computed once, on first use, by Init.
type Value[T any] struct {
	Init func() T

	once sync.Once
	val  T
}

// Get returns the value, computing it via Init on the first call.
func (v *Value[T]) Get() T {
	v.once.Do(func() { v.val = v.Init() })
	return v.val
}
