// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !linux

package main

import (
	"errors"
)

// physicalMemory is only implemented on Linux.  Elsewhere the scratch limit
// falls back to the engine's own maximum.
func physicalMemory() (uint64, error) {
	return 0, errors.New("physical memory size is not available")
}
