// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package yespower

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFinalizeInvariants ensures finalize reports malformed state as an
// internal invariant violation rather than producing a digest.
func TestFinalizeInvariants(t *testing.T) {
	key := make([]byte, sha256.Size)
	block := make([]uint32, 32)

	tests := []struct {
		name   string
		b      []uint32
		key    []byte
		params Params
	}{
		{"short block", block[:31], key, Params{Version: Version10, N: 16, R: 1}},
		{"block for other r", block, key, Params{Version: Version10, N: 16, R: 2}},
		{"short key", block, key[:16], Params{Version: Version05, N: 16, R: 1}},
		{"unknown version", block, key, Params{Version: 99, N: 16, R: 1}},
	}

	for _, test := range tests {
		d, err := finalize(test.b, test.key, &test.params)
		require.True(t, IsErrorCode(err, ErrInternalInvariant),
			"%s: unexpected error %v", test.name, err)
		require.Equal(t, Digest{}, d, test.name)
	}

	// Well formed state for both versions produces a digest.
	for _, version := range []Version{Version05, Version10} {
		d, err := finalize(block, key, &Params{Version: version, N: 16, R: 1})
		require.NoError(t, err)
		require.NotEqual(t, Digest{}, d)
	}
}
