// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"testing"

	"github.com/ltcsuite/ltcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

// TestBigToCompact ensures BigToCompact converts big integers to the expected
// compact representation.
func TestBigToCompact(t *testing.T) {
	tests := []struct {
		in  int64
		out uint32
	}{
		{0, 0},
		{-1, 25231360},
	}

	for x, test := range tests {
		n := big.NewInt(test.in)
		r := BigToCompact(n)
		if r != test.out {
			t.Errorf("TestBigToCompact test #%d failed: got %d want %d\n",
				x, r, test.out)
			return
		}
	}
}

// TestCompactToBig ensures CompactToBig converts numbers using the compact
// representation to the expected big integers.
func TestCompactToBig(t *testing.T) {
	tests := []struct {
		in  uint32
		out int64
	}{
		{10000000, 0},
	}

	for x, test := range tests {
		n := CompactToBig(test.in)
		want := big.NewInt(test.out)
		if n.Cmp(want) != 0 {
			t.Errorf("TestCompactToBig test #%d failed: got %d want %d\n",
				x, n.Int64(), want.Int64())
			return
		}
	}
}

func TestCompactRoundTrip(t *testing.T) {
	for _, bits := range []uint32{0x1d00ffff, 0x1e0fffff, 0x207fffff, 0x1b0404cb} {
		require.Equal(t, bits, BigToCompact(CompactToBig(bits)),
			"bits %08x", bits)
	}

	// The regression limit encodes to its well known compact form.
	limit := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255),
		big.NewInt(1))
	require.Equal(t, uint32(0x207fffff), BigToCompact(limit))
}

func TestHashToBig(t *testing.T) {
	var hash chainhash.Hash
	hash[0] = 0x01
	hash[31] = 0x80

	want := new(big.Int).Lsh(big.NewInt(0x80), 248)
	want.Add(want, big.NewInt(1))
	require.Zero(t, want.Cmp(HashToBig(&hash)))

	// The input must not be modified.
	require.Equal(t, byte(0x01), hash[0])
}
