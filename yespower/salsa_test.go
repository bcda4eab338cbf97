// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package yespower

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/salsa20/salsa"
)

// shuffledWords decodes a 64-byte block into the shuffled word order.
func shuffledWords(block []byte) []uint32 {
	w := make([]uint32, 16)
	for i := range w {
		w[i] = binary.LittleEndian.Uint32(block[(i*5%16)*4:])
	}
	return w
}

// TestSalsa20Core208 checks the 8 round core against x/crypto.
func TestSalsa20Core208(t *testing.T) {
	for seed := 0; seed < 4; seed++ {
		var in, out [64]byte
		for i := range in {
			in[i] = byte(i*7 + seed*31 + 3)
		}
		salsa.Core208(&out, &in)

		b := shuffledWords(in[:])
		salsa20(b, 8)
		require.Equal(t, shuffledWords(out[:]), b, "seed %d", seed)
	}
}

// TestBlockMixSalsa compares against a byte oriented BlockMix built from
// Core208, including the even/odd output shuffle.
func TestBlockMixSalsa(t *testing.T) {
	for _, r := range []int{1, 2, 3} {
		in := make([]byte, 128*r)
		for i := range in {
			in[i] = byte(i*13 + r)
		}

		// Reference: X = B_{2r-1}; Y_i = H(X xor B_i).
		var x [64]byte
		copy(x[:], in[(2*r-1)*64:])
		y := make([]byte, len(in))
		for i := 0; i < 2*r; i++ {
			for j := range x {
				x[j] ^= in[i*64+j]
			}
			salsa.Core208(&x, &x)
			copy(y[i*64:], x[:])
		}
		want := make([]uint32, 0, 32*r)
		for i := 0; i < r; i++ {
			want = append(want, shuffledWords(y[(2*i)*64:])...)
		}
		for i := 0; i < r; i++ {
			want = append(want, shuffledWords(y[(2*i+1)*64:])...)
		}

		b := make([]uint32, 0, 32*r)
		for i := 0; i < 2*r; i++ {
			b = append(b, shuffledWords(in[i*64:])...)
		}
		blockMixSalsa(b, make([]uint32, 32*r), r, 8)

		require.Equal(t, want, b, "r=%d", r)
	}
}

func TestSalsa20RoundsMatter(t *testing.T) {
	a := make([]uint32, 16)
	b := make([]uint32, 16)
	for i := range a {
		a[i] = uint32(i) * 0x9e3779b9
		b[i] = a[i]
	}
	salsa20(a, 2)
	salsa20(b, 8)
	require.NotEqual(t, a, b)
}
