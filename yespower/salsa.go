// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package yespower

import "math/bits"

// blockCopy copies n words from src into dst.
func blockCopy(dst, src []uint32, n int) {
	copy(dst[:n], src[:n])
}

// blockXOR XORs n words from src into dst.
func blockXOR(dst, src []uint32, n int) {
	for i, v := range src[:n] {
		dst[i] ^= v
	}
}

// salsa20 applies the salsa20 core with the given number of rounds to the
// 16 words of b, in place.  The words are kept in the shuffled order used
// throughout yespower: b[i] holds state word i*5 mod 16.
func salsa20(b []uint32, rounds int) {
	_ = b[15]

	w0, w1, w2, w3 := b[0], b[1], b[2], b[3]
	w4, w5, w6, w7 := b[4], b[5], b[6], b[7]
	w8, w9, w10, w11 := b[8], b[9], b[10], b[11]
	w12, w13, w14, w15 := b[12], b[13], b[14], b[15]

	x0, x5, x10, x15, x4, x9, x14, x3 := w0, w1, w2, w3, w4, w5, w6, w7
	x8, x13, x2, x7, x12, x1, x6, x11 := w8, w9, w10, w11, w12, w13, w14, w15

	for i := 0; i < rounds; i += 2 {
		// Columns.
		x4 ^= bits.RotateLeft32(x0+x12, 7)
		x8 ^= bits.RotateLeft32(x4+x0, 9)
		x12 ^= bits.RotateLeft32(x8+x4, 13)
		x0 ^= bits.RotateLeft32(x12+x8, 18)

		x9 ^= bits.RotateLeft32(x5+x1, 7)
		x13 ^= bits.RotateLeft32(x9+x5, 9)
		x1 ^= bits.RotateLeft32(x13+x9, 13)
		x5 ^= bits.RotateLeft32(x1+x13, 18)

		x14 ^= bits.RotateLeft32(x10+x6, 7)
		x2 ^= bits.RotateLeft32(x14+x10, 9)
		x6 ^= bits.RotateLeft32(x2+x14, 13)
		x10 ^= bits.RotateLeft32(x6+x2, 18)

		x3 ^= bits.RotateLeft32(x15+x11, 7)
		x7 ^= bits.RotateLeft32(x3+x15, 9)
		x11 ^= bits.RotateLeft32(x7+x3, 13)
		x15 ^= bits.RotateLeft32(x11+x7, 18)

		// Rows.
		x1 ^= bits.RotateLeft32(x0+x3, 7)
		x2 ^= bits.RotateLeft32(x1+x0, 9)
		x3 ^= bits.RotateLeft32(x2+x1, 13)
		x0 ^= bits.RotateLeft32(x3+x2, 18)

		x6 ^= bits.RotateLeft32(x5+x4, 7)
		x7 ^= bits.RotateLeft32(x6+x5, 9)
		x4 ^= bits.RotateLeft32(x7+x6, 13)
		x5 ^= bits.RotateLeft32(x4+x7, 18)

		x11 ^= bits.RotateLeft32(x10+x9, 7)
		x8 ^= bits.RotateLeft32(x11+x10, 9)
		x9 ^= bits.RotateLeft32(x8+x11, 13)
		x10 ^= bits.RotateLeft32(x9+x8, 18)

		x12 ^= bits.RotateLeft32(x15+x14, 7)
		x13 ^= bits.RotateLeft32(x12+x15, 9)
		x14 ^= bits.RotateLeft32(x13+x12, 13)
		x15 ^= bits.RotateLeft32(x14+x13, 18)
	}

	b[0] = w0 + x0
	b[1] = w1 + x5
	b[2] = w2 + x10
	b[3] = w3 + x15
	b[4] = w4 + x4
	b[5] = w5 + x9
	b[6] = w6 + x14
	b[7] = w7 + x3
	b[8] = w8 + x8
	b[9] = w9 + x13
	b[10] = w10 + x2
	b[11] = w11 + x7
	b[12] = w12 + x12
	b[13] = w13 + x1
	b[14] = w14 + x6
	b[15] = w15 + x11
}

// blockMixSalsa computes B = BlockMix_{salsa20, r}(B) using y as scratch.
// b and y must both hold 32*r words.  The output sub-blocks are the even
// intermediate results followed by the odd ones.
func blockMixSalsa(b, y []uint32, r, rounds int) {
	var x [16]uint32

	blockCopy(x[:], b[(2*r-1)*16:], 16)
	for i := 0; i < 2*r; i++ {
		blockXOR(x[:], b[i*16:], 16)
		salsa20(x[:], rounds)
		blockCopy(y[i*16:], x[:], 16)
	}

	for i := 0; i < r; i++ {
		blockCopy(b[i*16:], y[(2*i)*16:], 16)
		blockCopy(b[(i+r)*16:], y[(2*i+1)*16:], 16)
	}
}
