// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package yespower

import "fmt"

const maxInt = int(^uint(0) >> 1)

// romix owns the scratch memory of one computation.  Nothing in it is
// shared with another call.
type romix struct {
	r int
	n uint32

	// v is the N block scratch array, x the working block in shuffled
	// order and y the output buffer of the salsa20 BlockMix.
	v []uint32
	x []uint32
	y []uint32

	ctx *pwxformCtx
}

// allocWords allocates n words, turning a length the runtime rejects into
// an ErrAllocationFailure instead of a panic.  Running out of memory is a
// fatal runtime error that cannot be recovered here.
func allocWords(n uint64, what string) (buf []uint32, err error) {
	if n > uint64(maxInt) {
		return nil, allocError(fmt.Sprintf("cannot allocate %d words "+
			"for %s", n, what))
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = allocError(fmt.Sprintf("cannot allocate %d words "+
				"for %s: %v", n, what, r))
		}
	}()
	return make([]uint32, n), nil
}

// newRomix allocates the scratch memory for params that have already been
// validated.
func newRomix(p *Params, cfg versionConfig) (*romix, error) {
	r := int(p.R)
	v, err := allocWords(uint64(32*r)*uint64(p.N), "V")
	if err != nil {
		return nil, err
	}
	x, err := allocWords(uint64(32*r), "X")
	if err != nil {
		return nil, err
	}
	s, err := allocWords(uint64(cfg.sBoxWords()), "S")
	if err != nil {
		return nil, err
	}
	return &romix{
		r:   r,
		n:   p.N,
		v:   v,
		x:   x,
		y:   make([]uint32, 32),
		ctx: newPwxformCtx(cfg, s),
	}, nil
}

// shuffleIn loads b into x, permuting each 64-byte sub-block into the
// order salsa20 expects.
func shuffleIn(x, b []uint32, r int) {
	for k := 0; k < 2*r; k++ {
		for i := 0; i < 16; i++ {
			x[k*16+i] = b[k*16+(i*5%16)]
		}
	}
}

// shuffleOut is the inverse of shuffleIn.
func shuffleOut(b, x []uint32, r int) {
	for k := 0; k < 2*r; k++ {
		for i := 0; i < 16; i++ {
			b[k*16+(i*5%16)] = x[k*16+i]
		}
	}
}

// integerify returns the first word of the last 64-byte sub-block.
func integerify(x []uint32, r int) uint32 {
	return x[(2*r-1)*16]
}

// p2floor returns the largest power of two not greater than x.
func p2floor(x uint32) uint32 {
	for y := x & (x - 1); y != 0; y = x & (x - 1) {
		x = y
	}
	return x
}

// wrap maps x onto the window [i - p2floor(i), i) of already written
// blocks.
func wrap(x, i uint32) uint32 {
	n := p2floor(i)
	return (x & (n - 1)) + (i - n)
}

// smix runs the whole memory-hard core on b, which holds 32*r words in
// natural order.
func (m *romix) smix(b []uint32) {
	nloopAll := (m.n + 2) / 3
	nloopRW := nloopAll

	nloopAll++
	nloopAll &^= 1
	if m.ctx.roundDownRW {
		nloopRW &^= 1
	} else {
		nloopRW++
		nloopRW &^= 1
	}

	// The first pass fills the S-boxes using the salsa20 BlockMix, the
	// second fills V.
	s := m.ctx.s
	m.fill(b, 1, uint32(len(s)/32), s, true)
	m.fill(b, m.r, m.n, m.v, false)

	m.mix(b, nloopRW)
	m.mix(b, nloopAll-nloopRW)
}

// fill is smix1: it writes n sequential blocks into v, each derived from
// the previous one and an earlier block chosen by the data.
func (m *romix) fill(b []uint32, r int, n uint32, v []uint32, sbox bool) {
	s := 32 * r
	x := m.x[:s]

	shuffleIn(x, b, r)

	if m.ctx.sWrites {
		for k := 1; k < r; k++ {
			blockCopy(x[k*32:], x[(k-1)*32:], 32)
			blockMixPwxform(x[k*32:k*32+32], m.ctx, 1)
		}
	}

	for i := uint32(0); i < n; i++ {
		blockCopy(v[int(i)*s:], x, s)

		if i > 1 {
			j := wrap(integerify(x, r), i)
			blockXOR(x, v[int(j)*s:], s)
		}

		if sbox {
			blockMixSalsa(x, m.y, r, m.ctx.salsaRounds)
		} else {
			blockMixPwxform(x, m.ctx, r)
		}
	}

	shuffleOut(b, x, r)
}

// mix is smix2: nloop data dependent reads of V, each folded into the
// working block and written back.  A loop of exactly two iterations only
// reads.
func (m *romix) mix(b []uint32, nloop uint32) {
	r := m.r
	s := 32 * r
	x := m.x[:s]
	write := nloop != 2

	shuffleIn(x, b, r)

	for i := uint32(0); i < nloop; i++ {
		j := int(integerify(x, r) & (m.n - 1))

		blockXOR(x, m.v[j*s:], s)
		if write {
			blockCopy(m.v[j*s:], x, s)
		}

		blockMixPwxform(x, m.ctx, r)
	}

	shuffleOut(b, x, r)
}
