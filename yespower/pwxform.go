// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package yespower

// These are fixed by the yespower design.  pwxform operates on PWXgather
// lanes of PWXsimple 64-bit words.
const (
	pwxSimple = 2
	pwxGather = 4

	pwxBytes = pwxGather * pwxSimple * 8
	pwxWords = pwxBytes / 4
)

// versionConfig holds the per-version tunables.  Values are constant for
// the life of the process; see configFor.
type versionConfig struct {
	salsaRounds int
	pwxRounds   int
	sWidth      uint

	// sRegions is the number of S-box regions.  Version 1.0 keeps a third
	// region so it can write while reading the other two.
	sRegions int

	// sWrites is set when pwxform writes its output back into the S-boxes.
	sWrites bool

	// roundDownRW rounds the read-write loop count down to even rather
	// than up.
	roundDownRW bool
}

// configFor returns the tunables of a version.
func configFor(v Version) (versionConfig, bool) {
	switch v {
	case Version05:
		return versionConfig{
			salsaRounds: 8,
			pwxRounds:   6,
			sWidth:      8,
			sRegions:    2,
			roundDownRW: true,
		}, true
	case Version10:
		return versionConfig{
			salsaRounds: 2,
			pwxRounds:   3,
			sWidth:      11,
			sRegions:    3,
			sWrites:     true,
		}, true
	}
	return versionConfig{}, false
}

// regionWords is the size in words of one S-box region.
func (c versionConfig) regionWords() int {
	return (1 << c.sWidth) * pwxSimple * 2
}

// sBoxWords is the size in words of the whole S-box area.
func (c versionConfig) sBoxWords() int {
	return c.sRegions * c.regionWords()
}

// sMask selects a lane offset within a region, in bytes.
func (c versionConfig) sMask() uint32 {
	return uint32(((1 << c.sWidth) - 1) * pwxSimple * 8)
}

// pwxformCtx is the S-box state threaded through one computation.  It is
// owned by a single call.
type pwxformCtx struct {
	versionConfig

	// s holds the S-boxes as little-endian word pairs.  s0, s1 and s2 are
	// word offsets of the three regions and w the write offset.
	s          []uint32
	s0, s1, s2 int
	w          int
	mask       uint32
}

func newPwxformCtx(cfg versionConfig, s []uint32) *pwxformCtx {
	region := cfg.regionWords()
	return &pwxformCtx{
		versionConfig: cfg,
		s:             s,
		s0:            0,
		s1:            region,
		s2:            2 * region,
		mask:          cfg.sMask(),
	}
}

// pwxform transforms one pwxform block in place.
func (c *pwxformCtx) pwxform(b *[pwxWords]uint32) {
	s := c.s
	s0, s1, s2 := c.s0, c.s1, c.s2
	w := c.w

	for i := 0; i < c.pwxRounds; i++ {
		for j := 0; j < pwxGather; j++ {
			lane := j * pwxSimple * 2

			// Byte offsets of the S-box entries, converted to
			// words.  Each entry is pwxSimple word pairs.
			p0 := s0 + int((b[lane]&c.mask)/8)*2
			p1 := s1 + int((b[lane+1]&c.mask)/8)*2

			for k := 0; k < pwxSimple; k++ {
				o := lane + 2*k
				x := uint64(b[o+1]) * uint64(b[o])
				x += uint64(s[p0+2*k]) | uint64(s[p0+2*k+1])<<32
				x ^= uint64(s[p1+2*k]) | uint64(s[p1+2*k+1])<<32
				b[o] = uint32(x)
				b[o+1] = uint32(x >> 32)
			}

			if !c.sWrites || (i != 0 && j >= pwxGather/2) {
				continue
			}
			if j&1 != 0 {
				for k := 0; k < pwxSimple; k++ {
					s[s1+w] = b[lane+2*k]
					s[s1+w+1] = b[lane+2*k+1]
					w += 2
				}
			} else {
				for k := 0; k < pwxSimple; k++ {
					s[s0+w+2*k] = b[lane+2*k]
					s[s0+w+2*k+1] = b[lane+2*k+1]
				}
			}
		}
	}

	if c.sWrites {
		c.s0, c.s1, c.s2 = s2, s0, s1
		c.w = w & ((1<<(c.sWidth+1))*pwxSimple - 1)
	}
}

// blockMixPwxform computes B = BlockMix_pwxform{salsa20, ctx, r}(B).  b
// holds 32*r words.
func blockMixPwxform(b []uint32, ctx *pwxformCtx, r int) {
	var x [pwxWords]uint32

	r1 := 128 * r / pwxBytes
	blockCopy(x[:], b[(r1-1)*pwxWords:], pwxWords)

	for i := 0; i < r1; i++ {
		if r1 > 1 {
			blockXOR(x[:], b[i*pwxWords:], pwxWords)
		}
		ctx.pwxform(&x)
		blockCopy(b[i*pwxWords:], x[:], pwxWords)
	}

	// A pwxform block is exactly one salsa20 block, so only the final
	// sub-block gets the extra salsa20 pass.
	i := (r1 - 1) * pwxBytes / 64
	salsa20(b[i*16:i*16+16], ctx.salsaRounds)
}
