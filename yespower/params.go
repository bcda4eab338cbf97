// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package yespower

import (
	"encoding/hex"
	"fmt"
	"math/bits"
	"strings"
)

// Version selects the yespower variant.  Version05 is the yescrypt
// compatible variant, Version10 is yespower 1.0.
type Version int

const (
	Version05 Version = iota + 1
	Version10
)

// String returns the version in the form used by the reference library.
func (v Version) String() string {
	switch v {
	case Version05:
		return "YESPOWER_0_5"
	case Version10:
		return "YESPOWER_1_0"
	}
	return fmt.Sprintf("Unknown Version (%d)", int(v))
}

// ParseVersion parses "0.5", "1.0" or the reference constant names.
func ParseVersion(s string) (Version, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "0.5", "05", "YESPOWER_0_5", "YESCRYPT":
		return Version05, nil
	case "1.0", "10", "1", "YESPOWER_1_0", "YESPOWER":
		return Version10, nil
	}
	return 0, paramError(fmt.Sprintf("unknown version %q", s))
}

const (
	// DigestSize is the size of a yespower digest in bytes.
	DigestSize = 32

	// MaxR is the largest block size multiplier accepted by Validate.
	MaxR = 1 << 16

	// MaxScratchBytes bounds the scratch memory of a single call.  It is
	// the footprint of the largest configuration the reference library
	// accepts (N = 512Ki, r = 32).
	MaxScratchBytes = 128 * 32 * 512 * 1024

	// Bounds enforced by the reference C implementation.
	refMinN = 1024
	refMaxN = 512 * 1024
	refMinR = 8
	refMaxR = 32
)

// Params are the cost parameters of a yespower computation.
type Params struct {
	Version Version

	// N is the memory cost, a power of two no smaller than 2.
	N uint32

	// R is the block size multiplier.  Each block is 128*R bytes.
	R uint32

	// Pers is the personalization string.  For Version05 a non-nil Pers,
	// even an empty one, enables the extra finalization step.
	Pers []byte
}

// ScratchBytes returns the size of the V array a call with these params
// allocates.  The S-boxes and working blocks come on top of this.
func (p *Params) ScratchBytes() uint64 {
	return 128 * uint64(p.R) * uint64(p.N)
}

// Validate checks the params against the bounds this implementation can
// compute without approaching unbounded allocations.
func (p *Params) Validate() error {
	if _, ok := configFor(p.Version); !ok {
		return paramError(fmt.Sprintf("unsupported version %v", p.Version))
	}
	if p.N < 2 || bits.OnesCount32(p.N) != 1 {
		return paramError(fmt.Sprintf("N must be a power of two "+
			"greater than 1, got %d", p.N))
	}
	if p.R < 1 || p.R > MaxR {
		return paramError(fmt.Sprintf("r must be in [1, %d], got %d",
			MaxR, p.R))
	}
	size := p.ScratchBytes()
	if size > MaxScratchBytes || size > uint64(maxInt) {
		return paramError(fmt.Sprintf("N*r requires %d bytes of "+
			"scratch, limit is %d", size, uint64(MaxScratchBytes)))
	}
	return nil
}

// ValidateReference applies Validate and then the stricter bounds of the
// reference library, which rejects anything outside 1024 <= N <= 512Ki and
// 8 <= r <= 32.
func (p *Params) ValidateReference() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.N < refMinN || p.N > refMaxN {
		return paramError(fmt.Sprintf("N must be in [%d, %d] for the "+
			"reference implementation, got %d", refMinN, refMaxN, p.N))
	}
	if p.R < refMinR || p.R > refMaxR {
		return paramError(fmt.Sprintf("r must be in [%d, %d] for the "+
			"reference implementation, got %d", refMinR, refMaxR, p.R))
	}
	return nil
}

// String returns a compact description of the params for logs.
func (p *Params) String() string {
	pers := "<nil>"
	if p.Pers != nil {
		pers = fmt.Sprintf("%q", p.Pers)
	}
	return fmt.Sprintf("%v N=%d r=%d pers=%s", p.Version, p.N, p.R, pers)
}

// Digest is the fixed size output of a yespower computation.
type Digest [DigestSize]byte

// String returns the digest as lowercase hex, in byte order.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest decodes a hex encoded digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if hex.DecodedLen(len(s)) != DigestSize {
		return d, fmt.Errorf("digest must be %d hex characters, got %d",
			DigestSize*2, len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, err
	}
	return d, nil
}
