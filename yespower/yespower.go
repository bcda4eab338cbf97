// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package yespower

// Hash computes the yespower digest of input under params.  Params are
// validated before any scratch memory is allocated.
//
// Hash is safe for concurrent use: every call allocates and owns its own
// scratch memory.  The computation cannot be interrupted; callers that
// need cancellation must run it on a separate goroutine.
//
// ErrAllocationFailure only reports sizes the runtime refuses outright.  A
// machine that cannot back the scratch area aborts the process instead, so
// callers should bound params.ScratchBytes() against the memory they have.
func Hash(input []byte, params *Params) (Digest, error) {
	if params == nil {
		return Digest{}, paramError("nil params")
	}
	if err := params.Validate(); err != nil {
		return Digest{}, err
	}
	cfg, _ := configFor(params.Version)

	m, err := newRomix(params, cfg)
	if err != nil {
		return Digest{}, err
	}

	b, key := initialBlock(input, params)
	m.smix(b)

	return finalize(b, key, params)
}

// Sum computes the yespower 1.0 digest of input with memory cost n, block
// size multiplier r and the personalization pers, which may be empty.
func Sum(input []byte, n, r uint32, pers []byte) (Digest, error) {
	return Hash(input, &Params{
		Version: Version10,
		N:       n,
		R:       r,
		Pers:    pers,
	})
}
