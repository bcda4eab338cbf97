// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package yespower

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/pbkdf2"
)

// expand stretches (password, salt) into keyLen bytes with a single
// iteration of PBKDF2-HMAC-SHA256.
func expand(password, salt []byte, keyLen int) []byte {
	return pbkdf2.Key(password, salt, 1, keyLen, sha256.New)
}

// initialBlock derives the ROMix input from the input and params.  It
// returns the block as words together with the 32-byte key that replaces
// the input hash for finalization.
func initialBlock(input []byte, p *Params) ([]uint32, []byte) {
	prehash := sha256.Sum256(input)

	salt := p.Pers
	if p.Version == Version05 {
		salt = input
	}

	buf := expand(prehash[:], salt, 128*int(p.R))

	b := make([]uint32, len(buf)/4)
	for i := range b {
		b[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}

	key := make([]byte, sha256.Size)
	copy(key, buf)
	return b, key
}

// finalize produces the digest from the mixed block b and the key returned
// by initialBlock.
func finalize(b []uint32, key []byte, p *Params) (Digest, error) {
	var d Digest

	if len(b) != 32*int(p.R) || len(key) != sha256.Size {
		return d, invariantError("mixed block has unexpected size")
	}

	buf := make([]byte, len(b)*4)
	for i, v := range b {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}

	switch p.Version {
	case Version05:
		copy(d[:], expand(key, buf, DigestSize))
		if p.Pers != nil {
			h := hmac.New(sha256.New, d[:])
			h.Write(p.Pers)
			d = sha256.Sum256(h.Sum(nil))
		}

	case Version10:
		h := hmac.New(sha256.New, buf[len(buf)-64:])
		h.Write(key)
		copy(d[:], h.Sum(nil))

	default:
		return d, invariantError("finalize called with unsupported " +
			"version " + p.Version.String())
	}

	return d, nil
}
