// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package yespower implements the yespower proof-of-work function, versions
0.5 (compatible with yescrypt in its PoW configuration) and 1.0.

yespower is a memory-hard function derived from scrypt.  The input is
hashed with SHA-256 and expanded with PBKDF2-HMAC-SHA256 into a working
block of 128*r bytes.  The block then goes through a sequential
memory-hard core which fills a scratch array of N blocks and reads it
back at data dependent positions, mixing with a round-reduced salsa20 and
the pwxform S-box transform.  The result is condensed into a 32-byte
digest.

Each call allocates roughly 128*r*N bytes plus the S-boxes and owns that
memory exclusively, so independent calls may run concurrently.  A single
call is strictly sequential.

Typical use for PoW with the parameters of the reference tests:

	digest, err := yespower.Hash(header, &yespower.Params{
		Version: yespower.Version10,
		N:       2048,
		R:       32,
	})

Errors are of type Error and carry an ErrorCode; IsErrorCode tests for a
specific code.
*/
package yespower
