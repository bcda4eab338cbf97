// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/ltcsuite/ltcd/chaincfg/chainhash"
)

// BlockHeaderLen is the number of bytes of a serialized block header:
// Version 4 bytes + Timestamp 4 bytes + Bits 4 bytes + Nonce 4 bytes +
// PrevBlock and MerkleRoot hashes.
const BlockHeaderLen = 16 + (chainhash.HashSize * 2)

// BlockHeader defines information about a block.  Its serialized form is
// the input of the proof of work hash.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.  This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// NewBlockHeader returns a new BlockHeader using the provided version,
// previous block hash, merkle root hash, difficulty bits, and nonce used
// to generate the block with defaults for the remaining fields.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	bits uint32, nonce uint32) *BlockHeader {

	// Limit the timestamp to one second precision since the protocol
	// doesn't support better.
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}

// NewBlockHeaderFromBytes decodes a serialized header.  Trailing bytes
// are rejected.
func NewBlockHeaderFromBytes(b []byte) (*BlockHeader, error) {
	if len(b) != BlockHeaderLen {
		return nil, io.ErrUnexpectedEOF
	}
	var h BlockHeader
	if err := h.Deserialize(bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return &h, nil
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Encode the header and double sha256 everything prior to the number
	// of transactions.  Ignore the error returns since there is no way the
	// encode could fail except being out of memory which would cause a
	// run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	_ = h.Serialize(buf)

	return chainhash.DoubleHashH(buf.Bytes())
}

// Bytes returns the serialized header.
func (h *BlockHeader) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	_ = h.Serialize(buf)
	return buf.Bytes()
}

// Deserialize decodes a block header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readElements(r, &h.Version, &h.PrevBlock, &h.MerkleRoot,
		(*uint32Time)(&h.Timestamp), &h.Bits, &h.Nonce)
}

// Serialize encodes the receiver to w.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeElements(w, h.Version, &h.PrevBlock, &h.MerkleRoot,
		uint32Time(h.Timestamp), h.Bits, h.Nonce)
}
