// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/ltcsuite/ltcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

// testHeader returns the header used by the proof of work tests.
func testHeader(nonce uint32) *BlockHeader {
	var merkle chainhash.Hash
	for i := range merkle {
		merkle[i] = byte(i + 1)
	}
	return &BlockHeader{
		Version:    1,
		MerkleRoot: merkle,
		Timestamp:  time.Unix(1700000000, 0),
		Bits:       0x207fffff,
		Nonce:      nonce,
	}
}

const testHeaderHex = "01000000" +
	"0000000000000000000000000000000000000000000000000000000000000000" +
	"0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20" +
	"00f15365" + "ffff7f20" + "05000000"

func TestBlockHeaderSerialize(t *testing.T) {
	h := testHeader(5)

	var buf bytes.Buffer
	require.NoError(t, h.Serialize(&buf))
	require.Equal(t, testHeaderHex, hex.EncodeToString(buf.Bytes()))
	require.Equal(t, buf.Bytes(), h.Bytes())
	require.Len(t, h.Bytes(), BlockHeaderLen)
}

func TestBlockHeaderDeserialize(t *testing.T) {
	raw, err := hex.DecodeString(testHeaderHex)
	require.NoError(t, err)

	h, err := NewBlockHeaderFromBytes(raw)
	require.NoError(t, err)
	require.Equal(t, testHeader(5), h, spew.Sdump(h))

	_, err = NewBlockHeaderFromBytes(raw[:BlockHeaderLen-1])
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	var short BlockHeader
	err = short.Deserialize(bytes.NewReader(raw[:40]))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestBlockHash(t *testing.T) {
	tests := []struct {
		nonce uint32
		want  string
	}{
		{0, "dbf1b0f87961cd4bcc768b7478bc4ade62701ebb565edf214295fc8c3030cdfb"},
		{3, "0a6ebe6e18f770988dee07f0fd0b9c2caf5ce2fce20220148da28e6749f9dada"},
		{5, "41a97d0d6d69ee5b6fe3546c58104484e859a0ec6f01ed75613bb5b90f0166fb"},
	}
	for _, test := range tests {
		hash := testHeader(test.nonce).BlockHash()
		require.Equal(t, test.want, hash.String(), "nonce %d", test.nonce)
	}
}

func TestNewBlockHeader(t *testing.T) {
	prev := chainhash.DoubleHashH([]byte("prev"))
	merkle := chainhash.DoubleHashH([]byte("merkle"))

	h := NewBlockHeader(2, &prev, &merkle, 0x1e0fffff, 42)
	require.Equal(t, prev, h.PrevBlock)
	require.Equal(t, merkle, h.MerkleRoot)
	require.Equal(t, 0, h.Timestamp.Nanosecond())

	// A round trip must preserve every field.
	decoded, err := NewBlockHeaderFromBytes(h.Bytes())
	require.NoError(t, err)
	require.True(t, h.Timestamp.Equal(decoded.Timestamp))
	require.Equal(t, h.BlockHash(), decoded.BlockHash())
}
