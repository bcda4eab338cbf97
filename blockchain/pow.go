// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"math/big"

	"github.com/ltcsuite/ltcd/chaincfg/chainhash"
	"github.com/ltcsuite/yespowerd/chaincfg"
	"github.com/ltcsuite/yespowerd/wire"
	"github.com/ltcsuite/yespowerd/yespower"
)

// PowHash returns the yespower digest of the serialized header.  The digest
// bytes are used as is, so like any other chainhash.Hash it prints in
// reverse byte order.
func PowHash(header *wire.BlockHeader, params *yespower.Params) (chainhash.Hash, error) {
	digest, err := yespower.Hash(header.Bytes(), params)
	if err != nil {
		str := fmt.Sprintf("unable to compute proof of work hash: %v",
			err)
		return chainhash.Hash{}, RuleError{
			ErrorCode:   ErrPowHash,
			Description: str,
			Err:         err,
		}
	}
	return chainhash.Hash(digest), nil
}

// checkTarget ensures the target is positive and does not exceed the
// proof of work limit.
func checkTarget(target, powLimit *big.Int) error {
	if target.Sign() <= 0 {
		str := fmt.Sprintf("block target difficulty of %064x is too "+
			"low", target)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	if target.Cmp(powLimit) > 0 {
		str := fmt.Sprintf("block target difficulty of %064x is "+
			"higher than max of %064x", target, powLimit)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	return nil
}

// CheckHashTarget ensures the bits describe a target within powLimit and that
// hash, interpreted as a little-endian number, does not exceed it.
func CheckHashTarget(hash *chainhash.Hash, bits uint32, powLimit *big.Int) error {
	target := CompactToBig(bits)
	if err := checkTarget(target, powLimit); err != nil {
		return err
	}

	// The block hash must be less than the claimed target.
	hashNum := HashToBig(hash)
	if hashNum.Cmp(target) > 0 {
		str := fmt.Sprintf("block hash of %064x is higher than "+
			"expected max of %064x", hashNum, target)
		return ruleError(ErrHighHash, str)
	}

	return nil
}

// CheckProofOfWork ensures the header's bits describe a target within the
// limit of params and that the yespower hash of the header does not exceed
// that target.
func CheckProofOfWork(header *wire.BlockHeader, params *chaincfg.Params) error {
	// Reject a bad target before paying for the hash.
	if err := checkTarget(CompactToBig(header.Bits), params.PowLimit); err != nil {
		return err
	}

	hash, err := PowHash(header, &params.Algorithm)
	if err != nil {
		return err
	}

	log.Tracef("Header %v (%s) has proof of work hash %v",
		newLogClosure(func() string {
			h := header.BlockHash()
			return h.String()
		}), params.Name, hash)

	return CheckHashTarget(&hash, header.Bits, params.PowLimit)
}
