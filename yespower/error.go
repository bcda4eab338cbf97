// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package yespower

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

const (
	// ErrInvalidParameters indicates params outside the accepted range.
	// No computation is attempted.
	ErrInvalidParameters ErrorCode = iota

	// ErrAllocationFailure indicates the scratch memory could not be
	// obtained.  The call is aborted and no digest is produced.
	ErrAllocationFailure

	// ErrInternalInvariant indicates a defect in the implementation.
	ErrInternalInvariant

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidParameters: "ErrInvalidParameters",
	ErrAllocationFailure: "ErrAllocationFailure",
	ErrInternalInvariant: "ErrInternalInvariant",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a yespower error.  The caller can use type assertions
// or errors.As to access the ErrorCode field and ascertain the specific
// reason for the failure.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

func paramError(desc string) Error {
	return Error{ErrorCode: ErrInvalidParameters,
		Description: "yespower: " + desc}
}

func allocError(desc string) Error {
	return Error{ErrorCode: ErrAllocationFailure,
		Description: "yespower: " + desc}
}

func invariantError(desc string) Error {
	return Error{ErrorCode: ErrInternalInvariant,
		Description: "yespower: " + desc}
}

// IsErrorCode returns whether or not the provided error is, or wraps, a
// yespower Error with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var e Error
	return errors.As(err, &e) && e.ErrorCode == c
}
