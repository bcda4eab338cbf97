// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package yespower_test

import (
	"fmt"

	"github.com/ltcsuite/yespowerd/yespower"
)

// This example hashes the input of the reference test suite with yespower
// 1.0, N = 2048 and r = 8.
func ExampleHash() {
	input := make([]byte, 80)
	for i := range input {
		input[i] = byte(i * 3)
	}

	digest, err := yespower.Hash(input, &yespower.Params{
		Version: yespower.Version10,
		N:       2048,
		R:       8,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(digest)

	// Output:
	// 69e0e895b3df7aeeb837d71fe199e9d34f7ec46ecbca7a2c4308e51857ae9b46
}

// This example shows how invalid parameters are reported.
func ExampleIsErrorCode() {
	_, err := yespower.Sum([]byte("input"), 0, 8, nil)
	fmt.Println(yespower.IsErrorCode(err, yespower.ErrInvalidParameters))

	// Output:
	// true
}
