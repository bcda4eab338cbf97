// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/ltcsuite/yespowerd/yespower"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have
	// under the algorithm presets.  It is the value 2^236 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// regressionPowLimit is the highest proof of work value a block can
	// have for the regression test params.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// Params defines a yespower configuration together with the proof of work
// limit of the chains using it.
type Params struct {
	// Name is the identifier the params are registered and looked up
	// under.
	Name string

	// Algorithm holds the yespower cost parameters.
	Algorithm yespower.Params

	// PowLimit defines the highest allowed proof of work value for a
	// block as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32
}

// YespowerParams are the params of plain yespower 1.0 as mined by
// CPU-oriented chains (N = 2048, r = 32).
var YespowerParams = Params{
	Name: "yespower",
	Algorithm: yespower.Params{
		Version: yespower.Version10,
		N:       2048,
		R:       32,
	},
	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,
}

// YespowerR16Params are yespower 1.0 with N = 4096, r = 16.
var YespowerR16Params = Params{
	Name: "yespowerr16",
	Algorithm: yespower.Params{
		Version: yespower.Version10,
		N:       4096,
		R:       16,
	},
	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,
}

// YescryptParams are the yescrypt compatible yespower 0.5 params with the
// "Client Key" personalization.
var YescryptParams = Params{
	Name: "yescrypt",
	Algorithm: yespower.Params{
		Version: yespower.Version05,
		N:       2048,
		R:       8,
		Pers:    []byte("Client Key"),
	},
	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,
}

// YescryptR16Params are yespower 0.5 with N = 4096, r = 16.
var YescryptR16Params = Params{
	Name: "yescryptr16",
	Algorithm: yespower.Params{
		Version: yespower.Version05,
		N:       4096,
		R:       16,
		Pers:    []byte("Client Key"),
	},
	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,
}

// YescryptR24Params are yespower 0.5 with N = 4096, r = 24.
var YescryptR24Params = Params{
	Name: "yescryptr24",
	Algorithm: yespower.Params{
		Version: yespower.Version05,
		N:       4096,
		R:       24,
		Pers:    []byte("Jagaricoin"),
	},
	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,
}

// YescryptR32Params are yespower 0.5 with N = 4096, r = 32.
var YescryptR32Params = Params{
	Name: "yescryptr32",
	Algorithm: yespower.Params{
		Version: yespower.Version05,
		N:       4096,
		R:       32,
		Pers:    []byte("WaviBanana"),
	},
	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,
}

// RegressionNetParams are tiny yespower 1.0 params with an easy proof of
// work limit, meant for tests.
var RegressionNetParams = Params{
	Name: "regtest",
	Algorithm: yespower.Params{
		Version: yespower.Version10,
		N:       16,
		R:       1,
	},
	PowLimit:     regressionPowLimit,
	PowLimitBits: 0x207fffff,
}

var (
	// ErrDuplicateParams describes an error where the params being
	// registered use a name that is already taken.
	ErrDuplicateParams = errors.New("duplicate params name")

	// ErrUnknownParams describes an error where no params are registered
	// under the requested name.
	ErrUnknownParams = errors.New("unknown params name")
)

var registeredParams = make(map[string]*Params)

// Register registers the params so they can be looked up by name.  Names
// are case insensitive.
//
// Register is not safe for concurrent use and is meant to be called from
// init functions.
func Register(params *Params) error {
	name := strings.ToLower(params.Name)
	if name == "" {
		return fmt.Errorf("params must have a name")
	}
	if _, ok := registeredParams[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateParams, name)
	}
	if err := params.Algorithm.Validate(); err != nil {
		return fmt.Errorf("params %s: %w", name, err)
	}
	if params.PowLimit == nil || params.PowLimit.Sign() <= 0 {
		return fmt.Errorf("params %s: pow limit must be positive", name)
	}

	registeredParams[name] = params
	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error.  This should only be called from package init
// functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register params: " + err.Error())
	}
}

// ByName returns the params registered under name.
func ByName(name string) (*Params, error) {
	params, ok := registeredParams[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParams, name)
	}
	return params, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registeredParams))
	for name := range registeredParams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	// Register all default params when the package is initialized.
	mustRegister(&YespowerParams)
	mustRegister(&YespowerR16Params)
	mustRegister(&YescryptParams)
	mustRegister(&YescryptR16Params)
	mustRegister(&YescryptR24Params)
	mustRegister(&YescryptR32Params)
	mustRegister(&RegressionNetParams)
}
