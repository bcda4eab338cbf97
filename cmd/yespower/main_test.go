// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ltcsuite/yespowerd/chaincfg"
	"github.com/ltcsuite/yespowerd/powhash"
	"github.com/ltcsuite/yespowerd/yespower"
	"github.com/stretchr/testify/require"
)

// headerHex returns a serialized regression test header with the given nonce
// already encoded as little-endian hex.
func headerHex(nonceHex string) string {
	return "01000000" +
		"0000000000000000000000000000000000000000000000000000000000000000" +
		"0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20" +
		"00f15365" + "ffff7f20" + nonceHex
}

// refInputHex is the 80 byte input of the yespower test vectors.
func refInputHex() string {
	src := make([]byte, 80)
	for i := range src {
		src[i] = byte(i * 3)
	}
	return hex.EncodeToString(src)
}

func newRegtestHasher(t *testing.T) *powhash.Hasher {
	t.Helper()

	h, err := powhash.New(&powhash.Config{
		Params:    chaincfg.RegressionNetParams.Algorithm,
		CacheSize: 4,
		Workers:   2,
	})
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h
}

func TestResolveParams(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
		want yespower.Params
	}{{
		name: "preset",
		cfg:  config{Algo: "yescryptr16"},
		want: yespower.Params{Version: yespower.Version05, N: 4096,
			R: 16, Pers: []byte("Client Key")},
	}, {
		name: "case insensitive",
		cfg:  config{Algo: "YesPower"},
		want: yespower.Params{Version: yespower.Version10, N: 2048, R: 32},
	}, {
		name: "overrides",
		cfg: config{Algo: "yespower", Version: "0.5", N: 1024, R: 8,
			Pers: "test"},
		want: yespower.Params{Version: yespower.Version05, N: 1024,
			R: 8, Pers: []byte("test")},
	}, {
		name: "nopers",
		cfg:  config{Algo: "yescrypt", NoPers: true},
		want: yespower.Params{Version: yespower.Version05, N: 2048, R: 8},
	}, {
		name: "emptypers",
		cfg:  config{Algo: "yescrypt", EmptyPers: true},
		want: yespower.Params{Version: yespower.Version05, N: 2048, R: 8,
			Pers: []byte{}},
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params, err := test.cfg.resolveParams(yespower.MaxScratchBytes)
			require.NoError(t, err)
			require.Equal(t, test.want, params.Algorithm)
			require.Equal(t, test.want.Pers == nil,
				params.Algorithm.Pers == nil)
		})
	}

	// The registered preset is left untouched.
	preset, err := chaincfg.ByName("yespower")
	require.NoError(t, err)
	require.Equal(t, uint32(2048), preset.Algorithm.N)
	require.Nil(t, preset.Algorithm.Pers)
}

func TestResolveParamsErrors(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config
		maxMem uint64
	}{
		{"unknown preset", config{Algo: "sha256d"}, yespower.MaxScratchBytes},
		{"bad version", config{Algo: "yespower", Version: "2.0"}, yespower.MaxScratchBytes},
		{"bad n", config{Algo: "yespower", N: 1000}, yespower.MaxScratchBytes},
		{"pers and nopers", config{Algo: "yespower", Pers: "x", NoPers: true}, yespower.MaxScratchBytes},
		{"pers and emptypers", config{Algo: "yespower", Pers: "x", EmptyPers: true}, yespower.MaxScratchBytes},
		{"nopers and emptypers", config{Algo: "yespower", NoPers: true, EmptyPers: true}, yespower.MaxScratchBytes},
		{"strict", config{Algo: "regtest", Strict: true}, yespower.MaxScratchBytes},
		{"memory limit", config{Algo: "yespower"}, 1 << 20},
	}

	for _, test := range tests {
		_, err := test.cfg.resolveParams(test.maxMem)
		require.Error(t, err, test.name)
	}
}

func TestParseAndSetDebugLevels(t *testing.T) {
	require.NoError(t, parseAndSetDebugLevels("debug"))
	require.NoError(t, parseAndSetDebugLevels("PHSH=trace,CHAN=warn"))
	require.Error(t, parseAndSetDebugLevels("loud"))
	require.Error(t, parseAndSetDebugLevels("PHSHtrace,"))
	require.Error(t, parseAndSetDebugLevels("NOPE=info"))
	require.Error(t, parseAndSetDebugLevels("PHSH=loud"))
	require.Equal(t, []string{"CHAN", "PHSH", "YSPW"}, supportedSubsystems())

	setLogLevels(defaultLogLevel)
}

func TestHashArgs(t *testing.T) {
	h := newRegtestHasher(t)
	params := &chaincfg.RegressionNetParams

	var out bytes.Buffer
	args := []string{refInputHex(), " " + refInputHex() + " "}
	err := hashArgs(context.Background(), h, params, false, args, &out)
	require.NoError(t, err)

	want := refInputHex() + " " +
		"62f9def74b84cc68de07a083a3665bb31c2038f31b5997778d4a12986e90ff98\n"
	require.Equal(t, want+want, out.String())

	err = hashArgs(context.Background(), h, params, false,
		[]string{"zz"}, &out)
	require.Error(t, err)
}

func TestHashHeaders(t *testing.T) {
	h := newRegtestHasher(t)
	params := &chaincfg.RegressionNetParams

	input := strings.Join([]string{
		headerHex("03000000"),
		"",
		headerHex("00000000"),
	}, "\n")

	var out bytes.Buffer
	err := hashReader(context.Background(), h, params, true,
		strings.NewReader(input), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, headerHex("03000000")+" "+
		"500cdd9c03f500f38aaa2c0336c444005f2bf468a61b19617d1a9cf1f1bccc03 ok",
		lines[0])
	require.True(t, strings.HasPrefix(lines[1], headerHex("00000000")+" "+
		"b0e50ba9a457d47097073679cc3f6ec648014e5e18a11a506f359274dd5d6fba "))
	require.Contains(t, lines[1], "higher than expected max")

	// A header must be exactly 80 bytes.
	err = hashReader(context.Background(), h, params, true,
		strings.NewReader(refInputHex()[:40]), &out)
	require.Error(t, err)
}
