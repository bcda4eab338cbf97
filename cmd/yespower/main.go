// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/ltcsuite/ltcd/chaincfg/chainhash"
	"github.com/ltcsuite/yespowerd/blockchain"
	"github.com/ltcsuite/yespowerd/chaincfg"
	"github.com/ltcsuite/yespowerd/powhash"
	"github.com/ltcsuite/yespowerd/wire"
	"github.com/ltcsuite/yespowerd/yespower"
)

// request is one hex encoded input together with its decoded form.
type request struct {
	line   string
	input  []byte
	header *wire.BlockHeader
}

// parseRequest decodes line.  In header mode the input must be a serialized
// block header.
func parseRequest(line string, headerMode bool) (*request, error) {
	input, err := hex.DecodeString(line)
	if err != nil {
		return nil, fmt.Errorf("malformed input %q: %w", line, err)
	}

	req := &request{line: line, input: input}
	if headerMode {
		req.header, err = wire.NewBlockHeaderFromBytes(input)
		if err != nil {
			return nil, fmt.Errorf("malformed header %q: %w", line, err)
		}
	}
	return req, nil
}

// format returns the output line for the request.  Headers are also checked
// against the target their bits describe.
func (r *request) format(digest yespower.Digest, powParams *chaincfg.Params) string {
	if r.header == nil {
		return fmt.Sprintf("%s %v", r.line, digest)
	}

	hash := chainhash.Hash(digest)
	status := "ok"
	err := blockchain.CheckHashTarget(&hash, r.header.Bits, powParams.PowLimit)
	if err != nil {
		status = err.Error()
	}
	yspwLog.Debugf("Header %v has proof of work hash %v (%s)",
		r.header.BlockHash(), hash, status)
	return fmt.Sprintf("%s %v %s", r.line, digest, status)
}

// hashArgs hashes the positional arguments concurrently and writes one line
// per input in the order given.
func hashArgs(ctx context.Context, h *powhash.Hasher, powParams *chaincfg.Params,
	headerMode bool, args []string, w io.Writer) error {

	reqs := make([]*request, 0, len(args))
	inputs := make([][]byte, 0, len(args))
	for _, arg := range args {
		req, err := parseRequest(strings.TrimSpace(arg), headerMode)
		if err != nil {
			return err
		}
		reqs = append(reqs, req)
		inputs = append(inputs, req.input)
	}

	digests, err := h.HashBatch(ctx, inputs)
	if err != nil {
		return err
	}
	for i, req := range reqs {
		fmt.Fprintln(w, req.format(digests[i], powParams))
	}
	return nil
}

// hashReader hashes every non-empty line read from r in turn.
func hashReader(ctx context.Context, h *powhash.Hasher, powParams *chaincfg.Params,
	headerMode bool, r io.Reader, w io.Writer) error {

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		req, err := parseRequest(line, headerMode)
		if err != nil {
			return err
		}
		digest, err := h.Hash(ctx, req.input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, req.format(digest, powParams))
	}
	return scanner.Err()
}

// yespowerMain is the real main function for yespower.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func yespowerMain() error {
	cfg, args, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	yspwLog.Debugf("Using %v", &cfg.powParams.Algorithm)

	var store *powhash.Store
	if cfg.DataDir != "" {
		store, err = powhash.OpenStore(cfg.DataDir)
		if err != nil {
			yspwLog.Errorf("%v", err)
			return err
		}
		defer store.Close()
	}

	hasher, err := powhash.New(&powhash.Config{
		Params:    cfg.powParams.Algorithm,
		CacheSize: cfg.CacheSize,
		Workers:   cfg.Workers,
		Store:     store,
	})
	if err != nil {
		yspwLog.Errorf("Unable to create hasher: %v", err)
		return err
	}
	defer hasher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(args) > 0 {
		err = hashArgs(ctx, hasher, cfg.powParams, cfg.Header, args,
			os.Stdout)
	} else {
		err = hashReader(ctx, hasher, cfg.powParams, cfg.Header,
			os.Stdin, os.Stdout)
	}
	if err != nil {
		yspwLog.Errorf("%v", err)
		return err
	}

	hits, misses := hasher.Stats()
	yspwLog.Debugf("Served %d digests from cache, computed %d", hits, misses)
	return nil
}

func main() {
	if err := yespowerMain(); err != nil {
		os.Exit(1)
	}
}
