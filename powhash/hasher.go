// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powhash

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/decred/dcrd/lru"
	"github.com/ltcsuite/yespowerd/yespower"
	"lukechampine.com/blake3"
)

// keySize is the size of the fingerprint that identifies a params and input
// pair in the cache and the store.
const keySize = 32

// ErrClosed is returned when a Hasher is used after Close.
var ErrClosed = errors.New("hasher is closed")

// CacheEntry is a known digest for an input, used to seed a Hasher.
type CacheEntry struct {
	Key, Val []byte
}

// Config holds the settings of a Hasher.
type Config struct {
	// Params are the yespower parameters every digest is computed with.
	Params yespower.Params

	// CacheSize is the number of digests kept in memory.  Zero disables
	// the cache.
	CacheSize uint

	// Workers bounds the number of digests computed at once.  Values
	// below one select runtime.NumCPU.
	Workers int

	// Store, when set, persists computed digests.  The Hasher does not
	// take ownership of it.
	Store *Store
}

// Hasher computes yespower digests for one set of parameters, consulting an
// LRU cache and an optional persistent store before doing the work.  It is
// safe for concurrent use.
type Hasher struct {
	params yespower.Params
	prefix []byte
	store  *Store

	cache    *lru.KVCache
	seedMtx  sync.RWMutex
	seeded   map[[keySize]byte]yespower.Digest
	sem      chan struct{}
	quit     chan struct{}
	closeMtx sync.Once

	hits   atomic.Uint64
	misses atomic.Uint64
}

// New returns a Hasher for cfg.  The params are validated up front so that
// every later failure is a real computation error.
func New(cfg *Config) (*Hasher, error) {
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	h := &Hasher{
		params: cfg.Params,
		prefix: paramsPrefix(&cfg.Params),
		store:  cfg.Store,
		sem:    make(chan struct{}, workers),
		quit:   make(chan struct{}),
	}
	if cfg.Params.Pers != nil {
		h.params.Pers = make([]byte, len(cfg.Params.Pers))
		copy(h.params.Pers, cfg.Params.Pers)
	}
	if cfg.CacheSize > 0 {
		cache := lru.NewKVCache(cfg.CacheSize)
		h.cache = &cache
	}

	log.Debugf("Hasher for %v using %d workers, cache size %d",
		&h.params, workers, cfg.CacheSize)

	return h, nil
}

// paramsPrefix serializes the params that distinguish one digest function
// from another.  A nil personalization differs from an empty one.
func paramsPrefix(p *yespower.Params) []byte {
	prefix := make([]byte, 14, 14+len(p.Pers))
	prefix[0] = byte(p.Version)
	binary.LittleEndian.PutUint32(prefix[1:5], p.N)
	binary.LittleEndian.PutUint32(prefix[5:9], p.R)
	if p.Pers != nil {
		prefix[9] = 1
	}
	binary.LittleEndian.PutUint32(prefix[10:14], uint32(len(p.Pers)))
	return append(prefix, p.Pers...)
}

// key returns the fingerprint of input under the hasher's params.
func (h *Hasher) key(input []byte) [keySize]byte {
	hasher := blake3.New(keySize, nil)
	hasher.Write(h.prefix)
	hasher.Write(input)

	var key [keySize]byte
	copy(key[:], hasher.Sum(nil))
	return key
}

// Params returns a copy of the parameters the hasher computes digests with.
func (h *Hasher) Params() yespower.Params {
	params := h.params
	if h.params.Pers != nil {
		params.Pers = make([]byte, len(h.params.Pers))
		copy(params.Pers, h.params.Pers)
	}
	return params
}

// SetCache replaces the set of known digests.  Seeded digests are never
// evicted and take precedence over the cache and the store.
func (h *Hasher) SetCache(entries []CacheEntry) error {
	seeded := make(map[[keySize]byte]yespower.Digest, len(entries))
	for i := range entries {
		entry := &entries[i]
		if len(entry.Val) != yespower.DigestSize {
			return fmt.Errorf("cache entry %x has a %d byte digest",
				entry.Key, len(entry.Val))
		}
		var digest yespower.Digest
		copy(digest[:], entry.Val)
		seeded[h.key(entry.Key)] = digest
	}

	h.seedMtx.Lock()
	h.seeded = seeded
	h.seedMtx.Unlock()
	return nil
}

// lookup returns a digest for key from the seeded set or the cache.
func (h *Hasher) lookup(key *[keySize]byte) (yespower.Digest, bool) {
	h.seedMtx.RLock()
	digest, ok := h.seeded[*key]
	h.seedMtx.RUnlock()
	if ok {
		return digest, true
	}

	if h.cache == nil {
		return digest, false
	}
	v, ok := h.cache.Lookup(*key)
	if !ok {
		return digest, false
	}
	return v.(yespower.Digest), true
}

// remember adds a digest to the cache.
func (h *Hasher) remember(key *[keySize]byte, digest yespower.Digest) {
	if h.cache != nil {
		h.cache.Add(*key, digest)
	}
}

// Hash returns the digest of input.  A digest already known to the cache or
// the store is returned without computing it.  Otherwise the computation
// runs on its own goroutine once a worker slot is free; if ctx is done
// first, ctx.Err() is returned and the result, when it arrives, is only
// cached.
func (h *Hasher) Hash(ctx context.Context, input []byte) (yespower.Digest, error) {
	var zero yespower.Digest
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	select {
	case <-h.quit:
		return zero, ErrClosed
	default:
	}

	key := h.key(input)
	if digest, ok := h.lookup(&key); ok {
		h.hits.Add(1)
		return digest, nil
	}

	if h.store != nil {
		digest, ok, err := h.store.Get(&key)
		if err != nil {
			return zero, err
		}
		if ok {
			h.hits.Add(1)
			h.remember(&key, digest)
			return digest, nil
		}
	}
	h.misses.Add(1)

	select {
	case h.sem <- struct{}{}:
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-h.quit:
		return zero, ErrClosed
	}

	type result struct {
		digest yespower.Digest
		err    error
	}
	done := make(chan result, 1)
	input = append([]byte(nil), input...)
	go func() {
		defer func() { <-h.sem }()

		digest, err := yespower.Hash(input, &h.params)
		if err == nil {
			h.remember(&key, digest)
		}
		done <- result{digest, err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return zero, res.err
		}
		if h.store != nil {
			if err := h.store.Put(&key, &res.digest); err != nil {
				log.Warnf("Unable to store digest %v: %v",
					res.digest, err)
			}
		}
		return res.digest, nil

	case <-ctx.Done():
		log.Tracef("Abandoned digest computation: %v", ctx.Err())
		return zero, ctx.Err()
	}
}

// HashBatch hashes every input concurrently and returns the digests in input
// order.  Any failure cancels the remaining inputs and is returned.
func (h *Hasher) HashBatch(ctx context.Context, inputs [][]byte) ([]yespower.Digest, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	digests := make([]yespower.Digest, len(inputs))
	errs := make([]error, len(inputs))

	var wg sync.WaitGroup
	wg.Add(len(inputs))
	for i := range inputs {
		go func(i int) {
			defer wg.Done()

			digests[i], errs[i] = h.Hash(ctx, inputs[i])
			if errs[i] != nil {
				cancel()
			}
		}(i)
	}
	wg.Wait()

	// Cancellation spreads to the other inputs, so report the error that
	// caused it rather than the context error it produced.
	var first error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if first == nil || (errors.Is(first, context.Canceled) &&
			!errors.Is(err, context.Canceled)) {
			first = err
		}
	}
	if first != nil {
		return nil, first
	}
	return digests, nil
}

// Stats returns the number of digests served without computation and the
// number that had to be computed.
func (h *Hasher) Stats() (hits, misses uint64) {
	return h.hits.Load(), h.misses.Load()
}

// Close stops the hasher from accepting new work.  Computations already
// running are left to finish.
func (h *Hasher) Close() error {
	h.closeMtx.Do(func() {
		close(h.quit)
		hits, misses := h.Stats()
		log.Debugf("Hasher for %v closed: %d hits, %d misses",
			&h.params, hits, misses)
	})
	return nil
}
