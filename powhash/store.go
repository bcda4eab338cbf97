// Copyright (c) 2024 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powhash

import (
	"errors"
	"fmt"

	"github.com/ltcsuite/yespowerd/yespower"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// Store persists computed digests in a leveldb database keyed by the same
// fingerprint used by the in-memory cache.
type Store struct {
	db *leveldb.DB
}

// OpenStore opens, creating it when needed, the digest database at path.
func OpenStore(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{
		Compression: opt.NoCompression,
	})
	if err != nil {
		return nil, fmt.Errorf("open digest store %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// NewMemStore returns a store backed by memory only.
func NewMemStore() (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Get returns the digest recorded under key.  The boolean is false when no
// digest has been recorded.
func (s *Store) Get(key *[keySize]byte) (yespower.Digest, bool, error) {
	var digest yespower.Digest

	val, err := s.db.Get(key[:], nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return digest, false, nil
	}
	if err != nil {
		return digest, false, err
	}
	if len(val) != len(digest) {
		return digest, false, fmt.Errorf("corrupt digest entry %x: "+
			"%d bytes", key[:], len(val))
	}

	copy(digest[:], val)
	return digest, true, nil
}

// Put records digest under key.
func (s *Store) Put(key *[keySize]byte, digest *yespower.Digest) error {
	return s.db.Put(key[:], digest[:], nil)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
