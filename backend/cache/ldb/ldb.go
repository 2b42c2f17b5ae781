// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ldb provides a cache store backed by LevelDB.
package ldb

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/fold/backend/cache"
	"github.com/0xsoniclabs/fold/common"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

const Variant cache.Variant = "ldb"

// resultTable is the key-space prefix of cached results.
const resultTable byte = 'r'

func init() {
	cache.Register(Variant, func(params cache.Parameters) (cache.Store, error) {
		return Open(params.Directory)
	})
}

type dbKey [1 + common.HashSize]byte

func toDbKey(key common.Hash) dbKey {
	var res dbKey
	res[0] = resultTable
	copy(res[1:], key[:])
	return res
}

// Store is a LevelDB based implementation of cache.Store.
type Store struct {
	db *leveldb.DB
}

// Open opens or creates a LevelDB database in the given directory.
func Open(directory string) (*Store, error) {
	db, err := leveldb.OpenFile(directory, &opt.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open LevelDB in %s: %w", directory, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key common.Hash) ([]byte, bool, error) {
	k := toDbKey(key)
	value, err := s.db.Get(k[:], nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *Store) Set(key common.Hash, value []byte) error {
	k := toDbKey(key)
	return s.db.Put(k[:], value, nil)
}

// Flush does nothing, since LevelDB persists writes through its journal.
func (s *Store) Flush() error {
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
