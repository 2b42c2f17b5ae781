// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package sqlite provides a cache store backed by an SQLite database file.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/0xsoniclabs/fold/backend/cache"
	"github.com/0xsoniclabs/fold/common"
	_ "github.com/mattn/go-sqlite3"
)

const Variant cache.Variant = "sqlite"

// FileName is the name of the database file within the store's directory.
const FileName = "cache.sqlite"

func init() {
	cache.Register(Variant, func(params cache.Parameters) (cache.Store, error) {
		return Open(params.Directory)
	})
}

const (
	createTable = `CREATE TABLE IF NOT EXISTS results (key BLOB PRIMARY KEY, value BLOB NOT NULL)`
	selectValue = `SELECT value FROM results WHERE key = ?`
	upsertValue = `INSERT OR REPLACE INTO results (key, value) VALUES (?, ?)`
)

// Store is an SQLite based implementation of cache.Store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database file in the given directory.
func Open(directory string) (*Store, error) {
	path := filepath.Join(directory, FileName)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if _, err := db.Exec(createTable); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to create table: %w", err), db.Close())
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key common.Hash) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(selectValue, key[:]).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *Store) Set(key common.Hash, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.Exec(upsertValue, key[:], value)
	return err
}

// Flush does nothing, since every update is committed individually.
func (s *Store) Flush() error {
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
