// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package memory provides an in-memory cache store with a byte capacity.
// Once the capacity is exceeded, the oldest entries are evicted.
package memory

import (
	"sync"

	"github.com/0xsoniclabs/fold/backend/cache"
	"github.com/0xsoniclabs/fold/common"
	sysmem "github.com/pbnjay/memory"
)

const Variant cache.Variant = "memory"

func init() {
	cache.Register(Variant, func(params cache.Parameters) (cache.Store, error) {
		return NewStore(params.Capacity), nil
	})
}

// DefaultCapacity returns the capacity used if none is configured, which is
// a 16th of the system's total memory.
func DefaultCapacity() int {
	return int(sysmem.TotalMemory() / 16)
}

// Store is an in-memory implementation of cache.Store.
type Store struct {
	data     map[common.Hash][]byte
	order    []common.Hash
	size     int
	capacity int
	mutex    sync.Mutex
}

// NewStore creates a store holding up to the given number of value bytes.
// Non-positive capacities are replaced by DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity()
	}
	return &Store{
		data:     map[common.Hash][]byte{},
		capacity: capacity,
	}
}

func (s *Store) Get(key common.Hash) ([]byte, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	value, found := s.data[key]
	if !found {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *Store) Set(key common.Hash, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if old, found := s.data[key]; found {
		s.size -= len(old)
	} else {
		s.order = append(s.order, key)
	}
	s.data[key] = append([]byte(nil), value...)
	s.size += len(value)
	for s.size > s.capacity && len(s.order) > 1 {
		oldest := s.order[0]
		s.order = s.order[1:]
		s.size -= len(s.data[oldest])
		delete(s.data, oldest)
	}
	return nil
}

// Size returns the number of value bytes held by the store.
func (s *Store) Size() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.size
}

// Flush does nothing.
func (s *Store) Flush() error {
	return nil
}

// Close does nothing.
func (s *Store) Close() error {
	return nil
}
