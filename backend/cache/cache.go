// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package cache provides persistent stores for encoded results, addressed by
// the hash of the input they were computed from. Store implementations are
// provided by sub-packages registering themselves under a variant name.
package cache

import (
	"errors"
	"fmt"
	"sync"

	"github.com/0xsoniclabs/fold/common"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Store is a key/value store for encoded results. Implementations must be
// safe for concurrent use.
type Store interface {
	// Get returns the value stored for the given key. The boolean result
	// is false if no value is present.
	Get(key common.Hash) ([]byte, bool, error)
	// Set stores the given value, replacing any previous value.
	Set(key common.Hash, value []byte) error
	// Flush writes buffered data to the underlying storage.
	Flush() error
	// Close releases all resources held by the store.
	Close() error
}

// Variant is the name of a store implementation.
type Variant string

// Parameters summarizes the parameters of a store instance.
type Parameters struct {
	Directory string // < the directory of on-disk stores
	Capacity  int    // < byte capacity of in-memory stores, 0 for a default
}

// Factory creates a store instance for the given parameters.
type Factory func(Parameters) (Store, error)

var ErrUnknownVariant = errors.New("unknown cache variant")

var (
	registry      = map[Variant]Factory{}
	registryMutex sync.Mutex
)

// Register makes a store implementation available under the given name.
// It is intended to be called from init functions and panics if the name
// is already taken.
func Register(variant Variant, factory Factory) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	if _, found := registry[variant]; found {
		panic(fmt.Sprintf("cache variant %q registered twice", variant))
	}
	registry[variant] = factory
}

// Open creates a store of the given variant.
func Open(variant Variant, params Parameters) (Store, error) {
	registryMutex.Lock()
	factory, found := registry[variant]
	registryMutex.Unlock()
	if !found {
		return nil, fmt.Errorf("%w: %q, supported: %v", ErrUnknownVariant, variant, Variants())
	}
	return factory(params)
}

// Variants returns the names of all registered implementations, sorted.
func Variants() []Variant {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	res := maps.Keys(registry)
	slices.Sort(res)
	return res
}
