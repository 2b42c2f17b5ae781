// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cache

import (
	"fmt"

	"github.com/0xsoniclabs/fold/common"
	"github.com/golang/snappy"
)

// DefaultMaxValueSize is the default bound on decompressed values.
const DefaultMaxValueSize = 16 << 20

// Compressed is a store compressing values using snappy before handing them
// to an underlying store.
type Compressed struct {
	store   Store
	maxSize int
}

// NewCompressed wraps the given store. Values decompressing to more than
// maxSize bytes are rejected on read.
func NewCompressed(store Store, maxSize int) *Compressed {
	if maxSize <= 0 {
		maxSize = DefaultMaxValueSize
	}
	return &Compressed{store: store, maxSize: maxSize}
}

func (c *Compressed) Get(key common.Hash) ([]byte, bool, error) {
	data, found, err := c.store.Get(key)
	if err != nil || !found {
		return nil, found, err
	}
	size, err := snappy.DecodedLen(data)
	if err != nil {
		return nil, false, fmt.Errorf("corrupted value for %v: %w", key, err)
	}
	if size > c.maxSize {
		return nil, false, fmt.Errorf("value for %v too large: %d > %d", key, size, c.maxSize)
	}
	res, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, false, fmt.Errorf("corrupted value for %v: %w", key, err)
	}
	return res, true, nil
}

func (c *Compressed) Set(key common.Hash, value []byte) error {
	return c.store.Set(key, snappy.Encode(nil, value))
}

func (c *Compressed) Flush() error {
	return c.store.Flush()
}

func (c *Compressed) Close() error {
	return c.store.Close()
}
