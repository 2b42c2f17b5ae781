// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sequencer

import (
	"github.com/0xsoniclabs/fold/backend/cache"
	"github.com/0xsoniclabs/fold/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// Codec converts values to and from their byte representation.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// RLPCodec encodes values using RLP. Only types supported by the rlp package
// can be encoded, which excludes signed integers.
type RLPCodec[V any] struct{}

func (RLPCodec[V]) Encode(value V) ([]byte, error) {
	return rlp.EncodeToBytes(value)
}

func (RLPCodec[V]) Decode(data []byte) (V, error) {
	var res V
	err := rlp.DecodeBytes(data, &res)
	return res, err
}

type leafCache[I, T any] struct {
	store cache.Store
	in    Codec[I]
	out   Codec[T]
}

func (c *leafCache[I, T]) key(input I) (common.Hash, error) {
	data, err := c.in.Encode(input)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(crypto.Keccak256Hash(data)), nil
}

func (c *leafCache[I, T]) get(key common.Hash) (T, bool, error) {
	var res T
	data, found, err := c.store.Get(key)
	if err != nil || !found {
		return res, false, err
	}
	res, err = c.out.Decode(data)
	if err != nil {
		return res, false, err
	}
	return res, true, nil
}

func (c *leafCache[I, T]) set(key common.Hash, result T) error {
	data, err := c.out.Encode(result)
	if err != nil {
		return err
	}
	return c.store.Set(key, data)
}
