// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package witness

import (
	"fmt"
	"testing"

	"github.com/0xsoniclabs/fold/common"
	"github.com/0xsoniclabs/fold/common/hashing"
	"github.com/stretchr/testify/require"
)

func TestMerkleMap_EmptyMapHasRootOfEmptyTree(t *testing.T) {
	hasher := hashing.Keccak{}
	m := NewMerkleMap(hasher)
	require.Equal(t, emptyHashes(hasher, MapDepth)[MapDepth], m.Root())
	require.Equal(t, common.Value{}, m.Get(common.KeyFromUint64(1)))
}

func TestMerkleMap_SetChangesRootAndValue(t *testing.T) {
	require := require.New(t)
	m := NewMerkleMap(hashing.Keccak{})
	empty := m.Root()

	key := common.KeyFromUint64(12)
	m.Set(key, common.ValueFromUint64(1))
	require.Equal(common.ValueFromUint64(1), m.Get(key))
	require.NotEqual(empty, m.Root())

	// Resetting the value to zero restores the empty root.
	m.Set(key, common.Value{})
	require.Equal(empty, m.Root())
}

func TestMerkleMap_RootIsIndependentOfInsertionOrder(t *testing.T) {
	a := NewMerkleMap(hashing.Keccak{})
	b := NewMerkleMap(hashing.Keccak{})
	for i := range uint64(10) {
		a.Set(common.KeyFromUint64(i), common.ValueFromUint64(i+100))
		b.Set(common.KeyFromUint64(9-i), common.ValueFromUint64(109-i))
	}
	require.Equal(t, a.Root(), b.Root())
}

func TestMerkleMap_WitnessReproducesRootAndKey(t *testing.T) {
	for _, variant := range hashing.Variants {
		t.Run(string(variant), func(t *testing.T) {
			hasher, err := hashing.Get(variant)
			require.NoError(t, err)
			m := NewMerkleMap(hasher)
			keys := []common.Key{
				common.KeyFromUint64(0),
				common.KeyFromUint64(1),
				common.KeyFromUint64(1 << 40),
				{0: 0x80},
				{0: 0xff, 31: 0xff},
			}
			for i, key := range keys {
				m.Set(key, common.ValueFromUint64(uint64(i+1)))
			}

			for i, key := range append(keys, common.KeyFromUint64(77)) {
				t.Run(fmt.Sprintf("key=%v", key), func(t *testing.T) {
					require := require.New(t)
					witness := m.Witness(key).Map(hasher)
					root, derived := witness.ComputeRootAndKey(m.Get(key))
					require.Equal(m.Root(), root)
					require.Equal(key, derived)

					// A different value leads to a different root.
					other, _ := witness.ComputeRootAndKey(common.ValueFromUint64(uint64(1000 + i)))
					require.NotEqual(m.Root(), other)
				})
			}
		})
	}
}

func TestMerkleMap_WitnessPredictsRootAfterUpdate(t *testing.T) {
	require := require.New(t)
	m := NewMerkleMap(hashing.Keccak{})
	m.Set(common.KeyFromUint64(3), common.ValueFromUint64(3))
	key := common.KeyFromUint64(5)
	m.Set(key, common.ValueFromUint64(5))

	witness := m.Witness(key).Map(m.Hasher())
	predicted, _ := witness.ComputeRootAndKey(common.ValueFromUint64(6))

	m.Set(key, common.ValueFromUint64(6))
	require.Equal(m.Root(), predicted)
}

func TestPrefixOf_ClearsLowBits(t *testing.T) {
	key := common.Key{}
	for i := range key {
		key[i] = 0xff
	}
	tests := map[int]common.Key{
		0:   key,
		3:   func() common.Key { k := key; k[31] = 0xf8; return k }(),
		8:   func() common.Key { k := key; k[31] = 0; return k }(),
		12:  func() common.Key { k := key; k[31] = 0; k[30] = 0xf0; return k }(),
		256: {},
	}
	for height, want := range tests {
		require.Equal(t, want, prefixOf(key, height), "height %d", height)
	}
}
