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
	"github.com/0xsoniclabs/fold/common"
	"github.com/0xsoniclabs/fold/common/hashing"
)

// MapDepth is the depth of the sparse Merkle tree backing a MerkleMap. Every
// bit of a key selects one branch, the least significant bit being closest to
// the leaves.
const MapDepth = 8 * common.HashSize

// MerkleMap is an in-memory authenticated key/value map. It is implemented as
// a sparse Merkle tree of depth MapDepth in which the leaf of a key holds its
// value. Absent entries hold the zero value.
//
// Only non-empty nodes are stored; hashes of nodes are cached and updated
// along the path of every modified key. MerkleMap is not thread safe.
type MerkleMap struct {
	hasher hashing.Hasher
	empty  []common.Hash
	nodes  map[mapNodeId]common.Hash
}

// mapNodeId identifies a node by its height and the common prefix of all keys
// in its subtree. Bits below the height are zero.
type mapNodeId struct {
	height uint16
	prefix common.Key
}

// NewMerkleMap creates an empty map using the given hasher for inner nodes.
func NewMerkleMap(hasher hashing.Hasher) *MerkleMap {
	return &MerkleMap{
		hasher: hasher,
		empty:  emptyHashes(hasher, MapDepth),
		nodes:  map[mapNodeId]common.Hash{},
	}
}

// Get returns the value stored for the given key, zero if absent.
func (m *MerkleMap) Get(key common.Key) common.Value {
	return common.Value(m.node(0, key))
}

// Set updates the value of the given key and refreshes all hashes along its
// path.
func (m *MerkleMap) Set(key common.Key, value common.Value) {
	cur := common.Hash(value)
	m.nodes[mapNodeId{0, key}] = cur
	for height := 0; height < MapDepth; height++ {
		sibling := m.node(height, flipBit(prefixOf(key, height), height))
		if getBit(key, height) {
			cur = m.hasher.Hash(sibling, cur)
		} else {
			cur = m.hasher.Hash(cur, sibling)
		}
		m.nodes[mapNodeId{uint16(height + 1), prefixOf(key, height+1)}] = cur
	}
}

// Root returns the commitment to the current content of the map.
func (m *MerkleMap) Root() common.Hash {
	return m.node(MapDepth, common.Key{})
}

// Witness produces the inclusion path of the given key. Bound to this map's
// hasher, the path reproduces the current root for the current value.
func (m *MerkleMap) Witness(key common.Key) Path {
	path := Path{
		Siblings: make([]common.Hash, MapDepth),
		IsLeft:   make([]bool, MapDepth),
	}
	for height := 0; height < MapDepth; height++ {
		path.Siblings[height] = m.node(height, flipBit(prefixOf(key, height), height))
		path.IsLeft[height] = !getBit(key, height)
	}
	return path
}

// Hasher returns the hasher used by this map.
func (m *MerkleMap) Hasher() hashing.Hasher {
	return m.hasher
}

func (m *MerkleMap) node(height int, prefix common.Key) common.Hash {
	if hash, found := m.nodes[mapNodeId{uint16(height), prefix}]; found {
		return hash
	}
	return m.empty[height]
}

func getBit(key common.Key, i int) bool {
	return key[common.HashSize-1-i/8]&(1<<(i%8)) != 0
}

func setBit(key *common.Key, i int) {
	key[common.HashSize-1-i/8] |= 1 << (i % 8)
}

func flipBit(key common.Key, i int) common.Key {
	key[common.HashSize-1-i/8] ^= 1 << (i % 8)
	return key
}

// prefixOf clears the lowest height bits of the key.
func prefixOf(key common.Key, height int) common.Key {
	for i := 0; i < height; i++ {
		if i%8 == 0 && height-i >= 8 {
			key[common.HashSize-1-i/8] = 0
			i += 7
			continue
		}
		key[common.HashSize-1-i/8] &^= 1 << (i % 8)
	}
	return key
}
