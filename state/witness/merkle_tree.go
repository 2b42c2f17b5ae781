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
	"errors"
	"fmt"

	"github.com/0xsoniclabs/fold/common"
	"github.com/0xsoniclabs/fold/common/hashing"
)

// MaxTreeDepth is the maximum depth of a MerkleTree.
const MaxTreeDepth = 63

var (
	ErrInvalidDepth     = errors.New("invalid tree depth")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrCapacityExceeded = errors.New("tree capacity exceeded")
)

// MerkleTree is an in-memory binary Merkle tree of fixed depth holding
// 2^depth leaves. Leaves hold their values directly, unset leaves are zero.
// Values are typically appended, but any leaf may be updated.
//
// MerkleTree is not thread safe.
type MerkleTree struct {
	hasher hashing.Hasher
	depth  int
	size   uint64 // < one past the highest index set so far
	empty  []common.Hash
	nodes  map[treeNodeId]common.Hash
}

type treeNodeId struct {
	height uint8
	index  uint64
}

// NewMerkleTree creates an empty tree of the given depth.
func NewMerkleTree(hasher hashing.Hasher, depth int) (*MerkleTree, error) {
	if depth < 1 || depth > MaxTreeDepth {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidDepth, depth, MaxTreeDepth)
	}
	return &MerkleTree{
		hasher: hasher,
		depth:  depth,
		empty:  emptyHashes(hasher, depth),
		nodes:  map[treeNodeId]common.Hash{},
	}, nil
}

// Capacity returns the number of leaves of the tree.
func (t *MerkleTree) Capacity() uint64 {
	return 1 << t.depth
}

// Size returns one past the highest index set so far. It is the index used
// by the next Append.
func (t *MerkleTree) Size() uint64 {
	return t.size
}

// Get returns the value of the leaf at the given index.
func (t *MerkleTree) Get(index uint64) common.Value {
	return common.Value(t.node(0, index))
}

// Set updates the leaf at the given index.
func (t *MerkleTree) Set(index uint64, value common.Value) error {
	if index >= t.Capacity() {
		return fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, index, t.Capacity())
	}
	cur := common.Hash(value)
	t.nodes[treeNodeId{0, index}] = cur
	for height := 0; height < t.depth; height++ {
		pos := index >> height
		sibling := t.node(height, pos^1)
		if pos&1 == 0 {
			cur = t.hasher.Hash(cur, sibling)
		} else {
			cur = t.hasher.Hash(sibling, cur)
		}
		t.nodes[treeNodeId{uint8(height + 1), pos >> 1}] = cur
	}
	t.size = max(t.size, index+1)
	return nil
}

// Append sets the leaf after the highest index set so far and returns its
// index.
func (t *MerkleTree) Append(value common.Value) (uint64, error) {
	index := t.size
	if index >= t.Capacity() {
		return 0, fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, t.Capacity())
	}
	return index, t.Set(index, value)
}

// Root returns the commitment to the current content of the tree.
func (t *MerkleTree) Root() common.Hash {
	return t.node(t.depth, 0)
}

// Witness produces the positional path of the leaf at the given index.
func (t *MerkleTree) Witness(index uint64) (Path, error) {
	if index >= t.Capacity() {
		return Path{}, fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, index, t.Capacity())
	}
	path := Path{
		Siblings: make([]common.Hash, t.depth),
		IsLeft:   make([]bool, t.depth),
	}
	for height := 0; height < t.depth; height++ {
		pos := index >> height
		path.Siblings[height] = t.node(height, pos^1)
		path.IsLeft[height] = pos&1 == 0
	}
	return path, nil
}

// Hasher returns the hasher used by this tree.
func (t *MerkleTree) Hasher() hashing.Hasher {
	return t.hasher
}

func (t *MerkleTree) node(height int, index uint64) common.Hash {
	if hash, found := t.nodes[treeNodeId{uint8(height), index}]; found {
		return hash
	}
	return t.empty[height]
}
