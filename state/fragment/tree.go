// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fragment

import (
	"fmt"

	"github.com/0xsoniclabs/fold/common"
	"github.com/0xsoniclabs/fold/common/hashing"
	"github.com/0xsoniclabs/fold/state/witness"
)

// TreeFragment is a verified segment of the audit hash chain of a tree with a
// fixed root. The chain advances from InitialHash to LatestHash by the proven
// leaves of the tree. Index and Value describe the leaf of fragments covering
// a single leaf and are zero for merged fragments.
type TreeFragment struct {
	Root        common.Hash
	InitialHash common.Hash
	LatestHash  common.Hash
	Index       uint64
	Value       common.Value
	Updates     uint64
}

func (f TreeFragment) Initial() common.Hash { return f.InitialHash }
func (f TreeFragment) Latest() common.Hash  { return f.LatestHash }

// Digest summarizes the root, the chain segment, and the number of covered
// leaves.
func (f TreeFragment) Digest(hasher hashing.Hasher) common.Hash {
	return hasher.Hash(f.Root, f.InitialHash, f.LatestHash, common.Uint64Word(f.Updates))
}

// Chain advances the audit hash chain by the given leaf.
func Chain(hasher hashing.Hasher, prior common.Hash, index uint64, value common.Value) common.Hash {
	return hasher.Hash(prior, common.Uint64Word(index), common.Hash(value))
}

// CreateTreeFragment verifies that the leaf at index holds value in the tree
// with the given root, and that latestHash is initialHash advanced by this
// leaf.
func CreateTreeFragment(
	hasher hashing.Hasher,
	root, initialHash, latestHash common.Hash,
	index uint64,
	value common.Value,
	witness witness.TreeWitness,
) (TreeFragment, error) {
	if got := witness.CalculateRoot(value); got != root {
		return TreeFragment{}, wrapWitnessMismatch("tree root", root, got)
	}
	if got := witness.CalculateIndex(); got != index {
		return TreeFragment{}, fmt.Errorf("%w: want %d, got %d", ErrIndexMismatch, index, got)
	}
	if want := Chain(hasher, initialHash, index, value); want != latestHash {
		return TreeFragment{}, fmt.Errorf("%w: want %v, got %v", ErrChainMismatch, want, latestHash)
	}
	return TreeFragment{
		Root:        root,
		InitialHash: initialHash,
		LatestHash:  latestHash,
		Index:       index,
		Value:       value,
		Updates:     1,
	}, nil
}

// MergeTree combines two adjacent tree fragments into one spanning both. Both
// fragments have to refer to the same tree and the right fragment has to
// continue the chain where the left fragment ends.
func MergeTree(left, right TreeFragment) (TreeFragment, error) {
	if left.Root != right.Root {
		return TreeFragment{}, wrapDiscontinuity("tree roots differ", left.Root, right.Root)
	}
	if err := CheckContinuity(left, right); err != nil {
		return TreeFragment{}, err
	}
	return TreeFragment{
		Root:        left.Root,
		InitialHash: left.InitialHash,
		LatestHash:  right.LatestHash,
		Updates:     left.Updates + right.Updates,
	}, nil
}

// TreeLeaf is the serializable input of a single tree leaf to be proven.
type TreeLeaf struct {
	Root        common.Hash
	InitialHash common.Hash
	LatestHash  common.Hash
	Index       uint64
	Value       common.Value
	Witness     witness.Path
}

// Verify creates the fragment of this leaf.
func (l TreeLeaf) Verify(hasher hashing.Hasher) (TreeFragment, error) {
	return CreateTreeFragment(hasher, l.Root, l.InitialHash, l.LatestHash, l.Index, l.Value, l.Witness.Tree(hasher))
}

// ChainLeaves produces the inputs proving the leaves [from, to) of the given
// tree, chained starting at initialHash.
func ChainLeaves(tree *witness.MerkleTree, initialHash common.Hash, from, to uint64) ([]TreeLeaf, error) {
	if from > to {
		return nil, fmt.Errorf("invalid leaf range [%d,%d)", from, to)
	}
	root := tree.Root()
	hash := initialHash
	res := make([]TreeLeaf, 0, to-from)
	for index := from; index < to; index++ {
		path, err := tree.Witness(index)
		if err != nil {
			return nil, err
		}
		value := tree.Get(index)
		next := Chain(tree.Hasher(), hash, index, value)
		res = append(res, TreeLeaf{
			Root:        root,
			InitialHash: hash,
			LatestHash:  next,
			Index:       index,
			Value:       value,
			Witness:     path,
		})
		hash = next
	}
	return res, nil
}
