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

// Path is a Merkle path from a leaf to the root. Sibling i is the hash of the
// node next to the path at height i, where height 0 is the leaf level. IsLeft
// records whether the path node at that height is the left child of its
// parent.
//
// Paths are plain data and can be serialized, e.g. to be cached or sent to a
// remote party. Paths are bound to a hasher when being evaluated.
type Path struct {
	Siblings []common.Hash
	IsLeft   []bool
}

// root folds the value along the path.
func (p Path) root(hasher hashing.Hasher, value common.Value) common.Hash {
	cur := common.Hash(value)
	for i, sibling := range p.Siblings {
		if p.isLeft(i) {
			cur = hasher.Hash(cur, sibling)
		} else {
			cur = hasher.Hash(sibling, cur)
		}
	}
	return cur
}

// isLeft reports the direction at the given height. Missing directions are
// treated as right turns, which makes malformed paths fail root checks.
func (p Path) isLeft(height int) bool {
	return height < len(p.IsLeft) && p.IsLeft[height]
}

// Map binds the path to a hasher, producing a map witness. The key of the
// witnessed entry is derived from the directions of the path.
func (p Path) Map(hasher hashing.Hasher) MapWitness {
	return mapWitness{path: p, hasher: hasher}
}

// Tree binds the path to a hasher, producing a tree witness. The index of the
// witnessed leaf is derived from the directions of the path.
func (p Path) Tree(hasher hashing.Hasher) TreeWitness {
	return treeWitness{path: p, hasher: hasher}
}

type mapWitness struct {
	path   Path
	hasher hashing.Hasher
}

func (w mapWitness) ComputeRootAndKey(value common.Value) (common.Hash, common.Key) {
	var key common.Key
	for i := 0; i < len(w.path.Siblings) && i < MapDepth; i++ {
		if !w.path.isLeft(i) {
			setBit(&key, i)
		}
	}
	return w.path.root(w.hasher, value), key
}

type treeWitness struct {
	path   Path
	hasher hashing.Hasher
}

func (w treeWitness) CalculateRoot(value common.Value) common.Hash {
	return w.path.root(w.hasher, value)
}

func (w treeWitness) CalculateIndex() uint64 {
	var index uint64
	for i := 0; i < len(w.path.Siblings) && i < 64; i++ {
		if !w.path.isLeft(i) {
			index |= 1 << i
		}
	}
	return index
}

// emptyHashes computes the hashes of empty subtrees of the given heights.
// Empty leaves are zero.
func emptyHashes(hasher hashing.Hasher, depth int) []common.Hash {
	res := make([]common.Hash, depth+1)
	for i := 1; i <= depth; i++ {
		res[i] = hasher.Hash(res[i-1], res[i-1])
	}
	return res
}
