// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package witness provides the commitment and witness primitives of
// authenticated data structures. Fragment verifiers consume witnesses only
// through the MapWitness and TreeWitness interfaces. The package also provides
// in-memory reference structures, a sparse Merkle map and a fixed-depth
// Merkle tree, able to produce matching witnesses.
package witness

//go:generate mockgen -source witness.go -destination witness_mocks.go -package witness

import "github.com/0xsoniclabs/fold/common"

// MapWitness is an inclusion witness for a single entry of an authenticated
// key/value map.
type MapWitness interface {
	// ComputeRootAndKey computes the commitment of the map if the witnessed
	// entry holds the given value. It also returns the key of the witnessed
	// entry, as it is implied by the shape of the witness.
	ComputeRootAndKey(value common.Value) (common.Hash, common.Key)
}

// TreeWitness is a positional witness for a single leaf of an authenticated
// tree.
type TreeWitness interface {
	// CalculateRoot computes the commitment of the tree if the witnessed leaf
	// holds the given value.
	CalculateRoot(value common.Value) common.Hash
	// CalculateIndex returns the position of the witnessed leaf.
	CalculateIndex() uint64
}
