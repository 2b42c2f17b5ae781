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

// MapFragment is a verified transition of a key/value map from InitialRoot to
// LatestRoot covering a number of updates. Key, OldValue, and NewValue
// describe the update of fragments covering a single update and are zero for
// merged fragments.
type MapFragment struct {
	InitialRoot common.Hash
	LatestRoot  common.Hash
	Key         common.Key
	OldValue    common.Value
	NewValue    common.Value
	Updates     uint64
}

func (f MapFragment) Initial() common.Hash { return f.InitialRoot }
func (f MapFragment) Latest() common.Hash  { return f.LatestRoot }

// Digest summarizes the boundary states and the number of covered updates.
func (f MapFragment) Digest(hasher hashing.Hasher) common.Hash {
	return hasher.Hash(f.InitialRoot, f.LatestRoot, common.Uint64Word(f.Updates))
}

// CreateMapFragment verifies a single update of the entry at key from
// oldValue to newValue. The witness must reproduce the initial root for the
// old value and must witness the given key. The latest root of the resulting
// fragment is the root the witness produces for the new value.
func CreateMapFragment(
	initial common.Hash,
	key common.Key,
	oldValue, newValue common.Value,
	witness witness.MapWitness,
) (MapFragment, error) {
	before, witnessedKey := witness.ComputeRootAndKey(oldValue)
	if before != initial {
		return MapFragment{}, wrapWitnessMismatch("initial root", initial, before)
	}
	if witnessedKey != key {
		return MapFragment{}, fmt.Errorf("%w: want %v, got %v", ErrKeyMismatch, key, witnessedKey)
	}
	after, witnessedKey := witness.ComputeRootAndKey(newValue)
	if witnessedKey != key {
		return MapFragment{}, fmt.Errorf("%w: witness key changed with value, want %v, got %v", ErrKeyMismatch, key, witnessedKey)
	}
	return MapFragment{
		InitialRoot: initial,
		LatestRoot:  after,
		Key:         key,
		OldValue:    oldValue,
		NewValue:    newValue,
		Updates:     1,
	}, nil
}

// MergeMap combines two adjacent map fragments into one spanning both. The
// right fragment has to start at the root the left fragment ends with.
func MergeMap(left, right MapFragment) (MapFragment, error) {
	if err := CheckContinuity(left, right); err != nil {
		return MapFragment{}, err
	}
	return MapFragment{
		InitialRoot: left.InitialRoot,
		LatestRoot:  right.LatestRoot,
		Updates:     left.Updates + right.Updates,
	}, nil
}

// MapUpdate is the serializable input of a single map update. It carries the
// witness as plain path data, to be bound to a hasher when verified.
type MapUpdate struct {
	Initial  common.Hash
	Key      common.Key
	OldValue common.Value
	NewValue common.Value
	Witness  witness.Path
}

// Verify creates the fragment of this update.
func (u MapUpdate) Verify(hasher hashing.Hasher) (MapFragment, error) {
	return CreateMapFragment(u.Initial, u.Key, u.OldValue, u.NewValue, u.Witness.Map(hasher))
}

// ApplyMapUpdate sets key to value in the given map and returns the update
// describing this change, including the witness taken before the change.
func ApplyMapUpdate(m *witness.MerkleMap, key common.Key, value common.Value) MapUpdate {
	update := MapUpdate{
		Initial:  m.Root(),
		Key:      key,
		OldValue: m.Get(key),
		NewValue: value,
		Witness:  m.Witness(key),
	}
	m.Set(key, value)
	return update
}
