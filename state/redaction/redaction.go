// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package redaction aggregates proofs that a redacted map holds a selection
// of the entries of an original map. Each selected entry is proven to be
// present in both maps, and the proofs are merged into a record summarizing
// the selection by an accumulator hash and a count. Comparing the final record
// with an independently computed expectation shows that exactly the expected
// entries, and no others, were selected, without revealing the rest of the
// original map.
package redaction

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/fold/common"
	"github.com/0xsoniclabs/fold/common/hashing"
	"github.com/0xsoniclabs/fold/state/fragment"
	"github.com/0xsoniclabs/fold/state/witness"
)

var (
	// ErrAnchorMismatch is reported when merging records of different pairs
	// of original and redacted maps.
	ErrAnchorMismatch = errors.New("anchor mismatch")

	// ErrSelectionMismatch is reported if a record does not summarize the
	// expected selection.
	ErrSelectionMismatch = errors.New("selection mismatch")
)

// Record summarizes a selection of entries present in both the Original and
// the Redacted map. The empty record, holding no entries, has a zero Redacted
// commitment and accumulator.
type Record struct {
	Original    common.Hash
	Redacted    common.Hash
	Accumulated common.Hash
	Count       uint64
}

// IsEmpty reports whether the record covers no entries.
func (r Record) IsEmpty() bool {
	return r.Count == 0
}

// Digest summarizes all fields of the record.
func (r Record) Digest(hasher hashing.Hasher) common.Hash {
	return hasher.Hash(r.Original, r.Redacted, r.Accumulated, common.Uint64Word(r.Count))
}

// Element is a single selected entry with its witnesses in both maps.
type Element struct {
	Key             common.Key
	Value           common.Value
	Original        common.Hash
	Redacted        common.Hash
	OriginalWitness witness.MapWitness
	RedactedWitness witness.MapWitness
}

// Entry hashes a single key/value pair into the accumulator domain.
func Entry(hasher hashing.Hasher, key common.Key, value common.Value) common.Hash {
	return hasher.Hash(common.Hash(key), common.Hash(value))
}

// CreateRecord verifies that the element's entry is present in both maps and
// creates a record covering this entry only.
func CreateRecord(hasher hashing.Hasher, element Element) (Record, error) {
	if err := verifyEntry("original", element.Original, element.Key, element.Value, element.OriginalWitness); err != nil {
		return Record{}, err
	}
	if err := verifyEntry("redacted", element.Redacted, element.Key, element.Value, element.RedactedWitness); err != nil {
		return Record{}, err
	}
	return Record{
		Original:    element.Original,
		Redacted:    element.Redacted,
		Accumulated: Entry(hasher, element.Key, element.Value),
		Count:       1,
	}, nil
}

func verifyEntry(which string, root common.Hash, key common.Key, value common.Value, w witness.MapWitness) error {
	got, witnessedKey := w.ComputeRootAndKey(value)
	if got != root {
		return fmt.Errorf("%w: %s root, want %v, got %v", fragment.ErrWitnessMismatch, which, root, got)
	}
	if witnessedKey != key {
		return fmt.Errorf("%w: %s map, want %v, got %v", fragment.ErrKeyMismatch, which, key, witnessedKey)
	}
	return nil
}

// CreateEmpty creates the record covering no entries of the given original
// map. It is the identity of Merge.
func CreateEmpty(original common.Hash) Record {
	return Record{Original: original}
}

// Merge combines the records of two consecutive selections. Both records have
// to refer to the same original and redacted maps, where empty records are
// compatible with any redacted map. The accumulator of the result hashes both
// accumulators in order, so merging is not commutative.
func Merge(hasher hashing.Hasher, left, right Record) (Record, error) {
	if left.Original != right.Original {
		return Record{}, fmt.Errorf("%w: original maps differ, %v vs %v", ErrAnchorMismatch, left.Original, right.Original)
	}
	if left.IsEmpty() {
		return right, nil
	}
	if right.IsEmpty() {
		return left, nil
	}
	if left.Redacted != right.Redacted {
		return Record{}, fmt.Errorf("%w: redacted maps differ, %v vs %v", ErrAnchorMismatch, left.Redacted, right.Redacted)
	}
	return Record{
		Original:    left.Original,
		Redacted:    left.Redacted,
		Accumulated: hasher.Hash(left.Accumulated, right.Accumulated),
		Count:       left.Count + right.Count,
	}, nil
}

// Check verifies that the record summarizes a selection with the given
// accumulator and size.
func Check(record Record, accumulated common.Hash, count uint64) error {
	if record.Count != count {
		return fmt.Errorf("%w: want %d entries, got %d", ErrSelectionMismatch, count, record.Count)
	}
	if record.Accumulated != accumulated {
		return fmt.Errorf("%w: want accumulator %v, got %v", ErrSelectionMismatch, accumulated, record.Accumulated)
	}
	return nil
}

// Selection is the serializable input proving a single selected entry. The
// witnesses are kept as plain paths, to be bound to a hasher when verified.
type Selection struct {
	Key             common.Key
	Value           common.Value
	Original        common.Hash
	Redacted        common.Hash
	OriginalWitness witness.Path
	RedactedWitness witness.Path
}

// Verify creates the record of this selection.
func (s Selection) Verify(hasher hashing.Hasher) (Record, error) {
	return CreateRecord(hasher, Element{
		Key:             s.Key,
		Value:           s.Value,
		Original:        s.Original,
		Redacted:        s.Redacted,
		OriginalWitness: s.OriginalWitness.Map(hasher),
		RedactedWitness: s.RedactedWitness.Map(hasher),
	})
}

// Select produces the selections of the given keys, which need to be present
// with identical values in both maps.
func Select(original, redacted *witness.MerkleMap, keys []common.Key) []Selection {
	res := make([]Selection, 0, len(keys))
	for _, key := range keys {
		res = append(res, Selection{
			Key:             key,
			Value:           original.Get(key),
			Original:        original.Root(),
			Redacted:        redacted.Root(),
			OriginalWitness: original.Witness(key),
			RedactedWitness: redacted.Witness(key),
		})
	}
	return res
}
