// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package redaction

import (
	"testing"

	"github.com/0xsoniclabs/fold/common"
	"github.com/0xsoniclabs/fold/common/hashing"
	"github.com/0xsoniclabs/fold/state/fragment"
	"github.com/0xsoniclabs/fold/state/witness"
	"github.com/stretchr/testify/require"
)

// newMaps creates an original map with 10 entries and a redacted map holding
// the entries with the given keys.
func newMaps(hasher hashing.Hasher, selected ...uint64) (*witness.MerkleMap, *witness.MerkleMap) {
	original := witness.NewMerkleMap(hasher)
	for i := range uint64(10) {
		original.Set(common.KeyFromUint64(i), common.ValueFromUint64(100+i))
	}
	redacted := witness.NewMerkleMap(hasher)
	for _, i := range selected {
		redacted.Set(common.KeyFromUint64(i), common.ValueFromUint64(100+i))
	}
	return original, redacted
}

func keys(ids ...uint64) []common.Key {
	res := make([]common.Key, 0, len(ids))
	for _, id := range ids {
		res = append(res, common.KeyFromUint64(id))
	}
	return res
}

func TestCreateRecord_SelectedEntryProducesRecord(t *testing.T) {
	require := require.New(t)
	hasher := hashing.Keccak{}
	original, redacted := newMaps(hasher, 2, 5)

	selection := Select(original, redacted, keys(5))[0]
	record, err := selection.Verify(hasher)
	require.NoError(err)
	require.Equal(Record{
		Original:    original.Root(),
		Redacted:    redacted.Root(),
		Accumulated: Entry(hasher, common.KeyFromUint64(5), common.ValueFromUint64(105)),
		Count:       1,
	}, record)
}

func TestCreateRecord_EntryMissingInRedactedMapIsRejected(t *testing.T) {
	hasher := hashing.Keccak{}
	original, redacted := newMaps(hasher, 2, 5)

	selection := Select(original, redacted, keys(3))[0]
	_, err := selection.Verify(hasher)
	require.ErrorIs(t, err, fragment.ErrWitnessMismatch)
	require.ErrorContains(t, err, "redacted")
}

func TestCreateRecord_AlteredValueIsRejected(t *testing.T) {
	hasher := hashing.Keccak{}
	original, redacted := newMaps(hasher, 2)

	selection := Select(original, redacted, keys(2))[0]
	selection.Value = common.ValueFromUint64(1)
	_, err := selection.Verify(hasher)
	require.ErrorIs(t, err, fragment.ErrWitnessMismatch)
	require.ErrorContains(t, err, "original")
}

func TestCreateRecord_WitnessOfOtherKeyIsRejected(t *testing.T) {
	hasher := hashing.Keccak{}
	original, redacted := newMaps(hasher, 2)

	selection := Select(original, redacted, keys(2))[0]
	selection.Key = common.KeyFromUint64(3)
	_, err := selection.Verify(hasher)
	require.ErrorIs(t, err, fragment.ErrKeyMismatch)
}

func TestMerge_EmptyRecordIsIdentity(t *testing.T) {
	require := require.New(t)
	hasher := hashing.Keccak{}
	original, redacted := newMaps(hasher, 4)

	record, err := Select(original, redacted, keys(4))[0].Verify(hasher)
	require.NoError(err)
	empty := CreateEmpty(original.Root())

	merged, err := Merge(hasher, empty, record)
	require.NoError(err)
	require.Equal(record, merged)

	merged, err = Merge(hasher, record, empty)
	require.NoError(err)
	require.Equal(record, merged)

	merged, err = Merge(hasher, empty, empty)
	require.NoError(err)
	require.Equal(empty, merged)
}

func TestMerge_EmptyRecordOfOtherOriginalIsRejected(t *testing.T) {
	hasher := hashing.Keccak{}
	original, redacted := newMaps(hasher, 4)
	record, err := Select(original, redacted, keys(4))[0].Verify(hasher)
	require.NoError(t, err)

	_, err = Merge(hasher, CreateEmpty(common.Hash{1}), record)
	require.ErrorIs(t, err, ErrAnchorMismatch)
}

func TestMerge_RecordsOfDifferentRedactionsAreRejected(t *testing.T) {
	hasher := hashing.Keccak{}
	original, redactedA := newMaps(hasher, 1)
	_, redactedB := newMaps(hasher, 1, 2)

	a, err := Select(original, redactedA, keys(1))[0].Verify(hasher)
	require.NoError(t, err)
	b, err := Select(original, redactedB, keys(2))[0].Verify(hasher)
	require.NoError(t, err)

	_, err = Merge(hasher, a, b)
	require.ErrorIs(t, err, ErrAnchorMismatch)
}

func TestMerge_AccumulatesInOrderAndCountsEntries(t *testing.T) {
	require := require.New(t)
	hasher := hashing.Keccak{}
	original, redacted := newMaps(hasher, 1, 3, 7)

	records := make([]Record, 0, 3)
	for _, selection := range Select(original, redacted, keys(1, 3, 7)) {
		record, err := selection.Verify(hasher)
		require.NoError(err)
		records = append(records, record)
	}
	entry := func(i uint64) common.Hash {
		return Entry(hasher, common.KeyFromUint64(i), common.ValueFromUint64(100+i))
	}

	// ((1,3),7)
	left, err := Merge(hasher, records[0], records[1])
	require.NoError(err)
	leftFirst, err := Merge(hasher, left, records[2])
	require.NoError(err)
	require.Equal(hasher.Hash(hasher.Hash(entry(1), entry(3)), entry(7)), leftFirst.Accumulated)
	require.Equal(uint64(3), leftFirst.Count)
	require.NoError(Check(leftFirst, hasher.Hash(hasher.Hash(entry(1), entry(3)), entry(7)), 3))

	// (1,(3,7)) covers the same entries, but accumulates differently.
	right, err := Merge(hasher, records[1], records[2])
	require.NoError(err)
	rightFirst, err := Merge(hasher, records[0], right)
	require.NoError(err)
	require.Equal(hasher.Hash(entry(1), hasher.Hash(entry(3), entry(7))), rightFirst.Accumulated)
	require.Equal(uint64(3), rightFirst.Count)
	require.NotEqual(leftFirst.Accumulated, rightFirst.Accumulated)

	// Swapping the operands changes the result as well.
	swapped, err := Merge(hasher, records[1], records[0])
	require.NoError(err)
	require.NotEqual(left.Accumulated, swapped.Accumulated)
}

func TestCheck_DetectsDeviatingSelections(t *testing.T) {
	record := Record{Accumulated: common.Hash{1}, Count: 2}
	require.NoError(t, Check(record, common.Hash{1}, 2))
	require.ErrorIs(t, Check(record, common.Hash{1}, 3), ErrSelectionMismatch)
	require.ErrorIs(t, Check(record, common.Hash{2}, 2), ErrSelectionMismatch)
}
