// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"slices"

	"github.com/0xsoniclabs/fold/common"
	"github.com/0xsoniclabs/fold/sequencer"
	"github.com/0xsoniclabs/fold/state/redaction"
	"github.com/0xsoniclabs/fold/state/witness"
	"github.com/urfave/cli/v2"
)

var (
	entriesFlag = cli.IntFlag{
		Name:  "entries",
		Usage: "number of entries in the original map",
		Value: 1000,
	}
	selectFlag = cli.IntFlag{
		Name:  "select",
		Usage: "number of entries selected into the redacted map",
		Value: 100,
	}
)

var RedactCmd = cli.Command{
	Action: withDiagnostics(doRedact),
	Name:   "redact",
	Usage:  "aggregates a random selection of map entries into a redaction record",
	Flags: append([]cli.Flag{
		&entriesFlag,
		&selectFlag,
		&seedFlag,
		&hashFlag,
	}, pipelineFlags...),
}

func doRedact(context *cli.Context) error {
	hasher, err := getHasher(context)
	if err != nil {
		return err
	}
	numEntries := context.Int(entriesFlag.Name)
	numSelected := context.Int(selectFlag.Name)
	if numSelected <= 0 || numSelected > numEntries {
		return fmt.Errorf("number of selected entries must be in [1,%d], got %d", numEntries, numSelected)
	}

	random := newRandom(context)
	original := witness.NewMerkleMap(hasher)
	for i := range uint64(numEntries) {
		original.Set(common.KeyFromUint64(i), common.ValueFromUint64(random.Uint64()|1))
	}
	picked := random.Perm(numEntries)[:numSelected]
	slices.Sort(picked)

	redacted := witness.NewMerkleMap(hasher)
	keys := make([]common.Key, 0, numSelected)
	entries := make([]common.Hash, 0, numSelected)
	for _, i := range picked {
		key := common.KeyFromUint64(uint64(i))
		value := original.Get(key)
		redacted.Set(key, value)
		keys = append(keys, key)
		entries = append(entries, redaction.Entry(hasher, key, value))
	}

	opts, closeCache, err := leafCacheOptions[redaction.Selection, redaction.Record](context)
	if err != nil {
		return err
	}
	defer closeCache()

	leaf := func(s redaction.Selection) (redaction.Record, error) {
		return s.Verify(hasher)
	}
	merge := func(a, b redaction.Record) (redaction.Record, error) {
		return redaction.Merge(hasher, a, b)
	}
	record, err := runPipeline(context, redaction.Select(original, redacted, keys), leaf, merge, opts...)
	if err != nil {
		return err
	}

	expected, err := sequencer.Reduce(entries, func(a, b common.Hash) (common.Hash, error) {
		return hasher.Hash(a, b), nil
	})
	if err != nil {
		return err
	}
	if err := redaction.Check(record, expected, uint64(numSelected)); err != nil {
		return err
	}

	w := context.App.Writer
	fmt.Fprintf(w, "original root: %v\n", record.Original)
	fmt.Fprintf(w, "redacted root: %v\n", record.Redacted)
	fmt.Fprintf(w, "accumulated:   %v\n", record.Accumulated)
	fmt.Fprintf(w, "count:         %d\n", record.Count)
	return nil
}
