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

	"github.com/0xsoniclabs/fold/common"
	"github.com/0xsoniclabs/fold/proof"
	"github.com/0xsoniclabs/fold/proof/commit"
	"github.com/0xsoniclabs/fold/state/fragment"
	"github.com/0xsoniclabs/fold/state/witness"
	"github.com/urfave/cli/v2"
)

var (
	updatesFlag = cli.IntFlag{
		Name:  "updates",
		Usage: "number of map updates to replay",
		Value: 1000,
	}
	keysFlag = cli.Uint64Flag{
		Name:  "keys",
		Usage: "number of distinct keys updated",
		Value: 100,
	}
	leavesFlag = cli.IntFlag{
		Name:  "leaves",
		Usage: "number of tree leaves to replay",
		Value: 1000,
	}
	depthFlag = cli.IntFlag{
		Name:  "depth",
		Usage: "depth of the Merkle tree",
		Value: 16,
	}
	initialFlag = cli.StringFlag{
		Name:  "initial",
		Usage: "hex encoded hash the audit chain starts from",
		Value: "0x00",
	}
)

var ReplayMapCmd = cli.Command{
	Action: withDiagnostics(doReplayMap),
	Name:   "replay-map",
	Usage:  "folds random updates of a sparse Merkle map into a single transition",
	Flags: append([]cli.Flag{
		&updatesFlag,
		&keysFlag,
		&seedFlag,
		&hashFlag,
		&attestFlag,
	}, pipelineFlags...),
}

var ReplayTreeCmd = cli.Command{
	Action: withDiagnostics(doReplayTree),
	Name:   "replay-tree",
	Usage:  "folds the audit chain of appending random values to a Merkle tree",
	Flags: append([]cli.Flag{
		&leavesFlag,
		&depthFlag,
		&initialFlag,
		&seedFlag,
		&hashFlag,
	}, pipelineFlags...),
}

func doReplayMap(context *cli.Context) error {
	hasher, err := getHasher(context)
	if err != nil {
		return err
	}
	numUpdates := context.Int(updatesFlag.Name)
	numKeys := context.Uint64(keysFlag.Name)
	if numUpdates <= 0 || numKeys == 0 {
		return fmt.Errorf("number of updates and keys must be positive")
	}

	random := newRandom(context)
	m := witness.NewMerkleMap(hasher)
	initial := m.Root()
	updates := make([]fragment.MapUpdate, 0, numUpdates)
	for range numUpdates {
		key := common.KeyFromUint64(random.Uint64N(numKeys))
		updates = append(updates, fragment.ApplyMapUpdate(m, key, common.ValueFromUint64(random.Uint64())))
	}

	leaf := func(u fragment.MapUpdate) (fragment.MapFragment, error) {
		return u.Verify(hasher)
	}

	var res fragment.MapFragment
	var attestation *commit.Attestation
	if context.Bool(attestFlag.Name) {
		if context.String(cacheFlag.Name) != "" {
			return fmt.Errorf("attested fragments can not be cached")
		}
		attestor := commit.NewAttestor(func(f fragment.MapFragment) common.Hash {
			return f.Digest(hasher)
		})
		proven, err := runPipeline(context, updates, proof.Leaf(leaf, attestor), proof.Merge(fragment.MergeMap, attestor))
		if err != nil {
			return err
		}
		attestation = proven.Proof.(*commit.Attestation)
		if err := attestor.Check(proven.Statement, attestation); err != nil {
			return err
		}
		res = proven.Statement
	} else {
		opts, closeCache, err := leafCacheOptions[fragment.MapUpdate, fragment.MapFragment](context)
		if err != nil {
			return err
		}
		defer closeCache()
		if res, err = runPipeline(context, updates, leaf, fragment.MergeMap, opts...); err != nil {
			return err
		}
	}

	if res.InitialRoot != initial || res.LatestRoot != m.Root() {
		return fmt.Errorf("folded transition %v -> %v does not match replayed map %v -> %v",
			res.InitialRoot, res.LatestRoot, initial, m.Root())
	}
	w := context.App.Writer
	fmt.Fprintf(w, "initial root: %v\n", res.InitialRoot)
	fmt.Fprintf(w, "latest root:  %v\n", res.LatestRoot)
	fmt.Fprintf(w, "updates:      %d\n", res.Updates)
	if attestation != nil {
		fmt.Fprintf(w, "attestation:  %v\n", attestation.Commitment.Hash())
	}
	return nil
}

func doReplayTree(context *cli.Context) error {
	hasher, err := getHasher(context)
	if err != nil {
		return err
	}
	numLeaves := context.Int(leavesFlag.Name)
	if numLeaves <= 0 {
		return fmt.Errorf("number of leaves must be positive")
	}
	initial, err := common.HashFromHex(context.String(initialFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid initial hash: %w", err)
	}
	tree, err := witness.NewMerkleTree(hasher, context.Int(depthFlag.Name))
	if err != nil {
		return err
	}

	random := newRandom(context)
	for range numLeaves {
		if _, err := tree.Append(common.ValueFromUint64(random.Uint64())); err != nil {
			return err
		}
	}
	leaves, err := fragment.ChainLeaves(tree, initial, 0, uint64(numLeaves))
	if err != nil {
		return err
	}

	opts, closeCache, err := leafCacheOptions[fragment.TreeLeaf, fragment.TreeFragment](context)
	if err != nil {
		return err
	}
	defer closeCache()

	leaf := func(l fragment.TreeLeaf) (fragment.TreeFragment, error) {
		return l.Verify(hasher)
	}
	res, err := runPipeline(context, leaves, leaf, fragment.MergeTree, opts...)
	if err != nil {
		return err
	}
	if want := leaves[len(leaves)-1].LatestHash; res.LatestHash != want {
		return fmt.Errorf("folded audit chain ends at %v, expected %v", res.LatestHash, want)
	}
	w := context.App.Writer
	fmt.Fprintf(w, "tree root:    %v\n", res.Root)
	fmt.Fprintf(w, "initial hash: %v\n", res.InitialHash)
	fmt.Fprintf(w, "latest hash:  %v\n", res.LatestHash)
	fmt.Fprintf(w, "updates:      %d\n", res.Updates)
	return nil
}
