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
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/0xsoniclabs/fold/backend/cache"
	_ "github.com/0xsoniclabs/fold/backend/cache/ldb"
	"github.com/0xsoniclabs/fold/backend/cache/memory"
	_ "github.com/0xsoniclabs/fold/backend/cache/sqlite"
	"github.com/0xsoniclabs/fold/common/hashing"
	"github.com/0xsoniclabs/fold/sequencer"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var (
	workersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "number of workers executing pipeline steps in parallel",
		Value: runtime.NumCPU(),
	}
	hashFlag = cli.StringFlag{
		Name:  "hash",
		Usage: fmt.Sprintf("the hash function to use, one of %v", hashing.Variants),
		Value: string(hashing.VariantKeccak),
	}
	seedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed of the generated workload",
		Value: 42,
	}
	cacheFlag = cli.StringFlag{
		Name:  "cache",
		Usage: "the leaf result cache to use (memory, ldb, sqlite), disabled if empty",
		Value: "",
	}
	cacheDirFlag = cli.StringFlag{
		Name:  "cache-dir",
		Usage: "the directory of on-disk leaf result caches",
		Value: "",
	}
	compressFlag = cli.BoolFlag{
		Name:  "compress",
		Usage: "compress cached leaf results using snappy",
	}
	attestFlag = cli.BoolFlag{
		Name:  "attest",
		Usage: "attest all fragments and check attestations before merging",
	}
)

var pipelineFlags = []cli.Flag{
	&workersFlag,
	&cacheFlag,
	&cacheDirFlag,
	&compressFlag,
}

func getHasher(context *cli.Context) (hashing.Hasher, error) {
	return hashing.Get(hashing.Variant(context.String(hashFlag.Name)))
}

func newRandom(context *cli.Context) *rand.Rand {
	return rand.New(rand.NewPCG(context.Uint64(seedFlag.Name), 0))
}

// runPipeline folds the given inputs, cancelling the pipeline on interrupts.
func runPipeline[I, T any](
	context *cli.Context,
	inputs []I,
	leaf func(I) (T, error),
	merge func(T, T) (T, error),
	opts ...sequencer.Option,
) (T, error) {
	ctx, stop := signal.NotifyContext(context.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := sequencer.DefaultConfig()
	config.NumWorkers = context.Int(workersFlag.Name)
	opts = append([]sequencer.Option{sequencer.WithConfig(config)}, opts...)

	pipeline, err := sequencer.Build(inputs, leaf, merge, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	start := time.Now()
	outcome := pipeline.Run(ctx).Await()
	log.Info("Pipeline finished",
		"leaves", len(inputs),
		"levels", len(pipeline.Levels())-1,
		"workers", config.NumWorkers,
		"elapsed", time.Since(start),
		"success", outcome.Err() == nil,
	)
	return outcome.Get()
}

// leafCacheOptions opens the leaf result cache selected by the command line
// flags. The returned function closes the cache.
func leafCacheOptions[I, T any](context *cli.Context) ([]sequencer.Option, func(), error) {
	variant := cache.Variant(context.String(cacheFlag.Name))
	if variant == "" {
		return nil, func() {}, nil
	}
	directory := context.String(cacheDirFlag.Name)
	if directory == "" && variant != memory.Variant {
		return nil, nil, fmt.Errorf("cache %q requires --%s", variant, cacheDirFlag.Name)
	}
	store, err := cache.Open(variant, cache.Parameters{Directory: directory})
	if err != nil {
		return nil, nil, err
	}
	if context.Bool(compressFlag.Name) {
		store = cache.NewCompressed(store, 0)
	}
	log.Debug("Using leaf result cache", "variant", variant, "directory", directory)
	closeStore := func() {
		if err := store.Close(); err != nil {
			log.Warn("Failed to close leaf result cache", "err", err)
		}
	}
	return []sequencer.Option{
		sequencer.WithLeafCache(store, sequencer.RLPCodec[I]{}, sequencer.RLPCodec[T]{}),
	}, closeStore, nil
}
