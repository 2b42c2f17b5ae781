// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sequencer

import (
	"fmt"
	"runtime"

	"github.com/0xsoniclabs/fold/backend/cache"
	"github.com/ethereum/go-ethereum/log"
)

// Config summarizes the execution parameters of a pipeline.
type Config struct {
	// NumWorkers is the number of goroutines executing steps in parallel.
	NumWorkers int
	// SequentialThreshold is the number of steps below which pipelines
	// are executed sequentially, since parallelism is not worth its
	// overhead for small trees.
	SequentialThreshold int
}

// DefaultConfig uses one worker per CPU.
func DefaultConfig() Config {
	return Config{
		NumWorkers:          runtime.NumCPU(),
		SequentialThreshold: 20,
	}
}

func (c Config) Validate() error {
	if c.NumWorkers < 1 {
		return fmt.Errorf("%w: number of workers must be positive, got %d", ErrInvalidConfig, c.NumWorkers)
	}
	if c.SequentialThreshold < 0 {
		return fmt.Errorf("%w: negative sequential threshold %d", ErrInvalidConfig, c.SequentialThreshold)
	}
	return nil
}

// Option customizes the construction of a pipeline.
type Option func(*options)

type options struct {
	config Config
	logger log.Logger
	cache  any // < a *leafCache[I, T] matching the pipeline's types
}

// WithConfig sets the execution parameters of the pipeline.
func WithConfig(config Config) Option {
	return func(o *options) {
		o.config = config
	}
}

// WithWorkers sets the number of workers, keeping other parameters.
func WithWorkers(numWorkers int) Option {
	return func(o *options) {
		o.config.NumWorkers = numWorkers
	}
}

// WithLogger sets the logger used for reporting the pipeline's progress.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLeafCache enables caching of leaf results in the given store. Leaf
// results are stored under the hash of their encoded input, and are reused
// by pipelines processing the same input. The codecs must match the input
// and result types of the pipeline.
func WithLeafCache[I, T any](store cache.Store, in Codec[I], out Codec[T]) Option {
	return func(o *options) {
		o.cache = &leafCache[I, T]{store: store, in: in, out: out}
	}
}
