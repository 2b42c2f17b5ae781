// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package sequencer evaluates a sequence of leaf inputs bottom-up along a
// balanced binary merge tree. Leaf results are computed by a leaf function
// and combined pairwise by a merge function, which is expected to be
// associative. Any failing step aborts the whole pipeline, such that either
// the result of the final step or a failure is produced, never a partial
// result.
package sequencer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/0xsoniclabs/fold/common/future"
	"github.com/0xsoniclabs/fold/common/result"
	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/sync/errgroup"
)

// Pipeline is a merge tree of steps over a list of leaf inputs. A pipeline
// owns its steps exclusively and can be run once.
type Pipeline[I, T any] struct {
	inputs []I
	leaf   func(I) (T, error)
	merge  func(T, T) (T, error)

	steps  []*step[T]
	levels [][]StepID

	config Config
	logger log.Logger
	cache  *leafCache[I, T]

	started atomic.Bool
}

// Build creates a pipeline computing the leaf function for each input and
// merging the results pairwise using the merge function.
func Build[I, T any](
	inputs []I,
	leaf func(I) (T, error),
	merge func(T, T) (T, error),
	opts ...Option,
) (*Pipeline[I, T], error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	o := options{
		config: DefaultConfig(),
		logger: log.Root(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	var lc *leafCache[I, T]
	if o.cache != nil {
		var ok bool
		if lc, ok = o.cache.(*leafCache[I, T]); !ok {
			return nil, fmt.Errorf("%w: got %T", ErrCodecMismatch, o.cache)
		}
	}

	steps, levels := layout[T](len(inputs))
	return &Pipeline[I, T]{
		inputs: slices.Clone(inputs),
		leaf:   leaf,
		merge:  merge,
		steps:  steps,
		levels: levels,
		config: o.config,
		logger: o.logger,
		cache:  lc,
	}, nil
}

// Run starts the execution of the pipeline. The resulting future is resolved
// with the result of the final step, or with the failure aborting the
// pipeline. Failures caused by a step are reported as *StepError. Small
// pipelines are executed synchronously.
func (p *Pipeline[I, T]) Run(ctx context.Context) future.Future[result.Result[T]] {
	if !p.started.CompareAndSwap(false, true) {
		return future.Immediate(result.Err[T](ErrAlreadyRun))
	}
	start := time.Now()
	if len(p.steps) < p.config.SequentialThreshold || p.config.NumWorkers == 1 {
		return future.Immediate(p.complete(p.runSequential(ctx), start))
	}
	promise, res := future.Create[result.Result[T]]()
	go func() {
		promise.Fulfill(p.complete(p.runParallel(ctx), start))
	}()
	return res
}

func (p *Pipeline[I, T]) runSequential(ctx context.Context) error {
	next := atomic.Int32{}
	return p.work(ctx, &next)
}

func (p *Pipeline[I, T]) runParallel(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)
	next := atomic.Int32{}
	for range min(p.config.NumWorkers, len(p.inputs)) {
		group.Go(func() error {
			return p.work(ctx, &next)
		})
	}
	return group.Wait()
}

// work processes leaves until all of them have been claimed by some worker.
// After each leaf, the merge steps becoming ready as a consequence are
// processed by the same worker.
func (p *Pipeline[I, T]) work(ctx context.Context, next *atomic.Int32) error {
	for {
		i := int(next.Add(1) - 1)
		if i >= len(p.inputs) {
			return nil
		}
		s := p.steps[i]
		for s != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
			var err error
			if s, err = p.process(s); err != nil {
				return err
			}
		}
	}
}

// process executes the given step and returns its parent if it became ready
// to run as a result.
func (p *Pipeline[I, T]) process(s *step[T]) (*step[T], error) {
	if !s.claim() {
		return nil, nil // < cancelled
	}
	res, err := p.execute(s)
	if err != nil {
		s.fail(err)
		cancelled := p.cancelPending()
		p.logger.Warn("Step failed", "step", s.id, "merge", s.isMerge, "cancelled", cancelled, "err", err)
		return nil, newStepError(s.id, err)
	}
	s.finish(res)
	if s.parent == NoStep {
		return nil, nil
	}
	parent := p.steps[s.parent]
	if parent.pending.Add(-1) != 0 {
		return nil, nil // < peer not finished yet
	}
	return parent, nil
}

func (p *Pipeline[I, T]) execute(s *step[T]) (T, error) {
	if !s.isMerge {
		return p.runLeaf(p.inputs[s.leaf])
	}
	left, right := p.steps[s.inputs[0]], p.steps[s.inputs[1]]
	return p.merge(left.result, right.result)
}

func (p *Pipeline[I, T]) runLeaf(input I) (T, error) {
	if p.cache == nil {
		return p.leaf(input)
	}
	key, err := p.cache.key(input)
	if err != nil {
		p.logger.Warn("Failed to encode leaf input, skipping cache", "err", err)
		return p.leaf(input)
	}
	cached, found, err := p.cache.get(key)
	if err != nil {
		p.logger.Warn("Failed to read cached leaf result", "key", key, "err", err)
	} else if found {
		p.logger.Trace("Reusing cached leaf result", "key", key)
		return cached, nil
	}
	res, err := p.leaf(input)
	if err != nil {
		return res, err
	}
	if err := p.cache.set(key, res); err != nil {
		p.logger.Warn("Failed to cache leaf result", "key", key, "err", err)
	}
	return res, nil
}

// cancelPending cancels all steps not started yet and returns their number.
func (p *Pipeline[I, T]) cancelPending() int {
	count := 0
	for _, s := range p.steps {
		if s.cancel() {
			count++
		}
	}
	return count
}

func (p *Pipeline[I, T]) complete(err error, start time.Time) result.Result[T] {
	if p.cache != nil {
		if err := p.cache.store.Flush(); err != nil {
			p.logger.Warn("Failed to flush leaf cache", "err", err)
		}
	}
	final := p.steps[len(p.steps)-1]
	if err == nil && final.getStatus() != Finished {
		err = fmt.Errorf("final step %d not finished: %v", final.id, final.getStatus())
	}
	if err != nil {
		var stepErr *StepError
		if !errors.As(err, &stepErr) {
			cancelled := p.cancelPending()
			p.logger.Warn("Pipeline aborted", "cancelled", cancelled, "err", err)
			err = fmt.Errorf("%w: %w", ErrAborted, err)
		}
		return result.Err[T](err)
	}
	p.logger.Debug("Pipeline completed", "leaves", len(p.inputs), "steps", len(p.steps), "elapsed", time.Since(start))
	return result.Ok(final.result)
}

// Status returns a snapshot of all steps, indexed by their id.
func (p *Pipeline[I, T]) Status() []StepInfo[T] {
	res := make([]StepInfo[T], len(p.steps))
	for i, s := range p.steps {
		res[i] = s.info()
	}
	return res
}

// Find returns a snapshot of the step with the given id.
func (p *Pipeline[I, T]) Find(id StepID) (StepInfo[T], bool) {
	if id < 0 || int(id) >= len(p.steps) {
		return StepInfo[T]{}, false
	}
	return p.steps[id].info(), true
}

// Levels lists the ids of the steps on each level of the tree, starting with
// the leaves. Steps carried forward to a level are included.
func (p *Pipeline[I, T]) Levels() [][]StepID {
	res := make([][]StepID, len(p.levels))
	for i, level := range p.levels {
		res[i] = slices.Clone(level)
	}
	return res
}

// Final returns the id of the step producing the pipeline's result.
func (p *Pipeline[I, T]) Final() StepID {
	return StepID(len(p.steps) - 1)
}

func (s *step[T]) info() StepInfo[T] {
	status := s.getStatus()
	res := StepInfo[T]{
		ID:       s.id,
		Level:    s.level,
		Position: s.position,
		IsMerge:  s.isMerge,
		IsFinal:  s.isFinal,
		Peer:     s.peer,
		Parent:   s.parent,
		Status:   status,
	}
	if s.isMerge {
		res.Inputs = []StepID{s.inputs[0], s.inputs[1]}
	}
	switch status {
	case Finished:
		res.Result = s.result
	case Failed:
		res.Err = s.err
	}
	return res
}
