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
	"sync/atomic"
)

// StepID identifies a step within a pipeline. Leaf steps are numbered
// 0..N-1 in input order, merge steps follow in the order of their creation.
type StepID int

// NoStep is used where a step reference is absent.
const NoStep StepID = -1

// Status is the execution state of a step. Steps start as Created and end in
// one of the terminal states Finished, Failed, or Cancelled.
type Status int32

const (
	Created Status = iota
	Started
	Finished
	Failed
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case Started:
		return "started"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("unknown(%d)", int32(s))
}

// IsTerminal returns true for states a step never leaves.
func (s Status) IsTerminal() bool {
	return s == Finished || s == Failed || s == Cancelled
}

// StepInfo is a snapshot of the state of a step.
type StepInfo[T any] struct {
	ID       StepID
	Level    int      // < the level the step is created on, 0 for leaves
	Position int      // < the position within the level it is created on
	IsMerge  bool     // < true for merge steps, false for leaf steps
	IsFinal  bool     // < true for the single step producing the pipeline result
	Peer     StepID   // < the step merged with this one, NoStep for the final step
	Parent   StepID   // < the step consuming this step's result, NoStep for the final step
	Inputs   []StepID // < the left and right input of merge steps
	Status   Status
	Result   T     // < the result, if Status is Finished
	Err      error // < the failure, if Status is Failed
}

func (s StepInfo[T]) String() string {
	kind := "leaf"
	if s.IsMerge {
		kind = "merge"
	}
	return fmt.Sprintf("%s step %d (level %d, position %d): %v", kind, s.ID, s.Level, s.Position, s.Status)
}

// step is the unit of work of a pipeline. Its structural fields are fixed at
// build time. The result and the error are written at most once, by the
// worker which claimed the step, before the terminal status is stored.
type step[T any] struct {
	id       StepID
	level    int
	position int
	isMerge  bool
	isFinal  bool
	peer     StepID
	parent   StepID
	inputs   [2]StepID
	leaf     int // < index of the leaf input, for leaf steps

	status  atomic.Int32 // < the Status of this step
	pending atomic.Int32 // < number of inputs not finished yet
	result  T
	err     error
}

func (s *step[T]) getStatus() Status {
	return Status(s.status.Load())
}

// claim transitions the step from Created to Started. Only a single caller
// can succeed in claiming a step.
func (s *step[T]) claim() bool {
	return s.status.CompareAndSwap(int32(Created), int32(Started))
}

// cancel transitions the step from Created to Cancelled.
func (s *step[T]) cancel() bool {
	return s.status.CompareAndSwap(int32(Created), int32(Cancelled))
}

func (s *step[T]) finish(result T) {
	s.result = result
	s.status.Store(int32(Finished))
}

func (s *step[T]) fail(err error) {
	s.err = err
	s.status.Store(int32(Failed))
}
