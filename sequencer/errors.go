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
	"errors"
	"fmt"
)

var (
	// ErrNoInputs is reported when building a pipeline without leaf inputs.
	ErrNoInputs = errors.New("no leaf inputs")

	// ErrAlreadyRun is reported when running a pipeline a second time.
	ErrAlreadyRun = errors.New("pipeline already run")

	// ErrAborted is reported if a pipeline's context is cancelled before
	// the final step finished.
	ErrAborted = errors.New("pipeline aborted")

	// ErrInvalidConfig is reported for unusable pipeline configurations.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCodecMismatch is reported if a leaf cache's codecs do not match
	// the types of the pipeline it is attached to.
	ErrCodecMismatch = errors.New("leaf cache codec mismatch")
)

// StepError is the failure of a pipeline caused by a failing step.
type StepError struct {
	Step StepID // < the step whose function failed
	Kind error  // < the innermost error the failure wraps
	Err  error  // < the error reported by the step's function
}

func newStepError(id StepID, err error) *StepError {
	return &StepError{Step: id, Kind: rootCause(err), Err: err}
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// rootCause follows the chain of wrapped errors to its end. For errors
// wrapping multiple errors, the first one is followed.
func rootCause(err error) error {
	for {
		switch e := err.(type) {
		case interface{ Unwrap() error }:
			next := e.Unwrap()
			if next == nil {
				return err
			}
			err = next
		case interface{ Unwrap() []error }:
			next := e.Unwrap()
			if len(next) == 0 {
				return err
			}
			err = next[0]
		default:
			return err
		}
	}
}
