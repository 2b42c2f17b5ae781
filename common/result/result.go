// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package result

// Result encapsulates a value along with an error. It is the type delivered
// through futures of asynchronous pipelines, where either the final value or
// the failure terminating the pipeline is reported -- never both.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a Result representing a successful outcome with the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err creates a Result representing a failed outcome with the given error.
// The value of a failed result is always the zero value.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Get returns the value and error contained in the Result. Using this function
// forces the caller to handle potential errors.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Err returns the error of a failed result, nil otherwise.
func (r Result[T]) Err() error {
	return r.err
}
