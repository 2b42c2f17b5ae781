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

import "golang.org/x/exp/constraints"

// Identity is a leaf function using inputs as results.
func Identity[T any](value T) (T, error) {
	return value, nil
}

// Sum is a merge function adding numbers. Overflows wrap around.
func Sum[N constraints.Integer | constraints.Float](a, b N) (N, error) {
	return a + b, nil
}

// Reduce folds the given items sequentially, pairing them in the same shape
// a pipeline over the items does. For associative merge functions the result
// equals any left-to-right fold; for others, Reduce predicts the result of
// a pipeline.
func Reduce[T any](items []T, merge func(T, T) (T, error)) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrNoInputs
	}
	current := items
	for len(current) > 1 {
		next := make([]T, 0, (len(current)+1)/2)
		for i := 0; i+1 < len(current); i += 2 {
			merged, err := merge(current[i], current[i+1])
			if err != nil {
				var zero T
				return zero, err
			}
			next = append(next, merged)
		}
		if len(current)%2 == 1 {
			next = append(next, current[len(current)-1])
		}
		current = next
	}
	return current[0], nil
}
