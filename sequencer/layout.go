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

// layout arranges n leaf steps into a binary merge tree. Each level pairs
// adjacent steps (i, i+1) of the level below into a merge step. A trailing
// step of an odd-length level is carried forward to the next level unpaired
// and merged once it meets a peer. The single step remaining at the top is
// the final step. The resulting tree has ⌈log2 n⌉ merge levels and 2n-1
// steps, listed such that every step appears after its inputs.
//
// Besides the steps, the ids present on each level are returned, including
// steps carried forward.
func layout[T any](n int) ([]*step[T], [][]StepID) {
	steps := make([]*step[T], 0, 2*n-1)
	current := make([]StepID, 0, n)
	for i := range n {
		steps = append(steps, newStep[T](StepID(i), 0, i))
		steps[i].leaf = i
		current = append(current, StepID(i))
	}

	levels := [][]StepID{current}
	for len(current) > 1 {
		next := make([]StepID, 0, (len(current)+1)/2)
		for i := 0; i+1 < len(current); i += 2 {
			left, right := steps[current[i]], steps[current[i+1]]
			merge := newStep[T](StepID(len(steps)), len(levels), len(next))
			merge.isMerge = true
			merge.inputs = [2]StepID{left.id, right.id}
			merge.pending.Store(2)

			left.parent, left.peer = merge.id, right.id
			right.parent, right.peer = merge.id, left.id

			steps = append(steps, merge)
			next = append(next, merge.id)
		}
		if len(current)%2 == 1 {
			next = append(next, current[len(current)-1])
		}
		levels = append(levels, next)
		current = next
	}
	steps[current[0]].isFinal = true
	return steps, levels
}

func newStep[T any](id StepID, level, position int) *step[T] {
	return &step[T]{
		id:       id,
		level:    level,
		position: position,
		peer:     NoStep,
		parent:   NoStep,
		inputs:   [2]StepID{NoStep, NoStep},
	}
}
