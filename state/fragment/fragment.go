// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package fragment implements the algebra of state transition fragments. A
// fragment is a verified claim that a sequence of updates moved an
// authenticated data structure from one boundary state to another. Fragments
// of single updates are created by verifying witnesses; adjacent fragments
// are merged into fragments spanning both.
//
// All operations are pure functions on immutable values and may be used
// concurrently.
package fragment

import "github.com/0xsoniclabs/fold/common"

// Fragment is the common view on map and tree fragments: the boundary states
// at its start and end.
type Fragment interface {
	Initial() common.Hash
	Latest() common.Hash
}

// CheckContinuity verifies that the right fragment starts where the left
// fragment ends.
func CheckContinuity(left, right Fragment) error {
	if left.Latest() != right.Initial() {
		return wrapDiscontinuity("boundary states differ", left.Latest(), right.Initial())
	}
	return nil
}
