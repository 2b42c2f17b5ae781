// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fragment

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/fold/common"
)

var (
	// ErrWitnessMismatch is reported if a witness does not reproduce the
	// commitment it is claimed to belong to.
	ErrWitnessMismatch = errors.New("witness mismatch")

	// ErrKeyMismatch is reported if the key implied by a map witness differs
	// from the key of the update.
	ErrKeyMismatch = errors.New("key mismatch")

	// ErrIndexMismatch is reported if the index implied by a tree witness
	// differs from the index of the update.
	ErrIndexMismatch = errors.New("index mismatch")

	// ErrChainMismatch is reported if the audit hash chain of a tree fragment
	// does not advance by the proven index and value.
	ErrChainMismatch = errors.New("chain mismatch")

	// ErrDiscontinuity is reported if two fragments to be merged do not share
	// a boundary state.
	ErrDiscontinuity = errors.New("discontinuity")
)

func wrapWitnessMismatch(what string, want, got common.Hash) error {
	return fmt.Errorf("%w: %s, want %v, got %v", ErrWitnessMismatch, what, want, got)
}

func wrapDiscontinuity(what string, left, right common.Hash) error {
	return fmt.Errorf("%w: %s, left ends at %v, right starts at %v", ErrDiscontinuity, what, left, right)
}
