// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package commit

import (
	"fmt"

	"github.com/0xsoniclabs/fold/common"
	"github.com/0xsoniclabs/fold/proof"
)

// Attestor is a proof engine attesting statements by committing to their
// digest and opening the commitment at the positions holding the digest.
type Attestor[T any] struct {
	// Digest computes the digest of a statement to be attested.
	Digest func(T) common.Hash
}

// NewAttestor creates an attestor using the given digest function.
func NewAttestor[T any](digest func(T) common.Hash) Attestor[T] {
	return Attestor[T]{Digest: digest}
}

// Prove produces an attestation for the given statement.
func (a Attestor[T]) Prove(statement T) (proof.Verifiable, error) {
	return Attest(a.Digest(statement))
}

// Check verifies the attestation and confirms that it covers the statement.
func (a Attestor[T]) Check(statement T, attestation *Attestation) error {
	if want := a.Digest(statement); want != attestation.Digest {
		return fmt.Errorf("%w: attestation covers %v, statement digest is %v",
			proof.ErrProofVerificationFailure, attestation.Digest, want)
	}
	values := digestVector(attestation.Digest)
	if want := Commit(values); !attestation.Commitment.Equal(want) {
		return fmt.Errorf("%w: commitment %v does not commit to digest %v",
			proof.ErrProofVerificationFailure, attestation.Commitment.Hash(), attestation.Digest)
	}
	return attestation.Verify()
}

// Attestation is a commitment to a digest together with openings proving
// the digest's position within the committed vector.
type Attestation struct {
	Digest     common.Hash
	Commitment Commitment
	openings   [2]Opening
}

// Attest creates an attestation for the given digest.
func Attest(digest common.Hash) (*Attestation, error) {
	values := digestVector(digest)
	res := &Attestation{
		Digest:     digest,
		Commitment: Commit(values),
	}
	for i := range res.openings {
		opening, err := Open(res.Commitment, values, byte(i))
		if err != nil {
			return nil, fmt.Errorf("failed to open commitment at position %d: %w", i, err)
		}
		res.openings[i] = opening
	}
	return res, nil
}

// Verify checks that the commitment is valid and contains the digest.
func (a *Attestation) Verify() error {
	if !a.Commitment.IsValid() {
		return fmt.Errorf("invalid commitment")
	}
	for i, value := range hashHalves(a.Digest) {
		valid, err := a.openings[i].Verify(a.Commitment, byte(i), value)
		if err != nil {
			return fmt.Errorf("failed to check opening at position %d: %w", i, err)
		}
		if !valid {
			return fmt.Errorf("opening at position %d does not match digest %v", i, a.Digest)
		}
	}
	return nil
}

// digestVector places the halves of a digest at the first two positions of an
// otherwise zero vector.
func digestVector(digest common.Hash) [VectorSize]Value {
	values := [VectorSize]Value{}
	halves := hashHalves(digest)
	copy(values[:], halves[:])
	return values
}
