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
	"testing"

	"github.com/0xsoniclabs/fold/common"
	"github.com/0xsoniclabs/fold/common/hashing"
	"github.com/0xsoniclabs/fold/proof"
	"github.com/stretchr/testify/require"
)

func digestOf(v uint64) common.Hash {
	return hashing.Default.Hash(common.Uint64Word(v))
}

func TestAttestation_ValidAttestationsVerify(t *testing.T) {
	require := require.New(t)
	attestation, err := Attest(digestOf(1))
	require.NoError(err)
	require.NoError(attestation.Verify())
}

func TestAttestation_ModifiedDigestIsRejected(t *testing.T) {
	require := require.New(t)
	attestation, err := Attest(digestOf(1))
	require.NoError(err)

	attestation.Digest[3]++
	require.Error(attestation.Verify())
}

func TestAttestation_InvalidCommitmentIsRejected(t *testing.T) {
	require := require.New(t)
	attestation, err := Attest(digestOf(1))
	require.NoError(err)

	attestation.Commitment = Commitment{}
	require.ErrorContains(attestation.Verify(), "invalid commitment")
}

func TestAttestor_ProducesVerifiableProofs(t *testing.T) {
	require := require.New(t)
	var attestor proof.Prover[uint64] = NewAttestor(digestOf)

	handle, err := attestor.Prove(12)
	require.NoError(err)
	require.NoError(handle.Verify())
	require.NoError(proof.Proven[uint64]{Statement: 12, Proof: handle}.Verify())
}

func TestAttestor_Check_DetectsStatementMismatch(t *testing.T) {
	require := require.New(t)
	attestor := NewAttestor(digestOf)

	handle, err := attestor.Prove(12)
	require.NoError(err)
	attestation := handle.(*Attestation)

	require.NoError(attestor.Check(12, attestation))
	require.ErrorIs(attestor.Check(13, attestation), proof.ErrProofVerificationFailure)
}

func TestAttestor_Check_DetectsForeignCommitment(t *testing.T) {
	require := require.New(t)
	attestor := NewAttestor(digestOf)

	handle, err := attestor.Prove(12)
	require.NoError(err)
	other, err := attestor.Prove(13)
	require.NoError(err)

	attestation := *handle.(*Attestation)
	attestation.Commitment = other.(*Attestation).Commitment
	err = attestor.Check(12, &attestation)
	require.ErrorIs(err, proof.ErrProofVerificationFailure)
	require.ErrorContains(err, "does not commit to digest")
}

func TestAttestor_CanBeUsedToMergeProvenStatements(t *testing.T) {
	require := require.New(t)
	attestor := NewAttestor(digestOf)

	leaf := proof.Leaf(func(v uint64) (uint64, error) { return v, nil }, attestor)
	merge := proof.Merge(func(a, b uint64) (uint64, error) { return a + b, nil }, attestor)

	a, err := leaf(3)
	require.NoError(err)
	b, err := leaf(5)
	require.NoError(err)

	sum, err := merge(a, b)
	require.NoError(err)
	require.Equal(uint64(8), sum.Statement)
	require.NoError(attestor.Check(8, sum.Proof.(*Attestation)))

	// A corrupted input proof stops the merge.
	a.Proof.(*Attestation).Digest[0]++
	_, err = merge(a, b)
	require.ErrorIs(err, proof.ErrProofVerificationFailure)
}
