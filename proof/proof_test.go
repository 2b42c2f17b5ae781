// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package proof

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sum(a, b int) (int, error) {
	return a + b, nil
}

func TestProven_Verify_MissingProofFails(t *testing.T) {
	err := Proven[int]{Statement: 1}.Verify()
	require.ErrorIs(t, err, ErrProofVerificationFailure)
}

func TestProven_Verify_ForwardsFailuresOfProof(t *testing.T) {
	ctrl := gomock.NewController(t)
	proof := NewMockVerifiable(ctrl)
	issue := fmt.Errorf("injected")
	proof.EXPECT().Verify().Return(issue)

	err := Proven[int]{Statement: 1, Proof: proof}.Verify()
	require.ErrorIs(t, err, ErrProofVerificationFailure)
	require.ErrorIs(t, err, issue)
}

func TestMerge_VerifiesBothInputsAndProvesResult(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	left := NewMockVerifiable(ctrl)
	right := NewMockVerifiable(ctrl)
	merged := NewMockVerifiable(ctrl)
	prover := NewMockProver[int](ctrl)

	gomock.InOrder(
		left.EXPECT().Verify().Return(nil),
		right.EXPECT().Verify().Return(nil),
		prover.EXPECT().Prove(5).Return(merged, nil),
	)

	res, err := Merge(sum, prover)(Proven[int]{2, left}, Proven[int]{3, right})
	require.NoError(err)
	require.Equal(5, res.Statement)
	require.Equal(merged, res.Proof)
}

func TestMerge_InvalidInputProofAbortsMerge(t *testing.T) {
	for _, side := range []string{"left", "right"} {
		t.Run(side, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			valid := NewMockVerifiable(ctrl)
			invalid := NewMockVerifiable(ctrl)
			prover := NewMockProver[int](ctrl)

			invalid.EXPECT().Verify().Return(fmt.Errorf("bad proof"))
			if side == "right" {
				valid.EXPECT().Verify().Return(nil)
			}

			merge := func(a, b int) (int, error) {
				t.Fatalf("merge must not be called")
				return 0, nil
			}

			left, right := Proven[int]{1, valid}, Proven[int]{2, invalid}
			if side == "left" {
				left, right = Proven[int]{1, invalid}, Proven[int]{2, valid}
			}
			_, err := Merge(merge, prover)(left, right)
			require.ErrorIs(t, err, ErrProofVerificationFailure)
			require.ErrorContains(t, err, side+" input")
		})
	}
}

func TestMerge_MergeFailuresAreForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	proof := NewMockVerifiable(ctrl)
	proof.EXPECT().Verify().Return(nil).Times(2)
	prover := NewMockProver[int](ctrl)

	issue := fmt.Errorf("injected")
	merge := func(a, b int) (int, error) { return 0, issue }
	_, err := Merge(merge, prover)(Proven[int]{1, proof}, Proven[int]{2, proof})
	require.ErrorIs(t, err, issue)
	require.NotErrorIs(t, err, ErrProofVerificationFailure)
}

func TestLeaf_ProvesCreatedStatements(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	proof := NewMockVerifiable(ctrl)
	prover := NewMockProver[string](ctrl)
	prover.EXPECT().Prove("7").Return(proof, nil)

	leaf := Leaf(func(i int) (string, error) { return fmt.Sprint(i), nil }, prover)
	res, err := leaf(7)
	require.NoError(err)
	require.Equal("7", res.Statement)
	require.Equal(proof, res.Proof)
}

func TestLeaf_ProverFailuresAreReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	prover := NewMockProver[int](ctrl)
	issue := fmt.Errorf("injected")
	prover.EXPECT().Prove(1).Return(nil, issue)

	leaf := Leaf(func(i int) (int, error) { return i, nil }, prover)
	_, err := leaf(1)
	require.ErrorIs(t, err, issue)
}
