// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package proof defines how externally produced proofs are consumed. Proofs
// are opaque handles implementing Verifiable, created by a Prover for a
// statement. Statements and their proofs travel together as Proven values.
package proof

//go:generate mockgen -source proof.go -destination proof_mocks.go -package proof

import (
	"errors"
	"fmt"
)

// ErrProofVerificationFailure is reported if a proof does not verify.
var ErrProofVerificationFailure = errors.New("proof verification failure")

// Verifiable is a proof handle produced by an external proof engine.
type Verifiable interface {
	// Verify checks the proof, returning an error if it does not hold.
	Verify() error
}

// Prover produces proofs for statements of type T.
type Prover[T any] interface {
	Prove(statement T) (Verifiable, error)
}

// Proven is a statement accompanied by its proof.
type Proven[T any] struct {
	Statement T
	Proof     Verifiable
}

// Verify checks the proof of the statement. Missing proofs fail verification.
func (p Proven[T]) Verify() error {
	if p.Proof == nil {
		return fmt.Errorf("%w: missing proof", ErrProofVerificationFailure)
	}
	if err := p.Proof.Verify(); err != nil {
		return fmt.Errorf("%w: %w", ErrProofVerificationFailure, err)
	}
	return nil
}

// Leaf lifts a function creating statements into one creating proven
// statements using the given prover.
func Leaf[I, T any](create func(I) (T, error), prover Prover[T]) func(I) (Proven[T], error) {
	return func(input I) (Proven[T], error) {
		statement, err := create(input)
		if err != nil {
			return Proven[T]{}, err
		}
		return prove(statement, prover)
	}
}

// Merge lifts a function merging statements into one merging proven
// statements. The proofs of both inputs are verified before merging, and the
// merged statement is proven again using the given prover.
func Merge[T any](merge func(T, T) (T, error), prover Prover[T]) func(Proven[T], Proven[T]) (Proven[T], error) {
	return func(left, right Proven[T]) (Proven[T], error) {
		if err := left.Verify(); err != nil {
			return Proven[T]{}, fmt.Errorf("left input: %w", err)
		}
		if err := right.Verify(); err != nil {
			return Proven[T]{}, fmt.Errorf("right input: %w", err)
		}
		statement, err := merge(left.Statement, right.Statement)
		if err != nil {
			return Proven[T]{}, err
		}
		return prove(statement, prover)
	}
}

func prove[T any](statement T, prover Prover[T]) (Proven[T], error) {
	proof, err := prover.Prove(statement)
	if err != nil {
		return Proven[T]{}, fmt.Errorf("failed to prove statement: %w", err)
	}
	return Proven[T]{Statement: statement, Proof: proof}, nil
}
