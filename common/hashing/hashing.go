// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package hashing provides the one-way combining hash functions used for
// Merkle nodes, audit hash chains, and redaction accumulators.
//
// All hashers consume a sequence of 32-byte words and produce a single word.
// The result depends on the order of the inputs.
package hashing

import (
	"fmt"

	"github.com/0xsoniclabs/fold/common"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"golang.org/x/crypto/sha3"
)

// Hasher combines a sequence of words into a single digest.
type Hasher interface {
	Hash(words ...common.Hash) common.Hash
}

// Keccak hashes the concatenation of all words using legacy Keccak-256, the
// hash used by Ethereum.
type Keccak struct{}

func (Keccak) Hash(words ...common.Hash) common.Hash {
	hasher := sha3.NewLegacyKeccak256()
	for _, word := range words {
		hasher.Write(word[:])
	}
	var res common.Hash
	hasher.Sum(res[:0])
	return res
}

// MiMC hashes words using the MiMC permutation over the scalar field of the
// BN254 curve. Words are reduced into the field before being absorbed, so
// inputs differing by a multiple of the field modulus collide. In exchange
// the hash is cheap to verify inside SNARK circuits.
type MiMC struct{}

func (MiMC) Hash(words ...common.Hash) common.Hash {
	hasher := mimc.NewMiMC()
	for _, word := range words {
		var element fr.Element
		element.SetBytes(word[:])
		block := element.Bytes()
		// Canonical field elements are always accepted.
		if _, err := hasher.Write(block[:]); err != nil {
			panic(fmt.Sprintf("failed to absorb canonical field element: %v", err))
		}
	}
	var res common.Hash
	copy(res[:], hasher.Sum(nil))
	return res
}

// Default is the hasher used where no other hasher is configured.
var Default Hasher = Keccak{}

// Variant names a supported hash function.
type Variant string

const (
	VariantKeccak Variant = "keccak"
	VariantMiMC   Variant = "mimc"
)

// Variants lists all supported hash functions.
var Variants = []Variant{VariantKeccak, VariantMiMC}

// Get returns the hasher registered under the given name.
func Get(variant Variant) (Hasher, error) {
	switch variant {
	case VariantKeccak:
		return Keccak{}, nil
	case VariantMiMC:
		return MiMC{}, nil
	}
	return nil, fmt.Errorf("unknown hash variant %q", variant)
}
