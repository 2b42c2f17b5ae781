// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package commit provides Pedersen vector commitments over the Banderwagon
// curve together with Inner Product Argument openings. On top of those, an
// Attestor offers a proof engine for fragments and redaction records whose
// handles can be checked independently of the producing party.
package commit

import (
	"github.com/0xsoniclabs/fold/common"
	"github.com/crate-crypto/go-ipa/banderwagon"
	"github.com/crate-crypto/go-ipa/ipa"
)

// VectorSize is the size of the vector that the commitment is made to.
const VectorSize = 256

// Commitment is a commitment to a vector of 256 values. It is a point on the
// Banderwagon curve, which is used for the Pedersen commitment scheme.
//
// For background on the Pedersen commitment scheme, see:
// https://rareskills.io/post/pedersen-commitment
type Commitment struct {
	point banderwagon.Element
}

// Commit creates a new commitment to a vector of values.
func Commit(values [VectorSize]Value) Commitment {
	return Commitment{point: ipaConfig.Commit(toScalars(values))}
}

// IsValid checks whether the commitment is a point on the curve. Commitments
// received from untrusted sources should be checked before use.
func (c Commitment) IsValid() bool {
	return c.point.IsOnCurve()
}

// Equal checks if two commitments are equal.
func (c Commitment) Equal(other Commitment) bool {
	return c.point.Equal(&other.point)
}

// ToValue maps the commitment into the scalar field so that it can be used
// as an element of other commitments.
func (c Commitment) ToValue() Value {
	var res banderwagon.Fr
	c.point.MapToScalarField(&res)
	return Value{scalar: res}
}

// Hash returns the little-endian encoding of the commitment's scalar value.
func (c Commitment) Hash() common.Hash {
	value := c.ToValue()
	return value.scalar.BytesLE()
}

func toScalars(values [VectorSize]Value) []banderwagon.Fr {
	elements := make([]banderwagon.Fr, VectorSize)
	for i, value := range values {
		elements[i] = value.scalar
	}
	return elements
}

// ipaConfig holds the generator points and curve parameters shared by all
// commitments and openings of this package.
var ipaConfig = func() *ipa.IPAConfig {
	conf, _ := ipa.NewIPASettings()
	return conf
}()
