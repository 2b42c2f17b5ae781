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
	"github.com/crate-crypto/go-ipa/bandersnatch/fr"
	"github.com/crate-crypto/go-ipa/common"
	"github.com/crate-crypto/go-ipa/ipa"
)

const transcriptLabel = "fold"

// Opening proves that a commitment contains a specific value at a specific
// position. It is an Inner Product Argument (IPA) proof.
// Details: https://dankradfeist.de/ethereum/2021/07/27/inner-product-arguments.html
type Opening struct {
	proof ipa.IPAProof
}

// Open creates an opening for a commitment at a specific position.
func Open(
	commitment Commitment,
	values [VectorSize]Value,
	position byte,
) (Opening, error) {
	transcript := common.NewTranscript(transcriptLabel)
	var pos fr.Element
	pos.SetUint64(uint64(position))
	proof, err := ipa.CreateIPAProof(
		transcript,
		ipaConfig,
		commitment.point,
		toScalars(values),
		pos,
	)
	return Opening{proof: proof}, err
}

// Verify checks whether the opening proves the given value at the given
// position of the commitment.
func (o Opening) Verify(
	commitment Commitment,
	position byte,
	value Value,
) (bool, error) {
	transcript := common.NewTranscript(transcriptLabel)
	var pos fr.Element
	pos.SetUint64(uint64(position))
	return ipa.CheckIPAProof(
		transcript,
		ipaConfig,
		commitment.point,
		o.proof,
		pos,
		value.scalar,
	)
}
