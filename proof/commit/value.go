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
	"github.com/0xsoniclabs/fold/common"
	"github.com/crate-crypto/go-ipa/banderwagon"
)

// Value is an element of a committed vector. The value range is approximately
// 253 bits, so any 31-byte value can be represented, but not every 32-byte
// value.
type Value struct {
	scalar banderwagon.Fr
}

// NewValue creates a new value from a uint64 value.
func NewValue(value uint64) Value {
	var scalar banderwagon.Fr
	scalar.SetUint64(value)
	return Value{scalar: scalar}
}

// NewValueFromLittleEndianBytes creates a new value from up to 32 bytes in
// little-endian order. Shorter inputs are padded with zeros, longer inputs
// are truncated.
func NewValueFromLittleEndianBytes(data []byte) Value {
	var padded [32]byte
	copy(padded[:], data)
	var scalar banderwagon.Fr
	scalar.SetBytesLE(padded[:])
	return Value{scalar: scalar}
}

// hashHalves splits a hash into two 16-byte values. Together, they represent
// the hash without loss.
func hashHalves(hash common.Hash) [2]Value {
	return [2]Value{
		NewValueFromLittleEndianBytes(hash[:16]),
		NewValueFromLittleEndianBytes(hash[16:]),
	}
}
