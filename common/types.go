// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// HashSize is the number of bytes of hashes, keys, and values.
const HashSize = 32

// Hash is a 32-byte digest. It is used for commitments summarizing the state
// of authenticated data structures, for the audit hash chain of trees, and
// for accumulator hashes. The zero hash is a valid value and denotes an
// empty commitment or accumulator.
type Hash [HashSize]byte

// Key addresses an entry of an authenticated key/value map.
type Key [HashSize]byte

// Value is the content of a map entry or a tree leaf.
type Value [HashSize]byte

func (h Hash) String() string {
	return hexutil.Encode(h[:])
}

func (k Key) String() string {
	return hexutil.Encode(k[:])
}

func (v Value) String() string {
	return hexutil.Encode(v[:])
}

// HashFromHex parses a 0x-prefixed hex string into a hash. Shorter inputs are
// left-padded with zeros, longer inputs are rejected.
func HashFromHex(s string) (Hash, error) {
	var res Hash
	data, err := hexutil.Decode(s)
	if err != nil {
		return res, err
	}
	if len(data) > HashSize {
		return res, fmt.Errorf("hash too long: %d bytes", len(data))
	}
	copy(res[HashSize-len(data):], data)
	return res, nil
}

// Uint64Word encodes the given integer as a big-endian 32-byte word. It is the
// canonical form in which indices enter hash computations.
func Uint64Word(value uint64) Hash {
	var res Hash
	binary.BigEndian.PutUint64(res[HashSize-8:], value)
	return res
}

// ValueFromUint64 encodes the given integer as a big-endian value.
func ValueFromUint64(value uint64) Value {
	return Value(Uint64Word(value))
}

// KeyFromUint64 encodes the given integer as a big-endian key.
func KeyFromUint64(value uint64) Key {
	return Key(Uint64Word(value))
}
