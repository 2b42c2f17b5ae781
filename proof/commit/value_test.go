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
	"github.com/stretchr/testify/require"
)

func TestValue_NewValue_MatchesLittleEndianEncoding(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 256, 1 << 40, ^uint64(0)} {
		var data [8]byte
		for i := range data {
			data[i] = byte(v >> (8 * i))
		}
		require.Equal(t, NewValue(v), NewValueFromLittleEndianBytes(data[:]))
	}
}

func TestValue_NewValueFromLittleEndianBytes_TruncatesLongInputs(t *testing.T) {
	data := make([]byte, 40)
	data[0] = 1
	data[35] = 1
	require.Equal(t, NewValue(1), NewValueFromLittleEndianBytes(data))
}

func TestValue_HashHalves_DistinguishHashes(t *testing.T) {
	a := common.Hash{1}
	b := common.Hash{31: 1}
	require.NotEqual(t, hashHalves(a), hashHalves(b))
	require.Equal(t, [2]Value{NewValue(1), {}}, hashHalves(a))
}
