// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sequencer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestSum_AddsNumbers(t *testing.T) {
	i, _ := Sum(3, 4)
	f, _ := Sum(1.5, 2.25)
	u, _ := Sum[uint8](255, 1)
	require.Equal(t, 7, i)
	require.Equal(t, 3.75, f)
	require.Equal(t, uint8(0), u, "overflows should wrap around")
}

func TestReduce_EmptyInputIsRejected(t *testing.T) {
	_, err := Reduce[int](nil, Sum[int])
	require.ErrorIs(t, err, ErrNoInputs)
}

func TestReduce_FollowsPipelineTreeShape(t *testing.T) {
	bracket := func(a, b string) (string, error) {
		return "(" + a + b + ")", nil
	}
	tests := map[string]string{
		"a":     "a",
		"ab":    "(ab)",
		"abc":   "((ab)c)",
		"abcd":  "((ab)(cd))",
		"abcde": "(((ab)(cd))e)",
	}
	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			got, err := Reduce(strings.Split(input, ""), bracket)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestReduce_ForwardsMergeErrors(t *testing.T) {
	issue := fmt.Errorf("injected")
	_, err := Reduce([]int{1, 2, 3}, func(a, b int) (int, error) { return 0, issue })
	require.ErrorIs(t, err, issue)
}

func TestReduce_MatchesPipelineOnWideNumbers(t *testing.T) {
	require := require.New(t)
	add := func(a, b *uint256.Int) (*uint256.Int, error) {
		res, overflow := new(uint256.Int).AddOverflow(a, b)
		if overflow {
			return nil, fmt.Errorf("overflow")
		}
		return res, nil
	}
	inputs := make([]*uint256.Int, 0, 100)
	for i := range uint64(100) {
		inputs = append(inputs, new(uint256.Int).Lsh(uint256.NewInt(i+1), 192))
	}

	want, err := Reduce(inputs, add)
	require.NoError(err)

	pipeline, err := Build(inputs, Identity[*uint256.Int], add, WithConfig(Config{NumWorkers: 4}))
	require.NoError(err)
	got, err := pipeline.Run(t.Context()).Await().Get()
	require.NoError(err)
	require.True(want.Eq(got))
	require.Equal(new(uint256.Int).Lsh(uint256.NewInt(5050), 192), got)
}
