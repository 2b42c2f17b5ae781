// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/0xsoniclabs/fold/sequencer"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"
)

var SumCmd = cli.Command{
	Action:    withDiagnostics(doSum),
	Name:      "sum",
	Usage:     "adds up 256-bit numbers using a merge-tree pipeline",
	ArgsUsage: "<number>...",
	Flags:     pipelineFlags,
}

var (
	errOverflow   = errors.New("256-bit overflow")
	errInvalidHex = errors.New("invalid hex number")
)

func doSum(context *cli.Context) error {
	if context.Args().Len() == 0 {
		return fmt.Errorf("missing numbers to add")
	}
	numbers := make([]*uint256.Int, 0, context.Args().Len())
	for _, arg := range context.Args().Slice() {
		number, err := parseNumber(arg)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", arg, err)
		}
		numbers = append(numbers, number)
	}

	opts, closeCache, err := leafCacheOptions[*uint256.Int, *uint256.Int](context)
	if err != nil {
		return err
	}
	defer closeCache()

	sum, err := runPipeline(context, numbers, sequencer.Identity[*uint256.Int], add, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(context.App.Writer, sum.Dec())
	return nil
}

func parseNumber(s string) (*uint256.Int, error) {
	digits, found := strings.CutPrefix(s, "0x")
	if !found {
		return uint256.FromDecimal(s)
	}
	// uint256.FromHex rejects leading zero digits, which are common in hex
	// encoded words.
	value, ok := new(big.Int).SetString(digits, 16)
	if !ok || value.Sign() < 0 {
		return nil, errInvalidHex
	}
	res, overflow := uint256.FromBig(value)
	if overflow {
		return nil, errOverflow
	}
	return res, nil
}

func add(a, b *uint256.Int) (*uint256.Int, error) {
	res, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, fmt.Errorf("%w: %v + %v", errOverflow, a.Hex(), b.Hex())
	}
	return res, nil
}
