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
	"fmt"
	"runtime"

	"github.com/0xsoniclabs/fold/backend/cache"
	"github.com/0xsoniclabs/fold/backend/cache/memory"
	"github.com/0xsoniclabs/fold/common/hashing"
	"github.com/0xsoniclabs/fold/sequencer"
	sysmem "github.com/pbnjay/memory"
	"github.com/urfave/cli/v2"
)

var InfoCmd = cli.Command{
	Action: doInfo,
	Name:   "info",
	Usage:  "lists the resources and supported variants of this tool",
}

func doInfo(context *cli.Context) error {
	config := sequencer.DefaultConfig()
	w := context.App.Writer
	fmt.Fprintf(w, "CPUs:                  %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "Total memory:          %d bytes\n", sysmem.TotalMemory())
	fmt.Fprintf(w, "Default workers:       %d\n", config.NumWorkers)
	fmt.Fprintf(w, "Sequential threshold:  %d steps\n", config.SequentialThreshold)
	fmt.Fprintf(w, "Memory cache capacity: %d bytes\n", memory.DefaultCapacity())
	fmt.Fprintf(w, "Cache variants:        %v\n", cache.Variants())
	fmt.Fprintf(w, "Hash functions:        %v\n", hashing.Variants)
	return nil
}
