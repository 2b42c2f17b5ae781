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
	"os"

	"github.com/0xsoniclabs/fold/common/diagnostics"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./tool <command> <flags>

var (
	diagnosticsFlag = cli.IntFlag{
		Name:  "diagnostic-port",
		Usage: "enable hosting of a realtime diagnostic server by providing a port",
		Value: 0,
	}
	cpuProfileFlag = cli.StringFlag{
		Name:  "cpuprofile",
		Usage: "sets the target file for storing CPU profiles to, disabled if empty",
		Value: "",
	}
	traceFlag = cli.StringFlag{
		Name:  "tracefile",
		Usage: "sets the target file for traces to, disabled if empty",
		Value: "",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	}
)

var commands = []*cli.Command{
	&SumCmd,
	&ReplayMapCmd,
	&ReplayTreeCmd,
	&RedactCmd,
	&InfoCmd,
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "tool",
		Usage:     "fragment folding toolbox",
		Copyright: "(c) 2025 Sonic Operations Ltd",
		Flags: []cli.Flag{
			&diagnosticsFlag,
			&cpuProfileFlag,
			&traceFlag,
			&verbosityFlag,
		},
		Before:   setupLogging,
		Commands: commands,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(context *cli.Context) error {
	handler := log.NewGlogHandler(log.NewTerminalHandler(context.App.ErrWriter, false))
	handler.Verbosity(log.FromLegacyLevel(context.Int(verbosityFlag.Name)))
	log.SetDefault(log.NewLogger(handler))
	return nil
}

// withDiagnostics adds the performance diagnostics controlled by the global
// flags to the given action.
func withDiagnostics(action cli.ActionFunc) cli.ActionFunc {
	return diagnostics.AddPerformanceDiagnosticsAction(action, diagnostics.Flags{
		DiagnosticsPort: &diagnosticsFlag,
		CpuProfile:      &cpuProfileFlag,
		Trace:           &traceFlag,
	})
}
