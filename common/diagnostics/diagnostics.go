// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package diagnostics

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

// Flags bundles the command line flags controlling performance diagnostics.
type Flags struct {
	DiagnosticsPort *cli.IntFlag
	CpuProfile      *cli.StringFlag
	Trace           *cli.StringFlag
}

// AddPerformanceDiagnosticsAction wraps an action function to add performance
// diagnostics such as CPU profiling, tracing, and a diagnostic server. The
// diagnostic server is started at the port given by the integer flag, CPU
// profiles and traces are written to the files named by the string flags.
// Empty file names and ports outside the valid range disable the respective
// feature.
func AddPerformanceDiagnosticsAction(action cli.ActionFunc, flags Flags) cli.ActionFunc {
	return func(context *cli.Context) error {
		if flags.DiagnosticsPort != nil {
			startDiagnosticServer(context.Int(flags.DiagnosticsPort.Name))
		}

		if flags.CpuProfile != nil {
			if name := context.String(flags.CpuProfile.Name); strings.TrimSpace(name) != "" {
				if err := startCpuProfiler(name); err != nil {
					return err
				}
				defer pprof.StopCPUProfile()
			}
		}

		if flags.Trace != nil {
			if name := context.String(flags.Trace.Name); strings.TrimSpace(name) != "" {
				if err := startTracer(name); err != nil {
					return err
				}
				defer trace.Stop()
			}
		}

		return action(context)
	}
}

func startDiagnosticServer(port int) {
	if port <= 0 || port >= (1<<16) {
		return
	}
	addr := fmt.Sprintf("localhost:%d", port)
	log.Info("Starting diagnostic server", "url", "http://"+addr, "usage", "https://pkg.go.dev/net/http/pprof#hdr-Usage_examples")
	log.Warn("Block and mutex sampling rate set to 100% for diagnostics")
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Error("Diagnostic server stopped", "err", err)
		}
	}()
	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)
}

func startCpuProfiler(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	return nil
}

func startTracer(filename string) error {
	traceFile, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := trace.Start(traceFile); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	return nil
}
