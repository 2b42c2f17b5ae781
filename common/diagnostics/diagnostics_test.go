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
	"context"
	"net/http"
	_ "net/http/pprof"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestAddPerformanceDiagnosticsAction(t *testing.T) {
	dir := t.TempDir()
	called := false
	action := func(ctx *cli.Context) error {
		// profile file created
		require.FileExists(t, path.Join(dir, "cpu.profile"))
		require.FileExists(t, path.Join(dir, "tracer.out"))

		// server started
		var statusCode int
		var counter int
		const loops = 10
		var lastHttpGetErr error
		wait := 100 * time.Millisecond
		for statusCode != http.StatusOK && counter < loops {
			resp, err := http.Get("http://localhost:6061/debug/pprof/")
			lastHttpGetErr = err
			if resp != nil {
				statusCode = resp.StatusCode
				resp.Body.Close()
			}
			counter++
			time.Sleep(wait)
			wait *= 2
		}

		require.NoError(t, lastHttpGetErr)
		require.Equal(t, http.StatusOK, statusCode)

		called = true
		return nil
	}

	flags := Flags{
		DiagnosticsPort: &cli.IntFlag{Name: "diagnostics"},
		CpuProfile:      &cli.StringFlag{Name: "cpu-profile"},
		Trace:           &cli.StringFlag{Name: "trace"},
	}

	app := &cli.App{
		Action: AddPerformanceDiagnosticsAction(action, flags),
		Flags:  []cli.Flag{flags.DiagnosticsPort, flags.CpuProfile, flags.Trace},
	}

	args := []string{"cmd", "--diagnostics", "6061", "--cpu-profile", path.Join(dir, "cpu.profile"), "--trace", path.Join(dir, "tracer.out")}
	require.NoError(t, app.RunContext(context.Background(), args))
	require.True(t, called, "action should be called")
}

func TestAddPerformanceDiagnosticsAction_DisabledFeaturesAreSkipped(t *testing.T) {
	called := false
	action := func(ctx *cli.Context) error {
		called = true
		return nil
	}

	app := &cli.App{
		Action: AddPerformanceDiagnosticsAction(action, Flags{}),
	}
	require.NoError(t, app.Run([]string{"cmd"}))
	require.True(t, called, "action should be called")
}

func TestAddPerformanceDiagnosticsAction_InvalidProfileTargetIsReported(t *testing.T) {
	flags := Flags{CpuProfile: &cli.StringFlag{Name: "cpu-profile"}}
	app := &cli.App{
		Action: AddPerformanceDiagnosticsAction(func(*cli.Context) error { return nil }, flags),
		Flags:  []cli.Flag{flags.CpuProfile},
	}
	target := path.Join(t.TempDir(), "missing", "cpu.profile")
	err := app.Run([]string{"cmd", "--cpu-profile", target})
	require.ErrorContains(t, err, "could not create CPU profile")
}
