// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package diagnostics equips command line actions with optional performance
// diagnostics: a pprof server, CPU profiling, execution tracing and a heap
// profile written once the action is done.
package diagnostics

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/urfave/cli/v2"
)

// Flags references the command line flags controlling the diagnostics. The
// flags are looked up by name, so they may be registered on the application
// or on the command running the wrapped action.
type Flags struct {
	DiagnosticsPort *cli.IntFlag
	CpuProfile      *cli.StringFlag
	Trace           *cli.StringFlag
	HeapProfile     *cli.StringFlag
}

// NewFlags creates the default set of diagnostics flags.
func NewFlags() Flags {
	return Flags{
		DiagnosticsPort: &cli.IntFlag{
			Name:  "diagnostic-port",
			Usage: "enable hosting of a realtime diagnostic server by providing a port",
			Value: 0,
		},
		CpuProfile: &cli.StringFlag{
			Name:  "cpuprofile",
			Usage: "sets the target file for storing CPU profiles to, disabled if empty",
			Value: "",
		},
		Trace: &cli.StringFlag{
			Name:  "tracefile",
			Usage: "sets the target file for traces to, disabled if empty",
			Value: "",
		},
		HeapProfile: &cli.StringFlag{
			Name:  "heapprofile",
			Usage: "sets the target file for a heap profile taken after the run, disabled if empty",
			Value: "",
		},
	}
}

// List returns the flags for registering them on a cli.App or cli.Command.
func (f Flags) List() []cli.Flag {
	return []cli.Flag{f.DiagnosticsPort, f.CpuProfile, f.Trace, f.HeapProfile}
}

// Wrap wraps an action function such that the diagnostics requested through
// the given flags are active while the action runs.
func Wrap(action cli.ActionFunc, flags Flags) cli.ActionFunc {
	return func(context *cli.Context) error {
		startDiagnosticServer(context.Int(flags.DiagnosticsPort.Name))

		if fileName := context.String(flags.CpuProfile.Name); strings.TrimSpace(fileName) != "" {
			if err := startCpuProfiler(fileName); err != nil {
				return err
			}
			defer stopCpuProfiler()
		}

		if fileName := context.String(flags.Trace.Name); strings.TrimSpace(fileName) != "" {
			if err := startTracer(fileName); err != nil {
				return err
			}
			defer stopTracer()
		}

		if err := action(context); err != nil {
			return err
		}

		if fileName := context.String(flags.HeapProfile.Name); strings.TrimSpace(fileName) != "" {
			return writeHeapProfile(fileName)
		}
		return nil
	}
}

func startDiagnosticServer(port int) {
	if port <= 0 || port >= (1<<16) {
		return
	}
	fmt.Printf("Starting diagnostic server at port http://localhost:%d\n", port)
	fmt.Printf("(see https://pkg.go.dev/net/http/pprof#hdr-Usage_examples for usage examples)\n")
	go func() {
		addr := fmt.Sprintf("localhost:%d", port)
		log.Println(http.ListenAndServe(addr, nil))
	}()
}

func startCpuProfiler(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	return nil
}

func stopCpuProfiler() {
	pprof.StopCPUProfile()
}

func startTracer(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := trace.Start(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to start trace: %w", err)
	}
	return nil
}

func stopTracer() {
	trace.Stop()
}

func writeHeapProfile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create heap profile: %w", err)
	}
	defer f.Close()
	runtime.GC() // profile reflects live objects only
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("could not write heap profile: %w", err)
	}
	return nil
}
