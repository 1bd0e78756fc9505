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
	"log"
	"runtime"
	"time"

	"github.com/holiman/uint256"
	"github.com/pbnjay/memory"
	"github.com/urfave/cli/v2"

	"github.com/ultrabear/history-stack/common/diagnostics"
	"github.com/ultrabear/history-stack/timeline"
)

var BenchmarkCmd = cli.Command{
	Action: diagnostics.Wrap(benchmark, diagnosticFlags),
	Name:   "benchmark",
	Usage:  "measures save, undo and redo throughput of a timeline",
	Flags: []cli.Flag{
		&benchNumOpsFlag,
		&benchReportIntervalFlag,
		&benchMaxEntriesFlag,
	},
}

var (
	benchNumOpsFlag = cli.IntFlag{
		Name:  "ops",
		Usage: "the number of operations to be run",
		Value: 1_000_000,
	}
	benchReportIntervalFlag = cli.IntFlag{
		Name:  "report-interval",
		Usage: "the number of operations between reports, the full run if zero",
		Value: 100_000,
	}
	benchMaxEntriesFlag = cli.IntFlag{
		Name:  "max-entries",
		Usage: "the retention bound of the timeline, 0 for unbounded",
		Value: 1000,
	}
)

type benchParams struct {
	numOps         int
	reportInterval int
	maxEntries     int
}

type benchInterval struct {
	endOfOp    int
	throughput float64 // operations per second
	memory     uint64  // live heap in bytes
}

type benchResult struct {
	numOps      int64
	duration    time.Duration
	intervals   []benchInterval
	totalMemory uint64 // system memory, 0 if unknown
}

func benchmark(context *cli.Context) error {
	params := benchParams{
		numOps:         context.Int(benchNumOpsFlag.Name),
		reportInterval: context.Int(benchReportIntervalFlag.Name),
		maxEntries:     context.Int(benchMaxEntriesFlag.Name),
	}
	res, err := runBenchmark(params, log.Printf)
	if err != nil {
		return err
	}
	log.Printf("completed %d operations in %v, %.2f ops/s", res.numOps, res.duration, float64(res.numOps)/res.duration.Seconds())
	return nil
}

// runBenchmark commits, undoes and redoes 256-bit counter values on a
// timeline. Every third operation undoes the latest commit and redoes it,
// all others save a copy of the current counter and increment it.
func runBenchmark(params benchParams, observer func(string, ...any)) (benchResult, error) {
	res := benchResult{totalMemory: memory.TotalMemory()}
	if params.numOps <= 0 {
		return res, fmt.Errorf("number of operations must be positive, got %d", params.numOps)
	}
	if params.maxEntries < 0 {
		return res, fmt.Errorf("invalid retention bound: %d", params.maxEntries)
	}
	if params.reportInterval <= 0 {
		params.reportInterval = params.numOps
	}

	s := timeline.New(uint256.NewInt(0), timeline.WithMaxEntries[*uint256.Int](params.maxEntries))
	var want uint64

	start := time.Now()
	lastReport := start
	for i := 1; i <= params.numOps; i++ {
		if i%3 == 0 {
			if s.Undo().IsOk() {
				if err := s.Redo().Err(); err != nil {
					return res, fmt.Errorf("redo after undo failed at operation %d: %w", i, err)
				}
			}
		} else {
			counter := *s.Save()
			counter.AddUint64(counter, uint64(i))
			want += uint64(i)
		}

		if i%params.reportInterval == 0 {
			now := time.Now()
			var stats runtime.MemStats
			runtime.ReadMemStats(&stats)
			interval := benchInterval{
				endOfOp:    i,
				throughput: float64(params.reportInterval) / now.Sub(lastReport).Seconds(),
				memory:     stats.HeapAlloc,
			}
			res.intervals = append(res.intervals, interval)
			observer("%d operations, %.2f ops/s, heap %d bytes%s", i, interval.throughput, interval.memory, memoryShare(interval.memory, res.totalMemory))
			lastReport = now
		}
	}
	res.duration = time.Since(start)
	res.numOps = int64(params.numOps)

	if got := s.Get().Uint64(); got != want {
		return res, fmt.Errorf("unexpected final counter value, wanted %d, got %d", want, got)
	}
	return res, nil
}

func memoryShare(used, total uint64) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf(" (%.4f%% of system memory)", 100*float64(used)/float64(total))
}
