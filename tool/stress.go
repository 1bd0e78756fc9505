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
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ultrabear/history-stack/common/diagnostics"
	"github.com/ultrabear/history-stack/savestack"
	"github.com/ultrabear/history-stack/timeline"
)

var StressCmd = cli.Command{
	Action: diagnostics.Wrap(stress, diagnosticFlags),
	Name:   "stress",
	Usage:  "verifies random operation sequences against a reference model",
	Flags: []cli.Flag{
		&stressWorkersFlag,
		&stressNumOpsFlag,
		&stressSeedFlag,
		&stressMaxEntriesFlag,
	},
}

var (
	stressWorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "the number of workers, each checking its own instances",
		Value: runtime.NumCPU(),
	}
	stressNumOpsFlag = cli.IntFlag{
		Name:  "ops",
		Usage: "the number of operations per worker and wrapper",
		Value: 100_000,
	}
	stressSeedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "the seed of the random operation sequences",
		Value: 42,
	}
	stressMaxEntriesFlag = cli.IntFlag{
		Name:  "max-entries",
		Usage: "the retention bound of the timeline, 0 for unbounded",
		Value: 0,
	}
)

var errDivergence = errors.New("divergence from reference model")

type stressParams struct {
	workers    int
	numOps     int
	seed       uint64
	maxEntries int
}

type stressResult struct {
	timelineOps  int64
	saveStackOps int64
	duration     time.Duration
}

func stress(context *cli.Context) error {
	params := stressParams{
		workers:    context.Int(stressWorkersFlag.Name),
		numOps:     context.Int(stressNumOpsFlag.Name),
		seed:       context.Uint64(stressSeedFlag.Name),
		maxEntries: context.Int(stressMaxEntriesFlag.Name),
	}
	res, err := runStress(context.Context, params, log.Printf)
	if err != nil {
		return err
	}
	log.Printf("verified %d timeline and %d save stack operations in %v", res.timelineOps, res.saveStackOps, res.duration)
	return nil
}

func runStress(ctx context.Context, params stressParams, observer func(string, ...any)) (stressResult, error) {
	if params.numOps < 0 {
		return stressResult{}, fmt.Errorf("invalid number of operations: %d", params.numOps)
	}
	if params.maxEntries < 0 {
		return stressResult{}, fmt.Errorf("invalid retention bound: %d", params.maxEntries)
	}
	if params.workers <= 0 {
		params.workers = 1
	}

	start := time.Now()
	counts := make([][2]int, params.workers)
	group, ctx := errgroup.WithContext(ctx)
	for worker := range params.workers {
		group.Go(func() error {
			rnd := rand.New(rand.NewPCG(params.seed, uint64(worker)))
			timelineOps, err := checkTimeline(ctx, rnd, params.numOps, params.maxEntries)
			if err != nil {
				return fmt.Errorf("worker %d, timeline: %w", worker, err)
			}
			saveStackOps, err := checkSaveStack(ctx, rnd, params.numOps)
			if err != nil {
				return fmt.Errorf("worker %d, save stack: %w", worker, err)
			}
			counts[worker] = [2]int{timelineOps, saveStackOps}
			observer("worker %d verified %d operations", worker, timelineOps+saveStackOps)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return stressResult{}, err
	}

	res := stressResult{duration: time.Since(start)}
	for _, count := range counts {
		res.timelineOps += int64(count[0])
		res.saveStackOps += int64(count[1])
	}
	return res, nil
}

func diverged(step int, format string, args ...any) error {
	return fmt.Errorf("%w at step %d: %s", errDivergence, step, fmt.Sprintf(format, args...))
}

// checkTimeline runs random operations on a timeline and on a reference model
// keeping explicit lists of past and future values.
func checkTimeline(ctx context.Context, rnd *rand.Rand, numOps, maxEntries int) (int, error) {
	s := timeline.New(0, timeline.WithMaxEntries[int](maxEntries))
	var past, future []int
	current := 0

	commit := func(value int) {
		past = append(past, current)
		future = future[:0]
		current = value
		if maxEntries > 0 && len(past)+1 > maxEntries {
			past = past[len(past)+1-maxEntries:]
		}
	}

	for i := range numOps {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return i, err
			}
		}
		switch rnd.IntN(5) {
		case 0:
			*s.Save() += 1
			commit(current + 1)
		case 1:
			value := rnd.Int()
			s.Push(value)
			commit(value)
		case 2:
			res := s.Undo()
			if len(past) == 0 {
				if !errors.Is(res.Err(), timeline.ErrNothingToUndo) {
					return i, diverged(i, "undo at first entry reported %v", res.Err())
				}
			} else {
				if err := res.Err(); err != nil {
					return i, diverged(i, "undo failed: %v", err)
				}
				future = append(future, current)
				current = past[len(past)-1]
				past = past[:len(past)-1]
			}
			if got := *res.Value(); got != current {
				return i, diverged(i, "undo yields %d, wanted %d", got, current)
			}
		case 3:
			res := s.Redo()
			if len(future) == 0 {
				if !errors.Is(res.Err(), timeline.ErrNothingToRedo) {
					return i, diverged(i, "redo at last entry reported %v", res.Err())
				}
			} else {
				if err := res.Err(); err != nil {
					return i, diverged(i, "redo failed: %v", err)
				}
				past = append(past, current)
				current = future[len(future)-1]
				future = future[:len(future)-1]
			}
			if got := *res.Value(); got != current {
				return i, diverged(i, "redo yields %d, wanted %d", got, current)
			}
		case 4:
			current = rnd.Int()
			s.Set(current)
		}

		if got := s.Get(); got != current {
			return i, diverged(i, "current value is %d, wanted %d", got, current)
		}
		if got, want := s.UndoCount(), len(past); got != want {
			return i, diverged(i, "%d entries to undo, wanted %d", got, want)
		}
		if got, want := s.RedoCount(), len(future); got != want {
			return i, diverged(i, "%d entries to redo, wanted %d", got, want)
		}
	}
	return numOps, nil
}

// checkSaveStack runs random operations on a save stack and on a reference
// model keeping the stored values in a plain slice.
func checkSaveStack(ctx context.Context, rnd *rand.Rand, numOps int) (int, error) {
	s := savestack.New(0)
	var stored []int
	current := 0

	for i := range numOps {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return i, err
			}
		}
		switch rnd.IntN(4) {
		case 0:
			s.Push()
			stored = append(stored, current)
		case 1:
			value := rnd.Int()
			s.PushValue(value)
			stored = append(stored, current)
			current = value
		case 2:
			prev, ok := s.Pop()
			if len(stored) == 0 {
				if ok {
					return i, diverged(i, "pop on empty stack yields %d", prev)
				}
				break
			}
			if !ok || prev != current {
				return i, diverged(i, "pop yields (%d, %t), wanted (%d, true)", prev, ok, current)
			}
			current = stored[len(stored)-1]
			stored = stored[:len(stored)-1]
		case 3:
			current = rnd.Int()
			s.Set(current)
		}

		if got := s.Get(); got != current {
			return i, diverged(i, "current value is %d, wanted %d", got, current)
		}
		if got, want := s.Len(), len(stored); got != want {
			return i, diverged(i, "%d stored values, wanted %d", got, want)
		}
	}
	return numOps, nil
}
