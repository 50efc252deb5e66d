// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// workerpool.go is the Lazy-SMP extension point of SPEC_FULL.md §4.15: an
// optional, additive way to run several independent single-threaded
// searches against one shared transposition table. search_root itself
// stays single-threaded; this is a separate opt-in entry point built out
// of it.
package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunLazySMP runs `workers` independent Engine.SearchRoot calls, each
// against its own cloned Position and history table but all sharing tt,
// and returns the result of whichever worker reached the greatest
// completed depth -- the classic Lazy-SMP vote. It never replaces the
// mandatory single-thread search_root contract.
func RunLazySMP(ctx context.Context, workers int, pos *Position, cfg Config, tt *HashTable, logger Logger, tc *TimeControl) (Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			eng := NewEngine(tt, cfg, logger)
			eng.SetPosition(pos.Clone())
			done := make(chan Result, 1)
			go func() { done <- eng.SearchRoot(tc) }()
			select {
			case <-ctx.Done():
				tc.Stop()
				results[w] = <-done
			case r := <-done:
				results[w] = r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Depth > best.Depth || (r.Depth == best.Depth && r.Score > best.Score) {
			best = r
		}
	}
	return best, nil
}
