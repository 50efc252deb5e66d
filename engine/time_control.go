// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// time_control.go bounds the root search by a deadline and a shared,
// lock-free stop flag -- spec.md §5's concurrency model: the search
// thread polls the flag and never otherwise suspends.
package engine

import (
	"sync/atomic"
	"time"
)

// TimeControl governs when search_root must stop.
type TimeControl struct {
	deadline time.Time
	maxDepth int32
	stop     atomic.Bool
}

// NewTimeControl bounds the search by wall-clock budget and an absolute
// depth ceiling (0 means unlimited depth).
func NewTimeControl(budget time.Duration, maxDepth int32) *TimeControl {
	return &TimeControl{deadline: time.Now().Add(budget), maxDepth: maxDepth}
}

// NewFixedDepthTimeControl searches exactly to maxDepth with no deadline.
func NewFixedDepthTimeControl(maxDepth int32) *TimeControl {
	return &TimeControl{deadline: time.Now().Add(24 * time.Hour), maxDepth: maxDepth}
}

// NewDeadlineTimeControl stops at an absolute point in time.
func NewDeadlineTimeControl(deadline time.Time) *TimeControl {
	return &TimeControl{deadline: deadline}
}

// Stop requests that the search unwind to the root as soon as it next
// polls. Safe to call from another goroutine (the stdin-reader / timer
// pair spec.md §5 describes).
func (tc *TimeControl) Stop() { tc.stop.Store(true) }

// ShouldStop reports whether the deadline has passed or Stop was called.
func (tc *TimeControl) ShouldStop() bool {
	return tc.stop.Load() || time.Now().After(tc.deadline)
}

// DepthAllowed reports whether depth is still within the configured ceiling.
func (tc *TimeControl) DepthAllowed(depth int32) bool {
	return tc.maxDepth <= 0 || depth <= tc.maxDepth
}
