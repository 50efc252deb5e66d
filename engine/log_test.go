// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestNulLoggerIsANoOp(t *testing.T) {
	var l NulLogger
	l.BeginSearch()
	l.PrintPV(Stats{Depth: 1})
	l.EndSearch()
}

func TestOpLoggerDoesNotPanic(t *testing.T) {
	l := NewOpLogger("corvid_test")
	l.BeginSearch()
	l.PrintPV(Stats{Depth: 3, Score: 10, Nodes: 100, PV: []Move{{From: SquareE1, To: RankFile(1, 4)}}})
	l.EndSearch()
}
