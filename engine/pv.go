// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pv.go tracks the principal variation discovered by the search, so the
// driver can report the expected line and the search can extract a ponder
// move from the recursive call's best reply -- spec.md §9.
package engine

const maxPVLength = 64

// pvLine is a fixed-capacity stack of moves forming one principal
// variation, from the root down.
type pvLine struct {
	moves [maxPVLength]Move
	n     int
}

func (pv *pvLine) clear() { pv.n = 0 }

// set makes this line "best = head, then child's line", the standard PVS
// update performed whenever a move raises alpha at a PV node.
func (pv *pvLine) set(best Move, child *pvLine) {
	pv.moves[0] = best
	n := 1
	if child != nil {
		for i := 0; i < child.n && n < maxPVLength; i++ {
			pv.moves[n] = child.moves[i]
			n++
		}
	}
	pv.n = n
}

// Best returns the line's first move, or the null move if empty.
func (pv *pvLine) Best() Move {
	if pv.n == 0 {
		return NullMove
	}
	return pv.moves[0]
}

// Ponder returns the line's second move -- the reply search expects --, or
// the null move if the line is too short.
func (pv *pvLine) Ponder() Move {
	if pv.n < 2 {
		return NullMove
	}
	return pv.moves[1]
}

// Moves returns the full line as a slice, root first.
func (pv *pvLine) Moves() []Move {
	return append([]Move(nil), pv.moves[:pv.n]...)
}
