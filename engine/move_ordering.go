// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// move_ordering.go ranks pseudo-legal moves before the search walks them,
// per spec.md §4.9 step 6: TT move first, then captures by MVV-LVA, then
// quiet moves by history-heuristic score. Promotions sort alongside
// captures since they carry similar tactical weight.
package engine

import "golang.org/x/exp/slices"

// historyTable is a thread-local (side, from, to) -> score map used to
// order quiet moves that have caused cutoffs before, per spec.md §3's
// History table and §4.9 step 7's "+depth²" update rule.
type historyTable [ColorArraySize][SquareArraySize][SquareArraySize]int32

func (h *historyTable) bonus(us Color, from, to Square, depth int32) {
	h[us][from][to] += depth * depth
	// Keep scores bounded so a long game doesn't overflow int32 and so
	// recent cutoffs stay influential relative to very old ones.
	if h[us][from][to] > 1<<24 {
		for c := ColorMinValue; c <= ColorMaxValue; c++ {
			for f := SquareMinValue; f <= SquareMaxValue; f++ {
				for t := SquareMinValue; t <= SquareMaxValue; t++ {
					h[c][f][t] /= 2
				}
			}
		}
	}
}

func (h *historyTable) score(us Color, from, to Square) int32 { return h[us][from][to] }

// scoredMove pairs a pseudo-legal move with its ordering key.
type scoredMove struct {
	move  Move
	score int32
}

const (
	scoreTTMove    = int32(1) << 30
	scoreCaptureLo = int32(1) << 20
	scoreQuietHi   = int32(1) << 19
)

// mvvlva scores a capture by sixteen times the victim's value minus the
// attacker's value, so that e.g. pawn-takes-queen always outranks
// queen-takes-pawn.
func mvvlva(m Move) int32 {
	victim := figureValue[m.Capture.Figure()]
	attacker := figureValue[m.Piece.Figure()]
	score := victim*16 - attacker
	if m.Flag.IsPromotion() {
		score += figureValue[m.PromotionFigure()]
	}
	return score
}

// orderMoves collects every pseudo-legal move from pos, scores it, and
// returns them sorted best-first: ttMove (if present among the generated
// moves), then captures/promotions by MVV-LVA, then quiets by history
// score.
func orderMoves(pos *Position, ttMove Move, hist *historyTable) []scoredMove {
	var moves []scoredMove
	pos.GenerateMoves(func(m Move) bool {
		var s int32
		switch {
		case !ttMove.IsNull() && m.From == ttMove.From && m.To == ttMove.To && m.Flag == ttMove.Flag:
			s = scoreTTMove
		case m.IsViolent():
			s = scoreCaptureLo + mvvlva(m)
		default:
			s = hist.score(pos.SideToMove(), m.From, m.To)
			if s > scoreQuietHi {
				s = scoreQuietHi
			}
		}
		moves = append(moves, scoredMove{m, s})
		return true
	})
	slices.SortStableFunc(moves, func(a, b scoredMove) int { return int(b.score) - int(a.score) })
	return moves
}

// orderViolentMoves is the quiescence-search counterpart: only captures
// and promotions, ordered by MVV-LVA.
func orderViolentMoves(pos *Position) []scoredMove {
	var moves []scoredMove
	pos.GenerateViolentMoves(func(m Move) bool {
		moves = append(moves, scoredMove{m, mvvlva(m)})
		return true
	})
	slices.SortStableFunc(moves, func(a, b scoredMove) int { return int(b.score) - int(a.score) })
	return moves
}
