// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// material.go implements spec.md §4.11's tapered evaluation: a
// middlegame/endgame piece-square-table pair per figure, summed for each
// side and interpolated by game phase into one side-relative centipawn
// score.
//
// The teacher computed these tables from a tuned weight file; that tuner
// is out of scope here; these tables are built once at init() from a
// handful of simple positional rules (centralization, pawn advancement,
// king safety) instead of being hand-transcribed as 64-entry literals.
package engine

// Score is a (middlegame, endgame) pair of centipawn values, added
// side-relatively and blended by phase in Position.Evaluate at the end of a walk.
type Score struct{ M, E int32 }

func (s Score) Add(o Score) Score { return Score{s.M + o.M, s.E + o.E} }
func (s Score) Sub(o Score) Score { return Score{s.M - o.M, s.E - o.E} }
func (s Score) Neg() Score        { return Score{-s.M, -s.E} }

// phaseWeight gives each non-pawn, non-king figure its contribution to the
// 0..24 game-phase scale -- spec.md §4.11: knight/bishop 1, rook 2, queen 4.
var phaseWeight = [FigureArraySize]int32{0, 0, 1, 1, 2, 4, 0}

const maxPhase = 4*1 + 4*1 + 4*2 + 2*4 // 4N + 4B + 4R + 2Q == 24

// pstMid, pstEnd are indexed [figure][square], built from White's point of
// view; BlackSquare mirrors a square vertically (sq ^ 56) to read Black's
// value from the same table.
var pstMid, pstEnd [FigureArraySize][SquareArraySize]int32

func init() {
	for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
		r, f := sq.Rank(), sq.File()
		centerFile := minInt(f, 7-f)   // 0 on the edge files, 3 on d/e
		centerRank := minInt(r, 7-r)   // 0 on back ranks, 3 on the 4th/5th ranks
		center := centerFile + centerRank

		pstMid[Pawn][sq] = int32(10 * r)
		pstEnd[Pawn][sq] = int32(16 * r)

		pstMid[Knight][sq] = int32(6 * center)
		pstEnd[Knight][sq] = int32(6 * center)

		pstMid[Bishop][sq] = int32(4 * center)
		pstEnd[Bishop][sq] = int32(4 * center)

		pstMid[Rook][sq] = int32(2 * centerFile)
		pstEnd[Rook][sq] = int32(2 * centerFile)

		pstMid[Queen][sq] = int32(2 * center)
		pstEnd[Queen][sq] = int32(2 * center)

		// The king wants the back rank and a corner in the middlegame
		// (castled safety) but the open center once material thins out.
		pstMid[King][sq] = int32(8 * (7 - r) * boolInt(centerFile <= 1))
		pstEnd[King][sq] = int32(10 * center)
	}
	// Pawns never live on the first/last rank; zero those entries so a
	// promoted-then-captured lookup never contributes a stray bonus.
	for f := 0; f < 8; f++ {
		pstMid[Pawn][RankFile(0, f)] = 0
		pstEnd[Pawn][RankFile(0, f)] = 0
		pstMid[Pawn][RankFile(7, f)] = 0
		pstEnd[Pawn][RankFile(7, f)] = 0
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// BlackSquare mirrors sq vertically, letting Black read White-oriented PST
// tables directly.
func BlackSquare(sq Square) Square { return sq ^ 56 }

// pieceSquareScore returns pi's positional (mid, end) bonus on sq.
func pieceSquareScore(pi Piece, sq Square) Score {
	fig := pi.Figure()
	s := sq
	if pi.Color() == Black {
		s = BlackSquare(sq)
	}
	return Score{pstMid[fig][s], pstEnd[fig][s]}
}

// Phase returns the position's game phase, 24 at the start and decreasing
// toward 0 as non-pawn, non-king material is traded off.
func (pos *Position) Phase() int32 {
	var phase int32
	for fig := Knight; fig <= Queen; fig++ {
		phase += phaseWeight[fig] * int32(pos.byFigure[fig].Popcnt())
	}
	if phase > maxPhase {
		phase = maxPhase
	}
	return phase
}

// Evaluate returns a side-relative centipawn score: positive favors the
// side to move. It sums material plus piece-square bonuses for every
// piece on the board, then interpolates middlegame/endgame by phase.
func (pos *Position) Evaluate() int32 {
	var total Score
	for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
		pi := pos.board[sq]
		if pi == NoPiece {
			continue
		}
		v := figureValue[pi.Figure()]
		s := Score{v, v}.Add(pieceSquareScore(pi, sq))
		if pi.Color() == White {
			total = total.Add(s)
		} else {
			total = total.Sub(s)
		}
	}

	phase := pos.Phase()
	blended := (total.M*phase + total.E*(maxPhase-phase)) / maxPhase
	return blended * pos.sideToMove.Multiplier()
}
