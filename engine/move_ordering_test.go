// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderMovesPutsTTMoveFirst(t *testing.T) {
	pos := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	var hist historyTable
	var anyMove Move
	pos.GenerateMoves(func(m Move) bool {
		if !m.IsViolent() {
			anyMove = m
			return false
		}
		return true
	})
	require.False(t, anyMove.IsNull())

	ordered := orderMoves(pos, anyMove, &hist)
	require.NotEmpty(t, ordered)
	require.Equal(t, anyMove.From, ordered[0].move.From)
	require.Equal(t, anyMove.To, ordered[0].move.To)
	require.Equal(t, scoreTTMove, ordered[0].score)
}

func TestOrderMovesCapturesBeforeQuiets(t *testing.T) {
	pos := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	var hist historyTable
	ordered := orderMoves(pos, NullMove, &hist)
	require.NotEmpty(t, ordered)

	seenQuiet := false
	for _, sm := range ordered {
		if sm.move.IsQuiet() {
			seenQuiet = true
		} else if seenQuiet {
			t.Fatalf("violent move %v sorted after a quiet move", sm.move)
		}
	}
}

func TestHistoryBonusAccumulatesAndHalves(t *testing.T) {
	var hist historyTable
	hist.bonus(White, SquareE1, RankFile(1, 4), 10)
	require.Equal(t, int32(100), hist.score(White, SquareE1, RankFile(1, 4)))

	hist.bonus(White, SquareE1, RankFile(1, 4), 5000)
	require.LessOrEqual(t, hist.score(White, SquareE1, RankFile(1, 4)), int32(1<<24))
}

func TestMvvlvaRanksPawnTakesQueenAboveQueenTakesPawn(t *testing.T) {
	pawnTakesQueen := Move{Piece: WhitePawn, Capture: BlackQueen}
	queenTakesPawn := Move{Piece: WhiteQueen, Capture: BlackPawn}
	require.Greater(t, mvvlva(pawnTakesQueen), mvvlva(queenTakesPawn))
}

func TestOrderViolentMovesOnlyViolent(t *testing.T) {
	pos := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	for _, sm := range orderViolentMoves(pos) {
		require.True(t, sm.move.IsViolent())
	}
}
