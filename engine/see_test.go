// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSEENonCaptureIsZero(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	m := Move{From: RankFile(1, 4), To: RankFile(2, 4), Flag: Quiet, Piece: WhitePawn}
	require.Equal(t, int32(0), pos.SEE(m))
}

func TestSEEWinningPawnTakesUndefendedQueen(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	m := Move{From: RankFile(3, 4), To: RankFile(4, 3), Flag: Capture, Piece: WhitePawn, Capture: BlackQueen}
	require.Equal(t, figureValue[Queen], pos.SEE(m))
}

func TestSEELosingQueenTakesDefendedPawn(t *testing.T) {
	// White queen on d5 takes a pawn on d6 that's defended by a black pawn on e7/c7.
	pos := mustFEN(t, "4k3/2p1p3/3p4/3Q4/8/8/8/4K3 w - - 0 1")
	m := Move{From: RankFile(4, 3), To: RankFile(5, 3), Flag: Capture, Piece: WhiteQueen, Capture: BlackPawn}
	require.Less(t, pos.SEE(m), int32(0), "queen takes pawn defended by pawn should lose material")
}

func TestSEEPawnTakesUndefendedPawn(t *testing.T) {
	pos := mustFEN(t, "4k3/8/3p4/4P3/8/8/8/4K3 w - - 0 1")
	m := Move{From: RankFile(4, 4), To: RankFile(5, 3), Flag: Capture, Piece: WhitePawn, Capture: BlackPawn}
	require.Equal(t, figureValue[Pawn], pos.SEE(m))
}
