// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustFEN(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := PositionFromFEN(fen)
	require.NoError(t, err, "parsing %q", fen)
	require.NoError(t, pos.Verify())
	return pos
}

func TestStartingPositionFENRoundTrip(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	pos := mustFEN(t, fen)
	require.Equal(t, fen, pos.FEN())
}

func TestFENRoundTripVariousPositions(t *testing.T) {
	fens := []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/3PP3/8/PPP2PPP/RNBQKBNR w KQkq e6 0 3",
		"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		pos := mustFEN(t, fen)
		require.Equal(t, fen, pos.FEN())
	}
}

func TestRejectsBadFEN(t *testing.T) {
	for _, fen := range []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq",
		"rnbqkxnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQBBNR w KQkq - 0 1",
	} {
		_, err := PositionFromFEN(fen)
		require.Error(t, err, "fen %q should be rejected", fen)
	}
}

func TestMakeUnmakeRestoresPosition(t *testing.T) {
	pos := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := pos.FEN()
	beforeKey := pos.Key()

	var legal []Move
	pos.GenerateMoves(func(m Move) bool {
		legal = append(legal, m)
		return true
	})
	require.NotEmpty(t, legal)

	for _, m := range legal {
		mv := m
		pos.Make(&mv)
		pos.Unmake(mv)
		require.Equal(t, before, pos.FEN(), "fen changed after make/unmake of %v", mv)
		require.Equal(t, beforeKey, pos.Key(), "key changed after make/unmake of %v", mv)
		require.NoError(t, pos.Verify())
	}
}

func TestEnPassantCapture(t *testing.T) {
	pos := mustFEN(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	m := Move{From: RankFile(4, 4), To: RankFile(5, 3), Flag: EnPassant, Piece: WhitePawn, Capture: BlackPawn}
	ok := pos.Make(&m)
	require.True(t, ok)
	require.Equal(t, NoPiece, pos.PieceAt(RankFile(4, 3)), "captured pawn removed")
	require.Equal(t, WhitePawn, pos.PieceAt(RankFile(5, 3)))
	require.NoError(t, pos.Verify())

	pos.Unmake(m)
	require.Equal(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3", pos.FEN())
}

func TestCastlingUpdatesRookAndRights(t *testing.T) {
	pos := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	m := Move{From: SquareE1, To: SquareG1, Flag: CastleWK, Piece: WhiteKing}
	ok := pos.Make(&m)
	require.True(t, ok)
	require.Equal(t, WhiteKing, pos.PieceAt(SquareG1))
	require.Equal(t, WhiteRook, pos.PieceAt(SquareF1))
	require.False(t, pos.CanCastle(WhiteOO))
	require.False(t, pos.CanCastle(WhiteOOO))
	require.True(t, pos.CanCastle(BlackOO))
	require.NoError(t, pos.Verify())

	pos.Unmake(m)
	require.Equal(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", pos.FEN())
}

func TestCastlingThroughCheckRejected(t *testing.T) {
	// A black rook on f8 attacks f1, the square the white king must pass
	// through to castle kingside.
	pos := mustFEN(t, "k4r2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	var castles []Move
	pos.generateCastles(func(m Move) bool {
		castles = append(castles, m)
		return true
	})
	for _, m := range castles {
		require.NotEqual(t, CastleWK, m.Flag, "kingside castle must not be generated through check")
	}
}

func TestMakeRejectsMoveIntoCheck(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	m := Move{From: SquareE1, To: RankFile(1, 3), Flag: Quiet, Piece: WhiteKing}
	ok := pos.Make(&m)
	require.False(t, ok, "moving the king to d2 still leaves it on the e-file rook's attack")
	pos.Unmake(m)
	require.NoError(t, pos.Verify())
}

func TestThreefoldRepetition(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	knightShuffle := []Move{
		{From: SquareE1, To: SquareD1, Flag: Quiet, Piece: WhiteKing},
		{From: SquareE8, To: SquareD8, Flag: Quiet, Piece: BlackKing},
		{From: SquareD1, To: SquareE1, Flag: Quiet, Piece: WhiteKing},
		{From: SquareD8, To: SquareE8, Flag: Quiet, Piece: BlackKing},
	}
	require.False(t, pos.IsThreefoldRepetition())
	for round := 0; round < 2; round++ {
		for _, m := range knightShuffle {
			mv := m
			pos.Make(&mv)
		}
	}
	require.True(t, pos.IsThreefoldRepetition())
}

func TestKingSquareAndIsInCheck(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.Equal(t, SquareE1, pos.KingSquare(White))
	require.True(t, pos.IsInCheck(White))
	require.False(t, pos.IsInCheck(Black))
}
