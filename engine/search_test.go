// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchFindsMateInOne(t *testing.T) {
	// Scholar's mate: the bishop on c4 defends f7, so Qh5xf7 is mate.
	pos := mustFEN(t, "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	tt := NewHashTable(1)
	e := NewEngine(tt, DefaultConfig(), nil)
	e.SetPosition(pos)

	result := e.SearchRoot(NewFixedDepthTimeControl(2))
	require.Equal(t, "h5f7", pos.MoveToUCI(result.BestMove))
	require.True(t, IsMateScore(result.Score))
}

func TestSearchTakesHangingQueen(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/3q4/3R4/8/8/4K3 w - - 0 1")
	tt := NewHashTable(1)
	e := NewEngine(tt, DefaultConfig(), nil)
	e.SetPosition(pos)

	result := e.SearchRoot(NewFixedDepthTimeControl(2))
	require.Equal(t, RankFile(3, 3), result.BestMove.From, "rook should capture the undefended queen")
	require.Equal(t, RankFile(4, 3), result.BestMove.To)
}

func TestSearchDetectsStalemateAsZeroScore(t *testing.T) {
	pos := mustFEN(t, "k7/2K5/1Q6/8/8/8/8/8 b - - 0 1")
	tt := NewHashTable(1)
	e := NewEngine(tt, DefaultConfig(), nil)
	e.SetPosition(pos)

	result := e.SearchRoot(NewFixedDepthTimeControl(2))
	require.Equal(t, int32(0), result.Score)
}

func TestSearchRootReportsIncreasingDepth(t *testing.T) {
	pos := NewPosition()
	tt := NewHashTable(1)
	e := NewEngine(tt, DefaultConfig(), nil)
	e.SetPosition(pos)

	result := e.SearchRoot(NewFixedDepthTimeControl(3))
	require.Equal(t, int32(3), result.Depth)
	require.False(t, result.BestMove.IsNull())
}

func TestMateScoreIsPlyAware(t *testing.T) {
	require.Greater(t, mateScore(2), mateScore(0))
	require.True(t, IsMateScore(mateScore(0)))
	require.False(t, IsMateScore(0))
}
