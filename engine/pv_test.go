// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPVLineEmptyHasNullBestAndPonder(t *testing.T) {
	var pv pvLine
	require.True(t, pv.Best().IsNull())
	require.True(t, pv.Ponder().IsNull())
	require.Empty(t, pv.Moves())
}

func TestPVLineSetPrependsBestMove(t *testing.T) {
	e7 := RankFile(6, 4)
	e2 := RankFile(1, 4)

	var child pvLine
	child.set(Move{From: e7, To: RankFile(4, 4)}, nil)

	var pv pvLine
	pv.set(Move{From: e2, To: RankFile(3, 4)}, &child)

	require.Equal(t, e2, pv.Best().From)
	require.Equal(t, e7, pv.Ponder().From)
	require.Len(t, pv.Moves(), 2)
}
