// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZobristConstantsAreDistinct(t *testing.T) {
	seen := map[uint64]string{}
	add := func(label string, v uint64) {
		if other, ok := seen[v]; ok {
			t.Fatalf("zobrist collision between %s and %s", label, other)
		}
		seen[v] = label
	}
	for pi := PieceMinValue; pi <= PieceMaxValue; pi++ {
		for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
			add("piece", zobristPiece[pi][sq])
		}
	}
	for f := 0; f < 8; f++ {
		add("ep", zobristEnpassant[f])
	}
	for i := range zobristCastle {
		add("castle", zobristCastle[i])
	}
	add("color", zobristColor)
}

func TestCastleZobristIsAdditive(t *testing.T) {
	require.Equal(t, uint64(0), castleZobrist(NoCastle))
	combo := castleZobrist(WhiteOO | BlackOOO)
	want := zobristCastle[0] ^ zobristCastle[3]
	require.Equal(t, want, combo)
}
