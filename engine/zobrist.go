// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// zobrist.go builds the random constants used for incremental Zobrist
// hashing, per spec.md §4.4: one 64-bit value per (piece, square), one for
// side-to-move, one per en-passant file, one per castling right.

package engine

import "math/rand"

var (
	zobristPiece     [PieceArraySize][SquareArraySize]uint64
	zobristEnpassant [8]uint64
	zobristCastle    [4]uint64 // indexed by bit position of the single Castle right
	zobristColor     uint64    // XORed in iff Black to move
)

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func init() {
	// Seeded deterministically so that two runs of the engine -- and two
	// engines built from this source -- agree on Zobrist keys.
	r := rand.New(rand.NewSource(1))

	for pi := PieceMinValue; pi <= PieceMaxValue; pi++ {
		for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
			zobristPiece[pi][sq] = rand64(r)
		}
	}
	for f := 0; f < 8; f++ {
		zobristEnpassant[f] = rand64(r)
	}
	for i := range zobristCastle {
		zobristCastle[i] = rand64(r)
	}
	zobristColor = rand64(r)
}

// castleZobrist XORs in the Zobrist contribution of every right currently
// set in c.
func castleZobrist(c Castle) uint64 {
	var z uint64
	for i := 0; i < 4; i++ {
		if c&(1<<uint(i)) != 0 {
			z ^= zobristCastle[i]
		}
	}
	return z
}
