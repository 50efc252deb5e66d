// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command perft is a move-generator correctness and benchmarking tool.
//
// It counts nodes, captures, en-passant captures, castles and promotions
// reachable from a position at a fixed depth -- the standard perft
// exercise used to validate a chess move generator bit for bit.
//
// Examples:
//
//	$ perft -fen startpos -depth 5
//	$ perft -fen kiwipete -depth 4 -divide
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/corvidchess/corvid/engine"
)

var (
	fen    = flag.String("fen", "startpos", "position to search (FEN, or one of: startpos, kiwipete, duplain, pos4)")
	depth  = flag.Int("depth", 5, "depth to search")
	divide = flag.Bool("divide", false, "print the per-root-move subtree count instead of the total")
)

var known = map[string]string{
	"startpos": "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"duplain":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"pos4":     "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
}

// counters tallies the leaf-level breakdown perft traditionally reports.
type counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
}

func (c *counters) add(o counters) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassant += o.EnPassant
	c.Castles += o.Castles
	c.Promotions += o.Promotions
}

// Perft walks every legal move to depth, tallying leaf statistics. depth=0
// counts the current position itself as a single node.
func Perft(pos *engine.Position, depth int) counters {
	if depth == 0 {
		return counters{Nodes: 1}
	}

	var total counters
	pos.GenerateMoves(func(m engine.Move) bool {
		mv := m
		if !pos.Make(&mv) {
			pos.Unmake(mv)
			return true
		}

		if depth == 1 {
			switch {
			case mv.Flag == engine.EnPassant:
				total.EnPassant++
				total.Captures++
			case mv.Flag.IsCastle():
				total.Castles++
			case mv.Flag.IsCapture():
				total.Captures++
			}
			if mv.Flag.IsPromotion() {
				total.Promotions++
			}
		}

		total.add(Perft(pos, depth-1))
		pos.Unmake(mv)
		return true
	})
	return total
}

// Divide reports, for each legal root move, the node count of its subtree
// at depth-1 -- the standard way to bisect a perft mismatch against a
// reference engine.
func Divide(pos *engine.Position, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	pos.GenerateMoves(func(m engine.Move) bool {
		mv := m
		if !pos.Make(&mv) {
			pos.Unmake(mv)
			return true
		}
		out[pos.MoveToUCI(mv)] = Perft(pos, depth-1).Nodes
		pos.Unmake(mv)
		return true
	})
	return out
}

func main() {
	flag.Parse()

	position := *fen
	if alias, ok := known[*fen]; ok {
		position = alias
	}
	pos, err := engine.PositionFromFEN(position)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", position, err)
	}

	fmt.Printf("searching %q to depth %d\n", position, *depth)
	start := time.Now()

	if *divide {
		counts := Divide(pos, *depth)
		for move, n := range counts {
			fmt.Printf("%s: %d\n", move, n)
		}
		return
	}

	result := Perft(pos, *depth)
	elapsed := time.Since(start)
	var nps float64
	if elapsed > 0 {
		nps = float64(result.Nodes) / elapsed.Seconds()
	}
	fmt.Printf("nodes %d captures %d enpassant %d castles %d promotions %d  (%.0f N/s, %s)\n",
		result.Nodes, result.Captures, result.EnPassant, result.Castles, result.Promotions, nps, elapsed)
}
