// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command corvid is a thin demonstration driver for the engine package: it
// reads a FEN and a search depth from argv, runs one search, and prints the
// best move. It is not a UCI implementation -- wiring the full line-oriented
// protocol is a separate, driver-level concern the engine package stays
// agnostic to.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/corvidchess/corvid/engine"
)

var (
	fen     = flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "position to search")
	depth   = flag.Int("depth", 6, "maximum depth to search")
	hashMB  = flag.Int("hash", 64, "transposition table size in MB")
	config  = flag.String("config", "", "optional TOML file overriding the default search constants")
	verbose = flag.Bool("v", false, "log search progress")
	workers = flag.Int("workers", 1, "number of Lazy-SMP workers (1 disables it)")
)

func main() {
	flag.Parse()

	pos, err := engine.PositionFromFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	cfg := engine.DefaultConfig()
	if *config != "" {
		cfg, err = engine.LoadConfig(*config)
		if err != nil {
			log.Fatalf("loading config %q: %v", *config, err)
		}
	}
	cfg.HashSizeMB = *hashMB

	var logger engine.Logger = engine.NulLogger{}
	if *verbose {
		logger = engine.NewOpLogger("corvid")
	}

	tt := engine.NewHashTable(cfg.HashSizeMB)
	tc := engine.NewFixedDepthTimeControl(int32(*depth))

	var result engine.Result
	if *workers > 1 {
		result, err = engine.RunLazySMP(context.Background(), *workers, pos, cfg, tt, logger, tc)
		if err != nil {
			log.Fatalf("search failed: %v", err)
		}
	} else {
		eng := engine.NewEngine(tt, cfg, logger)
		eng.SetPosition(pos)
		result = eng.SearchRoot(tc)
	}

	fmt.Printf("bestmove %s score %d depth %d nodes %d\n",
		pos.MoveToUCI(result.BestMove), result.Score, result.Depth, result.Stats.Nodes)
}
