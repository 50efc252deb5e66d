// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// config.go loads the engine's tunable search/eval constants from an
// optional TOML file, falling back to compiled-in defaults that match the
// teacher engine's hard-coded constants.
package engine

import "github.com/BurntSushi/toml"

// Config holds every constant the search and TT consult. The TOML keys are
// the snake_case names given in the struct tags.
type Config struct {
	HashSizeMB int `toml:"hash_size_mb"`

	NullMoveDepthLimit   int32 `toml:"null_move_depth_limit"`
	NullMoveReduction    int32 `toml:"null_move_reduction"`
	LMRDepthLimit        int32 `toml:"lmr_depth_limit"`
	LMRMinMoveIndex      int   `toml:"lmr_min_move_index"`
	FutilityDepthLimit   int32 `toml:"futility_depth_limit"`
	FutilityMargin       int32 `toml:"futility_margin"`
	InitialAspiration    int32 `toml:"initial_aspiration_window"`
	CheckDepthExtension  int32 `toml:"check_depth_extension"`
	NodesPerTimeCheck    uint64 `toml:"nodes_per_time_check"`
	MaxSearchDepth       int32 `toml:"max_search_depth"`
}

// DefaultConfig returns the constants the engine runs with when no config
// file is loaded -- chosen to match the teacher's compiled-in values.
func DefaultConfig() Config {
	return Config{
		HashSizeMB:          64,
		NullMoveDepthLimit:  4,
		NullMoveReduction:   3,
		LMRDepthLimit:       2,
		LMRMinMoveIndex:     3,
		FutilityDepthLimit:  3,
		FutilityMargin:      125,
		InitialAspiration:   25,
		CheckDepthExtension: 1,
		NodesPerTimeCheck:   4096,
		MaxSearchDepth:      64,
	}
}

// LoadConfig reads a TOML file at path, applying it over DefaultConfig so
// an omitted field keeps its default rather than zeroing out.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
