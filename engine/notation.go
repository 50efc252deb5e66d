// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// notation.go converts between Move and the long-algebraic UCI string
// format of spec.md §6 -- SPEC_FULL.md §4.16.
package engine

import "fmt"

// MoveToUCI renders m the way Move.UCI already does; it is exposed on
// Position too since the driver looks moves up through the position that
// produced them.
func (pos *Position) MoveToUCI(m Move) string { return m.UCI() }

// ParseUCIMove decodes long algebraic notation against pos's own
// pseudo-legal moves, so the returned Move carries the right flag,
// captured piece and piece fields -- a bare from/to pair is not enough to
// reconstruct those.
func (pos *Position) ParseUCIMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NullMove, fmt.Errorf("invalid uci move %q: want 4 or 5 characters", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("invalid uci move %q: %w", s, err)
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("invalid uci move %q: %w", s, err)
	}
	var promo Figure
	if len(s) == 5 {
		fig, ok := symbolToFigure[rune(s[4])]
		if !ok {
			return NullMove, fmt.Errorf("invalid uci move %q: bad promotion piece %q", s, s[4])
		}
		promo = fig
	}

	var found Move
	ok := false
	pos.GenerateMoves(func(m Move) bool {
		if m.From != from || m.To != to {
			return true
		}
		if promo != NoFigure && m.PromotionFigure() != promo {
			return true
		}
		if promo == NoFigure && m.Flag.IsPromotion() {
			return true
		}
		found, ok = m, true
		return false
	})
	if !ok {
		return NullMove, fmt.Errorf("invalid uci move %q: not a pseudo-legal move in this position", s)
	}
	return found, nil
}
