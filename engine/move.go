// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// MoveFlag discriminates the kind of a Move, as required by spec.md §3:
// quiet/capture/double-push/en-passant/promotion/castle, with the promoted
// piece folded into the Promote* variants.
type MoveFlag uint8

const (
	Quiet MoveFlag = iota
	Capture
	DoublePush
	EnPassant
	PromoteN
	PromoteB
	PromoteR
	PromoteQ
	PromoteNCapture
	PromoteBCapture
	PromoteRCapture
	PromoteQCapture
	CastleWK
	CastleWQ
	CastleBK
	CastleBQ
)

// IsPromotion returns whether the flag is one of the eight promotion kinds.
func (f MoveFlag) IsPromotion() bool { return f >= PromoteN && f <= PromoteQCapture }

// IsCastle returns whether the flag is one of the four castling kinds.
func (f MoveFlag) IsCastle() bool { return f >= CastleWK && f <= CastleBQ }

// IsCapture returns whether the flag denotes a move that removes an enemy
// piece from the board (ordinary capture, en passant, or capture-promotion).
func (f MoveFlag) IsCapture() bool {
	return f == Capture || f == EnPassant || (f >= PromoteNCapture && f <= PromoteQCapture)
}

// promotionFigure maps a promotion flag to the figure it produces.
var promotionFigure = [16]Figure{
	PromoteN: Knight, PromoteB: Bishop, PromoteR: Rook, PromoteQ: Queen,
	PromoteNCapture: Knight, PromoteBCapture: Bishop, PromoteRCapture: Rook, PromoteQCapture: Queen,
}

// Move is a self-sufficient encoding of one pseudo-legal move.
//
// It carries, in addition to from/to/flag/capture/promotion, a snapshot of
// the castling rights and en-passant state that held immediately BEFORE the
// move was made. Generation leaves those snapshot fields zero; Position.Make
// overwrites them with the actual pre-move state (see §4.7 of SPEC_FULL.md),
// which is what makes the Move alone sufficient for Position.Unmake -- the
// caller never needs a side undo stack.
type Move struct {
	From, To Square
	Flag     MoveFlag
	Piece    Piece // the piece that moved (before promotion)
	Capture  Piece // the piece captured, or NoPiece

	PriorCastleRights Castle
	PriorEPFile       int8 // -1 if there was no en-passant file before this move
	PriorHalfmove     int32
}

// NullMove is the distinguished zero-valued move used as a sentinel for
// "no move" and as the argument to Position.MakeNull/UnmakeNull.
var NullMove = Move{}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool { return m == NullMove }

// PromotionFigure returns the figure promoted to, or NoFigure if m is not a
// promotion.
func (m Move) PromotionFigure() Figure { return promotionFigure[m.Flag] }

// IsQuiet returns true if the move is neither a capture nor a promotion.
// Used by move ordering and LMR eligibility.
func (m Move) IsQuiet() bool { return !m.Flag.IsCapture() && !m.Flag.IsPromotion() }

// IsViolent returns true if the move can change material balance
// significantly: captures (including en passant) and promotions.
func (m Move) IsViolent() bool { return m.Flag.IsCapture() || m.Flag.IsPromotion() }

// CaptureSquare returns the square the captured piece sits on. For en
// passant this is the square behind To, not To itself.
func (m Move) CaptureSquare() Square {
	if m.Flag == EnPassant {
		if m.Piece.Color() == White {
			return m.To - 8
		}
		return m.To + 8
	}
	return m.To
}

// UCI renders the move in long algebraic notation: from-square, to-square,
// and for promotions a lowercase promoted-piece letter.
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if pf := m.PromotionFigure(); pf != NoFigure {
		s += string(rune(figureToSymbol[pf][0] + 'a' - 'A'))
	}
	return s
}

func (m Move) String() string { return m.UCI() }

// Castle is a bitmask of the four castling rights.
type Castle uint8

const (
	WhiteOO Castle = 1 << iota
	WhiteOOO
	BlackOO
	BlackOOO

	NoCastle  Castle = 0
	AnyCastle Castle = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

var castleToSymbol = map[Castle]byte{WhiteOO: 'K', WhiteOOO: 'Q', BlackOO: 'k', BlackOOO: 'q'}

func (c Castle) String() string {
	if c == NoCastle {
		return "-"
	}
	var r []byte
	for _, bit := range []Castle{WhiteOO, WhiteOOO, BlackOO, BlackOOO} {
		if c&bit != 0 {
			r = append(r, castleToSymbol[bit])
		}
	}
	return string(r)
}

// CastlingRook returns the rook piece and its start/end squares for a
// castling move whose king lands on kingEnd.
func CastlingRook(kingEnd Square) (Piece, Square, Square) {
	switch kingEnd {
	case SquareG1:
		return WhiteRook, SquareH1, SquareF1
	case SquareC1:
		return WhiteRook, SquareA1, SquareD1
	case SquareG8:
		return BlackRook, SquareH8, SquareF8
	case SquareC8:
		return BlackRook, SquareA8, SquareD8
	}
	panic("CastlingRook: not a castling destination square")
}
