// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// movegen.go is the pseudo-legal move generator of spec.md §4.5: it emits
// moves in stages (promotions, captures, en passant, castling, king
// captures, double pushes, quiet moves, quiet pawn pushes) so that a
// caller which only wants captures -- quiescence search -- can run stages
// 1, 2, 3 and 5 without ever generating a quiet move.
package engine

// MoveSink receives generated moves one at a time. Returning false stops
// generation early -- the "lazy sequence" spec.md §9 asks for, realized
// here as a callback instead of a channel or iterator so that the common
// path never allocates a slice.
type MoveSink func(m Move) bool

const (
	rank2 = 1
	rank7 = 6
)

// GenerateMoves emits every pseudo-legal move for the side to move, in the
// stage order spec.md §4.5 lists.
func (pos *Position) GenerateMoves(emit MoveSink) {
	if !pos.generatePromotions(emit) {
		return
	}
	if !pos.generatePieceCaptures(emit) {
		return
	}
	if !pos.generateEnPassant(emit) {
		return
	}
	if !pos.generateCastles(emit) {
		return
	}
	if !pos.generateKingCaptures(emit) {
		return
	}
	if !pos.generateDoublePushes(emit) {
		return
	}
	if !pos.generateQuietPieceMoves(emit) {
		return
	}
	pos.generateQuietPawnPushes(emit)
}

// GenerateViolentMoves emits only captures and promotions, for quiescence
// search -- stages 1 through 5 of the full order, omitting stage 4
// (castling is never violent) in practice by simply never generating it.
func (pos *Position) GenerateViolentMoves(emit MoveSink) {
	if !pos.generatePromotions(emit) {
		return
	}
	if !pos.generatePieceCaptures(emit) {
		return
	}
	if !pos.generateEnPassant(emit) {
		return
	}
	pos.generateKingCaptures(emit)
}

func (pos *Position) us() Color   { return pos.sideToMove }
func (pos *Position) them() Color { return pos.sideToMove.Opposite() }

var promotionFlags = [2][4]MoveFlag{
	{PromoteN, PromoteB, PromoteR, PromoteQ},
	{PromoteNCapture, PromoteBCapture, PromoteRCapture, PromoteQCapture},
}

// generatePromotions emits every promotion (capture variants first, per
// spec.md §4.5 stage 1) for pawns sitting on the seventh (or second, for
// Black) rank.
func (pos *Position) generatePromotions(emit MoveSink) bool {
	us, them := pos.us(), pos.them()
	startRank := rank7
	if us == Black {
		startRank = rank2
	}
	pawns := pos.PieceBB(ColorFigure(us, Pawn)) & RankBb(startRank)
	occ := pos.Occupied()
	enemy := pos.byColor[them]

	for pawns != 0 {
		from := pawns.Pop()
		caps := PawnAttack(us, from) & enemy
		for dst := caps; dst != 0; {
			to := dst.Pop()
			if !pos.emitPromotions(emit, from, to, pos.PieceAt(to), true) {
				return false
			}
		}
		push := PawnPush(us, from) &^ occ
		for dst := push; dst != 0; {
			to := dst.Pop()
			if !pos.emitPromotions(emit, from, to, NoPiece, false) {
				return false
			}
		}
	}
	return true
}

func (pos *Position) emitPromotions(emit MoveSink, from, to Square, captured Piece, isCapture bool) bool {
	flags := promotionFlags[0]
	if isCapture {
		flags = promotionFlags[1]
	}
	pi := ColorFigure(pos.us(), Pawn)
	for _, flag := range flags {
		m := Move{From: from, To: to, Flag: flag, Piece: pi, Capture: captured}
		if !emit(m) {
			return false
		}
	}
	return true
}

// generatePieceCaptures emits captures by queen, rook, bishop and knight --
// spec.md §4.5 stage 2 -- followed by the ordinary pawn captures from
// generatePawnCaptures; pawn captures from the seventh rank were already
// emitted by generatePromotions.
func (pos *Position) generatePieceCaptures(emit MoveSink) bool {
	us, them := pos.us(), pos.them()
	occ := pos.Occupied()
	enemy := pos.byColor[them]

	for _, fig := range []Figure{Queen, Rook, Bishop, Knight} {
		pieces := pos.PieceBB(ColorFigure(us, fig))
		for pieces != 0 {
			from := pieces.Pop()
			att := pos.attackFrom(fig, from, occ) & enemy
			for att != 0 {
				to := att.Pop()
				m := Move{From: from, To: to, Flag: Capture, Piece: ColorFigure(us, fig), Capture: pos.PieceAt(to)}
				if !emit(m) {
					return false
				}
			}
		}
	}
	return pos.generatePawnCaptures(emit)
}

// generatePawnCaptures emits ordinary (non-promoting) pawn captures.
func (pos *Position) generatePawnCaptures(emit MoveSink) bool {
	us, them := pos.us(), pos.them()
	startRank := rank7
	if us == Black {
		startRank = rank2
	}
	pawns := pos.PieceBB(ColorFigure(us, Pawn)) &^ RankBb(startRank)
	enemy := pos.byColor[them]

	for pawns != 0 {
		from := pawns.Pop()
		caps := PawnAttack(us, from) & enemy
		for caps != 0 {
			to := caps.Pop()
			m := Move{From: from, To: to, Flag: Capture, Piece: ColorFigure(us, Pawn), Capture: pos.PieceAt(to)}
			if !emit(m) {
				return false
			}
		}
	}
	return true
}

// generateEnPassant emits the en-passant capture when the position's flag
// is set -- spec.md §4.5.2: a pawn of the side to move must sit on the
// fifth (white) or fourth (black) rank adjacent in file to the ep file.
func (pos *Position) generateEnPassant(emit MoveSink) bool {
	if pos.epFile < 0 {
		return true
	}
	us := pos.us()
	rank := 4 // 0-based rank index 4 == rank 5, white's capturing rank
	dir := +1
	if us == Black {
		rank = 3 // rank 4
		dir = -1
	}
	to := RankFile(rank+dir, int(pos.epFile))
	pawns := pos.PieceBB(ColorFigure(us, Pawn)) & RankBb(rank)

	for _, df := range []int{-1, 1} {
		f := int(pos.epFile) - df
		if f < 0 || f >= 8 {
			continue
		}
		from := RankFile(rank, f)
		if !pawns.Has(from) {
			continue
		}
		m := Move{From: from, To: to, Flag: EnPassant, Piece: ColorFigure(us, Pawn), Capture: ColorFigure(us.Opposite(), Pawn)}
		if !emit(m) {
			return false
		}
	}
	return true
}

// generateCastles emits both castling moves when legal -- spec.md §4.5.1:
// the right must still be held, the squares between king and rook empty,
// and the king's current, transit and landing squares unattacked.
func (pos *Position) generateCastles(emit MoveSink) bool {
	us, them := pos.us(), pos.them()
	occ := pos.Occupied()

	type castleSpec struct {
		right            Castle
		flag             MoveFlag
		kingFrom, kingTo Square
		between          Bitboard
	}
	var specs []castleSpec
	if us == White {
		specs = []castleSpec{
			{WhiteOO, CastleWK, SquareE1, SquareG1, SquareF1.Bitboard() | SquareG1.Bitboard()},
			{WhiteOOO, CastleWQ, SquareE1, SquareC1, SquareB1.Bitboard() | SquareC1.Bitboard() | SquareD1.Bitboard()},
		}
	} else {
		specs = []castleSpec{
			{BlackOO, CastleBK, SquareE8, SquareG8, SquareF8.Bitboard() | SquareG8.Bitboard()},
			{BlackOOO, CastleBQ, SquareE8, SquareC8, SquareB8.Bitboard() | SquareC8.Bitboard() | SquareD8.Bitboard()},
		}
	}

	for _, s := range specs {
		if !pos.CanCastle(s.right) {
			continue
		}
		if occ&s.between != 0 {
			continue
		}
		if pos.IsAttacked(s.kingFrom, them) {
			continue
		}
		transit := s.kingFrom.Relative(0, sign(s.kingTo.File()-s.kingFrom.File()))
		if pos.IsAttacked(transit, them) || pos.IsAttacked(s.kingTo, them) {
			continue
		}
		m := Move{From: s.kingFrom, To: s.kingTo, Flag: s.flag, Piece: ColorFigure(us, King)}
		if !emit(m) {
			return false
		}
	}
	return true
}

func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}

// generateKingCaptures emits the king's captures -- spec.md §4.5 stage 5,
// kept separate from the other piece captures so ordering matches the
// spec exactly even though the king has no special movegen logic otherwise.
func (pos *Position) generateKingCaptures(emit MoveSink) bool {
	us, them := pos.us(), pos.them()
	from := pos.KingSquare(us)
	att := KingAttack(from) & pos.byColor[them]
	for att != 0 {
		to := att.Pop()
		m := Move{From: from, To: to, Flag: Capture, Piece: ColorFigure(us, King), Capture: pos.PieceAt(to)}
		if !emit(m) {
			return false
		}
	}
	return true
}

// generateDoublePushes emits pawn double-pushes -- spec.md §4.5 stage 6.
func (pos *Position) generateDoublePushes(emit MoveSink) bool {
	us := pos.us()
	occ := pos.Occupied()
	startRank := BbPawnStartRank[us]
	pawns := pos.PieceBB(ColorFigure(us, Pawn)) & startRank

	for pawns != 0 {
		from := pawns.Pop()
		mid := PawnPush(us, from) &^ occ
		if mid == 0 {
			continue
		}
		midSq := mid.AsSquare()
		to := PawnPush(us, midSq) &^ occ
		if to == 0 {
			continue
		}
		m := Move{From: from, To: to.AsSquare(), Flag: DoublePush, Piece: ColorFigure(us, Pawn)}
		if !emit(m) {
			return false
		}
	}
	return true
}

// generateQuietPieceMoves emits non-pawn, non-castle quiet moves --
// spec.md §4.5 stage 7. The king's quiet step is included here too,
// since only its captures needed special-cased ordering.
func (pos *Position) generateQuietPieceMoves(emit MoveSink) bool {
	us := pos.us()
	occ := pos.Occupied()
	empty := ^occ

	for _, fig := range []Figure{Queen, Rook, Bishop, Knight, King} {
		pieces := pos.PieceBB(ColorFigure(us, fig))
		for pieces != 0 {
			from := pieces.Pop()
			quiets := pos.attackFrom(fig, from, occ) & empty
			for quiets != 0 {
				to := quiets.Pop()
				m := Move{From: from, To: to, Flag: Quiet, Piece: ColorFigure(us, fig)}
				if !emit(m) {
					return false
				}
			}
		}
	}
	return true
}

// generateQuietPawnPushes emits single pawn pushes that don't promote --
// spec.md §4.5 stage 8, the last stage.
func (pos *Position) generateQuietPawnPushes(emit MoveSink) bool {
	us := pos.us()
	occ := pos.Occupied()
	startRank := rank7
	if us == Black {
		startRank = rank2
	}
	pawns := pos.PieceBB(ColorFigure(us, Pawn)) &^ RankBb(startRank)

	for pawns != 0 {
		from := pawns.Pop()
		to := PawnPush(us, from) &^ occ
		if to == 0 {
			continue
		}
		m := Move{From: from, To: to.AsSquare(), Flag: Quiet, Piece: ColorFigure(us, Pawn)}
		if !emit(m) {
			return false
		}
	}
	return true
}

// attackFrom dispatches to the right attack table for fig, the one piece
// of knowledge every non-pawn generator stage needs.
func (pos *Position) attackFrom(fig Figure, sq Square, occ Bitboard) Bitboard {
	switch fig {
	case Knight:
		return KnightAttack(sq)
	case Bishop:
		return BishopAttack(sq, occ)
	case Rook:
		return RookAttack(sq, occ)
	case Queen:
		return QueenAttack(sq, occ)
	case King:
		return KingAttack(sq)
	}
	return 0
}
