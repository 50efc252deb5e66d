// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// position.go is the hybrid board representation of spec.md §3/§4.3: two
// bitboard arrays (by figure, by color) that together stand in for the
// twelve piece bitboards, a mirrored square array, and the incrementally
// maintained Zobrist key and repetition history.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// castleMask[sq] is the set of castling rights lost the moment a piece
// moves off of, or onto, sq -- the rook corners and the two king squares.
var castleMask [SquareArraySize]Castle

func init() {
	castleMask[SquareA1] = WhiteOOO
	castleMask[SquareE1] = WhiteOO | WhiteOOO
	castleMask[SquareH1] = WhiteOO
	castleMask[SquareA8] = BlackOOO
	castleMask[SquareE8] = BlackOO | BlackOOO
	castleMask[SquareH8] = BlackOO
}

// Position is a complete, mutable chess position.
//
// byFigure and byColor play the role spec.md's "twelve piece bitboards"
// describe: PieceBB(pi) = byFigure[pi.Figure()] & byColor[pi.Color()]
// reconstructs any one of the twelve, and byColor[White]|byColor[Black] is
// the occupied bitboard, derived rather than stored separately.
type Position struct {
	byFigure [FigureArraySize]Bitboard
	byColor  [ColorArraySize]Bitboard
	board    [SquareArraySize]Piece

	sideToMove Color
	castle     Castle
	epFile     int8 // -1 if none, else the file of the en-passant target
	key        uint64

	halfmoveClock  int32
	fullmoveNumber int32

	// keyHistory[i] is the key of the position BEFORE the i-th make still on
	// the stack; lastIrreversible is the smallest index that can still
	// repeat (everything before it is unreachable after an irreversible
	// move). resetStack saves the lastIrreversible value to restore on
	// Unmake; nullEPStack plays the same role for MakeNull/UnmakeNull.
	keyHistory       []uint64
	resetStack       []int
	nullEPStack      []int8
	lastIrreversible int
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	pos, err := PositionFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic(err)
	}
	return pos
}

// PositionFromFEN parses the six-field FEN description of spec.md §6.
func PositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("invalid fen %q: need at least 4 fields, got %d", fen, len(fields))
	}

	pos := &Position{epFile: -1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid fen %q: need 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		r := 7 - i
		f := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += int(ch - '0')
				continue
			}
			pi, ok := symbolToPiece[byte(ch)]
			if !ok {
				return nil, fmt.Errorf("invalid fen %q: bad piece symbol %q", fen, ch)
			}
			if f >= 8 {
				return nil, fmt.Errorf("invalid fen %q: rank %d has too many squares", fen, r+1)
			}
			pos.Put(pi, RankFile(r, f))
			f++
		}
		if f != 8 {
			return nil, fmt.Errorf("invalid fen %q: rank %d has %d squares, want 8", fen, r+1, f)
		}
	}

	switch fields[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
		pos.key ^= zobristColor
	default:
		return nil, fmt.Errorf("invalid fen %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				pos.castle |= WhiteOO
			case 'Q':
				pos.castle |= WhiteOOO
			case 'k':
				pos.castle |= BlackOO
			case 'q':
				pos.castle |= BlackOOO
			default:
				return nil, fmt.Errorf("invalid fen %q: bad castling rights %q", fen, fields[2])
			}
		}
	}
	pos.key ^= castleZobrist(pos.castle)

	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("invalid fen %q: bad en-passant square %q", fen, fields[3])
		}
		pos.epFile = int8(sq.File())
		pos.key ^= zobristEnpassant[pos.epFile]
	}

	pos.halfmoveClock = 0
	pos.fullmoveNumber = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			pos.halfmoveClock = int32(n)
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			pos.fullmoveNumber = int32(n)
		}
	}

	if (pos.byFigure[King] & pos.byColor[White]).Popcnt() != 1 {
		return nil, fmt.Errorf("invalid fen %q: white must have exactly one king", fen)
	}
	if (pos.byFigure[King] & pos.byColor[Black]).Popcnt() != 1 {
		return nil, fmt.Errorf("invalid fen %q: black must have exactly one king", fen)
	}
	return pos, nil
}

// FEN serializes pos back to the six-field format PositionFromFEN accepts.
func (pos *Position) FEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			pi := pos.board[RankFile(r, f)]
			if pi == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceToSymbol[pi])
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.castle.String())

	sb.WriteByte(' ')
	if pos.epFile >= 0 {
		r := 2
		if pos.sideToMove == White {
			r = 5
		}
		sb.WriteString(RankFile(r, int(pos.epFile)).String())
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", pos.halfmoveClock, pos.fullmoveNumber)
	return sb.String()
}

func (pos *Position) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			sb.WriteString(pos.board[RankFile(r, f)].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "side to move: %v  castle: %v  ep file: ", pos.sideToMove, pos.castle)
	if pos.epFile >= 0 {
		fmt.Fprintf(&sb, "%d", pos.epFile)
	} else {
		sb.WriteByte('-')
	}
	return sb.String()
}

// Clone returns an independent copy of pos; mutating the copy never affects
// the original. Used by the Lazy-SMP extension point, where each worker
// needs its own Position sharing nothing but the immutable global tables.
func (pos *Position) Clone() *Position {
	clone := *pos
	clone.keyHistory = append([]uint64(nil), pos.keyHistory...)
	clone.resetStack = append([]int(nil), pos.resetStack...)
	clone.nullEPStack = append([]int8(nil), pos.nullEPStack...)
	return &clone
}

// Put places pi on sq, which must currently be empty.
func (pos *Position) Put(pi Piece, sq Square) {
	bb := sq.Bitboard()
	pos.byFigure[pi.Figure()] |= bb
	pos.byColor[pi.Color()] |= bb
	pos.board[sq] = pi
	pos.key ^= zobristPiece[pi][sq]
}

// Remove takes pi off sq, which must currently hold pi.
func (pos *Position) Remove(pi Piece, sq Square) {
	bb := sq.Bitboard()
	pos.byFigure[pi.Figure()] &^= bb
	pos.byColor[pi.Color()] &^= bb
	pos.board[sq] = NoPiece
	pos.key ^= zobristPiece[pi][sq]
}

// TogglePiece is spec.md §4.3's toggle_piece primitive: it removes pi from
// sq if pi is already there, or places it otherwise, updating bitboards,
// square array and Zobrist key together. Make/Unmake and FEN loading use
// the more explicit Put/Remove pair above instead, since one square can
// briefly be home to two different pieces within a single capturing move;
// TogglePiece suits callers where a square's occupancy by pi is the only
// state in play.
func (pos *Position) TogglePiece(pi Piece, sq Square) {
	if pos.board[sq] == pi {
		pos.Remove(pi, sq)
	} else {
		pos.Put(pi, sq)
	}
}

// PieceAt returns the piece occupying sq, or NoPiece.
func (pos *Position) PieceAt(sq Square) Piece { return pos.board[sq] }

// PieceBB returns the bitboard of every square holding pi.
func (pos *Position) PieceBB(pi Piece) Bitboard {
	return pos.byFigure[pi.Figure()] & pos.byColor[pi.Color()]
}

// FigureBB returns the bitboard of every square holding fig, either color.
func (pos *Position) FigureBB(fig Figure) Bitboard { return pos.byFigure[fig] }

// ColorBB returns the bitboard of every square holding a piece of color c.
func (pos *Position) ColorBB(c Color) Bitboard { return pos.byColor[c] }

// Occupied returns the union of every occupied square.
func (pos *Position) Occupied() Bitboard { return pos.byColor[White] | pos.byColor[Black] }

// SideToMove returns the color to move.
func (pos *Position) SideToMove() Color { return pos.sideToMove }

// CastleRights returns the full castling-rights bitmask.
func (pos *Position) CastleRights() Castle { return pos.castle }

// CanCastle reports whether every right in c is currently held.
func (pos *Position) CanCastle(c Castle) bool { return pos.castle&c == c }

// EPFile returns the en-passant target file, or -1 if none is set.
func (pos *Position) EPFile() int8 { return pos.epFile }

// Key returns the current Zobrist key.
func (pos *Position) Key() uint64 { return pos.key }

// Ply returns the number of half-moves made since the position was built.
func (pos *Position) Ply() int32 { return int32(len(pos.keyHistory)) }

// HalfmoveClock returns the 50-move-rule half-move counter.
func (pos *Position) HalfmoveClock() int32 { return pos.halfmoveClock }

// KingSquare returns the square of c's king. Undefined if c has no king,
// which Verify (and PositionFromFEN) guarantee never happens.
func (pos *Position) KingSquare(c Color) Square {
	return (pos.byColor[c] & pos.byFigure[King]).AsSquare()
}

// FlipSideToMove flips the side to move and its Zobrist contribution,
// without touching anything else. Exposed per spec.md §4.3; MakeNull and
// UnmakeNull build on it.
func (pos *Position) FlipSideToMove() {
	pos.sideToMove = pos.sideToMove.Opposite()
	pos.key ^= zobristColor
}

// IsAttacked reports whether any piece of color by attacks sq, per spec.md
// §4.6: build the attack pattern as if the attacked piece type sat on sq,
// and test it against the real pieces of that type.
func (pos *Position) IsAttacked(sq Square, by Color) bool {
	occ := pos.Occupied()
	enemy := pos.byColor[by]

	if KnightAttack(sq)&enemy&pos.byFigure[Knight] != 0 {
		return true
	}
	if KingAttack(sq)&enemy&pos.byFigure[King] != 0 {
		return true
	}
	if PawnAttack(by.Opposite(), sq)&enemy&pos.byFigure[Pawn] != 0 {
		return true
	}
	rq := enemy & (pos.byFigure[Rook] | pos.byFigure[Queen])
	if rq != 0 && RookAttack(sq, occ)&rq != 0 {
		return true
	}
	bq := enemy & (pos.byFigure[Bishop] | pos.byFigure[Queen])
	if bq != 0 && BishopAttack(sq, occ)&bq != 0 {
		return true
	}
	return false
}

// IsInCheck reports whether c's king is currently attacked.
func (pos *Position) IsInCheck(c Color) bool {
	return pos.IsAttacked(pos.KingSquare(c), c.Opposite())
}

// Make mutates pos by playing m, which must be one of pos's own
// pseudo-legal moves. It fills in m's PriorCastleRights/PriorEPFile/
// PriorHalfmove fields with the state that held immediately before the
// move -- per spec.md §4.7, making m alone sufficient for Unmake -- and
// returns false if the move leaves the mover's own king attacked, in which
// case the caller must call Unmake(m) immediately and discard it.
func (pos *Position) Make(m *Move) bool {
	m.PriorCastleRights = pos.castle
	m.PriorEPFile = pos.epFile
	m.PriorHalfmove = pos.halfmoveClock

	pos.resetStack = append(pos.resetStack, pos.lastIrreversible)
	pos.keyHistory = append(pos.keyHistory, pos.key)

	us := pos.sideToMove

	if pos.epFile >= 0 {
		pos.key ^= zobristEnpassant[pos.epFile]
		pos.epFile = -1
	}

	switch {
	case m.Flag == EnPassant:
		pos.Remove(m.Capture, m.CaptureSquare())
	case m.Flag.IsCapture():
		pos.Remove(m.Capture, m.To)
	}

	pos.Remove(m.Piece, m.From)
	if pf := m.PromotionFigure(); pf != NoFigure {
		pos.Put(ColorFigure(us, pf), m.To)
	} else {
		pos.Put(m.Piece, m.To)
	}

	switch m.Flag {
	case DoublePush:
		pos.epFile = int8(m.To.File())
		pos.key ^= zobristEnpassant[pos.epFile]
	case CastleWK, CastleWQ, CastleBK, CastleBQ:
		rook, rookFrom, rookTo := CastlingRook(m.To)
		pos.Remove(rook, rookFrom)
		pos.Put(rook, rookTo)
	}

	irreversible := m.Flag.IsCapture() || m.Piece.Figure() == Pawn || m.Flag.IsCastle()

	pos.key ^= castleZobrist(pos.castle)
	pos.castle &^= castleMask[m.From] | castleMask[m.To]
	pos.key ^= castleZobrist(pos.castle)
	if pos.castle != m.PriorCastleRights {
		irreversible = true
	}

	if m.Piece.Figure() == Pawn || m.Flag.IsCapture() {
		pos.halfmoveClock = 0
	} else {
		pos.halfmoveClock++
	}
	if us == Black {
		pos.fullmoveNumber++
	}

	pos.FlipSideToMove()

	if irreversible {
		pos.lastIrreversible = len(pos.keyHistory)
	}

	return !pos.IsAttacked(pos.KingSquare(us), us.Opposite())
}

// Unmake reverses m, which must be the most recent move played by Make (or
// an illegal move immediately after Make returned false on it). It exactly
// restores pos, including the Zobrist key and repetition history, to its
// pre-make state.
func (pos *Position) Unmake(m Move) {
	us := pos.sideToMove.Opposite()
	pos.FlipSideToMove()
	if us == Black {
		pos.fullmoveNumber--
	}

	pos.key ^= castleZobrist(pos.castle)
	pos.castle = m.PriorCastleRights
	pos.key ^= castleZobrist(pos.castle)

	pos.halfmoveClock = m.PriorHalfmove

	switch m.Flag {
	case CastleWK, CastleWQ, CastleBK, CastleBQ:
		rook, rookFrom, rookTo := CastlingRook(m.To)
		pos.Remove(rook, rookTo)
		pos.Put(rook, rookFrom)
	}

	if pf := m.PromotionFigure(); pf != NoFigure {
		pos.Remove(ColorFigure(us, pf), m.To)
	} else {
		pos.Remove(m.Piece, m.To)
	}
	pos.Put(m.Piece, m.From)

	switch {
	case m.Flag == EnPassant:
		pos.Put(m.Capture, m.CaptureSquare())
	case m.Flag.IsCapture():
		pos.Put(m.Capture, m.To)
	}

	if pos.epFile >= 0 {
		pos.key ^= zobristEnpassant[pos.epFile]
	}
	pos.epFile = m.PriorEPFile
	if pos.epFile >= 0 {
		pos.key ^= zobristEnpassant[pos.epFile]
	}

	pos.lastIrreversible = pos.resetStack[len(pos.resetStack)-1]
	pos.resetStack = pos.resetStack[:len(pos.resetStack)-1]
	pos.keyHistory = pos.keyHistory[:len(pos.keyHistory)-1]
}

// MakeNull flips the side to move without moving a piece, for null-move
// pruning. The caller must not call this while the side to move is in
// check. The en-passant file is cleared and stashed for UnmakeNull.
func (pos *Position) MakeNull() {
	pos.resetStack = append(pos.resetStack, pos.lastIrreversible)
	pos.keyHistory = append(pos.keyHistory, pos.key)
	pos.nullEPStack = append(pos.nullEPStack, pos.epFile)

	if pos.epFile >= 0 {
		pos.key ^= zobristEnpassant[pos.epFile]
		pos.epFile = -1
	}
	pos.FlipSideToMove()
	pos.lastIrreversible = len(pos.keyHistory)
}

// UnmakeNull reverses the most recent MakeNull, restoring the en-passant
// file and Zobrist key exactly -- the stashed-file approach resolves
// spec.md §9's open question about null-unmake exactness by construction,
// rather than leaving it to a best-effort reconstruction.
func (pos *Position) UnmakeNull() {
	pos.FlipSideToMove()

	n := len(pos.nullEPStack) - 1
	prevEP := pos.nullEPStack[n]
	pos.nullEPStack = pos.nullEPStack[:n]

	if pos.epFile >= 0 {
		pos.key ^= zobristEnpassant[pos.epFile]
	}
	pos.epFile = prevEP
	if pos.epFile >= 0 {
		pos.key ^= zobristEnpassant[pos.epFile]
	}

	pos.lastIrreversible = pos.resetStack[len(pos.resetStack)-1]
	pos.resetStack = pos.resetStack[:len(pos.resetStack)-1]
	pos.keyHistory = pos.keyHistory[:len(pos.keyHistory)-1]
}

// IsThreefoldRepetition reports whether the current key has occurred at
// least twice since the last irreversible move, making the current
// occurrence the third -- spec.md §4.12.
func (pos *Position) IsThreefoldRepetition() bool {
	count := 1
	for i := len(pos.keyHistory) - 1; i >= pos.lastIrreversible; i-- {
		if pos.keyHistory[i] == pos.key {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// computeKey recomputes the Zobrist key from scratch, for Verify.
func (pos *Position) computeKey() uint64 {
	var key uint64
	for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
		if pi := pos.board[sq]; pi != NoPiece {
			key ^= zobristPiece[pi][sq]
		}
	}
	if pos.sideToMove == Black {
		key ^= zobristColor
	}
	key ^= castleZobrist(pos.castle)
	if pos.epFile >= 0 {
		key ^= zobristEnpassant[pos.epFile]
	}
	return key
}

// Verify checks every invariant spec.md §8 requires to hold between public
// operations; it is not on any hot path and exists for tests and debug
// assertions.
func (pos *Position) Verify() error {
	var occ Bitboard
	for fig := FigureMinValue; fig <= FigureMaxValue; fig++ {
		occ |= pos.byFigure[fig]
	}
	if occ != pos.Occupied() {
		return fmt.Errorf("occupied is not the union of the per-figure bitboards")
	}

	for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
		pi := pos.board[sq]
		if pi == NoPiece {
			if pos.Occupied().Has(sq) {
				return fmt.Errorf("square %v: board says empty, bitboards say occupied", sq)
			}
			continue
		}
		if !pos.PieceBB(pi).Has(sq) {
			return fmt.Errorf("square %v: board says %v, bitboards disagree", sq, pi)
		}
	}

	if n := (pos.byFigure[King] & pos.byColor[White]).Popcnt(); n != 1 {
		return fmt.Errorf("white has %d kings, want 1", n)
	}
	if n := (pos.byFigure[King] & pos.byColor[Black]).Popcnt(); n != 1 {
		return fmt.Errorf("black has %d kings, want 1", n)
	}

	if want := pos.computeKey(); want != pos.key {
		return fmt.Errorf("zobrist key %#x does not match recomputed %#x", pos.key, want)
	}
	return nil
}
