// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// search.go is the main search of spec.md §4.9/§4.10: iterative deepening
// over a negascout (principal-variation) alpha-beta search with
// TT-guided move ordering, null-move pruning, late-move reduction, a
// quiescence tail, and mate/stalemate detection.
package engine

import "time"

const (
	mateValue = 30000
	maxPly    = 128
)

// mateScore is the ply-aware score for "the side to move has just been
// checkmated" -- closer mates (smaller ply) score more negative, so the
// search prefers the fastest mate among equally winning lines.
func mateScore(ply int32) int32 { return -mateValue + ply }

// IsMateScore reports whether s is a mate score, for driver-side reporting.
func IsMateScore(s int32) bool { return s <= -mateValue+maxPly || s >= mateValue-maxPly }

// Engine owns one search: its shared transposition table, its tunable
// constants, its telemetry sink, and the thread-local history table
// spec.md §5 requires to never be shared across workers.
type Engine struct {
	pos    *Position
	tt     *HashTable
	cfg    Config
	logger Logger
	hist   historyTable

	tc       *TimeControl
	nodes    uint64
	ttHits   uint64
	ttProbes uint64
}

// NewEngine builds an Engine around a (possibly shared) transposition
// table. A nil logger is replaced with NulLogger.
func NewEngine(tt *HashTable, cfg Config, logger Logger) *Engine {
	if logger == nil {
		logger = NulLogger{}
	}
	return &Engine{tt: tt, cfg: cfg, logger: logger}
}

// SetPosition points the engine at pos. The engine mutates pos in place
// during search and always restores it before returning.
func (e *Engine) SetPosition(pos *Position) { e.pos = pos }

// Result is search_root's output: spec.md §6's
// (best_move, ponder_move?, best_score, depth, stats).
type Result struct {
	BestMove   Move
	PonderMove Move
	Score      int32
	Depth      int32
	Stats      Stats
}

// SearchRoot iteratively deepens until tc says to stop, reporting the best
// move of the deepest fully-completed iteration -- spec.md §4.9 step 1's
// "best move of each completed depth is reported."
func (e *Engine) SearchRoot(tc *TimeControl) Result {
	e.tc = tc
	e.nodes, e.ttHits, e.ttProbes = 0, 0, 0
	e.logger.BeginSearch()
	defer e.logger.EndSearch()

	var result Result
	var pv pvLine
	alpha, beta := int32(-mateValue-1), int32(mateValue+1)
	window := e.cfg.InitialAspiration
	if window <= 0 {
		window = 25
	}

	for depth := int32(1); tc.DepthAllowed(depth); depth++ {
		start := time.Now()

		score, timedOut := e.search(depth, alpha, beta, 0, &pv)
		if timedOut {
			break
		}
		if score <= alpha || score >= beta {
			alpha, beta = -mateValue-1, mateValue+1
			score, timedOut = e.search(depth, alpha, beta, 0, &pv)
			if timedOut {
				break
			}
		}

		elapsed := time.Since(start)
		var nps uint64
		if elapsed > 0 {
			nps = uint64(float64(e.nodes) / elapsed.Seconds())
		}
		result = Result{
			BestMove:   pv.Best(),
			PonderMove: pv.Ponder(),
			Score:      score,
			Depth:      depth,
			Stats: Stats{
				Depth: depth, Score: score, Nodes: e.nodes, NPS: nps,
				TTHits: e.ttHits, TTProbe: e.ttProbes, PV: pv.Moves(),
			},
		}
		e.logger.PrintPV(result.Stats)

		alpha, beta = score-window, score+window

		if tc.ShouldStop() || IsMateScore(score) {
			break
		}
	}
	return result
}

// negate flips a child search's score, carrying the timeout flag through
// unchanged -- used at every recursive call site so the sign flip and the
// timeout check never drift apart.
func negate(score int32, timeout bool) (int32, bool) { return -score, timeout }

// search is the negascout core, spec.md §4.9's `search(pos, depth, α, β)`.
func (e *Engine) search(depth, alpha, beta, ply int32, pv *pvLine) (int32, bool) {
	pv.clear()

	e.nodes++
	if e.nodes%e.cfg.NodesPerTimeCheck == 0 && e.tc.ShouldStop() {
		return 0, true
	}
	if ply > 0 && e.pos.IsThreefoldRepetition() {
		return 0, false
	}
	if depth <= 0 {
		return e.quiescence(alpha, beta, ply), false
	}

	origAlpha := alpha

	var ttMove Move
	e.ttProbes++
	if entry, ok := e.tt.Probe(e.pos.Key()); ok {
		e.ttHits++
		ttMove = entry.Move
		if entry.Depth >= depth {
			switch entry.Bound {
			case Exact:
				pv.set(entry.Move, nil)
				return entry.Score, false
			case LowerBound:
				if entry.Score >= beta {
					return beta, false
				}
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case UpperBound:
				if entry.Score <= alpha {
					return alpha, false
				}
				if entry.Score < beta {
					beta = entry.Score
				}
			}
		}
	}

	us := e.pos.SideToMove()
	inCheck := e.pos.IsInCheck(us)

	if !inCheck && ply > 0 && depth >= e.cfg.NullMoveDepthLimit && e.hasNonPawnMaterial(us) {
		var childPV pvLine
		e.pos.MakeNull()
		score, timeout := negate(e.search(depth-e.cfg.NullMoveReduction, -beta, -beta+1, ply+1, &childPV))
		e.pos.UnmakeNull()
		if timeout {
			return 0, true
		}
		if score >= beta {
			return beta, false
		}
	}

	moves := orderMoves(e.pos, ttMove, &e.hist)

	legalCount := 0
	best := int32(-mateValue - 1)
	var bestMove Move
	var childPV pvLine

	for _, sm := range moves {
		m := sm.move
		if !e.pos.Make(&m) {
			e.pos.Unmake(m)
			continue
		}
		legalCount++
		newDepth := depth - 1

		var score int32
		var timeout bool
		if legalCount == 1 {
			score, timeout = negate(e.search(newDepth, -beta, -alpha, ply+1, &childPV))
		} else {
			searchDepth := newDepth
			if legalCount > e.cfg.LMRMinMoveIndex && depth > e.cfg.LMRDepthLimit && m.IsQuiet() && !inCheck {
				if depth < 6 {
					searchDepth = depth - 1
				} else {
					searchDepth = depth - depth/3
				}
				if searchDepth < 0 {
					searchDepth = 0
				}
			}
			score, timeout = negate(e.search(searchDepth, -alpha-1, -alpha, ply+1, &childPV))
			if !timeout && score > alpha {
				score, timeout = negate(e.search(newDepth, -beta, -alpha, ply+1, &childPV))
			}
		}

		e.pos.Unmake(m)
		if timeout {
			return 0, true
		}

		if score > best {
			best = score
			bestMove = m
			pv.set(m, &childPV)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if m.IsQuiet() {
				e.hist.bonus(us, m.From, m.To, depth)
			}
			break
		}
	}

	if legalCount == 0 {
		if inCheck {
			return mateScore(ply), false
		}
		return 0, false
	}

	bound := Exact
	if best <= origAlpha {
		bound = UpperBound
	} else if best >= beta {
		bound = LowerBound
	}
	e.tt.Store(Entry{Key: e.pos.Key(), Move: bestMove, Score: best, Depth: depth, Bound: bound})

	return best, false
}

// quiescence is the capture-only tail search of spec.md §4.10.
func (e *Engine) quiescence(alpha, beta, ply int32) int32 {
	e.nodes++

	standPat := e.pos.Evaluate()
	if standPat >= beta {
		return standPat
	}
	best := standPat
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= maxPly {
		return best
	}

	for _, sm := range orderViolentMoves(e.pos) {
		m := sm.move
		if m.Flag.IsCapture() && m.Flag != EnPassant && e.pos.SEE(m) < 0 {
			continue
		}
		if !e.pos.Make(&m) {
			e.pos.Unmake(m)
			continue
		}
		score := -e.quiescence(-beta, -alpha, ply+1)
		e.pos.Unmake(m)

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// hasNonPawnMaterial reports whether c has any piece besides pawns and
// king -- the null-move safeguard against zugzwang-prone endgames.
func (e *Engine) hasNonPawnMaterial(c Color) bool {
	pos := e.pos
	nonPawn := pos.byFigure[Knight] | pos.byFigure[Bishop] | pos.byFigure[Rook] | pos.byFigure[Queen]
	return pos.byColor[c]&nonPawn != 0
}
