package engine

import (
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog/log"
)

// Searcher runs a depth-limited minimax with alpha-beta pruning. It owns the
// transposition table, so the table's lifetime is explicit: keep one Searcher
// per game session and cached scores carry across every move of the game.
//
// A Searcher is strictly single-threaded. The board is shared by reference
// down the whole recursion and mutated in place; the apply/undo discipline in
// minimax is the only thing protecting it, there is no locking.
type Searcher struct {
	tt           *TransTable
	nodesChecked uint64
}

func NewSearcher() *Searcher {
	return &Searcher{tt: newTransTable()}
}

// Nodes returns how many search nodes have been entered since the last reset.
func (s *Searcher) Nodes() uint64 { return s.nodesChecked }

// TableLen returns the number of cached positions.
func (s *Searcher) TableLen() int { return s.tt.Len() }

func (s *Searcher) ResetForNewGame() {
	s.tt.Clear()
	s.nodesChecked = 0
}

// FindBestMove picks the move for the side to move that minimizes the
// White-perspective evaluation: the engine is hard-wired to play Black.
// Returns ok=false only when there is no legal move at all, which the caller
// must treat as the game being over.
func (s *Searcher) FindBestMove(b *dragontoothmg.Board, depth int8) (bestMove dragontoothmg.Move, bestScore int32, ok bool) {
	start := time.Now()

	var alpha int32 = -MaxScore
	var beta int32 = MaxScore
	// Start above the mate sentinel so the first candidate always becomes the
	// running best, even when every reply loses.
	bestScore = MaxScore + 1

	moves := OrderMoves(b, b.GenerateLegalMoves())
	if len(moves) == 0 {
		return bestMove, 0, false
	}

	for _, move := range moves {
		unapply := b.Apply(move)
		score := s.minimax(b, depth-1, alpha, beta, true)
		unapply()

		if score < bestScore {
			bestScore = score
			bestMove = move
			beta = Min32(beta, score)
		}
	}

	log.Debug().
		Int8("depth", depth).
		Uint64("nodes", s.nodesChecked).
		Int("ttEntries", s.tt.Len()).
		Dur("elapsed", time.Since(start)).
		Str("bestmove", bestMove.String()).
		Msg("search finished")

	return bestMove, bestScore, true
}

// minimax evaluates one game-tree node and returns its White-perspective
// score. Alpha and beta travel by value into each child; siblings at this
// node share and tighten the same pair. Every move applied to the board is
// undone before the function returns, so the caller's position survives
// bit for bit.
func (s *Searcher) minimax(b *dragontoothmg.Board, depth int8, alpha int32, beta int32, maximizing bool) int32 {
	s.nodesChecked++

	key := ttKey{pos: b.ToFen(), depth: depth, maximizing: maximizing}
	if score, found := s.tt.Probe(key); found {
		return score
	}

	moves := b.GenerateLegalMoves()
	if depth == 0 || len(moves) == 0 || InsufficientMaterial(b) {
		score := Evaluation(b)
		s.tt.Store(key, score)
		return score
	}

	var best int32
	if maximizing {
		best = -MaxScore
		for _, move := range OrderMoves(b, moves) {
			unapply := b.Apply(move)
			score := s.minimax(b, depth-1, alpha, beta, false)
			unapply()

			best = Max32(best, score)
			alpha = Max32(alpha, score)
			if beta <= alpha {
				break
			}
		}
	} else {
		best = MaxScore
		for _, move := range OrderMoves(b, moves) {
			unapply := b.Apply(move)
			score := s.minimax(b, depth-1, alpha, beta, true)
			unapply()

			best = Min32(best, score)
			beta = Min32(beta, score)
			if beta <= alpha {
				break
			}
		}
	}

	s.tt.Store(key, best)
	return best
}
