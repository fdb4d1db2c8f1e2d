package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// Black to move: the rook on d5 can win the undefended queen on d3, the
// bishop on g4 can win the pawn on h3.
const freeQueenFEN = "4k3/8/8/3r4/6b1/3Q3P/8/4K3 b - - 0 1"

func findMove(t *testing.T, b *dragontoothmg.Board, uci string) dragontoothmg.Move {
	t.Helper()
	for _, move := range b.GenerateLegalMoves() {
		if move.String() == uci {
			return move
		}
	}
	t.Fatalf("move %s not legal in %s", uci, b.ToFen())
	return 0
}

func TestScoreMoveCaptureBonus(t *testing.T) {
	board := dragontoothmg.ParseFen(freeQueenFEN)

	rookTakesQueen := findMove(t, &board, "d5d3")
	if score := scoreMove(&board, rookTakesQueen); score != 85 {
		t.Fatalf("rook takes queen: expected 10*9-5 = 85, got %d", score)
	}

	bishopTakesPawn := findMove(t, &board, "g4h3")
	if score := scoreMove(&board, bishopTakesPawn); score != 7 {
		t.Fatalf("bishop takes pawn: expected 10*1-3 = 7, got %d", score)
	}
}

func TestScoreMovePromotionAndCheckBonus(t *testing.T) {
	board := dragontoothmg.ParseFen("k7/6P1/8/8/8/8/8/K6R w - - 0 1")

	// Promoting to a queen also checks the king on a8 along the back rank.
	promote := findMove(t, &board, "g7g8q")
	if score := scoreMove(&board, promote); score != promotionBonus+checkBonus {
		t.Fatalf("expected promotion+check score %d, got %d", promotionBonus+checkBonus, score)
	}

	check := findMove(t, &board, "h1h8")
	if score := scoreMove(&board, check); score != checkBonus {
		t.Fatalf("expected check score %d, got %d", checkBonus, score)
	}

	quiet := findMove(t, &board, "h1h2")
	if score := scoreMove(&board, quiet); score != 0 {
		t.Fatalf("expected quiet move score 0, got %d", score)
	}
}

func TestOrderMovesRanksQueenCaptureFirst(t *testing.T) {
	board := dragontoothmg.ParseFen(freeQueenFEN)

	ordered := OrderMoves(&board, board.GenerateLegalMoves())
	if len(ordered) == 0 {
		t.Fatal("no legal moves")
	}
	if got := ordered[0].String(); got != "d5d3" {
		t.Fatalf("expected the queen capture first, got %s", got)
	}
}

func TestOrderMovesDeterministicAndPure(t *testing.T) {
	board := dragontoothmg.ParseFen("r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10")
	before := board.ToFen()

	first := OrderMoves(&board, board.GenerateLegalMoves())
	second := OrderMoves(&board, board.GenerateLegalMoves())

	if len(first) != len(second) {
		t.Fatalf("ordering length changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("ordering not deterministic at index %d: %s vs %s", i, first[i].String(), second[i].String())
		}
	}
	if after := board.ToFen(); after != before {
		t.Fatalf("ordering mutated the board: %q -> %q", before, after)
	}
}
