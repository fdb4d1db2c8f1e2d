package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// Ordering only affects how fast alpha-beta prunes, never which move wins.
// Bonus weights: captures are scored most-valuable-victim first, promotions
// and checking moves get flat boosts.
const (
	captureVictimWeight int32 = 10
	promotionBonus      int32 = 8
	checkBonus          int32 = 5
)

type scoredMove struct {
	move  dragontoothmg.Move
	score int32
}

type moveList struct {
	moves []scoredMove
}

// Nice helper to get what piece is at a square :)
func GetPieceTypeAtPosition(position uint8, bitboards *dragontoothmg.Bitboards) (pieceType dragontoothmg.Piece, occupied bool) {
	if bitboards.Pawns&(1<<position) > 0 {
		return dragontoothmg.Pawn, true
	} else if bitboards.Knights&(1<<position) > 0 {
		return dragontoothmg.Knight, true
	} else if bitboards.Bishops&(1<<position) > 0 {
		return dragontoothmg.Bishop, true
	} else if bitboards.Rooks&(1<<position) > 0 {
		return dragontoothmg.Rook, true
	} else if bitboards.Queens&(1<<position) > 0 {
		return dragontoothmg.Queen, true
	} else if bitboards.Kings&(1<<position) > 0 {
		return dragontoothmg.King, true
	}
	return 0, false
}

// scoreMove computes the ordering heuristic for one candidate move:
// 10*value(victim) - value(mover) for captures, +8 for promotions, +5 if the
// move gives check. The board is left exactly as it was found.
func scoreMove(b *dragontoothmg.Board, move dragontoothmg.Move) int32 {
	var score int32

	var own, opp *dragontoothmg.Bitboards
	if b.Wtomove {
		own, opp = &b.White, &b.Black
	} else {
		own, opp = &b.Black, &b.White
	}

	if dragontoothmg.IsCapture(move, b) {
		// En passant finds no victim on the target square, leaving a
		// victim value of 0.
		victim, _ := GetPieceTypeAtPosition(move.To(), opp)
		attacker, _ := GetPieceTypeAtPosition(move.From(), own)
		score += captureVictimWeight*PieceValue[victim] - PieceValue[attacker]
	}
	if move.Promote() > 0 {
		score += promotionBonus
	}
	if givesCheck(b, move) {
		score += checkBonus
	}
	return score
}

// givesCheck reports whether making the move leaves the opponent to move
// while in check. The move is applied and taken back, so the board ends up
// unchanged.
func givesCheck(b *dragontoothmg.Board, move dragontoothmg.Move) bool {
	unapply := b.Apply(move)
	inCheck := b.OurKingInCheck()
	unapply()
	return inCheck
}

func scoreMovesList(b *dragontoothmg.Board, moves []dragontoothmg.Move) (movesList moveList) {
	movesList.moves = make([]scoredMove, len(moves))
	for i := 0; i < len(moves); i++ {
		movesList.moves[i].move = moves[i]
		movesList.moves[i].score = scoreMove(b, moves[i])
	}
	return movesList
}

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	tempMove := moves.moves[currIndex]
	moves.moves[currIndex] = moves.moves[bestIndex]
	moves.moves[bestIndex] = tempMove
}

// OrderMoves ranks the given legal moves by heuristic score, best first.
// The ranking is deterministic for a fixed position and move list, which the
// transposition cache relies on.
func OrderMoves(b *dragontoothmg.Board, moves []dragontoothmg.Move) []dragontoothmg.Move {
	list := scoreMovesList(b, moves)
	ordered := make([]dragontoothmg.Move, len(list.moves))
	for i := range list.moves {
		orderNextMove(i, &list)
		ordered[i] = list.moves[i].move
	}
	return ordered
}
