package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MaxScore is the checkmate sentinel: +MaxScore means Black has been
	// checkmated, -MaxScore means White has. Any material balance is far
	// inside (-MaxScore, MaxScore).
	MaxScore  int32 = 32500
	DrawScore int32 = 0
)

// PieceValue is indexed by dragontoothmg.Piece. The king is worth nothing;
// losing it is expressed through the mate sentinels instead.
var PieceValue = [7]int32{0, 1, 3, 3, 5, 9, 0}

const lightSquares uint64 = 0x55AA55AA55AA55AA

// Evaluation scores a position from White's perspective: positive favors
// White, negative favors Black. Checkmate returns the sentinel for whichever
// side is mated; stalemate and insufficient material are dead draws. Anything
// else is the raw material balance. Pure: the board is never mutated.
func Evaluation(b *dragontoothmg.Board) int32 {
	if len(b.GenerateLegalMoves()) == 0 {
		if b.OurKingInCheck() {
			if b.Wtomove {
				return -MaxScore
			}
			return MaxScore
		}
		return DrawScore // stalemate
	}
	if InsufficientMaterial(b) {
		return DrawScore
	}
	return materialCount(&b.White) - materialCount(&b.Black)
}

func materialCount(bb *dragontoothmg.Bitboards) int32 {
	var score int32
	score += int32(bits.OnesCount64(bb.Pawns)) * PieceValue[dragontoothmg.Pawn]
	score += int32(bits.OnesCount64(bb.Knights)) * PieceValue[dragontoothmg.Knight]
	score += int32(bits.OnesCount64(bb.Bishops)) * PieceValue[dragontoothmg.Bishop]
	score += int32(bits.OnesCount64(bb.Rooks)) * PieceValue[dragontoothmg.Rook]
	score += int32(bits.OnesCount64(bb.Queens)) * PieceValue[dragontoothmg.Queen]
	return score
}

// InsufficientMaterial reports whether neither side can possibly deliver mate:
// no pawns, rooks or queens on the board, and either at most one minor piece
// in total or only bishops that all stand on squares of one color.
func InsufficientMaterial(b *dragontoothmg.Board) bool {
	if b.White.Pawns|b.Black.Pawns|b.White.Rooks|b.Black.Rooks|b.White.Queens|b.Black.Queens != 0 {
		return false
	}
	knights := b.White.Knights | b.Black.Knights
	bishops := b.White.Bishops | b.Black.Bishops
	if bits.OnesCount64(knights|bishops) <= 1 {
		return true
	}
	if knights == 0 && (bishops&lightSquares == bishops || bishops&lightSquares == 0) {
		return true
	}
	return false
}
