package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"chess-ai/engine"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

func main() {
	depth := flag.Int("depth", 5, "engine search depth in plies")
	fen := flag.String("fen", dragontoothmg.Startpos, "starting position (FEN), White to move")
	verbose := flag.Bool("v", false, "log search diagnostics")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	board := dragontoothmg.ParseFen(*fen)
	searcher := engine.NewSearcher()

	fmt.Println("You play White, the engine plays Black.")
	fmt.Println("Enter moves in long algebraic form (e2e4, e7e8q); commands: fen, eval, new, quit")
	prompt(&board)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			prompt(&board)
			continue
		}

		switch line {
		case "quit":
			return
		case "fen":
			fmt.Println(board.ToFen())
			prompt(&board)
			continue
		case "eval":
			fmt.Println("static eval:", engine.Evaluation(&board))
			prompt(&board)
			continue
		case "new":
			board = dragontoothmg.ParseFen(*fen)
			searcher.ResetForNewGame()
			prompt(&board)
			continue
		}

		legal := board.GenerateLegalMoves()
		idx := slices.IndexFunc(legal, func(m dragontoothmg.Move) bool {
			return m.String() == line
		})
		if idx < 0 {
			fmt.Println("illegal move:", line)
			prompt(&board)
			continue
		}
		board.Apply(legal[idx])

		if announceGameOver(&board) {
			return
		}

		move, score, ok := searcher.FindBestMove(&board, int8(*depth))
		if !ok {
			// Unreachable: the game-over check above catches positions
			// without legal moves.
			fmt.Println("engine has no legal moves")
			return
		}
		board.Apply(move)
		fmt.Printf("engine plays: %s (eval %d)\n", move.String(), score)

		if announceGameOver(&board) {
			return
		}
		prompt(&board)
	}
}

func prompt(b *dragontoothmg.Board) {
	fmt.Println(b.ToFen())
	fmt.Print("> ")
}

// announceGameOver reports and announces mate, stalemate and material draws.
// Repetition and fifty-move draws are not tracked.
func announceGameOver(b *dragontoothmg.Board) bool {
	if len(b.GenerateLegalMoves()) == 0 {
		if !b.OurKingInCheck() {
			fmt.Println("stalemate")
		} else if b.Wtomove {
			fmt.Println("checkmate, Black wins")
		} else {
			fmt.Println("checkmate, White wins")
		}
		return true
	}
	if engine.InsufficientMaterial(b) {
		fmt.Println("draw by insufficient material")
		return true
	}
	return false
}
