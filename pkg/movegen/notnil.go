package movegen

import (
	"fmt"

	"github.com/notnil/chess"
	"github.com/qnkhuat/chessterm/pkg/board"
)

// Notnil generates moves with github.com/notnil/chess.
type Notnil struct{}

func (Notnil) GenerateMoves(origin board.Square, b board.Board, mover board.Color,
	prev *board.Move, castle *board.CastleRights) (moves []board.Move, err error) {
	defer recoverEngine("notnil", origin, &err)

	fen, err := prepare("notnil", origin, b, mover, prev, castle)
	if err != nil {
		return nil, err
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, &EngineError{"notnil", origin, fmt.Errorf("%w: %v", ErrMalformedBoard, err)}
	}
	game := chess.NewGame(opt, chess.UseNotation(chess.UCINotation{}))

	valid := game.ValidMoves()
	from := make([]int, len(valid))
	to := make([]int, len(valid))
	for i, m := range valid {
		from[i] = int(m.S1())
		to[i] = int(m.S2())
	}
	return collect(origin, from, to), nil
}
