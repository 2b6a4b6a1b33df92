package movegen

import (
	"github.com/dylhunn/dragontoothmg"
	"github.com/qnkhuat/chessterm/pkg/board"
)

// Dragon generates moves with github.com/dylhunn/dragontoothmg. ParseFen
// panics on input it cannot read; the panic is reported as
// ErrMalformedBoard.
type Dragon struct{}

func (Dragon) GenerateMoves(origin board.Square, b board.Board, mover board.Color,
	prev *board.Move, castle *board.CastleRights) (moves []board.Move, err error) {
	defer recoverEngine("dragon", origin, &err)

	fen, err := prepare("dragon", origin, b, mover, prev, castle)
	if err != nil {
		return nil, err
	}
	pos := dragontoothmg.ParseFen(fen)

	legal := pos.GenerateLegalMoves()
	from := make([]int, len(legal))
	to := make([]int, len(legal))
	for i := range legal {
		from[i] = int(legal[i].From())
		to[i] = int(legal[i].To())
	}
	return collect(origin, from, to), nil
}
