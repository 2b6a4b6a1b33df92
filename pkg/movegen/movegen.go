// Package movegen adapts third-party chess engines to the move query the
// board needs: every legal destination for the piece on one square.
package movegen

import (
	"errors"
	"fmt"
	"log"

	"github.com/qnkhuat/chessterm/pkg/board"
)

var (
	ErrNoPiece        = errors.New("no piece on origin")
	ErrWrongColor     = errors.New("piece does not belong to the side to move")
	ErrMalformedBoard = errors.New("malformed board")
	ErrUnknownEngine  = errors.New("unknown engine")
)

// Generator returns the legal moves of the piece on origin. Implementations
// may revoke castling rights in castle that the board no longer supports.
type Generator interface {
	GenerateMoves(origin board.Square, b board.Board, mover board.Color,
		prev *board.Move, castle *board.CastleRights) ([]board.Move, error)
}

// GeneratorFunc lets a plain function act as a Generator.
type GeneratorFunc func(origin board.Square, b board.Board, mover board.Color,
	prev *board.Move, castle *board.CastleRights) ([]board.Move, error)

func (f GeneratorFunc) GenerateMoves(origin board.Square, b board.Board, mover board.Color,
	prev *board.Move, castle *board.CastleRights) ([]board.Move, error) {
	return f(origin, b, mover, prev, castle)
}

// EngineError reports that an engine could not produce moves for Origin.
type EngineError struct {
	Engine string
	Origin board.Square
	Err    error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: moves from %v: %v", e.Engine, e.Origin, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// ByName returns the engine registered under name. An empty name selects
// the notnil engine.
func ByName(name string) (Generator, error) {
	switch name {
	case "", "notnil":
		return Notnil{}, nil
	case "dragon":
		return Dragon{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEngine)
	}
}

// prepare checks the origin and reconciles castle with b. It returns the FEN
// handed to the engine.
func prepare(engine string, origin board.Square, b board.Board, mover board.Color,
	prev *board.Move, castle *board.CastleRights) (string, error) {
	p, ok := b.At(origin).Piece()
	if !ok {
		return "", &EngineError{engine, origin, ErrNoPiece}
	}
	if p.Color != mover {
		return "", &EngineError{engine, origin, ErrWrongColor}
	}
	if castle == nil {
		castle = &board.CastleRights{}
	}
	castle.Reconcile(b)
	return board.EncodeFEN(b, mover, prev, *castle), nil
}

// collect keeps the moves leaving origin, one per destination. Promotions
// come back from the engines once per promotion piece.
func collect(origin board.Square, from, to []int) []board.Move {
	seen := make(map[board.Square]bool)
	moves := make([]board.Move, 0, len(from))
	for i := range from {
		src := indexToSquare(from[i])
		if src != origin {
			continue
		}
		dst := indexToSquare(to[i])
		if seen[dst] {
			continue
		}
		seen[dst] = true
		moves = append(moves, board.Move{From: src, To: dst})
	}
	return moves
}

// indexToSquare converts a little-endian rank-file index (a1 = 0, h8 = 63).
func indexToSquare(idx int) board.Square {
	return board.SquareAt(idx%8, idx/8)
}

// recoverEngine turns a panic inside a third-party engine into an error.
func recoverEngine(engine string, origin board.Square, err *error) {
	if r := recover(); r != nil {
		log.Printf("%s panicked on %v: %v", engine, origin, r)
		*err = &EngineError{engine, origin, fmt.Errorf("%w: %v", ErrMalformedBoard, r)}
	}
}
