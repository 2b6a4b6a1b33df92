// Package board holds the value types of a chess board: pieces, squares,
// moves, castling rights and the 8x8 grid itself.
package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyOrigin = errors.New("board: no piece on origin square")

// Board is an 8x8 grid of cells indexed [row][col]. It is a value type:
// assigning a Board copies every cell.
type Board [NumRows][NumCols]Cell

var backRank = [NumCols]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var b Board
	for col, kind := range backRank {
		b[0][col] = Occupied(Piece{Black, kind})
		b[1][col] = Occupied(Piece{Black, Pawn})
		b[6][col] = Occupied(Piece{White, Pawn})
		b[7][col] = Occupied(Piece{White, kind})
	}
	return b
}

// At returns the cell at sq. Squares off the board read as empty.
func (b *Board) At(sq Square) Cell {
	if !sq.Valid() {
		return Empty()
	}
	return b[sq.Row][sq.Col]
}

func (b *Board) set(sq Square, c Cell) {
	b[sq.Row][sq.Col] = c
}

// Apply stages m on a copy of the board and returns the copy together with
// the moved piece. Whatever stood on the destination is discarded.
func (b Board) Apply(m Move) (Board, Piece, error) {
	if !m.From.Valid() || !m.To.Valid() {
		return b, Piece{}, fmt.Errorf("move %v: %w", m, ErrBadSquare)
	}
	p, ok := b.At(m.From).Piece()
	if !ok {
		return b, Piece{}, fmt.Errorf("move %v: %w", m, ErrEmptyOrigin)
	}
	next := b
	next.set(m.From, Empty())
	next.set(m.To, Occupied(p))
	return next, p, nil
}

// Draw returns a plain text picture of the board, rank 8 on top.
func (b Board) Draw() string {
	var sb strings.Builder
	for row := 0; row < NumRows; row++ {
		fmt.Fprintf(&sb, "%d", NumRows-row)
		for col := 0; col < NumCols; col++ {
			sb.WriteString(" ")
			sb.WriteString(b[row][col].String())
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

type cellJSON struct {
	Color string `json:"color"`
	Kind  string `json:"kind"`
	Glyph string `json:"glyph"`
}

// MarshalJSON encodes an empty cell as null and a piece as an object.
func (c Cell) MarshalJSON() ([]byte, error) {
	p, ok := c.Piece()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(cellJSON{
		Color: p.Color.String(),
		Kind:  p.Kind.String(),
		Glyph: p.String(),
	})
}
