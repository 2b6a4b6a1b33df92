package board

import (
	"errors"
	"fmt"
)

const (
	NumRows = 8
	NumCols = 8
)

var ErrBadSquare = errors.New("board: bad square")

// Square addresses one cell. Row 0 is Black's back rank, row 7 is White's.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (sq Square) Valid() bool {
	return sq.Row >= 0 && sq.Row < NumRows && sq.Col >= 0 && sq.Col < NumCols
}

// File returns the file letter index, 0 for 'a'.
func (sq Square) File() int {
	return sq.Col
}

// Rank returns the zero-based rank, 0 for rank 1.
func (sq Square) Rank() int {
	return NumRows - sq.Row - 1
}

// String returns the algebraic name of the square, e.g. "e2".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.Col, sq.Rank()+1)
}

// SquareAt builds a square from a file index and zero-based rank.
func SquareAt(file, rank int) Square {
	return Square{Row: NumRows - rank - 1, Col: file}
}

// ParseSquare parses an algebraic square name such as "e2".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("%q: %w", s, ErrBadSquare)
	}
	return SquareAt(int(s[0]-'a'), int(s[1]-'1')), nil
}

// Move is one ply from one square to another.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
