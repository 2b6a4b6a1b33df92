package board

// Color is the side a piece belongs to.
type Color int

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Kind is the type of a piece regardless of its color.
type Kind int

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (k Kind) String() string {
	switch k {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	default:
		return "Unknown"
	}
}

// Piece is an immutable (color, kind) pair.
type Piece struct {
	Color Color
	Kind  Kind
}

var glyphs = [2][6]string{
	{"♔", "♕", "♖", "♗", "♘", "♙"},
	{"♚", "♛", "♜", "♝", "♞", "♟"},
}

var fenLetters = [6]byte{'K', 'Q', 'R', 'B', 'N', 'P'}

// String returns the unicode glyph of the piece.
func (p Piece) String() string {
	return glyphs[p.Color][p.Kind]
}

// FEN returns the FEN letter of the piece, upper case for White.
func (p Piece) FEN() byte {
	l := fenLetters[p.Kind]
	if p.Color == Black {
		l += 'a' - 'A'
	}
	return l
}

// Cell is the content of one square: either empty or occupied by a piece.
type Cell struct {
	piece    Piece
	occupied bool
}

// Empty returns an unoccupied cell.
func Empty() Cell {
	return Cell{}
}

// Occupied returns a cell holding p.
func Occupied(p Piece) Cell {
	return Cell{piece: p, occupied: true}
}

// Piece returns the piece on the cell and whether there is one.
func (c Cell) Piece() (Piece, bool) {
	return c.piece, c.occupied
}

func (c Cell) IsEmpty() bool {
	return !c.occupied
}

func (c Cell) String() string {
	if !c.occupied {
		return " "
	}
	return c.piece.String()
}
