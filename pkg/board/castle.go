package board

// Side is the wing a king castles towards.
type Side int

const (
	KingSide Side = iota
	QueenSide
)

func (s Side) String() string {
	if s == KingSide {
		return "O-O"
	}
	return "O-O-O"
}

// CastleRights records which of the four castlings are still available.
// Indexed [color][side].
type CastleRights [2][2]bool

// AllCastleRights grants every castling, as at the start of a game.
func AllCastleRights() CastleRights {
	return CastleRights{{true, true}, {true, true}}
}

func (cr CastleRights) Can(c Color, s Side) bool {
	return cr[c][s]
}

func (cr *CastleRights) Revoke(c Color, s Side) {
	cr[c][s] = false
}

func homeRow(c Color) int {
	if c == White {
		return NumRows - 1
	}
	return 0
}

// KingHome is the square the king of c starts on.
func KingHome(c Color) Square {
	return Square{Row: homeRow(c), Col: 4}
}

// RookHome is the corner the rook of c starts on for side s.
func RookHome(c Color, s Side) Square {
	if s == KingSide {
		return Square{Row: homeRow(c), Col: NumCols - 1}
	}
	return Square{Row: homeRow(c), Col: 0}
}

// Update revokes the rights lost by playing m with the piece moved.
// A king move loses both rights of its side; a move from or onto a rook's
// home corner loses that corner's right.
func (cr *CastleRights) Update(m Move, moved Piece) {
	if moved.Kind == King {
		cr.Revoke(moved.Color, KingSide)
		cr.Revoke(moved.Color, QueenSide)
	}
	for _, c := range []Color{White, Black} {
		for _, s := range []Side{KingSide, QueenSide} {
			corner := RookHome(c, s)
			if m.From == corner || m.To == corner {
				cr.Revoke(c, s)
			}
		}
	}
}

// Reconcile drops every right whose king or rook is no longer on its home
// square in b.
func (cr *CastleRights) Reconcile(b Board) {
	for _, c := range []Color{White, Black} {
		king := Piece{c, King}
		rook := Piece{c, Rook}
		kp, ok := b.At(KingHome(c)).Piece()
		kingHome := ok && kp == king
		for _, s := range []Side{KingSide, QueenSide} {
			rp, ok := b.At(RookHome(c, s)).Piece()
			if !kingHome || !ok || rp != rook {
				cr.Revoke(c, s)
			}
		}
	}
}

// MarshalText encodes the rights in their FEN form.
func (cr CastleRights) MarshalText() ([]byte, error) {
	return []byte(cr.FEN()), nil
}

// FEN returns the castling field of a FEN string.
func (cr CastleRights) FEN() string {
	s := ""
	if cr.Can(White, KingSide) {
		s += "K"
	}
	if cr.Can(White, QueenSide) {
		s += "Q"
	}
	if cr.Can(Black, KingSide) {
		s += "k"
	}
	if cr.Can(Black, QueenSide) {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
