package board

import (
	"strconv"
	"strings"
)

// StartFEN is the FEN of the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// EncodeFEN describes a position as a six-field FEN string. The en passant
// field is derived from prev: it is set only when prev was a pawn advancing
// two rows. Clocks are not tracked and always read "0 1".
func EncodeFEN(b Board, mover Color, prev *Move, castle CastleRights) string {
	var sb strings.Builder
	for row := 0; row < NumRows; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < NumCols; col++ {
			p, ok := b[row][col].Piece()
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.FEN())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}

	if mover == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(castle.FEN())
	sb.WriteByte(' ')
	if ep, ok := EnPassantTarget(b, prev); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(" 0 1")
	return sb.String()
}

// EnPassantTarget returns the square skipped by prev when prev was a pawn
// double step still standing on its destination.
func EnPassantTarget(b Board, prev *Move) (Square, bool) {
	if prev == nil {
		return Square{}, false
	}
	p, ok := b.At(prev.To).Piece()
	if !ok || p.Kind != Pawn || prev.From.Col != prev.To.Col {
		return Square{}, false
	}
	d := prev.To.Row - prev.From.Row
	if d != 2 && d != -2 {
		return Square{}, false
	}
	return Square{Row: prev.From.Row + d/2, Col: prev.From.Col}, true
}
