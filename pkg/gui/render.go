// Package gui projects a board onto a tview table.
package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/chessterm/pkg/board"
	"github.com/rivo/tview"
)

const (
	numrows = board.NumRows
	numcols = board.NumCols
)

// Marks are the highlights of one square.
type Marks struct {
	Selected  bool
	Candidate bool
	Previous  bool
}

// View maps table cells to board squares. The table has one extra column
// on the left for ranks and one extra row at the bottom for files.
// Flipped puts Black at the bottom.
type View struct {
	Flipped bool
}

// Square returns the square drawn at table cell (row, col), if any.
func (v View) Square(row, col int) (board.Square, bool) {
	if row < 0 || row >= numrows || col < 1 || col > numcols {
		return board.Square{}, false
	}
	sq := board.Square{Row: row, Col: col - 1}
	if v.Flipped {
		sq = board.Square{Row: numrows - row - 1, Col: numcols - col}
	}
	return sq, true
}

// Cell returns the table cell a square is drawn at.
func (v View) Cell(sq board.Square) (row, col int) {
	if v.Flipped {
		return numrows - sq.Row - 1, numcols - sq.Col
	}
	return sq.Row, sq.Col + 1
}

// SquareBg returns the background of sq. Selection wins over candidate,
// candidate over previous move.
func SquareBg(sq board.Square, m Marks, t Theme) tcell.Color {
	switch {
	case m.Selected:
		return t.SquareSelected
	case m.Candidate:
		return t.SquareCandidate
	case m.Previous:
		return t.SquarePrevious
	case (sq.Row+sq.Col)%2 == 0:
		return t.SquareLight
	default:
		return t.SquareDark
	}
}

// stylePiece applies the theme's style to a piece based upon its color
func stylePiece(c board.Cell, bg tcell.Color, t Theme) tcell.Style {
	style := tcell.StyleDefault.Background(bg)
	p, ok := c.Piece()
	if !ok {
		return style
	}
	if p.Color == board.White {
		return style.Foreground(t.White)
	}
	return style.Foreground(t.Black)
}

// DrawBoard fills table with the board, rank labels on the left and file
// labels below. marks tells which highlights a square carries. onClick, if
// set, is called with the square of a clicked cell.
func DrawBoard(table *tview.Table, b board.Board, marks func(board.Square) Marks,
	t Theme, v View, onClick func(board.Square)) {
	for r := 0; r < numrows; r++ {
		sq, _ := v.Square(r, 1)
		rank := tview.NewTableCell(fmt.Sprintf("%d", sq.Rank()+1)).
			SetAlign(tview.AlignCenter).
			SetTextColor(t.Rank).
			SetSelectable(false)
		table.SetCell(r, 0, rank)

		for f := 1; f <= numcols; f++ {
			sq, _ := v.Square(r, f)
			c := b.At(sq)
			bg := SquareBg(sq, marks(sq), t)
			cell := tview.NewTableCell(fmt.Sprintf(" %s ", c)).
				SetAlign(tview.AlignCenter).
				SetStyle(stylePiece(c, bg, t)).
				SetBackgroundColor(bg)
			if onClick != nil {
				cell.SetClickedFunc(func() bool {
					onClick(sq)
					return false
				})
			}
			table.SetCell(r, f, cell)
		}
	}

	// The bottom left tile is not used
	table.SetCell(numrows, 0, tview.NewTableCell("").SetSelectable(false))
	for f := 1; f <= numcols; f++ {
		sq, _ := v.Square(0, f)
		file := tview.NewTableCell(fmt.Sprintf(" %c ", 'a'+sq.File())).
			SetAlign(tview.AlignCenter).
			SetTextColor(t.File).
			SetSelectable(false)
		table.SetCell(numrows, f, file)
	}
}
