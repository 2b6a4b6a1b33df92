package gui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/qnkhuat/chessterm/pkg/board"
	"github.com/rivo/tview"
)

func TestViewRoundTrip(t *testing.T) {
	for _, v := range []View{{Flipped: false}, {Flipped: true}} {
		for row := 0; row < board.NumRows; row++ {
			for col := 0; col < board.NumCols; col++ {
				sq := board.Square{Row: row, Col: col}
				r, c := v.Cell(sq)
				got, ok := v.Square(r, c)
				if !ok || got != sq {
					t.Errorf("flipped=%v: Square(Cell(%v)) = %v, %v", v.Flipped, sq, got, ok)
				}
			}
		}
	}

	if _, ok := (View{}).Square(0, 0); ok {
		t.Error("rank label column mapped to a square")
	}
	if _, ok := (View{}).Square(board.NumRows, 3); ok {
		t.Error("file label row mapped to a square")
	}
}

func TestViewOrientation(t *testing.T) {
	e1 := board.Square{Row: 7, Col: 4}

	r, c := View{}.Cell(e1)
	if r != 7 || c != 5 {
		t.Errorf("Cell(e1) = %d,%d; want 7,5", r, c)
	}
	r, c = View{Flipped: true}.Cell(e1)
	if r != 0 || c != 4 {
		t.Errorf("flipped Cell(e1) = %d,%d; want 0,4", r, c)
	}
}

func TestSquareBg(t *testing.T) {
	a8 := board.Square{Row: 0, Col: 0}
	b8 := board.Square{Row: 0, Col: 1}
	tests := []struct {
		name string
		sq   board.Square
		m    Marks
		want string
	}{
		{"light", a8, Marks{}, fmtHex(ThemeBasic.SquareLight)},
		{"dark", b8, Marks{}, fmtHex(ThemeBasic.SquareDark)},
		{"previous", a8, Marks{Previous: true}, fmtHex(ThemeBasic.SquarePrevious)},
		{"candidate over previous", a8, Marks{Candidate: true, Previous: true}, fmtHex(ThemeBasic.SquareCandidate)},
		{"selected over all", b8, Marks{Selected: true, Candidate: true, Previous: true}, fmtHex(ThemeBasic.SquareSelected)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtHex(SquareBg(tt.sq, tt.m, ThemeBasic)); got != tt.want {
				t.Errorf("SquareBg = %s; want %s", got, tt.want)
			}
		})
	}
}

func TestImportThemes(t *testing.T) {
	custom := ThemeTerminal.Hex()
	custom.Name = "mine"

	got, err := ImportThemes("mine", []ThemeHex{custom})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(custom, got.Hex()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = ImportThemes("basic", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "basic" {
		t.Errorf("Name = %q; want basic", got.Name)
	}

	if _, err := ImportThemes("missing", nil); !errors.Is(err, ErrNoTheme) {
		t.Errorf("err = %v; want ErrNoTheme", err)
	}
}

func TestDrawBoard(t *testing.T) {
	b := board.NewBoard()
	noMarks := func(board.Square) Marks { return Marks{} }

	table := tview.NewTable()
	DrawBoard(table, b, noMarks, ThemeBasic, View{}, nil)
	if got := table.GetCell(7, 5).Text; got != " ♔ " {
		t.Errorf("cell 7,5 = %q; want white king", got)
	}
	if got := table.GetCell(7, 0).Text; got != "1" {
		t.Errorf("rank label = %q; want 1", got)
	}
	if got := table.GetCell(board.NumRows, 1).Text; got != " a " {
		t.Errorf("file label = %q; want a", got)
	}

	flipped := tview.NewTable()
	DrawBoard(flipped, b, noMarks, ThemeBasic, View{Flipped: true}, nil)
	if got := flipped.GetCell(0, 4).Text; got != " ♔ " {
		t.Errorf("flipped cell 0,4 = %q; want white king", got)
	}
	if got := flipped.GetCell(0, 0).Text; got != "1" {
		t.Errorf("flipped rank label = %q; want 1", got)
	}
	if got := flipped.GetCell(board.NumRows, 1).Text; got != " h " {
		t.Errorf("flipped file label = %q; want h", got)
	}
}

func TestDrawBoardClick(t *testing.T) {
	var clicked []board.Square
	table := tview.NewTable()
	DrawBoard(table, board.NewBoard(), func(board.Square) Marks { return Marks{} },
		ThemeBasic, View{}, func(sq board.Square) { clicked = append(clicked, sq) })

	cell := table.GetCell(6, 5)
	if cell.Clicked == nil {
		t.Fatal("board cell has no click handler")
	}
	cell.Clicked()
	if diff := cmp.Diff([]board.Square{{Row: 6, Col: 4}}, clicked); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
