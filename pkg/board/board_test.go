package board

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		name string
		sq   Square
		want Piece
	}{
		{"black rook a8", Square{0, 0}, Piece{Black, Rook}},
		{"black king e8", Square{0, 4}, Piece{Black, King}},
		{"black queen d8", Square{0, 3}, Piece{Black, Queen}},
		{"black pawn d7", Square{1, 3}, Piece{Black, Pawn}},
		{"white pawn e2", Square{6, 4}, Piece{White, Pawn}},
		{"white rook a1", Square{7, 0}, Piece{White, Rook}},
		{"white knight g1", Square{7, 6}, Piece{White, Knight}},
		{"white king e1", Square{7, 4}, Piece{White, King}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.At(tt.sq).Piece()
			if !ok {
				t.Fatalf("At(%v) is empty", tt.sq)
			}
			if got != tt.want {
				t.Errorf("At(%v) = %v; want %v", tt.sq, got, tt.want)
			}
		})
	}

	for row := 2; row <= 5; row++ {
		for col := 0; col < NumCols; col++ {
			if !b.At(Square{row, col}).IsEmpty() {
				t.Errorf("At(%d,%d) is occupied; want empty", row, col)
			}
		}
	}
}

func TestApply(t *testing.T) {
	b := NewBoard()
	m := Move{From: Square{6, 4}, To: Square{4, 4}}

	next, moved, err := b.Apply(m)
	if err != nil {
		t.Fatal(err)
	}
	if moved != (Piece{White, Pawn}) {
		t.Errorf("moved = %v; want white pawn", moved)
	}
	if !next.At(m.From).IsEmpty() {
		t.Error("origin still occupied after Apply")
	}
	if p, _ := next.At(m.To).Piece(); p != (Piece{White, Pawn}) {
		t.Errorf("destination holds %v; want white pawn", p)
	}
	if b.At(m.From).IsEmpty() {
		t.Error("Apply mutated the receiver")
	}
}

func TestApplyCaptureOverwrites(t *testing.T) {
	b := NewBoard()
	// Rook a1 straight onto the black rook on a8.
	m := Move{From: Square{7, 0}, To: Square{0, 0}}

	next, _, err := b.Apply(m)
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := next.At(Square{0, 0}).Piece(); p != (Piece{White, Rook}) {
		t.Errorf("a8 holds %v; want white rook", p)
	}

	count := 0
	for row := range next {
		for col := range next[row] {
			if p, ok := next[row][col].Piece(); ok && p == (Piece{Black, Rook}) {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("black rooks = %d; want 1", count)
	}
}

func TestApplyErrors(t *testing.T) {
	b := NewBoard()

	_, _, err := b.Apply(Move{From: Square{4, 4}, To: Square{3, 4}})
	if !errors.Is(err, ErrEmptyOrigin) {
		t.Errorf("err = %v; want ErrEmptyOrigin", err)
	}

	_, _, err = b.Apply(Move{From: Square{6, 4}, To: Square{8, 4}})
	if !errors.Is(err, ErrBadSquare) {
		t.Errorf("err = %v; want ErrBadSquare", err)
	}
}

func TestSquareNames(t *testing.T) {
	tests := []struct {
		sq   Square
		name string
	}{
		{Square{7, 0}, "a1"},
		{Square{0, 7}, "h8"},
		{Square{6, 4}, "e2"},
		{Square{4, 4}, "e4"},
	}
	for _, tt := range tests {
		if got := tt.sq.String(); got != tt.name {
			t.Errorf("%#v.String() = %q; want %q", tt.sq, got, tt.name)
		}
		got, err := ParseSquare(tt.name)
		if err != nil {
			t.Errorf("ParseSquare(%q): %v", tt.name, err)
		}
		if got != tt.sq {
			t.Errorf("ParseSquare(%q) = %v; want %v", tt.name, got, tt.sq)
		}
	}

	for _, bad := range []string{"", "i1", "a9", "e22"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrBadSquare) {
			t.Errorf("ParseSquare(%q) err = %v; want ErrBadSquare", bad, err)
		}
	}
}

func TestCellJSON(t *testing.T) {
	row := [2]Cell{Empty(), Occupied(Piece{Black, Knight})}
	data, err := json.Marshal(row)
	if err != nil {
		t.Fatal(err)
	}
	want := `[null,{"color":"Black","kind":"Knight","glyph":"♞"}]`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
