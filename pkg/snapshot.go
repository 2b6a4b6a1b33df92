package pkg

import "github.com/qnkhuat/chessterm/pkg/board"

// Snapshot is a copy of a Game's state for rendering. Changing it never
// affects the game.
type Snapshot struct {
	Board       board.Board        `json:"board"`
	Turn        board.Color        `json:"turn"`
	Selection   board.Square       `json:"selection"`
	Selected    bool               `json:"selected"`
	Candidates  []board.Move       `json:"candidates"`
	Previous    board.Move         `json:"previous"`
	HasPrevious bool               `json:"hasPrevious"`
	Castle      board.CastleRights `json:"castle"`
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	return Snapshot{
		Board:       g.board,
		Turn:        g.turn,
		Selection:   g.selection,
		Selected:    g.selected,
		Candidates:  append([]board.Move{}, g.candidates...),
		Previous:    g.previous,
		HasPrevious: g.moved,
		Castle:      g.castle,
	}
}

func (s Snapshot) IsSelected(sq board.Square) bool {
	return s.Selected && s.Selection == sq
}

func (s Snapshot) IsCandidate(sq board.Square) bool {
	for _, m := range s.Candidates {
		if m.To == sq {
			return true
		}
	}
	return false
}

// IsPrevious reports whether sq is either end of the previous move.
func (s Snapshot) IsPrevious(sq board.Square) bool {
	return s.HasPrevious && (s.Previous.From == sq || s.Previous.To == sq)
}

// Destinations lists the squares the selection may move to.
func (s Snapshot) Destinations() []board.Square {
	dst := make([]board.Square, len(s.Candidates))
	for i, m := range s.Candidates {
		dst[i] = m.To
	}
	return dst
}
