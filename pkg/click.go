package pkg

import (
	"fmt"

	"github.com/qnkhuat/chessterm/pkg/board"
)

// Click is the only state transition of a Game. A click on a destination
// of the current candidates plays that move and does nothing else.
// Otherwise a click on a piece of the side to move selects it and asks the
// engine for its moves; any other click is ignored.
func (g *Game) Click(sq board.Square) {
	if !sq.Valid() {
		return
	}

	if changed, snap := g.dispatch(sq); changed {
		g.notify(snap)
	}
}

func (g *Game) dispatch(sq board.Square) (bool, Snapshot) {
	g.mu.Lock()
	defer g.mu.Unlock()
	changed := g.click(sq)
	return changed, g.snapshot()
}

func (g *Game) click(sq board.Square) bool {
	for _, m := range g.candidates {
		if m.To == sq {
			g.play(m)
			return true
		}
	}

	p, ok := g.board.At(sq).Piece()
	if !ok || p.Color != g.turn {
		return false
	}

	g.selection = sq
	g.selected = true
	g.candidates = g.generate(sq)
	return true
}

// play commits m. Candidates always start on the selected piece, so an
// empty origin means the candidate set is corrupt.
func (g *Game) play(m board.Move) {
	next, moved, err := g.board.Apply(m)
	if err != nil {
		panic(fmt.Sprintf("chessterm: candidate %v cannot be played: %v", m, err))
	}

	g.board = next
	g.castle.Update(m, moved)
	g.turn = g.turn.Other()
	g.selected = false
	g.selection = board.Square{}
	g.candidates = nil
	g.previous = m
	g.moved = true
	g.logger.Printf("Move: %s %s", moved.Color, m)
}

// generate asks the engine for the moves of the piece on origin. An engine
// failure leaves no candidates.
func (g *Game) generate(origin board.Square) []board.Move {
	var prev *board.Move
	if g.moved {
		m := g.previous
		prev = &m
	}

	moves, err := g.gen.GenerateMoves(origin, g.board, g.turn, prev, &g.castle)
	if err != nil {
		g.logger.Printf("no moves from %v: %v", origin, err)
		return nil
	}

	candidates := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		if m.From != origin || !m.To.Valid() {
			g.logger.Printf("dropping engine move %v: not from %v", m, origin)
			continue
		}
		candidates = append(candidates, m)
	}
	return candidates
}
