package pkg

import (
	"log"
	"sync"

	"github.com/qnkhuat/chessterm/pkg/board"
	"github.com/qnkhuat/chessterm/pkg/movegen"
)

// Game owns the state of one board: pieces, side to move, selection, the
// moves available from the selection, the previous move and castling
// rights. Only Click and Reset write it.
type Game struct {
	mu sync.Mutex

	board      board.Board
	turn       board.Color
	selection  board.Square
	selected   bool
	candidates []board.Move
	previous   board.Move
	moved      bool
	castle     board.CastleRights

	gen       movegen.Generator
	logger    *log.Logger
	observers map[int]func(Snapshot)
	nextObs   int
}

type Option func(*Game)

// WithLogger routes the game's log lines to l instead of the default logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

func NewGame(gen movegen.Generator, opts ...Option) *Game {
	g := &Game{
		gen:       gen,
		logger:    log.Default(),
		observers: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.board = board.NewBoard()
	g.turn = board.White
	g.selection = board.Square{}
	g.selected = false
	g.candidates = nil
	g.previous = board.Move{}
	g.moved = false
	g.castle = board.AllCastleRights()
}

// Reset puts the starting position back on the board.
func (g *Game) Reset() {
	g.mu.Lock()
	g.reset()
	snap := g.snapshot()
	g.mu.Unlock()
	g.notify(snap)
}

func (g *Game) Board() board.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

func (g *Game) Turn() board.Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn
}

func (g *Game) Selection() (board.Square, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selection, g.selected
}

// Candidates returns a copy of the moves available from the selection.
func (g *Game) Candidates() []board.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]board.Move(nil), g.candidates...)
}

func (g *Game) Destinations() []board.Square {
	g.mu.Lock()
	defer g.mu.Unlock()
	dst := make([]board.Square, len(g.candidates))
	for i, m := range g.candidates {
		dst[i] = m.To
	}
	return dst
}

func (g *Game) PreviousMove() (board.Move, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.previous, g.moved
}

func (g *Game) CastleRights() board.CastleRights {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.castle
}

// Subscribe registers fn to receive a snapshot after every click that
// changed the game. The returned func removes the subscription.
func (g *Game) Subscribe(fn func(Snapshot)) (cancel func()) {
	g.mu.Lock()
	id := g.nextObs
	g.nextObs++
	g.observers[id] = fn
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		delete(g.observers, id)
		g.mu.Unlock()
	}
}

func (g *Game) notify(snap Snapshot) {
	g.mu.Lock()
	fns := make([]func(Snapshot), 0, len(g.observers))
	for _, fn := range g.observers {
		fns = append(fns, fn)
	}
	g.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
