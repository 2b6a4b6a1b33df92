package pkg

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/chessterm/pkg/board"
	"github.com/qnkhuat/chessterm/pkg/gui"
	"github.com/rivo/tview"
)

// Client is the terminal front end of one Game. It only reads the game
// through snapshots and writes it through Click and Reset.
type Client struct {
	Game   *Game
	App    *tview.Application
	Board  *tview.Table
	Status *tview.TextView
	Layout *tview.Grid
	Theme  gui.Theme
	View   gui.View

	unsubscribe func()
}

func NewClient(game *Game, theme gui.Theme, flipped bool) *Client {
	app := tview.NewApplication()
	table := tview.NewTable()
	status := tview.NewTextView().
		SetDynamicColors(true).
		SetTextColor(theme.Status)
	help := tview.NewTextView().
		SetText("click: select / move\nf: flip  n: new board\nq, esc: quit").
		SetTextColor(theme.Status)

	side := tview.NewGrid().
		SetRows(3, 4, -1).
		SetColumns(-1).
		AddItem(status, 0, 0, 1, 1, 0, 0, false).
		AddItem(help, 1, 0, 1, 1, 0, 0, false)

	layout := tview.NewGrid().
		SetRows(-1, boardHeight, -1).
		SetColumns(-1, boardWidth, 30, -1).
		AddItem(tview.NewBox(), 0, 0, 1, 4, 0, 0, false).
		AddItem(tview.NewBox(), 1, 0, 1, 1, 0, 0, false).
		AddItem(table, 1, 1, 1, 1, 0, 0, true).
		AddItem(side, 1, 2, 1, 1, 0, 0, false).
		AddItem(tview.NewBox(), 1, 3, 1, 1, 0, 0, false).
		AddItem(tview.NewBox(), 2, 0, 1, 4, 0, 0, false)

	cl := &Client{
		Game:   game,
		App:    app,
		Board:  table,
		Status: status,
		Layout: layout,
		Theme:  theme,
		View:   gui.View{Flipped: flipped},
	}
	cl.initTable()
	cl.unsubscribe = game.Subscribe(cl.Render)
	cl.Render(game.Snapshot())
	return cl
}

const (
	boardHeight = board.NumRows + 1
	boardWidth  = (board.NumCols+1)*3 + 1
)

func (cl *Client) initTable() {
	cl.Board.SetSelectable(true, true)
	cl.Board.Select(0, 1).SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			cl.Stop()
		}
	}).SetSelectedFunc(func(row, col int) {
		if sq, ok := cl.View.Square(row, col); ok {
			cl.click(sq)
		}
	})
	cl.Board.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch ActionForKey(ev.Rune()) {
		case ActionExit:
			cl.Stop()
			return nil
		case ActionFlip:
			cl.View.Flipped = !cl.View.Flipped
			cl.Render(cl.Game.Snapshot())
			return nil
		case ActionNewBoard:
			log.Printf("New board")
			cl.Game.Reset()
			return nil
		}
		return ev
	})
}

func (cl *Client) click(sq board.Square) {
	cl.Game.Click(sq)
}

// Render redraws the board and the status line from snap.
func (cl *Client) Render(snap Snapshot) {
	marks := func(sq board.Square) gui.Marks {
		return gui.Marks{
			Selected:  snap.IsSelected(sq),
			Candidate: snap.IsCandidate(sq),
			Previous:  snap.IsPrevious(sq),
		}
	}
	gui.DrawBoard(cl.Board, snap.Board, marks, cl.Theme, cl.View, cl.click)
	cl.Status.SetText(StatusLine(snap))
}

// StatusLine describes the side to move, the selection and the last move.
func StatusLine(snap Snapshot) string {
	line := fmt.Sprintf("%s to move", snap.Turn)
	if snap.Selected {
		line += fmt.Sprintf("\nselected %s (%d moves)", snap.Selection, len(snap.Candidates))
	} else {
		line += "\n"
	}
	if snap.HasPrevious {
		line += fmt.Sprintf("\nlast move %s", snap.Previous)
	}
	return line
}

func (cl *Client) Run() error {
	return cl.App.SetRoot(cl.Layout, true).EnableMouse(true).Run()
}

func (cl *Client) Stop() {
	if cl.unsubscribe != nil {
		cl.unsubscribe()
	}
	cl.App.Stop()
}
