package pkg

import (
	"errors"
	"fmt"
	"log"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/qnkhuat/chessterm/pkg/movegen"
)

const ConnQueueSize = 10

var ErrUnknownMessage = errors.New("unknown message type")

// Conn is the part of a websocket connection a Player uses.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	Close() error
}

// Player is one browser connection. Each player owns its own Game.
type Player struct {
	Id   string
	Name string
	Conn Conn
	Game *Game
	Out  chan MessageInterface

	unsubscribe func()
}

func NewPlayer(conn Conn, gen movegen.Generator, opts ...Option) *Player {
	p := &Player{
		Id:   uuid.New().String(),
		Name: petname.Generate(2, "-"),
		Conn: conn,
		Game: NewGame(gen, opts...),
		Out:  make(chan MessageInterface, ConnQueueSize),
	}
	p.unsubscribe = p.Game.Subscribe(func(s Snapshot) {
		p.Out <- NewMessageState(s)
	})
	return p
}

// Handle applies one raw message from the browser.
func (p *Player) Handle(data []byte) error {
	var transport MessageTransport
	if err := Decode(data, &transport); err != nil {
		return err
	}

	switch transport.MsgType {
	case TypeMessageClick:
		var message MessageClick
		if err := Decode(transport.Data, &message); err != nil {
			return err
		}
		p.Game.Click(message.Square())
	case TypeMessageReset:
		p.Game.Reset()
	case TypeMessageState:
		p.Out <- NewMessageState(p.Game.Snapshot())
	default:
		return fmt.Errorf("%q: %w", transport.MsgType, ErrUnknownMessage)
	}
	return nil
}

// Serve runs the player until the browser goes away. It returns only after
// every queued message has been written and the connection is closed, so
// the connection can be reused as soon as Serve returns.
func (p *Player) Serve() {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.HandleWrite()
	}()

	p.HandleRead()
	p.Disconnect()
	wg.Wait()
	if p.Conn != nil {
		p.Conn.Close()
	}
}

func (p *Player) HandleRead() {
	p.Out <- NewMessageState(p.Game.Snapshot())
	for {
		messageType, data, err := p.Conn.ReadMessage()
		if err != nil {
			log.Printf("Player %s: read: %v", p.Name, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err := p.Handle(data); err != nil {
			log.Printf("Player %s: %v", p.Name, err)
			p.Out <- MessageError{Error: err.Error()}
		}
	}
}

func (p *Player) HandleWrite() {
	for message := range p.Out {
		if err := p.Conn.WriteJSON(Wrap(message)); err != nil {
			log.Printf("Failed to write: %v Error: %v", message.Type(), err)
		}
	}
}

// Disconnect stops the subscription and closes the outgoing queue. The
// writer keeps draining what is already queued.
func (p *Player) Disconnect() {
	p.unsubscribe()
	close(p.Out)
}
