package pkg

import (
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/qnkhuat/chessterm/pkg/movegen"
)

// Web serves boards to browsers over a websocket, one Game per connection.
type Web struct {
	App *fiber.App
	gen movegen.Generator

	mu      sync.Mutex
	players map[string]*Player
}

func NewWeb(gen movegen.Generator, origins string) *Web {
	w := &Web{
		App:     fiber.New(fiber.Config{DisableStartupMessage: true}),
		gen:     gen,
		players: make(map[string]*Player),
	}

	w.App.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, OPTIONS",
	}))
	w.App.Get("/healthz", w.health)
	w.App.Use("/ws", upgradeOnly)
	w.App.Get("/ws", websocket.New(w.handleConn, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))
	return w
}

func upgradeOnly(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

func (w *Web) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"players": w.NumPlayers(),
	})
}

func (w *Web) handleConn(conn *websocket.Conn) {
	p := NewPlayer(conn, w.gen)
	w.addPlayer(p)
	defer w.removePlayer(p)
	log.Printf("Player %s (%s) connected from %s", p.Name, p.Id, conn.RemoteAddr())

	p.Serve()
	log.Printf("Player %s (%s) left", p.Name, p.Id)
}

func (w *Web) addPlayer(p *Player) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.players[p.Id] = p
}

func (w *Web) removePlayer(p *Player) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.players, p.Id)
}

func (w *Web) NumPlayers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.players)
}

func (w *Web) Listen(addr string) error {
	log.Printf("Web listening at %s", addr)
	return w.App.Listen(addr)
}

func (w *Web) Shutdown() error {
	return w.App.Shutdown()
}
