package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/qnkhuat/chessterm/pkg"
	"github.com/qnkhuat/chessterm/pkg/movegen"
	"golang.org/x/term"
)

func main() {
	logPath := flag.String("log", "./log", "path to log file")
	configPath := flag.String("config", "", "path to JSON config file")
	engine := flag.String("engine", "", "move generator: notnil or dragon")
	themeName := flag.String("theme", "", "board theme")
	black := flag.Bool("black", false, "draw the board from black's side")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "chessterm needs an interactive terminal")
		os.Exit(1)
	}

	pkg.InitLog(*logPath, "CLIENT: ")

	cfg, err := pkg.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *engine != "" {
		cfg.Engine = *engine
	}
	if *themeName != "" {
		cfg.Theme = *themeName
	}
	if *black {
		cfg.Flipped = true
	}

	gen, err := movegen.ByName(cfg.Engine)
	if err != nil {
		log.Fatal(err)
	}
	theme, err := cfg.ResolveTheme()
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("New client (engine %s, theme %s)", cfg.Engine, theme.Name)
	cl := pkg.NewClient(pkg.NewGame(gen), theme, cfg.Flipped)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc
		cl.Stop()
	}()

	if err := cl.Run(); err != nil {
		log.Fatal(err)
	}
	log.Println("Client exited")
}
