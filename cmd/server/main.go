package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/qnkhuat/chessterm/pkg"
	"github.com/qnkhuat/chessterm/pkg/movegen"
)

var (
	sshAddr     string
	httpAddr    string
	binary      string
	binaryArgs  string
	hostKeyPath string
	origins     string
	logPath     string
	engine      string

	done = make(chan string, 1)
)

// stop asks main to shut down. Only the first reason is kept and it never
// blocks, so a listener failing during shutdown cannot hang.
func stop(reason string) {
	select {
	case done <- reason:
	default:
		log.Printf("Already stopping, ignored: %s", reason)
	}
}

func init() {
	flag.StringVar(&sshAddr, "ssh", pkg.SshPort, "host the terminal client over SSH on this address")
	flag.StringVar(&httpAddr, "http", pkg.WebPort, "serve the websocket board on this address")
	flag.StringVar(&binary, "binary", "chessterm", "path to the chessterm client run for every SSH session")
	flag.StringVar(&binaryArgs, "args", "-log /dev/null", "arguments passed to the client")
	flag.StringVar(&hostKeyPath, "hostkey", "", "path to SSH host key, created if missing")
	flag.StringVar(&origins, "origins", "*", "allowed CORS origins for the web board")
	flag.StringVar(&logPath, "log", "", "path to log file, stderr if empty")
	flag.StringVar(&engine, "engine", "", "move generator for web boards: notnil or dragon")
}

func main() {
	flag.Parse()
	if logPath != "" {
		pkg.InitLog(logPath, "SERVER: ")
	}

	gen, err := movegen.ByName(engine)
	if err != nil {
		log.Fatal(err)
	}

	s, err := pkg.NewServer(pkg.ServerConfig{
		Addr:        sshAddr,
		Binary:      binary,
		Args:        strings.Fields(binaryArgs),
		HostKeyPath: hostKeyPath,
	})
	if err != nil {
		log.Fatal(err)
	}
	w := pkg.NewWeb(gen, origins)

	bold := color.New(color.Bold).SprintFunc()
	color.Green("chessterm server started")
	color.Cyan("  ssh   %s", bold("ssh -p "+strings.TrimPrefix(sshAddr, ":")+" localhost"))
	color.Cyan("  web   %s", bold("ws://localhost"+httpAddr+"/ws"))
	color.Yellow("  key   %s", s.Fingerprint)

	go func() {
		if err := s.Serve(); err != nil {
			stop("ssh: " + err.Error())
		}
	}()
	go func() {
		if err := w.Listen(httpAddr); err != nil {
			stop("web: " + err.Error())
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		sig := <-sigc
		stop(sig.String())
	}()

	log.Printf("Shutting down: %s", <-done)
	s.Close()
	w.Shutdown()
}
