package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplefeline/nchess/internal/chess"
	uuid "github.com/satori/go.uuid"
)

var sigint chan os.Signal

func waitShutdown(e *echo.Echo, idleConnsClosed chan<- interface{}) {
	defer close(idleConnsClosed)

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	<-sigint
	log.Info("received shutdown signal")

	idleError("HTTP server shutdown:", e.Shutdown(context.Background()))
}

func listenAndServe(addr string, idleConnsClosed chan<- interface{}) {
	e := apiHandler()
	go waitShutdown(e, idleConnsClosed)

	e.Use(middleware.Logger())

	idleError("HTTP server end:", e.Start(addr))
}

// Open serves the API until interrupted.
func Open(addr string) {
	idleConnsClosed := make(chan interface{})
	go listenAndServe(addr, idleConnsClosed)
	<-idleConnsClosed
}

func idle() {
	idleError("agent idle complete:", agentIdle())
	idleError("game idle complete:", gameIdle())
}

func playConsole(load string) error {
	id := uuid.Nil
	board := chess.NewBoard()
	board.PlaceInitialPieces()
	if load != "" {
		var err error
		if id, err = uuid.FromString(load); err != nil {
			return err
		}
		if board, err = loadBoard(id); err != nil {
			return err
		}
		log.WithField("game", id).Info("game loaded")
	}
	return runConsole(board, id, os.Stdin, os.Stdout, saveBoard)
}

func main() {
	addr := flag.String("addr", ":8080", "address the API listens on")
	local := flag.Bool("console", false, "play a two player game in the terminal")
	load := flag.String("load", "", "id of a saved game to resume in the terminal")
	flag.Parse()

	defer func() {
		idleError("close server:", Close())
	}()

	if *local || *load != "" {
		if err := playConsole(*load); err != nil {
			log.WithError(err).Error("console")
		}
		return
	}

	go func() {
		for {
			idle()
			time.Sleep(5 * time.Second)
		}
	}()
	Open(*addr)
}
