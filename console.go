package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/maplefeline/nchess/internal/chess"
	uuid "github.com/satori/go.uuid"
)

type saver func(id uuid.UUID, board *chess.Board) (uuid.UUID, error)

// console runs a two player game on a terminal.
type console struct {
	board *chess.Board
	id    uuid.UUID
	in    *bufio.Scanner
	out   io.Writer
	save  saver
}

func runConsole(board *chess.Board, id uuid.UUID, in io.Reader, out io.Writer, save saver) error {
	con := &console{board: board, id: id, in: bufio.NewScanner(in), out: out, save: save}
	board.Promoter = con.promote
	defer func() { board.Promoter = nil }()
	return con.loop()
}

func (con *console) prompt(format string, args ...interface{}) (string, bool) {
	fmt.Fprintf(con.out, format, args...)
	if !con.in.Scan() {
		return "", false
	}
	return con.in.Text(), true
}

func (con *console) warn(err error) {
	fmt.Fprintf(con.out, "warning: %v\n", err)
}

func (con *console) promote(color chess.Color) chess.Kind {
	text, ok := con.prompt("promote %s pawn to (Q, R, B, N): ", color)
	if !ok {
		return chess.None
	}
	kind, err := chess.ParseKind(text)
	if err != nil {
		return chess.None
	}
	return kind
}

func (con *console) loop() error {
	board := con.board
	for {
		turn := board.Turn()
		if board.IsGameOver() {
			if board.KingInCheck(turn) {
				fmt.Fprintf(con.out, "%vcheckmate, %s wins\n", board, turn.Other())
			} else {
				fmt.Fprintf(con.out, "%vstalemate\n", board)
			}
			return nil
		}
		if board.KingInCheck(turn) {
			fmt.Fprintf(con.out, "%s is in check\n", turn)
		}
		text, ok := con.prompt("%v%s to move, piece (q resigns, s saves): ", board, turn)
		if !ok {
			return con.in.Err()
		}
		switch text {
		case "q":
			fmt.Fprintf(con.out, "%s resigns, %s wins\n", turn, turn.Other())
			return nil
		case "s":
			id, err := con.save(con.id, board)
			if err != nil {
				con.warn(err)
				continue
			}
			con.id = id
			log.WithField("game", id).Info("game saved")
			fmt.Fprintf(con.out, "saved game %s\n", id)
			continue
		}
		from, err := chess.ParseLocation(text)
		if err != nil {
			con.warn(err)
			continue
		}
		if err := board.ValidateSelection(from, turn); err != nil {
			con.warn(err)
			continue
		}
		board.SelectPiece(from)
		if board.IsEnPassantOpportunity() {
			fmt.Fprintln(con.out, "en passant is available")
		}
		if board.IsCastlingOpportunity() {
			fmt.Fprintln(con.out, "castling is available")
		}
		text, ok = con.prompt("destination: ")
		if !ok {
			return con.in.Err()
		}
		to, err := chess.ParseLocation(text)
		if err != nil {
			con.warn(err)
			continue
		}
		if err := board.ApplyMove(to); err != nil {
			con.warn(err)
		}
	}
}
