package main

import (
	"fmt"
	"net/http"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/maplefeline/nchess/internal/chess"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

// Game game.
type Game struct {
	gorm.Model

	ActiveAgent       uuid.UUID `gorm:"type:varchar;size:36;index"`
	ActiveAgentType   string
	ActiveColor       chess.Color
	End               bool
	GameID            uuid.UUID `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	InactiveAgent     uuid.UUID `gorm:"type:varchar;size:36;index"`
	InactiveAgentType string
	MoveCount         int
	Result            string
	State             chess.Snapshot `gorm:"type:varchar;size:132;not null"`
	Winner            string
}

const (
	resultCheckmate = "checkmate"
	resultStalemate = "stalemate"
	resultResigned  = "resigned"
)

func gameIdle() error {
	conn, err := database()
	if err != nil {
		return err
	}
	var count int64
	if err := conn.Model(&Game{}).Where(Game{InactiveAgent: placeHolder}).Count(&count).Error; err != nil {
		return err
	}
	if count < 10 {
		for i := 0; i < 3; i++ {
			game, err := makeGame()
			if err != nil {
				return err
			}
			if _, err := game.makeAgent("agent"); err != nil {
				return err
			}
		}
	}
	return conn.Where(Game{End: true, ActiveAgentType: "agent", InactiveAgentType: "agent"}).Delete(&Game{}).Error
}

func makeGame() (*Game, error) {
	conn, err := database()
	if err != nil {
		return nil, err
	}
	board := chess.NewBoard()
	board.PlaceInitialPieces()
	id := uuid.NewV4()
	if err := conn.Create(&Game{GameID: id, State: board.Snapshot(), ActiveAgent: placeHolder, ActiveColor: chess.White, InactiveAgent: placeHolder}).Error; err != nil {
		return nil, err
	}
	log.WithField("game", id).Info("game created")
	return getGame(id)
}

func getGame(id uuid.UUID) (*Game, error) {
	conn, err := database()
	if err != nil {
		return nil, err
	}
	var game Game
	if err := conn.First(&game, Game{GameID: id}).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func getGames() ([]Game, error) {
	conn, err := database()
	if err != nil {
		return nil, err
	}
	var games []Game
	if err := conn.Where(Game{InactiveAgent: placeHolder}).Find(&games).Error; err != nil {
		return nil, err
	}
	for i := range games {
		games[i].ActiveAgent = uuid.Nil
	}
	return games, nil
}

func (game Game) response(agentID uuid.UUID) Game {
	if !game.End {
		if !uuid.Equal(game.ActiveAgent, agentID) {
			game.ActiveAgent = uuid.Nil
		}
		if !uuid.Equal(game.InactiveAgent, agentID) {
			game.InactiveAgent = uuid.Nil
		}
	}
	return game
}

func (game *Game) save() error {
	conn, err := database()
	if err != nil {
		return err
	}
	return conn.Save(game).Error
}

func (game *Game) addAgent(id uuid.UUID, agentType string) error {
	if !uuid.Equal(placeHolder, game.InactiveAgent) {
		return echo.NewHTTPError(http.StatusBadRequest, "game is full")
	}
	if uuid.Equal(placeHolder, game.ActiveAgent) {
		game.ActiveAgent = id
		game.ActiveAgentType = agentType
	} else {
		game.InactiveAgent = id
		game.InactiveAgentType = agentType
	}
	if err := game.save(); err != nil {
		return err
	}
	if !uuid.Equal(placeHolder, game.InactiveAgent) {
		return game.pokeAgent()
	}
	return nil
}

func (game *Game) pokeAgent() error {
	if game.ActiveAgentType == "agent" {
		return game.playRound(game.ActiveAgent, nil)
	}
	return nil
}

func (game Game) board() (*chess.Board, error) {
	board, err := chess.Restore(game.State)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", game.GameID, err)
	}
	return board, nil
}

func (game Game) fen() string {
	board, err := game.board()
	if err != nil {
		return ""
	}
	return board.FEN()
}

func (game Game) getPlays() ([]chess.Move, error) {
	if game.End {
		return []chess.Move{}, nil
	}
	board, err := game.board()
	if err != nil {
		return nil, err
	}
	moves := board.Moves(game.ActiveColor)
	if moves == nil {
		moves = []chess.Move{}
	}
	return moves, nil
}

func (game *Game) putMove(m chess.Move) error {
	if game.End {
		return echo.NewHTTPError(http.StatusBadRequest, "game is over")
	}
	board, err := game.board()
	if err != nil {
		return err
	}
	if err := board.Play(m); err != nil {
		return err
	}
	game.State = board.Snapshot()
	game.InactiveAgent, game.ActiveAgent = game.ActiveAgent, game.InactiveAgent
	game.InactiveAgentType, game.ActiveAgentType = game.ActiveAgentType, game.InactiveAgentType
	game.ActiveColor = board.Turn()
	game.MoveCount = game.MoveCount + 1
	if board.IsGameOver() {
		game.End = true
		if board.KingInCheck(game.ActiveColor) {
			game.Result = resultCheckmate
			game.Winner = game.ActiveColor.Other().String()
		} else {
			game.Result = resultStalemate
		}
	}
	if err := game.save(); err != nil {
		return err
	}
	log.WithField("game", game.GameID).WithField("move", m).WithField("count", game.MoveCount).Info("move applied")
	if game.End {
		log.WithField("game", game.GameID).WithField("result", game.Result).Info("game over")
		return nil
	}
	if game.InactiveAgentType == game.ActiveAgentType {
		go pokeLater(game.GameID)
	} else {
		return game.pokeAgent()
	}
	return nil
}

// pokeLater lets an agent answer another agent off the request goroutine. It
// works on its own copy of the game and only logs failures.
func pokeLater(id uuid.UUID) {
	game, err := getGame(id)
	if err == nil {
		err = game.pokeAgent()
	}
	if err != nil {
		log.WithError(err).WithField("game", id).Warn("poke agent")
	}
}

func (game *Game) resign(id uuid.UUID) error {
	if game.End {
		return echo.NewHTTPError(http.StatusBadRequest, "game is over")
	}
	color := game.ActiveColor
	if !uuid.Equal(id, game.ActiveAgent) {
		color = color.Other()
	}
	game.End = true
	game.Result = resultResigned
	game.Winner = color.Other().String()
	if err := game.save(); err != nil {
		return err
	}
	log.WithField("game", game.GameID).WithField("color", color).Info("resigned")
	return nil
}

// saveBoard stores a console game, creating the row on first save.
func saveBoard(id uuid.UUID, board *chess.Board) (uuid.UUID, error) {
	if uuid.Equal(id, uuid.Nil) {
		conn, err := database()
		if err != nil {
			return uuid.Nil, err
		}
		id = uuid.NewV4()
		game := Game{
			GameID:            id,
			State:             board.Snapshot(),
			ActiveAgent:       uuid.NewV4(),
			ActiveAgentType:   "console",
			ActiveColor:       board.Turn(),
			InactiveAgent:     uuid.NewV4(),
			InactiveAgentType: "console",
		}
		if err := conn.Create(&game).Error; err != nil {
			return uuid.Nil, err
		}
		return id, nil
	}
	game, err := getGame(id)
	if err != nil {
		return uuid.Nil, err
	}
	game.State = board.Snapshot()
	game.ActiveColor = board.Turn()
	return id, game.save()
}

func loadBoard(id uuid.UUID) (*chess.Board, error) {
	game, err := getGame(id)
	if err != nil {
		return nil, err
	}
	return game.board()
}
