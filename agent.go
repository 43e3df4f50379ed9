package main

import (
	"crypto/rand"
	"math"
	"math/big"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/maplefeline/nchess/internal/chess"
	"github.com/montanaflynn/stats"
	uuid "github.com/satori/go.uuid"
)

var material = map[chess.Kind]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
}

const mateScore = 100

func agentIdle() error {
	conn, err := database()
	if err != nil {
		return err
	}
	var games []Game
	thirtySecondsAgo := time.Now().Add(time.Second * -30)
	if err := conn.Where("updated_at < ?", thirtySecondsAgo).Where(Game{ActiveAgentType: "agent"}).Not(conn.Where(Game{InactiveAgent: placeHolder}).Or(Game{End: true})).Find(&games).Error; err != nil {
		return err
	}
	for i := range games {
		if err := games[i].pokeAgent(); err != nil {
			return err
		}
	}
	var count int64
	if err := conn.Model(&Game{}).Where(Game{ActiveAgentType: "agent", InactiveAgentType: "agent"}).Not(Game{End: true}).Count(&count).Error; err != nil {
		return err
	}
	if count < 5 {
		if err := conn.Where(Game{InactiveAgent: placeHolder}).Find(&games).Error; err != nil {
			return err
		}
		newGames := 3
		if newGames >= len(games) {
			newGames = len(games)
		}
		for i := 0; i < newGames; i++ {
			if _, err := games[i].makeAgent("agent"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (game *Game) makeAgent(agentType string) (uuid.UUID, error) {
	id := uuid.NewV4()
	if err := game.addAgent(id, agentType); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func getAgent(id uuid.UUID) (*Game, error) {
	conn, err := database()
	if err != nil {
		return nil, err
	}
	var game Game
	if err := conn.Where(Game{ActiveAgent: id}).Or(Game{InactiveAgent: id}).First(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (game *Game) playRound(id uuid.UUID, m *chess.Move) error {
	if !uuid.Equal(id, game.ActiveAgent) {
		return echo.NewHTTPError(http.StatusNotAcceptable, "not your turn")
	}
	if game.ActiveAgentType != "agent" {
		if m == nil {
			return echo.NewHTTPError(http.StatusNotAcceptable, "player must provide move")
		}
		return game.putMove(*m)
	}
	if game.End {
		return nil
	}
	board, err := game.board()
	if err != nil {
		return err
	}
	moves := board.Moves(game.ActiveColor)
	if len(moves) == 0 {
		return echo.NewHTTPError(http.StatusNotAcceptable, "no moves available")
	}
	return game.putMove(decide(board, moves))
}

// score rates a move by what it wins: material taken, the promotion gain,
// one for giving check and mateScore for mate.
func score(board *chess.Board, m chess.Move) int {
	total := 0
	if m.Capture {
		if victim := board.At(m.To); victim != nil {
			total += material[victim.Kind]
		}
	}
	if m.Promotion != chess.None {
		total += material[m.Promotion] - material[chess.Pawn]
	}
	probe := board.Clone()
	if err := probe.Play(m); err != nil {
		return math.MinInt32
	}
	enemy := m.Color.Other()
	if probe.KingInCheck(enemy) {
		total++
		if probe.IsGameOver() {
			total += mateScore
		}
	}
	return total
}

func decide(board *chess.Board, moves []chess.Move) chess.Move {
	if len(moves) == 1 {
		return moves[0]
	}
	scores := make([]int, 0, len(moves))
	for _, m := range moves {
		scores = append(scores, score(board, m))
	}
	percentile, err := stats.Percentile(stats.LoadRawData(scores), 80)
	if err != nil {
		log.WithError(err).Error("error")
		panic(err)
	}
	lowScore := int(math.Round(percentile))
	choices := make([]chess.Move, 0, len(moves)*len(moves))
	for i, m := range moves {
		if lowScore <= scores[i] {
			count := (scores[i] - lowScore) + 1
			if count > len(moves) {
				count = len(moves)
			}
			for j := 0; j < count; j++ {
				choices = append(choices, m)
			}
		}
	}
	if len(choices) == 0 {
		choices = moves
	}
	choice, err := rand.Int(rand.Reader, big.NewInt(int64(len(choices))))
	if err != nil {
		log.WithError(err).Error("error")
		panic(err)
	}
	return choices[choice.Uint64()]
}
