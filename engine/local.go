package engine

import (
	"thud/experiments/metrics"
	"thud/game"
	"thud/meta"
	"thud/searcher/agent"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver = errors.New("game is over - no moves allowed")
	ErrNoAgent  = errors.New("no agent plays the side to move")
)

// Update records one move played on the board of record.
type Update struct {
	Step int
	Side game.Side // Side that moved
	Hash uint64    // Position after the move
}

type LocalEngine struct {
	board    *game.Board
	agents   map[game.Side]agent.Agent
	updates  []Update
	maxTurns int
}

// NewLocalEngine starts a game from a copy of board. Either agent may be nil
// when that side is played from outside through Play.
func NewLocalEngine(board *game.Board, dwarves, trolls agent.Agent) *LocalEngine {
	return &LocalEngine{
		board: board.Clone(),
		agents: map[game.Side]agent.Agent{
			game.Dwarves: dwarves,
			game.Trolls:  trolls,
		},
		maxTurns: meta.MAX_TURNS,
	}
}

func (e *LocalEngine) SetMaxTurns(maxTurns int) {
	if maxTurns > 0 {
		e.maxTurns = maxTurns
	}
}

// Board returns a copy of the board of record.
func (e *LocalEngine) Board() *game.Board {
	return e.board.Clone()
}

func (e *LocalEngine) Updates() []Update {
	return append([]Update(nil), e.updates...)
}

// Play validates and applies a move requested from outside, e.g. by a human.
// The board of record is unchanged when an error is returned.
func (e *LocalEngine) Play(move game.Move) error {
	if e.board.Winner() != game.NoSide {
		return ErrGameOver
	}
	next, err := e.board.Apply(move)
	if err != nil {
		return err
	}
	e.commit(next)
	return nil
}

// Step lets the agent of the side to move play one move.
func (e *LocalEngine) Step() (metrics.MoveMetric, error) {
	if e.board.Winner() != game.NoSide {
		return metrics.MoveMetric{}, ErrGameOver
	}
	side := e.board.SideToMove()
	a := e.agents[side]
	if a == nil {
		return metrics.MoveMetric{}, errors.Wrapf(ErrNoAgent, "%s", side)
	}

	next, searchMetric, ok := a.FindMove(e.board)
	if !ok {
		return metrics.MoveMetric{}, errors.Wrapf(ErrGameOver, "%s cannot move", side)
	}
	e.commit(next)
	return metrics.MoveMetric{
		Step:         len(e.updates),
		Side:         side.String(),
		Hash:         next.Hash(),
		SearchMetric: searchMetric,
	}, nil
}

func (e *LocalEngine) commit(next *game.Board) {
	side := e.board.SideToMove()
	e.board.Set(next)
	e.updates = append(e.updates, Update{
		Step: len(e.updates) + 1,
		Side: side,
		Hash: next.Hash(),
	})
}

// Run executes the game loop until a winner is found, a side is stuck or the
// move cap is reached.
func (e *LocalEngine) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingSide: e.board.SideToMove().String(),
		StartTime:    time.Now(),
	}
	log.Info().Msgf("%s are starting", e.board.SideToMove())

	var moveMetrics []metrics.MoveMetric
	for turn := 0; turn < e.maxTurns; turn++ {
		moveMetric, err := e.Step()
		if err != nil {
			log.Info().Msgf("stopped after %d moves: %v", turn, err)
			break
		}
		moveMetrics = append(moveMetrics, moveMetric)
	}

	winner := e.board.Winner()
	gameMetric.Winner = winner.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Dwarves = e.board.CountPieces(game.Dwarf)
	gameMetric.Trolls = e.board.CountPieces(game.Troll)

	if winner != game.NoSide {
		log.Info().Msgf("game ended after %d moves: %s win", gameMetric.TotalMoves, winner)
	} else {
		log.Info().Msgf("game stopped after %d moves without a winner", gameMetric.TotalMoves)
	}
	return winner, gameMetric, moveMetrics
}
