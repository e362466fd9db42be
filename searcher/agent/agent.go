package agent

import (
	"thud/experiments/metrics"
	"thud/game"
)

type Agent interface {
	// FindMove returns the position after the agent's move, and performance
	// metrics (if collected). It reports false when the agent has no move.
	FindMove(board *game.Board) (*game.Board, metrics.SearchMetric, bool)
}
