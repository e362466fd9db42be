package engine

import (
	"thud/experiments/metrics"
	"thud/game"
)

type Engine interface {
	// Run plays the game till there's a winner, a side cannot move or the move cap is reached
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
