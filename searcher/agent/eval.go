package agent

import (
	"thud/experiments/metrics"
	"thud/game"
	"thud/searcher"
)

type evaluationAgent struct {
	player searcher.Player
}

// NewEvaluationAgent returns a new agent playing the best move found by the
// search.
func NewEvaluationAgent(player searcher.Player) Agent {
	return evaluationAgent{player: player}
}

func (a evaluationAgent) FindMove(board *game.Board) (*game.Board, metrics.SearchMetric, bool) {
	result := a.player.Search(board)
	return result.Board, result.Metric, result.Board != nil
}
