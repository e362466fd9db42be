package agent

import (
	"thud/experiments/metrics"
	"thud/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random legal moves, for
// baselines and opening diversity. The same seed replays the same game.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *game.Board) (*game.Board, metrics.SearchMetric, bool) {
	children := board.ExpandSuccessors()
	if len(children) == 0 {
		return nil, metrics.SearchMetric{}, false
	}
	return children[a.rng.Intn(len(children))], metrics.SearchMetric{Children: len(children)}, true
}
