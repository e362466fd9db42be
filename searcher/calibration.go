package searcher

import (
	"fmt"
	"thud/experiments/metrics"
	"thud/game"
	"thud/meta"

	"golang.org/x/exp/rand"
)

// Troll captures weigh four dwarves when settling a fight.
const trollValue = 4

// Fitness returns the score accumulated over fights.
func (n *Negamax) Fitness() int {
	return n.fitness
}

// Randomize draws new evaluation weights.
func (n *Negamax) Randomize(rng *rand.Rand) {
	n.weights = Weights{
		DwarfMaterial:   10 + rng.Intn(10),
		TrollMaterial:   10 + rng.Intn(10),
		DwarfClustering: rng.Intn(6),
		TrollClustering: rng.Intn(6),
		DwarfMobility:   -2 + rng.Intn(8),
		TrollMobility:   -2 + rng.Intn(8),
		VictoryBonus:    80 + rng.Intn(100),
	}
}

// Crossover returns a new player whose weights average both parents. The
// child starts with no fitness.
func (n *Negamax) Crossover(other *Negamax) *Negamax {
	a, b := n.weights, other.weights
	return &Negamax{
		depth:      n.depth,
		goroutines: n.goroutines,
		metrics:    metrics.NewDummyCollector(),
		weights: Weights{
			DwarfMaterial:   (a.DwarfMaterial + b.DwarfMaterial) / 2,
			TrollMaterial:   (a.TrollMaterial + b.TrollMaterial) / 2,
			DwarfClustering: (a.DwarfClustering + b.DwarfClustering) / 2,
			TrollClustering: (a.TrollClustering + b.TrollClustering) / 2,
			DwarfMobility:   (a.DwarfMobility + b.DwarfMobility) / 2,
			TrollMobility:   (a.TrollMobility + b.TrollMobility) / 2,
			VictoryBonus:    (a.VictoryBonus + b.VictoryBonus) / 2,
		},
	}
}

// Fight plays a game from start, the receiver moving first, until a side is
// wiped out, a side cannot move or maxTurns moves were played (FIGHT_TURNS
// when maxTurns is not positive). Both fitnesses are settled and the
// receiver's score is returned. start is not modified.
func (n *Negamax) Fight(other *Negamax, start *game.Board, maxTurns int) int {
	if maxTurns <= 0 {
		maxTurns = meta.FIGHT_TURNS
	}
	board := start.Clone()
	players := [2]*Negamax{n, other}
	for turn := 0; turn < maxTurns && board.Winner() == game.NoSide; turn++ {
		if !players[turn%2].MakeBestMove(board) {
			break
		}
	}
	return Settle(n, other, board, start.SideToMove())
}

// Settle scores a finished game for first, who played firstSide, and
// transfers the score between both fitnesses.
func Settle(first, second *Negamax, final *game.Board, firstSide game.Side) int {
	score := final.CountPieces(game.Dwarf) - trollValue*final.CountPieces(game.Troll)
	if firstSide == game.Trolls {
		score = -score
	}
	first.fitness += score
	second.fitness -= score
	return score
}

func (n *Negamax) String() string {
	return fmt.Sprintf("%v, (%d)", n.weights, n.fitness)
}
