package searcher

import (
	"fmt"
	"thud/game"
)

// Weights are the tunable coefficients of the static evaluation.
type Weights struct {
	DwarfMaterial   int
	TrollMaterial   int
	DwarfClustering int
	TrollClustering int
	DwarfMobility   int
	TrollMobility   int
	VictoryBonus    int // Added once one side has been wiped out
}

// DefaultWeights returns calibrated weights.
func DefaultWeights() Weights {
	return Weights{
		DwarfMaterial:   13,
		TrollMaterial:   15,
		DwarfClustering: 0,
		TrollClustering: 2,
		DwarfMobility:   0,
		TrollMobility:   1,
		VictoryBonus:    172,
	}
}

// Evaluate scores b for the side to move. The sum is computed for the
// dwarves and negated when the trolls move.
func (w Weights) Evaluate(b *game.Board) int {
	dwarves := b.CountPieces(game.Dwarf)
	trolls := b.CountPieces(game.Troll)

	// Material
	result := w.DwarfMaterial*dwarves - w.TrollMaterial*trolls

	// Clustering
	if w.DwarfClustering != 0 {
		result += w.DwarfClustering * clustering(b, game.Dwarf)
	}
	if w.TrollClustering != 0 {
		result -= w.TrollClustering * clustering(b, game.Troll)
	}

	// Mobility
	if w.DwarfMobility != 0 {
		result += w.DwarfMobility * b.Mobility(game.Dwarf)
	}
	if w.TrollMobility != 0 {
		result -= w.TrollMobility * b.Mobility(game.Troll)
	}

	if trolls == 0 {
		result += w.VictoryBonus
	} else if dwarves == 0 {
		result -= w.VictoryBonus
	}

	if b.DwarvesTurn() {
		return result
	}
	return -result
}

// clustering counts, for every piece of the given type, its neighbours of
// the same type.
func clustering(b *game.Board, piece game.Piece) int {
	total := 0
	for _, c := range b.Pieces(piece) {
		total += len(b.Neighbors(piece, c))
	}
	return total
}

func (w Weights) String() string {
	return fmt.Sprintf("%d, %d, %d, %d, %d, %d, %d",
		w.DwarfMaterial, w.TrollMaterial,
		w.DwarfClustering, w.TrollClustering,
		w.DwarfMobility, w.TrollMobility,
		w.VictoryBonus)
}
