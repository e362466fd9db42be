package searcher

import "thud/game"

// Player picks moves for whichever side is to move.
type Player interface {
	Search(b *game.Board) Result
	ChooseMove(b *game.Board) (*game.Board, bool)
	MakeBestMove(b *game.Board) bool
	Evaluate(b *game.Board) int
	SetProgressCallback(progress func(percent int))
}

var _ Player = (*Negamax)(nil)
