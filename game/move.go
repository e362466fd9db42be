package game

import (
	"fmt"
	"thud/utils"

	"github.com/pkg/errors"
)

var (
	ErrNotYourPiece   = errors.New("no piece of the side to move on the source square")
	ErrIllegalMove    = errors.New("illegal move")
	ErrVictimRequired = errors.New("several dwarves can be captured: a victim must be chosen")
	ErrInvalidVictim  = errors.New("victim is not a capturable dwarf")
)

// Move is a move requested by a player from outside the search.
type Move struct {
	From Coordinate
	To   Coordinate

	victim    Coordinate
	hasVictim bool
}

func NewMove(from, to Coordinate) Move {
	return Move{From: from, To: to}
}

// WithVictim picks the dwarf a troll captures when its step lands next to
// several dwarves without shoving.
func (m Move) WithVictim(victim Coordinate) Move {
	m.victim = victim
	m.hasVictim = true
	return m
}

// Victim returns the chosen victim, if any.
func (m Move) Victim() (Coordinate, bool) {
	return m.victim, m.hasVictim
}

func (m Move) String() string {
	if m.hasVictim {
		return fmt.Sprintf("%v-%v x%v", m.From, m.To, m.victim)
	}
	return fmt.Sprintf("%v-%v", m.From, m.To)
}

// Apply validates m against the legal destinations and returns the resulting
// position. The receiver is left untouched.
func (b *Board) Apply(m Move) (*Board, error) {
	if b.Piece(m.From) != b.SideToMove().Piece() {
		return nil, errors.Wrapf(ErrNotYourPiece, "%v holds %v", m.From, b.Piece(m.From))
	}

	destinations := b.LegalDestinations(m.From)
	index := utils.FindIndex(Targets(destinations), m.To)
	if index < 0 {
		return nil, errors.Wrapf(ErrIllegalMove, "%v", m)
	}

	next := b.Clone()
	victims := next.Move(m.From, m.To)
	if len(victims) == 0 {
		return next, nil
	}
	if destinations[index].Shove {
		for _, victim := range victims {
			next.Remove(victim)
		}
		return next, nil
	}

	victim, ok := m.Victim()
	switch {
	case ok && !utils.Contains(victims, victim):
		return nil, errors.Wrapf(ErrInvalidVictim, "%v", victim)
	case !ok && len(victims) > 1:
		return nil, errors.Wrapf(ErrVictimRequired, "%d candidates", len(victims))
	case !ok:
		victim = victims[0]
	}
	next.Remove(victim)
	return next, nil
}
