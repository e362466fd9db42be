package game

import "github.com/pkg/errors"

var ErrUnknownVariant = errors.New("unknown rules variant")

// Variant selects the move generation rules of a board.
type Variant string

const RegularVariant Variant = "regular"

// Destination is a square a piece may move to. Shove marks troll moves that
// capture every adjacent dwarf at once.
type Destination struct {
	To    Coordinate
	Shove bool
}

// Rules generates the destinations of the piece standing at from, regardless
// of whose turn it is.
type Rules interface {
	Destinations(b *Board, from Coordinate) []Destination
}

func NewRules(variant Variant) (Rules, error) {
	switch variant {
	case RegularVariant, "":
		return NewStandardRules(), nil
	}
	return nil, errors.Wrapf(ErrUnknownVariant, "%q", variant)
}

// Targets drops the shove classification.
func Targets(destinations []Destination) []Coordinate {
	result := make([]Coordinate, len(destinations))
	for i, d := range destinations {
		result[i] = d.To
	}
	return result
}
