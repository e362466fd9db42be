package game

// Piece is the content of a single board square.
type Piece int

const (
	Out   Piece = iota // Outside the round playable area, never changes
	Empty              // Free square
	Dwarf
	Troll
	Rock // Immovable obstacle
)

var glyphs = map[Piece]rune{
	Out:   '░',
	Empty: ' ',
	Dwarf: 'D',
	Troll: 'T',
	Rock:  'X',
}

// Glyph returns the character used for this piece in board files.
func (p Piece) Glyph() rune {
	return glyphs[p]
}

func (p Piece) String() string {
	switch p {
	case Out:
		return "out"
	case Empty:
		return "empty"
	case Dwarf:
		return "dwarf"
	case Troll:
		return "troll"
	case Rock:
		return "rock"
	}
	return "unknown"
}

// PieceFromGlyph maps a board file character back to its piece.
func PieceFromGlyph(r rune) (Piece, bool) {
	for piece, glyph := range glyphs {
		if glyph == r {
			return piece, true
		}
	}
	return Out, false
}

// Side identifies one of the two armies.
type Side int

const (
	NoSide Side = iota
	Dwarves
	Trolls
)

func (s Side) String() string {
	switch s {
	case Dwarves:
		return "dwarves"
	case Trolls:
		return "trolls"
	}
	return ""
}

// Piece returns the piece type moved by the side.
func (s Side) Piece() Piece {
	switch s {
	case Dwarves:
		return Dwarf
	case Trolls:
		return Troll
	}
	return Empty
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case Dwarves:
		return Trolls
	case Trolls:
		return Dwarves
	}
	return NoSide
}
