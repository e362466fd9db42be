package game

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/pkg/errors"
)

var (
	ErrEmptyBoard = errors.New("empty board")
	ErrRaggedRow  = errors.New("board row is shorter than the board width")
)

// Board holds a complete game position: the grid of pieces, whose turn it is
// and the rules used to generate moves.
//
// Boards are never shared between search branches; successors are deep copies.
type Board struct {
	squares     [][]Piece // Indexed [file][rank]
	dwarvesTurn bool
	live        []Coordinate // Every non-Out square, file-major; read-only once built
	variant     Variant
	rules       Rules
}

// NewBoard builds a board from columns of pieces indexed [file][rank]. The
// grid is copied.
func NewBoard(squares [][]Piece, dwarvesTurn bool, variant Variant) (*Board, error) {
	if len(squares) == 0 || len(squares[0]) == 0 {
		return nil, ErrEmptyBoard
	}
	height := len(squares[0])
	for file, column := range squares {
		if len(column) != height {
			return nil, errors.Wrapf(ErrRaggedRow, "file %d has %d squares, want %d", file, len(column), height)
		}
	}
	if variant == "" {
		variant = RegularVariant
	}
	rules, err := NewRules(variant)
	if err != nil {
		return nil, err
	}

	b := &Board{
		squares:     copySquares(squares),
		dwarvesTurn: dwarvesTurn,
		variant:     variant,
		rules:       rules,
	}
	b.live = liveSquares(b.squares)
	return b, nil
}

func copySquares(squares [][]Piece) [][]Piece {
	result := make([][]Piece, len(squares))
	for i, column := range squares {
		result[i] = make([]Piece, len(column))
		copy(result[i], column)
	}
	return result
}

func liveSquares(squares [][]Piece) []Coordinate {
	var live []Coordinate
	for file, column := range squares {
		for rank, piece := range column {
			if piece != Out {
				live = append(live, Coordinate{File: file, Rank: rank})
			}
		}
	}
	return live
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		squares:     copySquares(b.squares),
		dwarvesTurn: b.dwarvesTurn,
		live:        b.live,
		variant:     b.variant,
		rules:       b.rules,
	}
}

// Set overwrites this board with the contents of another one, e.g. to reset
// to the initial position or load a saved game.
func (b *Board) Set(other *Board) {
	b.squares = copySquares(other.squares)
	b.dwarvesTurn = other.dwarvesTurn
	b.live = other.live
	b.variant = other.variant
	b.rules = other.rules
}

func (b *Board) Width() int {
	return len(b.squares)
}

func (b *Board) Height() int {
	return len(b.squares[0])
}

func (b *Board) Variant() Variant {
	return b.variant
}

// DwarvesTurn reports whether the dwarves are to move.
func (b *Board) DwarvesTurn() bool {
	return b.dwarvesTurn
}

// SetDwarvesTurn forces the side to move, for position editing.
func (b *Board) SetDwarvesTurn(dwarvesTurn bool) {
	b.dwarvesTurn = dwarvesTurn
}

func (b *Board) SideToMove() Side {
	if b.dwarvesTurn {
		return Dwarves
	}
	return Trolls
}

// IsInsideBounds reports whether c lies on the grid and is not Out.
func (b *Board) IsInsideBounds(c Coordinate) bool {
	if c.File < 0 || c.Rank < 0 || c.File >= b.Width() || c.Rank >= b.Height() {
		return false
	}
	return b.squares[c.File][c.Rank] != Out
}

// Piece returns the piece at c, or Out when c is off the grid.
func (b *Board) Piece(c Coordinate) Piece {
	if c.File < 0 || c.Rank < 0 || c.File >= b.Width() || c.Rank >= b.Height() {
		return Out
	}
	return b.squares[c.File][c.Rank]
}

// Remove empties the square at c. Out squares are left untouched.
func (b *Board) Remove(c Coordinate) {
	if b.IsInsideBounds(c) {
		b.squares[c.File][c.Rank] = Empty
	}
}

// Neighbors returns the adjacent squares holding the given piece type, in
// Directions order.
func (b *Board) Neighbors(piece Piece, c Coordinate) []Coordinate {
	var result []Coordinate
	for _, direction := range Directions {
		neighbor := c.Add(direction)
		if b.IsInsideBounds(neighbor) && b.squares[neighbor.File][neighbor.Rank] == piece {
			result = append(result, neighbor)
		}
	}
	return result
}

// Move relocates the piece at from to to and hands the turn over. It does not
// check legality. When a troll moves, the dwarves adjacent to its landing
// square are returned as capture candidates.
func (b *Board) Move(from, to Coordinate) []Coordinate {
	isTroll := b.squares[from.File][from.Rank] == Troll

	b.squares[to.File][to.Rank] = b.squares[from.File][from.Rank]
	b.squares[from.File][from.Rank] = Empty
	b.dwarvesTurn = !b.dwarvesTurn

	if isTroll {
		return b.Neighbors(Dwarf, to)
	}
	return nil
}

// Pieces lists the squares holding the given piece type, file-major.
func (b *Board) Pieces(piece Piece) []Coordinate {
	var result []Coordinate
	for _, c := range b.live {
		if b.squares[c.File][c.Rank] == piece {
			result = append(result, c)
		}
	}
	return result
}

func (b *Board) CountPieces(piece Piece) int {
	count := 0
	for _, c := range b.live {
		if b.squares[c.File][c.Rank] == piece {
			count++
		}
	}
	return count
}

// LegalDestinations returns where the piece at from may go. Squares that do
// not hold a piece of the side to move yield nothing.
func (b *Board) LegalDestinations(from Coordinate) []Destination {
	if b.Piece(from) != b.SideToMove().Piece() {
		return nil
	}
	return b.rules.Destinations(b, from)
}

// Mobility sums the destinations of every piece of the given type, whichever
// side is to move.
func (b *Board) Mobility(piece Piece) int {
	total := 0
	for _, c := range b.live {
		if b.squares[c.File][c.Rank] == piece {
			total += len(b.rules.Destinations(b, c))
		}
	}
	return total
}

// ExpandSuccessors generates every position reachable in one move by the side
// to move. A shove removes all dwarves next to the landing square; any other
// troll move next to dwarves yields one successor per possible victim.
func (b *Board) ExpandSuccessors() []*Board {
	var result []*Board
	for _, from := range b.Pieces(b.SideToMove().Piece()) {
		for _, destination := range b.LegalDestinations(from) {
			child := b.Clone()
			victims := child.Move(from, destination.To)

			switch {
			case len(victims) == 0:
				result = append(result, child)
			case destination.Shove:
				for _, victim := range victims {
					child.Remove(victim)
				}
				result = append(result, child)
			default:
				for _, victim := range victims {
					victimChild := child.Clone()
					victimChild.Remove(victim)
					result = append(result, victimChild)
				}
			}
		}
	}
	return result
}

// Winner returns the side that eliminated the other one, or NoSide.
func (b *Board) Winner() Side {
	switch {
	case b.CountPieces(Troll) == 0:
		return Dwarves
	case b.CountPieces(Dwarf) == 0:
		return Trolls
	}
	return NoSide
}

// Equal compares grid contents and turn.
func (b *Board) Equal(other *Board) bool {
	if b.dwarvesTurn != other.dwarvesTurn || b.Width() != other.Width() || b.Height() != other.Height() {
		return false
	}
	for file, column := range b.squares {
		for rank, piece := range column {
			if other.squares[file][rank] != piece {
				return false
			}
		}
	}
	return true
}

func (b *Board) Hash() uint64 {
	hasher := fnv.New64a()

	// Hash side to move
	binary.Write(hasher, binary.LittleEndian, b.dwarvesTurn)

	// Hash squares
	for _, column := range b.squares {
		for _, piece := range column {
			hasher.Write([]byte{byte(piece)})
		}
	}
	return hasher.Sum64()
}
