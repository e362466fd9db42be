package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestBoard builds a rectangular board where only the top-left square is
// Out and every other square is empty unless listed in pieces.
func newTestBoard(t *testing.T, width, height int, dwarvesTurn bool, pieces map[Coordinate]Piece) *Board {
	t.Helper()
	squares := make([][]Piece, width)
	for file := range squares {
		squares[file] = make([]Piece, height)
		for rank := range squares[file] {
			squares[file][rank] = Empty
		}
	}
	squares[0][0] = Out
	for c, piece := range pieces {
		squares[c.File][c.Rank] = piece
	}
	b, err := NewBoard(squares, dwarvesTurn, RegularVariant)
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	t.Run("rejects empty grid", func(t *testing.T) {
		_, err := NewBoard(nil, true, RegularVariant)
		require.ErrorIs(t, err, ErrEmptyBoard)
	})

	t.Run("rejects ragged grid", func(t *testing.T) {
		_, err := NewBoard([][]Piece{{Out, Empty}, {Empty}}, true, RegularVariant)
		require.ErrorIs(t, err, ErrRaggedRow)
	})

	t.Run("rejects unknown variant", func(t *testing.T) {
		_, err := NewBoard([][]Piece{{Out, Empty}}, true, Variant("kvt"))
		require.ErrorIs(t, err, ErrUnknownVariant)
	})

	t.Run("copies the grid", func(t *testing.T) {
		squares := [][]Piece{{Out, Dwarf}, {Troll, Empty}}
		b, err := NewBoard(squares, true, "")
		require.NoError(t, err)
		squares[0][1] = Empty

		require.Equal(t, Dwarf, b.Piece(Coordinate{0, 1}), "Board should not alias the input grid")
		require.Equal(t, RegularVariant, b.Variant(), "Empty variant should default to regular rules")
		require.Equal(t, 2, b.Width())
		require.Equal(t, 2, b.Height())
	})
}

func TestBoardBounds(t *testing.T) {
	b := newTestBoard(t, 3, 3, true, nil)

	require.False(t, b.IsInsideBounds(Coordinate{0, 0}), "Out square is not inside")
	require.False(t, b.IsInsideBounds(Coordinate{-1, 1}), "Negative file is not inside")
	require.False(t, b.IsInsideBounds(Coordinate{1, 3}), "Rank past height is not inside")
	require.True(t, b.IsInsideBounds(Coordinate{2, 2}))
	require.Equal(t, Out, b.Piece(Coordinate{5, 5}), "Off-grid squares read as Out")
}

func TestBoardNeighbors(t *testing.T) {
	b := newTestBoard(t, 4, 4, true, map[Coordinate]Piece{
		{2, 1}: Dwarf,
		{1, 2}: Dwarf,
		{3, 3}: Dwarf,
		{2, 2}: Troll,
	})

	require.Equal(t, []Coordinate{{2, 1}, {1, 2}, {3, 3}}, b.Neighbors(Dwarf, Coordinate{2, 2}),
		"Neighbors should follow the direction order")
	require.Empty(t, b.Neighbors(Troll, Coordinate{0, 3}))
	require.Empty(t, b.Neighbors(Out, Coordinate{1, 1}), "Out squares are never neighbours")
}

func TestBoardMove(t *testing.T) {
	t.Run("dwarf move flips turn and returns no victims", func(t *testing.T) {
		b := newTestBoard(t, 4, 4, true, map[Coordinate]Piece{{1, 1}: Dwarf, {3, 3}: Troll})

		victims := b.Move(Coordinate{1, 1}, Coordinate{1, 3})

		require.Nil(t, victims)
		require.Equal(t, Empty, b.Piece(Coordinate{1, 1}))
		require.Equal(t, Dwarf, b.Piece(Coordinate{1, 3}))
		require.False(t, b.DwarvesTurn(), "Turn should pass to the trolls")
	})

	t.Run("troll move returns adjacent dwarves", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, false, map[Coordinate]Piece{
			{1, 2}: Troll,
			{3, 1}: Dwarf,
			{3, 3}: Dwarf,
			{4, 4}: Dwarf,
		})

		victims := b.Move(Coordinate{1, 2}, Coordinate{2, 2})

		require.ElementsMatch(t, []Coordinate{{3, 1}, {3, 3}}, victims)
		require.Equal(t, 3, b.CountPieces(Dwarf), "Move should not remove victims itself")
		require.True(t, b.DwarvesTurn())
	})
}

func TestBoardClone(t *testing.T) {
	b := newTestBoard(t, 4, 4, true, map[Coordinate]Piece{{1, 1}: Dwarf, {2, 2}: Troll})
	clone := b.Clone()

	require.True(t, b.Equal(clone))
	require.Equal(t, b.Hash(), clone.Hash())

	clone.Move(Coordinate{1, 1}, Coordinate{1, 2})

	require.Equal(t, Dwarf, b.Piece(Coordinate{1, 1}), "Original should not change with its clone")
	require.True(t, b.DwarvesTurn())
	require.False(t, b.Equal(clone))
	require.NotEqual(t, b.Hash(), clone.Hash())
}

func TestBoardSet(t *testing.T) {
	small := newTestBoard(t, 3, 3, true, map[Coordinate]Piece{{1, 1}: Dwarf})
	standard := Standard()

	small.Set(standard)

	require.True(t, small.Equal(standard))
	require.Equal(t, 32, small.CountPieces(Dwarf), "Live squares should follow the new shape")
	require.Equal(t, 8, small.CountPieces(Troll))

	small.Remove(Coordinate{0, 5})
	require.Equal(t, Dwarf, standard.Piece(Coordinate{0, 5}), "Set should copy, not alias")
}

func TestBoardRemove(t *testing.T) {
	b := newTestBoard(t, 3, 3, true, map[Coordinate]Piece{{1, 1}: Dwarf})

	b.Remove(Coordinate{1, 1})
	b.Remove(Coordinate{0, 0})

	require.Equal(t, Empty, b.Piece(Coordinate{1, 1}))
	require.Equal(t, Out, b.Piece(Coordinate{0, 0}), "Out squares never change")
}

func TestBoardWinner(t *testing.T) {
	require.Equal(t, NoSide, Standard().Winner())
	require.Equal(t, Dwarves, newTestBoard(t, 3, 3, true, map[Coordinate]Piece{{1, 1}: Dwarf}).Winner())
	require.Equal(t, Trolls, newTestBoard(t, 3, 3, true, map[Coordinate]Piece{{1, 1}: Troll}).Winner())
}

func TestExpandSuccessors(t *testing.T) {
	trollOn := func(children []*Board, c Coordinate) []*Board {
		var result []*Board
		for _, child := range children {
			if child.Piece(c) == Troll && child.Piece(Coordinate{1, 2}) == Empty {
				result = append(result, child)
			}
		}
		return result
	}

	t.Run("plain troll step branches per victim", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, false, map[Coordinate]Piece{
			{1, 2}: Troll,
			{3, 1}: Dwarf,
			{3, 3}: Dwarf,
		})

		children := trollOn(b.ExpandSuccessors(), Coordinate{2, 2})

		require.Len(t, children, 2, "Each possible victim should yield its own successor")
		require.Equal(t, Empty, children[0].Piece(Coordinate{3, 1}))
		require.Equal(t, Dwarf, children[0].Piece(Coordinate{3, 3}))
		require.Equal(t, Dwarf, children[1].Piece(Coordinate{3, 1}))
		require.Equal(t, Empty, children[1].Piece(Coordinate{3, 3}))
		for _, child := range children {
			require.True(t, child.DwarvesTurn(), "Successors should hand the turn over")
		}
	})

	t.Run("pushed troll step kills every adjacent dwarf", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, false, map[Coordinate]Piece{
			{0, 2}: Troll,
			{1, 2}: Troll,
			{3, 1}: Dwarf,
			{3, 3}: Dwarf,
		})

		children := trollOn(b.ExpandSuccessors(), Coordinate{2, 2})

		require.Len(t, children, 1, "A shove should yield a single successor")
		require.Zero(t, children[0].CountPieces(Dwarf), "A shove should remove all adjacent dwarves")
	})

	t.Run("hurl replaces the troll", func(t *testing.T) {
		b := newTestBoard(t, 5, 3, true, map[Coordinate]Piece{
			{1, 1}: Dwarf,
			{2, 1}: Troll,
		})

		var hurled []*Board
		for _, child := range b.ExpandSuccessors() {
			if child.Piece(Coordinate{2, 1}) == Dwarf {
				hurled = append(hurled, child)
			}
		}

		require.Len(t, hurled, 1)
		require.Zero(t, hurled[0].CountPieces(Troll))
	})

	t.Run("successors match legal destinations when nothing is captured", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, true, map[Coordinate]Piece{{2, 2}: Dwarf, {4, 4}: Dwarf})

		children := b.ExpandSuccessors()

		expected := len(b.LegalDestinations(Coordinate{2, 2})) + len(b.LegalDestinations(Coordinate{4, 4}))
		require.Len(t, children, expected)
	})

	t.Run("eliminated side has no successors", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, false, map[Coordinate]Piece{{2, 2}: Dwarf})

		require.Empty(t, b.ExpandSuccessors(), "Trolls without pieces cannot move")
	})

	t.Run("successors do not share state", func(t *testing.T) {
		b := Micro()
		children := b.ExpandSuccessors()
		require.NotEmpty(t, children)

		children[0].Remove(Coordinate{3, 2})

		require.Equal(t, Troll, b.Piece(Coordinate{3, 2}))
		require.Equal(t, Troll, children[1].Piece(Coordinate{3, 2}))
	})
}
