package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	b := newTestBoard(t, 5, 5, false, map[Coordinate]Piece{
		{1, 2}: Troll,
		{3, 1}: Dwarf,
		{3, 3}: Dwarf,
	})

	t.Run("rejects pieces of the other side", func(t *testing.T) {
		_, err := b.Apply(NewMove(Coordinate{3, 1}, Coordinate{4, 1}))
		require.ErrorIs(t, err, ErrNotYourPiece)
	})

	t.Run("rejects unreachable squares", func(t *testing.T) {
		_, err := b.Apply(NewMove(Coordinate{1, 2}, Coordinate{4, 4}))
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("requires a victim when several dwarves are adjacent", func(t *testing.T) {
		_, err := b.Apply(NewMove(Coordinate{1, 2}, Coordinate{2, 2}))
		require.ErrorIs(t, err, ErrVictimRequired)
	})

	t.Run("rejects a victim that is not adjacent", func(t *testing.T) {
		_, err := b.Apply(NewMove(Coordinate{1, 2}, Coordinate{2, 2}).WithVictim(Coordinate{4, 4}))
		require.ErrorIs(t, err, ErrInvalidVictim)
	})

	t.Run("captures the chosen victim", func(t *testing.T) {
		next, err := b.Apply(NewMove(Coordinate{1, 2}, Coordinate{2, 2}).WithVictim(Coordinate{3, 3}))
		require.NoError(t, err)

		require.Equal(t, Dwarf, next.Piece(Coordinate{3, 1}))
		require.Equal(t, Empty, next.Piece(Coordinate{3, 3}))
		require.True(t, next.DwarvesTurn())
		require.Equal(t, Troll, b.Piece(Coordinate{1, 2}), "Apply should not touch the receiver")
	})

	t.Run("takes the only victim", func(t *testing.T) {
		next, err := b.Apply(NewMove(Coordinate{1, 2}, Coordinate{2, 1}))
		require.NoError(t, err)

		require.Equal(t, Empty, next.Piece(Coordinate{3, 1}))
		require.Equal(t, 1, next.CountPieces(Dwarf))
	})

	t.Run("result is a successor", func(t *testing.T) {
		next, err := b.Apply(NewMove(Coordinate{1, 2}, Coordinate{0, 2}))
		require.NoError(t, err)

		found := false
		for _, child := range b.ExpandSuccessors() {
			found = found || child.Equal(next)
		}
		require.True(t, found)
	})
}

func TestApplyShove(t *testing.T) {
	b := newTestBoard(t, 5, 5, false, map[Coordinate]Piece{
		{0, 2}: Troll,
		{1, 2}: Troll,
		{3, 1}: Dwarf,
		{3, 3}: Dwarf,
	})

	next, err := b.Apply(NewMove(Coordinate{1, 2}, Coordinate{2, 2}))
	require.NoError(t, err, "Shoves need no victim")

	require.Zero(t, next.CountPieces(Dwarf))
	require.Equal(t, Trolls, next.Winner())
}

func TestMoveString(t *testing.T) {
	m := NewMove(Coordinate{1, 2}, Coordinate{2, 2})
	require.Equal(t, "(1,2)-(2,2)", m.String())

	_, ok := m.Victim()
	require.False(t, ok)

	m = m.WithVictim(Coordinate{3, 3})
	require.Equal(t, "(1,2)-(2,2) x(3,3)", m.String())
}
