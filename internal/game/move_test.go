package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("move", func(t *testing.T) {
		m, err := ParseMove("g1-g2")
		require.NoError(t, err)
		require.Equal(t, NewMove(6, 0, 6, 1), m)
		require.True(t, m.IsExtend())
		require.False(t, m.IsJump())
		require.False(t, m.IsPass())
		require.Equal(t, "g1-g2", m.String())
	})

	t.Run("jump", func(t *testing.T) {
		m, err := ParseMove("a7-c5")
		require.NoError(t, err)
		require.True(t, m.IsJump())
		require.False(t, m.IsExtend())
	})

	t.Run("pass", func(t *testing.T) {
		m, err := ParseMove("-")
		require.NoError(t, err)
		require.True(t, m.IsPass())
		require.False(t, m.IsJump())
		require.False(t, m.IsExtend())
		require.Equal(t, "-", m.String())
	})

	t.Run("bad notation", func(t *testing.T) {
		for _, s := range []string{"", "g1g2", "g1-g", "h1-g1", "a0-a1", "a1-a8", "A1-a2", "a1_a2"} {
			_, err := ParseMove(s)
			require.ErrorIs(t, err, ErrBadNotation, s)
		}
	})
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("d4")
	require.NoError(t, err)
	require.Equal(t, Square{3, 3}, sq)
	require.True(t, sq.OnBoard())
	require.Equal(t, "d4", sq.String())
	require.Equal(t, Index(3, 3), sq.Index())

	require.False(t, Square{-1, 0}.OnBoard())
	require.Equal(t, "(-1,0)", Square{-1, 0}.String())
}

func TestMakeMoveStringErrors(t *testing.T) {
	b := NewBoard()
	require.ErrorIs(t, b.MakeMoveString("z9-a1"), ErrBadNotation)
	require.ErrorIs(t, b.MakeMoveString("a1-a2"), ErrIllegalMove, "blue piece on red's turn")
	require.ErrorIs(t, b.MakeMoveString("g1-d1"), ErrIllegalMove)
	require.Zero(t, b.NumMoves())
}
