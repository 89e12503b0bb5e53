package game

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// place writes s to the square named by cr without recording undo history.
func place(t *testing.T, b *Board, cr string, s CellState) {
	t.Helper()
	sq, err := ParseSquare(cr)
	require.NoError(t, err)
	b.write(sq.Index(), s)
}

func requireInvariants(t *testing.T, b *Board) {
	t.Helper()
	var scanned [4]int
	for i, s := range b.Cells {
		require.True(t, s >= Empty && s <= Blue, "cell %d holds %d", i, s)
		scanned[s]++
		c, r := ColRow(i)
		if !(Square{c, r}).OnBoard() {
			require.Equal(t, Blocked, s, "frame cell %d must stay blocked", i)
		}
	}
	require.Equal(t, scanned, b.counts, "piece counts drifted")
	sum := 0
	for _, n := range b.counts {
		sum += n
	}
	require.Equal(t, BoardN, sum)

	blocked := 0
	for _, i := range PlayableI {
		if b.Cells[i] == Blocked {
			blocked++
		}
	}
	require.Equal(t, Side*Side-blocked, b.TotalOpen())
	require.Equal(t, b.computeHash(), b.Hash(), "hash drifted")
}

// randomGame plays up to plies random legal moves (passing when forced) and
// returns the board.
func randomGame(t *testing.T, seed uint64, plies int) *Board {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b := NewBoard()
	for i := 0; i < plies; i++ {
		if _, over := b.Winner(); over {
			break
		}
		require.NoError(t, b.MakeMove(randomMove(rng, b)))
	}
	return b
}

func randomMove(rng *rand.Rand, b *Board) Move {
	moves := b.PossibleMoves(b.WhoseMove())
	if len(moves) == 0 {
		return Pass
	}
	return moves[rng.Intn(len(moves))]
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, Red, b.WhoseMove())
	require.Equal(t, Red, b.Get(6, 0), "g1")
	require.Equal(t, Red, b.Get(0, 6), "a7")
	require.Equal(t, Blue, b.Get(0, 0), "a1")
	require.Equal(t, Blue, b.Get(6, 6), "g7")
	require.Equal(t, 2, b.RedPieces())
	require.Equal(t, 2, b.BluePieces())
	require.Equal(t, 45, b.NumPieces(Empty))
	require.Equal(t, BoardN-Side*Side, b.NumPieces(Blocked))
	require.Equal(t, Side*Side, b.TotalOpen())
	require.Zero(t, b.NumMoves())
	require.Zero(t, b.NumJumps())

	_, over := b.Winner()
	require.False(t, over)
	requireInvariants(t, b)
}

func TestFrameIsBlocked(t *testing.T) {
	b := NewBoard()
	for c := -2; c < Side+2; c++ {
		for r := -2; r < Side+2; r++ {
			if (Square{c, r}).OnBoard() {
				continue
			}
			require.Equal(t, Blocked, b.Get(c, r), "(%d,%d)", c, r)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	for c := -2; c < Side+2; c++ {
		for r := -2; r < Side+2; r++ {
			gc, gr := ColRow(Index(c, r))
			require.Equal(t, c, gc)
			require.Equal(t, r, gr)
		}
	}
	require.Equal(t, Index(3, 4), Neighbor(Index(2, 2), 1, 2))
}

func TestFormat(t *testing.T) {
	b := NewBoard()
	want := "" +
		"  r - - - - - b\n" +
		"  - - - - - - -\n" +
		"  - - - - - - -\n" +
		"  - - - - - - -\n" +
		"  - - - - - - -\n" +
		"  - - - - - - -\n" +
		"  b - - - - - r\n"
	require.Equal(t, want, b.String())

	require.NoError(t, b.SetBlockString("d4"))
	legend := b.Format(true)
	require.Contains(t, legend, "4  - - - X - - -\n")
	require.Contains(t, legend, "   a b c d e f g")
}

func TestCopy(t *testing.T) {
	calls := 0
	b := NewBoard(WithNotifier(NotifierFunc(func(*Board) { calls++ })))
	require.NoError(t, b.MakeMoveString("g1-g2"))
	calls = 0

	cp := b.Copy()
	require.True(t, cp.Equal(b))
	require.Equal(t, b.Hash(), cp.Hash())
	require.Zero(t, cp.NumMoves(), "history is not copied")
	require.ErrorIs(t, cp.Undo(), ErrEmptyHistory)

	require.NoError(t, cp.MakeMoveString("a1-a2"))
	require.Equal(t, Empty, b.Get(0, 1), "copy must not share cells")
	require.Equal(t, Blue, b.WhoseMove())
	require.Zero(t, calls, "copy must not share the notifier")
	requireInvariants(t, cp)
	requireInvariants(t, b)
}

func TestNotifier(t *testing.T) {
	calls := 0
	b := NewBoard()
	b.SetNotifier(NotifierFunc(func(nb *Board) {
		require.Same(t, b, nb)
		calls++
	}))
	require.Equal(t, 1, calls, "installing the hook announces")

	require.NoError(t, b.MakeMoveString("g1-g2"))
	require.Equal(t, 2, calls)

	require.Error(t, b.MakeMoveString("g1-g5"))
	require.Equal(t, 2, calls, "rejected moves do not announce")

	require.NoError(t, b.Undo())
	require.Equal(t, 3, calls)

	b.Clear()
	require.Equal(t, 4, calls)

	b.SetNotifier(nil)
	require.NoError(t, b.MakeMoveString("g1-g2"))
	require.Equal(t, 4, calls)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	b := NewBoard(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	require.NoError(t, b.MakeMoveString("g1-g2"))
	require.NoError(t, b.Undo())

	out := buf.String()
	require.Contains(t, out, `"move":"g1-g2"`)
	require.Contains(t, out, "move applied")
	require.Contains(t, out, "move undone")
}

func TestHashTranspositions(t *testing.T) {
	a := NewBoard()
	for _, m := range []string{"g1-g2", "a1-a2", "a7-a6"} {
		require.NoError(t, a.MakeMoveString(m))
	}
	b := NewBoard()
	for _, m := range []string{"a7-a6", "a1-a2", "g1-g2"} {
		require.NoError(t, b.MakeMoveString(m))
	}
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, NewBoard().Hash(), a.Hash())
}

func TestSnapshot(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.MakeMoveString("g1-e3"))
	s := b.Snapshot()

	require.Equal(t, Red, s.At(Square{4, 2}))
	require.Equal(t, Empty, s.At(Square{6, 0}))
	require.Equal(t, Blocked, s.At(Square{-1, 0}))
	require.Equal(t, Blue, s.Turn)
	require.Equal(t, 2, s.Red)
	require.Equal(t, 2, s.Blue)
	require.Equal(t, 1, s.Jumps)
	require.Equal(t, 1, s.Moves)
	require.False(t, s.Decided)

	require.NoError(t, b.MakeMoveString("a1-a2"))
	require.Equal(t, Empty, s.At(Square{0, 1}), "snapshot is a value copy")
}

func TestRandomGamesKeepInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := NewBoard()
		for ply := 0; ply < 3000; ply++ {
			if _, over := b.Winner(); over {
				break
			}
			require.NoError(t, b.MakeMove(randomMove(rng, b)))
			requireInvariants(t, b)
		}
		_, over := b.Winner()
		require.True(t, over, "seed %d: random game should finish", seed)
	}
}
