package game

// Snapshot is a read-only value copy of the playable state, for display
// collaborators that must not hold on to a live Board.
type Snapshot struct {
	Cells   [Side][Side]CellState // [row][col]，row 0 为 '1'
	Turn    CellState
	Red     int
	Blue    int
	Open    int
	Jumps   int
	Moves   int
	Winner  CellState
	Decided bool
}

// Snapshot captures the current state of b.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Turn:    b.turn,
		Red:     b.counts[Red],
		Blue:    b.counts[Blue],
		Open:    b.open,
		Jumps:   b.jumps,
		Moves:   len(b.moves),
		Winner:  b.winner,
		Decided: b.decided,
	}
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			s.Cells[r][c] = b.Get(c, r)
		}
	}
	return s
}

// At returns the contents of sq, or Blocked when sq is off the board.
func (s Snapshot) At(sq Square) CellState {
	if !sq.OnBoard() {
		return Blocked
	}
	return s.Cells[sq.Row][sq.Col]
}
