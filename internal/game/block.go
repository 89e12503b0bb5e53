package game

import "fmt"

// center of the board, d4.
const center = Side / 2

// reflections returns the distinct squares obtained by reflecting sq across
// the middle row and the middle column.
func reflections(sq Square) []Square {
	dc, dr := abs(sq.Col-center), abs(sq.Row-center)
	all := [4]Square{
		{center + dc, center + dr},
		{center + dc, center - dr},
		{center - dc, center + dr},
		{center - dc, center - dr},
	}
	out := make([]Square, 0, 4)
	for _, s := range all {
		dup := false
		for _, o := range out {
			if o == s {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}

// LegalBlock reports whether a block may be placed at sq: no move has been
// made since the last Clear, sq is on the board and empty, and none of its
// reflections holds a piece.
func (b *Board) LegalBlock(sq Square) bool {
	if len(b.moves) != 0 || !sq.OnBoard() || b.GetSquare(sq) != Empty {
		return false
	}
	for _, r := range reflections(sq) {
		if s := b.GetSquare(r); s == Red || s == Blue {
			return false
		}
	}
	return true
}

// SetBlockString parses the two-character "cr" form and places the block.
func (b *Board) SetBlockString(cr string) error {
	sq, err := ParseSquare(cr)
	if err != nil {
		return err
	}
	return b.SetBlock(sq)
}

// SetBlock blocks sq and its reflections across the middle row and column.
// Reflections that are already blocked are left alone. Blocks are permanent
// and are not part of the undo history. If afterwards neither side can move,
// the game is a draw.
func (b *Board) SetBlock(sq Square) error {
	if !b.LegalBlock(sq) {
		return fmt.Errorf("%w: %s", ErrIllegalBlock, sq)
	}
	placed := 0
	for _, r := range reflections(sq) {
		i := r.Index()
		if b.Cells[i] == Blocked {
			continue
		}
		b.unrecordedSet(i, Blocked)
		placed++
	}
	if !b.CanMove(Red) && !b.CanMove(Blue) {
		b.decided = true
		b.winner = Empty
	}
	b.log.Debug().
		Str("square", sq.String()).
		Int("placed", placed).
		Int("open", b.open).
		Msg("block placed")
	b.announce()
	return nil
}
