package game

// undoEntry is one cell change. Entries with idx == segmentMark open the
// changes belonging to one move (passes included); for those, jumps holds
// the jump count from before the move.
type undoEntry struct {
	idx   int
	prev  CellState
	jumps int
}

const segmentMark = -1

func (b *Board) startUndo() {
	b.undo = append(b.undo, undoEntry{idx: segmentMark, jumps: b.jumps})
}

// Undo takes back the last move or pass. Cells are restored in reverse order
// down to the move's segment mark without recording anything, the turn goes
// back to the mover and the game is no longer decided. Blocks are never
// undone.
func (b *Board) Undo() error {
	if len(b.moves) == 0 {
		return ErrEmptyHistory
	}
	last := b.moves[len(b.moves)-1]
	b.moves = b.moves[:len(b.moves)-1]
	b.setTurn(Opponent(b.turn))

	k := len(b.undo) - 1
	for ; b.undo[k].idx != segmentMark; k-- {
		u := b.undo[k]
		b.write(u.idx, u.prev)
	}
	mark := b.undo[k]
	b.undo = b.undo[:k]

	switch {
	case last.IsJump():
		b.jumps--
	case last.IsExtend():
		b.jumps = mark.jumps
	}
	b.winner = Empty
	b.decided = false

	b.log.Debug().Str("move", last.String()).Msg("move undone")
	b.announce()
	return nil
}
