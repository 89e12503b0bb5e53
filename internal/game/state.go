package game

import "fmt"

// MakeMoveString parses s ("c0r0-c1r1" or "-") and makes the move.
func (b *Board) MakeMoveString(s string) error {
	m, err := ParseMove(s)
	if err != nil {
		return err
	}
	return b.MakeMove(m)
}

// MakeMove 执行一步棋：跳跃或扩张 + 周围 8 格感染，然后换手并做终局判定。
// Illegal moves, and any move once the game is decided, return an error
// wrapping ErrIllegalMove before the board is touched.
func (b *Board) MakeMove(m Move) error {
	if b.decided {
		return fmt.Errorf("%w: %s: game is over", ErrIllegalMove, m)
	}
	if !b.LegalMove(m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	if m.pass {
		b.pass()
		return nil
	}

	mover := b.turn
	opp := Opponent(mover)
	from, to := m.From.Index(), m.To.Index()

	b.moves = append(b.moves, m)
	b.startUndo()

	if m.IsJump() {
		b.jumps++
		b.set(from, Empty)
	} else {
		b.jumps = 0
	}

	b.set(to, mover)
	infected := 0
	for _, off := range neighOff {
		if b.Cells[to+off] == opp {
			b.set(to+off, mover)
			infected++
		}
	}

	b.setTurn(opp)
	b.checkGameEnd()

	b.log.Debug().
		Str("move", m.String()).
		Stringer("mover", mover).
		Int("infected", infected).
		Int("jumps", b.jumps).
		Msg("move applied")
	b.announce()
	return nil
}

// pass hands the turn to the opponent. It records the pass in the move log
// and opens an empty undo segment so Undo treats it like any other move.
func (b *Board) pass() {
	b.moves = append(b.moves, Pass)
	b.startUndo()
	b.setTurn(Opponent(b.turn))
	b.log.Debug().Stringer("next", b.turn).Msg("pass")
	b.announce()
}

// checkGameEnd decides the game when the jump limit is reached, either side
// has no pieces, no empty squares remain, or neither side can move. The side
// with more pieces wins; equal counts are a draw.
func (b *Board) checkGameEnd() {
	red, blue := b.counts[Red], b.counts[Blue]
	ended := b.jumps >= JumpLimit ||
		red == 0 || blue == 0 ||
		b.counts[Empty] == 0 ||
		(!b.CanMove(Red) && !b.CanMove(Blue))
	if !ended {
		return
	}
	b.decide(red, blue)
}

func (b *Board) decide(red, blue int) {
	b.decided = true
	switch {
	case red > blue:
		b.winner = Red
	case blue > red:
		b.winner = Blue
	default:
		b.winner = Empty // 平局
	}
	b.log.Debug().
		Stringer("winner", b.winner).
		Int("red", red).
		Int("blue", blue).
		Msg("game over")
}
