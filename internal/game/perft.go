package game

// Perft counts the leaves of the move tree of the given depth below b. A pass
// counts as a move; decided positions are leaves. b itself is not modified.
func Perft(b *Board, depth int) uint64 {
	return perft(b.Copy(), depth)
}

// PerftDivide returns the Perft count below each root move.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	nb := b.Copy()
	for _, m := range rootMoves(nb) {
		if err := nb.MakeMove(m); err != nil {
			panic(err)
		}
		out[m] = perft(nb, depth-1)
		if err := nb.Undo(); err != nil {
			panic(err)
		}
	}
	return out
}

func rootMoves(b *Board) []Move {
	if _, over := b.Winner(); over {
		return nil
	}
	moves := b.PossibleMoves(b.WhoseMove())
	if len(moves) == 0 {
		return []Move{Pass}
	}
	return moves
}

func perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := rootMoves(b)
	if len(moves) == 0 {
		return 1
	}
	var n uint64
	for _, m := range moves {
		if err := b.MakeMove(m); err != nil {
			panic(err)
		}
		n += perft(b, depth-1)
		if err := b.Undo(); err != nil {
			panic(err)
		}
	}
	return n
}
