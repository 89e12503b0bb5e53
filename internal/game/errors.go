package game

import "errors"

var (
	// ErrIllegalMove is returned by MakeMove for moves that fail the legality
	// check. The board is left untouched.
	ErrIllegalMove = errors.New("illegal move")
	// ErrIllegalBlock is returned by SetBlock once the game has started, for
	// squares off the board, or when the square or one of its reflections
	// holds a piece.
	ErrIllegalBlock = errors.New("illegal block placement")
	// ErrEmptyHistory is returned by Undo when there is nothing to undo.
	ErrEmptyHistory = errors.New("no moves to undo")
	// ErrBadNotation is returned when a move or square string cannot be parsed.
	ErrBadNotation = errors.New("bad notation")
)
