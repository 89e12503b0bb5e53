package game

import "fmt"

// Square is a board square by 0-based column ('a' = 0) and row ('1' = 0).
type Square struct {
	Col, Row int
}

// ParseSquare parses the two-character "cr" form, e.g. "b2".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: square %q", ErrBadNotation, s)
	}
	c, r := int(s[0]-'a'), int(s[1]-'1')
	if s[0] < 'a' || s[1] < '1' || c >= Side || r >= Side {
		return Square{}, fmt.Errorf("%w: square %q", ErrBadNotation, s)
	}
	return Square{Col: c, Row: r}, nil
}

// OnBoard reports whether sq lies within a1..g7.
func (sq Square) OnBoard() bool {
	return sq.Col >= 0 && sq.Col < Side && sq.Row >= 0 && sq.Row < Side
}

// inGrid reports whether sq lies within the extended grid, frame included.
func (sq Square) inGrid() bool {
	return sq.Col >= -border && sq.Col < Side+border &&
		sq.Row >= -border && sq.Row < Side+border
}

// Index returns the linear index of sq.
func (sq Square) Index() int { return Index(sq.Col, sq.Row) }

func (sq Square) String() string {
	if !sq.OnBoard() {
		return fmt.Sprintf("(%d,%d)", sq.Col, sq.Row)
	}
	return string([]byte{byte('a' + sq.Col), byte('1' + sq.Row)})
}

// Move 表示一次从 From 到 To 的走子；pass 时两者无意义
type Move struct {
	From Square
	To   Square
	pass bool
}

// Pass is the pass pseudo-move.
var Pass = Move{pass: true}

// NewMove returns the move from (c0, r0) to (c1, r1).
func NewMove(c0, r0, c1, r1 int) Move {
	return Move{From: Square{c0, r0}, To: Square{c1, r1}}
}

// ParseMove parses "c0r0-c1r1" or "-" for a pass.
func ParseMove(s string) (Move, error) {
	if s == "-" {
		return Pass, nil
	}
	if len(s) != 5 || s[2] != '-' {
		return Move{}, fmt.Errorf("%w: move %q", ErrBadNotation, s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[3:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

// IsPass reports whether m is the pass move.
func (m Move) IsPass() bool { return m.pass }

// IsExtend reports whether m moves to an adjacent square, leaving the
// origin occupied.
func (m Move) IsExtend() bool {
	if m.pass {
		return false
	}
	dc, dr := m.delta()
	return dc <= 1 && dr <= 1
}

// IsJump reports whether m moves more than one step in either axis,
// vacating the origin.
func (m Move) IsJump() bool {
	if m.pass {
		return false
	}
	dc, dr := m.delta()
	return dc > 1 || dr > 1
}

func (m Move) delta() (dc, dr int) {
	return abs(m.To.Col - m.From.Col), abs(m.To.Row - m.From.Row)
}

func (m Move) String() string {
	if m.pass {
		return "-"
	}
	return m.From.String() + "-" + m.To.String()
}

// LegalMove reports whether m is legal for the side to move. A pass is legal
// only when that side has no other move. Nothing is legal once the game is
// decided.
func (b *Board) LegalMove(m Move) bool {
	if b.decided {
		return false
	}
	if m.pass {
		return !b.CanMove(b.turn)
	}
	return b.LegalMoveFor(m, b.turn)
}

// LegalMoveFor reports whether the non-pass move m is legal for who,
// disregarding whose turn it is: the move spans at most two rows and two
// columns, the destination is empty and the origin holds who.
func (b *Board) LegalMoveFor(m Move, who CellState) bool {
	if m.pass || (who != Red && who != Blue) || !m.From.inGrid() || !m.To.inGrid() {
		return false
	}
	dc, dr := m.delta()
	return dc <= 2 && dr <= 2 &&
		b.Cells[m.To.Index()] == Empty &&
		b.Cells[m.From.Index()] == who
}

// PossibleMoves enumerates every legal non-pass move for who, ordered by
// origin row-major from a1 and then by destination offset.
func (b *Board) PossibleMoves(who CellState) []Move {
	if who != Red && who != Blue {
		return nil
	}
	moves := make([]Move, 0, 64) // 预分配
	for _, i := range PlayableI {
		if b.Cells[i] != who {
			continue
		}
		c0, r0 := ColRow(i)
		for _, off := range reachOff {
			// 边框恒为 Blocked，不需要越界判断
			if b.Cells[i+off] != Empty {
				continue
			}
			c1, r1 := ColRow(i + off)
			moves = append(moves, NewMove(c0, r0, c1, r1))
		}
	}
	return moves
}

// CanMove reports whether who has any legal non-pass move, regardless of
// whose turn it is or whether the game is over.
func (b *Board) CanMove(who CellState) bool {
	if who != Red && who != Blue {
		return false
	}
	for _, i := range PlayableI {
		if b.Cells[i] != who {
			continue
		}
		for _, off := range reachOff {
			if b.Cells[i+off] == Empty {
				return true
			}
		}
	}
	return false
}
