// File game/board.go
package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// CellState represents the state of a cell on the board.
// It can be Empty, Blocked, or occupied by Red or Blue.
type CellState int

const (
	Empty CellState = iota
	Blocked
	Red
	Blue
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Blocked:
		return "blocked"
	case Red:
		return "red"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("CellState(%d)", int(s))
}

// Opponent returns the other player's colour, or Empty for non-player states.
func Opponent(player CellState) CellState {
	switch player {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return Empty
}

const (
	// Side is the number of squares on a side of the playable board.
	Side = 7
	// border is the depth of the always-blocked frame around the board.
	border = 2
	// ExtendedSide is Side plus the frame on both edges.
	ExtendedSide = Side + 2*border
	// BoardN is the number of cells in the extended grid.
	BoardN = ExtendedSide * ExtendedSide
	// JumpLimit is the number of consecutive jumps that ends the game.
	JumpLimit = 25
)

var (
	// PlayableI lists the linear indices of a1..g7, row-major from row 1.
	PlayableI [Side * Side]int
	// neighOff holds the 8 linear offsets of the 3×3 ring around a cell.
	neighOff [8]int
	// reachOff holds the 24 linear offsets of the 5×5 area around a cell,
	// ordered by row then column.
	reachOff [24]int
)

func init() {
	k := 0
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			PlayableI[k] = Index(c, r)
			k++
		}
	}
	n, j := 0, 0
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			off := dc + dr*ExtendedSide
			reachOff[j] = off
			j++
			if abs(dc) <= 1 && abs(dr) <= 1 {
				neighOff[n] = off
				n++
			}
		}
	}
}

// Index returns the linearized index of the square at column c and row r,
// both 0-based ('a' and '1' are 0). Values in [-2, Side+1] address the
// blocked frame.
func Index(c, r int) int {
	return (r+border)*ExtendedSide + (c + border)
}

// Neighbor returns the index of the cell dc columns and dr rows from sq.
func Neighbor(sq, dc, dr int) int {
	return sq + dc + dr*ExtendedSide
}

// ColRow is the inverse of Index.
func ColRow(sq int) (c, r int) {
	return sq%ExtendedSide - border, sq/ExtendedSide - border
}

// Board is an Ataxx board together with its game state: whose move it is,
// the winner once decided, the move log and the undo log.
type Board struct {
	Cells [BoardN]CellState // 定长数组，含两圈边框

	turn    CellState
	winner  CellState
	decided bool
	jumps   int
	open    int
	counts  [4]int
	hash    uint64

	moves []Move
	undo  []undoEntry

	notifier Notifier
	log      zerolog.Logger
}

// Option configures a Board at construction time.
type Option func(b *Board)

// WithNotifier installs n as the change-notification hook.
func WithNotifier(n Notifier) Option {
	return func(b *Board) {
		b.notifier = n
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Board) {
		b.log = l
	}
}

// NewBoard creates a board in the starting position.
func NewBoard(opts ...Option) *Board {
	b := &Board{
		notifier: nopNotifier{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Clear()
	return b
}

// NewBoardFrom returns a board whose contents are copied from b0 but whose
// history is empty and whose notifier does nothing.
func NewBoardFrom(b0 *Board, opts ...Option) *Board {
	b := &Board{
		Cells:    b0.Cells,
		turn:     b0.turn,
		winner:   b0.winner,
		decided:  b0.decided,
		jumps:    b0.jumps,
		open:     b0.open,
		counts:   b0.counts,
		hash:     b0.hash,
		notifier: nopNotifier{},
		log:      b0.log,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Copy is NewBoardFrom(b, opts...).
func (b *Board) Copy(opts ...Option) *Board {
	return NewBoardFrom(b, opts...)
}

// Clear resets the board to the starting position: Red on g1 and a7, Blue on
// a1 and g7, Red to move, no blocks and no history.
func (b *Board) Clear() {
	b.turn = Red
	b.winner = Empty
	b.decided = false
	b.jumps = 0
	b.moves = nil
	b.undo = nil

	for i := range b.Cells {
		b.Cells[i] = Blocked
	}
	b.counts = [4]int{}
	b.counts[Blocked] = BoardN
	b.open = Side * Side
	for _, i := range PlayableI {
		b.unrecordedSet(i, Empty)
	}
	b.unrecordedSet(Index(6, 0), Red)
	b.unrecordedSet(Index(0, 6), Red)
	b.unrecordedSet(Index(0, 0), Blue)
	b.unrecordedSet(Index(6, 6), Blue)
	b.hash = b.computeHash()

	b.log.Debug().Msg("board cleared")
	b.announce()
}

// Get returns the contents of the square at column c, row r (0-based).
func (b *Board) Get(c, r int) CellState {
	return b.Cells[Index(c, r)]
}

// GetI returns the contents of the cell with linear index i.
func (b *Board) GetI(i int) CellState { return b.Cells[i] }

// GetSquare returns the contents of sq.
func (b *Board) GetSquare(sq Square) CellState {
	return b.Cells[sq.Index()]
}

// WhoseMove returns the colour that moves next.
func (b *Board) WhoseMove() CellState { return b.turn }

// Winner returns the winner and true once the game is decided. A decided
// game with winner Empty is a draw.
func (b *Board) Winner() (CellState, bool) {
	return b.winner, b.decided
}

// NumPieces returns the number of cells holding s. Empty and Blocked counts
// cover the frame too, so the four counts always sum to BoardN.
func (b *Board) NumPieces(s CellState) int { return b.counts[s] }

// RedPieces returns the number of red pieces on the board.
func (b *Board) RedPieces() int { return b.counts[Red] }

// BluePieces returns the number of blue pieces on the board.
func (b *Board) BluePieces() int { return b.counts[Blue] }

// TotalOpen returns the number of unblocked squares.
func (b *Board) TotalOpen() int { return b.open }

// NumJumps returns the number of consecutive jumps since the last extend or
// the start of the game.
func (b *Board) NumJumps() int { return b.jumps }

// NumMoves returns the number of moves and passes since the last Clear.
func (b *Board) NumMoves() int { return len(b.moves) }

// AllMoves returns a copy of the moves made since the last Clear.
func (b *Board) AllMoves() []Move {
	return append([]Move(nil), b.moves...)
}

// Hash returns the Zobrist hash of the position, including the side to move.
func (b *Board) Hash() uint64 { return b.hash }

// set writes s to cell i and records the previous value in the undo log.
func (b *Board) set(i int, s CellState) {
	b.undo = append(b.undo, undoEntry{idx: i, prev: b.Cells[i]})
	b.write(i, s)
}

// unrecordedSet writes s to cell i without touching the undo log. Blocking
// a cell is permanent, so it is the only path that lowers the open count.
func (b *Board) unrecordedSet(i int, s CellState) {
	if s == Blocked && b.Cells[i] != Blocked {
		b.open--
	}
	b.write(i, s)
}

func (b *Board) write(i int, s CellState) {
	prev := b.Cells[i]
	if prev == s {
		return
	}
	b.counts[prev]--
	b.counts[s]++
	b.hash ^= zobKeyI(i, prev)
	b.Cells[i] = s
	b.hash ^= zobKeyI(i, s)
}

func (b *Board) setTurn(s CellState) {
	if b.turn == s {
		return
	}
	b.hash ^= zobristSide[sideIdx(b.turn)]
	b.turn = s
	b.hash ^= zobristSide[sideIdx(b.turn)]
}

// SetNotifier replaces the change-notification hook and fires it once.
// A nil n restores the no-op hook.
func (b *Board) SetNotifier(n Notifier) {
	if n == nil {
		n = nopNotifier{}
	}
	b.notifier = n
	b.announce()
}

func (b *Board) announce() {
	if b.notifier != nil {
		b.notifier.BoardChanged(b)
	}
}

// Equal reports whether b and o hold the same cells, turn, winner and jump
// count. Histories are not compared.
func (b *Board) Equal(o *Board) bool {
	return b.Cells == o.Cells &&
		b.turn == o.turn &&
		b.winner == o.winner &&
		b.decided == o.decided &&
		b.jumps == o.jumps
}

func (b *Board) String() string {
	return b.Format(false)
}

// Format returns a text depiction of the board, row 7 first. With legend,
// row numbers and column letters are printed around the edges.
func (b *Board) Format(legend bool) string {
	var sb strings.Builder
	for r := Side - 1; r >= 0; r-- {
		if legend {
			sb.WriteByte(byte('1' + r))
		}
		sb.WriteByte(' ')
		for c := 0; c < Side; c++ {
			sb.WriteByte(' ')
			sb.WriteByte(cellChar(b.Get(c, r)))
		}
		sb.WriteByte('\n')
	}
	if legend {
		sb.WriteString("   a b c d e f g")
	}
	return sb.String()
}

func cellChar(s CellState) byte {
	switch s {
	case Red:
		return 'r'
	case Blue:
		return 'b'
	case Blocked:
		return 'X'
	}
	return '-'
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
