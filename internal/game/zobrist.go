package game

import (
	"golang.org/x/exp/rand"
)

// zobristSeed is fixed so hashes are stable across runs and processes.
const zobristSeed = 0x5eed_a7a7

var (
	zobristCell [BoardN][4]uint64 // [index][state]
	zobristSide [2]uint64
)

func init() {
	initZobrist()
}

func initZobrist() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for i := range zobristCell {
		zobristCell[i] = [4]uint64{
			rng.Uint64(), // Empty
			rng.Uint64(), // Blocked
			rng.Uint64(), // Red
			rng.Uint64(), // Blue
		}
	}
	zobristSide[0] = rng.Uint64() // Red to move
	zobristSide[1] = rng.Uint64() // Blue to move
}

func zobKeyI(i int, s CellState) uint64 { return zobristCell[i][s] }

func sideIdx(p CellState) int {
	if p == Blue {
		return 1
	}
	return 0
}

// computeHash rebuilds the hash from scratch. Incremental updates in write
// and setTurn must always agree with it.
func (b *Board) computeHash() uint64 {
	var h uint64
	for i, s := range b.Cells {
		h ^= zobKeyI(i, s)
	}
	return h ^ zobristSide[sideIdx(b.turn)]
}
