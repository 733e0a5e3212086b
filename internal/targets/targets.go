// Package targets derives and checks the four 2x2 block-sum clues.
package targets

import "svw.info/dominosum/internal/domain"

// Grid rebuilds the filled 4x4 value grid from a solution tiling.
func Grid(tiles []domain.Tile) [domain.GridSize][domain.GridSize]uint8 {
	var g [domain.GridSize][domain.GridSize]uint8
	for _, t := range tiles {
		g[t.First.Row][t.First.Col] = t.A
		g[t.Second.Row][t.Second.Col] = t.B
	}
	return g
}

// FromTiles computes the block-sum targets for a solution tiling. It must be
// fed the original tiling, never player placements: a player may reach an
// alternate tiling with matching sums and the clues must not drift.
func FromTiles(tiles []domain.Tile) [domain.BlockCount]int {
	g := Grid(tiles)
	var out [domain.BlockCount]int
	for i := 0; i < domain.BlockCount; i++ {
		for _, c := range domain.BlockCells(i) {
			out[i] += int(g[c.Row][c.Col])
		}
	}
	return out
}

// Check compares a full board's block sums against the targets. Wrong blocks
// are reported 1-indexed, in block order.
func Check(b *domain.Board, want [domain.BlockCount]int) (bool, []int) {
	var wrong []int
	for i := 0; i < domain.BlockCount; i++ {
		sum := 0
		for _, c := range domain.BlockCells(i) {
			sum += int(b.Values[c.Row][c.Col])
		}
		if sum != want[i] {
			wrong = append(wrong, i+1)
		}
	}
	return len(wrong) == 0, wrong
}
