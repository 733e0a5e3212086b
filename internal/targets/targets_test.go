package targets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/dominosum/internal/domain"
	"svw.info/dominosum/internal/generator"
)

// A tiling of horizontal dominoes, each lying fully inside one block.
func fixtureTiles() []domain.Tile {
	mk := func(id int, a, b uint8, r, c int) domain.Tile {
		return domain.Tile{
			Domino: domain.Domino{ID: id, A: a, B: b},
			First:  domain.Cell{Row: r, Col: c},
			Second: domain.Cell{Row: r, Col: c + 1},
		}
	}
	return []domain.Tile{
		mk(0, 3, 5, 0, 0),
		mk(1, 1, 2, 0, 2),
		mk(2, 4, 6, 1, 0),
		mk(3, 2, 2, 1, 2),
		mk(4, 1, 1, 2, 0),
		mk(5, 6, 5, 2, 2),
		mk(6, 2, 3, 3, 0),
		mk(7, 4, 1, 3, 2),
	}
}

func TestFromTilesKnownSums(t *testing.T) {
	tiles := fixtureTiles()
	got := FromTiles(tiles)
	require.Equal(t, [domain.BlockCount]int{18, 7, 7, 16}, got)
	// deterministic: same tiling, same targets
	require.Equal(t, got, FromTiles(tiles))
}

func TestTargetsSumEqualsAllPips(t *testing.T) {
	g := generator.NewBacktracking()
	for seed := int64(1); seed <= 20; seed++ {
		tiles, _, err := g.Generate(context.Background(), seed)
		require.NoError(t, err)
		total := 0
		for _, tile := range tiles {
			total += int(tile.A) + int(tile.B)
		}
		sum := 0
		for _, v := range FromTiles(tiles) {
			sum += v
		}
		require.Equal(t, total, sum, "seed %d", seed)
	}
}

func TestCheckReportsWrongBlocks(t *testing.T) {
	tiles := fixtureTiles()
	want := FromTiles(tiles)
	grid := Grid(tiles)

	board := domain.NewBoard()
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			board.Set(domain.Cell{Row: r, Col: c}, grid[r][c], 0)
		}
	}
	ok, wrong := Check(&board, want)
	require.True(t, ok)
	require.Empty(t, wrong)

	// bump one cell of block 3 (bottom-left): only that block should report
	board.Set(domain.Cell{Row: 2, Col: 0}, grid[2][0]+1, 0)
	ok, wrong = Check(&board, want)
	require.False(t, ok)
	require.Equal(t, []int{3}, wrong)
}
