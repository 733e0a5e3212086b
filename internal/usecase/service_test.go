package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/dominosum/internal/domain"
	"svw.info/dominosum/internal/generator"
	"svw.info/dominosum/internal/hint"
)

func newService() *Service {
	return NewService(generator.NewBacktracking(), hint.NewSolution())
}

func TestNewGameWiresAFullPuzzle(t *testing.T) {
	uc := newService()
	p, st, err := uc.NewGame(context.Background(), 42)
	require.NoError(t, err)
	require.Greater(t, st.Nodes, 0)

	pool := p.Pool()
	require.Len(t, pool, domain.DominoCount)

	// the tray is a permutation of all ids
	seen := make(map[int]bool, len(pool))
	for _, d := range pool {
		seen[d.ID] = true
	}
	require.Len(t, seen, domain.DominoCount)

	// targets always total the full pip sum
	total := 0
	for _, tile := range p.Solution() {
		total += int(tile.A) + int(tile.B)
	}
	sum := 0
	for _, v := range p.Targets() {
		sum += v
	}
	require.Equal(t, total, sum)
}

func TestNewGameDeterministicPerSeed(t *testing.T) {
	uc := newService()
	a, _, err := uc.NewGame(context.Background(), 7)
	require.NoError(t, err)
	b, _, err := uc.NewGame(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestRestartResetsInPlace(t *testing.T) {
	uc := newService()
	p, _, err := uc.NewGame(context.Background(), 1)
	require.NoError(t, err)

	d := p.Pool()[0]
	p.SelectDomino(d.ID)
	p.ClickCell(0, 0)
	p.ClickCell(0, 1)
	require.Equal(t, 1, p.PlacedCount())

	up, _, err := uc.Restart(context.Background(), p, 2)
	require.NoError(t, err)
	require.Zero(t, up.Snapshot.PlacedCount)
	require.Len(t, up.Snapshot.Pool, domain.DominoCount)
	require.False(t, up.Snapshot.Solved)
}

// Two consecutive restarts each yield an independent, internally valid puzzle.
func TestRestartTwiceStaysValid(t *testing.T) {
	uc := newService()
	p, _, err := uc.NewGame(context.Background(), 1)
	require.NoError(t, err)
	for _, seed := range []int64{2, 3} {
		up, _, err := uc.Restart(context.Background(), p, seed)
		require.NoError(t, err)
		require.Len(t, up.Snapshot.Pool, domain.DominoCount)
		var covered [domain.GridSize][domain.GridSize]int
		for _, tile := range p.Solution() {
			require.True(t, tile.First.Adjacent(tile.Second))
			covered[tile.First.Row][tile.First.Col]++
			covered[tile.Second.Row][tile.Second.Col]++
		}
		for r := 0; r < domain.GridSize; r++ {
			for c := 0; c < domain.GridSize; c++ {
				require.Equal(t, 1, covered[r][c])
			}
		}
	}
}

func TestHintDelegates(t *testing.T) {
	uc := newService()
	p, _, err := uc.NewGame(context.Background(), 9)
	require.NoError(t, err)
	h, found, err := uc.Hint(context.Background(), p)
	require.NoError(t, err)
	require.True(t, found, "fresh board always has a hint")
	require.Len(t, h.Cells, 2)
}

func TestMissingDependencies(t *testing.T) {
	uc := &Service{}
	_, _, err := uc.NewGame(context.Background(), 1)
	require.Error(t, err)
	_, _, err = uc.Hint(context.Background(), nil)
	require.Error(t, err)
}
