package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/dominosum/internal/domain"
)

func TestGenerateProducesPerfectTiling(t *testing.T) {
	g := NewBacktracking()
	for seed := int64(1); seed <= 50; seed++ {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		tiles, st, err := g.Generate(ctx, seed)
		cancel()
		require.NoError(t, err, "seed %d", seed)
		require.Len(t, tiles, domain.DominoCount, "seed %d", seed)
		require.Greater(t, st.Nodes, 0)

		var covered [domain.GridSize][domain.GridSize]int
		for i, tile := range tiles {
			require.Equal(t, i, tile.ID, "ids follow discovery order")
			require.True(t, tile.First.InBounds(), "seed %d tile %d", seed, i)
			require.True(t, tile.Second.InBounds(), "seed %d tile %d", seed, i)
			require.True(t, tile.First.Adjacent(tile.Second), "seed %d tile %d not adjacent", seed, i)
			for _, v := range []uint8{tile.A, tile.B} {
				require.GreaterOrEqual(t, v, uint8(domain.MinPip))
				require.LessOrEqual(t, v, uint8(domain.MaxPip))
			}
			covered[tile.First.Row][tile.First.Col]++
			covered[tile.Second.Row][tile.Second.Col]++
		}
		for r := 0; r < domain.GridSize; r++ {
			for c := 0; c < domain.GridSize; c++ {
				require.Equal(t, 1, covered[r][c], "seed %d cell (%d,%d)", seed, r, c)
			}
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	g := NewBacktracking()
	a, _, err := g.Generate(context.Background(), 12345)
	require.NoError(t, err)
	b, _, err := g.Generate(context.Background(), 12345)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerateRetryCapExhausted(t *testing.T) {
	g := &BacktrackingGenerator{MaxRetries: 0}
	_, _, err := g.Generate(context.Background(), 1)
	require.ErrorIs(t, err, ErrRetriesExhausted)
}

func TestGenerateHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewBacktracking()
	_, _, err := g.Generate(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
}
