package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/dominosum/internal/domain"
	"svw.info/dominosum/internal/ports"
)

// DefaultMaxRetries bounds full restarts of the search. A 4x4 grid always
// admits a perfect tiling, so the cap only guards against a defect.
const DefaultMaxRetries = 100

// ErrRetriesExhausted means the search never completed a tiling within the
// retry cap. Callers should treat it as fatal.
var ErrRetriesExhausted = errors.New("generator: retries exhausted without a complete tiling")

// BacktrackingGenerator tiles the grid by recursive backtracking: cover the
// first empty cell (row-major) with its right or down neighbor, orientation
// order shuffled per step, and roll back on dead ends.
type BacktrackingGenerator struct {
	MaxRetries int
}

func NewBacktracking() *BacktrackingGenerator {
	return &BacktrackingGenerator{MaxRetries: DefaultMaxRetries}
}

// Generate produces the 8 solution tiles with pips drawn uniformly from
// [MinPip, MaxPip]. The same seed yields the same tiling.
func (g *BacktrackingGenerator) Generate(ctx context.Context, seed int64) ([]domain.Tile, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	nodes := 0
	max := g.MaxRetries
	for attempt := 0; attempt < max; attempt++ {
		if ctx.Err() != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
		}
		if tiles, ok := tileOnce(ctx, rng, &nodes); ok {
			return tiles, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrRetriesExhausted
}

// tileOnce runs a single search from an empty grid. It returns false when
// the search dead-ends, leaving the caller to restart from scratch.
func tileOnce(ctx context.Context, rng *rand.Rand, nodes *int) ([]domain.Tile, bool) {
	var occ [domain.GridSize][domain.GridSize]bool
	tiles := make([]domain.Tile, 0, domain.DominoCount)

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&occ)
		if !ok {
			return true
		}
		first := domain.Cell{Row: r, Col: c}
		seconds := [2]domain.Cell{
			{Row: r, Col: c + 1},
			{Row: r + 1, Col: c},
		}
		if rng.Intn(2) == 0 {
			seconds[0], seconds[1] = seconds[1], seconds[0]
		}
		for _, second := range seconds {
			*nodes++
			if !second.InBounds() || occ[second.Row][second.Col] {
				continue
			}
			occ[first.Row][first.Col] = true
			occ[second.Row][second.Col] = true
			tiles = append(tiles, domain.Tile{
				Domino: domain.Domino{ID: len(tiles), A: pip(rng), B: pip(rng)},
				First:  first,
				Second: second,
			})
			if dfs() {
				return true
			}
			tiles = tiles[:len(tiles)-1]
			occ[first.Row][first.Col] = false
			occ[second.Row][second.Col] = false
		}
		return false
	}
	if !dfs() {
		return nil, false
	}
	return tiles, true
}

func findEmpty(occ *[domain.GridSize][domain.GridSize]bool) (int, int, bool) {
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			if !occ[r][c] {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func pip(rng *rand.Rand) uint8 {
	return uint8(domain.MinPip + rng.Intn(domain.MaxPip-domain.MinPip+1))
}
