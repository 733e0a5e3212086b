package ports

import (
	"context"
	"time"

	"svw.info/dominosum/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Generator produces a random perfect tiling of the grid. Tile ids follow
// discovery order, 0..DominoCount-1.
type Generator interface {
	Generate(ctx context.Context, seed int64) ([]domain.Tile, Stats, error)
}

// Hinter suggests a next placement given the player's board and the hidden
// solution tiling.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, solution []domain.Tile) (domain.Hint, bool, error)
}
