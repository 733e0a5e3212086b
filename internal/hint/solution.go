package hint

import (
	"context"
	"fmt"

	"svw.info/dominosum/internal/domain"
)

// Solution implements a Hinter that reveals the hidden tile covering the
// first empty cell, when the board has not diverged from the solution there.
type Solution struct{}

func NewSolution() *Solution { return &Solution{} }

// Hint scans row-major for the first empty cell and suggests the solution
// tile that covers it. No hint is offered when that tile's domino is already
// placed elsewhere or its other cell is taken.
func (h *Solution) Hint(ctx context.Context, b *domain.Board, solution []domain.Tile) (domain.Hint, bool, error) {
	if ctx.Err() != nil {
		return domain.Hint{}, false, ctx.Err()
	}
	cell, ok := firstEmpty(b)
	if !ok {
		return domain.Hint{}, false, nil
	}
	t, ok := tileCovering(solution, cell)
	if !ok {
		return domain.Hint{}, false, nil
	}
	if b.Occupied(t.First) || b.Occupied(t.Second) || placedAlready(b, t.ID) {
		return domain.Hint{}, false, nil
	}
	msg := fmt.Sprintf("try domino %d (%d|%d) across (%d,%d) and (%d,%d)",
		t.ID, t.A, t.B, t.First.Row, t.First.Col, t.Second.Row, t.Second.Col)
	return domain.Hint{
		Message: msg,
		Domino:  t.Domino,
		Cells:   []domain.Cell{t.First, t.Second},
	}, true, nil
}

func firstEmpty(b *domain.Board) (domain.Cell, bool) {
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			if b.Values[r][c] == 0 {
				return domain.Cell{Row: r, Col: c}, true
			}
		}
	}
	return domain.Cell{}, false
}

func tileCovering(tiles []domain.Tile, cell domain.Cell) (domain.Tile, bool) {
	for _, t := range tiles {
		if t.First == cell || t.Second == cell {
			return t, true
		}
	}
	return domain.Tile{}, false
}

func placedAlready(b *domain.Board, id int) bool {
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			if b.Owners[r][c] == int8(id) {
				return true
			}
		}
	}
	return false
}
