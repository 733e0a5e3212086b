package usecase

import (
	"context"
	"errors"
	"math/rand"

	"svw.info/dominosum/internal/domain"
	"svw.info/dominosum/internal/game"
	"svw.info/dominosum/internal/ports"
)

// Service wires the generator and hinter into the puzzle lifecycle.
type Service struct {
	Generator ports.Generator
	Hinter    ports.Hinter
}

func NewService(g ports.Generator, h ports.Hinter) *Service {
	return &Service{Generator: g, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// NewGame generates a fresh solution tiling and returns a ready puzzle. The
// pool tray order is shuffled from the same seed so it does not mirror the
// generator's discovery order.
func (u *Service) NewGame(ctx context.Context, seed int64) (*game.Puzzle, ports.Stats, error) {
	tiles, st, err := u.generate(ctx, seed)
	if err != nil {
		return nil, st, err
	}
	return game.New(tiles, trayOrder(seed, len(tiles))), st, nil
}

// Restart replaces the puzzle's tiling in place, per the restart operation.
func (u *Service) Restart(ctx context.Context, p *game.Puzzle, seed int64) (game.Update, ports.Stats, error) {
	tiles, st, err := u.generate(ctx, seed)
	if err != nil {
		return game.Update{}, st, err
	}
	return p.Restart(tiles, trayOrder(seed, len(tiles))), st, nil
}

// Hint asks the hinter for a next placement on the given puzzle.
func (u *Service) Hint(ctx context.Context, p *game.Puzzle) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	b := p.Board()
	return u.Hinter.Hint(ctx, &b, p.Solution())
}

func (u *Service) generate(ctx context.Context, seed int64) ([]domain.Tile, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed)
}

// trayOrder shuffles domino ids for display. Seeded apart from the generator
// so the tray stays stable for a given seed.
func trayOrder(seed int64, n int) []int {
	rng := rand.New(rand.NewSource(seed + 1))
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}
