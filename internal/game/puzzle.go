// Package game holds the player-facing puzzle state machine: selection,
// placement, undo, and the block-sum completion check.
package game

import (
	"fmt"

	"svw.info/dominosum/internal/domain"
	"svw.info/dominosum/internal/targets"
)

// none means no domino is currently selected.
const none = -1

// placeAction is a history entry. Only placements are recorded; undo pops
// them and never records anything itself.
type placeAction struct {
	domino int
	first  domain.Cell
	second domain.Cell
}

// Puzzle owns all mutable state for one game. It is not safe for concurrent
// use; adapters serialize access.
type Puzzle struct {
	solution []domain.Tile // canonical tiles, indexed by domino id
	targets  [domain.BlockCount]int
	order    []int // tray display order of domino ids

	board    domain.Board
	placed   map[int]domain.Placement
	history  []placeAction
	selected int
	pending  []domain.Cell
	solved   bool
	wrong    []int
}

// Snapshot is the externally observable state handed to presentation layers
// after every operation.
type Snapshot struct {
	Board       domain.Board           `json:"board"`
	Targets     [domain.BlockCount]int `json:"targets"`
	Pool        []domain.Domino        `json:"pool"`
	PlacedCount int                    `json:"placedCount"`
	Selected    int                    `json:"selected"`
	Pending     []domain.Cell          `json:"pending,omitempty"`
	Full        bool                   `json:"full"`
	Solved      bool                   `json:"solved"`
	WrongBlocks []int                  `json:"wrongBlocks,omitempty"`
}

// Update is the result of one operation: a status line plus the new state.
type Update struct {
	Message  string   `json:"message"`
	Snapshot Snapshot `json:"snapshot"`
}

// New builds a puzzle from a solution tiling. order gives the tray order for
// the pool; pass nil to present dominoes in id order.
func New(tiles []domain.Tile, order []int) *Puzzle {
	p := &Puzzle{}
	p.Reset(tiles, order)
	return p
}

// Reset discards all player state and installs a new solution tiling. The
// targets are computed once here and never recomputed from player values.
func (p *Puzzle) Reset(tiles []domain.Tile, order []int) {
	p.solution = make([]domain.Tile, len(tiles))
	copy(p.solution, tiles)
	p.targets = targets.FromTiles(tiles)
	if order == nil {
		order = make([]int, len(tiles))
		for i := range order {
			order[i] = i
		}
	}
	p.order = make([]int, len(order))
	copy(p.order, order)

	p.board = domain.NewBoard()
	p.placed = make(map[int]domain.Placement, len(tiles))
	p.history = p.history[:0]
	p.selected = none
	p.pending = nil
	p.solved = false
	p.wrong = nil
}

// SelectDomino marks a pool domino as the one to place next and clears any
// pending cell click. Selecting an already-placed domino is a no-op notice.
func (p *Puzzle) SelectDomino(id int) Update {
	if p.solved {
		return p.update("already solved: restart for a new puzzle")
	}
	if id < 0 || id >= len(p.solution) {
		return p.update(fmt.Sprintf("no domino %d in this puzzle", id))
	}
	if _, ok := p.placed[id]; ok {
		return p.update(fmt.Sprintf("domino %d is already on the board", id))
	}
	p.selected = id
	p.pending = nil
	d := p.solution[id].Domino
	return p.update(fmt.Sprintf("selected domino %d (%d|%d): click two adjacent cells", id, d.A, d.B))
}

// ClickCell records a cell for the selected domino. The second click commits
// the placement: the domino's first pip lands on the first-clicked cell, so
// click order decides orientation. Non-adjacent clicks discard the pending
// cell but keep the selection.
func (p *Puzzle) ClickCell(r, c int) Update {
	if p.solved {
		return p.update("already solved: restart for a new puzzle")
	}
	cell := domain.Cell{Row: r, Col: c}
	if !cell.InBounds() {
		return p.update(fmt.Sprintf("cell (%d,%d) is off the board", r, c))
	}
	if p.selected == none {
		return p.update("select a domino from the pool first")
	}
	if p.board.Occupied(cell) {
		return p.update(fmt.Sprintf("cell (%d,%d) is already occupied", r, c))
	}
	if len(p.pending) == 0 {
		p.pending = append(p.pending, cell)
		return p.update(fmt.Sprintf("first half at (%d,%d): click an adjacent cell", r, c))
	}

	first := p.pending[0]
	if !first.Adjacent(cell) {
		p.pending = nil
		return p.update("cells are not adjacent: click the two cells again")
	}
	p.place(first, cell)
	if p.board.Full() {
		return p.update(p.checkCompletion())
	}
	return p.update(fmt.Sprintf("placed domino %d", p.history[len(p.history)-1].domino))
}

// place commits the selected domino onto two validated cells.
func (p *Puzzle) place(first, second domain.Cell) {
	id := p.selected
	d := p.solution[id].Domino
	p.board.Set(first, d.A, id)
	p.board.Set(second, d.B, id)
	p.placed[id] = domain.Placement{Domino: id, First: first, Second: second, A: d.A, B: d.B}
	p.history = append(p.history, placeAction{domino: id, first: first, second: second})
	p.selected = none
	p.pending = nil
	p.wrong = nil
}

// checkCompletion runs once the board is full: every block sum must equal
// its precomputed target. A mismatch is not terminal; the player can undo.
func (p *Puzzle) checkCompletion() string {
	ok, wrong := targets.Check(&p.board, p.targets)
	if ok {
		p.solved = true
		return "solved! every block matches its target"
	}
	p.wrong = wrong
	return fmt.Sprintf("board full, but blocks %v are off: undo and rearrange", wrong)
}

// Undo pops the latest placement. The domino returns to the pool with the
// pips from the canonical solution tile for its id, not from the discarded
// placement record. Repeated calls walk further back through history.
func (p *Puzzle) Undo() Update {
	if p.solved {
		return p.update("already solved: restart for a new puzzle")
	}
	if len(p.history) == 0 {
		return p.update("nothing to undo")
	}
	act := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	p.board.Clear(act.first)
	p.board.Clear(act.second)
	delete(p.placed, act.domino)
	p.wrong = nil
	return p.update(fmt.Sprintf("returned domino %d to the pool", act.domino))
}

// Restart swaps in a freshly generated tiling, discarding everything.
func (p *Puzzle) Restart(tiles []domain.Tile, order []int) Update {
	p.Reset(tiles, order)
	return p.update("new puzzle ready")
}

// Targets returns the four block-sum clues.
func (p *Puzzle) Targets() [domain.BlockCount]int { return p.targets }

// PlacedCount returns how many dominoes the player has committed.
func (p *Puzzle) PlacedCount() int { return len(p.placed) }

// Solved reports whether the puzzle reached its terminal success state.
func (p *Puzzle) Solved() bool { return p.solved }

// WrongBlocks lists 1-indexed blocks whose sums missed their targets at the
// last full-board check, or nil.
func (p *Puzzle) WrongBlocks() []int {
	if p.wrong == nil {
		return nil
	}
	out := make([]int, len(p.wrong))
	copy(out, p.wrong)
	return out
}

// Solution exposes the hidden tiling for the hinter and for tests.
func (p *Puzzle) Solution() []domain.Tile {
	out := make([]domain.Tile, len(p.solution))
	copy(out, p.solution)
	return out
}

// Board returns a copy of the current board.
func (p *Puzzle) Board() domain.Board { return p.board }

// Pool lists the dominoes still available, in tray order. Values always come
// from the solution tiles, so an undone domino reappears with its original
// pips.
func (p *Puzzle) Pool() []domain.Domino {
	out := make([]domain.Domino, 0, len(p.order))
	for _, id := range p.order {
		if _, ok := p.placed[id]; ok {
			continue
		}
		out = append(out, p.solution[id].Domino)
	}
	return out
}

// Snapshot assembles the full observable state.
func (p *Puzzle) Snapshot() Snapshot {
	var pending []domain.Cell
	if len(p.pending) > 0 {
		pending = make([]domain.Cell, len(p.pending))
		copy(pending, p.pending)
	}
	return Snapshot{
		Board:       p.board,
		Targets:     p.targets,
		Pool:        p.Pool(),
		PlacedCount: len(p.placed),
		Selected:    p.selected,
		Pending:     pending,
		Full:        p.board.Full(),
		Solved:      p.solved,
		WrongBlocks: p.WrongBlocks(),
	}
}

func (p *Puzzle) update(msg string) Update {
	return Update{Message: msg, Snapshot: p.Snapshot()}
}
