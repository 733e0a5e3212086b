package domain

// Cell identifies a square on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the cell lies on the 4x4 grid.
func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// Adjacent reports whether two cells touch orthogonally (Manhattan distance 1).
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Domino is a 1x2 piece with two pip halves. ID is assigned at generation
// time and stays stable for the puzzle's lifetime.
type Domino struct {
	ID int   `json:"id"`
	A  uint8 `json:"a"`
	B  uint8 `json:"b"`
}

// Tile is a domino bound to its two cells in the hidden solution tiling.
// A sits on First, B on Second; the pair never changes once generated.
type Tile struct {
	Domino
	First  Cell `json:"first"`
	Second Cell `json:"second"`
}

// Placement records a player's committed domino: which cells it covers and
// which value landed on each (click order decides orientation).
type Placement struct {
	Domino int   `json:"domino"`
	First  Cell  `json:"first"`
	Second Cell  `json:"second"`
	A      uint8 `json:"a"`
	B      uint8 `json:"b"`
}

// NoOwner marks a board cell not covered by any domino.
const NoOwner int8 = -1

// Board holds the player's current values and which domino owns each cell.
// A zero value means unoccupied; Owners holds NoOwner there.
type Board struct {
	Values [GridSize][GridSize]uint8 `json:"values"`
	Owners [GridSize][GridSize]int8  `json:"owners"`
}

// NewBoard returns an empty board with all owners cleared.
func NewBoard() Board {
	var b Board
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			b.Owners[r][c] = NoOwner
		}
	}
	return b
}

// Occupied reports whether a cell carries a value.
func (b Board) Occupied(c Cell) bool { return b.Values[c.Row][c.Col] != 0 }

// Set marks a cell with a pip value and its owning domino.
func (b *Board) Set(c Cell, v uint8, domino int) {
	b.Values[c.Row][c.Col] = v
	b.Owners[c.Row][c.Col] = int8(domino)
}

// Clear empties a cell.
func (b *Board) Clear(c Cell) {
	b.Values[c.Row][c.Col] = 0
	b.Owners[c.Row][c.Col] = NoOwner
}

// Full reports whether every cell is occupied.
func (b Board) Full() bool {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// Hint describes a suggested placement for the UI.
type Hint struct {
	Message string `json:"message,omitempty"`
	Domino  Domino `json:"domino"`
	Cells   []Cell `json:"cells,omitempty"`
}
