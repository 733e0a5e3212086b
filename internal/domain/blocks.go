package domain

// Board geometry. The grid is covered by DominoCount 1x2 pieces and split
// into BlockCount fixed 2x2 scoring blocks.
const (
	GridSize    = 4
	DominoCount = 8
	BlockCount  = 4
	MinPip      = 1
	MaxPip      = 6
)

// BlockOrigins lists the top-left cell of each 2x2 block, in clue order.
var BlockOrigins = [BlockCount]Cell{
	{Row: 0, Col: 0},
	{Row: 0, Col: 2},
	{Row: 2, Col: 0},
	{Row: 2, Col: 2},
}

// BlockCells returns the four cells of block i (0-based).
func BlockCells(i int) [4]Cell {
	o := BlockOrigins[i]
	return [4]Cell{
		{Row: o.Row, Col: o.Col},
		{Row: o.Row, Col: o.Col + 1},
		{Row: o.Row + 1, Col: o.Col},
		{Row: o.Row + 1, Col: o.Col + 1},
	}
}

// BlockIndex returns which block a cell belongs to.
func BlockIndex(c Cell) int {
	return (c.Row/2)*2 + c.Col/2
}
