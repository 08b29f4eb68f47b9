package tetris

// Grid is the arena of settled cells. Row 0 is the top.
//
// Cells live in one fixed backing array; rows maps each logical row to its
// physical slot so removing a row only permutes indices.
type Grid struct {
	columns int
	rows    []int
	cells   []Cell
}

// NewGrid returns an empty grid of the given dimensions.
func NewGrid(columns, rows int) *Grid {
	if columns <= 0 || rows <= 0 {
		panic("tetris: grid dimensions must be positive")
	}

	g := &Grid{
		columns: columns,
		rows:    make([]int, rows),
		cells:   make([]Cell, columns*rows),
	}
	for y := range g.rows {
		g.rows[y] = y
	}
	return g
}

func (g *Grid) Columns() int {
	return g.columns
}

func (g *Grid) Rows() int {
	return len(g.rows)
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.columns && y >= 0 && y < len(g.rows)
}

func (g *Grid) row(y int) []Cell {
	slot := g.rows[y]
	return g.cells[slot*g.columns : (slot+1)*g.columns]
}

// At returns the cell at (x, y), or 0 when (x, y) is outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.row(y)[x]
}

// Set writes c at (x, y). Writes outside the grid are dropped.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.row(y)[x] = c
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= len(g.rows) {
		return false
	}
	for _, c := range g.row(y) {
		if c == 0 {
			return false
		}
	}
	return true
}

// RemoveRow deletes row y, shifts every row above it down by one and leaves
// an empty row at the top.
func (g *Grid) RemoveRow(y int) {
	if y < 0 || y >= len(g.rows) {
		return
	}

	slot := g.rows[y]
	copy(g.rows[1:y+1], g.rows[:y])
	g.rows[0] = slot
	clear(g.row(0))
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Cells returns a copy of the grid contents in logical row order.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, len(g.rows))
	for y := range out {
		out[y] = append([]Cell(nil), g.row(y)...)
	}
	return out
}
