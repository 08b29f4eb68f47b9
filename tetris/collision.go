package tetris

// Position is the grid coordinate of a piece's top-left matrix cell.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Collides reports whether any occupied cell of p placed at pos falls outside
// the grid columns, at or below the last row, or onto a settled cell. Cells
// above the top row never collide.
func Collides(g *Grid, p *Piece, pos Position) bool {
	hit := false
	p.each(func(x, y int, _ Cell) bool {
		gx, gy := pos.X+x, pos.Y+y
		switch {
		case gx < 0 || gx >= g.Columns():
			hit = true
		case gy >= g.Rows():
			hit = true
		case gy < 0:
		default:
			hit = g.At(gx, gy) != 0
		}
		return !hit
	})
	return hit
}

// Merge writes every occupied cell of p at pos into g. Callers must only
// merge a placement that does not collide.
func Merge(g *Grid, p *Piece, pos Position) {
	p.each(func(x, y int, c Cell) bool {
		g.Set(pos.X+x, pos.Y+y, c)
		return true
	})
}
