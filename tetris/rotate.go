package tetris

// Rotate turns the piece a quarter turn in place: clockwise for dir > 0,
// counter-clockwise for dir < 0. A zero dir is a no-op.
func (p *Piece) Rotate(dir int) {
	if dir == 0 {
		return
	}

	n := p.size
	for y := 0; y < n; y++ {
		for x := 0; x < y; x++ {
			p.cells[x*n+y], p.cells[y*n+x] = p.cells[y*n+x], p.cells[x*n+y]
		}
	}

	if dir > 0 {
		for y := 0; y < n; y++ {
			row := p.cells[y*n : (y+1)*n]
			for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
		return
	}

	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		for x := 0; x < n; x++ {
			p.cells[i*n+x], p.cells[j*n+x] = p.cells[j*n+x], p.cells[i*n+x]
		}
	}
}

// AttemptRotate rotates p and searches sideways for a legal position,
// trying x offsets +1, -2, +3, -4 ... cumulatively from the current x. Once
// the next offset would exceed the piece width the rotation is undone and
// pos restored. It reports whether the rotation was kept.
func AttemptRotate(g *Grid, p *Piece, pos *Position, dir int) bool {
	if dir == 0 {
		return false
	}

	x := pos.X
	offset := 1
	p.Rotate(dir)
	for Collides(g, p, *pos) {
		pos.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}
		if offset > p.Width() {
			p.Rotate(-dir)
			pos.X = x
			return false
		}
	}
	return true
}
