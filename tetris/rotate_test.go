package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestAttemptRotate(t *testing.T) {
	t.Run("open space keeps position", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := tetris.NewPiece(tetris.PieceT)
		pos := tetris.Position{X: 4, Y: 5}

		assert.True(t, tetris.AttemptRotate(g, p, &pos, 1))
		assert.Equal(t, tetris.Position{X: 4, Y: 5}, pos)
	})

	t.Run("kicks right off the left wall", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := tetris.NewPiece(tetris.PieceI)
		pos := tetris.Position{X: -1, Y: 5}
		assert.False(t, tetris.Collides(g, p, pos))

		assert.True(t, tetris.AttemptRotate(g, p, &pos, 1))
		assert.Equal(t, 0, pos.X)
		assert.False(t, tetris.Collides(g, p, pos))
	})

	t.Run("kicks left off the right wall", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := tetris.NewPiece(tetris.PieceI)
		pos := tetris.Position{X: 7, Y: 5}
		assert.False(t, tetris.Collides(g, p, pos))

		// +1 still overlaps the wall, so the search lands on -1.
		assert.True(t, tetris.AttemptRotate(g, p, &pos, 1))
		assert.Equal(t, 6, pos.X)
		assert.False(t, tetris.Collides(g, p, pos))
	})

	t.Run("reverts when no kick fits", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		for y := 0; y < g.Rows(); y++ {
			fillRow(g, y, 4)
		}

		p := tetris.NewPiece(tetris.PieceI)
		want := p.Cells()
		pos := tetris.Position{X: 3, Y: 0}
		assert.False(t, tetris.Collides(g, p, pos))

		assert.False(t, tetris.AttemptRotate(g, p, &pos, 1))
		assert.Equal(t, tetris.Position{X: 3, Y: 0}, pos)
		assert.Equal(t, want, p.Cells())

		assert.False(t, tetris.AttemptRotate(g, p, &pos, -1))
		assert.Equal(t, want, p.Cells())
	})

	t.Run("zero direction", func(t *testing.T) {
		g := tetris.NewGrid(10, 20)
		p := tetris.NewPiece(tetris.PieceT)
		pos := tetris.Position{X: 4, Y: 5}

		assert.False(t, tetris.AttemptRotate(g, p, &pos, 0))
	})
}
