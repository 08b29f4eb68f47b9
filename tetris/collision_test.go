package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	tests := []struct {
		name  string
		piece tetris.PieceType
		pos   tetris.Position
		setup func(g *tetris.Grid)
		want  bool
	}{
		{name: "O inside empty grid", piece: tetris.PieceO, pos: tetris.Position{X: 4, Y: 0}},
		{name: "O at right edge", piece: tetris.PieceO, pos: tetris.Position{X: 8, Y: 0}},
		{name: "O past right edge", piece: tetris.PieceO, pos: tetris.Position{X: 9, Y: 0}, want: true},
		{name: "O past left edge", piece: tetris.PieceO, pos: tetris.Position{X: -1, Y: 0}, want: true},
		{name: "O resting on floor", piece: tetris.PieceO, pos: tetris.Position{X: 0, Y: 18}},
		{name: "O below floor", piece: tetris.PieceO, pos: tetris.Position{X: 0, Y: 19}, want: true},
		{name: "empty matrix column outside grid", piece: tetris.PieceI, pos: tetris.Position{X: -1, Y: 0}},
		{name: "cells above top row", piece: tetris.PieceI, pos: tetris.Position{X: 3, Y: -3}},
		{name: "cells far above top row", piece: tetris.PieceO, pos: tetris.Position{X: 3, Y: -10}},
		{
			name:  "overlaps settled cell",
			piece: tetris.PieceO,
			pos:   tetris.Position{X: 4, Y: 10},
			setup: func(g *tetris.Grid) { g.Set(5, 11, 3) },
			want:  true,
		},
		{
			name:  "matrix padding over settled cell",
			piece: tetris.PieceS,
			pos:   tetris.Position{X: 4, Y: 10},
			setup: func(g *tetris.Grid) { g.Set(4, 10, 3) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tetris.NewGrid(10, 20)
			if tt.setup != nil {
				tt.setup(g)
			}
			assert.Equal(t, tt.want, tetris.Collides(g, tetris.NewPiece(tt.piece), tt.pos))
		})
	}
}

func TestMergeOccupies(t *testing.T) {
	for _, typ := range tetris.PieceTypes() {
		t.Run(typ.String(), func(t *testing.T) {
			g := tetris.NewGrid(10, 20)
			p := tetris.NewPiece(typ)
			pos := tetris.Position{X: 3, Y: 5}

			assert.False(t, tetris.Collides(g, p, pos))
			tetris.Merge(g, p, pos)

			assert.Equal(t, 4, g.Count())
			assert.True(t, tetris.Collides(g, p, pos))
		})
	}
}

func TestMergeWritesFillValue(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	tetris.Merge(g, tetris.NewPiece(tetris.PieceO), tetris.Position{X: 0, Y: 18})

	for _, cell := range [][2]int{{0, 18}, {1, 18}, {0, 19}, {1, 19}} {
		assert.Equal(t, tetris.Cell(2), g.At(cell[0], cell[1]))
	}
}

func BenchmarkCollides(b *testing.B) {
	g := tetris.NewGrid(10, 20)
	for y := 10; y < 20; y++ {
		fillRow(g, y, y%10)
	}
	p := tetris.NewPiece(tetris.PieceT)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tetris.Collides(g, p, tetris.Position{X: i % 8, Y: 8})
	}
}
