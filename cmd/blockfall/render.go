package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

var (
	background = color.RGBA{0x11, 0x11, 0x11, 0xff}
	border     = color.RGBA{0x55, 0x55, 0x55, 0xff}
	cellEdge   = color.RGBA{0, 0, 0, 0x33}
	ghost      = color.RGBA{0xff, 0xff, 0xff, 0x50}
)

// palette maps cell values to fill colors. Index zero is unused.
var palette = [...]color.RGBA{
	{},
	{0xff, 0x59, 0x5e, 0xff},
	{0xff, 0xca, 0x3a, 0xff},
	{0x8a, 0xc9, 0x26, 0xff},
	{0x19, 0x82, 0xc4, 0xff},
	{0x6a, 0x4c, 0x93, 0xff},
	{0xff, 0x92, 0x4c, 0xff},
	{0x00, 0xc4, 0x9a, 0xff},
}

func cellColor(c tetris.Cell) color.RGBA {
	if c <= 0 || int(c) >= len(palette) {
		return palette[1]
	}
	return palette[c]
}

func drawCell(dst *ebiten.Image, x, y int, size float32, clr color.Color) {
	px, py := float32(x)*size, float32(y)*size
	vector.DrawFilledRect(dst, px, py, size, size, clr, false)
	vector.StrokeRect(dst, px, py, size, size, 1, cellEdge, false)
}

func drawMatrix(dst *ebiten.Image, cells [][]tetris.Cell, offX, offY int, size float32, override color.Color) {
	for y, row := range cells {
		for x, c := range row {
			if c == 0 || offY+y < 0 {
				continue
			}
			clr := override
			if clr == nil {
				clr = cellColor(c)
			}
			drawCell(dst, offX+x, offY+y, size, clr)
		}
	}
}

func drawSnapshot(screen *ebiten.Image, s tetris.Snapshot, size float32) {
	screen.Fill(background)

	boardW, boardH := float32(s.Columns)*size, float32(s.Rows)*size
	vector.StrokeRect(screen, 0, 0, boardW, boardH, 1, border, false)

	drawMatrix(screen, s.Grid, 0, 0, size, nil)
	if s.Piece != nil {
		drawMatrix(screen, s.Piece, s.Position.X, s.GhostY, size, ghost)
		drawMatrix(screen, s.Piece, s.Position.X, s.Position.Y, size, nil)
	}

	hudX := int(boardW + size/2)
	lineH := 16
	y := 4
	for _, line := range []string{
		fmt.Sprintf("SCORE %d", s.Score.Score),
		fmt.Sprintf("LINES %d", s.Score.Lines),
		fmt.Sprintf("LEVEL %d", s.Score.Level),
		fmt.Sprintf("SPEED %s", s.DropInterval),
		"",
		"NEXT",
	} {
		ebitenutil.DebugPrintAt(screen, line, hudX, y)
		y += lineH
	}

	previewSize := size / 2
	col := int(float32(hudX) / previewSize)
	row := int(float32(y) / previewSize)
	for _, t := range s.Next {
		p := tetris.NewPiece(t)
		drawMatrix(screen, p.Cells(), col, row, previewSize, nil)
		row += p.Size() + 1
	}

	if s.State == tetris.StateTopOut.String() {
		ebitenutil.DebugPrintAt(screen, "TOP OUT - press any move to continue", 4, int(boardH/2))
	}
	ebitenutil.DebugPrintAt(screen, "R restart  ESC quit", hudX, int(boardH)-lineH-4)
}
