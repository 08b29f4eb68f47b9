package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Cells are drawn two columns wide so the board keeps a square aspect.
const cellWidth = 2

var (
	styleDefault = tcell.StyleDefault.Background(tcell.NewHexColor(0x111111)).Foreground(tcell.ColorWhite)
	styleBorder  = styleDefault.Foreground(tcell.ColorGray)
	styleGhost   = styleDefault.Foreground(tcell.ColorDimGray)
)

var palette = [...]tcell.Color{
	tcell.ColorDefault,
	tcell.NewHexColor(0xff595e),
	tcell.NewHexColor(0xffca3a),
	tcell.NewHexColor(0x8ac926),
	tcell.NewHexColor(0x1982c4),
	tcell.NewHexColor(0x6a4c93),
	tcell.NewHexColor(0xff924c),
	tcell.NewHexColor(0x00c49a),
}

func cellStyle(c tetris.Cell) tcell.Style {
	if c <= 0 || int(c) >= len(palette) {
		c = 1
	}
	return styleDefault.Background(palette[c])
}

// keyCommand maps a key event to a game command.
func keyCommand(ev *tcell.EventKey) (tetris.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return tetris.CmdMoveLeft, true
	case tcell.KeyRight:
		return tetris.CmdMoveRight, true
	case tcell.KeyDown:
		return tetris.CmdSoftDrop, true
	case tcell.KeyUp:
		return tetris.CmdRotateCW, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'x', 'X':
			return tetris.CmdRotateCW, true
		case 'z', 'Z':
			return tetris.CmdRotateCCW, true
		case ' ':
			return tetris.CmdHardDrop, true
		case 'r', 'R':
			return tetris.CmdRestart, true
		}
	}
	return tetris.CmdNone, false
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

// eventSource is the part of tcell.Screen the poller reads from.
type eventSource interface {
	PollEvent() tcell.Event
	Sync()
}

// pollEvents forwards key commands to cmds until the screen is finalized or
// a quit key is pressed, in which case cancel is called.
func pollEvents(ctx context.Context, screen eventSource, cmds chan<- tetris.Command, cancel context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuit(ev) {
				cancel()
				return
			}
			cmd, ok := keyCommand(ev)
			if !ok {
				continue
			}
			select {
			case cmds <- cmd:
			case <-ctx.Done():
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// InputSystem applies every command queued since the previous frame.
type InputSystem struct {
	Game     *tetris.Game
	Commands <-chan tetris.Command
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	for {
		select {
		case cmd := <-s.Commands:
			s.Game.Apply(cmd)
		default:
			return
		}
	}
}

type GravitySystem struct {
	Game *tetris.Game
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	s.Game.Tick(frame.Elapsed())
}

// canvas is the part of tcell.Screen the renderer draws on.
type canvas interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// RenderSystem draws the game once every other system of the frame has run.
type RenderSystem struct {
	Screen canvas
	Game   *tetris.Game
}

func (s *RenderSystem) Execute(frame *loop.UpdateFrame) {
	frame.Commands.Defer(func() {
		s.Screen.Clear()
		drawSnapshot(s.Screen, s.Game.Snapshot(3))
		s.Screen.Show()
	})
}

func drawText(c canvas, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		c.SetContent(x+i, y, r, nil, style)
	}
}

func drawCell(c canvas, x, y int, style tcell.Style, glyph rune) {
	for i := range cellWidth {
		c.SetContent(1+x*cellWidth+i, 1+y, glyph, nil, style)
	}
}

func drawMatrix(c canvas, cells [][]tetris.Cell, offX, offY int, ghost bool) {
	for y, row := range cells {
		for x, v := range row {
			if v == 0 || offY+y < 0 {
				continue
			}
			if ghost {
				drawCell(c, offX+x, offY+y, styleGhost, '░')
			} else {
				drawCell(c, offX+x, offY+y, cellStyle(v), ' ')
			}
		}
	}
}

func drawSnapshot(c canvas, s tetris.Snapshot) {
	right := 1 + s.Columns*cellWidth
	bottom := 1 + s.Rows
	for y := 0; y <= bottom; y++ {
		c.SetContent(0, y, '│', nil, styleBorder)
		c.SetContent(right, y, '│', nil, styleBorder)
	}
	for x := 0; x <= right; x++ {
		c.SetContent(x, bottom, '─', nil, styleBorder)
	}
	c.SetContent(0, bottom, '└', nil, styleBorder)
	c.SetContent(right, bottom, '┘', nil, styleBorder)

	drawMatrix(c, s.Grid, 0, 0, false)
	if s.Piece != nil {
		drawMatrix(c, s.Piece, s.Position.X, s.GhostY, true)
		drawMatrix(c, s.Piece, s.Position.X, s.Position.Y, false)
	}

	hudX := right + 2
	drawText(c, hudX, 1, styleDefault, fmt.Sprintf("SCORE %d", s.Score.Score))
	drawText(c, hudX, 2, styleDefault, fmt.Sprintf("LINES %d", s.Score.Lines))
	drawText(c, hudX, 3, styleDefault, fmt.Sprintf("LEVEL %d", s.Score.Level))
	drawText(c, hudX, 5, styleDefault, "NEXT")

	next := make([]rune, 0, 2*len(s.Next))
	for _, t := range s.Next {
		next = append(next, []rune(t.String())...)
		next = append(next, ' ')
	}
	drawText(c, hudX, 6, styleDefault, string(next))

	if s.State == tetris.StateTopOut.String() {
		drawText(c, hudX, 8, styleDefault.Foreground(tcell.ColorRed), "TOP OUT")
	}
	drawText(c, hudX, bottom, styleBorder, "q quit  r restart")
}
