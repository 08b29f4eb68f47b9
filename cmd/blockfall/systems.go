package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/spectate"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

// Auto-repeat timing in ticks for held keys.
const (
	repeatDelay = 10
	repeatRate  = 3
)

// Binding maps a key to a command. Repeat bindings fire again while held.
type Binding struct {
	Key     ebiten.Key
	Command tetris.Command
	Repeat  bool
}

func DefaultBindings() []Binding {
	return []Binding{
		{Key: ebiten.KeyArrowLeft, Command: tetris.CmdMoveLeft, Repeat: true},
		{Key: ebiten.KeyArrowRight, Command: tetris.CmdMoveRight, Repeat: true},
		{Key: ebiten.KeyArrowDown, Command: tetris.CmdSoftDrop, Repeat: true},
		{Key: ebiten.KeyArrowUp, Command: tetris.CmdRotateCW},
		{Key: ebiten.KeyX, Command: tetris.CmdRotateCW},
		{Key: ebiten.KeyZ, Command: tetris.CmdRotateCCW},
		{Key: ebiten.KeySpace, Command: tetris.CmdHardDrop},
		{Key: ebiten.KeyR, Command: tetris.CmdRestart},
	}
}

func pressed(b Binding) bool {
	if inpututil.IsKeyJustPressed(b.Key) {
		return true
	}
	if !b.Repeat {
		return false
	}
	d := inpututil.KeyPressDuration(b.Key)
	return d >= repeatDelay && (d-repeatDelay)%repeatRate == 0
}

// InputSystem translates key presses into game commands. Keys are ignored
// while the debug overlay has keyboard focus.
type InputSystem struct {
	Game     *tetris.Game
	Bindings []Binding
	Overlay  *debugui.System
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	if s.Overlay != nil && s.Overlay.Input.WantCaptureKeyboard {
		return
	}
	for _, b := range s.Bindings {
		if pressed(b) {
			s.Game.Apply(b.Command)
		}
	}
}

// GravitySystem advances the drop timer by the frame's elapsed time.
type GravitySystem struct {
	Game   *tetris.Game
	Paused *bool
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	if s.Paused != nil && *s.Paused {
		return
	}
	s.Game.Tick(frame.Elapsed())
}

// SpectateSystem broadcasts a snapshot to spectators every Interval.
type SpectateSystem struct {
	Hub      *spectate.Hub
	Game     *tetris.Game
	Interval time.Duration
	Log      zerolog.Logger

	elapsed time.Duration
}

func (s *SpectateSystem) Execute(frame *loop.UpdateFrame) {
	s.elapsed += frame.Elapsed()
	if s.elapsed < s.Interval {
		return
	}
	s.elapsed = 0

	if err := s.Hub.Broadcast(s.Game.Snapshot(previewCount)); err != nil {
		s.Log.Error().Err(err).Msg("broadcast failed")
	}
}
