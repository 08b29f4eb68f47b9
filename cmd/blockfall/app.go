package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/spectate"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

const (
	hudWidth     = 7
	previewCount = 3
)

// App implements ebiten.Game. Update runs one scheduler frame; Draw renders
// the snapshot taken at the end of that frame.
type App struct {
	cfg       config.Config
	game      *tetris.Game
	scheduler *loop.Scheduler
	backend   *debugui_ebiten.ImguiBackend
	snapshot  tetris.Snapshot
	width     int
	height    int
}

func NewApp(cfg config.Config, logger zerolog.Logger, hub *spectate.Hub) *App {
	rules := cfg.TetrisRules()
	game := tetris.NewGame(
		tetris.WithRules(rules),
		tetris.WithRandom(tetris.NewRandom(cfg.Seed)),
		tetris.WithLogger(logger.With().Str("component", "game").Logger()),
	)

	a := &App{
		cfg:       cfg,
		game:      game,
		scheduler: loop.NewScheduler(nil),
		width:     (rules.Columns + hudWidth) * cfg.Display.CellSize,
		height:    rules.Rows * cfg.Display.CellSize,
	}

	game.AddHandler(tetris.HandlerFunc(func(e tetris.Event) {
		switch e.Kind {
		case tetris.EventRestart, tetris.EventTopOut:
			a.scheduler.Cancel()
		}
	}))

	input := &InputSystem{Game: game, Bindings: DefaultBindings()}
	gravity := &GravitySystem{Game: game}
	a.scheduler.Register(input)
	a.scheduler.Register(gravity)

	if hub != nil {
		a.scheduler.Register(&SpectateSystem{
			Hub:      hub,
			Game:     game,
			Interval: cfg.Spectate.Interval,
			Log:      logger,
		})
	}

	ebiten.SetTPS(cfg.Display.FPS)
	if cfg.DebugUI {
		a.backend = debugui_ebiten.NewImguiBackend("blockfall (debug)", 1280, 800)

		inspector := &debugui.GameInspector{Game: game}
		overlay := &debugui.System{}
		overlay.Add(inspector.Render)
		overlay.Add(debugui.NewPerformanceStats(a.scheduler, 120).Render)
		a.scheduler.Register(overlay)

		input.Overlay = overlay
		gravity.Paused = &inspector.Paused
	} else {
		ebiten.SetWindowTitle("blockfall")
		ebiten.SetWindowSize(a.width, a.height)
	}

	game.Start()
	a.snapshot = game.Snapshot(previewCount)
	return a
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if a.backend != nil {
		a.backend.Frame(a.scheduler.Frame)
	} else {
		a.scheduler.Frame()
	}
	a.snapshot = a.game.Snapshot(previewCount)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, a.snapshot, float32(a.cfg.Display.CellSize))

	if a.backend != nil {
		a.backend.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.backend != nil {
		a.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return a.width, a.height
}
