package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file.")
	seed := flag.Uint64("seed", 0, "Bag shuffle seed. Zero picks a random seed.")
	logLevel := flag.String("log-level", "", "Log level (trace, debug, info, warn, error).")
	logFile := flag.String("log-file", "blockfall-tty.log", "File to write logs to; the terminal is in use.")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	out, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer out.Close()

	level, _ := cfg.Level()
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("terminal frontend failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(styleDefault)
	screen.HideCursor()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scheduler := loop.NewScheduler(nil)
	game := tetris.NewGame(
		tetris.WithRules(cfg.TetrisRules()),
		tetris.WithRandom(tetris.NewRandom(cfg.Seed)),
		tetris.WithLogger(logger),
		tetris.WithHandler(tetris.HandlerFunc(func(e tetris.Event) {
			switch e.Kind {
			case tetris.EventRestart, tetris.EventTopOut:
				scheduler.Cancel()
			}
		})),
	)

	cmds := make(chan tetris.Command, 16)
	go pollEvents(ctx, screen, cmds, cancel)

	scheduler.Register(&InputSystem{Game: game, Commands: cmds})
	scheduler.Register(&GravitySystem{Game: game})
	scheduler.Register(&RenderSystem{Screen: screen, Game: game})

	game.Start()
	logger.Info().Dur("frame_interval", cfg.FrameInterval()).Msg("terminal frontend started")
	scheduler.Run(ctx, cfg.FrameInterval())

	final := game.Score()
	logger.Info().
		Int("score", final.Score).
		Int("lines", final.Lines).
		Int("level", final.Level).
		Int64("frames", scheduler.GetStats().Frames).
		Msg("terminal frontend stopped")
	return nil
}
